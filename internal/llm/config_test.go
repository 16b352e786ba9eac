package llm

import (
	"testing"

	"github.com/abhisek/skillbyte/internal/model"
)

func TestInferProvider(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{"claude-haiku", "anthropic"},
		{"claude-sonnet-4-20250514", "anthropic"},
		{"gemini-flash", "gemini"},
		{"gemini-2.0-flash", "gemini"},
		{"gpt-4o-mini", "openai"},
		{"llama-3.1-70b", "openai"}, // unknown families route via the OpenAI-compatible path
	}

	for _, tt := range tests {
		if got := inferProvider(tt.model); got != tt.want {
			t.Errorf("inferProvider(%q) = %q, want %q", tt.model, got, tt.want)
		}
	}
}

func TestApplySettingsWinsOverEnv(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "env-key"

	cfg = ApplySettings(cfg, model.Settings{
		APIKey:        "stored-key",
		SelectedModel: "claude-haiku",
	})

	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic inferred from stored model", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("model = %q", cfg.Anthropic.Model)
	}
	if cfg.Anthropic.APIKey != "stored-key" {
		t.Errorf("api key = %q, want the stored key", cfg.Anthropic.APIKey)
	}
	// The env key stays on the now-unused provider slot.
	if cfg.OpenAI.APIKey != "env-key" {
		t.Errorf("openai key = %q", cfg.OpenAI.APIKey)
	}
}

func TestApplySettingsKeyOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg = ApplySettings(cfg, model.Settings{APIKey: "stored-key"})

	// Without a stored model the default provider keeps its slot.
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want default openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "stored-key" {
		t.Errorf("openai key = %q", cfg.OpenAI.APIKey)
	}
}

func TestApplySettingsEmptyIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "env-key"

	got := ApplySettings(cfg, model.Settings{})
	if got != cfg {
		t.Errorf("empty settings changed config: %+v", got)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SKILLBYTE_LLM_PROVIDER", "gemini")
	t.Setenv("SKILLBYTE_GEMINI_API_KEY", "g-key")
	t.Setenv("SKILLBYTE_GEMINI_MODEL", "gemini-2.0-flash")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" || cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "o-key" {
		t.Errorf("discovered = %+v, want openai first", cfg)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing api key")
	}

	cfg.OpenAI.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should not need a key: %v", err)
	}

	cfg.Provider = "watsonx"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
