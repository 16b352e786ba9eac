package llm

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/skillbyte/internal/model"
)

// Config holds provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "anthropic", "openai", "gemini", "mock"
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries. Default: 30s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays SKILLBYTE_* environment variables onto the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SKILLBYTE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if k := os.Getenv("SKILLBYTE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("SKILLBYTE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if k := os.Getenv("SKILLBYTE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("SKILLBYTE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("SKILLBYTE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if k := os.Getenv("SKILLBYTE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("SKILLBYTE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// ApplySettings overlays the persisted user settings onto cfg. Stored
// settings win over environment values, matching the order the settings
// screen promises. The provider is inferred from the selected model's
// naming when one is stored.
func ApplySettings(cfg Config, s model.Settings) Config {
	if s.SelectedModel != "" {
		cfg.Provider = inferProvider(s.SelectedModel)
		switch cfg.Provider {
		case "anthropic":
			cfg.Anthropic.Model = s.SelectedModel
		case "gemini":
			cfg.Gemini.Model = s.SelectedModel
		default:
			cfg.OpenAI.Model = s.SelectedModel
		}
	}
	if s.APIKey != "" {
		switch cfg.Provider {
		case "anthropic":
			cfg.Anthropic.APIKey = s.APIKey
		case "gemini":
			cfg.Gemini.APIKey = s.APIKey
		default:
			cfg.OpenAI.APIKey = s.APIKey
		}
	}
	return cfg
}

// inferProvider maps a model name to its provider family.
func inferProvider(mdl string) string {
	switch {
	case strings.HasPrefix(mdl, "claude"):
		return "anthropic"
	case strings.HasPrefix(mdl, "gemini"):
		return "gemini"
	default:
		return "openai"
	}
}

// DiscoverConfig probes the standard provider key env vars in priority
// order and returns a Config for the first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("an Anthropic API key is required: set it with 'skillbyte settings set' or SKILLBYTE_ANTHROPIC_API_KEY")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("an OpenAI API key is required: set it with 'skillbyte settings set' or SKILLBYTE_OPENAI_API_KEY")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("a Gemini API key is required: set it with 'skillbyte settings set' or SKILLBYTE_GEMINI_API_KEY")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
