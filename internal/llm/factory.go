package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/skillbyte/internal/store"
)

// NewProvider builds the configured provider wrapped with logging and
// retry middleware: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, events store.LLMEventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, cfg.Provider, events), cfg.Retry), nil
}
