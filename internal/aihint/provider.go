package aihint

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/vocaquiz/internal/config"
)

// Provider sends one prompt to an LLM backend and returns the raw text.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewProvider builds the backend named in cfg.Provider.
func NewProvider(ctx context.Context, cfg config.HintSettings) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderAnthropic:
		return NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	case config.ProviderOllama:
		return NewOllamaProvider(cfg.OllamaHost, cfg.OllamaModel)
	default:
		return nil, newHintError(fmt.Sprintf("unknown hint provider %q.", cfg.Provider), nil)
	}
}

// unavailableProvider stands in when the configured backend could not be
// built, so the API still serves everything except hints.
type unavailableProvider struct {
	name string
	err  error
}

func (p *unavailableProvider) Name() string { return p.name }

func (p *unavailableProvider) Complete(context.Context, string) (string, error) {
	return "", p.err
}
