package aihint

import (
	"context"

	"github.com/saulo-duarte/vocaquiz/internal/config"
)

type AIHintContainer struct {
	Provider Provider
	Service  Service
}

// NewAIHintContainer builds the configured provider once. A provider that
// cannot be built is replaced by one that fails every call with the same
// configuration error.
func NewAIHintContainer(ctx context.Context, cfg config.HintSettings) *AIHintContainer {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warnf("Hint provider %q unavailable", cfg.Provider)
		provider = &unavailableProvider{name: cfg.Provider, err: err}
	}

	return &AIHintContainer{
		Provider: provider,
		Service:  NewService(provider),
	}
}
