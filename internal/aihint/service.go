package aihint

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

type Service interface {
	GenerateHint(ctx context.Context, wordContext *vocab.WordDetailView) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateHint(ctx context.Context, wordContext *vocab.WordDetailView) (string, error) {
	if wordContext.IsEmpty() {
		return "", newHintError("word_context is required for hint generation.", nil)
	}

	log := config.WithContext(ctx).WithField("provider", s.provider.Name())
	prompt := BuildPrompt(wordContext)

	raw, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		var hintErr *HintGenerationError
		if errors.As(err, &hintErr) {
			return "", hintErr
		}
		log.WithError(err).Error("Hint provider call failed")
		return "", newHintError(fmt.Sprintf("%s API error: %v", s.provider.Name(), err), err)
	}

	hint := strings.TrimSpace(raw)
	if hint == "" {
		return "", newHintError(fmt.Sprintf("%s API returned an empty response.", s.provider.Name()), nil)
	}

	log.Debugf("Hint response: %s", hint)
	return hint, nil
}
