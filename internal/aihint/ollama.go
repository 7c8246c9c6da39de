package aihint

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// ollamaProvider talks to a local Ollama runtime.
type ollamaProvider struct {
	llm llms.Model
}

func NewOllamaProvider(host, model string) (Provider, error) {
	if host == "" {
		return nil, newHintError("OLLAMA_HOST is not configured.", nil)
	}
	if model == "" {
		return nil, newHintError("OLLAMA_HINT_MODEL is not configured.", nil)
	}

	llm, err := ollama.New(
		ollama.WithServerURL(host),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, newHintError(fmt.Sprintf("Ollama client error: %v", err), err)
	}
	return &ollamaProvider{llm: llm}, nil
}

func (p *ollamaProvider) Name() string { return "Ollama" }

func (p *ollamaProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, p.llm, prompt)
}
