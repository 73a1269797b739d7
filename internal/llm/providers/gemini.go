// File path: internal/llm/providers/gemini.go
package providers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/wordgraph/backend/internal/common"
)

type GeminiProvider struct {
	client *googleai.GoogleAI
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key required")
	}
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("nil gemini client")
	}
	logger := common.Logger()
	logger.Debug("llm: sending generation request", "model", g.model, "prompt_length", len(prompt))
	out, err := llms.GenerateFromSinglePrompt(ctx, g.client, prompt)
	if err != nil {
		logger.Error("llm: generation failed", "error", err)
		return "", err
	}
	logger.Debug("llm: generation succeeded", "response_length", len(out))
	return out, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}
