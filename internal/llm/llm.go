// File path: internal/llm/llm.go
package llm

import (
	"context"
	"fmt"

	"github.com/wordgraph/backend/internal/common"
	"github.com/wordgraph/backend/internal/config"
	"github.com/wordgraph/backend/internal/llm/providers"
)

type Provider = providers.Provider

// NewProvider builds the text-generation provider selected by the
// configuration. A missing credential is not an error here: the server starts
// anyway and surfaces the problem per request.
func NewProvider(ctx context.Context, cfg config.Config) (Provider, error) {
	logger := common.Logger()
	if cfg.APIKey == "" {
		logger.Warn("llm: no credential configured, provider unavailable", "provider", cfg.Provider)
		return nil, nil
	}
	switch cfg.Provider {
	case config.ProviderOpenAI:
		logger.Info("llm: OpenAI provider selected", "model", cfg.Model)
		return providers.NewOpenAIProvider(cfg.APIKey, cfg.Model), nil
	case config.ProviderGemini:
		provider, err := providers.NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("init gemini provider: %w", err)
		}
		logger.Info("llm: Gemini provider selected", "model", cfg.Model)
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
