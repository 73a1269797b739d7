// File path: internal/config/config.go

// Package config resolves process-wide settings once at startup. The resolved
// struct is handed to the server explicitly so handlers can be exercised with
// injected credentials instead of reading the environment themselves.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/wordgraph/backend/internal/common"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultModel           = "gemini-2.0-flash"
	defaultGenerateTimeout = 60 * time.Second
)

type Config struct {
	// APIKey is the credential for the selected provider. Empty means the
	// process runs but every generation request fails.
	APIKey          string
	Provider        string
	Model           string
	GenerateTimeout time.Duration
}

// Load reads the environment. For the Gemini provider the credential comes
// from GOOGLE_API_KEY, falling back to GEMINI_API_KEY; when only the fallback
// is set it is copied into GOOGLE_API_KEY for the rest of the process
// lifetime so later lookups agree.
func Load() Config {
	logger := common.Logger()

	cfg := Config{
		Provider:        ProviderGemini,
		Model:           defaultModel,
		GenerateTimeout: defaultGenerateTimeout,
	}

	if provider := strings.ToLower(strings.TrimSpace(os.Getenv("WORDGRAPH_PROVIDER"))); provider != "" {
		switch provider {
		case ProviderGemini, ProviderOpenAI:
			cfg.Provider = provider
		default:
			logger.Warn("config: unknown provider, using gemini", "provider", provider)
		}
	}

	if model := strings.TrimSpace(os.Getenv("WORDGRAPH_MODEL")); model != "" {
		cfg.Model = model
	} else if cfg.Provider == ProviderOpenAI {
		cfg.Model = "gpt-4o"
	}

	if raw := strings.TrimSpace(os.Getenv("WORDGRAPH_GENERATE_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			logger.Warn("config: invalid WORDGRAPH_GENERATE_TIMEOUT, using default", "value", raw, "error", err)
		} else {
			cfg.GenerateTimeout = timeout
		}
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		if cfg.APIKey == "" {
			logger.Warn("config: OPENAI_API_KEY not set; generation requests will fail")
		}
	default:
		cfg.APIKey = resolveGeminiKey(logger.Warn)
	}

	return cfg
}

func resolveGeminiKey(warn func(msg string, args ...any)) string {
	key := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	if key != "" {
		return key
	}
	key = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if key != "" {
		// Keep both names in agreement for the rest of the process.
		os.Setenv("GOOGLE_API_KEY", key)
		warn("config: GOOGLE_API_KEY not set, using GEMINI_API_KEY")
		return key
	}
	warn("config: neither GOOGLE_API_KEY nor GEMINI_API_KEY set; generation requests will fail")
	return ""
}
