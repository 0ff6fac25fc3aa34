package imagegen

import (
	"context"
	"fmt"
	"os"
)

// Config selects and configures an image provider.
type Config struct {
	// Provider selects the backend. Values: "gemini", "openai", "mock".
	Provider string

	APIKey string
	Model  string
}

// DefaultConfig returns the default image configuration. Imagen is the
// default backend, matching the text pipeline's Gemini default.
func DefaultConfig() Config {
	return Config{Provider: "gemini"}
}

// ConfigFromEnv builds a Config from environment variables, probing the
// standard API key variables when no explicit key is set.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("ATIVIDADE_IMAGE_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if m := os.Getenv("ATIVIDADE_IMAGE_MODEL"); m != "" {
		cfg.Model = m
	}

	switch cfg.Provider {
	case "gemini":
		cfg.APIKey = firstEnv("ATIVIDADE_GEMINI_API_KEY", "GEMINI_API_KEY")
	case "openai":
		cfg.APIKey = firstEnv("ATIVIDADE_OPENAI_API_KEY", "OPENAI_API_KEY")
	}
	return cfg
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// NewProvider creates an image provider from the config.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown image provider: %q", cfg.Provider)
	}
}
