package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openRouterModels maps the friendly names used elsewhere in this
// program to OpenRouter's vendor-prefixed IDs, so switching a worksheet
// run between direct Gemini and OpenRouter needs no model flag change.
var openRouterModels = map[string]string{
	"gemini-flash": "google/gemini-2.5-flash",
	"gemini-pro":   "google/gemini-2.5-pro",
	"gpt-4o-mini":  "openai/gpt-4o-mini",
	"claude-haiku": "anthropic/claude-haiku-4.5",
}

// OpenRouterProvider routes requests through OpenRouter's OpenAI-
// compatible API, reusing the OpenAI provider underneath. Error
// classification (quota vs rate limit, policy rejection) therefore
// follows the OpenAI mapping.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	oaiCfg := OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   resolveModel(cfg.Model, openRouterModels),
		BaseURL: baseURL,
	}

	inner, err := newOpenAIProviderRaw(oaiCfg)
	if err != nil {
		return nil, err
	}

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
