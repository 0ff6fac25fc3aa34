package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/smartcriacao/atividade/internal/llm"
)

const defaultDalleModel = openai.CreateImageModelDallE3

// OpenAIProvider generates illustrations with the DALL·E API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a DALL·E-backed image provider.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if model == "" {
		model = defaultDalleModel
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (p *OpenAIProvider) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	full, err := BuildPrompt(prompt)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Model:          p.model,
		Prompt:         full,
		N:              1,
		Size:           openai.CreateImageSize1792x1024, // closest to 16:9
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, mapOpenAIImageError(err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("dall-e returned no image data")
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return raw, nil
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func mapOpenAIImageError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			if c := llm.ClassifyMessage(err); c != nil {
				return c
			}
			return &llm.ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode == http.StatusBadRequest:
			if c := llm.ClassifyMessage(err); c != nil {
				return c
			}
		}
	}
	if c := llm.ClassifyMessage(err); c != nil {
		return c
	}
	return &llm.ErrProviderUnavailable{Err: err}
}
