package imagegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/smartcriacao/atividade/internal/llm"
)

const defaultImagenModel = "imagen-3.0-generate-002"

// GeminiProvider generates illustrations with the Imagen API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates an Imagen-backed image provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultImagenModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	full, err := BuildPrompt(prompt)
	if err != nil {
		return nil, err
	}

	result, err := p.client.Models.GenerateImages(ctx, p.model, full, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/png",
	})
	if err != nil {
		return nil, mapImageError(err)
	}

	if len(result.GeneratedImages) == 0 || result.GeneratedImages[0].Image == nil ||
		len(result.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, fmt.Errorf("imagen returned no image data")
	}
	return result.GeneratedImages[0].Image.ImageBytes, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

func mapImageError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		if c := llm.ClassifyMessage(err); c != nil {
			return c
		}
		return &llm.ErrRateLimit{Err: err}
	}
	if c := llm.ClassifyMessage(err); c != nil {
		return c
	}
	return &llm.ErrProviderUnavailable{Err: err}
}
