// Package imagegen generates section illustrations from prompts
// produced during page generation. Providers return raw PNG bytes;
// prompt normalization lives in BuildPrompt so every backend receives
// the same layout and no-text constraints.
package imagegen

import "context"

// Provider generates a single illustration for a prompt. The prompt
// passed in is raw; implementations normalize it with BuildPrompt.
type Provider interface {
	// GenerateImage returns PNG image bytes for the prompt.
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)

	// ModelID returns the provider's model identifier.
	ModelID() string
}
