package imagegen

import (
	"context"
	"sync"
)

// tinyPNG is a valid 1x1 transparent PNG, enough for rendering and
// export paths that decode the bytes.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

// MockProvider returns canned image bytes and records the normalized
// prompts it received. Safe for concurrent use.
type MockProvider struct {
	mu sync.Mutex

	// Image is returned from every call. Defaults to a 1x1 PNG.
	Image []byte

	// Err, when set, is returned from every call.
	Err error

	// Prompts records the normalized prompt of each call.
	Prompts []string
}

// NewMockProvider creates a mock that succeeds with a tiny PNG.
func NewMockProvider() *MockProvider {
	return &MockProvider{Image: tinyPNG}
}

func (m *MockProvider) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	full, err := BuildPrompt(prompt)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.Prompts = append(m.Prompts, full)
	img, callErr := m.Image, m.Err
	m.mu.Unlock()

	if callErr != nil {
		return nil, callErr
	}
	return img, nil
}

func (m *MockProvider) ModelID() string {
	return "mock-image"
}
