package pagegen

import (
	"context"
	"fmt"

	"github.com/smartcriacao/atividade/internal/activity"
	"github.com/smartcriacao/atividade/internal/llm"
)

const (
	// Page structures are long: a word-search grid alone is ~400
	// characters of payload.
	defaultMaxTokens   = 8192
	defaultTemperature = 0.7
)

// Generator produces one page structure per LLM call.
type Generator struct {
	provider llm.Provider

	// MaxTokens and Temperature override the defaults when non-zero.
	MaxTokens   int
	Temperature float64
}

// NewGenerator creates a Generator on top of a text provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// GeneratePage requests and repairs the structure for a single page.
func (g *Generator) GeneratePage(ctx context.Context, form activity.FormData, cfg activity.PageConfig, pageNumber, totalPages int) (*activity.PageStructure, error) {
	prompt := BuildPrompt(form, cfg, pageNumber, totalPages)

	maxTokens := g.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := g.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	ctx = llm.WithPurpose(ctx, llm.PurposePageStructure)
	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      PageStructureSchema(),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate page %d: %w", pageNumber, err)
	}

	return Parse(string(resp.Content), pageNumber, cfg.Subject)
}
