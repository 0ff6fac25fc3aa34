package pagegen

import "github.com/smartcriacao/atividade/internal/llm"

// PageStructureSchema describes the expected JSON reply for one page.
// wordSearchGridData is itself a JSON-encoded string (an array of row
// strings), matching the contract spelled out in the prompt.
func PageStructureSchema() *llm.Schema {
	question := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string"},
			"text":        map[string]any{"type": "string"},
			"answerLines": map[string]any{"type": "integer"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answerKey": map[string]any{"type": "string"},
		},
		"required": []any{"text"},
	}

	section := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string"},
			"type":        map[string]any{"type": "string"},
			"title":       map[string]any{"type": "string"},
			"textContent": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type":  "array",
				"items": question,
			},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answerKey": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"imagePrompt":        map[string]any{"type": "string"},
			"wordSearchGridData": map[string]any{"type": "string"},
		},
		"required": []any{"type"},
	}

	return &llm.Schema{
		Name:        "page-structure",
		Description: "One worksheet page: title plus exactly one activity section.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"pageNumber": map[string]any{"type": "integer"},
				"subject":    map[string]any{"type": "string"},
				"pageTitle":  map[string]any{"type": "string"},
				"sections": map[string]any{
					"type":  "array",
					"items": section,
				},
			},
			"required": []any{"pageTitle", "sections"},
		},
	}
}
