package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pageTitle":  map[string]any{"type": "string"},
			"pageNumber": map[string]any{"type": "integer"},
			"type":       map[string]any{"type": "string", "enum": []any{"TEXTO_PERGUNTAS", "CACA_PALAVRAS"}},
			"answerKey": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"pageTitle", "pageNumber"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["pageTitle"].Type != "STRING" {
		t.Fatalf("expected STRING for pageTitle, got %s", schema.Properties["pageTitle"].Type)
	}
	if schema.Properties["pageNumber"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for pageNumber, got %s", schema.Properties["pageNumber"].Type)
	}
	if len(schema.Properties["type"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["type"].Enum))
	}
	if schema.Properties["answerKey"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for answerKey, got %s", schema.Properties["answerKey"].Type)
	}
	if schema.Properties["answerKey"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for answerKey items, got %s", schema.Properties["answerKey"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
