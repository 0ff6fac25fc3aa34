package pagegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/smartcriacao/atividade/internal/activity"
)

func TestParseStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"pageTitle\": \"Título\", \"sections\": [{\"id\": \"s1\", \"type\": \"Texto Geral\", \"textContent\": \"olá\"}]}\n```"

	page, err := Parse(raw, 2, activity.SubjectCiencias)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if page.PageTitle != "Título" {
		t.Errorf("pageTitle = %q", page.PageTitle)
	}
	if page.PageNumber != 2 {
		t.Errorf("missing pageNumber not defaulted: %d", page.PageNumber)
	}
	if page.Subject != activity.SubjectCiencias {
		t.Errorf("missing subject not defaulted: %q", page.Subject)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	long := "this is not json " + strings.Repeat("x", 500)
	_, err := Parse(long, 1, activity.SubjectMatematica)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if len([]rune(perr.Snippet)) > snippetLimit+3 {
		t.Errorf("snippet too long: %d runes", len([]rune(perr.Snippet)))
	}
}

func TestParseKeepsFirstOfManySections(t *testing.T) {
	raw := `{"pageNumber": 1, "subject": "Matemática", "pageTitle": "t", "sections": [
		{"id": "a", "type": "Texto Geral", "textContent": "primeiro"},
		{"id": "b", "type": "Texto Geral", "textContent": "segundo"}
	]}`

	page, err := Parse(raw, 1, activity.SubjectMatematica)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(page.Sections) != 1 {
		t.Fatalf("expected exactly 1 section, got %d", len(page.Sections))
	}
	if page.Sections[0].ID != "a" {
		t.Errorf("kept section %q, want the first", page.Sections[0].ID)
	}
}

func TestParseSynthesizesFallbackSection(t *testing.T) {
	raw := `{"pageNumber": 1, "subject": "História", "pageTitle": "t", "sections": []}`

	page, err := Parse(raw, 1, activity.SubjectHistoria)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(page.Sections) != 1 {
		t.Fatalf("expected synthesized section, got %d", len(page.Sections))
	}
	sec := page.Sections[0]
	if sec.Type != activity.SectionTextoGeral {
		t.Errorf("fallback type = %q", sec.Type)
	}
	if sec.ID == "" || sec.TextContent == "" {
		t.Errorf("fallback section incomplete: %+v", sec)
	}
}

func TestParseAssignsIDsAndAnswerLines(t *testing.T) {
	raw := `{"pageTitle": "t", "sections": [
		{"type": "Texto com perguntas", "textContent": "texto", "questions": [
			{"text": "Pergunta 1?"},
			{"text": "Pergunta 2?", "answerLines": 3}
		]}
	]}`

	page, err := Parse(raw, 1, activity.SubjectPortugues)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sec := page.Sections[0]
	if sec.ID == "" {
		t.Error("section ID not assigned")
	}
	for i, q := range sec.Questions {
		if q.ID == "" {
			t.Errorf("question %d: ID not assigned", i)
		}
	}
	if sec.Questions[0].AnswerLines != 1 {
		t.Errorf("answerLines not defaulted: %d", sec.Questions[0].AnswerLines)
	}
	if sec.Questions[1].AnswerLines != 3 {
		t.Errorf("explicit answerLines overwritten: %d", sec.Questions[1].AnswerLines)
	}
}

func TestParseNoAnswerLinesForChoiceTypes(t *testing.T) {
	raw := `{"pageTitle": "t", "sections": [
		{"type": "Múltipla escolha", "questions": [
			{"text": "Pergunta?", "options": ["A", "B", "C"]}
		]}
	]}`

	page, err := Parse(raw, 1, activity.SubjectCiencias)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := page.Sections[0].Questions[0].AnswerLines; got != 0 {
		t.Errorf("multiple choice got answerLines = %d, want 0", got)
	}
}

func TestParseCoercesVisualOnlyType(t *testing.T) {
	raw := `{"pageTitle": "t", "sections": [
		{"title": "Pinte", "imagePrompt": "a dinosaur to color"}
	]}`

	page, err := Parse(raw, 1, activity.SubjectColorir)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if page.Sections[0].Type != activity.SectionColorir {
		t.Errorf("type = %q, want %q", page.Sections[0].Type, activity.SectionColorir)
	}
}

func TestParseWordSearchGridEncodedString(t *testing.T) {
	raw := `{"pageTitle": "t", "sections": [
		{"type": "Caça-palavras", "textContent": "GATO, CÃO",
		 "wordSearchGridData": "[\"GATOX\", \"CAOZZ\", \"ABCDE\"]"}
	]}`

	page, err := Parse(raw, 1, activity.SubjectPortugues)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	grid := page.Sections[0].WordSearchGrid
	if len(grid) != 3 {
		t.Fatalf("grid rows = %d, want 3", len(grid))
	}
	if grid[0] != "GATOX" {
		t.Errorf("grid[0] = %q", grid[0])
	}
}

func TestParseWordSearchGridDirectArray(t *testing.T) {
	raw := `{"pageTitle": "t", "sections": [
		{"type": "Caça-palavras", "wordSearchGridData": ["ABC", "DEFGH"]}
	]}`

	page, err := Parse(raw, 1, activity.SubjectPortugues)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	grid := page.Sections[0].WordSearchGrid
	if len(grid) != 2 || len(grid[1]) != 3 {
		t.Errorf("grid not sanitized: %v", grid)
	}
}

func TestParseWordSearchGridInvalid(t *testing.T) {
	raw := `{"pageTitle": "t", "sections": [
		{"type": "Caça-palavras", "wordSearchGridData": "not an array"}
	]}`

	page, err := Parse(raw, 1, activity.SubjectPortugues)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if page.Sections[0].WordSearchGrid != nil {
		t.Errorf("invalid grid data should clear the grid, got %v", page.Sections[0].WordSearchGrid)
	}
}
