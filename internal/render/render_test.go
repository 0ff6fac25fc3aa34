package render

import (
	"strings"
	"testing"

	"github.com/smartcriacao/atividade/internal/activity"
)

func pageWith(sec activity.Section) activity.GeneratedPage {
	return activity.GeneratedPage{
		ID:         "page-1",
		PageNumber: 1,
		Structure: activity.PageStructure{
			PageNumber: 1,
			Subject:    activity.SubjectCiencias,
			PageTitle:  "Explorando a Natureza",
			Sections:   []activity.Section{sec},
		},
	}
}

func TestRenderPageDeterministic(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:          "s1",
		Type:        activity.SectionTextoPerguntas,
		Title:       "Leia com atenção",
		TextContent: "Primeiro parágrafo.\nSegundo parágrafo.",
		Questions: []activity.Question{
			{ID: "q1", Text: "O que você entendeu?", AnswerLines: 2},
		},
	})

	first, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	second, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage (second): %v", err)
	}
	if first != second {
		t.Error("rendering the same page twice produced different output")
	}
}

func TestRenderPageHeaderAndFooter(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{ID: "s1", Type: activity.SectionTextoGeral, TextContent: "texto"})

	got, err := r.RenderPage(page, 3)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	for _, want := range []string{
		"Explorando a Natureza",
		"Matéria: Ciências - Página 1",
		"Página 1 / 3",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderAnswerLines(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:   "s1",
		Type: activity.SectionTextoPerguntas,
		Questions: []activity.Question{
			{ID: "q1", Text: "Pergunta?", AnswerLines: 3},
		},
	})

	got, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if n := strings.Count(got, `class="answer-line"`); n != 3 {
		t.Errorf("answer lines = %d, want 3", n)
	}
}

func TestRenderMultipleChoiceLettersNoLines(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:   "s1",
		Type: activity.SectionMultiplaEscolha,
		Questions: []activity.Question{
			{ID: "q1", Text: "Qual planeta?", Options: []string{"Terra", "Marte", "Vênus"}},
		},
	})

	got, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	for _, want := range []string{"A. Terra", "B. Marte", "C. Vênus"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing lettered option %q", want)
		}
	}
	if strings.Contains(got, `class="answer-line"`) {
		t.Error("multiple choice must not draw answer lines")
	}
}

func TestRenderWordSearchGrid(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:             "s1",
		Type:           activity.SectionCacaPalavras,
		Title:          "Caça-Palavras: Animais",
		TextContent:    "GATO, CÃO\nPATO",
		WordSearchGrid: []string{"GATOX", "CAOZZ", "PATOY"},
	})

	got, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if n := strings.Count(got, "<td>"); n != 15 {
		t.Errorf("grid cells = %d, want 15", n)
	}
	for _, word := range []string{"GATO", "CÃO", "PATO"} {
		if !strings.Contains(got, "<li>"+word+"</li>") {
			t.Errorf("word list missing %q", word)
		}
	}
}

func TestRenderWordSearchMissingGridNotice(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:          "s1",
		Type:        activity.SectionCacaPalavras,
		TextContent: "GATO, CÃO",
	})

	got, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(got, "não pôde ser gerada") {
		t.Error("missing grid should render the fallback notice")
	}
	if strings.Contains(got, "<table") {
		t.Error("missing grid must not render a table")
	}
}

func TestRenderWordSearchMalformedGridNotice(t *testing.T) {
	tests := []struct {
		name string
		grid []string
	}{
		{"ragged rows", []string{"GATOX", "CAO"}},
		{"whitespace cell", []string{"GA TO", "CAOZZ"}},
		{"empty first row", []string{"", ""}},
	}
	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := pageWith(activity.Section{
				ID:             "s1",
				Type:           activity.SectionCacaPalavras,
				TextContent:    "GATO, CÃO",
				WordSearchGrid: tt.grid,
			})

			got, err := r.RenderPage(page, 1)
			if err != nil {
				t.Fatalf("RenderPage: %v", err)
			}
			if !strings.Contains(got, "não pôde ser gerada") {
				t.Error("malformed grid should render the fallback notice")
			}
			if strings.Contains(got, "<table") {
				t.Error("malformed grid must not render a table")
			}
		})
	}
}

func TestRenderCuttingDashedBorder(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:               "s1",
		Type:             activity.SectionRecortar,
		Title:            "Recorte as formas",
		GeneratedImageID: "img-1",
	})
	page.Images = []activity.GeneratedImage{{ID: "img-1", Base64Data: "aGVsbG8="}}

	got, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(got, "cut-line") {
		t.Error("cutting section should mark the image with the cut-line style")
	}
	if !strings.Contains(got, "data:image/png;base64,aGVsbG8=") {
		t.Error("image data not embedded")
	}
}

func TestRenderColoringWithoutImage(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:          "s1",
		Type:        activity.SectionColorir,
		Title:       "Pinte o dinossauro",
		TextContent: "Use suas cores favoritas!",
	})

	got, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if strings.Contains(got, "<img") {
		t.Error("no image data, no img tag")
	}
	if !strings.Contains(got, "Use suas cores favoritas!") {
		t.Error("instructional text must still render")
	}
}

func TestRenderUnknownTypeFallsBackToGeneric(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:          "s1",
		Type:        "Tipo Desconhecido",
		Title:       "Seção",
		TextContent: "conteúdo",
		Questions:   []activity.Question{{ID: "q1", Text: "Pergunta?", AnswerLines: 1}},
	})

	got, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(got, "conteúdo") || !strings.Contains(got, "Pergunta?") {
		t.Error("unknown type should render text and questions")
	}
}

func TestRenderImageTextTwoColumn(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:               "s1",
		Type:             activity.SectionImagemTextoPerguntas,
		Title:            "Observe e leia",
		TextContent:      "Texto complementar.",
		GeneratedImageID: "img-1",
		Questions:        []activity.Question{{ID: "q1", Text: "Pergunta?", AnswerLines: 1}},
	})
	page.Images = []activity.GeneratedImage{{ID: "img-1", Base64Data: "aGVsbG8="}}

	got, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(got, "image-text-row") {
		t.Error("expected two-column layout")
	}
}

func TestRenderImageTextWithoutImageFallsBack(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{
		ID:          "s1",
		Type:        activity.SectionImagemTextoPerguntas,
		TextContent: "Somente texto.",
	})

	got, err := r.RenderPage(page, 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if strings.Contains(got, "image-text-row") {
		t.Error("no image means no two-column layout")
	}
	if !strings.Contains(got, "Somente texto.") {
		t.Error("text must render in the generic layout")
	}
}

func TestRenderDocumentIsStandalone(t *testing.T) {
	r := New()
	page := pageWith(activity.Section{ID: "s1", Type: activity.SectionTextoGeral, TextContent: "texto"})

	got, err := r.RenderDocument(page, 1)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "210mm", "297mm", "10mm"} {
		if !strings.Contains(got, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRenderWorksheetAllPages(t *testing.T) {
	r := New()
	p1 := pageWith(activity.Section{ID: "s1", Type: activity.SectionTextoGeral, TextContent: "um"})
	p2 := pageWith(activity.Section{ID: "s2", Type: activity.SectionTextoGeral, TextContent: "dois"})
	p2.PageNumber = 2
	p2.Structure.PageNumber = 2

	got, err := r.RenderWorksheet([]activity.GeneratedPage{p1, p2})
	if err != nil {
		t.Fatalf("RenderWorksheet: %v", err)
	}
	if n := strings.Count(got, `class="page"`); n != 2 {
		t.Errorf("pages rendered = %d, want 2", n)
	}
}

func TestParseWordList(t *testing.T) {
	got := ParseWordList("GATO, CÃO\n PATO ,, \nVACA")
	want := []string{"GATO", "CÃO", "PATO", "VACA"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
}
