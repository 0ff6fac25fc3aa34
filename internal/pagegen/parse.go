package pagegen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/smartcriacao/atividade/internal/activity"
)

// ParseError reports a reply that could not be decoded as a page
// structure. Snippet carries the head of the offending payload for the
// error message shown to the user.
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse page structure: %v (reply starts: %q)", e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

const snippetLimit = 300

func snippet(s string) string {
	r := []rune(s)
	if len(r) <= snippetLimit {
		return s
	}
	return string(r[:snippetLimit]) + "..."
}

var fenceRe = regexp.MustCompile("(?s)^```(\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

// StripFences removes a surrounding markdown code fence, with or
// without a language tag, from an LLM reply.
func StripFences(s string) string {
	cleaned := strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(cleaned); m != nil && m[2] != "" {
		return strings.TrimSpace(m[2])
	}
	return cleaned
}

// wireSection mirrors the reply shape. wordSearchGridData arrives as a
// JSON-encoded string most of the time, but models occasionally emit
// the array directly; gridData accepts both.
type wireSection struct {
	ID          string              `json:"id"`
	Type        string              `json:"type"`
	Title       string              `json:"title"`
	TextContent string              `json:"textContent"`
	Questions   []activity.Question `json:"questions"`
	Options     []string            `json:"options"`
	AnswerKey   []string            `json:"answerKey"`
	ImagePrompt string              `json:"imagePrompt"`
	GridData    json.RawMessage     `json:"wordSearchGridData"`
}

type wirePage struct {
	PageNumber int           `json:"pageNumber"`
	Subject    string        `json:"subject"`
	PageTitle  string        `json:"pageTitle"`
	Sections   []wireSection `json:"sections"`
}

// Parse decodes and repairs one page-structure reply. wantPage and
// wantSubject fill in fields the model omitted. The result always has
// exactly one section with a non-empty ID.
func Parse(raw string, wantPage int, wantSubject activity.Subject) (*activity.PageStructure, error) {
	cleaned := StripFences(raw)

	var wire wirePage
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return nil, &ParseError{Snippet: snippet(cleaned), Err: err}
	}

	page := &activity.PageStructure{
		PageNumber: wire.PageNumber,
		Subject:    activity.Subject(wire.Subject),
		PageTitle:  wire.PageTitle,
	}
	if page.PageNumber == 0 {
		page.PageNumber = wantPage
	}
	if page.Subject == "" {
		page.Subject = wantSubject
	}

	// Exactly one section: keep the first of many, synthesize a
	// fallback when the model produced none.
	switch {
	case len(wire.Sections) == 0:
		page.Sections = []activity.Section{{
			ID:          "section-fallback-" + uuid.NewString(),
			Type:        activity.SectionTextoGeral,
			Title:       "Seção não gerada corretamente",
			TextContent: "Houve um problema ao gerar o conteúdo desta seção. Tente novamente.",
		}}
		return page, nil
	case len(wire.Sections) > 1:
		wire.Sections = wire.Sections[:1]
	}

	sec := repairSection(wire.Sections[0], page.Subject)
	page.Sections = []activity.Section{sec}
	return page, nil
}

func repairSection(w wireSection, subject activity.Subject) activity.Section {
	sec := activity.Section{
		ID:          w.ID,
		Type:        activity.SectionType(w.Type),
		Title:       w.Title,
		TextContent: w.TextContent,
		Questions:   w.Questions,
		Options:     w.Options,
		AnswerKey:   w.AnswerKey,
		ImagePrompt: w.ImagePrompt,
	}

	if sec.ID == "" {
		sec.ID = "section-" + uuid.NewString()
	}

	// Visual-only subjects force the matching type when the model left
	// it blank but still supplied an image prompt.
	if sec.Type == "" && sec.ImagePrompt != "" {
		switch subject {
		case activity.SubjectColorir:
			sec.Type = activity.SectionColorir
		case activity.SubjectRecortar:
			sec.Type = activity.SectionRecortar
		}
	}

	if sec.Type == activity.SectionCacaPalavras {
		sec.WordSearchGrid = SanitizeGrid(decodeGridData(w.GridData))
	}

	for i := range sec.Questions {
		q := &sec.Questions[i]
		if q.ID == "" {
			q.ID = "q-" + uuid.NewString()
		}
		if sec.Type.HasAnswerLines() && q.AnswerLines == 0 {
			q.AnswerLines = 1
		}
	}

	return sec
}

// decodeGridData accepts either a JSON string containing an encoded
// array of rows, or the array itself. Anything else yields nil.
func decodeGridData(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		var rows []string
		if err := json.Unmarshal([]byte(encoded), &rows); err != nil {
			return nil
		}
		return rows
	}

	var rows []string
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil
	}
	return rows
}
