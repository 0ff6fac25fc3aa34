// Package render turns generated pages into printable HTML. Rendering
// is pure and deterministic: the same page always yields the same
// markup, so previews and PDF export agree.
package render

import (
	"fmt"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smartcriacao/atividade/internal/activity"
)

// Renderer holds the parsed template set. The zero value is unusable;
// create one with New.
type Renderer struct {
	tmpl *template.Template
}

// New parses the built-in templates.
func New() *Renderer {
	return &Renderer{tmpl: pageTemplates}
}

// RenderPage returns the HTML fragment for one page: header, the
// section body, footer. totalPages feeds the footer counter.
func (r *Renderer) RenderPage(page activity.GeneratedPage, totalPages int) (string, error) {
	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, "page", r.pageView(page, totalPages)); err != nil {
		return "", fmt.Errorf("render page %d: %w", page.PageNumber, err)
	}
	return b.String(), nil
}

// RenderDocument wraps a single page fragment in a standalone A4-styled
// HTML document, the unit the PDF exporter rasterizes.
func (r *Renderer) RenderDocument(page activity.GeneratedPage, totalPages int) (string, error) {
	fragment, err := r.RenderPage(page, totalPages)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = r.tmpl.ExecuteTemplate(&b, "document", documentView{
		Title: page.Structure.PageTitle,
		Body:  template.HTML(fragment),
	})
	if err != nil {
		return "", fmt.Errorf("render document for page %d: %w", page.PageNumber, err)
	}
	return b.String(), nil
}

// RenderWorksheet produces one document holding every page in order,
// for on-screen preview of the whole worksheet.
func (r *Renderer) RenderWorksheet(pages []activity.GeneratedPage) (string, error) {
	var body strings.Builder
	for _, page := range pages {
		fragment, err := r.RenderPage(page, len(pages))
		if err != nil {
			return "", err
		}
		body.WriteString(fragment)
	}

	title := "Atividade Gerada"
	if len(pages) > 0 && pages[0].Structure.PageTitle != "" {
		title = pages[0].Structure.PageTitle
	}

	var b strings.Builder
	err := r.tmpl.ExecuteTemplate(&b, "document", documentView{
		Title: title,
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("render worksheet: %w", err)
	}
	return b.String(), nil
}

// ParseWordList splits a word-search word list on commas and newlines,
// trimming whitespace and dropping empties.
func ParseWordList(s string) []string {
	var out []string
	for _, chunk := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		if w := strings.TrimSpace(chunk); w != "" {
			out = append(out, w)
		}
	}
	return out
}

type documentView struct {
	Title string
	Body  template.HTML
}

type pageView struct {
	PageNumber int
	TotalPages int
	Subject    activity.Subject
	PageTitle  string
	Sections   []template.HTML
}

type questionView struct {
	Text        string
	Options     []optionView
	AnswerLines []struct{}
}

type optionView struct {
	Letter string
	Text   string
}

type sectionView struct {
	Title       string
	Paragraphs  []string
	Questions   []questionView
	Options     []string
	ImageSrc    template.URL // data URL for the PNG, empty when absent
	GridRows    [][]string
	Words       []string
	GridMissing bool
}

func (r *Renderer) pageView(page activity.GeneratedPage, totalPages int) pageView {
	v := pageView{
		PageNumber: page.PageNumber,
		TotalPages: totalPages,
		Subject:    page.Structure.Subject,
		PageTitle:  page.Structure.PageTitle,
	}
	for _, sec := range page.Structure.Sections {
		v.Sections = append(v.Sections, r.renderSection(sec, page))
	}
	return v
}

// renderSection dispatches on the section type. Unknown types use the
// generic text+questions layout so nothing ever renders empty.
func (r *Renderer) renderSection(sec activity.Section, page activity.GeneratedPage) template.HTML {
	view := buildSectionView(sec, page)

	name := "section-generic"
	switch sec.Type {
	case activity.SectionColorir:
		name = "section-coloring"
	case activity.SectionRecortar:
		name = "section-cutting"
	case activity.SectionImagemPerguntas:
		name = "section-image-questions"
	case activity.SectionImagemTextoPerguntas:
		if view.ImageSrc != "" {
			name = "section-image-text-questions"
		}
	case activity.SectionCacaPalavras:
		name = "section-word-search"
	case activity.SectionOrdenarFrases:
		name = "section-ordering"
	case activity.SectionTextoPerguntas, activity.SectionMultiplaEscolha,
		activity.SectionVerdadeiroFalso, activity.SectionCompleteLacunas,
		activity.SectionAssocieColunas, activity.SectionTextoGeral:
		name = "section-generic"
	}

	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, name, view); err != nil {
		// Templates and views are built from plain data; execution
		// cannot fail beyond a programming error.
		panic(err)
	}
	return template.HTML(b.String())
}

func buildSectionView(sec activity.Section, page activity.GeneratedPage) sectionView {
	view := sectionView{
		Title:   sec.Title,
		Options: sec.Options,
	}

	if sec.TextContent != "" {
		for _, p := range strings.Split(sec.TextContent, "\n") {
			view.Paragraphs = append(view.Paragraphs, p)
		}
	}

	if sec.GeneratedImageID != "" {
		if img := page.ImageByID(sec.GeneratedImageID); img != nil {
			// Typed URL keeps the base64 payload byte-exact; the
			// escaper would otherwise percent-encode it.
			view.ImageSrc = template.URL("data:image/png;base64," + img.Base64Data)
		}
	}

	for _, q := range sec.Questions {
		qv := questionView{Text: q.Text}
		if sec.Type == activity.SectionMultiplaEscolha {
			for i, opt := range q.Options {
				qv.Options = append(qv.Options, optionView{
					Letter: optionLetter(i),
					Text:   opt,
				})
			}
		}
		if sec.Type.HasAnswerLines() && q.AnswerLines > 0 {
			qv.AnswerLines = make([]struct{}, q.AnswerLines)
		}
		view.Questions = append(view.Questions, qv)
	}

	if sec.Type == activity.SectionCacaPalavras {
		if gridWellFormed(sec.WordSearchGrid) {
			for _, row := range sec.WordSearchGrid {
				cells := make([]string, 0, len(row))
				for _, r := range row {
					cells = append(cells, string(r))
				}
				view.GridRows = append(view.GridRows, cells)
			}
		} else {
			view.GridMissing = true
		}
		view.Words = ParseWordList(sec.TextContent)
		// The word list replaces the raw text below the grid.
		view.Paragraphs = nil
	}

	return view
}

// gridWellFormed reports whether a word-search grid is printable:
// at least one row, every row the same rune length as the first, and
// no whitespace cells. Models occasionally return ragged or padded
// grids; those fall back to the retry notice instead of rendering
// garbled.
func gridWellFormed(rows []string) bool {
	if len(rows) == 0 {
		return false
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return false
	}
	for _, row := range rows {
		if utf8.RuneCountInString(row) != width {
			return false
		}
		for _, r := range row {
			if unicode.IsSpace(r) {
				return false
			}
		}
	}
	return true
}

// optionLetter labels multiple-choice alternatives A, B, C, ...
func optionLetter(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}
