// Package ui holds the terminal front-end: the generation progress
// display and the shared theme.
package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/smartcriacao/atividade/internal/activity"
	"github.com/smartcriacao/atividade/internal/ui/components"
	"github.com/smartcriacao/atividade/internal/ui/theme"
	"github.com/smartcriacao/atividade/internal/worksheet"
)

// ProgressMsg carries one orchestrator progress update into the model.
type ProgressMsg worksheet.Progress

// ResultMsg ends the run: either the finished pages or the error.
type ResultMsg struct {
	Pages []activity.GeneratedPage
	Err   error
}

type pageState int

const (
	pagePending pageState = iota
	pageStructure
	pageImage
	pageDone
)

// GenerationModel is the Bubble Tea model shown while a worksheet is
// being generated: one status line per page plus an overall bar.
type GenerationModel struct {
	spinner   spinner.Model
	subjects  []activity.Subject
	states    []pageState
	doneCount int
	width     int

	cancel    func()
	cancelled bool
	finished  bool
	err       error
}

// NewGenerationModel builds the model for a validated form. cancel is
// invoked when the user interrupts the run.
func NewGenerationModel(form activity.FormData, cancel func()) GenerationModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.Active

	subjects := make([]activity.Subject, len(form.PageConfigs))
	for i, cfg := range form.PageConfigs {
		subjects[i] = cfg.Subject
	}

	return GenerationModel{
		spinner:  s,
		subjects: subjects,
		states:   make([]pageState, len(form.PageConfigs)),
		width:    72,
		cancel:   cancel,
	}
}

// Cancelled reports whether the user interrupted the run.
func (m GenerationModel) Cancelled() bool { return m.cancelled }

// Err returns the generation error, if the run failed.
func (m GenerationModel) Err() error { return m.err }

func (m GenerationModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m GenerationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProgressMsg:
		i := msg.PageNumber - 1
		if i < 0 || i >= len(m.states) {
			return m, nil
		}
		switch msg.Step {
		case worksheet.StepStructure:
			m.states[i] = pageStructure
		case worksheet.StepImage:
			m.states[i] = pageImage
		case worksheet.StepPageDone:
			m.states[i] = pageDone
		}
		m.doneCount = len(msg.Pages)
		return m, nil

	case ResultMsg:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m GenerationModel) View() tea.View {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Gerando atividade") + "\n\n")

	for i, subject := range m.subjects {
		label := fmt.Sprintf("Página %d — %s", i+1, subject)
		switch m.states[i] {
		case pageDone:
			b.WriteString(theme.Done.Render("✓ ") + theme.Body.Render(label))
		case pageStructure:
			b.WriteString(m.spinner.View() + theme.Active.Render(label) + theme.Subtitle.Render("  (estrutura)"))
		case pageImage:
			b.WriteString(m.spinner.View() + theme.Active.Render(label) + theme.Subtitle.Render("  (imagem)"))
		default:
			b.WriteString(theme.Pending.Render("· " + label))
		}
		b.WriteString("\n")
	}

	percent := 0.0
	if len(m.states) > 0 {
		percent = float64(m.doneCount) / float64(len(m.states))
	}
	bar := components.NewProgressBar("", percent, true, min(m.width-4, 48))
	b.WriteString("\n" + bar.View() + "\n")

	b.WriteString("\n" + theme.Hint.Render("ctrl+c para cancelar") + "\n")

	v := tea.NewView("")
	v.SetContent(b.String())
	return v
}
