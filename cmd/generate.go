package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/smartcriacao/atividade/internal/account"
	"github.com/smartcriacao/atividade/internal/activity"
	"github.com/smartcriacao/atividade/internal/export"
	"github.com/smartcriacao/atividade/internal/imagegen"
	"github.com/smartcriacao/atividade/internal/llm"
	"github.com/smartcriacao/atividade/internal/pagegen"
	"github.com/smartcriacao/atividade/internal/render"
	"github.com/smartcriacao/atividade/internal/store"
	"github.com/smartcriacao/atividade/internal/ui"
	"github.com/smartcriacao/atividade/internal/worksheet"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a worksheet",
	Long: "Generates a worksheet from the given form options, saves it, and\n" +
		"optionally exports it to PDF. Page subjects are assigned in order;\n" +
		"when fewer --subject flags than pages are given, the last one repeats.",
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("age", string(activity.AgeOito), "Student age band (e.g. \"8 anos\")")
	generateCmd.Flags().String("year", string(activity.YearTerceiro), "School year (e.g. \"3º ano\")")
	generateCmd.Flags().IntP("pages", "p", 1, "Number of pages")
	generateCmd.Flags().StringArrayP("subject", "s", []string{string(activity.SubjectPortugues)}, "Subject per page (repeatable)")
	generateCmd.Flags().StringArrayP("component", "c", nil, "Exercise component (repeatable, e.g. \"Múltipla escolha\")")
	generateCmd.Flags().StringP("topic", "t", "", "Specific topic for the exercises")
	generateCmd.Flags().String("name", "", "Name used when saving (default: topic or date)")
	generateCmd.Flags().StringP("output", "o", "", "Write a PDF to this path after generating")
	generateCmd.Flags().String("html", "", "Write the rendered worksheet HTML to this path")
	generateCmd.Flags().Bool("no-images", false, "Skip illustration generation")
	generateCmd.Flags().Bool("no-save", false, "Do not persist the worksheet")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	form := formFromFlags(cmd)
	if err := form.Validate(); err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	user, err := resolveUser(ctx, cmd, s)
	if err != nil {
		return err
	}
	if max := account.MaxPages(user); form.NumPages > max {
		return fmt.Errorf("o plano atual permite no máximo %d página(s) por atividade", max)
	}

	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	var images imagegen.Provider
	if noImages, _ := cmd.Flags().GetBool("no-images"); !noImages {
		images, err = imagegen.NewProvider(ctx, imagegen.ConfigFromEnv())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Image provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Worksheets will be generated without illustrations.")
			images = nil
		}
	}

	pages, err := generateWithUI(ctx, form, provider, images)
	if err != nil {
		return err
	}
	if pages == nil {
		// User cancelled.
		fmt.Println("Geração cancelada.")
		return nil
	}
	fmt.Printf("Atividade gerada: %d página(s).\n", len(pages))

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = form.SpecificTopic
		}
		if name == "" {
			name = "Atividade " + time.Now().Format("2006-01-02 15:04")
		}
		saved := &store.SavedActivity{Name: name, FormData: form, Pages: pages}
		if user != nil {
			saved.UserID = user.ID
		}
		id, err := s.ActivityRepo().Save(ctx, saved)
		if err != nil {
			return fmt.Errorf("save worksheet: %w", err)
		}
		fmt.Printf("Salva como %q (id %s).\n", name, id)
	}

	if htmlPath, _ := cmd.Flags().GetString("html"); htmlPath != "" {
		doc, err := render.New().RenderWorksheet(pages)
		if err != nil {
			return fmt.Errorf("render worksheet: %w", err)
		}
		if err := os.WriteFile(htmlPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", htmlPath, err)
		}
		fmt.Println("HTML:", htmlPath)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := exportPDF(ctx, pages, output); err != nil {
			return err
		}
		fmt.Println("PDF:", output)
	}
	return nil
}

// generateWithUI runs the orchestrator behind the progress TUI. A nil
// page slice with nil error means the user cancelled.
func generateWithUI(ctx context.Context, form activity.FormData, provider llm.Provider, images imagegen.Provider) ([]activity.GeneratedPage, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	orch := worksheet.New(pagegen.NewGenerator(provider), images)
	p := tea.NewProgram(ui.NewGenerationModel(form, cancel))

	// The TUI owns the terminal while generating; image-skip warnings
	// would tear the display, so they are dropped here.
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	var pages []activity.GeneratedPage
	var genErr error
	go func() {
		pages, genErr = orch.Generate(ctx, form, worksheet.Options{
			Logger: quiet,
			Progress: func(pr worksheet.Progress) {
				p.Send(ui.ProgressMsg(pr))
			},
		})
		p.Send(ui.ResultMsg{Pages: pages, Err: genErr})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run progress display: %w", err)
	}
	m := final.(ui.GenerationModel)
	if m.Cancelled() {
		return nil, nil
	}
	if genErr != nil {
		return nil, genErr
	}
	return pages, nil
}

// exportPDF writes the pages as a raster A4 PDF to path.
func exportPDF(ctx context.Context, pages []activity.GeneratedPage, path string) error {
	rasterizer, err := export.NewChromeRasterizer()
	if err != nil {
		if errors.Is(err, export.ErrRenderingUnavailable) {
			return fmt.Errorf("PDF export needs a local Chrome/Chromium: %w", err)
		}
		return err
	}
	defer rasterizer.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	exporter := export.New(render.New(), rasterizer)
	if err := exporter.Export(ctx, pages, f); err != nil {
		return fmt.Errorf("export PDF: %w", err)
	}
	return nil
}

// formFromFlags assembles the worksheet request. Enum membership is
// left to FormData.Validate so the user sees the Portuguese messages.
func formFromFlags(cmd *cobra.Command) activity.FormData {
	age, _ := cmd.Flags().GetString("age")
	year, _ := cmd.Flags().GetString("year")
	numPages, _ := cmd.Flags().GetInt("pages")
	subjects, _ := cmd.Flags().GetStringArray("subject")
	components, _ := cmd.Flags().GetStringArray("component")
	topic, _ := cmd.Flags().GetString("topic")

	configs := make([]activity.PageConfig, 0, numPages)
	for i := 0; i < numPages; i++ {
		subject := ""
		if len(subjects) > 0 {
			if i < len(subjects) {
				subject = subjects[i]
			} else {
				subject = subjects[len(subjects)-1]
			}
		}
		configs = append(configs, activity.PageConfig{
			ID:      uuid.NewString(),
			Subject: activity.Subject(subject),
		})
	}

	comps := make([]activity.ComponentType, len(components))
	for i, c := range components {
		comps[i] = activity.ComponentType(c)
	}

	return activity.FormData{
		Age:           activity.Age(age),
		SchoolYear:    activity.SchoolYear(year),
		NumPages:      numPages,
		PageConfigs:   configs,
		Components:    comps,
		SpecificTopic: topic,
	}
}
