// Package worksheet drives the full generation run: one structure call
// per page, optional image calls per section, progress reporting, and
// the quota-abort rules.
package worksheet

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartcriacao/atividade/internal/activity"
	"github.com/smartcriacao/atividade/internal/imagegen"
	"github.com/smartcriacao/atividade/internal/llm"
	"github.com/smartcriacao/atividade/internal/pagegen"
)

// Step labels a progress update.
type Step string

const (
	StepStructure Step = "structure" // requesting the page structure
	StepImage     Step = "image"     // generating a section image
	StepPageDone  Step = "page-done" // page appended to the result
)

// Progress is one update emitted during generation. Pages is a copy of
// the accumulated result so far; consumers may hold it after the run
// aborts.
type Progress struct {
	Step       Step
	PageNumber int
	TotalPages int
	Pages      []activity.GeneratedPage
}

// Options configures a generation run.
type Options struct {
	// Progress, when set, receives an update after each step. Called
	// synchronously from the generation goroutine.
	Progress func(Progress)

	// Logger receives image-failure warnings. Defaults to slog.Default.
	Logger *slog.Logger
}

// Orchestrator converts a validated form into ordered generated pages.
type Orchestrator struct {
	pages  *pagegen.Generator
	images imagegen.Provider
}

// New creates an Orchestrator. images may be nil, in which case image
// prompts are ignored and pages render without illustrations.
func New(pages *pagegen.Generator, images imagegen.Provider) *Orchestrator {
	return &Orchestrator{pages: pages, images: images}
}

// Generate runs the sequential page loop. On error the partial result
// is discarded; progress snapshots already delivered remain valid.
func (o *Orchestrator) Generate(ctx context.Context, form activity.FormData, opts Options) ([]activity.GeneratedPage, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	total := form.NumPages
	var done []activity.GeneratedPage

	emit := func(step Step, pageNumber int) {
		if opts.Progress == nil {
			return
		}
		snapshot := make([]activity.GeneratedPage, len(done))
		copy(snapshot, done)
		opts.Progress(Progress{
			Step:       step,
			PageNumber: pageNumber,
			TotalPages: total,
			Pages:      snapshot,
		})
	}

	for i := 0; i < total; i++ {
		pageNumber := i + 1
		cfg := form.PageConfigs[i]

		emit(StepStructure, pageNumber)

		structure, err := o.pages.GeneratePage(ctx, form, cfg, pageNumber, total)
		if err != nil {
			return nil, fmt.Errorf("página %d (%s): %w", pageNumber, cfg.Subject, err)
		}

		page := activity.GeneratedPage{
			ID:         uuid.NewString(),
			PageNumber: pageNumber,
			Structure:  *structure,
		}

		if err := o.generateImages(ctx, &page, logger, func() { emit(StepImage, pageNumber) }); err != nil {
			return nil, fmt.Errorf("página %d (%s): %w", pageNumber, cfg.Subject, err)
		}

		done = append(done, page)
		emit(StepPageDone, pageNumber)
	}

	return done, nil
}

// generateImages fills in the images for every section of the page that
// carries a prompt. A generic or policy failure skips the image; quota
// exhaustion aborts the run.
func (o *Orchestrator) generateImages(ctx context.Context, page *activity.GeneratedPage, logger *slog.Logger, emit func()) error {
	if o.images == nil {
		return nil
	}

	for i := range page.Structure.Sections {
		sec := &page.Structure.Sections[i]
		if sec.ImagePrompt == "" {
			continue
		}

		emit()

		raw, err := o.images.GenerateImage(ctx, sec.ImagePrompt)
		if err != nil {
			if llm.IsQuota(err) {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("imagem da seção não gerada, seguindo sem imagem",
				"page", page.PageNumber,
				"section", sec.ID,
				"error", err)
			continue
		}

		img := activity.GeneratedImage{
			ID:         uuid.NewString(),
			Base64Data: base64.StdEncoding.EncodeToString(raw),
			PromptUsed: sec.ImagePrompt,
		}
		page.Images = append(page.Images, img)
		sec.GeneratedImageID = img.ID
	}

	return nil
}
