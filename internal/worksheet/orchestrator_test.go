package worksheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/smartcriacao/atividade/internal/activity"
	"github.com/smartcriacao/atividade/internal/imagegen"
	"github.com/smartcriacao/atividade/internal/llm"
	"github.com/smartcriacao/atividade/internal/pagegen"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func twoPageForm() activity.FormData {
	return activity.FormData{
		Age:        activity.AgeOito,
		SchoolYear: activity.YearTerceiro,
		NumPages:   2,
		PageConfigs: []activity.PageConfig{
			{ID: "p1", Subject: activity.SubjectCiencias},
			{ID: "p2", Subject: activity.SubjectHistoria},
		},
		Components: []activity.ComponentType{activity.ComponentTextoPerguntas},
	}
}

func structureJSON(pageNumber int, imagePrompt string) json.RawMessage {
	sec := map[string]any{
		"id":          fmt.Sprintf("s%d", pageNumber),
		"type":        "Texto com perguntas",
		"textContent": "texto base",
		"questions": []map[string]any{
			{"id": fmt.Sprintf("q%d", pageNumber), "text": "Pergunta?", "answerLines": 2},
		},
	}
	if imagePrompt != "" {
		sec["type"] = "Imagem com perguntas"
		sec["imagePrompt"] = imagePrompt
	}
	raw, _ := json.Marshal(map[string]any{
		"pageNumber": pageNumber,
		"pageTitle":  fmt.Sprintf("Página %d", pageNumber),
		"sections":   []any{sec},
	})
	return raw
}

func TestGeneratePagesInOrder(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: structureJSON(1, "")},
		llm.MockResponse{Content: structureJSON(2, "")},
	)
	o := New(pagegen.NewGenerator(mock), nil)

	pages, err := o.Generate(context.Background(), twoPageForm(), Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	for i, p := range pages {
		if p.PageNumber != i+1 {
			t.Errorf("page %d has number %d", i, p.PageNumber)
		}
		if p.ID == "" {
			t.Errorf("page %d missing ID", i)
		}
	}
}

func TestGenerateEmitsGrowingSnapshots(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: structureJSON(1, "")},
		llm.MockResponse{Content: structureJSON(2, "")},
	)
	o := New(pagegen.NewGenerator(mock), nil)

	var doneCounts []int
	progress := func(p Progress) {
		if p.Step == StepPageDone {
			doneCounts = append(doneCounts, len(p.Pages))
		}
	}

	_, err := o.Generate(context.Background(), twoPageForm(), Options{
		Progress: progress,
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(doneCounts) != 2 || doneCounts[0] != 1 || doneCounts[1] != 2 {
		t.Errorf("snapshot growth = %v, want [1 2]", doneCounts)
	}
}

func TestGenerateAbortsOnStructureFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: structureJSON(1, "")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	o := New(pagegen.NewGenerator(mock), nil)

	var lastSnapshot []activity.GeneratedPage
	pages, err := o.Generate(context.Background(), twoPageForm(), Options{
		Progress: func(p Progress) { lastSnapshot = p.Pages },
		Logger:   quietLogger(),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if pages != nil {
		t.Error("partial result must be discarded on abort")
	}
	if len(lastSnapshot) != 1 {
		t.Errorf("delivered snapshot should survive the abort, got %d pages", len(lastSnapshot))
	}
}

func TestGenerateAttachesImages(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: structureJSON(1, "a farm scene")},
	)
	images := imagegen.NewMockProvider()
	o := New(pagegen.NewGenerator(mock), images)

	form := twoPageForm()
	form.NumPages = 1
	form.PageConfigs = form.PageConfigs[:1]

	pages, err := o.Generate(context.Background(), form, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	page := pages[0]
	if len(page.Images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(page.Images))
	}
	sec := page.Structure.Sections[0]
	if sec.GeneratedImageID != page.Images[0].ID {
		t.Error("section image reference not set")
	}
	if page.Images[0].Base64Data == "" {
		t.Error("image data empty")
	}
}

func TestGenerateToleratesImageFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: structureJSON(1, "a farm scene")},
	)
	images := imagegen.NewMockProvider()
	images.Err = errors.New("rede instável")
	o := New(pagegen.NewGenerator(mock), images)

	form := twoPageForm()
	form.NumPages = 1
	form.PageConfigs = form.PageConfigs[:1]

	pages, err := o.Generate(context.Background(), form, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("generic image failure must not abort: %v", err)
	}
	if len(pages) != 1 || len(pages[0].Images) != 0 {
		t.Errorf("expected page without images, got %+v", pages)
	}
	if pages[0].Structure.Sections[0].GeneratedImageID != "" {
		t.Error("image reference must stay empty after failure")
	}
}

func TestGenerateQuotaIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: structureJSON(1, "a farm scene")},
	)
	images := imagegen.NewMockProvider()
	images.Err = &llm.ErrQuotaExceeded{Err: errors.New("RESOURCE_EXHAUSTED")}
	o := New(pagegen.NewGenerator(mock), images)

	form := twoPageForm()
	form.NumPages = 1
	form.PageConfigs = form.PageConfigs[:1]

	pages, err := o.Generate(context.Background(), form, Options{Logger: quietLogger()})
	if !llm.IsQuota(err) {
		t.Fatalf("expected quota error, got %v", err)
	}
	if pages != nil {
		t.Error("quota abort must discard the result")
	}
}

func TestGenerateRejectsInvalidForm(t *testing.T) {
	o := New(pagegen.NewGenerator(llm.NewMockProvider()), nil)

	form := twoPageForm()
	form.NumPages = 3 // mismatch with 2 page configs

	if _, err := o.Generate(context.Background(), form, Options{Logger: quietLogger()}); err == nil {
		t.Fatal("expected validation error")
	}
}
