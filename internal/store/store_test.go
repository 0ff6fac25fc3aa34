package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/smartcriacao/atividade/internal/activity"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUserGetOrCreate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	users := s.UserRepo()

	u, err := users.GetOrCreate(ctx, "prof@escola.br")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if u.ID == "" {
		t.Error("expected non-empty ID")
	}
	if u.IsAdmin || u.IsSubscribed {
		t.Error("new user should start on the free tier")
	}

	again, err := users.GetOrCreate(ctx, "prof@escola.br")
	if err != nil {
		t.Fatalf("GetOrCreate (second): %v", err)
	}
	if again.ID != u.ID {
		t.Errorf("expected same user, got %s and %s", u.ID, again.ID)
	}
}

func TestUserSetFlags(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	users := s.UserRepo()

	u, err := users.GetOrCreate(ctx, "prof@escola.br")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	if err := users.SetSubscribed(ctx, u.ID, true); err != nil {
		t.Fatalf("SetSubscribed: %v", err)
	}
	if err := users.SetAdmin(ctx, u.ID, true); err != nil {
		t.Fatalf("SetAdmin: %v", err)
	}

	got, err := users.GetOrCreate(ctx, "prof@escola.br")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !got.IsSubscribed || !got.IsAdmin {
		t.Errorf("flags not persisted: subscribed=%v admin=%v", got.IsSubscribed, got.IsAdmin)
	}

	if err := users.SetAdmin(ctx, "missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func testActivity(userID string) *SavedActivity {
	return &SavedActivity{
		UserID: userID,
		Name:   "Matemática - 7 anos",
		FormData: activity.FormData{
			Age:        activity.AgeSete,
			SchoolYear: activity.YearSegundo,
			NumPages:   1,
			PageConfigs: []activity.PageConfig{
				{ID: "pc1", Subject: activity.SubjectMatematica},
			},
			Components:    []activity.ComponentType{activity.ComponentTextoPerguntas},
			SpecificTopic: "Adição",
		},
		Pages: []activity.GeneratedPage{
			{
				ID:         "p1",
				PageNumber: 1,
				Structure: activity.PageStructure{
					PageNumber: 1,
					Subject:    activity.SubjectMatematica,
					PageTitle:  "Somando com Alegria",
					Sections: []activity.Section{
						{ID: "s1", Type: activity.SectionTextoPerguntas, Title: "Contas"},
					},
				},
			},
		},
	}
}

func TestActivitySaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, err := s.UserRepo().GetOrCreate(ctx, "prof@escola.br")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	acts := s.ActivityRepo()
	id, err := acts.Save(ctx, testActivity(u.ID))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := acts.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Matemática - 7 anos" {
		t.Errorf("name = %q", got.Name)
	}
	if got.FormData.Age != "7 anos" {
		t.Errorf("form age = %q", got.FormData.Age)
	}
	if len(got.Pages) != 1 || got.Pages[0].Structure.PageTitle != "Somando com Alegria" {
		t.Errorf("pages not round-tripped: %+v", got.Pages)
	}
}

func TestActivityAnonymousOwner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	acts := s.ActivityRepo()

	// No users row exists; an unowned save must still pass the
	// foreign-key check.
	id, err := acts.Save(ctx, testActivity(""))
	if err != nil {
		t.Fatalf("Save (anonymous): %v", err)
	}

	got, err := acts.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != "" {
		t.Errorf("expected empty owner, got %q", got.UserID)
	}

	list, err := acts.List(ctx, "")
	if err != nil {
		t.Fatalf("List (anonymous): %v", err)
	}
	if len(list) != 1 || list[0].ID != id {
		t.Fatalf("anonymous list = %+v, want the saved worksheet", list)
	}

	// Owned worksheets stay out of the anonymous listing and vice versa.
	u, err := s.UserRepo().GetOrCreate(ctx, "prof@escola.br")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if _, err := acts.Save(ctx, testActivity(u.ID)); err != nil {
		t.Fatalf("Save (owned): %v", err)
	}

	if list, err = acts.List(ctx, ""); err != nil || len(list) != 1 {
		t.Fatalf("anonymous list after owned save = %d items, err %v", len(list), err)
	}
	owned, err := acts.List(ctx, u.ID)
	if err != nil || len(owned) != 1 {
		t.Fatalf("owned list = %d items, err %v", len(owned), err)
	}
}

func TestActivityListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, err := s.UserRepo().GetOrCreate(ctx, "prof@escola.br")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	acts := s.ActivityRepo()
	for _, name := range []string{"primeira", "segunda", "terceira"} {
		a := testActivity(u.ID)
		a.Name = name
		if _, err := acts.Save(ctx, a); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
	}

	list, err := acts.List(ctx, u.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(list))
	}
}

func TestActivityDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, err := s.UserRepo().GetOrCreate(ctx, "prof@escola.br")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	acts := s.ActivityRepo()
	id, err := acts.Save(ctx, testActivity(u.ID))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := acts.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := acts.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := acts.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	for i := 0; i < 3; i++ {
		err := events.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "page-structure",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    12,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	got, err := events.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(got))
	}
	if got[0].ID < got[1].ID {
		t.Error("expected newest first")
	}
	if got[0].Provider != "mock" || got[0].Purpose != "page-structure" {
		t.Errorf("event fields not persisted: %+v", got[0])
	}
}

func TestEventGetByID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	err := events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "page-structure",
		RequestBody:  "prompt",
		ResponseBody: "{}",
		Success:      true,
	})
	if err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	all, err := events.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	e, err := events.GetLLMEvent(ctx, int(all[0].ID))
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if e == nil || e.RequestBody != "prompt" || e.ResponseBody != "{}" {
		t.Errorf("unexpected event: %+v", e)
	}

	missing, err := events.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("GetLLMEvent (missing): %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown ID, got %+v", missing)
	}
}

func TestEventUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	rows := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "page-structure", InputTokens: 100, OutputTokens: 40, LatencyMs: 10, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "page-structure", InputTokens: 300, OutputTokens: 60, LatencyMs: 30, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "image", InputTokens: 50, OutputTokens: 0, LatencyMs: 20, Success: false},
	}
	for _, d := range rows {
		if err := events.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	var pages *PurposeUsage
	for i := range byPurpose {
		if byPurpose[i].Purpose == "page-structure" {
			pages = &byPurpose[i]
		}
	}
	if pages == nil {
		t.Fatal("page-structure purpose missing")
	}
	if pages.Calls != 2 || pages.InputTokens != 400 || pages.OutputTokens != 100 {
		t.Errorf("unexpected aggregate: %+v", pages)
	}
	if pages.AvgLatencyMs != 20 {
		t.Errorf("expected avg latency 20, got %d", pages.AvgLatencyMs)
	}

	byModel, err := events.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
}
