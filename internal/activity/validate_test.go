package activity

import (
	"errors"
	"testing"
)

func validForm() FormData {
	return FormData{
		Age:        AgeSete,
		SchoolYear: YearSegundo,
		NumPages:   1,
		PageConfigs: []PageConfig{
			{ID: "p1", Subject: SubjectMatematica},
		},
		Components:    []ComponentType{ComponentTextoPerguntas},
		SpecificTopic: "Adição",
	}
}

func TestValidate_OK(t *testing.T) {
	f := validForm()
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FormData)
		field  string
	}{
		{"unknown age", func(f *FormData) { f.Age = "99 anos" }, "age"},
		{"unknown year", func(f *FormData) { f.SchoolYear = "faculdade" }, "schoolYear"},
		{"zero pages", func(f *FormData) { f.NumPages = 0 }, "numPages"},
		{"config count mismatch", func(f *FormData) { f.NumPages = 2 }, "pageConfigs"},
		{"empty subject", func(f *FormData) { f.PageConfigs[0].Subject = "" }, "pageConfigs[0].subject"},
		{"unknown subject", func(f *FormData) { f.PageConfigs[0].Subject = "Astronomia" }, "pageConfigs[0].subject"},
		{"no components", func(f *FormData) { f.Components = nil }, "activityComponents"},
		{"unknown component", func(f *FormData) { f.Components = []ComponentType{"Sudoku"} }, "activityComponents[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := f.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestValidate_ColoringOnlyNeedsNoComponents(t *testing.T) {
	f := FormData{
		Age:         AgeCinco,
		SchoolYear:  YearInfantil,
		NumPages:    1,
		PageConfigs: []PageConfig{{ID: "p1", Subject: SubjectColorir}},
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("coloring-only form should validate: %v", err)
	}
}

func TestSectionType_Known(t *testing.T) {
	for _, st := range SectionTypes {
		if !st.Known() {
			t.Errorf("declared type %q not recognized", st)
		}
	}
	if SectionType("Palavras Cruzadas").Known() {
		t.Error("unknown type reported as known")
	}
}

func TestSectionType_HasAnswerLines(t *testing.T) {
	if SectionMultiplaEscolha.HasAnswerLines() {
		t.Error("multiple choice should not draw answer lines")
	}
	if SectionVerdadeiroFalso.HasAnswerLines() {
		t.Error("true/false should not draw answer lines")
	}
	if !SectionTextoPerguntas.HasAnswerLines() {
		t.Error("text+questions should draw answer lines")
	}
}

func TestPage_ImageByID(t *testing.T) {
	p := GeneratedPage{
		Images: []GeneratedImage{{ID: "img-1", Base64Data: "AAA"}},
	}
	if img := p.ImageByID("img-1"); img == nil || img.Base64Data != "AAA" {
		t.Error("expected to find img-1")
	}
	if p.ImageByID("img-2") != nil {
		t.Error("expected nil for unknown id")
	}
	if p.ImageByID("") != nil {
		t.Error("expected nil for empty id")
	}
}
