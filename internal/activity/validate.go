package activity

import (
	"fmt"
	"strings"
)

// ValidationError describes malformed or incomplete form data. It is
// always caught before any generation call is made.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Validate checks the form for structural and enum-membership errors.
// It returns the first problem found as a *ValidationError.
func (f *FormData) Validate() error {
	if !containsAge(f.Age) {
		return &ValidationError{Field: "age", Msg: fmt.Sprintf("valor desconhecido %q", f.Age)}
	}
	if !containsYear(f.SchoolYear) {
		return &ValidationError{Field: "schoolYear", Msg: fmt.Sprintf("valor desconhecido %q", f.SchoolYear)}
	}
	if f.NumPages < 1 {
		return &ValidationError{Field: "numPages", Msg: "deve ser pelo menos 1"}
	}
	if len(f.PageConfigs) != f.NumPages {
		return &ValidationError{
			Field: "pageConfigs",
			Msg:   fmt.Sprintf("esperava %d configurações de página, recebeu %d", f.NumPages, len(f.PageConfigs)),
		}
	}
	for i, pc := range f.PageConfigs {
		if strings.TrimSpace(string(pc.Subject)) == "" {
			return &ValidationError{
				Field: fmt.Sprintf("pageConfigs[%d].subject", i),
				Msg:   fmt.Sprintf("matéria não definida para a página %d", i+1),
			}
		}
		if !containsSubject(pc.Subject) {
			return &ValidationError{
				Field: fmt.Sprintf("pageConfigs[%d].subject", i),
				Msg:   fmt.Sprintf("matéria desconhecida %q", pc.Subject),
			}
		}
	}
	if len(f.Components) == 0 {
		// Visual-only worksheets need no components: every page forces
		// its own section type.
		if !f.allVisualOnly() {
			return &ValidationError{Field: "activityComponents", Msg: "selecione pelo menos um componente"}
		}
	}
	for i, c := range f.Components {
		if !containsComponent(c) {
			return &ValidationError{
				Field: fmt.Sprintf("activityComponents[%d]", i),
				Msg:   fmt.Sprintf("componente desconhecido %q", c),
			}
		}
	}
	return nil
}

func (f *FormData) allVisualOnly() bool {
	for _, pc := range f.PageConfigs {
		if !pc.Subject.IsVisualOnly() {
			return false
		}
	}
	return len(f.PageConfigs) > 0
}

func containsAge(a Age) bool {
	for _, v := range Ages {
		if v == a {
			return true
		}
	}
	return false
}

func containsYear(y SchoolYear) bool {
	for _, v := range SchoolYears {
		if v == y {
			return true
		}
	}
	return false
}

func containsSubject(s Subject) bool {
	for _, v := range Subjects {
		if v == s {
			return true
		}
	}
	return false
}

func containsComponent(c ComponentType) bool {
	for _, v := range ComponentTypes {
		if v == c {
			return true
		}
	}
	return false
}
