package imagegen

import (
	"errors"
	"strings"
)

// ErrEmptyPrompt is returned when a section asked for an image without
// supplying a prompt.
var ErrEmptyPrompt = errors.New("imagegen: empty image prompt")

const (
	aspectClause = "16:9 aspect ratio"
	noTextClause = "ABSOLUTELY NO overlaid text, letters, words, or symbols."

	// Portuguese phrasing the page generator sometimes uses for the
	// same no-text constraint; its presence suppresses the English one.
	noTextClausePT = "sem texto sobreposto"

	styleSuffix = "children's illustration style, clean lines, vibrant colors, visually appealing for educational material."
)

// BuildPrompt normalizes a raw section image prompt: it guarantees the
// 16:9 aspect directive and a no-overlaid-text directive are present,
// then appends the house illustration style. Matching is
// case-insensitive so prompts that already carry the clauses are not
// duplicated.
func BuildPrompt(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	if p == "" {
		return "", ErrEmptyPrompt
	}

	lower := strings.ToLower(p)
	if !strings.Contains(lower, strings.ToLower(aspectClause)) {
		p = p + ", " + aspectClause
		lower = strings.ToLower(p)
	}
	if !strings.Contains(lower, "absolutely no overlaid text") &&
		!strings.Contains(lower, noTextClausePT) {
		p = p + ", " + noTextClause
	}

	return p + ", " + styleSuffix, nil
}
