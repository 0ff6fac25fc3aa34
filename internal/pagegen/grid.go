package pagegen

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// SanitizeGrid repairs a word-search grid so every row has the same
// rune count. The first row's length (after whitespace removal) is
// authoritative: longer rows are truncated, shorter rows padded with
// random uppercase letters. Returns nil when the grid is unusable
// (empty input or empty first row).
func SanitizeGrid(rows []string) []string {
	if len(rows) == 0 {
		return nil
	}

	cleaned := make([][]rune, len(rows))
	for i, row := range rows {
		cleaned[i] = []rune(stripSpace(row))
	}

	target := len(cleaned[0])
	if target == 0 {
		return nil
	}

	out := make([]string, len(cleaned))
	for i, row := range cleaned {
		switch {
		case len(row) > target:
			row = row[:target]
		case len(row) < target:
			for len(row) < target {
				row = append(row, randomUppercase())
			}
		}
		out[i] = string(row)
	}
	return out
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func randomUppercase() rune {
	return rune('A' + rand.IntN(26))
}
