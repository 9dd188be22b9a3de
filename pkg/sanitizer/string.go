package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims surrounding whitespace, collapses internal runs of
// whitespace to a single space, and drops control characters.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		case unicode.IsControl(r):
			// drop
		default:
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return strings.TrimSpace(result.String())
}

// NormalizeName prepares a person or court name for storage.
func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeLabel prepares a free-form label (sport, description) for storage.
func NormalizeLabel(label string) string {
	return TrimAndNormalize(label)
}
