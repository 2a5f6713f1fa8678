// Package ats implements the deterministic ATS scoring engine: text normalization,
// job-description keyword extraction, fuzzy skill matching, section scoring and
// role-weighted aggregation.
package ats

import (
	"strings"
	"unicode"
)

// NormalizeText lowercases text, replaces every character that is not a letter, digit,
// whitespace or hyphen with a space, collapses whitespace runs and trims the result.
// NormalizeText is idempotent.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r), r == '-':
			sb.WriteRune(r)
		default:
			// Whitespace and punctuation both become a separator
			sb.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}
