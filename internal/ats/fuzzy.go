package ats

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultFuzzyThreshold is the minimum similarity ratio for two strings to be considered the same.
const DefaultFuzzyThreshold = 0.85

// FuzzyMatch reports whether text and keyword denote the same skill using the default threshold.
func FuzzyMatch(text, keyword string) bool {
	return FuzzyMatchThreshold(text, keyword, DefaultFuzzyThreshold)
}

// FuzzyMatchThreshold lowercases and trims both inputs, returns true when keyword is a
// substring of text, and otherwise compares their similarity ratio against threshold.
func FuzzyMatchThreshold(text, keyword string, threshold float64) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	if strings.Contains(text, keyword) {
		return true
	}

	return SimilarityRatio(text, keyword) >= threshold
}

// SimilarityRatio returns the Ratcliff/Obershelp similarity of a and b in [0, 1].
// Identical strings score 1.0 and strings sharing no characters score 0.0.
// The matcher's junk heuristics make the raw ratio order-dependent, so the larger
// of both orderings is returned.
func SimilarityRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}

	ra, rb := runeSeq(a), runeSeq(b)
	forward := difflib.NewMatcher(ra, rb).Ratio()
	backward := difflib.NewMatcher(rb, ra).Ratio()
	if backward > forward {
		return backward
	}
	return forward
}

// runeSeq splits s into single-rune elements so the line-oriented matcher compares characters.
func runeSeq(s string) []string {
	seq := make([]string, 0, len(s))
	for _, r := range s {
		seq = append(seq, string(r))
	}
	return seq
}
