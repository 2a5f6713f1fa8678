package ats

import (
	"strings"
	"unicode/utf8"
)

const (
	// maxJobKeywords caps the keywords extracted from a job description
	maxJobKeywords = 20
	// minKeywordLength is the exclusive lower bound on keyword length in runes
	minKeywordLength = 3
)

//nolint:gochecknoglobals // fixed stop-word set
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "this": true,
	"that": true, "from": true, "have": true, "will": true, "your": true,
	"what": true, "about": true, "into": true, "they": true, "their": true,
	"there": true, "which": true, "would": true, "should": true, "could": true,
	"been": true, "were": true, "also": true, "such": true, "than": true,
	"them": true, "these": true, "those": true, "when": true, "where": true,
	"while": true, "must": true, "more": true, "most": true, "other": true,
	"some": true, "very": true,
}

// ExtractKeywords pulls candidate keywords out of a free-text job description.
// Tokens of the normalized text longer than three runes that are not stop words are kept,
// deduplicated in order of first appearance, and truncated to the first twenty.
func ExtractKeywords(jobDescription string) []string {
	if jobDescription == "" {
		return []string{}
	}

	normalized := NormalizeText(jobDescription)
	seen := make(map[string]bool)
	keywords := make([]string, 0, maxJobKeywords)

	for _, word := range strings.Fields(normalized) {
		if utf8.RuneCountInString(word) <= minKeywordLength || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == maxJobKeywords {
			break
		}
	}

	return keywords
}
