package ats

import "regexp"

// maxAchievementCount caps the quantified achievements counted in a single text
const maxAchievementCount = 5

//nolint:gochecknoglobals // compiled pattern library
var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+[kKmM]`),
	regexp.MustCompile(`(?i)increased by \d+`),
	regexp.MustCompile(`(?i)reduced by \d+`),
	regexp.MustCompile(`(?i)improved by \d+`),
	regexp.MustCompile(`(?i)saved (?:by )?\d+`),
	regexp.MustCompile(`(?i)\d+ users`),
	regexp.MustCompile(`(?i)\d+ customers`),
}

// CountQuantifiedAchievements counts non-overlapping matches of every quantified-result
// pattern in text, summed across patterns and capped at five.
func CountQuantifiedAchievements(text string) int {
	if text == "" {
		return 0
	}

	count := 0
	for _, pattern := range achievementPatterns {
		count += len(pattern.FindAllStringIndex(text, -1))
		if count >= maxAchievementCount {
			return maxAchievementCount
		}
	}

	return count
}
