package ats

import "github.com/jonathan/ats-scorer/internal/types"

const (
	// maxSuggestions caps the combined suggestion list
	maxSuggestions = 15
	// maxJobSuggestions caps suggestions taken from the job description
	maxJobSuggestions = 10
)

// SuggestKeywords recommends keywords the resume's skills do not yet cover: first up to ten
// job-description keywords, then canonical names from the technical taxonomy, fifteen at most.
func SuggestKeywords(resume *types.ResumeData, jobDescription string) []string {
	var skills []string
	if resume != nil {
		skills = normalizedSkillNames(resume.Skills)
	}
	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool)

	if jobDescription != "" {
		for _, keyword := range ExtractKeywords(jobDescription) {
			if len(suggestions) == maxJobSuggestions {
				break
			}
			if matchesAnySkill(skills, keyword) {
				continue
			}
			suggestions = append(suggestions, keyword)
			seen[keyword] = true
		}
	}

	for _, entry := range technicalKeywords {
		if len(suggestions) >= maxSuggestions {
			break
		}
		if seen[entry.Name] || coversVariant(skills, entry.Variants) {
			continue
		}
		suggestions = append(suggestions, entry.Name)
		seen[entry.Name] = true
	}

	return suggestions
}

func normalizedSkillNames(skills []types.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, NormalizeText(skill.Name))
	}
	return names
}

// matchesAnySkill reports whether keyword fuzzy-matches one of the normalized skill names.
func matchesAnySkill(skills []string, keyword string) bool {
	for _, skill := range skills {
		if FuzzyMatch(skill, keyword) {
			return true
		}
	}
	return false
}

func coversVariant(skills []string, variants []string) bool {
	for _, variant := range variants {
		if matchesAnySkill(skills, variant) {
			return true
		}
	}
	return false
}
