package ats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Section maximums
const (
	MaxPersonalInfoScore   = 20
	MaxExperienceScore     = 35
	MaxEducationScore      = 15
	MaxSkillsScore         = 20
	MaxCertificationsScore = 5
	MaxProjectsScore       = 5
)

const (
	// minSummaryLength is the exclusive lower bound on summary length in runes
	minSummaryLength = 50
	// strongSignalCount is the action verb / achievement count that earns full credit
	strongSignalCount = 3
	// minSkillJobMatches is the number of JD keywords skills should cover before nagging
	minSkillJobMatches = 3
	// maxListedKeywords caps keywords named in a single feedback line
	maxListedKeywords = 5
)

// ScorePersonalInfo scores contact details and summary out of 20.
func ScorePersonalInfo(info types.PersonalInfo) types.SectionResult {
	result := newSection(MaxPersonalInfoScore)

	result.award(info.FullName != "", 5, "Add your full name")
	result.award(info.Email != "", 5, "Add email address")
	result.award(info.Phone != "", 5, "Add phone number")
	result.award(info.Location != "", 3, "Add location (city, state)")
	result.award(utf8.RuneCountInString(info.Summary) > minSummaryLength, 2, "Add professional summary (50+ characters)")

	return result.SectionResult
}

// ScoreExperience scores work history out of 35: presence, completeness, action verbs
// and quantified achievements.
func ScoreExperience(experience []types.Experience) types.SectionResult {
	result := newSection(MaxExperienceScore)

	if len(experience) == 0 {
		result.feedback("Add work experience")
		return result.SectionResult
	}

	result.add(10)

	complete := 0
	for _, exp := range experience {
		if exp.IsComplete() {
			complete++
		}
	}
	result.add(min(complete*3, 9))
	if complete < len(experience) {
		result.feedback("Complete all experience entries (company, position, dates, description)")
	}

	descriptions := make([]string, 0, len(experience))
	for _, exp := range experience {
		descriptions = append(descriptions, exp.Description)
	}
	verbs := countActionVerbs(strings.Join(descriptions, " "))
	switch {
	case verbs >= strongSignalCount:
		result.add(8)
	case verbs > 0:
		result.add(4)
		result.feedback("Use more action verbs (Developed, Led, Managed, Implemented)")
	default:
		result.feedback("Start bullet points with action verbs (Developed, Led, Managed)")
	}

	achievements := 0
	for _, exp := range experience {
		achievements += CountQuantifiedAchievements(exp.Description + " " + strings.Join(exp.Achievements, " "))
	}
	switch {
	case achievements >= strongSignalCount:
		result.add(8)
	case achievements > 0:
		result.add(4)
		result.feedback("Add more quantifiable achievements (e.g., 'Increased sales by 40%')")
	default:
		result.feedback("Include measurable results (percentages, numbers, metrics)")
	}

	return result.SectionResult
}

// ScoreEducation scores education out of 15.
func ScoreEducation(education []types.Education) types.SectionResult {
	result := newSection(MaxEducationScore)

	if len(education) == 0 {
		result.feedback("Add education information")
		return result.SectionResult
	}

	result.add(10)

	complete := true
	for _, edu := range education {
		if !edu.IsComplete() {
			complete = false
			break
		}
	}
	result.award(complete, 5, "Complete education entries (institution, degree, field of study)")

	return result.SectionResult
}

// ScoreSkills scores the skills section out of 20 by count. When a job description is
// given it also reports JD keywords the skills miss; that check never changes the score.
func ScoreSkills(skills []types.Skill, jobDescription string) types.SectionResult {
	result := newSection(MaxSkillsScore)
	count := len(skills)

	switch {
	case count == 0:
		result.feedback("Add relevant skills (aim for 8-12 skills)")
	case count < 5:
		result.add(8)
		result.feedback(fmt.Sprintf("Add more skills (current: %d, recommended: 8-12)", count))
	case count < 8:
		result.add(15)
		result.feedback("Consider adding 2-3 more relevant skills")
	default:
		result.add(20)
	}

	if jobDescription != "" && count > 0 {
		names := normalizedSkillNames(skills)

		var missing []string
		matches := 0
		for _, keyword := range ExtractKeywords(jobDescription) {
			if matchesAnySkill(names, keyword) {
				matches++
			} else {
				missing = append(missing, keyword)
			}
		}

		if matches < minSkillJobMatches && len(missing) > 0 {
			result.feedback("Add skills from job description: " + strings.Join(firstN(missing, maxListedKeywords), ", "))
		}
	}

	return result.SectionResult
}

// ScoreCertifications awards 5 points for having any certification.
func ScoreCertifications(certifications []types.Certification) types.SectionResult {
	result := newSection(MaxCertificationsScore)
	if len(certifications) > 0 {
		result.add(MaxCertificationsScore)
	}
	return result.SectionResult
}

// ScoreProjects scores projects out of 5, with 2 of those points for listing technologies.
func ScoreProjects(projects []types.Project) types.SectionResult {
	result := newSection(MaxProjectsScore)

	if len(projects) == 0 {
		return result.SectionResult
	}

	result.add(3)

	hasTech := false
	for _, project := range projects {
		if len(project.Technologies) > 0 {
			hasTech = true
			break
		}
	}
	result.award(hasTech, 2, "Add technologies used in projects")

	return result.SectionResult
}

// countActionVerbs returns how many distinct action verbs appear as words in text.
func countActionVerbs(text string) int {
	words := make(map[string]bool)
	for _, word := range strings.Fields(NormalizeText(text)) {
		words[word] = true
	}

	count := 0
	for _, verb := range actionVerbs {
		if words[verb] {
			count++
		}
	}
	return count
}

// sectionBuilder accumulates a bounded score and feedback for one section.
type sectionBuilder struct {
	types.SectionResult
}

func newSection(maxScore int) *sectionBuilder {
	return &sectionBuilder{types.SectionResult{MaxScore: maxScore, Feedback: []string{}}}
}

func (b *sectionBuilder) add(points int) {
	b.Score = min(b.Score+points, b.MaxScore)
}

func (b *sectionBuilder) feedback(msg string) {
	b.Feedback = append(b.Feedback, msg)
}

// award adds points when ok holds and records msg otherwise.
func (b *sectionBuilder) award(ok bool, points int, msg string) {
	if ok {
		b.add(points)
		return
	}
	b.feedback(msg)
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
