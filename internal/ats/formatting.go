package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// FormattingPenalty is subtracted from the aggregate score when any formatting issue is found.
const FormattingPenalty = 5.0

// Formatting issue messages
const (
	IssueNameGlyphs  = "Remove special characters/emojis from name"
	IssueEmailFormat = "Email format may not be recognized"
	IssuePhoneFormat = "Use standard phone format (e.g., +1-555-123-4567 or (555) 123-4567)"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

//nolint:gochecknoglobals // formatting heuristics
var (
	// problematicGlyphs are decorative characters ATS parsers commonly choke on
	problematicGlyphs = "★☆♥♦●○◆◇■□▪▫"
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneCharsPattern = regexp.MustCompile(`^\+?[0-9 ().-]+$`)
)

// CheckFormatting inspects personal info for characters and formats that ATS parsers may reject.
func CheckFormatting(resume *types.ResumeData) types.FormattingCheck {
	issues := []string{}
	if resume == nil {
		return types.FormattingCheck{HasIssues: false, Issues: issues}
	}

	info := resume.PersonalInfo

	if strings.ContainsAny(info.FullName, problematicGlyphs) {
		issues = append(issues, IssueNameGlyphs)
	}

	if info.Email != "" && !emailPattern.MatchString(info.Email) {
		issues = append(issues, IssueEmailFormat)
	}

	if info.Phone != "" && !isStandardPhone(info.Phone) {
		issues = append(issues, IssuePhoneFormat)
	}

	return types.FormattingCheck{
		HasIssues: len(issues) > 0,
		Issues:    issues,
	}
}

// isStandardPhone accepts digit groups separated by spaces, dots, hyphens or parentheses,
// with an optional leading plus and 10 to 15 digits in total.
func isStandardPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !phoneCharsPattern.MatchString(phone) {
		return false
	}

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}
