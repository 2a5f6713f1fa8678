package types

// SectionResult is the output of a single section scorer.
// Invariant: 0 <= Score <= MaxScore.
type SectionResult struct {
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Feedback []string `json:"feedback"`
}

// Ratio returns Score/MaxScore, or 0 when MaxScore is not positive.
func (r SectionResult) Ratio() float64 {
	if r.MaxScore <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.MaxScore)
}

// SectionBreakdown is the per-section entry in a ScoreReport.
type SectionBreakdown struct {
	Score      int     `json:"score"`
	MaxScore   int     `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

// FormattingCheck lists ATS-hostile formatting found in personal info.
type FormattingCheck struct {
	HasIssues bool     `json:"has_issues"`
	Issues    []string `json:"issues"`
}

// ScoreReport is the final result of scoring a resume.
type ScoreReport struct {
	Score            float64                     `json:"score"`
	MaxScore         float64                     `json:"max_score"`
	Percentage       float64                     `json:"percentage"`
	Grade            string                      `json:"grade"`
	Feedback         []string                    `json:"feedback"`
	AIFeedback       *string                     `json:"ai_feedback"`
	AISuggestions    []string                    `json:"ai_suggestions"`
	SectionBreakdown map[string]SectionBreakdown `json:"section_breakdown"`
	FormattingCheck  FormattingCheck             `json:"formatting_check"`
}

// HasAIFeedback reports whether an external enhancer contributed to the report.
func (r *ScoreReport) HasAIFeedback() bool {
	return r != nil && r.AIFeedback != nil && *r.AIFeedback != ""
}

// Enhancement is what an external feedback enhancer adds to a report.
type Enhancement struct {
	Feedback    string   `json:"enhanced_feedback"`
	Suggestions []string `json:"ai_suggestions"`
}
