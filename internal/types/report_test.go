package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreReport_WireFieldNames(t *testing.T) {
	report := ScoreReport{
		Score:      82.5,
		MaxScore:   100,
		Percentage: 82.5,
		Grade:      "B",
		Feedback:   []string{"• Skills: Consider adding 2-3 more relevant skills"},
		SectionBreakdown: map[string]SectionBreakdown{
			SectionSkills: {Score: 15, MaxScore: 20, Percentage: 75},
		},
		FormattingCheck: FormattingCheck{Issues: []string{}},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"score", "max_score", "percentage", "grade", "feedback", "ai_feedback", "ai_suggestions", "section_breakdown", "formatting_check"} {
		assert.Contains(t, raw, key)
	}
	assert.Nil(t, raw["ai_feedback"])

	breakdown := raw["section_breakdown"].(map[string]any)["skills"].(map[string]any)
	assert.Equal(t, 75.0, breakdown["percentage"])
	assert.Contains(t, string(data), `"has_issues":false`)
}

func TestSectionResult_Ratio(t *testing.T) {
	assert.InDelta(t, 0.75, SectionResult{Score: 15, MaxScore: 20}.Ratio(), 1e-9)
	assert.Equal(t, 0.0, SectionResult{Score: 3, MaxScore: 0}.Ratio())
}

func TestScoreReport_HasAIFeedback(t *testing.T) {
	var nilReport *ScoreReport
	assert.False(t, nilReport.HasAIFeedback())

	empty := ""
	assert.False(t, (&ScoreReport{AIFeedback: &empty}).HasAIFeedback())

	text := "1. Tighten your summary"
	assert.True(t, (&ScoreReport{AIFeedback: &text}).HasAIFeedback())
}

func TestExperience_IsComplete(t *testing.T) {
	assert.True(t, Experience{Company: "Acme", Position: "Engineer", StartDate: "2020", Description: "Built things"}.IsComplete())
	assert.False(t, Experience{Company: "Acme", Position: "Engineer", StartDate: "2020"}.IsComplete())
}

func TestEducation_IsComplete(t *testing.T) {
	assert.True(t, Education{Institution: "State U", Degree: "BS", FieldOfStudy: "CS"}.IsComplete())
	assert.False(t, Education{Institution: "State U", Degree: "BS"}.IsComplete())
}
