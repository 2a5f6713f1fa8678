package enhance

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error

	prompt string
	tier   llm.ModelTier
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompt = prompt
	f.tier = tier
	return f.response, f.err
}

const sampleResponse = `1. Personal Information: add a two-line summary
   • Mention years of experience
   • Name your core stack
2. Experience: quantify each role
   • Add team sizes
3. Skills: list Kubernetes and Terraform explicitly

10. Projects: link a public repository`

func sampleResume() *types.ResumeData {
	return &types.ResumeData{
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe"},
		Experience:   []types.Experience{{Company: "Acme"}, {Company: "Globex"}},
		Skills:       []types.Skill{{Name: "Go"}},
	}
}

func TestNoop(t *testing.T) {
	result, err := Noop{}.Enhance(context.Background(), sampleResume(), 50, nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestLLMEnhancer_Success(t *testing.T) {
	gen := &fakeGenerator{response: "\n" + sampleResponse + "\n"}
	enhancer := NewLLMEnhancer(gen)

	result, err := enhancer.Enhance(context.Background(), sampleResume(), 72.5, []string{"• Skills: Add more skills"})

	require.NoError(t, err)
	assert.Equal(t, sampleResponse, result.Feedback)
	assert.Equal(t, []string{
		"Personal Information: add a two-line summary",
		"Experience: quantify each role",
		"Skills: list Kubernetes and Terraform explicitly",
		"Projects: link a public repository",
	}, result.Suggestions)
	assert.Equal(t, llm.TierLite, gen.tier)
	assert.Contains(t, gen.prompt, "Current ATS score: 72.5%")
	assert.Contains(t, gen.prompt, "• Skills: Add more skills")
}

func TestLLMEnhancer_Failures(t *testing.T) {
	tests := []struct {
		name  string
		gen   *fakeGenerator
		stage string
	}{
		{"client error", &fakeGenerator{err: errors.New("quota exceeded")}, "generate"},
		{"empty response", &fakeGenerator{response: "   "}, "generate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewLLMEnhancer(tt.gen).Enhance(context.Background(), sampleResume(), 40, nil)

			assert.Nil(t, result)
			var enhanceErr *Error
			require.True(t, errors.As(err, &enhanceErr))
			assert.Equal(t, tt.stage, enhanceErr.Stage)
		})
	}

	_, err := NewLLMEnhancer(nil).Enhance(context.Background(), sampleResume(), 40, nil)
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(sampleResume(), 94, []string{"• Experience: Add work experience", "• Skills: Add skills"})

	require.NoError(t, err)
	assert.Contains(t, prompt, "Current ATS score: 94.0%")
	assert.Contains(t, prompt, "- Name: Jane Doe")
	assert.Contains(t, prompt, "- Experience entries: 2")
	assert.Contains(t, prompt, "- Skills: 1")
	assert.Contains(t, prompt, "- Projects: 0")
	assert.Contains(t, prompt, "• Experience: Add work experience\n• Skills: Add skills")
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildPrompt_EmptyInputs(t *testing.T) {
	prompt, err := BuildPrompt(nil, 0, nil)

	require.NoError(t, err)
	assert.Contains(t, prompt, "- Name: N/A")
	assert.Contains(t, prompt, "No major issues detected")
}

func TestParseSuggestions(t *testing.T) {
	assert.Equal(t, []string{}, ParseSuggestions(""))
	assert.Equal(t, []string{}, ParseSuggestions("Looks good overall.\n• Keep it up"))
	assert.Equal(t, []string{}, ParseSuggestions("2024. was a good year\n1.\n1. • nested bullet"))

	many := "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g"
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, ParseSuggestions(many))
}
