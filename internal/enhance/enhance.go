// Package enhance turns deterministic ATS feedback into model-written advice.
package enhance

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/prompts"
	"github.com/jonathan/ats-scorer/internal/types"
)

// MaxSuggestions caps the suggestions parsed out of a model response.
const MaxSuggestions = 6

// Generator is the part of llm.Client the enhancer needs.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// Noop is the enhancer used when AI feedback is switched off.
type Noop struct{}

// Enhance always reports ErrDisabled.
func (Noop) Enhance(context.Context, *types.ResumeData, float64, []string) (*types.Enhancement, error) {
	return nil, ErrDisabled
}

// LLMEnhancer asks a text model for recommendations based on the score and current issues.
type LLMEnhancer struct {
	client Generator
	tier   llm.ModelTier
}

// NewLLMEnhancer creates an enhancer backed by client using the lite model tier.
func NewLLMEnhancer(client Generator) *LLMEnhancer {
	return &LLMEnhancer{client: client, tier: llm.TierLite}
}

var (
	_ ats.Enhancer = (*LLMEnhancer)(nil)
	_ ats.Enhancer = Noop{}
)

// Enhance returns the model's full answer as feedback plus the numbered recommendations in it.
func (e *LLMEnhancer) Enhance(ctx context.Context, resume *types.ResumeData, score float64, feedback []string) (*types.Enhancement, error) {
	if e.client == nil {
		return nil, &Error{Stage: "setup", Cause: errors.New("no model client configured")}
	}

	prompt, err := BuildPrompt(resume, score, feedback)
	if err != nil {
		return nil, &Error{Stage: "prompt", Cause: err}
	}

	text, err := e.client.GenerateContent(ctx, prompt, e.tier)
	if err != nil {
		return nil, &Error{Stage: "generate", Cause: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &Error{Stage: "generate", Cause: errors.New("empty response")}
	}

	return &types.Enhancement{
		Feedback:    text,
		Suggestions: ParseSuggestions(text),
	}, nil
}

// BuildPrompt renders the enhancement prompt from a summary of the resume.
func BuildPrompt(resume *types.ResumeData, score float64, feedback []string) (string, error) {
	template, err := prompts.Get(prompts.ATSFile, "enhance-feedback")
	if err != nil {
		return "", err
	}
	if resume == nil {
		resume = &types.ResumeData{}
	}

	name := resume.PersonalInfo.FullName
	if name == "" {
		name = "N/A"
	}

	issues := strings.Join(feedback, "\n")
	if len(feedback) == 0 {
		if issues, err = prompts.Get(prompts.ATSFile, "no-issues"); err != nil {
			return "", err
		}
	}

	return prompts.Format(template, map[string]string{
		"Score":               strconv.FormatFloat(score, 'f', 1, 64),
		"Name":                name,
		"ExperienceCount":     strconv.Itoa(len(resume.Experience)),
		"EducationCount":      strconv.Itoa(len(resume.Education)),
		"SkillsCount":         strconv.Itoa(len(resume.Skills)),
		"CertificationsCount": strconv.Itoa(len(resume.Certifications)),
		"ProjectsCount":       strconv.Itoa(len(resume.Projects)),
		"Feedback":            issues,
	}), nil
}

// ParseSuggestions collects the top-level numbered recommendations ("1. ...") from text.
// Sub-point bullets are skipped and at most MaxSuggestions are returned.
func ParseSuggestions(text string) []string {
	suggestions := []string{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !unicode.IsDigit(rune(line[0])) {
			continue
		}

		dot := strings.IndexByte(line, '.')
		if dot < 0 || dot > 2 {
			continue
		}

		suggestion := strings.TrimSpace(line[dot+1:])
		if suggestion == "" || strings.HasPrefix(suggestion, "•") {
			continue
		}

		suggestions = append(suggestions, suggestion)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}

	return suggestions
}
