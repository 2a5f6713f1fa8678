package ats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// MaxTotalScore is the ceiling of the aggregate score.
	MaxTotalScore = 100.0
	// maxFeedbackItems bounds the report's feedback list
	maxFeedbackItems = 10
	// jobMatchPointsPerKeyword and maxJobMatchBonus shape the job description bonus
	jobMatchPointsPerKeyword = 0.5
	maxJobMatchBonus         = 5.0
	// tailorThreshold is the fraction of JD keywords below which tailoring is suggested
	tailorThreshold = 0.3
	// DefaultEnhancerTimeout bounds a single enhancer call.
	DefaultEnhancerTimeout = 15 * time.Second

	bulletPrefix = "• "
)

// Enhancer rewrites or expands deterministic feedback, typically with a hosted text model.
type Enhancer interface {
	Enhance(ctx context.Context, resume *types.ResumeData, score float64, feedback []string) (*types.Enhancement, error)
}

// Engine scores resumes. It holds no per-call state and is safe for concurrent use.
type Engine struct {
	enhancer        Enhancer
	enhancerTimeout time.Duration
	logger          *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithEnhancer sets the optional feedback enhancer.
func WithEnhancer(enhancer Enhancer) Option {
	return func(e *Engine) {
		e.enhancer = enhancer
	}
}

// WithEnhancerTimeout bounds each enhancer call. Non-positive values keep the default.
func WithEnhancerTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		if timeout > 0 {
			e.enhancerTimeout = timeout
		}
	}
}

// WithLogger sets the logger used for enhancer diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine. Without WithEnhancer it produces deterministic reports only.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		enhancerTimeout: DefaultEnhancerTimeout,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score builds the full report for resume, then asks the enhancer (if any) for AI feedback.
// Enhancer failures only leave the ai_* fields empty; Score itself never fails.
func (e *Engine) Score(ctx context.Context, resume *types.ResumeData, jobDescription string, role types.RoleLevel) *types.ScoreReport {
	report := CalculateScore(resume, jobDescription, role)

	if e.enhancer == nil {
		return report
	}

	enhancement, err := e.runEnhancer(ctx, resume, report)
	if err != nil {
		if errors.Is(err, ErrEnhancerDisabled) {
			e.logger.Debug("enhancer disabled, skipping AI feedback")
		} else {
			e.logger.Warn("enhancer failed, continuing without AI feedback", slog.String("error", err.Error()))
		}
		return report
	}

	if enhancement.Feedback != "" {
		feedback := enhancement.Feedback
		report.AIFeedback = &feedback
	}
	if enhancement.Suggestions != nil {
		report.AISuggestions = enhancement.Suggestions
	}
	return report
}

type enhancerOutcome struct {
	enhancement *types.Enhancement
	err         error
}

// runEnhancer calls the enhancer in its own goroutine so a call that ignores ctx still
// cannot hold the caller past the timeout.
func (e *Engine) runEnhancer(ctx context.Context, resume *types.ResumeData, report *types.ScoreReport) (*types.Enhancement, error) {
	ctx, cancel := context.WithTimeout(ctx, e.enhancerTimeout)
	defer cancel()

	feedback := append([]string(nil), report.Feedback...)
	done := make(chan enhancerOutcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- enhancerOutcome{err: fmt.Errorf("enhancer panicked: %v", r)}
			}
		}()
		enhancement, err := e.enhancer.Enhance(ctx, resume, report.Score, feedback)
		done <- enhancerOutcome{enhancement: enhancement, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("enhancer did not finish: %w", ctx.Err())
	case outcome := <-done:
		if outcome.err != nil {
			return nil, outcome.err
		}
		if outcome.enhancement == nil {
			return nil, errors.New("enhancer returned no result")
		}
		return outcome.enhancement, nil
	}
}

// CalculateScore runs the deterministic part of scoring: section scorers, weighting,
// formatting penalty, job description bonus, feedback and grade. It is a pure function
// of its inputs. A nil resume scores like an empty one.
func CalculateScore(resume *types.ResumeData, jobDescription string, role types.RoleLevel) *types.ScoreReport {
	if resume == nil {
		resume = &types.ResumeData{}
	}
	weights := types.WeightsFor(role)
	results := scoreSections(resume, jobDescription)

	total := 0.0
	var feedback []string
	breakdown := make(map[string]types.SectionBreakdown, len(types.Sections))

	for _, section := range types.Sections {
		result := results[section]
		total += result.Ratio() * weights[section] * 100

		for _, msg := range result.Feedback {
			feedback = append(feedback, sectionTitle(section)+": "+msg)
		}

		percentage := 0.0
		if result.MaxScore > 0 {
			percentage = round1(result.Ratio() * 100)
		}
		breakdown[section] = types.SectionBreakdown{
			Score:      result.Score,
			MaxScore:   result.MaxScore,
			Percentage: percentage,
		}
	}

	formatting := CheckFormatting(resume)
	feedback = append(feedback, formatting.Issues...)
	if formatting.HasIssues {
		total -= FormattingPenalty
	}

	if jobDescription != "" {
		bonus, tailor := jobMatch(resume, jobDescription)
		total += bonus
		if tailor != "" {
			feedback = append(feedback, tailor)
		}
	}

	score := round1(math.Max(0, math.Min(MaxTotalScore, total)))

	return &types.ScoreReport{
		Score:            score,
		MaxScore:         MaxTotalScore,
		Percentage:       score,
		Grade:            GradeFor(score),
		Feedback:         formatFeedback(feedback),
		AISuggestions:    []string{},
		SectionBreakdown: breakdown,
		FormattingCheck:  formatting,
	}
}

// GradeFor maps a 0-100 score to a letter grade. Each band includes its lower bound.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func scoreSections(resume *types.ResumeData, jobDescription string) map[string]types.SectionResult {
	return map[string]types.SectionResult{
		types.SectionPersonalInfo:   ScorePersonalInfo(resume.PersonalInfo),
		types.SectionExperience:     ScoreExperience(resume.Experience),
		types.SectionEducation:      ScoreEducation(resume.Education),
		types.SectionSkills:         ScoreSkills(resume.Skills, jobDescription),
		types.SectionCertifications: ScoreCertifications(resume.Certifications),
		types.SectionProjects:       ScoreProjects(resume.Projects),
	}
}

// jobMatch counts JD keywords present anywhere in the serialized resume. It returns the
// bonus and, when too few keywords match, a feedback line naming unmatched ones.
func jobMatch(resume *types.ResumeData, jobDescription string) (float64, string) {
	keywords := ExtractKeywords(jobDescription)
	if len(keywords) == 0 {
		return 0, ""
	}

	raw, err := json.Marshal(resume)
	if err != nil {
		return 0, ""
	}
	text := NormalizeText(string(raw))

	matches := 0
	var unmatched []string
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			matches++
		} else {
			unmatched = append(unmatched, keyword)
		}
	}

	bonus := math.Min(float64(matches)*jobMatchPointsPerKeyword, maxJobMatchBonus)
	if float64(matches) >= float64(len(keywords))*tailorThreshold {
		return bonus, ""
	}
	return bonus, "Tailor resume to job description - include keywords: " +
		strings.Join(firstN(unmatched, maxListedKeywords), ", ")
}

func formatFeedback(feedback []string) []string {
	feedback = firstN(feedback, maxFeedbackItems)
	out := make([]string, 0, len(feedback))
	for _, msg := range feedback {
		if !strings.HasPrefix(msg, bulletPrefix) {
			msg = bulletPrefix + msg
		}
		out = append(out, msg)
	}
	return out
}

//nolint:gochecknoglobals // derived once from the fixed section list
var sectionTitles = func() map[string]string {
	caser := cases.Title(language.English)
	titles := make(map[string]string, len(types.Sections))
	for _, section := range types.Sections {
		titles[section] = caser.String(strings.ReplaceAll(section, "_", " "))
	}
	return titles
}()

func sectionTitle(section string) string {
	return sectionTitles[section]
}

// round1 rounds half away from zero to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
