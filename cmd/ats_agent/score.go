package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against ATS heuristics",
	Long: `Scores a resume JSON file section by section, applies the role weight profile and
formatting penalties, and optionally matches it against a job description from a file
or URL. With --ai, a Gemini model adds written feedback and suggestions.`,
	RunE: runScore,
}

var (
	scoreResume string
	scoreJob    string
	scoreJobURL string
	scoreRole   string
	scoreAI     bool
	scoreOutput string
	scoreAsJSON bool
)

// scoreResult is the JSON written by score: the report plus keyword suggestions.
type scoreResult struct {
	*types.ScoreReport
	SuggestedKeywords []string `json:"suggested_keywords"`
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL of a job posting to match against")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "", "Role level: entry, mid or senior (default from config, else mid)")
	scoreCmd.Flags().BoolVar(&scoreAI, "ai", false, "Request AI feedback (requires GEMINI_API_KEY)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Write the JSON report to this file")
	scoreCmd.Flags().BoolVar(&scoreAsJSON, "json", false, "Print the JSON report instead of the summary")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	resume, err := ats.LoadResume(scoreResume)
	if err != nil {
		return err
	}

	stack := buildScoringStack(ctx, scoreAI)
	defer stack.Close()

	jobDescription, err := loadJobDescription(ctx, scoreJob, scoreJobURL, stack.cache)
	if err != nil {
		return err
	}

	role := resolveRole(scoreRole)
	logger.Debug("scoring resume",
		slog.String("resume", scoreResume),
		slog.String("role", string(role)),
		slog.Int("job_description_chars", len(jobDescription)))

	report := stack.scorer.Score(ctx, resume, jobDescription, role)
	result := scoreResult{
		ScoreReport:       report,
		SuggestedKeywords: ats.SuggestKeywords(resume, jobDescription),
	}

	if scoreOutput != "" {
		if err := writeJSON(cmd.OutOrStdout(), scoreOutput, result); err != nil {
			return err
		}
	}
	if scoreAsJSON {
		return writeJSON(cmd.OutOrStdout(), "", result)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintReport(report)
	printer.PrintSuggestions(result.SuggestedKeywords)
	if scoreOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report: %s\n", scoreOutput)
	}
	return nil
}
