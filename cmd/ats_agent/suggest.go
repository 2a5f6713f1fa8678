package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/observability"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest keywords missing from a resume's skills",
	Long:  "Lists job description keywords and common technical keywords that the resume's skills section does not cover.",
	RunE:  runSuggest,
}

var (
	suggestResume string
	suggestJob    string
	suggestJobURL string
	suggestAsJSON bool
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestResume, "resume", "r", "", "Path to resume JSON file (required)")
	suggestCmd.Flags().StringVarP(&suggestJob, "job", "j", "", "Path to job description text file")
	suggestCmd.Flags().StringVarP(&suggestJobURL, "job-url", "u", "", "URL of a job posting")
	suggestCmd.Flags().BoolVar(&suggestAsJSON, "json", false, "Print suggestions as a JSON array")

	if err := suggestCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	resume, err := ats.LoadResume(suggestResume)
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(cmd.Context(), suggestJob, suggestJobURL, nil)
	if err != nil {
		return err
	}

	suggestions := ats.SuggestKeywords(resume, jobDescription)
	if suggestAsJSON {
		return writeJSON(cmd.OutOrStdout(), "", suggestions)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintSuggestions(suggestions)
	return nil
}
