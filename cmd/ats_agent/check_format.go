package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/observability"
)

var checkFormatCmd = &cobra.Command{
	Use:   "check-format",
	Short: "Check personal info for ATS-hostile formatting",
	Long:  "Checks the resume's contact details for special characters, non-standard phone formats and emoji, and exits non-zero with --strict when any are found.",
	RunE:  runCheckFormat,
}

var (
	checkFormatResume string
	checkFormatStrict bool
	checkFormatAsJSON bool
)

func init() {
	checkFormatCmd.Flags().StringVarP(&checkFormatResume, "resume", "r", "", "Path to resume JSON file (required)")
	checkFormatCmd.Flags().BoolVar(&checkFormatStrict, "strict", false, "Return an error when formatting issues are found")
	checkFormatCmd.Flags().BoolVar(&checkFormatAsJSON, "json", false, "Print the check as JSON")

	if err := checkFormatCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(checkFormatCmd)
}

func runCheckFormat(cmd *cobra.Command, _ []string) error {
	resume, err := ats.LoadResume(checkFormatResume)
	if err != nil {
		return err
	}

	check := ats.CheckFormatting(resume)
	if checkFormatAsJSON {
		if err := writeJSON(cmd.OutOrStdout(), "", check); err != nil {
			return err
		}
	} else {
		observability.NewPrinter(cmd.OutOrStdout()).PrintFormatting(check)
	}

	if checkFormatStrict && check.HasIssues {
		return fmt.Errorf("found %d formatting issue(s)", len(check.Issues))
	}
	return nil
}
