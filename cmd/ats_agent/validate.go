package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume JSON file",
	Long:  "Validates a resume JSON file against the built-in resume schema, or against a custom JSON Schema file with --schema.",
	RunE:  runValidate,
}

var (
	validateResume string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateResume, "resume", "r", "", "Path to resume JSON file (required)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to a JSON Schema file (default: built-in resume schema)")

	if err := validateCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if validateSchema != "" {
		err = schemas.ValidateJSON(validateSchema, validateResume)
	} else {
		_, err = ats.LoadResume(validateResume)
	}
	if err != nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %s\n", validateResume)
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
