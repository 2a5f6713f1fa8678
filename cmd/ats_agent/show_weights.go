package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/types"
)

var showWeightsCmd = &cobra.Command{
	Use:   "show-weights",
	Short: "Show section weight profiles per role level",
	RunE:  runShowWeights,
}

var showWeightsRole string

func init() {
	showWeightsCmd.Flags().StringVar(&showWeightsRole, "role", "", "Only show this role level (entry, mid or senior)")

	rootCmd.AddCommand(showWeightsCmd)
}

func runShowWeights(cmd *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(cmd.OutOrStdout())
	if showWeightsRole == "" {
		printer.PrintWeights()
		return nil
	}

	role := types.RoleLevel(showWeightsRole)
	if !role.IsKnown() {
		return fmt.Errorf("unknown role level %q (want entry, mid or senior)", showWeightsRole)
	}
	printer.PrintWeights(role)
	return nil
}
