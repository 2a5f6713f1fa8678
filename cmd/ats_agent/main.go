// Package main provides the ats_agent CLI for scoring resumes against ATS heuristics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS resume scorer",
	Long: `ats_agent scores structured resumes the way an applicant tracking system would:
weighted section scores, formatting checks, job description keyword matching and
optional AI-written feedback.

Configuration can be loaded from a JSON file with --config and from the environment
(GEMINI_API_KEY, ATS_REDIS_URL, ATS_CACHE_TTL, ATS_ENHANCER_TIMEOUT, ATS_ROLE_LEVEL).
Command-line flags override both.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
