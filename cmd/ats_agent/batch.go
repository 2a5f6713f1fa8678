package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/cache"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/types"
)

// defaultBatchConcurrency bounds how many resumes are scored at once.
const defaultBatchConcurrency = 4

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every resume JSON file in a directory",
	Long: `Scores every *.json resume in --dir against the same job description and role level.
Resumes that fail to load or validate are recorded as failed items; the rest of the
batch still runs.`,
	RunE: runBatch,
}

var (
	batchDir         string
	batchJob         string
	batchJobURL      string
	batchRole        string
	batchAI          bool
	batchConcurrency int
	batchOutput      string
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of resume JSON files (required)")
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description text file")
	batchCmd.Flags().StringVarP(&batchJobURL, "job-url", "u", "", "URL of a job posting to match against")
	batchCmd.Flags().StringVar(&batchRole, "role", "", "Role level: entry, mid or senior (default from config, else mid)")
	batchCmd.Flags().BoolVar(&batchAI, "ai", false, "Request AI feedback for every resume (requires GEMINI_API_KEY)")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", defaultBatchConcurrency, "Maximum resumes scored in parallel")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Write the batch result JSON to this file")

	if err := batchCmd.MarkFlagRequired("dir"); err != nil {
		panic(fmt.Sprintf("failed to mark dir flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1, got %d", batchConcurrency)
	}

	paths, err := filepath.Glob(filepath.Join(batchDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list resumes in %s: %w", batchDir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no resume JSON files found in %s", batchDir)
	}
	sort.Strings(paths)

	stack := buildScoringStack(ctx, batchAI)
	defer stack.Close()

	jobDescription, err := loadJobDescription(ctx, batchJob, batchJobURL, stack.cache)
	if err != nil {
		return err
	}

	result := &types.BatchResult{
		RunID:     uuid.New(),
		RoleLevel: resolveRole(batchRole),
		StartedAt: time.Now().UTC(),
		Items:     make([]types.BatchItem, len(paths)),
	}
	runLogger := logger.With(slog.String("run_id", result.RunID.String()))
	runLogger.Info("batch started", slog.Int("resumes", len(paths)), slog.String("role", string(result.RoleLevel)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result.Items[i] = scoreBatchItem(gctx, stack.scorer, path, jobDescription, result.RoleLevel)
			if result.Items[i].Error != "" {
				runLogger.Warn("resume failed", slog.String("id", result.Items[i].ID), slog.String("error", result.Items[i].Error))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}
	result.FinishedAt = time.Now().UTC()
	runLogger.Info("batch finished", slog.Int("failed", result.Failed()), slog.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)))

	if batchOutput != "" {
		if err := writeJSON(cmd.OutOrStdout(), batchOutput, result); err != nil {
			return err
		}
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintBatchSummary(result)
	return nil
}

// scoreBatchItem loads, validates and scores one resume file. Failures are reported on the item.
func scoreBatchItem(ctx context.Context, scorer cache.ReportScorer, path, jobDescription string, role types.RoleLevel) types.BatchItem {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	item := types.BatchItem{ID: id}

	resume, err := ats.LoadResume(path)
	if err != nil {
		item.Error = err.Error()
		return item
	}

	req := types.ScoreRequest{ID: id, Resume: resume, JobDescription: jobDescription, RoleLevel: role}
	if err := req.Validate(); err != nil {
		item.Error = err.Error()
		return item
	}

	item.Report = scorer.Score(ctx, req.Resume, req.JobDescription, req.RoleLevel)
	item.Suggestions = ats.SuggestKeywords(req.Resume, req.JobDescription)
	return item
}
