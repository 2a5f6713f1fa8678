package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/cache"
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/enhance"
	"github.com/jonathan/ats-scorer/internal/jobdesc"
	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/types"
)

// settings is the effective configuration for the running command.
//
//nolint:gochecknoglobals // set once per invocation by the root pre-run hook
var settings = config.Default()

// logger is configured from settings by the root pre-run hook.
//
//nolint:gochecknoglobals // set once per invocation by the root pre-run hook
var logger = slog.Default()

// loadSettings merges the config file, environment and defaults, then configures logging.
func loadSettings(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Default())
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	return nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveRole picks the role from the flag or settings, warning when it is not recognized.
func resolveRole(flagValue string) types.RoleLevel {
	raw := flagValue
	if raw == "" {
		raw = settings.RoleLevel
	}
	role := types.ParseRoleLevel(raw)
	if raw != "" && !types.RoleLevel(strings.ToLower(strings.TrimSpace(raw))).IsKnown() {
		logger.Warn("unknown role level, using default", slog.String("role", raw), slog.String("using", string(role)))
	}
	return role
}

// scoringStack holds the scorer plus everything that must be released after use.
type scoringStack struct {
	scorer cache.ReportScorer
	cache  *cache.Cache
	client llm.Client
}

func (s *scoringStack) Close() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.cache != nil {
		if stats := s.cache.Stats(); stats.Hits+stats.Misses > 0 {
			logger.Debug("cache: stats", slog.Int64("hits", stats.Hits), slog.Int64("misses", stats.Misses))
		}
		_ = s.cache.Close()
	}
}

// buildScoringStack wires the engine, the optional enhancer and the optional cache.
func buildScoringStack(ctx context.Context, enableAI bool) *scoringStack {
	stack := &scoringStack{}

	var enhancer ats.Enhancer = enhance.Noop{}
	if enableAI || settings.EnableAI {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(llm.TierLite, settings.Model), settings.APIKey)
		if err != nil {
			logger.Warn("AI feedback unavailable, continuing without it", slog.Any("error", err))
		} else {
			stack.client = client
			enhancer = enhance.NewLLMEnhancer(client)
		}
	}

	var scorer cache.ReportScorer = ats.NewEngine(
		ats.WithEnhancer(enhancer),
		ats.WithEnhancerTimeout(settings.EnhancerTimeout.Std()),
		ats.WithLogger(logger),
	)

	if settings.CacheEnabled {
		stack.cache = cache.New(ctx, cache.Options{
			TTL:        settings.CacheTTL.Std(),
			MaxEntries: settings.CacheMaxEntries,
			RedisURL:   settings.RedisURL,
			Logger:     logger,
		})
		scorer = cache.NewScorer(scorer, stack.cache)
	}

	stack.scorer = scorer
	return stack
}

// loadJobDescription reads --job or fetches --job-url; both empty means no job description.
func loadJobDescription(ctx context.Context, jobFile, jobURL string, c *cache.Cache) (string, error) {
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	loader := jobdesc.NewLoader(jobdesc.Options{
		Timeout:    settings.FetchTimeout.Std(),
		UseBrowser: settings.UseBrowser,
		Cache:      c,
		Logger:     logger,
	})

	source := jobFile
	if jobURL != "" {
		source = jobURL
	}
	text, err := loader.Load(ctx, source)
	if err != nil {
		return "", fmt.Errorf("failed to load job description: %w", err)
	}
	return text, nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
