package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jonathan/ats-scorer/internal/types"
)

// ReportScorer produces a score report; *ats.Engine satisfies it.
type ReportScorer interface {
	Score(ctx context.Context, resume *types.ResumeData, jobDescription string, role types.RoleLevel) *types.ScoreReport
}

// Scorer serves repeated identical scoring requests from the cache.
type Scorer struct {
	next  ReportScorer
	cache *Cache
}

// NewScorer wraps next with cache.
func NewScorer(next ReportScorer, cache *Cache) *Scorer {
	return &Scorer{next: next, cache: cache}
}

// Score returns the cached report for identical inputs, otherwise scores and stores the result.
func (s *Scorer) Score(ctx context.Context, resume *types.ResumeData, jobDescription string, role types.RoleLevel) *types.ScoreReport {
	key, err := ReportKey(resume, jobDescription, role)
	if err != nil {
		s.cache.logger.Debug("cache: key failed, scoring uncached", slog.Any("error", err))
		return s.next.Score(ctx, resume, jobDescription, role)
	}

	if data, ok := s.cache.Get(ctx, key); ok {
		var report types.ScoreReport
		if err := json.Unmarshal(data, &report); err == nil {
			return &report
		}
	}

	report := s.next.Score(ctx, resume, jobDescription, role)
	if data, err := json.Marshal(report); err == nil {
		s.cache.Set(ctx, key, data)
	}
	return report
}
