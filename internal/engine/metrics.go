package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ProfilesProcessed atomic.Int64
	ProfilesCreated   atomic.Int64
	ProfilesUpdated   atomic.Int64
	ProfilesSkipped   atomic.Int64
	ProfileErrors     atomic.Int64
	EnrichAttempts    atomic.Int64
	EnrichFailures    atomic.Int64
	Corrections       atomic.Int64
	LLMCalls          atomic.Int64
	LLMErrors         atomic.Int64
	SummariesQueued   atomic.Int64
	SummariesDropped  atomic.Int64
	SummariesWritten  atomic.Int64
}

var metricKeys = []string{
	"profiles_processed", "profiles_created", "profiles_updated", "profiles_skipped", "profile_errors",
	"enrich_attempts", "enrich_failures", "corrections",
	"llm_calls", "llm_errors",
	"summaries_queued", "summaries_dropped", "summaries_written",
	"cache_hits", "cache_misses",
}

// GetMetrics returns a snapshot of all metrics including stats for cache c (may be nil).
func GetMetrics(c *Cache) map[string]int64 {
	hits, misses := c.Stats()
	return map[string]int64{
		"profiles_processed": metrics.ProfilesProcessed.Load(),
		"profiles_created":   metrics.ProfilesCreated.Load(),
		"profiles_updated":   metrics.ProfilesUpdated.Load(),
		"profiles_skipped":   metrics.ProfilesSkipped.Load(),
		"profile_errors":     metrics.ProfileErrors.Load(),
		"enrich_attempts":    metrics.EnrichAttempts.Load(),
		"enrich_failures":    metrics.EnrichFailures.Load(),
		"corrections":        metrics.Corrections.Load(),
		"llm_calls":          metrics.LLMCalls.Load(),
		"llm_errors":         metrics.LLMErrors.Load(),
		"summaries_queued":   metrics.SummariesQueued.Load(),
		"summaries_dropped":  metrics.SummariesDropped.Load(),
		"summaries_written":  metrics.SummariesWritten.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics(c *Cache) string {
	m := GetMetrics(c)
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sub-packages.
func IncrProfilesProcessed() { metrics.ProfilesProcessed.Add(1) }
func IncrProfilesCreated()   { metrics.ProfilesCreated.Add(1) }
func IncrProfilesUpdated()   { metrics.ProfilesUpdated.Add(1) }
func IncrProfilesSkipped()   { metrics.ProfilesSkipped.Add(1) }
func IncrProfileErrors()     { metrics.ProfileErrors.Add(1) }
func IncrEnrichAttempts()    { metrics.EnrichAttempts.Add(1) }
func IncrEnrichFailures()    { metrics.EnrichFailures.Add(1) }
func IncrSummariesQueued()   { metrics.SummariesQueued.Add(1) }
func IncrSummariesDropped()  { metrics.SummariesDropped.Add(1) }
func IncrSummariesWritten()  { metrics.SummariesWritten.Add(1) }

// AddCorrections adds n applied corrections.
func AddCorrections(n int) { metrics.Corrections.Add(int64(n)) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, threshold time.Duration, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > threshold {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
