package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
)

// BatchOptions controls RunBatch.
type BatchOptions struct {
	Concurrency  int  // profiles in flight; <= 0 means 1
	SkipExisting bool // leave already-stored profiles untouched
}

// ErrorDetail names one failed submission.
type ErrorDetail struct {
	Identifier string `json:"identifier"`
	Reason     string `json:"reason"`
}

// Summary is the batch report. Counts are independent of input order.
type Summary struct {
	Processed    int           `json:"processed"`
	Created      int           `json:"created"`
	Updated      int           `json:"updated"`
	Skipped      int           `json:"skipped"`
	Errors       int           `json:"errors"`
	ErrorDetails []ErrorDetail `json:"errorDetails"`
}

// RunBatch processes subs with bounded parallelism. Failures are recorded
// per submission and the batch carries on; only an unreachable store stops
// it, in which case the partial summary is returned with the error.
func (p *Pipeline) RunBatch(ctx context.Context, subs []map[string]any, opts BatchOptions) (*Summary, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = 1
	}
	titles := candidate.NewTitleNormalizer()
	sum := &Summary{ErrorDetails: []ErrorDetail{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, m := range subs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			out, err := p.process(gctx, m, titles, opts.SkipExisting)
			if errors.Is(err, candidate.ErrStoreUnavailable) {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			sum.Processed++
			switch {
			case err != nil:
				id := identifier(i, m, err)
				sum.Errors++
				sum.ErrorDetails = append(sum.ErrorDetails, ErrorDetail{Identifier: id, Reason: reason(err)})
				slog.Warn("pipeline: profile failed", slog.String("url", id), slog.Any("error", err))
			case out.Skipped:
				sum.Skipped++
			case out.Created:
				sum.Created++
			default:
				sum.Updated++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, fmt.Errorf("batch aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return sum, err
	}

	slog.Info("pipeline: batch done",
		slog.Int("processed", sum.Processed),
		slog.Int("created", sum.Created),
		slog.Int("updated", sum.Updated),
		slog.Int("skipped", sum.Skipped),
		slog.Int("errors", sum.Errors))
	return sum, nil
}

// identifier names a failed submission by URL, then by name, then by position.
func identifier(i int, m map[string]any, err error) string {
	var pe *ProfileError
	if errors.As(err, &pe) && pe.URL != "" {
		return pe.URL
	}
	for _, k := range []string{"Linkedin URL", "linkedinUrl", "Full Name", "fullName"} {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return fmt.Sprintf("submission #%d", i+1)
}

func reason(err error) string {
	switch {
	case errors.Is(err, candidate.ErrMissingURL):
		return "Missing LinkedIn URL"
	case errors.Is(err, candidate.ErrConflict):
		return "Conflicting record: " + err.Error()
	}
	return err.Error()
}
