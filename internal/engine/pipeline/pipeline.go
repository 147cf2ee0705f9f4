// Package pipeline runs collector submissions through extraction,
// enrichment, consolidation, and upsert, one profile at a time or in batches.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go_candidates/internal/engine"
	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
	"github.com/anatolykoptev/go_candidates/internal/engine/enrich"
	"github.com/anatolykoptev/go_candidates/internal/engine/linkedin"
)

// Stages reported in ProfileError.
const (
	StageParse  = "parse"
	StageLookup = "lookup"
	StageUpsert = "upsert"
)

// ProfileError is a failure confined to one submission.
type ProfileError struct {
	URL   string
	Stage string
	Err   error
}

func (e *ProfileError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.URL, e.Err)
}

func (e *ProfileError) Unwrap() error { return e.Err }

// Enricher fills gaps in a partial record.
type Enricher interface {
	Enrich(ctx context.Context, req enrich.Request) (*enrich.Result, error)
}

// Outcome describes what happened to one submission.
type Outcome struct {
	URL         string              `json:"linkedinUrl"`
	Created     bool                `json:"created"`
	Skipped     bool                `json:"skipped,omitempty"`
	Status      candidate.Status    `json:"status,omitempty"`
	Enriched    bool                `json:"enriched,omitempty"`
	Corrections []enrich.Correction `json:"corrections,omitempty"`
}

// Pipeline holds the collaborators shared by every profile. It carries no
// per-profile state and is safe for concurrent use.
type Pipeline struct {
	store     candidate.Store
	enricher  Enricher
	summaries *Summarizer
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithEnricher enables enrichment. Without it records are built from
// submitted and extracted data only.
func WithEnricher(e Enricher) Option { return func(p *Pipeline) { p.enricher = e } }

// WithSummarizer queues a background summary after every upsert.
func WithSummarizer(s *Summarizer) Option { return func(p *Pipeline) { p.summaries = s } }

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(p *Pipeline) { p.now = now } }

// New returns a pipeline writing to store.
func New(store candidate.Store, opts ...Option) *Pipeline {
	p := &Pipeline{store: store, now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Process runs one submission end to end.
func (p *Pipeline) Process(ctx context.Context, m map[string]any) (*Outcome, error) {
	return p.process(ctx, m, candidate.NewTitleNormalizer(), false)
}

func (p *Pipeline) process(ctx context.Context, m map[string]any, titles *candidate.TitleNormalizer, skipExisting bool) (*Outcome, error) {
	out, err := p.processOne(ctx, m, titles, skipExisting)
	engine.IncrProfilesProcessed()
	switch {
	case err != nil:
		engine.IncrProfileErrors()
	case out.Skipped:
		engine.IncrProfilesSkipped()
	case out.Created:
		engine.IncrProfilesCreated()
	default:
		engine.IncrProfilesUpdated()
	}
	return out, err
}

func (p *Pipeline) processOne(ctx context.Context, m map[string]any, titles *candidate.TitleNormalizer, skipExisting bool) (*Outcome, error) {
	now := p.now()

	sub, err := candidate.ParseSubmission(m)
	if err != nil {
		return nil, &ProfileError{Stage: StageParse, Err: err}
	}
	out := &Outcome{URL: sub.URL}

	if skipExisting {
		exists, err := p.store.Exists(ctx, sub.URL)
		if err != nil {
			return nil, &ProfileError{URL: sub.URL, Stage: StageLookup, Err: err}
		}
		if exists {
			out.Skipped = true
			return out, nil
		}
	}

	doc := p.document(sub, now)
	fields := candidate.Build(sub, doc, now, titles)
	fields = p.enrich(ctx, sub, doc, fields, out)

	rec := candidate.Finalize(fields, sub.RawData, now)
	out.Status = rec.Status

	created, err := p.store.Upsert(ctx, rec)
	if err != nil {
		return nil, &ProfileError{URL: sub.URL, Stage: StageUpsert, Err: err}
	}
	out.Created = created

	if p.summaries != nil {
		p.summaries.Enqueue(rec)
	}
	return out, nil
}

// document combines the submitted structured document with whatever the
// extractor finds in the submitted HTML. Submitted values win.
func (p *Pipeline) document(sub *candidate.Submission, now time.Time) *linkedin.Document {
	var extracted *linkedin.Document
	if sub.HTML != "" {
		d, err := linkedin.Extract(sub.URL, sub.HTML, now)
		if err != nil {
			slog.Warn("pipeline: extraction failed", slog.String("url", sub.URL), slog.Any("error", err))
		} else {
			extracted = d
			if d.Empty() {
				slog.Debug("pipeline: no profile structure in html", slog.String("url", sub.URL))
			}
		}
	}
	doc := linkedin.Combine(sub.Document, extracted)
	if doc != nil && doc.RawText == "" {
		doc.RawText = sub.Text
	}
	return doc
}

// enrich asks the enricher about fields when the trigger policy says so.
// Enrichment failure falls back to the unenriched fields.
func (p *Pipeline) enrich(ctx context.Context, sub *candidate.Submission, doc *linkedin.Document, fields candidate.Fields, out *Outcome) candidate.Fields {
	if p.enricher == nil {
		return fields
	}
	req := enrich.Request{Text: sub.Text, HTML: sub.HTML, Partial: candidate.ConsolidateAll(fields)}
	if doc != nil {
		if req.Text == "" {
			req.Text = doc.RawText
		}
		req.Raw = enrich.RawCounts{
			Experience: len(doc.Experience),
			Education:  len(doc.Education),
			Skills:     len(doc.Skills),
		}
	}
	if !enrich.ShouldEnrich(req) {
		return fields
	}

	res, err := p.enricher.Enrich(ctx, req)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, engine.ErrLLMDisabled) {
			level = slog.LevelDebug
		}
		slog.Log(ctx, level, "pipeline: enrichment failed, using extracted data",
			slog.String("url", sub.URL), slog.Any("error", err))
		return fields
	}
	merged, corrections := enrich.Merge(fields, res)
	out.Enriched = true
	out.Corrections = corrections
	return merged
}
