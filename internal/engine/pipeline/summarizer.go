package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/anatolykoptev/go_candidates/internal/engine"
	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
)

const summaryTimeout = 60 * time.Second

const summarySystem = `You write short, factual recruiter notes about candidates.`

// summaryPrompt args: candidate record JSON.
const summaryPrompt = `Write a 2-3 sentence summary of this candidate for a recruiter: current role and company, career trajectory, and education. Use only the data below. Plain text, no markdown, no preamble.

CANDIDATE:
%s`

// Summarizer writes LLM candidate summaries in the background. Enqueue never
// blocks: when the queue is full the record is dropped. Summary failures are
// logged and never reach the caller that enqueued.
type Summarizer struct {
	complete engine.Completer
	store    candidate.Store
	queue    chan candidate.Record

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewSummarizer starts a worker draining a queue of size records.
func NewSummarizer(complete engine.Completer, store candidate.Store, size int) *Summarizer {
	if size <= 0 {
		size = 64
	}
	s := &Summarizer{
		complete: complete,
		store:    store,
		queue:    make(chan candidate.Record, size),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Enqueue schedules r for summarization. Reports false if it was dropped.
func (s *Summarizer) Enqueue(r candidate.Record) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		engine.IncrSummariesDropped()
		return false
	}
	select {
	case s.queue <- r:
		engine.IncrSummariesQueued()
		return true
	default:
		engine.IncrSummariesDropped()
		slog.Debug("summarizer: queue full, dropped", slog.String("url", r.LinkedinURL))
		return false
	}
}

// Close stops accepting records and waits for the queued ones to finish.
func (s *Summarizer) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Summarizer) run() {
	defer s.wg.Done()
	for r := range s.queue {
		if err := s.summarize(r); err != nil {
			if errors.Is(err, engine.ErrLLMDisabled) {
				continue
			}
			slog.Warn("summarizer: failed", slog.String("url", r.LinkedinURL), slog.Any("error", err))
		}
	}
}

func (s *Summarizer) summarize(r candidate.Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
	defer cancel()

	r.RawData = ""
	r.Summary = ""
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	text, err := engine.CallLLM(ctx, s.complete, summarySystem, fmt.Sprintf(summaryPrompt, data))
	if err != nil {
		return fmt.Errorf("summary LLM: %w", err)
	}
	text = engine.TruncateAtWord(engine.NormalizeSpace(text), 1000)
	if text == "" {
		return errors.New("empty summary")
	}
	if err := s.store.UpdateSummary(ctx, r.LinkedinURL, r.UpdatedAt, text); err != nil {
		return fmt.Errorf("store summary: %w", err)
	}
	engine.IncrSummariesWritten()
	return nil
}
