package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_candidates/internal/engine"
	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
)

// Input is what one inference attempt sees.
type Input struct {
	Text    string           // page text or markdown, already size-bounded
	HTML    string           // raw HTML, "" on degraded attempts
	Partial candidate.Fields // what extraction produced so far
}

// Backend infers candidate fields from raw profile content.
type Backend interface {
	Infer(ctx context.Context, in Input) (*Result, error)
}

// LLMBackend is a Backend over a chat completion model.
type LLMBackend struct {
	complete engine.Completer
}

// NewLLMBackend returns a backend that prompts through complete.
func NewLLMBackend(complete engine.Completer) *LLMBackend {
	return &LLMBackend{complete: complete}
}

// Infer implements Backend.
func (b *LLMBackend) Infer(ctx context.Context, in Input) (*Result, error) {
	content := in.Text
	if content == "" {
		content = in.HTML
	}
	partial, err := json.Marshal(in.Partial)
	if err != nil {
		return nil, fmt.Errorf("enrich: encode partial: %w", err)
	}
	prompt := fmt.Sprintf(enrichPrompt, strings.Join(candidate.RecordKeys(), ", "), partial, content)

	raw, err := engine.CallLLM(ctx, b.complete, enrichSystem, prompt)
	if err != nil {
		return nil, fmt.Errorf("enrich LLM: %w", err)
	}
	return parseResult(raw)
}

// parseResult decodes a model reply, keeping only canonical record keys.
func parseResult(raw string) (*Result, error) {
	obj := engine.ExtractJSONObject(raw)
	if obj == "" {
		return nil, fmt.Errorf("enrich parse: no JSON object (raw: %s)", engine.TruncateRunes(raw, 200, "..."))
	}
	var reply struct {
		Fields      map[string]any `json:"fields"`
		Corrections []Correction   `json:"corrections"`
	}
	if err := json.Unmarshal([]byte(obj), &reply); err != nil {
		return nil, fmt.Errorf("enrich parse: %w (raw: %s)", err, engine.TruncateRunes(obj, 200, "..."))
	}

	res := &Result{Fields: candidate.Fields{}}
	for k, v := range reply.Fields {
		if k == candidate.KeyLinkedinURL || !candidate.IsRecordKey(k) {
			continue
		}
		res.Fields.Set(k, candidate.ParseValue(v))
	}
	for _, c := range reply.Corrections {
		c.Field = strings.TrimSpace(c.Field)
		if c.Field == "" || strings.TrimSpace(c.CorrectedValue) == "" {
			continue
		}
		res.Corrections = append(res.Corrections, c)
	}
	return res, nil
}
