package candidateserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
	"github.com/anatolykoptev/go_candidates/internal/engine/linkedin"
	"github.com/anatolykoptev/go_candidates/internal/engine/pipeline"
	"github.com/anatolykoptev/go_candidates/internal/toolutil"
)

func (t *tools) importProfiles(ctx context.Context, input ImportInput) (*pipeline.Summary, error) {
	subs := input.Profiles
	if len(subs) == 0 && input.JSON != "" {
		var err error
		if subs, err = toolutil.DecodeSubmissions([]byte(input.JSON)); err != nil {
			return nil, err
		}
	}
	if len(subs) == 0 {
		return nil, errors.New("profiles or json is required")
	}
	return t.Pipeline.RunBatch(ctx, subs, pipeline.BatchOptions{
		Concurrency:  t.Concurrency,
		SkipExisting: input.SkipExisting,
	})
}

func (t *tools) extractProfile(input ExtractInput) (*ExtractOutput, error) {
	url := linkedin.NormalizeProfileURL(input.URL)
	now := t.Now()
	doc, err := linkedin.Extract(url, input.HTML, now)
	if err != nil {
		return nil, err
	}

	f := candidate.FromDocument(doc, now, candidate.NewTitleNormalizer())
	f.Set(candidate.KeyLinkedinURL, candidate.Scalar(url))
	out := &ExtractOutput{
		PersonalInfo: doc.PersonalInfo,
		Experience:   doc.Experience,
		Education:    doc.Education,
		Fields:       make(map[string]string),
		Status:       string(candidate.Evaluate(f.Record())),
	}
	for _, s := range doc.Skills {
		out.Skills = append(out.Skills, s.Name)
	}
	for _, k := range f.Keys() {
		out.Fields[k] = f.Str(k)
	}
	return out, nil
}

func (t *tools) getCandidate(ctx context.Context, input GetInput) (*GetOutput, error) {
	url := linkedin.NormalizeProfileURL(input.LinkedinURL)
	rec, err := t.Store.Get(ctx, url)
	if errors.Is(err, candidate.ErrNotFound) {
		return &GetOutput{Found: false}, nil
	}
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode candidate: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("encode candidate: %w", err)
	}
	delete(m, "rawData")
	return &GetOutput{Found: true, Candidate: m}, nil
}
