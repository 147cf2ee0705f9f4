package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
)

func TestRunBatch(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	p := New(store, WithClock(tickingClock()))

	_, err := p.Process(ctx, map[string]any{"Linkedin URL": "https://www.linkedin.com/in/existing", "Full Name": "Old Name"})
	require.NoError(t, err)

	subs := []map[string]any{
		{"Linkedin URL": "https://www.linkedin.com/in/new", "Full Name": "New Person"},
		{"Linkedin URL": "https://www.linkedin.com/in/existing/", "Full Name": "New Name"},
		{"Full Name": "No Url"},
		{},
	}
	sum, err := p.RunBatch(ctx, subs, BatchOptions{Concurrency: 3})
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Processed)
	assert.Equal(t, 1, sum.Created)
	assert.Equal(t, 1, sum.Updated)
	assert.Equal(t, 0, sum.Skipped)
	assert.Equal(t, 2, sum.Errors)
	assert.ElementsMatch(t, []ErrorDetail{
		{Identifier: "No Url", Reason: "Missing LinkedIn URL"},
		{Identifier: "submission #4", Reason: "Missing LinkedIn URL"},
	}, sum.ErrorDetails)

	rec, err := store.Get(ctx, "https://www.linkedin.com/in/existing")
	require.NoError(t, err)
	assert.Equal(t, "New Name", rec.FullName)
}

func TestRunBatchSkipExisting(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	p := New(store, WithClock(tickingClock()))

	_, err := p.Process(ctx, map[string]any{"Linkedin URL": "https://www.linkedin.com/in/existing", "Full Name": "Old Name"})
	require.NoError(t, err)

	sum, err := p.RunBatch(ctx, []map[string]any{
		{"Linkedin URL": "https://www.linkedin.com/in/existing", "Full Name": "New Name"},
		{"Linkedin URL": "https://www.linkedin.com/in/new", "Full Name": "New Person"},
	}, BatchOptions{SkipExisting: true})
	require.NoError(t, err)

	assert.Equal(t, Summary{Processed: 2, Created: 1, Skipped: 1, ErrorDetails: []ErrorDetail{}}, *sum)
	rec, err := store.Get(ctx, "https://www.linkedin.com/in/existing")
	require.NoError(t, err)
	assert.Equal(t, "Old Name", rec.FullName)
}

func TestRunBatchManyProfilesConcurrently(t *testing.T) {
	store := openStore(t)
	p := New(store, WithClock(tickingClock()))

	var subs []map[string]any
	for i := range 25 {
		subs = append(subs, map[string]any{
			"Linkedin URL": fmt.Sprintf("https://www.linkedin.com/in/person-%d", i%20),
			"Full Name":    fmt.Sprintf("Person Number%d", i),
		})
	}
	sum, err := p.RunBatch(context.Background(), subs, BatchOptions{Concurrency: 8})
	require.NoError(t, err)
	assert.Equal(t, 25, sum.Processed)
	assert.Equal(t, 20, sum.Created)
	assert.Equal(t, 5, sum.Updated)
	assert.Zero(t, sum.Errors)
}

// downStore fails every write as unreachable.
type downStore struct{}

func (downStore) Upsert(context.Context, candidate.Record) (bool, error) {
	return false, fmt.Errorf("%w: connection refused", candidate.ErrStoreUnavailable)
}
func (downStore) Get(context.Context, string) (*candidate.Record, error) { return nil, candidate.ErrNotFound }
func (downStore) Exists(context.Context, string) (bool, error)          { return false, nil }
func (downStore) UpdateSummary(context.Context, string, time.Time, string) error {
	return nil
}
func (downStore) Close() error { return nil }

func TestRunBatchAbortsWhenStoreUnavailable(t *testing.T) {
	p := New(downStore{})
	_, err := p.RunBatch(context.Background(), []map[string]any{
		{"Linkedin URL": "https://www.linkedin.com/in/a"},
		{"Linkedin URL": "https://www.linkedin.com/in/b"},
	}, BatchOptions{Concurrency: 1})
	assert.ErrorIs(t, err, candidate.ErrStoreUnavailable)
}
