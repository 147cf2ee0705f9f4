package candidateserver

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
	"github.com/anatolykoptev/go_candidates/internal/engine/pipeline"
)

var testNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func newTools(t *testing.T) *tools {
	t.Helper()
	store, err := candidate.OpenSQLite(filepath.Join(t.TempDir(), "candidates.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	clock := func() time.Time { return testNow }
	return &tools{Deps: Deps{
		Pipeline:    pipeline.New(store, pipeline.WithClock(clock)),
		Store:       store,
		Concurrency: 2,
		Now:         clock,
	}}
}

func TestImportThenGet(t *testing.T) {
	ctx := context.Background()
	tl := newTools(t)

	sum, err := tl.importProfiles(ctx, ImportInput{JSON: `[
		{"Linkedin URL": "https://www.linkedin.com/in/jane/", "Full Name": "Jane Doe", "Companies": "Acme; Globex", "Raw Data": "{}"},
		{"Full Name": "Nobody"}
	]`})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Processed)
	assert.Equal(t, 1, sum.Created)
	assert.Equal(t, 1, sum.Errors)

	got, err := tl.getCandidate(ctx, GetInput{LinkedinURL: "linkedin.com/in/jane"})
	require.NoError(t, err)
	require.True(t, got.Found)
	assert.Equal(t, "Jane Doe", got.Candidate["fullName"])
	assert.Equal(t, []any{"Acme", "Globex"}, got.Candidate["companies"])
	assert.Equal(t, "NEEDS_REVIEW", got.Candidate["status"])
	assert.NotContains(t, got.Candidate, "rawData")
}

func TestImportNonObjectItemsAreProfileErrors(t *testing.T) {
	sum, err := newTools(t).importProfiles(context.Background(), ImportInput{JSON: `[
		{"Linkedin URL": "https://www.linkedin.com/in/jane", "Full Name": "Jane Doe"},
		42,
		"junk"
	]`})
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Processed)
	assert.Equal(t, 1, sum.Created)
	assert.Equal(t, 2, sum.Errors)
	require.Len(t, sum.ErrorDetails, 2)
	for _, d := range sum.ErrorDetails {
		assert.Equal(t, "Missing LinkedIn URL", d.Reason)
	}
}

func TestImportRequiresInput(t *testing.T) {
	_, err := newTools(t).importProfiles(context.Background(), ImportInput{})
	assert.Error(t, err)

	_, err = newTools(t).importProfiles(context.Background(), ImportInput{JSON: "not json"})
	assert.Error(t, err)
}

func TestGetMissing(t *testing.T) {
	got, err := newTools(t).getCandidate(context.Background(), GetInput{LinkedinURL: "https://www.linkedin.com/in/nobody"})
	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.Nil(t, got.Candidate)
}

func TestExtractProfile(t *testing.T) {
	page := `<html><body><main>
<section><h1>Jane Doe</h1><div class="text-body-medium break-words">Senior Engineer at Acme Corp</div></section>
<section><div id="skills"></div><h2>Skills</h2><ul><li>Go</li><li>SQL</li></ul></section>
</main></body></html>`

	out, err := newTools(t).extractProfile(ExtractInput{URL: "https://www.linkedin.com/in/jane/", HTML: page})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", out.PersonalInfo.Name)
	assert.Equal(t, []string{"Go", "SQL"}, out.Skills)
	assert.Equal(t, "https://www.linkedin.com/in/jane", out.Fields["linkedinUrl"])
	assert.Equal(t, "Senior Engineer", out.Fields["jobTitle"])
	assert.Equal(t, "Acme Corp", out.Fields["currentCompany"])
	assert.Equal(t, "2", out.Fields["skillsCount"])
	assert.Equal(t, "NEEDS_REVIEW", out.Status)
}
