//go:build integration

package candidate

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/engine/candidate/
func openTestPG(t *testing.T) *PGStore {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s, err := OpenPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestIntegration_PGStoreUpsert(t *testing.T) {
	ctx := context.Background()
	s := openTestPG(t)
	url := "https://www.linkedin.com/in/go-candidates-integration"
	_, err := s.pool.Exec(ctx, `DELETE FROM candidates WHERE linkedin_url = $1`, url)
	require.NoError(t, err)
	t.Cleanup(func() { s.pool.Exec(context.Background(), `DELETE FROM candidates WHERE linkedin_url = $1`, url) })

	first := submitted(t, map[string]any{"Linkedin URL": url, "Full Name": "Jane Doe", "Company 1": "Acme"}, testNow)
	created, err := s.Upsert(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	exists, err := s.Exists(ctx, url)
	require.NoError(t, err)
	assert.True(t, exists)

	later := testNow.Add(time.Hour)
	second := submitted(t, map[string]any{"Linkedin URL": url, "Full Name": "Jane Doe", "Company 1": "Globex"}, later)
	created, err = s.Upsert(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := s.Get(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, []string{"Globex"}, got.Companies)

	require.NoError(t, s.UpdateSummary(ctx, url, first.UpdatedAt, "stale"))
	require.NoError(t, s.UpdateSummary(ctx, url, second.UpdatedAt, "Jane builds things."))
	got, err = s.Get(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "Jane builds things.", got.Summary)
}
