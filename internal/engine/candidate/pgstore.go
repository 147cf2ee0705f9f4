package candidate

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

//go:embed schema/*.sql
var schemaFS embed.FS

const pgUniqueViolation = "23505"

// PGStore is the Postgres-backed Store.
type PGStore struct {
	pool      *pgxpool.Pool
	upsertSQL string
	selectSQL string
}

// OpenPostgres creates a pgx pool and runs schema migrations.
func OpenPostgres(ctx context.Context, databaseURL string) (*PGStore, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping postgres: %v", ErrStoreUnavailable, err)
	}

	s := &PGStore{
		pool:      pool,
		upsertSQL: upsertSQL(func(n int) string { return "$" + strconv.Itoa(n) }) + " RETURNING (xmax = 0)",
		selectSQL: selectSQL("$1"),
	}
	if err := s.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("candidate postgres connected", slog.String("addr", config.ConnConfig.Host))
	return s, nil
}

// Close releases the pool.
func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PGStore) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		data, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := s.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute %s: %w", entry.Name(), err)
		}
		slog.Debug("migration applied", slog.String("file", entry.Name()))
	}
	return nil
}

// Upsert implements Store.
func (s *PGStore) Upsert(ctx context.Context, r Record) (bool, error) {
	vals := rowValues(&r, func(t time.Time) any { return t })
	// Upsert is idempotent, so dropped connections are safe to replay.
	created, err := engine.Retry(ctx, engine.StoreBackoff, func(ctx context.Context) (bool, error) {
		var created bool
		err := s.pool.QueryRow(ctx, s.upsertSQL, vals...).Scan(&created)
		return created, err
	})
	if err != nil {
		return false, classifyPG(err)
	}
	return created, nil
}

// Get implements Store.
func (s *PGStore) Get(ctx context.Context, linkedinURL string) (*Record, error) {
	var r Record
	targets, apply := scanTargets(&r)
	targets = append(targets, &r.CreatedAt, &r.UpdatedAt)
	err := s.pool.QueryRow(ctx, s.selectSQL, linkedinURL).Scan(targets...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classifyPG(err)
	}
	apply()
	return &r, nil
}

// Exists implements Store.
func (s *PGStore) Exists(ctx context.Context, linkedinURL string) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM candidates WHERE linkedin_url = $1)`, linkedinURL).Scan(&ok)
	if err != nil {
		return false, classifyPG(err)
	}
	return ok, nil
}

// UpdateSummary implements Store.
func (s *PGStore) UpdateSummary(ctx context.Context, linkedinURL string, updatedAt time.Time, summary string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE candidates SET summary = $1 WHERE linkedin_url = $2 AND updated_at = $3`,
		summary, linkedinURL, updatedAt)
	return classifyPG(err)
}

// classifyPG maps driver errors onto the package sentinels.
func classifyPG(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || engine.IsTransient(err) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
