package candidate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS candidates (
	linkedin_url TEXT PRIMARY KEY,
	%s,
	companies       TEXT,
	universities    TEXT,
	fields_of_study TEXT,
	raw_data        TEXT,
	status          TEXT NOT NULL DEFAULT 'NEEDS_REVIEW',
	summary         TEXT,
	created_at      TEXT NOT NULL,
	updated_at      TEXT NOT NULL
)`

// SQLiteStore is the single-file Store used when no Postgres URL is configured.
type SQLiteStore struct {
	db        *sql.DB
	upsertSQL string
	selectSQL string
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: create dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite open: %v", ErrStoreUnavailable, err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	var extra []string
	for _, c := range textColumns[1:] {
		extra = append(extra, c.name+" TEXT")
	}
	if _, err := db.Exec(fmt.Sprintf(sqliteSchema, strings.Join(extra, ",\n\t"))); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}

	return &SQLiteStore{
		db:        db,
		upsertSQL: upsertSQL(func(int) string { return "?" }),
		selectSQL: selectSQL("?"),
	}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func sqliteTime(t time.Time) any { return t.UTC().Format(time.RFC3339Nano) }

// Upsert implements Store. The existence check and write share one
// transaction so created is exact.
func (s *SQLiteStore) Upsert(ctx context.Context, r Record) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer tx.Rollback() //nolint:errcheck

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM candidates WHERE linkedin_url = ?`, r.LinkedinURL).Scan(&n); err != nil {
		return false, classifySQLite(err)
	}
	if _, err := tx.ExecContext(ctx, s.upsertSQL, rowValues(&r, sqliteTime)...); err != nil {
		return false, classifySQLite(err)
	}
	if err := tx.Commit(); err != nil {
		return false, classifySQLite(err)
	}
	return n == 0, nil
}

// Get implements Store.
func (s *SQLiteStore) Get(ctx context.Context, linkedinURL string) (*Record, error) {
	var r Record
	var createdAt, updatedAt string
	targets, apply := scanTargets(&r)
	targets = append(targets, &createdAt, &updatedAt)
	err := s.db.QueryRowContext(ctx, s.selectSQL, linkedinURL).Scan(targets...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classifySQLite(err)
	}
	apply()
	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	r.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return &r, nil
}

// Exists implements Store.
func (s *SQLiteStore) Exists(ctx context.Context, linkedinURL string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM candidates WHERE linkedin_url = ?`, linkedinURL).Scan(&n)
	if err != nil {
		return false, classifySQLite(err)
	}
	return n > 0, nil
}

// UpdateSummary implements Store.
func (s *SQLiteStore) UpdateSummary(ctx context.Context, linkedinURL string, updatedAt time.Time, summary string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE candidates SET summary = ? WHERE linkedin_url = ? AND updated_at = ?`,
		summary, linkedinURL, sqliteTime(updatedAt))
	return classifySQLite(err)
}

func classifySQLite(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case strings.Contains(msg, "database is closed"), strings.Contains(msg, "unable to open database"):
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, msg)
	}
	return err
}
