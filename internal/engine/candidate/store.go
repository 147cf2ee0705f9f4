package candidate

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// Store persists candidate records keyed by LinkedinURL.
type Store interface {
	// Upsert inserts r, or fully replaces the existing row with the same
	// LinkedinURL (created_at excepted). Reports whether a row was created.
	Upsert(ctx context.Context, r Record) (created bool, err error)
	// Get returns the record for linkedinURL or ErrNotFound.
	Get(ctx context.Context, linkedinURL string) (*Record, error)
	// Exists reports whether a record for linkedinURL is stored.
	Exists(ctx context.Context, linkedinURL string) (bool, error)
	// UpdateSummary sets the summary of the row last written at updatedAt.
	// Rows replaced since then are left alone.
	UpdateSummary(ctx context.Context, linkedinURL string, updatedAt time.Time, summary string) error
	Close() error
}

// Open connects to Postgres when databaseURL is set, else to SQLite at sqlitePath.
func Open(ctx context.Context, databaseURL, sqlitePath string) (Store, error) {
	if databaseURL != "" {
		return OpenPostgres(ctx, databaseURL)
	}
	return OpenSQLite(sqlitePath)
}

// column is one persisted text column backed by a Record string field.
type column struct {
	name string
	ptr  func(*Record) *string
}

// textColumns lists the scalar columns in schema order; linkedin_url first.
var textColumns = func() []column {
	cols := make([]column, len(scalarFields))
	for i, s := range scalarFields {
		cols[i] = column{name: snakeCase(s.key), ptr: s.ptr}
	}
	return cols
}()

// listColumns are stored as JSON array text.
var listColumns = []struct {
	name string
	ptr  func(*Record) *[]string
}{
	{"companies", func(r *Record) *[]string { return &r.Companies }},
	{"universities", func(r *Record) *[]string { return &r.Universities }},
	{"fields_of_study", func(r *Record) *[]string { return &r.FieldsOfStudy }},
}

// allColumns returns every persisted column name in insert order.
func allColumns() []string {
	names := make([]string, 0, len(textColumns)+len(listColumns)+5)
	for _, c := range textColumns {
		names = append(names, c.name)
	}
	for _, c := range listColumns {
		names = append(names, c.name)
	}
	return append(names, "raw_data", "status", "summary", "created_at", "updated_at")
}

// rowValues returns r's values in allColumns order. Empty strings become NULL.
// Timestamps are passed through ts.
func rowValues(r *Record, ts func(time.Time) any) []any {
	vals := make([]any, 0, len(textColumns)+len(listColumns)+5)
	for _, c := range textColumns {
		vals = append(vals, nullString(*c.ptr(r)))
	}
	for _, c := range listColumns {
		vals = append(vals, encodeList(*c.ptr(r)))
	}
	return append(vals, nullString(r.RawData), string(r.Status), nullString(r.Summary), ts(r.CreatedAt), ts(r.UpdatedAt))
}

// scanTargets returns pointers matching allColumns order. Call apply after Scan.
func scanTargets(r *Record) (targets []any, apply func()) {
	texts := make([]*string, len(textColumns))
	lists := make([]*string, len(listColumns))
	var rawData, summary *string
	var status string
	for i := range texts {
		targets = append(targets, &texts[i])
	}
	for i := range lists {
		targets = append(targets, &lists[i])
	}
	targets = append(targets, &rawData, &status, &summary)
	apply = func() {
		for i, c := range textColumns {
			*c.ptr(r) = deref(texts[i])
		}
		for i, c := range listColumns {
			*c.ptr(r) = decodeList(lists[i])
		}
		r.RawData = deref(rawData)
		r.Status = Status(status)
		r.Summary = deref(summary)
	}
	return targets, apply
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// snakeCase converts "currentCompanyTenureYears" to "current_company_tenure_years".
func snakeCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// upsertSQL builds the shared INSERT ... ON CONFLICT statement. placeholder
// renders the n-th (1-based) bind parameter.
func upsertSQL(placeholder func(n int) string) string {
	cols := allColumns()
	ph := make([]string, len(cols))
	var sets []string
	for i, c := range cols {
		ph[i] = placeholder(i + 1)
		if c != "linkedin_url" && c != "created_at" {
			sets = append(sets, c+" = excluded."+c)
		}
	}
	return "INSERT INTO candidates (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(ph, ", ") +
		") ON CONFLICT (linkedin_url) DO UPDATE SET " + strings.Join(sets, ", ")
}

// selectSQL selects allColumns for one linkedin_url.
func selectSQL(placeholder string) string {
	return "SELECT " + strings.Join(allColumns(), ", ") + " FROM candidates WHERE linkedin_url = " + placeholder
}
