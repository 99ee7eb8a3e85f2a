package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"portfolio-api/internal/database"
)

// fakeDB stands in for the pgx pool in repository tests. It records every
// statement and serves canned rows keyed by a substring of the query.
type fakeDB struct {
	rows     map[string][][]any
	rowErr   error
	execErr  func(query string, call int) error
	queries  []string
	args     [][]any
	execs    int
	tx       *fakeTx
	beginErr error
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) record(query string, args []any) {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
}

func (f *fakeDB) lookup(query string) [][]any {
	for key, rows := range f.rows {
		if key != "" && strings.Contains(query, key) {
			return rows
		}
	}
	return nil
}

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.record(query, args)
	f.execs++
	if f.execErr != nil {
		if err := f.execErr(query, f.execs); err != nil {
			return 0, err
		}
	}
	return 1, nil
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.record(query, args)
	if f.rowErr != nil {
		return nil, f.rowErr
	}
	return &fakeRows{rows: f.lookup(query)}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	f.record(query, args)
	if f.rowErr != nil {
		return fakeRow{err: f.rowErr}
	}
	rows := f.lookup(query)
	if len(rows) == 0 {
		return fakeRow{err: fmt.Errorf("no canned row for %q", query)}
	}
	return fakeRow{vals: rows[0]}
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.tx = &fakeTx{db: f}
	return f.tx, nil
}

type fakeTx struct {
	db         *fakeDB
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return t.db.Exec(ctx, query, args...)
}

func (t *fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.db.QueryRow(ctx, query, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.rows[r.idx-1], dest)
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.vals, dest)
}

func scanInto(vals []any, dest []any) error {
	if len(vals) != len(dest) {
		return fmt.Errorf("scan: want %d values, got %d", len(dest), len(vals))
	}
	for i, v := range vals {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *int:
			*d = v.(int)
		case *string:
			*d = v.(string)
		case **string:
			if v == nil {
				*d = nil
			} else {
				s := v.(string)
				*d = &s
			}
		default:
			return fmt.Errorf("scan: unsupported dest %T", dest[i])
		}
	}
	return nil
}
