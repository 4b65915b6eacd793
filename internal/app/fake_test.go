package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hrutik5321/mechanicshop/internal/db"
	"github.com/hrutik5321/mechanicshop/internal/ui/table"
)

type call struct {
	sql  string
	args []any
}

// fakeDB answers queries from queued row sets. The last queued set for a
// statement keeps being returned once the others are used up.
type fakeDB struct {
	out     io.Writer
	results map[string][]db.RowSet
	errs    map[string]error
	queries []call
	updates []call
	closed  bool
}

func newFakeDB(out io.Writer) *fakeDB {
	return &fakeDB{
		out:     out,
		results: map[string][]db.RowSet{},
		errs:    map[string]error{},
	}
}

func (f *fakeDB) on(sql string, sets ...db.RowSet) *fakeDB {
	f.results[sql] = append(f.results[sql], sets...)
	return f
}

func (f *fakeDB) fail(sql string, err error) *fakeDB {
	f.errs[sql] = err
	return f
}

func (f *fakeDB) Connect(ctx context.Context, cfg db.ConnConfig) error { return nil }

func (f *fakeDB) Close() error {
	f.closed = true
	return nil
}

func (f *fakeDB) ExecuteUpdate(ctx context.Context, sql string, args ...any) error {
	f.updates = append(f.updates, call{sql, args})
	return f.errs[sql]
}

func (f *fakeDB) ExecuteQueryAndPrintResult(ctx context.Context, sql string, args ...any) (int, error) {
	rs, err := f.FetchRows(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	if err := table.Render(f.out, rs.Columns, rs.Rows); err != nil {
		return 0, err
	}
	return len(rs.Rows), nil
}

func (f *fakeDB) ExecuteQueryAndReturnResult(ctx context.Context, sql string, args ...any) ([][]string, error) {
	rs, err := f.FetchRows(ctx, sql, args...)
	return rs.Rows, err
}

func (f *fakeDB) ExecuteQuery(ctx context.Context, sql string, args ...any) (int, error) {
	rs, err := f.FetchRows(ctx, sql, args...)
	if err != nil || len(rs.Rows) == 0 {
		return 0, err
	}
	return 1, nil
}

func (f *fakeDB) FetchRows(ctx context.Context, sql string, args ...any) (db.RowSet, error) {
	f.queries = append(f.queries, call{sql, args})
	if err := f.errs[sql]; err != nil {
		return db.RowSet{}, err
	}
	queue := f.results[sql]
	if len(queue) == 0 {
		return db.RowSet{}, nil
	}
	rs := queue[0]
	if len(queue) > 1 {
		f.results[sql] = queue[1:]
	}
	return rs, nil
}

func (f *fakeDB) CurrSeqVal(ctx context.Context, sequence string) (int, error) { return -1, nil }

func rows(columns []string, data ...[]string) db.RowSet {
	return db.RowSet{Columns: columns, Rows: data}
}

type harness struct {
	app    *App
	db     *fakeDB
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	var out, errOut bytes.Buffer
	fake := newFakeDB(&out)
	return &harness{
		app:    New(fake, strings.NewReader(input), &out, &errOut, zerolog.Nop()),
		db:     fake,
		out:    &out,
		errOut: &errOut,
	}
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}
