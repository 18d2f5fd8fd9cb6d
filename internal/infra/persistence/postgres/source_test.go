package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"familytree/internal/infra/persistence/postgres/testutil"
)

func withStub(t *testing.T) *testutil.StubConn {
	t.Helper()
	db, conn := testutil.NewStubDB()
	restore := OverrideSQLOpen(func(driverName, dsn string) (*sql.DB, error) {
		if driverName != "pgx" {
			t.Fatalf("unexpected driver %s", driverName)
		}
		return db, nil
	})
	t.Cleanup(restore)
	return conn
}

func TestSourceRows(t *testing.T) {
	conn := withStub(t)
	conn.Seed("persons", map[string]any{"name": "Grandpa", "height": int64(180)})
	conn.Seed("persons", map[string]any{"name": "Dad", "height": int64(175), "father": "Grandpa", "mother": nil})
	src, err := Open(context.Background(), "postgres://localhost/family", "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = src.Close() }()
	rows, err := src.Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"Dad", "175", "Grandpa", "-"}
	if rows[1].Line != 2 || strings.Join(rows[1].Fields, ";") != strings.Join(want, ";") {
		t.Fatalf("unexpected row %+v", rows[1])
	}
	if got := conn.Queries[0]; got != "SELECT name, height, father, mother FROM persons" {
		t.Fatalf("unexpected query %q", got)
	}
}

func TestOpenPingFailure(t *testing.T) {
	conn := withStub(t)
	conn.FailPing = true
	if _, err := Open(context.Background(), "postgres://down", "persons"); err == nil || !strings.Contains(err.Error(), "ping postgres") {
		t.Fatalf("expected ping error, got %v", err)
	}
}

func TestOpenSQLOpenFailure(t *testing.T) {
	restore := OverrideSQLOpen(func(string, string) (*sql.DB, error) { return nil, errors.New("boom") })
	defer restore()
	if _, err := Open(context.Background(), "postgres://x", "persons"); err == nil || !strings.Contains(err.Error(), "open postgres") {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestOpenRejectsBadTable(t *testing.T) {
	withStub(t)
	if _, err := Open(context.Background(), "postgres://x", "persons; DROP TABLE x"); err == nil {
		t.Fatalf("expected invalid table error")
	}
}

func TestRowsQueryFailure(t *testing.T) {
	conn := withStub(t)
	conn.FailTables = map[string]bool{"family.people": true}
	src, err := Open(context.Background(), "postgres://x", "family.people")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := src.Rows(context.Background()); err == nil {
		t.Fatalf("expected query failure")
	}
}
