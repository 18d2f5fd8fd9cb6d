// Package postgres reads person records from a Postgres table through the
// pgx database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"familytree/internal/infra/persistence"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const defaultDriver = "pgx"

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Source is an open Postgres connection pool holding a person table.
type Source struct {
	db    *sql.DB
	table string
}

// Open connects using dsn and verifies the server is reachable.
func Open(ctx context.Context, dsn, table string) (*Source, error) {
	if table == "" {
		table = persistence.DefaultTable
	}
	if err := persistence.ValidateTable(table); err != nil {
		return nil, err
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Source{db: db, table: table}, nil
}

// Rows returns every row of the person table.
func (s *Source) Rows(ctx context.Context) ([]persistence.Row, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(persistence.Columns, ", "), s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.table, err)
	}
	defer func() { _ = rows.Close() }()
	return persistence.ScanRows(rows)
}

// Close releases the connection pool.
func (s *Source) Close() error { return s.db.Close() }

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
