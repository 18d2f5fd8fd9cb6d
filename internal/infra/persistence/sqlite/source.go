// Package sqlite reads person records from a table in a SQLite database file
// using the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"familytree/internal/infra/persistence"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Source is an open SQLite database holding a person table.
type Source struct {
	db    *sql.DB
	path  string
	table string
}

// Open opens the database file at path. The file must already exist; the
// driver would otherwise create an empty database.
func Open(path, table string) (*Source, error) {
	if table == "" {
		table = persistence.DefaultTable
	}
	if err := persistence.ValidateTable(table); err != nil {
		return nil, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("open sqlite: %s is a directory", path)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &Source{db: db, path: path, table: table}, nil
}

// Path returns the database file path.
func (s *Source) Path() string { return s.path }

// Rows returns every row of the person table in rowid order.
func (s *Source) Rows(ctx context.Context) ([]persistence.Row, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", strings.Join(persistence.Columns, ", "), s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.table, err)
	}
	defer func() { _ = rows.Close() }()
	return persistence.ScanRows(rows)
}

// Close releases the database handle.
func (s *Source) Close() error { return s.db.Close() }
