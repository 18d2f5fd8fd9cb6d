// Package persistence holds the table reading helpers shared by the SQL
// record sources.
package persistence

import (
	"database/sql"
	"fmt"
	"regexp"

	"familytree/pkg/domain"
)

// DefaultTable is the person table read when none is configured.
const DefaultTable = "persons"

// Columns lists the person table columns in data file field order.
var Columns = []string{"name", "height", "father", "mother"}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Row is one person table row rendered as data file fields. Line is the
// 1-based row position and stands in for the file line number.
type Row struct {
	Line   int
	Fields []string
}

// ValidateTable rejects table names that are not plain (optionally schema
// qualified) identifiers. Names are interpolated into SELECT statements.
func ValidateTable(name string) error {
	if !tableName.MatchString(name) {
		return fmt.Errorf("invalid table name %q", name)
	}
	return nil
}

// ScanRows reads every row of a name/height/father/mother result set. NULL
// parents become the unknown parent marker; a NULL name or height becomes an
// empty field so record validation rejects it.
func ScanRows(rows *sql.Rows) ([]Row, error) {
	var out []Row
	for rows.Next() {
		var name, height, father, mother sql.NullString
		if err := rows.Scan(&name, &height, &father, &mother); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out)+1, err)
		}
		out = append(out, Row{
			Line:   len(out) + 1,
			Fields: []string{name.String, height.String, parentField(father), parentField(mother)},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

func parentField(v sql.NullString) string {
	if !v.Valid || v.String == "" {
		return domain.UnknownParent
	}
	return v.String
}
