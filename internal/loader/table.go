package loader

import (
	"context"

	"familytree/internal/infra/persistence"
	"familytree/pkg/domain"
)

// rowSource is satisfied by the SQL record sources.
type rowSource interface {
	Rows(ctx context.Context) ([]persistence.Row, error)
	Close() error
}

type tableSource struct {
	kind     string
	location string
	rows     rowSource
}

func (s *tableSource) Kind() string { return s.kind }

func (s *tableSource) Records(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.rows.Rows(ctx)
	if err != nil {
		return nil, &OpenError{Location: s.location, Err: err}
	}
	return RecordsFromRows(rows)
}

func (s *tableSource) Close() error { return s.rows.Close() }
