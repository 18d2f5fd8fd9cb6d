package loader

import (
	"context"
	"fmt"
	"strings"

	"familytree/internal/blob"
	"familytree/internal/infra/persistence/postgres"
	"familytree/internal/infra/persistence/sqlite"
	"familytree/pkg/domain"
)

// Source yields the records of one data file or person table.
type Source interface {
	// Kind names the backing driver for logs.
	Kind() string
	Records(ctx context.Context) ([]domain.Record, error)
	Close() error
}

// Options configures how a location is opened.
type Options struct {
	// Table is the person table read by SQL sources.
	Table string
	// S3 carries region, endpoint and credentials for s3:// locations.
	S3 blob.S3Config
}

var (
	openBlob     = blob.Open
	openSQLite   = func(path, table string) (rowSource, error) { return sqlite.Open(path, table) }
	openPostgres = func(ctx context.Context, dsn, table string) (rowSource, error) {
		return postgres.Open(ctx, dsn, table)
	}
)

// Open resolves location to a source:
//
//	sqlite://<path>                 person table in a SQLite file
//	postgres://..., postgresql://... person table in Postgres
//	s3://<bucket>/<key>             data file in S3 or MinIO
//	anything else                   local data file
//
// Every failure to reach the data, here or later in Records, is reported as
// an *OpenError.
func Open(ctx context.Context, location string, opts Options) (Source, error) {
	src, err := open(ctx, location, opts)
	if err != nil {
		return nil, &OpenError{Location: location, Err: err}
	}
	return src, nil
}

func open(ctx context.Context, location string, opts Options) (Source, error) {
	switch {
	case strings.HasPrefix(location, "sqlite://"):
		rs, err := openSQLite(strings.TrimPrefix(location, "sqlite://"), opts.Table)
		if err != nil {
			return nil, err
		}
		return &tableSource{kind: "sqlite", location: location, rows: rs}, nil
	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		rs, err := openPostgres(ctx, location, opts.Table)
		if err != nil {
			return nil, err
		}
		return &tableSource{kind: "postgres", location: location, rows: rs}, nil
	default:
		store, key, err := openBlob(ctx, location, opts.S3)
		if err != nil {
			return nil, err
		}
		if _, err := store.Head(ctx, key); err != nil {
			return nil, err
		}
		return &blobSource{store: store, location: location, key: key}, nil
	}
}

type blobSource struct {
	store    blob.Store
	location string
	key      string
}

func (s *blobSource) Kind() string { return string(s.store.Driver()) }

func (s *blobSource) Records(ctx context.Context) ([]domain.Record, error) {
	_, rc, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, &OpenError{Location: s.location, Err: fmt.Errorf("read %s: %w", s.key, err)}
	}
	defer func() { _ = rc.Close() }()
	return ParseRecords(rc)
}

func (s *blobSource) Close() error { return nil }
