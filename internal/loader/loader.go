package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"familytree/internal/core"
	"familytree/pkg/domain"
)

// Loader populates a person store from a Source, printing the user-facing
// load messages to out.
type Loader struct {
	store   domain.PersonStore
	out     io.Writer
	logger  *slog.Logger
	metrics *core.Metrics
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMetrics records rejected records on m.
func WithMetrics(m *core.Metrics) Option {
	return func(l *Loader) { l.metrics = m }
}

// New constructs a loader writing messages to out.
func New(store domain.PersonStore, out io.Writer, opts ...Option) *Loader {
	l := &Loader{store: store, out: out, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every record from src and populates the store. On a malformed
// record it prints the datafile error line and returns the *LoadError
// without touching the store.
func (l *Loader) Load(ctx context.Context, src Source) (Summary, error) {
	records, err := src.Records(ctx)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			l.metrics.RecordRejected(le.Reason, 1)
			l.logger.Info("data file rejected", "source", src.Kind(), "line", le.Line, "reason", le.Reason)
			if le.Reason == ReasonInvalidHeight {
				if _, werr := fmt.Fprintln(l.out, "Invalid argument."); werr != nil {
					return Summary{}, werr
				}
			}
			if _, werr := fmt.Fprintln(l.out, le.Error()); werr != nil {
				return Summary{}, werr
			}
		}
		return Summary{}, err
	}
	sum, err := Populate(l.out, l.store, records)
	l.metrics.RecordRejected(ReasonDuplicate, sum.Duplicates)
	if err != nil {
		return sum, err
	}
	l.logger.Info("data file loaded", "source", src.Kind(), "records", sum.Records, "added", sum.Added, "duplicates", sum.Duplicates)
	return sum, nil
}
