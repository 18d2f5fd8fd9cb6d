package core

import (
	"context"
	"familytree/pkg/domain"
	"io"
	"log/slog"
	"time"
)

// Service exposes the lineage queries as rendered commands. It owns the
// person store for the process lifetime: the loader mutates it once, after
// which only the Print* methods run.
type Service struct {
	store   domain.PersonStore
	lineage *Lineage
	engine  *domain.RulesEngine
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRulesEngine replaces the default integrity rules.
func WithRulesEngine(engine *domain.RulesEngine) Option {
	return func(s *Service) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// NewService constructs a service backed by the supplied store.
func NewService(store domain.PersonStore, opts ...Option) *Service {
	engine := domain.NewRulesEngine()
	engine.Register(LineageIntegrityRule())
	s := &Service{
		store:   store,
		lineage: NewLineage(store),
		engine:  engine,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	return s
}

// Store returns the underlying person store.
func (s *Service) Store() domain.PersonStore { return s.store }

// Lineage returns the query set.
func (s *Service) Lineage() *Lineage { return s.lineage }

// Metrics returns the metrics recorder.
func (s *Service) Metrics() *Metrics { return s.metrics }

// Logger returns the service logger.
func (s *Service) Logger() *slog.Logger { return s.logger }

// CheckIntegrity evaluates the registered rules against the loaded graph and
// records the store size. Findings are only logged: blocking ones at error
// level, the rest as warnings.
func (s *Service) CheckIntegrity(ctx context.Context) (domain.Result, error) {
	persons := s.store.AllPersons()
	s.metrics.SetPersons(len(persons))
	res, err := s.engine.Evaluate(ctx, s.store)
	if err != nil {
		return domain.Result{}, err
	}
	for _, v := range res.Violations {
		level := slog.LevelWarn
		if v.Severity == domain.SeverityBlock {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "lineage integrity", "rule", v.Rule, "severity", string(v.Severity), "person", v.EntityID, "message", v.Message)
	}
	if res.HasBlocking() {
		s.logger.Error("blocking lineage findings", "findings", len(res.Violations))
	}
	return res, nil
}

// PrintPersons lists every person with height, ascending by identifier.
func (s *Service) PrintPersons(w io.Writer) error {
	start := time.Now()
	persons := s.lineage.All()
	s.observe("print", nil, start)
	return WritePersons(w, persons)
}

// PrintChildren lists the target's children.
func (s *Service) PrintChildren(w io.Writer, id string) error {
	return s.printSet(w, "children", id, "children", s.lineage.Children)
}

// PrintParents lists the target's parents.
func (s *Service) PrintParents(w io.Writer, id string) error {
	return s.printSet(w, "parents", id, "parents", s.lineage.Parents)
}

// PrintSiblings lists the target's siblings.
func (s *Service) PrintSiblings(w io.Writer, id string) error {
	return s.printSet(w, "siblings", id, "siblings", s.lineage.Siblings)
}

// PrintCousins lists the target's first cousins.
func (s *Service) PrintCousins(w io.Writer, id string) error {
	return s.printSet(w, "cousins", id, "cousins", s.lineage.Cousins)
}

// PrintTallest reports the tallest person in the target's lineage.
func (s *Service) PrintTallest(w io.Writer, id string) error {
	return s.printExtreme(w, "tallest", id, s.lineage.Tallest)
}

// PrintShortest reports the shortest person in the target's lineage.
func (s *Service) PrintShortest(w io.Writer, id string) error {
	return s.printExtreme(w, "shortest", id, s.lineage.Shortest)
}

// PrintGrandchildren lists descendants at the given generation level.
func (s *Service) PrintGrandchildren(w io.Writer, id string, level int) error {
	return s.printSet(w, "grandchildren", id, GenerationLabel("children", level), func(id string) (domain.IdentifierSet, error) {
		return s.lineage.GrandchildrenAt(id, level)
	})
}

// PrintGrandparents lists ancestors at the given generation level.
func (s *Service) PrintGrandparents(w io.Writer, id string, level int) error {
	return s.printSet(w, "grandparents", id, GenerationLabel("parents", level), func(id string) (domain.IdentifierSet, error) {
		return s.lineage.GrandparentsAt(id, level)
	})
}

func (s *Service) printSet(w io.Writer, command, id, label string, query func(string) (domain.IdentifierSet, error)) error {
	start := time.Now()
	set, err := query(id)
	s.observe(command, err, start)
	if err != nil {
		return WriteQueryError(w, err)
	}
	return WriteGroup(w, id, label, set)
}

func (s *Service) printExtreme(w io.Writer, superlative, id string, query func(string) (domain.Person, error)) error {
	start := time.Now()
	winner, err := query(id)
	s.observe(superlative, err, start)
	if err != nil {
		return WriteQueryError(w, err)
	}
	return WriteExtreme(w, superlative, id, winner)
}

func (s *Service) observe(command string, err error, start time.Time) {
	elapsed := time.Since(start)
	s.metrics.ObserveQuery(command, err, elapsed)
	s.logger.Debug("query", "command", command, "result", resultLabel(err), "duration", elapsed)
}
