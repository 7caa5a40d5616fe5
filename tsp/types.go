package tsp

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/report"
)

// Sentinel errors. The first three are precondition failures reported before
// any exploration; ErrNoSolution is the fatal result of an exhausted search.
var (
	// ErrNilGraph is returned when Solve receives a nil graph.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrNoStartVertex is returned when the graph has no start vertex.
	ErrNoStartVertex = errors.New("tsp: start vertex is not set")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("tsp: graph has no vertices")

	// ErrIncompleteGraph marks a vertex without recorded adjacency reached
	// during the search. The branch is abandoned; the error only reaches the
	// caller wrapped together with ErrNoSolution.
	ErrIncompleteGraph = errors.New("tsp: incomplete graph")

	// ErrNoSolution is returned when no Hamiltonian cycle through the start exists.
	ErrNoSolution = errors.New("tsp: no hamiltonian cycle found")

	// ErrInvalidTour is returned by ValidateTour and TourWeight.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// DefaultSeparator joins tour labels in messages and Result.Path.
const DefaultSeparator = "->"

// Stats are informational counters of one search. They never influence it.
type Stats struct {
	// Calls counts invocations of the recursive step, the root included.
	Calls uint64

	// Decisions counts internal decision points: base-case checks,
	// neighbor-list lookups, per-neighbor pruning checks and closing comparisons.
	Decisions uint64

	// Pruned counts unvisited neighbors rejected by the bound.
	Pruned uint64

	// Improvements counts strict improvements of the best tour.
	Improvements uint64

	// IncompleteBranches counts branches abandoned on a vertex without adjacency.
	IncompleteBranches uint64

	// ReportFailures counts notifications the reporter refused.
	ReportFailures uint64

	// Elapsed is the wall time of the search proper (exploration only).
	Elapsed time.Duration
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is the closed cycle: Tour[0] == Tour[len(Tour)-1] == start,
	// every other vertex exactly once in between.
	Tour []core.VertexID

	// Labels holds the label of each Tour entry.
	Labels []string

	// Weight is the total weight of the cycle.
	Weight int64

	// Stats are the search counters; populated on failure too.
	Stats Stats
}

// Path joins the tour labels with sep, e.g. "A->B->C->A".
// An empty sep selects DefaultSeparator.
func (r Result) Path(sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}

	return strings.Join(r.Labels, sep)
}

// Options configures Solve.
type Options struct {
	// Reporter receives progress and result notifications. Default report.Discard.
	Reporter report.Reporter

	// Separator joins labels in the "optimal tour" notification.
	Separator string

	// Logger receives debug diagnostics (reporter failures). Default zerolog.Nop().
	Logger zerolog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the defaults: discard reporter, "->" separator, no logging.
func DefaultOptions() Options {
	return Options{
		Reporter:  report.Discard,
		Separator: DefaultSeparator,
		Logger:    zerolog.Nop(),
	}
}

// WithReporter routes notifications to r. A nil r keeps the default.
func WithReporter(r report.Reporter) Option {
	return func(o *Options) {
		if r != nil {
			o.Reporter = r
		}
	}
}

// WithSeparator sets the label separator. An empty sep keeps the default.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		if sep != "" {
			o.Separator = sep
		}
	}
}

// WithLogger installs a logger for debug diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
