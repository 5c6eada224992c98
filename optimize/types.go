package optimize

import (
	"errors"
	"time"

	"github.com/katalvlaran/enclose/interval"
)

// Sentinel errors for eagerly validated configuration. Numeric anomalies
// during the search (empty bounds, infeasible children) are pruning
// decisions, not errors.
var (
	// ErrBadTolerance indicates a non-positive diameter tolerance.
	ErrBadTolerance = errors.New("optimize: tolerance must be positive")

	// ErrNilObjective indicates a nil objective was supplied.
	ErrNilObjective = errors.New("optimize: objective is nil")

	// ErrEmptyBox indicates a zero-dimensional or empty starting box.
	ErrEmptyBox = errors.New("optimize: starting box must be non-empty")

	// ErrDimensionMismatch indicates the objective's arity differs from
	// the starting box's dimension.
	ErrDimensionMismatch = errors.New("optimize: objective arity does not match box dimension")

	// ErrBadBudget indicates a non-positive iteration budget.
	ErrBadBudget = errors.New("optimize: iteration budget must be positive")
)

// Status is the terminal state of a search run.
type Status int

const (
	// StatusConverged: the working set drained and at least one box was
	// accepted; the value enclosure is a certificate.
	StatusConverged Status = iota

	// StatusInfeasible: no box of the domain evaluates inside the
	// objective's domain, so the problem has no answer to enclose.
	StatusInfeasible

	// StatusAborted: the iteration or wall-clock budget expired first.
	// The bundle is the best partial result and is NOT a certificate;
	// runs stalled by the interval dependency problem end here rather
	// than masquerading as Converged.
	StatusAborted
)

// String renders the status for logs and test failure messages.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "Converged"
	case StatusInfeasible:
		return "Infeasible"
	case StatusAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Result bundles the outcome of Minimize or Maximize.
type Result struct {
	// Value is a certified enclosure of the global extremum
	// (when Status is StatusConverged).
	Value interval.Interval

	// Boxes are the accepted extremizer enclosures, each of diameter at
	// most the tolerance, in acceptance order. Their union covers every
	// global extremizer of the objective over the starting box.
	Boxes []interval.Box

	// Status is the terminal state of the run.
	Status Status

	// Iterations counts working-set pops, for budget tuning.
	Iterations int
}

// Options configures a search run beyond the mandatory tolerance.
//
// MaxIterations – defensive pop budget; expiry yields StatusAborted.
// TimeLimit     – optional wall-clock budget; zero means no limit.
// Parallel      – bound the two children of a split concurrently.
type Options struct {
	MaxIterations int
	TimeLimit     time.Duration
	Parallel      bool
}

// Option is a functional option for Minimize and Maximize.
type Option func(*Options)

// WithMaxIterations caps the number of working-set pops. Values ≤ 0 are
// rejected with ErrBadBudget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTimeLimit adds a wall-clock budget checked at the loop head.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithParallelBounds evaluates the two child bounds of each split
// concurrently. Results are merged into the working set sequentially, so
// per-run determinism is preserved.
func WithParallelBounds() Option {
	return func(o *Options) { o.Parallel = true }
}

// DefaultOptions returns the defaults: one million pops, no time limit,
// sequential bounding.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 1_000_000,
		TimeLimit:     0,
		Parallel:      false,
	}
}
