package pave

import (
	"errors"

	"github.com/katalvlaran/enclose/interval"
)

// Sentinel errors for eagerly validated configuration.
var (
	// ErrBadTolerance indicates a non-positive resolution tolerance.
	ErrBadTolerance = errors.New("pave: tolerance must be positive")

	// ErrNilSeparator indicates a nil separator was supplied.
	ErrNilSeparator = errors.New("pave: separator is nil")

	// ErrEmptyBox indicates a zero-dimensional or empty starting box.
	ErrEmptyBox = errors.New("pave: starting box must be non-empty")

	// ErrDimensionMismatch indicates the separator's dimension differs from
	// the starting box's.
	ErrDimensionMismatch = errors.New("pave: separator dimension does not match box")

	// ErrBadBudget indicates a non-positive classification budget.
	ErrBadBudget = errors.New("pave: classification budget must be positive")
)

// SubPaving is the result of Pave: a certified cover of the constraint's
// solution set within the starting box.
type SubPaving struct {
	// Inner boxes are proven to satisfy the constraint everywhere.
	Inner []interval.Box

	// Boundary boxes are undecided at the requested resolution; together
	// with Inner they cover every satisfying point of the starting box.
	Boundary []interval.Box

	// Incomplete marks a budget-expired run: pending boxes were flushed
	// into Boundary without reaching the tolerance.
	Incomplete bool
}

// Covers reports whether the point lies in some inner or boundary box.
func (p SubPaving) Covers(point []float64) bool {
	for _, b := range p.Inner {
		if b.Contains(point) {
			return true
		}
	}
	for _, b := range p.Boundary {
		if b.Contains(point) {
			return true
		}
	}

	return false
}

// Options configures a paving run beyond the mandatory tolerance.
//
// MaxSteps – defensive classification budget; expiry marks the paving
// Incomplete instead of failing.
type Options struct {
	MaxSteps int
}

// Option is a functional option for Pave.
type Option func(*Options)

// WithMaxSteps caps the number of classification steps. Values ≤ 0 are
// rejected with ErrBadBudget.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// DefaultOptions returns the defaults: one million classification steps.
func DefaultOptions() Options {
	return Options{MaxSteps: 1_000_000}
}
