package interval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors returned by interval constructors.
var (
	// ErrInvalidBounds indicates lo > hi or a NaN endpoint was supplied.
	ErrInvalidBounds = errors.New("interval: bounds must satisfy lo <= hi and be non-NaN")
)

// Interval is a closed range [lo, hi] of real numbers with lo <= hi,
// or the distinguished Empty sentinel [+∞, −∞].
//
// The zero value is the degenerate point interval [0, 0].
// Interval is an immutable value type: every operation returns a new value.
type Interval struct {
	lo, hi float64
}

// New builds the closed interval [lo, hi].
// It returns ErrInvalidBounds when lo > hi or either endpoint is NaN.
func New(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Empty(), fmt.Errorf("%w: [%v, %v]", ErrInvalidBounds, lo, hi)
	}

	return Interval{lo: lo, hi: hi}, nil
}

// MustNew is New for statically known bounds; it panics on invalid input.
func MustNew(lo, hi float64) Interval {
	iv, err := New(lo, hi)
	if err != nil {
		panic(err.Error())
	}

	return iv
}

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval { return Interval{lo: v, hi: v} }

// Empty returns the empty sentinel [+∞, −∞].
func Empty() Interval { return Interval{lo: math.Inf(1), hi: math.Inf(-1)} }

// Entire returns the whole real line [−∞, +∞].
func Entire() Interval { return Interval{lo: math.Inf(-1), hi: math.Inf(1)} }

// Lo returns the lower endpoint. For Empty it is +∞.
func (x Interval) Lo() float64 { return x.lo }

// Hi returns the upper endpoint. For Empty it is −∞.
func (x Interval) Hi() float64 { return x.hi }

// IsEmpty reports whether x is the empty sentinel.
func (x Interval) IsEmpty() bool { return x.lo > x.hi }

// IsEntire reports whether x is the whole real line.
func (x Interval) IsEntire() bool { return math.IsInf(x.lo, -1) && math.IsInf(x.hi, 1) }

// Diam returns the width hi − lo. Empty intervals have zero width;
// unbounded intervals have width +∞.
func (x Interval) Diam() float64 {
	if x.IsEmpty() {
		return 0
	}

	return x.hi - x.lo
}

// Mid returns a representative interior point of x, used as the split and
// probe point by the search layers. For finite intervals it is the exact
// midpoint; half-open infinite intervals step geometrically away from the
// finite endpoint so that repeated bisection eventually isolates any finite
// region; Entire yields 0; Empty yields NaN.
func (x Interval) Mid() float64 {
	switch {
	case x.IsEmpty():
		return math.NaN()
	case math.IsInf(x.lo, -1) && math.IsInf(x.hi, 1):
		return 0
	case math.IsInf(x.lo, -1):
		if x.hi > 0 {
			return 0
		}

		return 2*x.hi - 1
	case math.IsInf(x.hi, 1):
		if x.lo < 0 {
			return 0
		}

		return 2*x.lo + 1
	default:
		// 0.5*lo + 0.5*hi avoids overflow for huge finite endpoints.
		m := 0.5*x.lo + 0.5*x.hi
		if m < x.lo {
			m = x.lo
		}
		if m > x.hi {
			m = x.hi
		}

		return m
	}
}

// Contains reports whether the real number v lies in x.
func (x Interval) Contains(v float64) bool {
	return !x.IsEmpty() && x.lo <= v && v <= x.hi
}

// Eq reports exact (bitwise endpoint) equality. All empty intervals
// compare equal.
func (x Interval) Eq(y Interval) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return x.IsEmpty() && y.IsEmpty()
	}

	return x.lo == y.lo && x.hi == y.hi
}

// Subset reports whether x ⊆ y. Empty is a subset of everything.
func (x Interval) Subset(y Interval) bool {
	if x.IsEmpty() {
		return true
	}
	if y.IsEmpty() {
		return false
	}

	return y.lo <= x.lo && x.hi <= y.hi
}

// Intersect returns x ∩ y, Empty when the ranges do not overlap.
// Intersection is exact: no outward rounding is applied.
func (x Interval) Intersect(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	lo := math.Max(x.lo, y.lo)
	hi := math.Min(x.hi, y.hi)
	if lo > hi {
		return Empty()
	}

	return Interval{lo: lo, hi: hi}
}

// Hull returns the smallest interval containing both x and y.
func (x Interval) Hull(y Interval) Interval {
	if x.IsEmpty() {
		return y
	}
	if y.IsEmpty() {
		return x
	}

	return Interval{lo: math.Min(x.lo, y.lo), hi: math.Max(x.hi, y.hi)}
}

// String renders x as "[lo, hi]", or "∅" for the empty sentinel.
func (x Interval) String() string {
	if x.IsEmpty() {
		return "∅"
	}

	return "[" + strconv.FormatFloat(x.lo, 'g', -1, 64) + ", " +
		strconv.FormatFloat(x.hi, 'g', -1, 64) + "]"
}
