package pave

import (
	"fmt"
	"math"

	"github.com/katalvlaran/enclose/interval"
	"github.com/katalvlaran/enclose/separator"
)

// Pave partitions box into inner and boundary layers of sep's solution set
// at resolution tol.
//
// Preconditions and validation (in order):
//  1. tol must be positive (ErrBadTolerance).
//  2. sep must be non-nil (ErrNilSeparator).
//  3. box must be non-empty (ErrEmptyBox).
//  4. sep's dimension must equal box's dimension (ErrDimensionMismatch).
//  5. the configured classification budget must be positive (ErrBadBudget).
//
// Classification order is deterministic: breadth-first over the bisection
// tree, left half before right half.
func Pave(sep *separator.Separator, box interval.Box, tol float64, opts ...Option) (SubPaving, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if math.IsNaN(tol) || tol <= 0 {
		return SubPaving{}, fmt.Errorf("%w: got %v", ErrBadTolerance, tol)
	}
	if sep == nil {
		return SubPaving{}, ErrNilSeparator
	}
	if box.IsEmpty() {
		return SubPaving{}, ErrEmptyBox
	}
	if sep.Dim() != box.Dim() {
		return SubPaving{}, fmt.Errorf("%w: separator %d, box %d", ErrDimensionMismatch, sep.Dim(), box.Dim())
	}
	if cfg.MaxSteps <= 0 {
		return SubPaving{}, fmt.Errorf("%w: got %d", ErrBadBudget, cfg.MaxSteps)
	}

	var p SubPaving
	queue := []interval.Box{box.Clone()}
	steps := 0
	for len(queue) > 0 {
		// Budget check before the pop: flushed boxes must still be pending
		// so the covering invariant survives an early stop.
		if steps >= cfg.MaxSteps {
			p.Boundary = append(p.Boundary, queue...)
			p.Incomplete = true

			return p, nil
		}
		b := queue[0]
		queue = queue[1:]
		steps++

		if sep.CertainIn(b) {
			p.Inner = append(p.Inner, b)

			continue
		}
		if sep.CertainOut(b) {
			continue
		}

		in, out, err := sep.Apply(b)
		if err != nil {
			return SubPaving{}, err
		}
		switch {
		case in.IsEmpty():
			// No point of b satisfies the constraint.
			continue
		case out.IsEmpty():
			// Every point of b does; keep the uncontracted box so the
			// layers tile the explored region.
			p.Inner = append(p.Inner, b)

			continue
		}

		// The shell peeled off by the feasible-side contraction holds no
		// solution point, so only the enclosure needs further work.
		left, right, splittable := interval.Bisect(in)
		if in.Diam() <= tol || !splittable {
			p.Boundary = append(p.Boundary, in)

			continue
		}
		queue = append(queue, left, right)
	}

	return p, nil
}
