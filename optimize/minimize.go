package optimize

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/enclose/interval"
)

var inf = math.Inf(1)

// Minimize certifies the global minimum of f over box: it returns an
// enclosure of the minimum value and the set of boxes, each of diameter at
// most tol, whose union covers every global minimizer.
//
// Preconditions and validation (in order):
//  1. tol must be positive (ErrBadTolerance).
//  2. f must be non-nil (ErrNilObjective).
//  3. box must be non-empty (ErrEmptyBox).
//  4. f's arity must equal box's dimension (ErrDimensionMismatch).
//  5. the configured iteration budget must be positive (ErrBadBudget).
//
// A root bound outside f's domain is not an error: it surfaces as
// StatusInfeasible. Budget expiry surfaces as StatusAborted with the best
// partial bundle.
func Minimize(f Objective, box interval.Box, tol float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if math.IsNaN(tol) || tol <= 0 {
		return Result{}, fmt.Errorf("%w: got %v", ErrBadTolerance, tol)
	}
	if f == nil {
		return Result{}, ErrNilObjective
	}
	if box.IsEmpty() {
		return Result{}, ErrEmptyBox
	}
	if f.Arity() != box.Dim() {
		return Result{}, fmt.Errorf("%w: arity %d, dimension %d", ErrDimensionMismatch, f.Arity(), box.Dim())
	}
	if cfg.MaxIterations <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadBudget, cfg.MaxIterations)
	}

	e := &engine{
		f:        f,
		tol:      tol,
		options:  cfg,
		ws:       newWorkSet(64),
		cutoff:   inf,
		deadline: time.Time{},
	}
	if cfg.TimeLimit > 0 {
		e.deadline = time.Now().Add(cfg.TimeLimit)
	}

	return e.run(box.Clone()), nil
}

// Maximize certifies the global maximum of f over box. It is Minimize
// applied to −f; the sign of the value enclosure is flipped back below,
// while the maximizer boxes carry over unchanged.
func Maximize(f Objective, box interval.Box, tol float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilObjective
	}
	res, err := Minimize(negated{inner: f}, box, tol, opts...)
	if err != nil {
		return Result{}, err
	}
	// min(−f) = −max(f): negating the enclosure restores the maximum.
	res.Value = res.Value.Neg()

	return res, nil
}

// engine holds all state of a single minimization run. The cutoff — the
// best proven upper bound on the global minimum — lives here and nowhere
// else; it only ever decreases.
type engine struct {
	f       Objective
	tol     float64
	options Options

	ws       *workSet
	cutoff   float64
	accepted []candidate

	deadline   time.Time
	iterations int
}

// run seeds the working set and drives the pop/prune/accept/split loop.
func (e *engine) run(root interval.Box) Result {
	rootBound := e.f.Eval(root)
	if rootBound.IsEmpty() {
		// The whole domain lies outside f's domain of definition.
		return Result{Value: interval.Empty(), Status: StatusInfeasible}
	}
	e.probe(root)
	e.ws.push(candidate{box: root, bound: rootBound})

	status := StatusConverged
	var c candidate
	var popped bool
	for {
		// Budget check at the loop head, before the pop: an aborted run
		// must keep the pending candidate's bound in the working set so
		// the reported enclosure stays sound.
		if e.expired() {
			status = StatusAborted

			break
		}
		if c, popped = e.ws.pop(); !popped {
			break
		}
		e.iterations++

		// Prune: no point of c can attain a value below the cutoff.
		if c.bound.Lo() > e.cutoff {
			continue
		}

		// Accept terminal candidates; a small box's upper bound is itself
		// a valid global cutoff.
		left, right, splittable := interval.Bisect(c.box)
		if c.box.Diam() <= e.tol || !splittable {
			e.accept(c)

			continue
		}
		e.branch(c, left, right)
	}

	return e.bundle(status)
}

// expired checks the iteration and wall-clock budgets at the loop head.
func (e *engine) expired() bool {
	if e.iterations >= e.options.MaxIterations {
		return true
	}

	return !e.deadline.IsZero() && time.Now().After(e.deadline)
}

// accept moves a candidate into the result set and tightens the cutoff.
func (e *engine) accept(c candidate) {
	e.accepted = append(e.accepted, c)
	if hi := c.bound.Hi(); hi < e.cutoff {
		e.cutoff = hi
	}
}

// branch bounds both children (concurrently when configured — they are
// pure evaluations over disjoint boxes), probes their midpoints, and
// pushes the survivors. Both pushes happen on the driver goroutine, so the
// working set needs no locking and tie-breaking stays deterministic.
func (e *engine) branch(parent candidate, left, right interval.Box) {
	var lb, rb interval.Interval
	if e.options.Parallel {
		var g errgroup.Group
		g.Go(func() error { lb = e.f.Eval(left); return nil })
		g.Go(func() error { rb = e.f.Eval(right); return nil })
		_ = g.Wait() // the closures never fail; Wait only joins them
	} else {
		lb = e.f.Eval(left)
		rb = e.f.Eval(right)
	}

	e.admit(candidate{box: left, bound: lb, depth: parent.depth + 1})
	e.admit(candidate{box: right, bound: rb, depth: parent.depth + 1})
}

// admit discards a child with an empty bound (outside f's domain) or a
// prunable bound, and pushes it otherwise. Midpoint probing runs first so
// the freshest cutoff participates in the pruning test.
func (e *engine) admit(c candidate) {
	if c.bound.IsEmpty() {
		return // NumericEmpty: a pruning decision, never a failure
	}
	e.probe(c.box)
	if c.bound.Lo() > e.cutoff {
		return
	}
	e.ws.push(c)
}

// probe evaluates f at the box's midpoint. The midpoint is a feasible
// point, so the enclosure's upper endpoint is a valid cutoff; this is what
// makes pruning bite long before any box reaches the tolerance.
func (e *engine) probe(b interval.Box) {
	v := e.f.Eval(interval.PointBox(b.Mid()))
	if v.IsEmpty() {
		return
	}
	if hi := v.Hi(); hi < e.cutoff {
		e.cutoff = hi
	}
}

// bundle runs the closing filter and assembles the Result.
//
// Accepted boxes whose lower bound ended up above the final cutoff were
// dominated by a tighter cutoff established after their acceptance; they
// cannot contain a global minimizer and are dropped.
func (e *engine) bundle(status Status) Result {
	lo := e.ws.minLo() // pending boxes also bound the minimum from below
	boxes := make([]interval.Box, 0, len(e.accepted))
	for _, c := range e.accepted {
		if c.bound.Lo() > e.cutoff {
			continue
		}
		if c.bound.Lo() < lo {
			lo = c.bound.Lo()
		}
		boxes = append(boxes, c.box)
	}

	if status != StatusAborted && len(boxes) == 0 {
		return Result{Value: interval.Empty(), Status: StatusInfeasible, Iterations: e.iterations}
	}

	value := interval.Empty()
	if lo <= e.cutoff {
		value = interval.MustNew(lo, e.cutoff)
	}

	return Result{
		Value:      value,
		Boxes:      boxes,
		Status:     status,
		Iterations: e.iterations,
	}
}
