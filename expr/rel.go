package expr

import (
	"math"
	"sort"

	"github.com/katalvlaran/enclose/interval"
)

// Fixed-point contraction constants. A sweep that narrows no coordinate by
// more than fpSlack (relative to the coordinate's width) ends the loop;
// fpMaxRounds caps pathological slow convergence.
const (
	fpMaxRounds = 16
	fpSlack     = 1e-3
)

// Rel is a relational constraint of the form "f(x) ∈ A", where A is a
// finite union of closed intervals. All relation builders produce closed
// allowed sets, so a point satisfying the relation with equality also
// satisfies the negation — the library-wide closed/closed convention.
type Rel struct {
	f    Expr
	sets []interval.Interval
}

// LessEq returns the constraint l(x) ≤ r(x).
func LessEq(l, r Expr) Rel {
	return Rel{f: Sub(l, r), sets: []interval.Interval{interval.MustNew(math.Inf(-1), 0)}}
}

// GreaterEq returns the constraint l(x) ≥ r(x).
func GreaterEq(l, r Expr) Rel {
	return Rel{f: Sub(l, r), sets: []interval.Interval{interval.MustNew(0, math.Inf(1))}}
}

// Equal returns the constraint l(x) = r(x).
func Equal(l, r Expr) Rel {
	return Rel{f: Sub(l, r), sets: []interval.Interval{interval.Point(0)}}
}

// Between returns the two-sided constraint lo ≤ e(x) ≤ hi.
func Between(e Expr, lo, hi float64) Rel {
	return Rel{f: e, sets: []interval.Interval{interval.MustNew(lo, hi)}}
}

// Arity returns the number of variables the constraint depends on.
func (r Rel) Arity() int { return Arity(r.f) }

// Negate returns the complement constraint under the closed/closed
// convention: the complement of a union of closed intervals is the closure
// of its set complement, so shared endpoints belong to both relations.
func (r Rel) Negate() Rel {
	return Rel{f: r.f, sets: complement(r.sets)}
}

// complement computes the closed complement of a union of closed intervals.
func complement(sets []interval.Interval) []interval.Interval {
	keep := make([]interval.Interval, 0, len(sets))
	for _, s := range sets {
		if !s.IsEmpty() {
			keep = append(keep, s)
		}
	}
	if len(keep) == 0 {
		return []interval.Interval{interval.Entire()}
	}
	sort.Slice(keep, func(i, j int) bool { return keep[i].Lo() < keep[j].Lo() })

	out := make([]interval.Interval, 0, len(keep)+1)
	cursor := math.Inf(-1)
	for _, s := range keep {
		// A zero-width gap means the sets share the endpoint; the closure
		// of its interior is empty, so only strict gaps produce pieces.
		if cursor < s.Lo() {
			out = append(out, interval.MustNew(cursor, s.Lo()))
		}
		cursor = math.Max(cursor, s.Hi())
	}
	if !math.IsInf(cursor, 1) {
		out = append(out, interval.MustNew(cursor, math.Inf(1)))
	}
	if len(out) == 0 {
		// The allowed sets cover the whole line: the negation is empty.
		out = append(out, interval.Empty())
	}

	return out
}

// Certain reports whether every point of b provably satisfies the
// constraint: the forward enclosure of f over b fits inside one allowed
// interval. An empty enclosure (box outside f's domain) is never certain.
func (r Rel) Certain(b interval.Box) bool {
	v := r.f.Eval(b)
	if v.IsEmpty() {
		return false
	}
	for _, s := range r.sets {
		if v.Subset(s) {
			return true
		}
	}

	return false
}

// Contract narrows b toward the points satisfying the constraint, running
// the forward/backward sweep to a fixed point against each allowed interval
// and hulling the branch results. The result contains every x ∈ b with
// f(x) ∈ A; when no branch is feasible it is the empty box.
func (r Rel) Contract(b interval.Box) interval.Box {
	out := interval.EmptyBox(len(b))
	for _, s := range r.sets {
		if nb, ok := fixpoint(r.f, b, s); ok {
			out = out.Hull(nb)
		}
	}

	return out
}

// fixpoint iterates Project until the sweep stops making progress.
func fixpoint(f Expr, b interval.Box, want interval.Interval) (interval.Box, bool) {
	cur := b
	for round := 0; round < fpMaxRounds; round++ {
		nb, ok := Project(f, cur, want)
		if !ok {
			return b, false
		}
		if !narrowed(cur, nb) {
			return nb, true
		}
		cur = nb
	}

	return cur, true
}

// narrowed reports whether any coordinate shrank by more than fpSlack of
// its previous width.
func narrowed(old, next interval.Box) bool {
	for i := range old {
		gain := old[i].Diam() - next[i].Diam()
		if gain > fpSlack*old[i].Diam() {
			return true
		}
	}

	return false
}
