package expr

import (
	"math"

	"github.com/katalvlaran/enclose/interval"
)

// This file implements the backward half of HC4-revise: given a target
// interval for a node's output, each node narrows its children's plausible
// values and recurses. Every step is an intersection with a sound
// enclosure of the inverse image, so no true solution is ever discarded;
// nodes without a useful inverse (trigonometry, negative powers) simply
// decline to narrow, which is sound.

func (n variable) project(b interval.Box, want interval.Interval) (interval.Box, bool) {
	if n.idx >= len(b) {
		return b, false
	}
	nv := b[n.idx].Intersect(want)
	if nv.IsEmpty() {
		return b, false
	}

	return b.With(n.idx, nv), true
}

func (n constant) project(b interval.Box, want interval.Interval) (interval.Box, bool) {
	if n.v.Intersect(want).IsEmpty() {
		return b, false
	}

	return b, true
}

func (n binary) project(b interval.Box, want interval.Interval) (interval.Box, bool) {
	lv := n.l.Eval(b)
	rv := n.r.Eval(b)
	cur := n.forward(lv, rv).Intersect(want)
	if cur.IsEmpty() {
		return b, false
	}

	// Invert the operation toward each child.
	var lt, rt interval.Interval
	switch n.op {
	case opAdd:
		lt = cur.Sub(rv)
		rt = cur.Sub(lv)
	case opSub:
		lt = cur.Add(rv)
		rt = lv.Sub(cur)
	case opMul:
		// Division by a zero-crossing factor yields Entire: no narrowing.
		lt = cur.Div(rv)
		rt = cur.Div(lv)
	default: // opDiv, cur = l / r
		lt = cur.Mul(rv)
		rt = lv.Div(cur)
	}

	nb, ok := n.l.project(b, lt.Intersect(lv))
	if !ok {
		return b, false
	}
	nb, ok = n.r.project(nb, rt.Intersect(rv))
	if !ok {
		return b, false
	}

	return nb, true
}

// forward applies the node's interval operation; shared by Eval and project.
func (n binary) forward(l, r interval.Interval) interval.Interval {
	switch n.op {
	case opAdd:
		return l.Add(r)
	case opSub:
		return l.Sub(r)
	case opMul:
		return l.Mul(r)
	default:
		return l.Div(r)
	}
}

func (n unary) project(b interval.Box, want interval.Interval) (interval.Box, bool) {
	cv := n.c.Eval(b)
	cur := n.Eval(b).Intersect(want)
	if cur.IsEmpty() {
		return b, false
	}

	var ct interval.Interval
	switch n.op {
	case opNeg:
		ct = cur.Neg()
	case opSqr:
		ct = evenInverse(cv, cur.Sqrt())
	case opAbs:
		ct = evenInverse(cv, cur.Intersect(nonNegative()))
	case opSqrt:
		ct = cur.Intersect(nonNegative()).Sqr()
	case opExp:
		ct = cur.Log()
	case opLog:
		ct = cur.Exp()
	default: // opSin, opCos: periodic inverse is multi-branched; decline.
		return b, true
	}
	if ct.IsEmpty() {
		return b, false
	}

	nb, ok := n.c.project(b, ct.Intersect(cv))
	if !ok {
		return b, false
	}

	return nb, true
}

func (n power) project(b interval.Box, want interval.Interval) (interval.Box, bool) {
	cv := n.c.Eval(b)
	cur := n.Eval(b).Intersect(want)
	if cur.IsEmpty() {
		return b, false
	}
	if n.n < 0 {
		// Reciprocal powers have no monotone inverse over zero-crossing
		// bases; declining to narrow keeps the sweep sound.
		return b, true
	}

	var ct interval.Interval
	switch {
	case n.n == 0:
		// c⁰ = 1 constrains nothing about c.
		return b, true
	case n.n%2 == 0:
		ct = evenInverse(cv, root(cur.Intersect(nonNegative()), n.n))
	default:
		ct = root(cur, n.n)
	}
	if ct.IsEmpty() {
		return b, false
	}

	nb, ok := n.c.project(b, ct.Intersect(cv))
	if !ok {
		return b, false
	}

	return nb, true
}

// nonNegative is the half line [0, +∞).
func nonNegative() interval.Interval {
	return interval.MustNew(0, math.Inf(1))
}

// evenInverse maps the non-negative magnitude enclosure r back through an
// even function, using the sign of the child's current value to pick the
// branch: both branches are kept when the child straddles zero.
func evenInverse(child, r interval.Interval) interval.Interval {
	if r.IsEmpty() {
		return interval.Empty()
	}
	switch {
	case child.Lo() >= 0:
		return r
	case child.Hi() <= 0:
		return r.Neg()
	default:
		return interval.MustNew(-r.Hi(), r.Hi())
	}
}

// root returns a sound enclosure of the real n-th root of x (n ≥ 1),
// preserving sign for odd n and clipping to x ≥ 0 for even n.
func root(x interval.Interval, n int) interval.Interval {
	if x.IsEmpty() {
		return interval.Empty()
	}
	if n%2 == 0 {
		x = x.Intersect(nonNegative())
		if x.IsEmpty() {
			return interval.Empty()
		}
	}
	lo := rootEP(x.Lo(), n)
	hi := rootEP(x.Hi(), n)

	return interval.MustNew(
		math.Nextafter(math.Nextafter(lo, math.Inf(-1)), math.Inf(-1)),
		math.Nextafter(math.Nextafter(hi, math.Inf(1)), math.Inf(1)),
	)
}

// rootEP is the scalar signed n-th root of a single endpoint.
func rootEP(v float64, n int) float64 {
	if math.IsInf(v, 1) {
		return v
	}
	if math.IsInf(v, -1) {
		return v
	}
	if v < 0 {
		return -math.Pow(-v, 1/float64(n))
	}

	return math.Pow(v, 1/float64(n))
}
