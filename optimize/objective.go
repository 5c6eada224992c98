package optimize

import (
	"github.com/katalvlaran/enclose/expr"
	"github.com/katalvlaran/enclose/interval"
)

// Objective is a sound bound engine for a scalar function: Eval returns an
// enclosure of the function's image over the box, Empty when the box lies
// wholly outside the function's domain.
//
// Eval must be pure — no side effects, bit-identical results for equal
// inputs — because the driver may evaluate sibling boxes concurrently.
type Objective interface {
	Eval(b interval.Box) interval.Interval
	Arity() int
}

// FromExpr wraps an expression tree's natural interval extension as an
// Objective.
func FromExpr(e expr.Expr) Objective { return exprObjective{e: e} }

type exprObjective struct{ e expr.Expr }

func (o exprObjective) Eval(b interval.Box) interval.Interval { return o.e.Eval(b) }
func (o exprObjective) Arity() int                            { return expr.Arity(o.e) }

// FromFunc wraps a raw bound function of known arity as an Objective.
// The function must honor the Objective purity and soundness contract.
func FromFunc(arity int, fn func(interval.Box) interval.Interval) Objective {
	return funcObjective{arity: arity, fn: fn}
}

type funcObjective struct {
	arity int
	fn    func(interval.Box) interval.Interval
}

func (o funcObjective) Eval(b interval.Box) interval.Interval { return o.fn(b) }
func (o funcObjective) Arity() int                            { return o.arity }

// negated flips an objective's sign: the bridge from Maximize to Minimize.
type negated struct{ inner Objective }

func (o negated) Eval(b interval.Box) interval.Interval { return o.inner.Eval(b).Neg() }
func (o negated) Arity() int                            { return o.inner.Arity() }
