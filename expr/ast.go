package expr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/enclose/interval"
)

// Sentinel errors raised by the node builders.
var (
	// ErrBadVariable indicates a negative variable index.
	ErrBadVariable = errors.New("expr: variable index must be non-negative")
)

// Expr is an immutable arithmetic expression tree over variables x₀…xₙ₋₁.
//
// The interface is sealed: trees are built exclusively through the node
// builders in this package, which keeps forward and backward evaluation in
// lock-step for every node kind.
type Expr interface {
	// Eval returns the natural interval extension of the expression over
	// the box: a sound enclosure of {e(x) : x ∈ b}, Empty when the whole
	// box lies outside the expression's domain. Eval is pure: equal inputs
	// produce bit-identical results.
	Eval(b interval.Box) interval.Interval

	// project is the backward (HC4-revise) step, see Project.
	project(b interval.Box, want interval.Interval) (interval.Box, bool)

	// maxVar returns the highest variable index in the subtree, −1 if none.
	maxVar() int
}

// Arity returns the number of variables the expression depends on:
// one past its highest variable index.
func Arity(e Expr) int { return e.maxVar() + 1 }

// Project narrows b toward the subset where e's value lies in want,
// with one forward/backward sweep. The returned box always contains every
// x ∈ b with e(x) ∈ want (contraction never discards a solution); the
// boolean is false when the sweep proves no such x exists.
func Project(e Expr, b interval.Box, want interval.Interval) (interval.Box, bool) {
	return e.project(b, want)
}

// unaryOp / binaryOp enumerate the node kinds sharing a struct shape.
type unaryOp int

const (
	opNeg unaryOp = iota
	opSqr
	opSqrt
	opExp
	opLog
	opSin
	opCos
	opAbs
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

type variable struct{ idx int }

type constant struct{ v interval.Interval }

type unary struct {
	op unaryOp
	c  Expr
}

type binary struct {
	op   binaryOp
	l, r Expr
}

type power struct {
	n int
	c Expr
}

// Var returns the variable xᵢ. It panics on a negative index: a malformed
// tree is a programming error, caught at construction time.
func Var(i int) Expr {
	if i < 0 {
		panic(fmt.Sprintf("%v: %d", ErrBadVariable, i))
	}

	return variable{idx: i}
}

// Const returns the constant expression v.
func Const(v float64) Expr { return constant{v: interval.Point(v)} }

// ConstInterval returns a constant enclosure, e.g. a sound π.
func ConstInterval(v interval.Interval) Expr { return constant{v: v} }

// Add returns l + r.
func Add(l, r Expr) Expr { return binary{op: opAdd, l: l, r: r} }

// Sub returns l − r.
func Sub(l, r Expr) Expr { return binary{op: opSub, l: l, r: r} }

// Mul returns l · r.
func Mul(l, r Expr) Expr { return binary{op: opMul, l: l, r: r} }

// Div returns l / r.
func Div(l, r Expr) Expr { return binary{op: opDiv, l: l, r: r} }

// Neg returns −c.
func Neg(c Expr) Expr { return unary{op: opNeg, c: c} }

// Sqr returns c². Prefer Sqr over Mul(c, c): the kernel exploits the
// perfect correlation of the two factors.
func Sqr(c Expr) Expr { return unary{op: opSqr, c: c} }

// Sqrt returns √c (partial: defined for c ≥ 0).
func Sqrt(c Expr) Expr { return unary{op: opSqrt, c: c} }

// Exp returns eᶜ.
func Exp(c Expr) Expr { return unary{op: opExp, c: c} }

// Log returns ln c (partial: defined for c > 0).
func Log(c Expr) Expr { return unary{op: opLog, c: c} }

// Sin returns sin c.
func Sin(c Expr) Expr { return unary{op: opSin, c: c} }

// Cos returns cos c.
func Cos(c Expr) Expr { return unary{op: opCos, c: c} }

// Abs returns |c|.
func Abs(c Expr) Expr { return unary{op: opAbs, c: c} }

// Pow returns cⁿ for an integer exponent n.
func Pow(c Expr, n int) Expr { return power{n: n, c: c} }

// Sum folds terms left-to-right with Add. Sum() is the constant 0.
func Sum(terms ...Expr) Expr {
	if len(terms) == 0 {
		return Const(0)
	}
	acc := terms[0]
	for _, term := range terms[1:] {
		acc = Add(acc, term)
	}

	return acc
}

// Prod folds factors left-to-right with Mul. Prod() is the constant 1.
func Prod(factors ...Expr) Expr {
	if len(factors) == 0 {
		return Const(1)
	}
	acc := factors[0]
	for _, f := range factors[1:] {
		acc = Mul(acc, f)
	}

	return acc
}

// ---- forward evaluation (natural interval extension) ----

func (n variable) Eval(b interval.Box) interval.Interval {
	if n.idx >= len(b) {
		return interval.Empty()
	}

	return b[n.idx]
}

func (n constant) Eval(interval.Box) interval.Interval { return n.v }

func (n unary) Eval(b interval.Box) interval.Interval {
	c := n.c.Eval(b)
	switch n.op {
	case opNeg:
		return c.Neg()
	case opSqr:
		return c.Sqr()
	case opSqrt:
		return c.Sqrt()
	case opExp:
		return c.Exp()
	case opLog:
		return c.Log()
	case opSin:
		return c.Sin()
	case opCos:
		return c.Cos()
	default:
		return c.Abs()
	}
}

func (n binary) Eval(b interval.Box) interval.Interval {
	l := n.l.Eval(b)
	r := n.r.Eval(b)
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

func (n power) Eval(b interval.Box) interval.Interval {
	return n.c.Eval(b).Pow(n.n)
}

// ---- arity ----

func (n variable) maxVar() int { return n.idx }
func (n constant) maxVar() int { return -1 }
func (n unary) maxVar() int    { return n.c.maxVar() }
func (n power) maxVar() int    { return n.c.maxVar() }

func (n binary) maxVar() int {
	l, r := n.l.maxVar(), n.r.maxVar()
	if l > r {
		return l
	}

	return r
}
