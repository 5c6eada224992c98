package pave_test

import (
	"fmt"

	"github.com/katalvlaran/enclose/expr"
	"github.com/katalvlaran/enclose/interval"
	"github.com/katalvlaran/enclose/pave"
	"github.com/katalvlaran/enclose/separator"
)

// ExamplePave paves the unit disc x² + y² ≤ 1 inside [−2, 2]².
func ExamplePave() {
	rel := expr.LessEq(
		expr.Add(expr.Sqr(expr.Var(0)), expr.Sqr(expr.Var(1))),
		expr.Const(1),
	)
	sep, err := separator.FromRel(rel, 2)
	if err != nil {
		fmt.Println("separator failed:", err)
		return
	}

	p, err := pave.Pave(sep, interval.Uniform(2, interval.MustNew(-2, 2)), 0.5)
	if err != nil {
		fmt.Println("pave failed:", err)
		return
	}

	fmt.Println("complete:", !p.Incomplete)
	fmt.Println("origin covered:", p.Covers([]float64{0, 0}))
	fmt.Println("rim covered:", p.Covers([]float64{1, 0}))
	fmt.Println("far corner covered:", p.Covers([]float64{1.9, 1.9}))
	// Output:
	// complete: true
	// origin covered: true
	// rim covered: true
	// far corner covered: false
}
