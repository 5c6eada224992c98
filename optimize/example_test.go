package optimize_test

import (
	"fmt"

	"github.com/katalvlaran/enclose/expr"
	"github.com/katalvlaran/enclose/interval"
	"github.com/katalvlaran/enclose/optimize"
)

// ExampleMinimize certifies the minimum of (x−3)² over [0, 10].
func ExampleMinimize() {
	f := optimize.FromExpr(expr.Sqr(expr.Sub(expr.Var(0), expr.Const(3))))
	box := interval.NewBox(interval.MustNew(0, 10))

	res, err := optimize.Minimize(f, box, 1e-4)
	if err != nil {
		fmt.Println("minimize failed:", err)
		return
	}

	hull := interval.EmptyBox(1)
	for _, b := range res.Boxes {
		hull = hull.Hull(b)
	}

	fmt.Printf("status: %s\n", res.Status)
	fmt.Printf("minimum in [%.6f, %.6f]\n", res.Value.Lo(), res.Value.Hi())
	fmt.Printf("minimizer near %.3f\n", hull.Mid()[0])
	// Output:
	// status: Converged
	// minimum in [0.000000, 0.000000]
	// minimizer near 3.000
}

// ExampleMaximize certifies the maximum of 5 − (x−2)² over [0, 10].
func ExampleMaximize() {
	f := optimize.FromExpr(expr.Sub(
		expr.Const(5),
		expr.Sqr(expr.Sub(expr.Var(0), expr.Const(2))),
	))
	box := interval.NewBox(interval.MustNew(0, 10))

	res, err := optimize.Maximize(f, box, 1e-4)
	if err != nil {
		fmt.Println("maximize failed:", err)
		return
	}

	hull := interval.EmptyBox(1)
	for _, b := range res.Boxes {
		hull = hull.Hull(b)
	}

	fmt.Printf("status: %s\n", res.Status)
	fmt.Printf("maximum ≈ %.4f\n", res.Value.Hi())
	fmt.Printf("maximizer near %.3f\n", hull.Mid()[0])
	// Output:
	// status: Converged
	// maximum ≈ 5.0000
	// maximizer near 2.000
}
