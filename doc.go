// Package enclose certifies global minima, maxima and constraint sets of
// real-valued functions over interval boxes — every reported bound is a
// mathematical guarantee, not a numerical estimate.
//
// 🚀 What is enclose?
//
//	A pure-Go library for validated (interval) global search:
//		• Interval kernel: outward-rounded arithmetic & transcendental extensions
//		• Expressions: arithmetic/relational AST with natural interval extension
//		• Optimization: branch-and-bound Minimize / Maximize with certified bounds
//		• Separators: guaranteed inner/outer contraction for relational constraints
//		• Paving: set inversion into inner / boundary box collections
//
// ✨ Why choose enclose?
//
//   - Sound by construction – bounds always contain the true answer
//   - Deterministic – priority ties broken by insertion order, reproducible runs
//   - Budgeted – every search accepts iteration and wall-clock limits
//   - Pure Go – no cgo, no external solvers
//
// Under the hood, everything is organized under five subpackages:
//
//	interval/  — Interval & Box value types, outward-rounded primitives
//	expr/      — expression AST, interval evaluators, relational constraints
//	optimize/  — branch-and-bound driver (Minimize, Maximize)
//	separator/ — inner/outer contraction pairs for constraints
//	pave/      — set-inversion paving engine (SubPaving)
//
// Quick ASCII example:
//
//	    f(x) = (x-3)²  over  [-∞, +∞]
//	    Minimize ⇒ value ⊆ [0, ε],  minimizer boxes around x = 3
//
// Dive into the package docs for algorithm outlines, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/enclose
package enclose
