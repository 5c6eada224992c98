// Package expr builds arithmetic expressions over named variables and
// compiles them — as data, not text — into sound interval evaluators.
//
// The design is two-staged:
//
//  1. Construct an abstract syntax tree with the node builders
//     (Var, Const, Add, Mul, Sqr, Sin, …). Trees are immutable and share
//     no state with their inputs.
//  2. Evaluate the tree against an interval.Box. The forward direction
//     (Eval) is the natural interval extension: each scalar operation is
//     replaced by its outward-rounded interval counterpart, which is always
//     sound but may be loose when a variable occurs more than once (the
//     dependency problem). The backward direction (Project) narrows the
//     box toward the set where the expression's value lies in a target
//     interval, one forward/backward sweep at a time — the building block
//     of constraint contractors.
//
// On top of the arithmetic layer, Rel expresses relational constraints
// (LessEq, GreaterEq, Equal, Between) as "expression value ∈ allowed set".
// Rel.Negate produces the complement under the closed/closed convention:
// points satisfying the relation with equality satisfy both the relation
// and its negation. That asymmetry is deliberate and load-bearing for the
// paving layer — do not "fix" it.
//
// Complexity:
//
//	– Eval:    O(|tree|) interval operations.
//	– Project: O(|tree|) per sweep; a fixed-point caller bounds the sweeps.
package expr
