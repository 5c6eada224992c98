// Package optimize certifies global minima and maxima of interval-valued
// objectives over a box with a best-first branch-and-bound search.
//
// Algorithm outline (Minimize):
//
//  1. Seed a working set with the root box and its bound, and a cutoff —
//     the best proven upper bound on the global minimum — from the
//     objective's value at the root's midpoint. The cutoff is an explicit
//     field of the single search engine, never shared process state.
//  2. Pop the candidate with the smallest bound lower endpoint (ties break
//     by insertion order, keeping runs deterministic).
//  3. Prune the candidate when its lower bound exceeds the cutoff: no point
//     of it can attain the global minimum.
//  4. Accept the candidate into the result set when its box diameter is at
//     or below tolerance (or the box can no longer be split); its bound's
//     upper endpoint then tightens the cutoff.
//  5. Otherwise bisect the widest dimension, bound both children, probe
//     each child's midpoint to tighten the cutoff, discard children with
//     empty bounds (outside the objective's domain) or prunable bounds,
//     and push the rest. Child bounds may be evaluated concurrently: they
//     are pure functions over disjoint boxes.
//  6. An exhausted working set means Converged (or Infeasible when nothing
//     was ever accepted); an expired iteration or wall-clock budget means
//     Aborted with the best partial bundle.
//
// The final value enclosure is [min surviving lower bound, cutoff], and a
// closing filter drops accepted boxes whose lower bound ended up above the
// final cutoff.
//
// Soundness: every pruning decision discards only boxes that provably
// cannot contain a global minimizer, so the surviving boxes always cover
// every global minimizer of the objective.
//
// Termination: the diameter tolerance bounds the minimum box size, so the
// search tree is finite for any tol > 0; the iteration/time budget is a
// defensive second line for objectives whose natural extension stays loose
// as boxes shrink (the dependency problem). Such runs end as Aborted,
// never as a fake Converged.
//
// Complexity:
//
//   - Time: O(P · (E + log P)) where P = boxes processed and E = one
//     objective evaluation; P is exponential in dimension in the worst
//     case — branch-and-bound's practical speed comes from pruning.
//   - Space: O(P) for the box arena and heap.
//
// Maximize runs Minimize on the negated objective and flips the sign of
// the value enclosure back; the maximizer boxes need no adjustment.
package optimize
