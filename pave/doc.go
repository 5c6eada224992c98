// Package pave partitions a box into certified inner and boundary regions
// of a constraint's solution set.
//
// Pave runs a set-inversion sweep over a FIFO working queue:
//
//	1. Pop a box. If the separator proves it wholly feasible, it joins the
//	   inner layer; wholly infeasible boxes are discarded.
//	2. Otherwise contract from both sides. An empty feasible side means no
//	   solution point, discard. An empty infeasible side means the whole
//	   box is feasible, inner layer.
//	3. The surviving feasible enclosure is bisected and both halves are
//	   requeued, until its diameter falls under the tolerance; such
//	   still-ambiguous slivers join the boundary layer.
//
// The output invariant: every point of the starting box satisfying the
// constraint lies in some inner or boundary box. Discarded regions are
// proven free of solutions; infeasible ("outer") regions are not reported.
//
// Budget expiry does not abandon the invariant: pending queue entries are
// flushed into the boundary layer wholesale and the paving is marked
// Incomplete.
//
// The boundary layer hugs the constraint's frontier at resolution tol, so
// its size grows with the frontier's measure: O((D/tol)^{n−1}) boxes for an
// n-dimensional box of width D with a smooth frontier. Each classification
// step costs two contractions.
package pave
