// Package separator splits a box into the part that can satisfy a
// relational constraint and the part that can violate it.
//
// A Separator pairs two contractors over the same constraint:
//
//   - the inner contractor narrows a box toward the points satisfying the
//     relation; what it removes provably violates the relation;
//   - the outer contractor narrows toward the points satisfying the
//     negation; what it removes provably satisfies the relation.
//
// Apply runs both on a copy of the input box:
//
//	in, out, err := sep.Apply(b)
//
//	in  — encloses every satisfying point of b;  in.IsEmpty() ⇒ b has none.
//	out — encloses every violating point of b; out.IsEmpty() ⇒ b is
//	      entirely feasible.
//
// Both contractions are sound, never optimal: a non-empty result proves
// nothing by itself, it only bounds where the respective points can live.
// Certainty comes from the forward tests CertainIn and CertainOut, which
// check the constraint's natural enclosure over the whole box.
//
// Boundary convention: relations and their negations are both closed, so a
// point satisfying the constraint with equality belongs to both sides.
// Neither contractor may peel such a point off; pavers built on top place
// those regions in their boundary layer.
//
// Contraction cost is O(rounds · |f|) per allowed interval of the relation,
// where |f| is the expression size; rounds is capped by the fixed-point
// limit in package expr.
package separator
