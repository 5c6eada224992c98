package separator

import (
	"fmt"

	"github.com/katalvlaran/enclose/expr"
	"github.com/katalvlaran/enclose/interval"
)

// Contractor narrows a box toward some point set without ever discarding a
// point of that set. It must be pure and must not mutate its argument.
type Contractor func(interval.Box) interval.Box

// CertainTest soundly reports whether every point of the box belongs to
// some point set; false means "unknown", not "no".
type CertainTest func(interval.Box) bool

// Separator pairs an inner and an outer contractor for one constraint.
// Build one with FromRel or FromFunc.
type Separator struct {
	dim     int
	in, out Contractor
	certIn  CertainTest
	certOut CertainTest
}

// FromRel builds a separator of the given dimension from a relational
// constraint: the inner side contracts with respect to r, the outer side
// with respect to r.Negate(). The dimension may exceed the relation's
// arity; extra coordinates pass through contraction untouched.
func FromRel(r expr.Rel, dim int) (*Separator, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, dim)
	}
	if r.Arity() > dim {
		return nil, fmt.Errorf("%w: arity %d, dimension %d", ErrArityMismatch, r.Arity(), dim)
	}
	neg := r.Negate()

	return &Separator{
		dim:     dim,
		in:      r.Contract,
		out:     neg.Contract,
		certIn:  r.Certain,
		certOut: neg.Certain,
	}, nil
}

// FromFunc builds a separator from raw contraction pairs, for constraints
// that have no expression-tree form. Certainty tests are optional; nil
// tests make CertainIn and CertainOut always answer false, leaving
// classification to the emptiness of the contracted sides.
func FromFunc(dim int, in, out Contractor, certIn, certOut CertainTest) (*Separator, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, dim)
	}
	if in == nil || out == nil {
		return nil, ErrNilContractor
	}
	if certIn == nil {
		certIn = never
	}
	if certOut == nil {
		certOut = never
	}

	return &Separator{dim: dim, in: in, out: out, certIn: certIn, certOut: certOut}, nil
}

func never(interval.Box) bool { return false }

// Dim returns the box dimension the separator operates on.
func (s *Separator) Dim() int { return s.dim }

// Apply contracts b from both sides.
//
// in encloses every point of b satisfying the constraint; out encloses
// every point violating it. An empty b yields two empty boxes. The input
// box is never mutated.
func (s *Separator) Apply(b interval.Box) (in, out interval.Box, err error) {
	if b.Dim() != s.dim {
		return nil, nil, fmt.Errorf("%w: separator %d, box %d", ErrDimensionMismatch, s.dim, b.Dim())
	}
	if b.IsEmpty() {
		return interval.EmptyBox(s.dim), interval.EmptyBox(s.dim), nil
	}

	return s.in(b.Clone()), s.out(b.Clone()), nil
}

// CertainIn reports whether every point of b provably satisfies the
// constraint.
func (s *Separator) CertainIn(b interval.Box) bool {
	return b.Dim() == s.dim && !b.IsEmpty() && s.certIn(b)
}

// CertainOut reports whether every point of b provably violates the
// constraint, up to the shared closed boundary.
func (s *Separator) CertainOut(b interval.Box) bool {
	return b.Dim() == s.dim && !b.IsEmpty() && s.certOut(b)
}
