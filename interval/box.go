package interval

import "strings"

// Box is an n-dimensional axis-aligned product of Intervals
// (a hyperrectangle). Like Interval, a Box is an immutable value:
// operations return fresh slices and never mutate their receiver.
type Box []Interval

// NewBox builds a box from its coordinate intervals.
func NewBox(coords ...Interval) Box {
	b := make(Box, len(coords))
	copy(b, coords)

	return b
}

// Uniform builds a dim-dimensional box with every coordinate equal to iv.
func Uniform(dim int, iv Interval) Box {
	b := make(Box, dim)
	for i := range b {
		b[i] = iv
	}

	return b
}

// PointBox builds the degenerate box {p}.
func PointBox(p []float64) Box {
	b := make(Box, len(p))
	for i, v := range p {
		b[i] = Point(v)
	}

	return b
}

// EmptyBox returns a dim-dimensional box whose every coordinate is Empty.
func EmptyBox(dim int) Box { return Uniform(dim, Empty()) }

// Dim returns the number of coordinates.
func (b Box) Dim() int { return len(b) }

// IsEmpty reports whether b represents the empty set: zero dimensions or
// any empty coordinate.
func (b Box) IsEmpty() bool {
	if len(b) == 0 {
		return true
	}
	for _, iv := range b {
		if iv.IsEmpty() {
			return true
		}
	}

	return false
}

// Diam returns the largest coordinate width (the box diameter under the
// max-norm). Empty boxes have zero diameter.
func (b Box) Diam() float64 {
	if b.IsEmpty() {
		return 0
	}
	var d float64
	for _, iv := range b {
		if w := iv.Diam(); w > d {
			d = w
		}
	}

	return d
}

// WidestDim returns the index of the widest coordinate; ties resolve to the
// lowest index. A box must be non-empty for the result to be meaningful.
func (b Box) WidestDim() int {
	best, bestW := 0, -1.0
	for i, iv := range b {
		if w := iv.Diam(); w > bestW {
			best, bestW = i, w
		}
	}

	return best
}

// Mid returns the coordinate-wise representative point (see Interval.Mid).
func (b Box) Mid() []float64 {
	p := make([]float64, len(b))
	for i, iv := range b {
		p[i] = iv.Mid()
	}

	return p
}

// Contains reports whether the point p lies in b.
// Points of mismatched dimension are never contained.
func (b Box) Contains(p []float64) bool {
	if len(p) != len(b) {
		return false
	}
	for i, iv := range b {
		if !iv.Contains(p[i]) {
			return false
		}
	}

	return true
}

// Eq reports coordinate-wise exact equality of two boxes.
func (b Box) Eq(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Eq(o[i]) {
			return false
		}
	}

	return true
}

// Subset reports whether b is contained in o coordinate-wise. The empty
// box is a subset of every box of the same dimension.
func (b Box) Subset(o Box) bool {
	if len(b) != len(o) {
		return false
	}
	if b.IsEmpty() {
		return true
	}
	for i := range b {
		if !b[i].Subset(o[i]) {
			return false
		}
	}

	return true
}

// Intersect returns the coordinate-wise intersection. Dimension mismatch
// yields the empty box of b's dimension.
func (b Box) Intersect(o Box) Box {
	if len(b) != len(o) {
		return EmptyBox(len(b))
	}
	out := make(Box, len(b))
	for i := range b {
		out[i] = b[i].Intersect(o[i])
	}

	return out
}

// Hull returns the coordinate-wise hull of b and o. Empty boxes are
// identity elements; dimension mismatch yields the empty box.
func (b Box) Hull(o Box) Box {
	if b.IsEmpty() {
		return o.Clone()
	}
	if o.IsEmpty() {
		return b.Clone()
	}
	if len(b) != len(o) {
		return EmptyBox(len(b))
	}
	out := make(Box, len(b))
	for i := range b {
		out[i] = b[i].Hull(o[i])
	}

	return out
}

// Clone returns an independent copy of b.
func (b Box) Clone() Box {
	out := make(Box, len(b))
	copy(out, b)

	return out
}

// With returns a copy of b whose coordinate i is replaced by iv.
func (b Box) With(i int, iv Interval) Box {
	out := b.Clone()
	out[i] = iv

	return out
}

// String renders the box as "coord₀ × coord₁ × …".
func (b Box) String() string {
	parts := make([]string, len(b))
	for i, iv := range b {
		parts[i] = iv.String()
	}

	return strings.Join(parts, " × ")
}
