package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enclose/interval"
)

// TestBox_Basics covers dimension, diameter, midpoint and membership.
func TestBox_Basics(t *testing.T) {
	b := interval.NewBox(interval.MustNew(0, 1), interval.MustNew(-2, 2))
	assert.Equal(t, 2, b.Dim())
	assert.Equal(t, 4.0, b.Diam(), "diameter is the widest coordinate")
	assert.Equal(t, 1, b.WidestDim())
	assert.Equal(t, []float64{0.5, 0.0}, b.Mid())
	assert.True(t, b.Contains([]float64{0, 2}), "boundary points are inside (closed boxes)")
	assert.False(t, b.Contains([]float64{0, 2.5}))
	assert.False(t, b.Contains([]float64{0}), "dimension mismatch is never contained")
}

// TestBox_EmptyPropagation: one empty coordinate empties the whole box.
func TestBox_EmptyPropagation(t *testing.T) {
	b := interval.NewBox(interval.MustNew(0, 1), interval.Empty())
	assert.True(t, b.IsEmpty())
	assert.True(t, interval.Box(nil).IsEmpty(), "zero-dimensional box is empty")
	assert.False(t, interval.EmptyBox(3).Contains([]float64{0, 0, 0}))
}

// TestBox_SetOps checks intersection and hull coordinate-wise semantics.
func TestBox_SetOps(t *testing.T) {
	a := interval.NewBox(interval.MustNew(0, 2), interval.MustNew(0, 2))
	b := interval.NewBox(interval.MustNew(1, 3), interval.MustNew(-1, 1))

	m := a.Intersect(b)
	assert.True(t, m.Eq(interval.NewBox(interval.MustNew(1, 2), interval.MustNew(0, 1))))

	h := a.Hull(b)
	assert.True(t, h.Eq(interval.NewBox(interval.MustNew(0, 3), interval.MustNew(-1, 2))))

	disjoint := interval.NewBox(interval.MustNew(5, 6), interval.MustNew(5, 6))
	assert.True(t, a.Intersect(disjoint).IsEmpty())
	assert.True(t, a.Hull(interval.EmptyBox(2)).Eq(a), "empty box is the hull identity")

	assert.True(t, m.Subset(a))
	assert.True(t, m.Subset(b))
	assert.False(t, a.Subset(b))
	assert.False(t, a.Subset(interval.NewBox(interval.MustNew(0, 2))), "dimension mismatch")
	assert.True(t, interval.EmptyBox(2).Subset(a))
}

// TestBisect_WidestDimension: the split cuts the widest dimension at its
// midpoint, with ties resolved to the lowest index.
func TestBisect_WidestDimension(t *testing.T) {
	b := interval.NewBox(interval.MustNew(0, 1), interval.MustNew(0, 4))
	l, r, ok := interval.Bisect(b)
	require.True(t, ok)
	assert.True(t, l.Eq(interval.NewBox(interval.MustNew(0, 1), interval.MustNew(0, 2))))
	assert.True(t, r.Eq(interval.NewBox(interval.MustNew(0, 1), interval.MustNew(2, 4))))

	tie := interval.Uniform(3, interval.MustNew(0, 2))
	l, _, ok = interval.Bisect(tie)
	require.True(t, ok)
	assert.Equal(t, 1.0, l[0].Hi(), "tie broken toward dimension 0")
	assert.Equal(t, 2.0, l[1].Hi(), "other dimensions untouched")
}

// TestBisect_InfiniteBox: unbounded boxes split at the geometric Mid point,
// so repeated bisection isolates any finite region.
func TestBisect_InfiniteBox(t *testing.T) {
	b := interval.NewBox(interval.Entire())
	l, r, ok := interval.Bisect(b)
	require.True(t, ok)
	assert.Equal(t, 0.0, l[0].Hi())
	assert.Equal(t, 0.0, r[0].Lo())
	assert.True(t, math.IsInf(l[0].Lo(), -1))
	assert.True(t, math.IsInf(r[0].Hi(), 1))
}

// TestBisect_Unsplittable: a box of one-ulp coordinates is a terminal leaf.
func TestBisect_Unsplittable(t *testing.T) {
	tiny := interval.MustNew(1, math.Nextafter(1, 2))
	b := interval.NewBox(tiny, interval.Point(7))
	same, right, ok := interval.Bisect(b)
	assert.False(t, ok, "no dimension has an interior midpoint")
	assert.True(t, same.Eq(b), "the box is returned unchanged")
	assert.Nil(t, right)
}

// TestBox_ValueSemantics: With and Clone never alias the receiver.
func TestBox_ValueSemantics(t *testing.T) {
	b := interval.Uniform(2, interval.MustNew(0, 1))
	c := b.With(0, interval.Point(9))
	assert.Equal(t, 0.0, b[0].Lo(), "receiver untouched by With")
	assert.Equal(t, 9.0, c[0].Lo())

	cl := b.Clone()
	cl[1] = interval.Point(5)
	assert.Equal(t, 1.0, b[1].Hi(), "receiver untouched through Clone")
}
