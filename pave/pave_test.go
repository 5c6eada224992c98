package pave_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enclose/expr"
	"github.com/katalvlaran/enclose/interval"
	"github.com/katalvlaran/enclose/pave"
	"github.com/katalvlaran/enclose/separator"
)

// discSep returns a separator for the unit disc x² + y² ≤ 1.
func discSep(t *testing.T) *separator.Separator {
	t.Helper()
	s, err := separator.FromRel(expr.LessEq(
		expr.Add(expr.Sqr(expr.Var(0)), expr.Sqr(expr.Var(1))),
		expr.Const(1),
	), 2)
	require.NoError(t, err)

	return s
}

func TestPave_Validation(t *testing.T) {
	s := discSep(t)
	box := interval.Uniform(2, interval.MustNew(-2, 2))

	_, err := pave.Pave(s, box, 0)
	assert.ErrorIs(t, err, pave.ErrBadTolerance)

	_, err = pave.Pave(nil, box, 0.5)
	assert.ErrorIs(t, err, pave.ErrNilSeparator)

	_, err = pave.Pave(s, interval.Box{}, 0.5)
	assert.ErrorIs(t, err, pave.ErrEmptyBox)

	_, err = pave.Pave(s, interval.NewBox(interval.MustNew(0, 1)), 0.5)
	assert.ErrorIs(t, err, pave.ErrDimensionMismatch)

	_, err = pave.Pave(s, box, 0.5, pave.WithMaxSteps(0))
	assert.ErrorIs(t, err, pave.ErrBadBudget)
}

// TestPave_Disc checks the covering invariant and the inner certificate on
// the unit disc.
func TestPave_Disc(t *testing.T) {
	p, err := pave.Pave(discSep(t), interval.Uniform(2, interval.MustNew(-2, 2)), 0.25)
	require.NoError(t, err)
	require.False(t, p.Incomplete)
	require.NotEmpty(t, p.Inner)
	require.NotEmpty(t, p.Boundary)

	// Inner boxes lie wholly inside the disc: their farthest corner does.
	for _, b := range p.Inner {
		cx := math.Max(math.Abs(b[0].Lo()), math.Abs(b[0].Hi()))
		cy := math.Max(math.Abs(b[1].Lo()), math.Abs(b[1].Hi()))
		assert.LessOrEqual(t, cx*cx+cy*cy, 1+1e-12, "inner box %v leaves the disc", b)
	}

	// Boundary boxes respect the resolution.
	for _, b := range p.Boundary {
		assert.LessOrEqual(t, b.Diam(), 0.25)
	}

	// Every satisfying point is covered, frontier included.
	assert.True(t, p.Covers([]float64{0, 0}))
	assert.True(t, p.Covers([]float64{0.7, 0}))
	assert.True(t, p.Covers([]float64{1, 0}))
	assert.True(t, p.Covers([]float64{0, -1}))

	// Regions proven infeasible are dropped entirely.
	assert.False(t, p.Covers([]float64{1.8, 1.8}))
}

// TestPave_Annulus exercises the two-branch negation of a Between
// constraint: 1 ≤ x² + y² ≤ 4.
func TestPave_Annulus(t *testing.T) {
	s, err := separator.FromRel(expr.Between(
		expr.Add(expr.Sqr(expr.Var(0)), expr.Sqr(expr.Var(1))), 1, 4,
	), 2)
	require.NoError(t, err)

	p, err := pave.Pave(s, interval.Uniform(2, interval.MustNew(-3, 3)), 0.3)
	require.NoError(t, err)
	require.False(t, p.Incomplete)
	require.NotEmpty(t, p.Inner)

	assert.True(t, p.Covers([]float64{1.5, 0}))
	assert.True(t, p.Covers([]float64{0, -2}))
	assert.False(t, p.Covers([]float64{0, 0}), "the hole is proven infeasible")
	assert.False(t, p.Covers([]float64{2.9, 2.9}))
}

// TestPave_CertainRoot: a box the separator certifies at once becomes the
// single inner box, with no boundary layer.
func TestPave_CertainRoot(t *testing.T) {
	s, err := separator.FromRel(expr.Between(expr.Var(0), -10, 10), 1)
	require.NoError(t, err)

	box := interval.NewBox(interval.MustNew(0, 1))
	p, err := pave.Pave(s, box, 0.1)
	require.NoError(t, err)

	require.Len(t, p.Inner, 1)
	assert.True(t, p.Inner[0].Eq(box))
	assert.Empty(t, p.Boundary)
	assert.False(t, p.Incomplete)
}

// TestPave_Infeasible: a box wholly outside the solution set paves to
// nothing at all.
func TestPave_Infeasible(t *testing.T) {
	p, err := pave.Pave(discSep(t), interval.Uniform(2, interval.MustNew(5, 6)), 0.25)
	require.NoError(t, err)

	assert.Empty(t, p.Inner)
	assert.Empty(t, p.Boundary)
	assert.False(t, p.Incomplete)
	assert.False(t, p.Covers([]float64{5.5, 5.5}))
}

// TestPave_ContractionOnly: contraction alone can finish a paving. For the
// band −1 ≤ x ≤ 0 over [−3, 3] the feasible enclosure is exact, so its
// halves certify immediately and no boundary box remains.
func TestPave_ContractionOnly(t *testing.T) {
	s, err := separator.FromRel(expr.Between(expr.Var(0), -1, 0), 1)
	require.NoError(t, err)

	p, err := pave.Pave(s, interval.NewBox(interval.MustNew(-3, 3)), 0.1)
	require.NoError(t, err)
	require.NotEmpty(t, p.Inner)
	assert.Empty(t, p.Boundary)

	hull := interval.EmptyBox(1)
	for _, b := range p.Inner {
		hull = hull.Hull(b)
	}
	assert.True(t, hull.Eq(interval.NewBox(interval.MustNew(-1, 0))))
	assert.True(t, p.Covers([]float64{-1}))
	assert.True(t, p.Covers([]float64{0}))
	assert.False(t, p.Covers([]float64{0.5}))
}

// TestPave_Budget: expiry flushes pending boxes to the boundary so the
// covering invariant holds even for an Incomplete paving.
func TestPave_Budget(t *testing.T) {
	p, err := pave.Pave(discSep(t), interval.Uniform(2, interval.MustNew(-2, 2)), 0.01,
		pave.WithMaxSteps(3))
	require.NoError(t, err)

	assert.True(t, p.Incomplete)
	assert.True(t, p.Covers([]float64{0, 0}))
	assert.True(t, p.Covers([]float64{1, 0}))
}
