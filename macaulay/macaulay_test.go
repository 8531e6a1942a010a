package macaulay_test

import (
	"testing"

	"github.com/katalvlaran/polysolve/macaulay"
	"github.com/katalvlaran/polysolve/poly"
	"github.com/stretchr/testify/require"
)

func TestFindDegree_PaperExample(t *testing.T) {
	t.Parallel()

	// Two degree-2 generators in 2 variables: sum(top 2 of [2,2]) - (2-1) = 3.
	d := macaulay.FindDegree([]int{2, 2}, 2)
	require.Equal(t, 3, d)
}

func TestFindDegree_Univariate(t *testing.T) {
	t.Parallel()

	// One degree-2 generator in 1 variable: sum(top 1 of [2]) - (1-1) = 2,
	// equal to the maxDeg clamp.
	d := macaulay.FindDegree([]int{2}, 1)
	require.Equal(t, 2, d)
}

func TestFindDegree_ThreeQuartics(t *testing.T) {
	t.Parallel()

	// Three degree-4 generators in 3 variables: sum(top 3 of [4,4,4]) -
	// (3-1) = 10.
	d := macaulay.FindDegree([]int{4, 4, 4}, 3)
	require.Equal(t, 10, d)
}

func TestBuild_ColumnsCoverTargetDegree(t *testing.T) {
	t.Parallel()

	p1, err := poly.New2D([][]float64{
		{1, 0, 1}, // 1 + y^2 (x^0 y^0, x^0 y^1, x^0 y^2)
		{-4, 3},   // -4x + 3xy
	}, poly.Power)
	require.NoError(t, err)

	p2, err := poly.New([]int{2, 2}, []float64{0, 1, 1, 0}, poly.Power)
	require.NoError(t, err)

	d := macaulay.FindDegree([]int{p1.Degree(), p2.Degree()}, p1.Dim())
	m, err := macaulay.Build([]*poly.Polynomial{p1, p2}, d)
	require.NoError(t, err)
	require.NotEmpty(t, m.Columns)
	require.Len(t, m.Cuts, 2)
	require.Equal(t, m.M.Rows(), m.Cuts[len(m.Cuts)-1])
	require.Equal(t, len(m.Columns), m.M.Cols())
}

func TestBuild_RejectsMixedBasis(t *testing.T) {
	t.Parallel()

	p1, err := poly.New([]int{2}, []float64{1, 1}, poly.Power)
	require.NoError(t, err)
	p2, err := poly.New([]int{2}, []float64{1, 1}, poly.Chebyshev)
	require.NoError(t, err)

	_, err = macaulay.Build([]*poly.Polynomial{p1, p2}, 2)
	require.ErrorIs(t, err, macaulay.ErrMixedBasis)
}

func TestBuild_RejectsEmptySystem(t *testing.T) {
	t.Parallel()

	_, err := macaulay.Build(nil, 2)
	require.ErrorIs(t, err, macaulay.ErrEmptySystem)
}
