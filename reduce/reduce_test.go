package reduce_test

import (
	"testing"

	"github.com/katalvlaran/polysolve/macaulay"
	"github.com/katalvlaran/polysolve/poly"
	"github.com/katalvlaran/polysolve/reduce"
	"github.com/stretchr/testify/require"
)

func TestExtract_UnivariateQuadratic(t *testing.T) {
	t.Parallel()

	// p(x) = x^2 - 4x + 2, degree 2, n = 1.
	p, err := poly.New([]int{3}, []float64{2, -4, 1}, poly.Power)
	require.NoError(t, err)

	d := macaulay.FindDegree([]int{2}, 1)
	m, err := macaulay.Build([]*poly.Polynomial{p}, d)
	require.NoError(t, err)

	basis, err := reduce.Extract(m, 1e-9)
	require.NoError(t, err)
	require.NotEmpty(t, basis.VB)
	require.NotEmpty(t, basis.R)
}

func TestExtract_EmptyVarietyForConstantOne(t *testing.T) {
	t.Parallel()

	p, err := poly.New([]int{1}, []float64{1}, poly.Power)
	require.NoError(t, err)

	m, err := macaulay.Build([]*poly.Polynomial{p}, 0)
	require.NoError(t, err)

	_, err = reduce.Extract(m, 1e-9)
	require.ErrorIs(t, err, reduce.ErrEmptyVariety)
}
