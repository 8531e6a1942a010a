package action_test

import (
	"testing"

	"github.com/katalvlaran/polysolve/action"
	"github.com/katalvlaran/polysolve/macaulay"
	"github.com/katalvlaran/polysolve/poly"
	"github.com/katalvlaran/polysolve/reduce"
	"github.com/stretchr/testify/require"
)

func TestMultiplier_UnivariateIdentityShape(t *testing.T) {
	t.Parallel()

	// p(x) = x^2 - 4x + 2.
	p, err := poly.New([]int{3}, []float64{2, -4, 1}, poly.Power)
	require.NoError(t, err)

	d := macaulay.FindDegree([]int{2}, 1)
	m, err := macaulay.Build([]*poly.Polynomial{p}, d)
	require.NoError(t, err)

	basis, err := reduce.Extract(m, 1e-9)
	require.NoError(t, err)

	mx, err := action.Multiplier(basis.VB, basis, poly.Power, 1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, len(basis.VB), mx.Rows())
	require.Equal(t, len(basis.VB), mx.Cols())
}

func TestMultiplier_RejectsInvalidSelector(t *testing.T) {
	t.Parallel()

	p, err := poly.New([]int{3}, []float64{2, -4, 1}, poly.Power)
	require.NoError(t, err)
	d := macaulay.FindDegree([]int{2}, 1)
	m, err := macaulay.Build([]*poly.Polynomial{p}, d)
	require.NoError(t, err)
	basis, err := reduce.Extract(m, 1e-9)
	require.NoError(t, err)

	_, err = action.Multiplier(basis.VB, basis, poly.Power, 1, 5, 0)
	require.ErrorIs(t, err, action.ErrInvalidSelector)
}
