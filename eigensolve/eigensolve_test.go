package eigensolve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polysolve/action"
	"github.com/katalvlaran/polysolve/eigensolve"
	"github.com/katalvlaran/polysolve/macaulay"
	"github.com/katalvlaran/polysolve/poly"
	"github.com/katalvlaran/polysolve/reduce"
	"github.com/stretchr/testify/require"
)

// TestRoots_UnivariateQuadratic solves x^2 - 4x + 2 = 0, expecting roots
// 2 ± sqrt(2).
func TestRoots_UnivariateQuadratic(t *testing.T) {
	t.Parallel()

	p, err := poly.New([]int{3}, []float64{2, -4, 1}, poly.Power)
	require.NoError(t, err)

	d := macaulay.FindDegree([]int{2}, 1)
	m, err := macaulay.Build([]*poly.Polynomial{p}, d)
	require.NoError(t, err)

	basis, err := reduce.Extract(m, 1e-9)
	require.NoError(t, err)

	mx, err := action.Multiplier(basis.VB, basis, poly.Power, 1, 1, 0)
	require.NoError(t, err)

	roots, err := eigensolve.Roots(mx, basis.VB, basis, 1)
	require.NoError(t, err)
	require.Len(t, roots, 2)

	want := []float64{2 + math.Sqrt2, 2 - math.Sqrt2}
	for _, w := range want {
		found := false
		for _, r := range roots {
			if math.Abs(real(r[0])-w) < 1e-6 && math.Abs(imag(r[0])) < 1e-6 {
				found = true
			}
		}
		require.True(t, found, "expected root %v among %v", w, roots)
	}
}
