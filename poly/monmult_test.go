package poly_test

import (
	"testing"

	"github.com/katalvlaran/polysolve/monomial"
	"github.com/katalvlaran/polysolve/poly"
	"github.com/stretchr/testify/require"
)

func TestMonMult_PowerShift(t *testing.T) {
	t.Parallel()

	// p(x,y) = x, shape [2,1] (x-degree up to 1, y-degree 0).
	p, err := poly.New([]int{2, 1}, []float64{0, 1}, poly.Power)
	require.NoError(t, err)

	alpha, err := monomial.New(0, 2) // multiply by y^2
	require.NoError(t, err)

	q, err := p.MonMult(alpha)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, q.Shape())

	v, err := q.At([]int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestMonMult_Composition checks mon_mult(α) ∘ mon_mult(β) = mon_mult(α+β)
// up to basis-specific identities (§8), for both Power and Chebyshev.
func TestMonMult_Composition(t *testing.T) {
	t.Parallel()

	for _, basis := range []poly.Basis{poly.Power, poly.Chebyshev} {
		basis := basis
		p, err := poly.New([]int{2, 2}, []float64{1, 2, 3, 4}, basis)
		require.NoError(t, err)

		alpha, err := monomial.New(1, 0)
		require.NoError(t, err)
		beta, err := monomial.New(0, 2)
		require.NoError(t, err)
		sum, err := monomial.Add(alpha, beta)
		require.NoError(t, err)

		viaSteps, err := p.MonMult(alpha)
		require.NoError(t, err)
		viaSteps, err = viaSteps.MonMult(beta)
		require.NoError(t, err)

		viaSum, err := p.MonMult(sum)
		require.NoError(t, err)

		z := []complex128{complex(0.37, 0.11), complex(-0.22, 0.05)}
		v1, err := viaSteps.Evaluate(z)
		require.NoError(t, err)
		v2, err := viaSum.Evaluate(z)
		require.NoError(t, err)
		require.InDelta(t, real(v2), real(v1), 1e-9)
		require.InDelta(t, imag(v2), imag(v1), 1e-9)
	}
}

func TestMonMult_PreservesBasis(t *testing.T) {
	t.Parallel()

	p, err := poly.New([]int{2}, []float64{1, 2}, poly.Chebyshev)
	require.NoError(t, err)
	alpha, err := monomial.New(1)
	require.NoError(t, err)
	q, err := p.MonMult(alpha)
	require.NoError(t, err)
	require.Equal(t, poly.Chebyshev, q.TheBasis())
}
