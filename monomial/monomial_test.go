package monomial_test

import (
	"testing"

	"github.com/katalvlaran/polysolve/monomial"
	"github.com/stretchr/testify/require"
)

func TestDegree(t *testing.T) {
	t.Parallel()

	m, err := monomial.New(2, 0, 3)
	require.NoError(t, err)
	require.Equal(t, 5, m.Degree())
}

func TestNew_RejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := monomial.New(1, -1)
	require.ErrorIs(t, err, monomial.ErrNegativeExponent)
}

func TestDivides(t *testing.T) {
	t.Parallel()

	a, err := monomial.New(1, 0)
	require.NoError(t, err)
	b, err := monomial.New(2, 1)
	require.NoError(t, err)
	require.True(t, monomial.Divides(a, b))
	require.False(t, monomial.Divides(b, a))
}

func TestVars(t *testing.T) {
	t.Parallel()

	vs := monomial.Vars(3)
	require.Len(t, vs, 3)
	require.Equal(t, monomial.Monomial{1, 0, 0}, vs[0])
	require.Equal(t, monomial.Monomial{0, 1, 0}, vs[1])
	require.Equal(t, monomial.Monomial{0, 0, 1}, vs[2])
}

func TestKey_DistinguishesMonomials(t *testing.T) {
	t.Parallel()

	a, _ := monomial.New(1, 2)
	b, _ := monomial.New(2, 1)
	require.NotEqual(t, a.Key(), b.Key())

	c, _ := monomial.New(1, 2)
	require.Equal(t, a.Key(), c.Key())
}
