package monomial_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/polysolve/monomial"
	"github.com/stretchr/testify/require"
)

func TestLess_GradedByDegreeFirst(t *testing.T) {
	t.Parallel()

	low, _ := monomial.New(1, 0)
	high, _ := monomial.New(0, 2)
	require.True(t, monomial.Less(low, high))
}

func TestLess_TieBreakLastCoordReversed(t *testing.T) {
	t.Parallel()

	// Same degree (2): (2,0) vs (0,2) vs (1,1). Smaller last-coord ranks
	// higher, so (2,0) > (1,1) > (0,2).
	a, _ := monomial.New(2, 0)
	b, _ := monomial.New(1, 1)
	c, _ := monomial.New(0, 2)

	require.True(t, monomial.Greater(a, b))
	require.True(t, monomial.Greater(b, c))
	require.True(t, monomial.Greater(a, c))
}

func TestLess_TotalOrder_Antisymmetric(t *testing.T) {
	t.Parallel()

	a, _ := monomial.New(1, 2)
	b, _ := monomial.New(2, 1)

	require.False(t, monomial.Less(a, a))
	if monomial.Less(a, b) {
		require.False(t, monomial.Less(b, a))
	}
}

func TestCombos_SortedDescendingGrevlex(t *testing.T) {
	t.Parallel()

	combos := monomial.Combos(2, 2)
	// degree <= 2 in 2 vars: (0,0),(1,0),(0,1),(2,0),(1,1),(0,2) = 6 monomials
	require.Len(t, combos, 6)
	require.True(t, sort.SliceIsSorted(combos, func(i, j int) bool {
		return monomial.Greater(combos[i], combos[j])
	}))
	// Highest-ranked degree-2 monomial in grevlex is (2,0).
	require.Equal(t, monomial.Monomial{2, 0}, combos[0])
	// Lowest-ranked is the origin (0,0).
	require.Equal(t, monomial.Monomial{0, 0}, combos[len(combos)-1])
}
