package linalg_test

import (
	"testing"

	"github.com/katalvlaran/polysolve/linalg"
	"github.com/stretchr/testify/require"
)

func reconstruct(t *testing.T, q, r *linalg.Dense) *linalg.Dense {
	t.Helper()
	out, err := q.Mul(r)
	require.NoError(t, err)

	return out
}

func TestPlainQR_Reconstructs(t *testing.T) {
	t.Parallel()

	a, err := linalg.NewDenseFrom(3, 2, []float64{
		1, 2,
		3, 4,
		5, 7,
	})
	require.NoError(t, err)

	q, r := linalg.PlainQR(a)
	got := reconstruct(t, q, r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, a.At(i, j), got.At(i, j), 1e-9)
		}
	}
}

func TestColumnPivotedQR_ReconstructsWithPermutation(t *testing.T) {
	t.Parallel()

	a, err := linalg.NewDenseFrom(3, 3, []float64{
		0, 1, 2,
		0, 3, 4,
		0, 5, 7,
	})
	require.NoError(t, err)

	q, r, perm := linalg.ColumnPivotedQR(a)
	got := reconstruct(t, q, r)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, a.At(i, perm[j]), got.At(i, j), 1e-9)
		}
	}
	// The zero column must not be chosen as an early pivot since its norm
	// is smallest throughout.
	require.NotEqual(t, 0, perm[0])
}

func TestRank_CountsAboveTolerance(t *testing.T) {
	t.Parallel()

	a, err := linalg.NewDenseFrom(2, 2, []float64{
		1, 0,
		0, 1e-15,
	})
	require.NoError(t, err)

	_, r := linalg.PlainQR(a)
	require.Equal(t, 1, linalg.Rank(r, linalg.DefaultTolerance))
}
