package linalg_test

import (
	"testing"

	"github.com/katalvlaran/polysolve/linalg"
	"github.com/stretchr/testify/require"
)

func TestReduceRows_FullRankIsUpperTriangular(t *testing.T) {
	t.Parallel()

	m, err := linalg.NewDenseFrom(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.NoError(t, err)

	r, err := linalg.ReduceRows(m, linalg.DefaultTolerance, true)
	require.NoError(t, err)
	require.Equal(t, 2, r.Rows())
	require.Equal(t, 3, r.Cols())
	require.InDelta(t, 0, r.At(1, 0), 1e-9)
}

func TestReduceRows_RejectsTooFewColumns(t *testing.T) {
	t.Parallel()

	m, err := linalg.NewDenseFrom(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})
	require.NoError(t, err)

	_, err = linalg.ReduceRows(m, linalg.DefaultTolerance, true)
	require.ErrorIs(t, err, linalg.ErrTooFewColumns)
}

func TestRowLinearDependencies_DetectsDependentRow(t *testing.T) {
	t.Parallel()

	// Row 2 = Row 0 + Row 1, so rank is 2 among 3 rows.
	m, err := linalg.NewDenseFrom(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})
	require.NoError(t, err)

	independent, dependent, _, err := linalg.RowLinearDependencies(m, linalg.DefaultTolerance)
	require.NoError(t, err)
	require.Len(t, independent, 2)
	require.Len(t, dependent, 1)
}

func TestTriangularSolve_ProducesIdentityInPivotColumns(t *testing.T) {
	t.Parallel()

	m, err := linalg.NewDenseFrom(2, 3, []float64{
		2, 4, 6,
		0, 1, 1,
	})
	require.NoError(t, err)

	r, err := linalg.TriangularSolve(m, linalg.DefaultTolerance)
	require.NoError(t, err)
	require.InDelta(t, 1, r.At(0, 0), 1e-9)
	require.InDelta(t, 0, r.At(1, 0), 1e-9)
	require.InDelta(t, 1, r.At(1, 1), 1e-9)
}
