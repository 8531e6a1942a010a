package linalg

import "fmt"

// ReduceRows performs rank-revealing recursive row reduction on m, grounded
// on the rrqr_reduce2 variant: the matrix is split into a square leading
// block and a trailing block, the leading block's row dependencies are
// found, and rows that are linearly dependent on the others are folded into
// a recursively reduced trailing remainder instead of being triangularized
// directly. The result has the same shape as m and is upper-triangular in
// its leading square block when m is full row rank throughout the
// recursion.
func ReduceRows(m *Dense, tol float64, clean bool) (*Dense, error) {
	out, err := reduceRowsRec(m, tol)
	if err != nil {
		return nil, fmt.Errorf("ReduceRows: %w", err)
	}
	if clean {
		out.CleanZeros(tol)
	}

	return out, nil
}

func reduceRowsRec(m *Dense, tol float64) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows <= 1 || cols == 0 {
		return m.Clone(), nil
	}
	if cols < rows {
		return nil, ErrTooFewColumns
	}

	height := rows
	a := m.SubCols(0, height)
	b := m.SubCols(height, cols)

	independent, dependent, q, err := RowLinearDependencies(a, tol)
	if err != nil {
		return nil, err
	}

	if len(dependent) == 0 {
		_, r := PlainQR(m)

		return r, nil
	}

	numMissing := len(dependent)
	qt := q.T()
	tail := qt.SubRows(rows-numMissing, rows) // numMissing x rows

	sub3, err := tail.Mul(b)
	if err != nil {
		return nil, err
	}
	reducedSub3, err := reduceRowsRec(sub3, tol)
	if err != nil {
		return nil, err
	}

	sub1 := m.SelectRows(independent)
	reducedSub1, err := reduceRowsRec(sub1, tol)
	if err != nil {
		return nil, err
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	out.SetBlock(0, 0, reducedSub1)
	out.SetBlock(len(independent), height, reducedSub3)

	return out, nil
}
