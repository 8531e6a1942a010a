package linalg

import (
	"fmt"
	"math"
)

// SolveLinear solves A*X = B for square A via Gaussian elimination with
// partial pivoting, returning ErrSingular if no pivot above tol is found in
// some column — the fallback the division-matrix assembler uses to invert
// the x_k multiplication matrix.
func SolveLinear(a, b *Dense, tol float64) (*Dense, error) {
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("SolveLinear: %w", ErrNonSquare)
	}
	if a.Rows() != b.Rows() {
		return nil, fmt.Errorf("SolveLinear: %w", ErrDimensionMismatch)
	}

	n := a.Rows()
	work := a.Clone()
	rhs := b.Clone()

	for col := 0; col < n; col++ {
		best, bestVal := col, math.Abs(work.At(col, col))
		for row := col + 1; row < n; row++ {
			v := math.Abs(work.At(row, col))
			if v > bestVal {
				best, bestVal = row, v
			}
		}
		if bestVal <= tol {
			return nil, fmt.Errorf("SolveLinear: column %d: %w", col, ErrSingular)
		}
		if best != col {
			swapRows(work, col, best)
			swapRows(rhs, col, best)
		}

		pivot := work.At(col, col)
		for row := col + 1; row < n; row++ {
			factor := work.At(row, col) / pivot
			if factor == 0 {
				continue
			}
			for j := col; j < n; j++ {
				work.Add(row, j, -factor*work.At(col, j))
			}
			for j := 0; j < rhs.Cols(); j++ {
				rhs.Add(row, j, -factor*rhs.At(col, j))
			}
		}
	}

	for row := n - 1; row >= 0; row-- {
		pivot := work.At(row, row)
		for j := 0; j < rhs.Cols(); j++ {
			sum := rhs.At(row, j)
			for k := row + 1; k < n; k++ {
				sum -= work.At(row, k) * rhs.At(k, j)
			}
			rhs.Set(row, j, sum/pivot)
		}
	}

	return rhs, nil
}

func swapRows(m *Dense, a, b int) {
	if a == b {
		return
	}
	for j := 0; j < m.Cols(); j++ {
		va, vb := m.At(a, j), m.At(b, j)
		m.Set(a, j, vb)
		m.Set(b, j, va)
	}
}
