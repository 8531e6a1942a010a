package linalg

import (
	"fmt"
	"math"
)

// TriangularSolve reduces an upper-triangular (row-echelon) matrix to
// row-reduced echelon form: each row's pivot column is normalized to 1 and
// eliminated from every other row, leaving the [I | reduction] shape the
// Telen-Van Barel extraction needs to read off the reduction map. Rows with
// no entry above tol (the zeroed dependent rows ReduceRows produces) carry
// no pivot and are left as they are. Grounded on the original
// triangular_solve routine (back-substitution row by row from the last
// pivot to the first, reusing each pivot to clear the column above it).
func TriangularSolve(m *Dense, tol float64) (*Dense, error) {
	out := m.Clone()
	rows, cols := out.Rows(), out.Cols()

	pivotCol := make([]int, rows)
	for i := 0; i < rows; i++ {
		pc := -1
		for j := 0; j < cols; j++ {
			if math.Abs(out.At(i, j)) > tol {
				pc = j
				break
			}
		}
		pivotCol[i] = pc // -1 marks an all-zero row
	}

	for i := rows - 1; i >= 0; i-- {
		pc := pivotCol[i]
		if pc < 0 {
			continue
		}
		pv := out.At(i, pc)
		if math.Abs(pv) < tol {
			return nil, fmt.Errorf("TriangularSolve: pivot at row %d below tolerance: %w", i, ErrSingular)
		}
		for j := 0; j < cols; j++ {
			out.Set(i, j, out.At(i, j)/pv)
		}

		for k := 0; k < rows; k++ {
			if k == i {
				continue
			}
			factor := out.At(k, pc)
			if factor == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out.Add(k, j, -factor*out.At(i, j))
			}
		}
	}

	return out, nil
}
