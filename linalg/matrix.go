package linalg

import (
	"fmt"
	"math"
)

// Dense is a row-major real matrix, the working representation for every
// primitive in this package: the Macaulay matrix, its reductions, and the
// action-matrix assembly all pass through Dense.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r×c Dense matrix initialized to zero.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom wraps an existing row-major flat slice as an r×c Dense.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", rows, cols, ErrDimensionMismatch)
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Dense{r: rows, c: cols, data: cp}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	m, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

func (m *Dense) Rows() int { return m.r }
func (m *Dense) Cols() int { return m.c }

func (m *Dense) At(i, j int) float64 { return m.data[i*m.c+j] }
func (m *Dense) Set(i, j int, v float64) { m.data[i*m.c+j] = v }
func (m *Dense) Add(i, j int, v float64) { m.data[i*m.c+j] += v }

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out, _ := NewDenseFrom(m.r, m.c, m.data)

	return out
}

// Col returns a copy of column j as a length-r slice.
func (m *Dense) Col(j int) []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// SwapCols exchanges columns a and b in place.
func (m *Dense) SwapCols(a, b int) {
	if a == b {
		return
	}
	for i := 0; i < m.r; i++ {
		ia, ib := i*m.c+a, i*m.c+b
		m.data[ia], m.data[ib] = m.data[ib], m.data[ia]
	}
}

// T returns the transpose of m as a new matrix.
func (m *Dense) T() *Dense {
	out, _ := NewDense(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}

	return out
}

// Mul computes m × other.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m.c != other.r {
		return nil, fmt.Errorf("Mul: %dx%d * %dx%d: %w", m.r, m.c, other.r, other.c, ErrDimensionMismatch)
	}
	out, _ := NewDense(m.r, other.c)
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			v := m.At(i, k)
			if v == 0 {
				continue
			}
			for j := 0; j < other.c; j++ {
				out.Add(i, j, v*other.At(k, j))
			}
		}
	}

	return out, nil
}

// SubCols returns the column slice [lo,hi) as a new r×(hi-lo) matrix.
func (m *Dense) SubCols(lo, hi int) *Dense {
	out, _ := NewDense(m.r, hi-lo)
	for i := 0; i < m.r; i++ {
		for j := lo; j < hi; j++ {
			out.Set(i, j-lo, m.At(i, j))
		}
	}

	return out
}

// SubRows returns the row slice [lo,hi) as a new (hi-lo)×c matrix.
func (m *Dense) SubRows(lo, hi int) *Dense {
	out, _ := NewDense(hi-lo, m.c)
	for i := lo; i < hi; i++ {
		for j := 0; j < m.c; j++ {
			out.Set(i-lo, j, m.At(i, j))
		}
	}

	return out
}

// SelectRows returns a new matrix containing exactly the given rows, in order.
func (m *Dense) SelectRows(rows []int) *Dense {
	out, _ := NewDense(len(rows), m.c)
	for oi, i := range rows {
		for j := 0; j < m.c; j++ {
			out.Set(oi, j, m.At(i, j))
		}
	}

	return out
}

// SetBlock copies src into m starting at (rowOff,colOff).
func (m *Dense) SetBlock(rowOff, colOff int, src *Dense) {
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			m.Set(rowOff+i, colOff+j, src.At(i, j))
		}
	}
}

// CleanZeros zeros every entry whose magnitude is below tol — the
// clean_zeros_from_matrix step applied after major reduction stages.
func (m *Dense) CleanZeros(tol float64) {
	for i := range m.data {
		if math.Abs(m.data[i]) < tol {
			m.data[i] = 0
		}
	}
}
