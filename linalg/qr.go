package linalg

import "math"

// householderQR runs Stage 1 of the Businger-Golub column-pivoted QR: it
// reduces A to upper-triangular form in place via Householder reflections,
// optionally choosing the pivot column at each step by maximum remaining
// column norm (pivot=true), and accumulates the left-multiply product of
// every reflector into QL. Since each reflector is applied as
// QL_{k+1} = H_k * QL_k and R_{k+1} = H_k * R_k, the accumulated QL ends up
// equal to H_last*...*H_1, i.e. Qᵀ of the standard A = Q*R factorization —
// callers must transpose QL before handing Q back to a caller.
func householderQR(a *Dense, pivot bool) (ql, r *Dense, perm []int) {
	r = a.Clone()
	m, n := r.Rows(), r.Cols()
	ql = Identity(m)

	perm = make([]int, n)
	for j := range perm {
		perm[j] = j
	}

	steps := m
	if n < steps {
		steps = n
	}

	for k := 0; k < steps; k++ {
		if pivot {
			best, bestNorm := k, -1.0
			for j := k; j < n; j++ {
				norm := 0.0
				for i := k; i < m; i++ {
					v := r.At(i, j)
					norm += v * v
				}
				if norm > bestNorm {
					bestNorm, best = norm, j
				}
			}
			if best != k {
				r.SwapCols(k, best)
				perm[k], perm[best] = perm[best], perm[k]
			}
		}

		// Build the Householder vector for column k below the diagonal.
		x := make([]float64, m-k)
		for i := k; i < m; i++ {
			x[i-k] = r.At(i, k)
		}
		alpha := norm2(x)
		if alpha == 0 {
			continue
		}
		if x[0] > 0 {
			alpha = -alpha
		}
		v := make([]float64, len(x))
		copy(v, x)
		v[0] -= alpha
		vnorm := norm2(v)
		if vnorm == 0 {
			continue
		}
		for i := range v {
			v[i] /= vnorm
		}

		applyHouseholderLeft(r, v, k)
		applyHouseholderLeft(ql, v, k)
	}

	return ql, r, perm
}

// applyHouseholderLeft updates m in place as m := H*m restricted to rows
// [off, off+len(v)), where H = I - 2*v*vᵀ acting on that row block.
func applyHouseholderLeft(m *Dense, v []float64, off int) {
	rows := m.Rows()
	_ = rows
	cols := m.Cols()
	for j := 0; j < cols; j++ {
		dot := 0.0
		for i, vi := range v {
			dot += vi * m.At(off+i, j)
		}
		if dot == 0 {
			continue
		}
		for i, vi := range v {
			m.Add(off+i, j, -2*vi*dot)
		}
	}
}

func norm2(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// ColumnPivotedQR factors a into Q*R*Pᵀ, choosing column pivots by maximum
// remaining norm at each step (Businger-Golub), returning the permutation
// perm such that a's columns in pivot order are perm[0], perm[1], ....
func ColumnPivotedQR(a *Dense) (q, r *Dense, perm []int) {
	ql, r, perm := householderQR(a, true)

	return ql.T(), r, perm
}

// PlainQR factors a into Q*R with no column pivoting.
func PlainQR(a *Dense) (q, r *Dense) {
	ql, r, _ := householderQR(a, false)

	return ql.T(), r
}

// Rank returns the numerical rank of r (assumed upper triangular, as
// produced by ColumnPivotedQR/PlainQR): the count of diagonal entries whose
// magnitude exceeds tol.
func Rank(r *Dense, tol float64) int {
	steps := r.Rows()
	if r.Cols() < steps {
		steps = r.Cols()
	}
	rank := 0
	for i := 0; i < steps; i++ {
		if math.Abs(r.At(i, i)) > tol {
			rank++
		}
	}

	return rank
}
