package action

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/polysolve/linalg"
	"github.com/katalvlaran/polysolve/monomial"
	"github.com/katalvlaran/polysolve/poly"
	"github.com/katalvlaran/polysolve/reduce"
)

// monomialToPoly builds the single-term polynomial "1 * v" in the given
// basis, the smallest tensor that contains v.
func monomialToPoly(v monomial.Monomial, basis poly.Basis) (*poly.Polynomial, error) {
	shape := make([]int, v.Dim())
	for i, e := range v {
		shape[i] = e + 1
	}
	size := 1
	for _, s := range shape {
		size *= s
	}
	data := make([]float64, size)
	data[size-1] = 1 // v sits at the highest index in every axis

	return poly.New(shape, data, basis)
}

// Multiplier builds the N×N matrix of "multiply by f" restricted to VB,
// where f is x_k (selector=k>0) or a pseudorandom linear form
// Σc_i x_i with c_i ~ Uniform[0,1000) (selector=0, driven by seed).
func Multiplier(vb []monomial.Monomial, r *reduce.Basis, basis poly.Basis, n int, selector int, seed int64) (*linalg.Dense, error) {
	if selector < 0 || selector > n {
		return nil, fmt.Errorf("Multiplier: selector=%d: %w", selector, ErrInvalidSelector)
	}

	var f func(v monomial.Monomial) (*poly.Polynomial, error)
	switch {
	case selector > 0:
		k := selector - 1
		f = func(v monomial.Monomial) (*poly.Polynomial, error) {
			vp, err := monomialToPoly(v, basis)
			if err != nil {
				return nil, err
			}
			ek, err := monomial.New(unit(n, k)...)
			if err != nil {
				return nil, err
			}

			return vp.MonMult(ek)
		}
	default:
		rng := rand.New(rand.NewSource(seed))
		coeffs := make([]float64, n)
		for i := range coeffs {
			coeffs[i] = rng.Float64() * 1000
		}
		f = func(v monomial.Monomial) (*poly.Polynomial, error) {
			vp, err := monomialToPoly(v, basis)
			if err != nil {
				return nil, err
			}
			var acc *poly.Polynomial
			for i := 0; i < n; i++ {
				if coeffs[i] == 0 {
					continue
				}
				ei, err := monomial.New(unit(n, i)...)
				if err != nil {
					return nil, err
				}
				shifted, err := vp.MonMult(ei)
				if err != nil {
					return nil, err
				}
				shifted = shifted.Scale(coeffs[i])
				if acc == nil {
					acc = shifted
				} else {
					acc, err = poly.Add(acc, shifted)
					if err != nil {
						return nil, err
					}
				}
			}
			if acc == nil {
				return monomialToPoly(monomial.Monomial(make([]int, n)), basis)
			}

			return acc, nil
		}
	}

	return buildFromProducts(vb, r, n, f)
}

// buildFromProducts evaluates f(v_j) for every basis vector v_j and
// decomposes the product into VB/reduction-map coordinates to fill column
// j of the action matrix.
func buildFromProducts(vb []monomial.Monomial, r *reduce.Basis, n int, f func(monomial.Monomial) (*poly.Polynomial, error)) (*linalg.Dense, error) {
	N := len(vb)
	vbIndex := make(map[string]int, N)
	for i, v := range vb {
		vbIndex[v.Key()] = i
	}

	m, err := linalg.NewDense(N, N)
	if err != nil {
		return nil, err
	}

	for j, v := range vb {
		prod, err := f(v)
		if err != nil {
			return nil, fmt.Errorf("buildFromProducts: column %d: %w", j, err)
		}
		shape := prod.Shape()
		if err := scatterColumn(m, j, prod, shape, vbIndex, r); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func scatterColumn(m *linalg.Dense, col int, prod *poly.Polynomial, shape []int, vbIndex map[string]int, r *reduce.Basis) error {
	idx := make([]int, len(shape))
	var missing error
	var walk func(axis int)
	walk = func(axis int) {
		if axis == len(shape) {
			c := prod.CoeffOrZero(idx)
			if c == 0 {
				return
			}
			mon := monomial.Monomial(append([]int{}, idx...))
			if row, ok := vbIndex[mon.Key()]; ok {
				m.Add(row, col, c)

				return
			}
			coords, ok := r.R[mon.Key()]
			if !ok {
				if missing == nil {
					missing = fmt.Errorf("scatterColumn: monomial %v: %w", mon, ErrMonomialNotReduced)
				}

				return
			}
			for row, coeff := range coords {
				if coeff == 0 {
					continue
				}
				m.Add(row, col, c*coeff)
			}

			return
		}
		for v := 0; v < shape[axis]; v++ {
			idx[axis] = v
			walk(axis + 1)
		}
	}
	walk(0)

	return missing
}

func unit(n, k int) []int {
	e := make([]int, n)
	e[k] = 1

	return e
}

// Divider builds the division-by-x_k action matrix: the inverse of the
// transpose of x_k's multiplication matrix restricted to VB, so that its
// right eigenvectors are the left eigenvectors of that multiplication
// matrix. Returns ErrNotInvertible if that multiplication matrix is
// singular; no generalized-eigenproblem fallback is attempted.
func Divider(vb []monomial.Monomial, r *reduce.Basis, basis poly.Basis, n int, k int) (*linalg.Dense, error) {
	mxk, err := Multiplier(vb, r, basis, n, k, 0)
	if err != nil {
		return nil, err
	}
	inv, err := linalg.SolveLinear(mxk.T(), linalg.Identity(len(vb)), linalg.DefaultTolerance)
	if err != nil {
		return nil, fmt.Errorf("Divider: %w", ErrNotInvertible)
	}

	return inv, nil
}
