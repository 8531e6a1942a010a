package eigensolve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polysolve/linalg"
	"github.com/katalvlaran/polysolve/monomial"
	"github.com/katalvlaran/polysolve/reduce"
	"gonum.org/v1/gonum/mat"
)

// toGonum converts our Dense into a gonum mat.Dense for Eigen.Factorize.
func toGonum(d *linalg.Dense) *mat.Dense {
	data := make([]float64, d.Rows()*d.Cols())
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			data[i*d.Cols()+j] = d.At(i, j)
		}
	}

	return mat.NewDense(d.Rows(), d.Cols(), data)
}

// Roots reconstructs common roots of the system from an assembled
// multiplication matrix mf: each left eigenvector carries one root's
// coordinates, read off as v[κ_i]/v[ι] for variables present in VB, and
// resolved via the reduction map (descending monomial order) otherwise.
func Roots(mf *linalg.Dense, vb []monomial.Monomial, rbasis *reduce.Basis, n int) ([][]complex128, error) {
	var eig mat.Eigen
	ok := eig.Factorize(toGonum(mf), true, false)
	if !ok {
		return nil, fmt.Errorf("Roots: %w", ErrEigenFailed)
	}

	var vecs mat.CDense
	eig.LeftVectorsTo(&vecs)

	return rootsFromVectors(&vecs, vb, rbasis, n, nil)
}

// RootsFromDivision reconstructs roots from a division-by-x_k matrix: the
// x_k coordinate comes from inverting the eigenvalue rather than from the
// eigenvector ratio, since Dxk's eigenvalues are 1/(x_k-coordinate).
func RootsFromDivision(dxk *linalg.Dense, k int, vb []monomial.Monomial, rbasis *reduce.Basis, n int) ([][]complex128, error) {
	var eig mat.Eigen
	ok := eig.Factorize(toGonum(dxk), false, true)
	if !ok {
		return nil, fmt.Errorf("RootsFromDivision: %w", ErrEigenFailed)
	}

	values := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	override := make([]complex128, len(values))
	for i, lam := range values {
		override[i] = 1 / lam
	}

	return rootsFromVectors(&vecs, vb, rbasis, n, func(col int) (int, complex128, bool) {
		return k - 1, override[col], true
	})
}

// rootsFromVectors reads off one root per eigenvector column, resolving
// variables outside VB via the reduction map. overrideFn, when non-nil, is
// consulted per eigenvector column to force one coordinate directly (used
// by division matrices, whose x_k coordinate comes from 1/eigenvalue
// instead of a VB ratio).
func rootsFromVectors(vecs *mat.CDense, vb []monomial.Monomial, rbasis *reduce.Basis, n int,
	overrideFn func(col int) (axis int, value complex128, ok bool)) ([][]complex128, error) {

	rows, cols := vecs.Dims()
	_ = rows

	vbIndex := make(map[string]int, len(vb))
	for i, v := range vb {
		vbIndex[v.Key()] = i
	}
	constIdx, hasConst := vbIndex[monomial.Monomial(make([]int, n)).Key()]
	if !hasConst {
		return nil, ErrNoConstantMonomial
	}

	varIdx := make([]int, n) // index into VB of e_i, or -1 if not in VB
	for i := 0; i < n; i++ {
		e := make([]int, n)
		e[i] = 1
		if idx, ok := vbIndex[monomial.Monomial(e).Key()]; ok {
			varIdx[i] = idx
		} else {
			varIdx[i] = -1
		}
	}

	missing := missingAxesDescending(varIdx, n)

	roots := make([][]complex128, 0, cols)
	for col := 0; col < cols; col++ {
		v := make([]complex128, len(vb))
		for row := range v {
			v[row] = vecs.At(row, col)
		}
		ccoef := v[constIdx]

		coord := make([]complex128, n)
		known := make([]bool, n)
		for i := 0; i < n; i++ {
			if overrideFn != nil {
				if axis, val, ok := overrideFn(col); ok && axis == i {
					coord[i] = val
					known[i] = true

					continue
				}
			}
			if varIdx[i] >= 0 {
				if ccoef == 0 {
					return nil, fmt.Errorf("rootsFromVectors: %w", ErrInstability)
				}
				coord[i] = v[varIdx[i]] / ccoef
				known[i] = true
			}
		}

		for _, axis := range missing {
			if known[axis] {
				continue
			}
			key := unitKey(axis, n)
			coeffs, ok := rbasis.R[key]
			if !ok {
				return nil, fmt.Errorf("rootsFromVectors: variable %d: %w", axis, ErrInstability)
			}
			var sum complex128
			for j, vmon := range vb {
				val, err := evalMonomial(vmon, coord, known)
				if err != nil {
					return nil, err
				}
				sum += complex(coeffs[j], 0) * val
			}
			coord[axis] = sum
			known[axis] = true
		}

		roots = append(roots, coord)
	}

	return roots, nil
}

// missingAxesDescending returns the axes whose unit monomial is not in VB,
// in descending grevlex order of that unit monomial, so that by the time
// one is resolved every basis monomial its reduction depends on has
// already been evaluated.
func missingAxesDescending(varIdx []int, n int) []int {
	var axes []int
	for i := 0; i < n; i++ {
		if varIdx[i] < 0 {
			axes = append(axes, i)
		}
	}
	sort.Slice(axes, func(a, b int) bool {
		ea := make(monomial.Monomial, n)
		ea[axes[a]] = 1
		eb := make(monomial.Monomial, n)
		eb[axes[b]] = 1

		return monomial.Greater(ea, eb)
	})

	return axes
}

func unitKey(axis, n int) string {
	e := make(monomial.Monomial, n)
	e[axis] = 1

	return e.Key()
}

// evalMonomial evaluates monomial m at the (possibly partially known)
// coordinate vector coord, erroring with ErrInstability if m uses a
// coordinate that known marks as not yet resolved.
func evalMonomial(m monomial.Monomial, coord []complex128, known []bool) (complex128, error) {
	result := complex128(1)
	for i, e := range m {
		if e == 0 {
			continue
		}
		if !known[i] {
			return 0, fmt.Errorf("evalMonomial: variable %d unresolved: %w", i, ErrInstability)
		}
		base := coord[i]
		for k := 0; k < e; k++ {
			result *= base
		}
	}

	return result, nil
}
