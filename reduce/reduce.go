package reduce

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/polysolve/linalg"
	"github.com/katalvlaran/polysolve/macaulay"
	"github.com/katalvlaran/polysolve/monomial"
)

// Basis is the extracted quotient-algebra data: VB is the sorted (grevlex
// ascending) list of monomials forming a vector-space basis of
// C[x]/I, and R maps every non-basis monomial encountered during reduction
// (keyed by its Key()) to its coordinate vector in VB.
type Basis struct {
	VB []monomial.Monomial
	R  map[string][]float64
}

// Extract reduces m and reads off the quotient basis and reduction map, per
// the Telen-Van Barel extraction: rank-revealing row reduction exposes a
// row-reduced echelon form whose pivot columns are monomials outside VB, and
// whose free columns — VB itself — carry the reduction coordinates.
func Extract(m *macaulay.Matrix, tol float64) (*Basis, error) {
	preconditioned := precondition(m)

	reduced, err := linalg.ReduceRows(preconditioned, tol, true)
	if err != nil {
		return nil, fmt.Errorf("Extract: %w", err)
	}
	rref, err := linalg.TriangularSolve(reduced, tol)
	if err != nil {
		return nil, fmt.Errorf("Extract: %w", err)
	}

	rows, cols := rref.Rows(), rref.Cols()
	type pivot struct {
		row, col int
	}
	var pivots []pivot
	isPivot := make([]bool, cols)

	for i := 0; i < rows; i++ {
		pc := -1
		for j := 0; j < cols; j++ {
			if rref.At(i, j) != 0 {
				pc = j
				break
			}
		}
		if pc < 0 {
			continue // an all-zero row carries no constraint
		}
		if pc == cols-1 && isOrigin(m.Columns[pc]) {
			return nil, ErrEmptyVariety
		}
		pivots = append(pivots, pivot{row: i, col: pc})
		isPivot[pc] = true
	}

	var vb []monomial.Monomial
	for j, col := range m.Columns {
		if !isPivot[j] {
			vb = append(vb, col)
		}
	}
	sort.Slice(vb, func(i, j int) bool { return monomial.Less(vb[i], vb[j]) })

	r := make(map[string][]float64, len(pivots))
	for _, pv := range pivots {
		coords := make([]float64, len(vb))
		for vi, vmon := range vb {
			// Locate vmon's column index in the original column order to
			// read its entry from this pivot row.
			colIdx := columnIndexOf(m.Columns, vmon)
			coords[vi] = -rref.At(pv.row, colIdx)
		}
		r[m.Columns[pv.col].Key()] = coords
	}

	if err := checkZeroDimensional(r, m.Columns); err != nil {
		return nil, err
	}

	return &Basis{VB: vb, R: r}, nil
}

// precondition reorders m's rows by SortByLeadingRatio before reduction,
// the same leading-coefficient preconditioning the original's
// sorted_polys_coeff pass applies: rows with a single dominant entry sort
// first, favoring numerically well-separated pivots in the rank-revealing
// reduction that follows.
func precondition(m *macaulay.Matrix) *linalg.Dense {
	order := macaulay.SortByLeadingRatio(m)

	return m.M.SelectRows(order)
}

func columnIndexOf(columns []monomial.Monomial, target monomial.Monomial) int {
	for j, c := range columns {
		if monomial.Equal(c, target) {
			return j
		}
	}

	return -1
}

func isOrigin(m monomial.Monomial) bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}

	return true
}

// checkZeroDimensional verifies that every variable has some pivot
// (non-VB) monomial which is a pure power of that variable alone.
func checkZeroDimensional(r map[string][]float64, columns []monomial.Monomial) error {
	if len(columns) == 0 {
		return nil
	}
	n := columns[0].Dim()
	seen := make([]bool, n)

	for key := range r {
		mon := parseKey(key, n)
		axis, pure := purePowerAxis(mon)
		if pure {
			seen[axis] = true
		}
	}

	for i := 0; i < n; i++ {
		if !seen[i] {
			return ErrNotZeroDimensional
		}
	}

	return nil
}

func purePowerAxis(m monomial.Monomial) (int, bool) {
	axis, nonzero := -1, 0
	for i, e := range m {
		if e != 0 {
			nonzero++
			axis = i
		}
	}

	return axis, nonzero == 1
}

// parseKey reverses Monomial.Key() for the axis-of-support check; the
// reduction map is keyed by Key() rather than by storing Monomial directly
// to keep the map's key type comparable.
func parseKey(key string, n int) monomial.Monomial {
	m := make(monomial.Monomial, n)
	parts := strings.Split(key, ",")
	for i := 0; i < n && i < len(parts); i++ {
		v, _ := strconv.Atoi(parts[i])
		m[i] = v
	}

	return m
}
