package macaulay

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polysolve/linalg"
	"github.com/katalvlaran/polysolve/monomial"
	"github.com/katalvlaran/polysolve/poly"
)

// Matrix is a built Macaulay matrix: M's columns are indexed by Columns (the
// monomials of total degree ≤ d, grevlex descending), and Cuts holds the
// row-count boundary after each origin generator's row group, in the order
// the generators were processed (descending degree).
type Matrix struct {
	M        *linalg.Dense
	Columns  []monomial.Monomial
	Cuts     []int
	Warnings []string
}

// FindDegree computes the Macaulay bound d = sum(top n+1 of sorted
// descending degrees) − (n−1), clamped below at max(degrees); solve.Solve
// uses it as the Macaulay target degree.
func FindDegree(degrees []int, n int) int {
	if len(degrees) == 0 {
		return 0
	}
	sorted := make([]int, len(degrees))
	copy(sorted, degrees)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	take := n + 1
	if take > len(sorted) {
		take = len(sorted)
	}
	sum := 0
	for i := 0; i < take; i++ {
		sum += sorted[i]
	}
	d := sum - (n - 1)

	maxDeg := sorted[0]
	if d < maxDeg {
		d = maxDeg
	}

	return d
}

type generator struct {
	idx int
	p   *poly.Polynomial
	deg int
}

// Build constructs the Macaulay matrix of polys at target degree d: for
// each generator p_i (processed in descending degree order), every row
// x^β·p_i with deg(β) ≤ d−deg(p_i) becomes one row, laid out over the
// column set of all monomials of degree ≤ d in grevlex-descending order.
func Build(polys []*poly.Polynomial, d int) (*Matrix, error) {
	if len(polys) == 0 {
		return nil, ErrEmptySystem
	}

	basis := polys[0].TheBasis()
	n := polys[0].Dim()
	for _, p := range polys {
		if p.TheBasis() != basis {
			return nil, ErrMixedBasis
		}
		if p.Dim() != n {
			return nil, ErrMixedDimension
		}
	}

	gens := make([]generator, len(polys))
	for i, p := range polys {
		gens[i] = generator{idx: i, p: p, deg: p.Degree()}
	}
	sort.SliceStable(gens, func(i, j int) bool { return gens[i].deg > gens[j].deg })

	columns := monomial.Combos(n, d)

	var rows [][]float64
	var cuts []int
	var warnings []string

	for _, g := range gens {
		budget := d - g.deg
		var betas []monomial.Monomial
		if budget < 0 {
			warnings = append(warnings, fmt.Sprintf(
				"macaulay: generator %d has degree %d exceeding target degree %d; used alone", g.idx, g.deg, d))
			betas = []monomial.Monomial{monomial.Monomial(make([]int, n))}
		} else {
			betas = monomial.Combos(n, budget)
		}

		for _, beta := range betas {
			shifted, err := g.p.MonMult(beta)
			if err != nil {
				return nil, fmt.Errorf("Build: generator %d, shift %v: %w", g.idx, beta, err)
			}
			row := make([]float64, len(columns))
			for j, col := range columns {
				row[j] = shifted.CoeffOrZero([]int(col))
			}
			rows = append(rows, row)
		}
		cuts = append(cuts, len(rows))
	}

	flat := make([]float64, 0, len(rows)*len(columns))
	for _, r := range rows {
		flat = append(flat, r...)
	}
	m, err := linalg.NewDenseFrom(len(rows), len(columns), flat)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return &Matrix{M: m, Columns: columns, Cuts: cuts, Warnings: warnings}, nil
}
