package solve

import (
	"fmt"

	"github.com/katalvlaran/polysolve/action"
	"github.com/katalvlaran/polysolve/eigensolve"
	"github.com/katalvlaran/polysolve/macaulay"
	"github.com/katalvlaran/polysolve/poly"
	"github.com/katalvlaran/polysolve/reduce"
	"github.com/rs/zerolog"
)

// Solve reduces a system of polynomials to the eigenproblem of a
// multiplication- or division-action operator on the quotient algebra and
// returns the list of common complex roots. Rejects mixed bases; returns
// ErrNotZeroDimensional for an infinite-dimensional ideal and ErrEmptyVariety
// when the reduced system is the whole ring (no roots).
//
// Stage 1 (Build): construct the Macaulay matrix at the bound degree.
// Stage 2 (Reduce): extract the quotient basis VB and reduction map R.
// Stage 3 (Assemble): build the selected action matrix.
// Stage 4 (Eigensolve): decompose and reconstruct root coordinates.
func Solve(polys []*poly.Polynomial, opts ...Option) ([][]complex128, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(o)
	}
	if o.msMatrix == invalidMethodSentinel {
		return nil, ErrInvalidMethod
	}
	if len(polys) == 0 {
		return nil, fmt.Errorf("Solve: %w", ErrEmptySystem)
	}

	logger := o.logger
	if !o.verbose {
		logger = zerolog.Nop()
	}

	basisTag := polys[0].TheBasis()
	n := polys[0].Dim()
	for _, p := range polys {
		if p.TheBasis() != basisTag {
			return nil, fmt.Errorf("Solve: %w", ErrBasisMismatch)
		}
	}

	degrees := make([]int, len(polys))
	for i, p := range polys {
		degrees[i] = p.Degree()
	}
	d := macaulay.FindDegree(degrees, n)
	logger.Debug().Int("degree", d).Int("n", n).Msg("macaulay: target degree computed")

	mm, err := macaulay.Build(polys, d)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	for _, w := range mm.Warnings {
		logger.Debug().Msg(w)
	}
	logger.Debug().Int("rows", mm.M.Rows()).Int("cols", mm.M.Cols()).Msg("macaulay: matrix built")

	qb, err := reduce.Extract(mm, o.tolerance)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	logger.Debug().Int("vb_size", len(qb.VB)).Msg("reduce: quotient basis extracted")

	if o.msMatrix < 0 {
		k := -o.msMatrix
		dx, err := action.Divider(qb.VB, qb, basisTag, n, k)
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		logger.Debug().Int("k", k).Msg("action: division matrix assembled")

		roots, err := eigensolve.RootsFromDivision(dx, k, qb.VB, qb, n)
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		logger.Debug().Int("roots", len(roots)).Msg("eigensolve: roots reconstructed")

		return roots, nil
	}

	mf, err := action.Multiplier(qb.VB, qb, basisTag, n, o.msMatrix, o.seed)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	logger.Debug().Int("selector", o.msMatrix).Msg("action: multiplication matrix assembled")

	roots, err := eigensolve.Roots(mf, qb.VB, qb, n)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	logger.Debug().Int("roots", len(roots)).Msg("eigensolve: roots reconstructed")

	return roots, nil
}
