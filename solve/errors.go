// Package solve is the façade over the action-matrix pipeline: it wires the
// Macaulay builder, the Telen-Van Barel reducer, the action-matrix
// assembler, and the eigensolver into the single entry point Solve.
// Grounded on the teacher's top-level doc.go / builder-façade conventions
// (functional options, sentinel errors wrapped with fmt.Errorf, an
// optional zerolog logger threaded through every stage).
package solve

import (
	"github.com/katalvlaran/polysolve/eigensolve"
	"github.com/katalvlaran/polysolve/linalg"
	"github.com/katalvlaran/polysolve/macaulay"
	"github.com/katalvlaran/polysolve/poly"
	"github.com/katalvlaran/polysolve/reduce"
)

// Re-exported sentinels so callers can use errors.Is against the common
// pipeline failures by importing solve alone. Sentinels of other packages
// (for example action.ErrNotInvertible or eigensolve.ErrEigenFailed) are
// not re-exported here.
var (
	ErrBasisMismatch     = poly.ErrBasisMismatch
	ErrEmptySystem       = macaulay.ErrEmptySystem
	ErrNotZeroDimensional = reduce.ErrNotZeroDimensional
	ErrEmptyVariety      = reduce.ErrEmptyVariety
	ErrSingular          = linalg.ErrSingular
	ErrInstability       = eigensolve.ErrInstability
	ErrInvalidMethod     = errInvalidMethod
)
