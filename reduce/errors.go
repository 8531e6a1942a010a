// Package reduce implements the Telen-Van Barel quotient-basis extraction:
// given a built Macaulay matrix, it rank-revealing-reduces the matrix and
// reads off a vector-space basis VB of the quotient algebra together with a
// reduction map expressing every non-basis monomial as a linear combination
// of VB. Grounded on the teacher's matrix/ops reduction style, layered on
// top of linalg's ReduceRows/TriangularSolve.
package reduce

import "errors"

// ErrNotZeroDimensional is returned when the ideal generated by the input
// system is not zero-dimensional: some variable has no pure-power leading
// term among the reduced rows, so no finite root set can be extracted.
var ErrNotZeroDimensional = errors.New("reduce: ideal is not zero-dimensional")

// ErrEmptyVariety is returned when the reduced system contains a constant
// polynomial identity (a nonzero constant reduces to zero), meaning the
// ideal is the whole ring and the variety is empty.
var ErrEmptyVariety = errors.New("reduce: variety is empty")
