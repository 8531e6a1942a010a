// Package linalg provides the numerical linear-algebra primitives the
// Macaulay pipeline is built on: column-pivoted QR, numerical rank,
// row-linear-dependency extraction, rank-revealing row reduction, and
// triangular back-substitution. Grounded in the teacher's
// matrix/ops/{qr,lu,inverse}.go Householder/Doolittle style (Stage-N
// comments, sentinel errors wrapped with fmt.Errorf), generalized to
// column pivoting and dependency-aware recursive reduction.
package linalg

import "errors"

// ErrDimensionMismatch indicates incompatible matrix shapes for an operation.
var ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

// ErrNonSquare signals a square matrix was required but the input wasn't.
var ErrNonSquare = errors.New("linalg: matrix is not square")

// ErrSingular is returned when a zero pivot is encountered where a
// nonsingular triangular system was required.
var ErrSingular = errors.New("linalg: singular matrix")

// ErrInstability is a warning-level sentinel: the computation completed but
// the pivoting diagonal fell below tolerance, so results may be inaccurate.
var ErrInstability = errors.New("linalg: numerical instability")

// ErrTooFewColumns is returned when rank-revealing row reduction is asked to
// reduce a matrix with fewer columns than rows — no unique leading column
// per row can then exist.
var ErrTooFewColumns = errors.New("linalg: fewer columns than rows")

// DefaultTolerance is the absolute pivot zero-threshold τ (§6, §9).
const DefaultTolerance = 1e-10
