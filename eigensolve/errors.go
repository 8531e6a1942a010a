// Package eigensolve wraps gonum's general eigendecomposition to turn an
// assembled action matrix into root coordinates: left eigenvectors of a
// multiplication matrix (or right eigenvectors plus eigenvalue inversion
// for a division matrix) each carry one common root of the system, read off
// by the ratio of VB coordinates to the constant-monomial coordinate.
// Grounded on gonum.org/v1/gonum/mat's Eigen type (the general, possibly
// complex, Geev-backed path the teacher's own Jacobi eigensolver — limited
// to symmetric matrices — cannot cover).
package eigensolve

import "errors"

// ErrEigenFailed is returned when gonum's Eigen.Factorize cannot decompose
// the action matrix (e.g. a NaN/Inf entry, or LAPACK's Geev failing to
// converge).
var ErrEigenFailed = errors.New("eigensolve: eigendecomposition failed")

// ErrNoConstantMonomial is returned when VB does not contain the constant
// monomial 1 — no eigenvector ratio can be formed to read off root
// coordinates.
var ErrNoConstantMonomial = errors.New("eigensolve: constant monomial not in basis")

// ErrInstability is returned when a variable's coordinate depends (via the
// reduction map) on a monomial whose own coordinates are not yet resolved —
// the unresolved-dependency case the original implementation leaves
// unfinished for the Chebyshev basis.
var ErrInstability = errors.New("eigensolve: could not resolve variable coordinate")
