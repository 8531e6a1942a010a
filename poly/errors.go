// Package poly defines the Polynomial value type: a dense n-dimensional
// coefficient tensor tagged with a basis (Power or Chebyshev), together with
// evaluation, monomial multiplication, and shape-matching. The two bases
// are modeled as a tagged variant with dispatch on the tag rather than a
// runtime class hierarchy.
package poly

import "errors"

// ErrBasisMismatch is returned whenever two polynomials (or a polynomial and
// a requested basis) disagree on their Basis tag. Structural, fatal.
var ErrBasisMismatch = errors.New("poly: basis mismatch")

// ErrDimensionMismatch is returned when a coefficient tensor's rank does not
// match an expected dimension count. Structural, but auto-corrected by
// padding wherever the caller is MatchSize rather than a hard boundary.
var ErrDimensionMismatch = errors.New("poly: dimension mismatch")

// ErrInvalidShape is returned when a coefficient tensor shape has a
// non-positive axis length.
var ErrInvalidShape = errors.New("poly: invalid shape")

// ErrNonFinite is returned when a coefficient tensor contains NaN or ±Inf.
var ErrNonFinite = errors.New("poly: non-finite coefficient")

// ErrIndexOutOfRange is returned when a multi-index falls outside the
// tensor's shape.
var ErrIndexOutOfRange = errors.New("poly: index out of range")
