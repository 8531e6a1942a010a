// Package action assembles the multiplication- and division-action matrices
// on the quotient algebra: given a vector-space basis VB and a reduction
// map R from the reduce package, it builds the dense matrix of "multiply by
// f" (or "divide by x_k") restricted to VB, ready for eigendecomposition.
// Grounded on the teacher's matrix/ops assembly style (explicit Stage-N
// construction, sentinel errors).
package action

import "errors"

// ErrMonomialNotReduced is returned when a product f*v_j produces a
// monomial that is neither in VB nor present in the reduction map — the
// Macaulay target degree was too small to cover the action-matrix products.
var ErrMonomialNotReduced = errors.New("action: monomial outside reduced range")

// ErrInvalidSelector is returned for an MSmatrix selector referencing a
// variable index outside [1,n] (or its negation).
var ErrInvalidSelector = errors.New("action: invalid MSmatrix selector")

// ErrNotInvertible is returned when division by x_k is requested but x_k's
// multiplication matrix restricted to VB is singular.
var ErrNotInvertible = errors.New("action: x_k is not invertible on the quotient algebra")
