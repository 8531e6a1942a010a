// Package macaulay builds the generalized Macaulay matrix of a polynomial
// system: the coefficient matrix of {x^β · p_i : deg(β) ≤ d − d_i}, laid
// out in a fixed grevlex-descending column order, with row groups ("cuts")
// separating the shifted generators by origin polynomial. Grounded in the
// teacher's matrix/builder.go incremental-construction style, generalized
// from a static adjacency build to a degree-driven row enumeration.
package macaulay

import "errors"

// ErrEmptySystem is returned when Build is called with no polynomials.
var ErrEmptySystem = errors.New("macaulay: empty polynomial system")

// ErrMixedBasis is returned when the input polynomials do not all share a
// single Basis tag.
var ErrMixedBasis = errors.New("macaulay: mixed polynomial bases")

// ErrMixedDimension is returned when the input polynomials disagree on the
// number of variables.
var ErrMixedDimension = errors.New("macaulay: mixed variable counts")
