// Package polysolve solves systems of multivariate polynomial equations by
// reducing root-finding to an eigenproblem.
//
// The pipeline:
//
//	monomial/   — grevlex ordering and monomial-tuple arithmetic
//	poly/       — dense coefficient-tensor polynomials, Power and Chebyshev bases
//	linalg/     — column-pivoted QR, numerical rank, rank-revealing row reduction
//	macaulay/   — generalized Macaulay matrix construction
//	reduce/     — Telen-Van Barel quotient-basis extraction
//	action/     — multiplication- and division-action matrix assembly
//	eigensolve/ — eigendecomposition and root reconstruction
//	solve/      — the façade tying the above into one entry point
//
// A system p₁,…,pₖ of polynomials in n variables is handled by building the
// Macaulay matrix of shifted products up to a degree bound, reducing it to
// expose a vector-space basis VB of the quotient algebra C[x]/I, assembling
// the dense matrix of "multiply by f" (or "divide by x_k") restricted to
// VB, and reading the common roots off the action matrix's eigenvectors.
//
//	go get github.com/katalvlaran/polysolve
package polysolve
