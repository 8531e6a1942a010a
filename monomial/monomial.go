// Package monomial provides the Monomial value type and the grevlex term
// ordering used throughout the Macaulay pipeline. Ordering is kept as a
// free-standing comparator (see order.go) rather than a method on Monomial,
// so the same tuple type can be sorted under different conventions by
// different callers.
package monomial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDimensionMismatch is returned when two monomials of different
// dimension (number of variables) are combined.
var ErrDimensionMismatch = errors.New("monomial: dimension mismatch")

// ErrNegativeExponent is returned when a monomial is constructed or
// produced with a negative exponent, which is never a valid multi-index.
var ErrNegativeExponent = errors.New("monomial: negative exponent")

// Monomial is an n-tuple of non-negative integer exponents: Monomial{a,b,c}
// represents x_0^a * x_1^b * x_2^c.
type Monomial []int

// New builds a Monomial from exponents, validating non-negativity.
// Stage 1 (Validate): reject negative exponents.
// Stage 2 (Finalize): return a defensive copy.
func New(exponents ...int) (Monomial, error) {
	m := make(Monomial, len(exponents))
	for i, e := range exponents {
		if e < 0 {
			return nil, fmt.Errorf("New: exponent[%d]=%d: %w", i, e, ErrNegativeExponent)
		}
		m[i] = e
	}

	return m, nil
}

// Dim returns the number of variables (tuple length).
func (m Monomial) Dim() int { return len(m) }

// Degree returns the total degree, the sum of exponents.
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m {
		d += e
	}

	return d
}

// Clone returns an independent copy of m.
func (m Monomial) Clone() Monomial {
	c := make(Monomial, len(m))
	copy(c, m)

	return c
}

// Equal reports whether a and b have identical exponents.
func Equal(a, b Monomial) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Sub returns a - b component-wise. The result may contain negative
// entries; callers that require a valid monomial must check Divides first.
func Sub(a, b Monomial) (Monomial, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Sub: dims %d,%d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	out := make(Monomial, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Add returns a + b component-wise.
func Add(a, b Monomial) (Monomial, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Add: dims %d,%d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	out := make(Monomial, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Monomial) (Monomial, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Max: dims %d,%d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	out := make(Monomial, len(a))
	for i := range a {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}

	return out, nil
}

// Divides reports whether a divides b, i.e. b-a is component-wise >= 0.
func Divides(a, b Monomial) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if b[i]-a[i] < 0 {
			return false
		}
	}

	return true
}

// Key returns a stable string key suitable for map lookups, since
// Monomial (a slice) is not itself comparable/hashable.
func (m Monomial) Key() string {
	var sb strings.Builder
	for i, e := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}

// Vars returns the n canonical unit tuples e_1..e_n (get_var_list).
func Vars(n int) []Monomial {
	out := make([]Monomial, n)
	for i := 0; i < n; i++ {
		v := make(Monomial, n)
		v[i] = 1
		out[i] = v
	}

	return out
}
