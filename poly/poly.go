package poly

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polysolve/monomial"
)

// Basis tags the monomial family a Polynomial's coefficient tensor is
// expressed in.
type Basis int

const (
	// Power is the standard monomial basis: coefficient at multi-index α is
	// the coefficient of x^α.
	Power Basis = iota
	// Chebyshev is the tensor-product Chebyshev basis of the first kind:
	// coefficient at multi-index α is the coefficient of ∏_i T_{α_i}(x_i).
	Chebyshev
)

// String implements fmt.Stringer for log/error messages.
func (b Basis) String() string {
	switch b {
	case Power:
		return "Power"
	case Chebyshev:
		return "Chebyshev"
	default:
		return "Unknown"
	}
}

// Polynomial is a dense n-dimensional coefficient tensor tagged with a
// Basis. data is stored flat in row-major order (last axis varies
// fastest), length == product(shape). Every axis length is positive and
// every entry finite (New enforces both); trailing zero slices are
// permitted. Dimension n is len(shape).
type Polynomial struct {
	shape []int
	data  []float64
	basis Basis
}

// strides computes row-major strides for shape: strides[i] = product of
// shape[i+1:].
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}

	return s
}

func product(shape []int) int {
	p := 1
	for _, d := range shape {
		p *= d
	}

	return p
}

// New builds a Polynomial from an explicit flat coefficient tensor.
// Stage 1 (Validate): shape axes must be positive, data length must match,
// entries must be finite.
// Stage 2 (Finalize): defensive copy of shape and data.
func New(shape []int, data []float64, basis Basis) (*Polynomial, error) {
	for i, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("New: shape[%d]=%d: %w", i, d, ErrInvalidShape)
		}
	}
	if product(shape) != len(data) {
		return nil, fmt.Errorf("New: shape product %d != len(data) %d: %w", product(shape), len(data), ErrDimensionMismatch)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("New: data[%d]=%v: %w", i, v, ErrNonFinite)
		}
	}
	sh := make([]int, len(shape))
	copy(sh, shape)
	d := make([]float64, len(data))
	copy(d, data)

	return &Polynomial{shape: sh, data: d, basis: basis}, nil
}

// New2D is a convenience constructor for the common 2-variable case, taking
// coefficients as rows (ragged rows are zero-padded to the widest row) —
// the shape tests and the paper example in spec.md use directly.
func New2D(rows [][]float64, basis Basis) (*Polynomial, error) {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	shape := []int{len(rows), width}
	data := make([]float64, len(rows)*width)
	for i, r := range rows {
		copy(data[i*width:i*width+len(r)], r)
	}

	return New(shape, data, basis)
}

// Shape returns a defensive copy of the tensor's shape.
func (p *Polynomial) Shape() []int {
	s := make([]int, len(p.shape))
	copy(s, p.shape)

	return s
}

// Dim returns n, the rank of the coefficient tensor (number of variables).
func (p *Polynomial) Dim() int { return len(p.shape) }

// TheBasis returns the polynomial's basis tag.
func (p *Polynomial) TheBasis() Basis { return p.basis }

// Clone returns a deep, independent copy.
func (p *Polynomial) Clone() *Polynomial {
	c, _ := New(p.shape, p.data, p.basis)

	return c
}

// flatIndex converts a multi-index into a flat data offset, bounds-checked.
func (p *Polynomial) flatIndex(idx []int) (int, error) {
	if len(idx) != len(p.shape) {
		return 0, fmt.Errorf("flatIndex: dim %d != %d: %w", len(idx), len(p.shape), ErrDimensionMismatch)
	}
	st := strides(p.shape)
	off := 0
	for i, v := range idx {
		if v < 0 || v >= p.shape[i] {
			return 0, fmt.Errorf("flatIndex: idx[%d]=%d out of [0,%d): %w", i, v, p.shape[i], ErrIndexOutOfRange)
		}
		off += v * st[i]
	}

	return off, nil
}

// At retrieves the coefficient at multi-index idx.
func (p *Polynomial) At(idx []int) (float64, error) {
	off, err := p.flatIndex(idx)
	if err != nil {
		return 0, fmt.Errorf("At: %w", err)
	}

	return p.data[off], nil
}

// Set assigns the coefficient at multi-index idx.
func (p *Polynomial) Set(idx []int, v float64) error {
	off, err := p.flatIndex(idx)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	p.data[off] = v

	return nil
}

// CoeffOrZero returns the coefficient at idx, or 0 if idx has the right
// dimension but lies outside the tensor's shape (rather than erroring) —
// used by callers reading a polynomial against a column set wider than its
// own shape, such as the Macaulay matrix row extractor.
func (p *Polynomial) CoeffOrZero(idx []int) float64 {
	if len(idx) != len(p.shape) {
		return 0
	}
	for i, v := range idx {
		if v < 0 || v >= p.shape[i] {
			return 0
		}
	}
	off, err := p.flatIndex(idx)
	if err != nil {
		return 0
	}

	return p.data[off]
}

// decode turns a flat offset back into a multi-index, for the common
// "iterate every nonzero coefficient" loop shared by Evaluate/LeadTerm.
func decode(flat int, shape []int) []int {
	st := strides(shape)
	idx := make([]int, len(shape))
	rem := flat
	for i := range shape {
		idx[i] = rem / st[i]
		rem %= st[i]
	}

	return idx
}

// LeadTerm returns the grevlex-maximal multi-index with a non-zero
// coefficient. The second return is false for the zero polynomial (all
// coefficients zero), in which case the returned monomial is the origin.
func (p *Polynomial) LeadTerm() (monomial.Monomial, bool) {
	best := monomial.Monomial(make([]int, len(p.shape)))
	found := false
	for flat, c := range p.data {
		if c == 0 {
			continue
		}
		idx := monomial.Monomial(decode(flat, p.shape))
		if !found || monomial.Greater(idx, best) {
			best = idx
			found = true
		}
	}

	return best, found
}

// Degree returns the polynomial's total degree (degree of its leading
// term); the zero polynomial has degree 0.
func (p *Polynomial) Degree() int {
	lt, _ := p.LeadTerm()

	return lt.Degree()
}
