package poly

import "fmt"

// reshapeLeadingOnes lifts p to rank dim by inserting leading axes of
// length 1 — a pure relabeling, since size-1 leading axes do not change the
// flat element count or order.
func (p *Polynomial) reshapeLeadingOnes(dim int) *Polynomial {
	if len(p.shape) >= dim {
		return p
	}
	newShape := make([]int, dim)
	pad := dim - len(p.shape)
	for i := 0; i < pad; i++ {
		newShape[i] = 1
	}
	copy(newShape[pad:], p.shape)

	return &Polynomial{shape: newShape, data: p.data, basis: p.basis}
}

// padTo zero-pads p into a (component-wise no smaller) shape, placing the
// existing coefficients in the low-index corner and leaving the rest zero
// — the "trailing zero slices are permitted" case from the data model.
func (p *Polynomial) padTo(newShape []int) (*Polynomial, error) {
	if len(newShape) != len(p.shape) {
		return nil, fmt.Errorf("padTo: dim %d != %d: %w", len(newShape), len(p.shape), ErrDimensionMismatch)
	}
	for i := range newShape {
		if newShape[i] < p.shape[i] {
			return nil, fmt.Errorf("padTo: axis %d shrinks %d->%d: %w", i, p.shape[i], newShape[i], ErrInvalidShape)
		}
	}
	out := &Polynomial{shape: append([]int{}, newShape...), data: make([]float64, product(newShape)), basis: p.basis}
	if sameShape(p.shape, newShape) {
		copy(out.data, p.data)

		return out, nil
	}
	newStrides := strides(newShape)
	for flat, c := range p.data {
		if c == 0 {
			continue
		}
		idx := decode(flat, p.shape)
		off := 0
		for i, v := range idx {
			off += v * newStrides[i]
		}
		out.data[off] = c
	}

	return out, nil
}

func sameShape(a, b []int) bool {
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

// MatchSize pads two polynomials of the same basis to a common,
// component-wise-maximum shape so their coefficient tensors align for
// arithmetic. Dimension counts are equalized first by inserting leading
// size-1 axes on the lower-rank operand (leading-axis insertion, §4.4).
func MatchSize(a, b *Polynomial) (*Polynomial, *Polynomial, error) {
	if a.basis != b.basis {
		return nil, nil, ErrBasisMismatch
	}
	dim := len(a.shape)
	if len(b.shape) > dim {
		dim = len(b.shape)
	}
	ra := a.reshapeLeadingOnes(dim)
	rb := b.reshapeLeadingOnes(dim)

	newShape := make([]int, dim)
	for i := 0; i < dim; i++ {
		newShape[i] = ra.shape[i]
		if rb.shape[i] > newShape[i] {
			newShape[i] = rb.shape[i]
		}
	}

	pa, err := ra.padTo(newShape)
	if err != nil {
		return nil, nil, fmt.Errorf("MatchSize: %w", err)
	}
	pb, err := rb.padTo(newShape)
	if err != nil {
		return nil, nil, fmt.Errorf("MatchSize: %w", err)
	}

	return pa, pb, nil
}
