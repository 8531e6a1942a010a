package poly

import (
	"fmt"

	"github.com/katalvlaran/polysolve/monomial"
)

// MonMult returns the product x^α · p (Power) or T_α(x) · p (Chebyshev).
// mon_mult must preserve the basis tag; the caller never needs to branch on
// basis after the fact.
func (p *Polynomial) MonMult(alpha monomial.Monomial) (*Polynomial, error) {
	if alpha.Dim() != p.Dim() {
		return nil, fmt.Errorf("MonMult: dim %d != %d: %w", alpha.Dim(), p.Dim(), ErrDimensionMismatch)
	}
	switch p.basis {
	case Power:
		return p.monMultPower(alpha)
	case Chebyshev:
		return p.monMultCheb(alpha)
	default:
		return nil, fmt.Errorf("MonMult: %w", ErrBasisMismatch)
	}
}

// monMultPower shifts the coefficient tensor by α: the product x^α·x^β has
// exponent α+β, so every coefficient simply moves to a higher multi-index.
// The new tensor is zero-padded at the low end (leading zeros) and grows by
// α component-wise.
func (p *Polynomial) monMultPower(alpha monomial.Monomial) (*Polynomial, error) {
	newShape := make([]int, len(p.shape))
	for i := range p.shape {
		newShape[i] = p.shape[i] + alpha[i]
	}
	out := &Polynomial{shape: newShape, data: make([]float64, product(newShape)), basis: Power}
	newStrides := strides(newShape)
	for flat, c := range p.data {
		if c == 0 {
			continue
		}
		idx := decode(flat, p.shape)
		off := 0
		for i, v := range idx {
			off += (v + alpha[i]) * newStrides[i]
		}
		out.data[off] += c
	}

	return out, nil
}

// monMultCheb applies the product-to-sum identity
// 2·T_a·T_b = T_{a+b} + T_{|a-b|} one axis at a time; each axis is
// independent because the Chebyshev basis is a tensor product, so the
// tensor can be grown and redistributed axis by axis in sequence.
func (p *Polynomial) monMultCheb(alpha monomial.Monomial) (*Polynomial, error) {
	cur := p.Clone()
	cur.basis = Chebyshev
	for axis, a := range alpha {
		if a == 0 {
			continue
		}
		cur = chebAxisShift(cur, axis, a)
	}

	return cur, nil
}

func chebAxisShift(t *Polynomial, axis, a int) *Polynomial {
	newShape := make([]int, len(t.shape))
	copy(newShape, t.shape)
	newShape[axis] += a
	out := &Polynomial{shape: newShape, data: make([]float64, product(newShape)), basis: Chebyshev}
	newStrides := strides(newShape)
	for flat, c := range t.data {
		if c == 0 {
			continue
		}
		idx := decode(flat, t.shape)

		idxUp := make([]int, len(idx))
		copy(idxUp, idx)
		idxUp[axis] = idx[axis] + a
		offUp := 0
		for i, v := range idxUp {
			offUp += v * newStrides[i]
		}
		out.data[offUp] += 0.5 * c

		idxDown := make([]int, len(idx))
		copy(idxDown, idx)
		diff := idx[axis] - a
		if diff < 0 {
			diff = -diff
		}
		idxDown[axis] = diff
		offDown := 0
		for i, v := range idxDown {
			offDown += v * newStrides[i]
		}
		out.data[offDown] += 0.5 * c
	}

	return out
}
