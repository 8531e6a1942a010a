package poly

import "fmt"

// Scale returns a copy of p with every coefficient multiplied by c.
func (p *Polynomial) Scale(c float64) *Polynomial {
	out := p.Clone()
	for i := range out.data {
		out.data[i] *= c
	}

	return out
}

// Add returns a + b, padding both to their common shape (MatchSize) first.
// Requires a and b to share a basis.
func Add(a, b *Polynomial) (*Polynomial, error) {
	if a.basis != b.basis {
		return nil, fmt.Errorf("Add: %w", ErrBasisMismatch)
	}
	pa, pb, err := MatchSize(a, b)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	out := pa.Clone()
	for i := range out.data {
		out.data[i] += pb.data[i]
	}

	return out, nil
}
