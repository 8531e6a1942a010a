package monomial

// Less implements the graded reverse-lexicographic (grevlex) order: compare
// by total degree first, then by the last differing coordinate reversed —
// the monomial with the *smaller* last-differing coordinate ranks higher.
//
// Less is a total order on monomials of equal dimension and is the sole
// comparator consumed by sort.Slice across the pipeline; it is intentionally
// not a method on Monomial so alternative orders can be introduced without
// touching the value type.
func Less(a, b Monomial) bool {
	da, db := a.Degree(), b.Degree()
	if da != db {
		return da < db
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			// Smaller last-differing coordinate is the *higher* ranked
			// monomial, so it is NOT less-than.
			return a[i] > b[i]
		}
	}

	return false
}

// Greater reports whether a ranks strictly above b in grevlex order.
func Greater(a, b Monomial) bool {
	return Less(b, a)
}

// EqualOrder reports whether neither a nor b precedes the other in grevlex
// order — equivalent to Equal for well-formed same-dimension monomials.
func EqualOrder(a, b Monomial) bool {
	return !Less(a, b) && !Less(b, a)
}
