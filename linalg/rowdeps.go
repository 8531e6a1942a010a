package linalg

// RowLinearDependencies splits the rows of a into an independent set and a
// dependent set, grounded on the original row_linear_dependencies routine:
// pivot-QR of a gives the numerical rank; if a is full row rank every row
// is independent, otherwise the trailing (rows-rank) rows of Qᵀ are
// themselves pivot-QR'd and that inner pivot order decides which original
// rows are kept as a basis and which are expressed in terms of it.
func RowLinearDependencies(a *Dense, tol float64) (independent, dependent []int, q *Dense, err error) {
	rows := a.Rows()
	q, r, _ := ColumnPivotedQR(a)
	rank := Rank(r, tol)

	if rank >= rows {
		independent = make([]int, rows)
		for i := range independent {
			independent[i] = i
		}

		return independent, nil, q, nil
	}

	numMissing := rows - rank
	qt := q.T()
	tail := qt.SubRows(rank, rows) // numMissing x rows

	_, _, perm := householderQR(tail, true)

	dependent = append(dependent, perm[:numMissing]...)
	independent = append(independent, perm[numMissing:]...)

	return independent, dependent, q, nil
}
