package macaulay

import "sort"

// SortByLeadingRatio reorders row indices by the ratio of each row's second-
// largest-magnitude entry to its largest, ascending — rows closest to
// already being "clean" (a single dominant entry) sort first. This is the
// leading-coefficient preconditioning pass from the original implementation,
// applied before reduction to favor numerically well-separated pivots.
func SortByLeadingRatio(m *Matrix) []int {
	rows := m.M.Rows()
	order := make([]int, rows)
	for i := range order {
		order[i] = i
	}

	ratio := make([]float64, rows)
	for i := 0; i < rows; i++ {
		var top, second float64
		for j := 0; j < m.M.Cols(); j++ {
			v := m.M.At(i, j)
			if v < 0 {
				v = -v
			}
			if v > top {
				second = top
				top = v
			} else if v > second {
				second = v
			}
		}
		if top == 0 {
			ratio[i] = 0
		} else {
			ratio[i] = second / top
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		return ratio[order[a]] < ratio[order[b]]
	})

	return order
}
