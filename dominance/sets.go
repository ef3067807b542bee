package dominance

// IsNondominatedWithinSets groups rows by sets (compared by value, grouped
// in first-occurrence order — NOT sorted order), runs IsNondominated
// independently within each group, and returns a flat mask aligned with
// the original row order.
//
// Complexity: O(d n^2) total (each group processed independently).
func IsNondominatedWithinSets(points []float64, d int, sets []int) ([]bool, error) {
	if d <= 0 || len(points)%d != 0 {
		return nil, ErrDimensionMismatch
	}
	n := len(points) / d
	if len(sets) != n {
		return nil, ErrSetsLengthMismatch
	}

	// Group row indices by set value, in first-occurrence order.
	order := make([]int, 0)
	groups := make(map[int][]int)
	for i, s := range sets {
		if _, ok := groups[s]; !ok {
			order = append(order, s)
		}
		groups[s] = append(groups[s], i)
	}

	result := make([]bool, n)
	for _, s := range order {
		idxs := groups[s]
		sub := make([]float64, len(idxs)*d)
		for k, idx := range idxs {
			copy(sub[k*d:k*d+d], points[idx*d:idx*d+d])
		}
		mask, err := IsNondominated(sub, d, true)
		if err != nil {
			return nil, err
		}
		for k, idx := range idxs {
			result[idx] = mask[k]
		}
	}
	return result, nil
}
