package dominance

// ParetoRank assigns each row its front index via iterated non-dominated
// extraction: front 0 is the maximal weak antichain (IsNondominated with
// keepWeakly=true, so duplicates share a front); it is removed and the
// process repeats on the remainder, incrementing the rank, until no rows
// remain. Duplicate points therefore always share the same rank.
//
// For d==2 this has the same semantics as Jensen's O(n log n) sweep but is
// implemented here as repeated O(d n^2) extraction; see DESIGN.md.
//
// Complexity: O(d n^3) worst case (O(n) fronts, each an O(d n^2) pass).
func ParetoRank(points []float64, d int) ([]int32, error) {
	if d <= 0 || len(points)%d != 0 {
		return nil, ErrDimensionMismatch
	}
	n := len(points) / d
	rank := make([]int32, n)
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	var currentRank int32
	for len(remaining) > 0 {
		sub := make([]float64, len(remaining)*d)
		for k, idx := range remaining {
			copy(sub[k*d:k*d+d], points[idx*d:idx*d+d])
		}
		mask, err := IsNondominated(sub, d, true)
		if err != nil {
			return nil, err
		}
		next := remaining[:0:0]
		for k, idx := range remaining {
			if mask[k] {
				rank[idx] = currentRank
			} else {
				next = append(next, idx)
			}
		}
		remaining = next
		currentRank++
	}
	return rank, nil
}
