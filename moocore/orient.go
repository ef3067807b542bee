package moocore

// foldMatrix returns a copy of points with every column selected by mask
// negated, leaving the caller's slice untouched. A nil mask returns an
// unmodified copy (still a fresh allocation, so downstream in-place
// engine tricks never alias caller memory).
func foldMatrix(points []float64, d int, mask []bool) []float64 {
	out := make([]float64, len(points))
	copy(out, points)
	if mask == nil {
		return out
	}
	for i := 0; i < len(out); i++ {
		if mask[i%d] {
			out[i] = -out[i]
		}
	}
	return out
}

// foldVector is foldMatrix specialised to a single d-length vector (a
// ref or ideal point). When mask selects maximised columns, folding also
// swaps the notion of upper/lower bound, which callers needing that
// swap (ideal vs ref) must account for themselves; foldVector only
// negates.
func foldVector(v []float64, mask []bool) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	if mask == nil {
		return out
	}
	for i := range out {
		if mask[i] {
			out[i] = -out[i]
		}
	}
	return out
}
