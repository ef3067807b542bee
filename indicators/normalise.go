package indicators

import "math"

// Normalise maps each of X's d columns affinely onto toRange (toRange[0]
// is the low end, toRange[1] the high end), using lower/upper as the
// per-column source bounds when non-nil, else the column's own min/max.
// A column flagged in maximise has its mapped range swapped, so that a
// larger original value maps closer to toRange's low end, consistent
// with every other indicator in this package treating all columns as
// minimisation-oriented after folding.
//
// X is modified in place; this is the one operation in this package
// documented to mutate its input.
//
// Complexity: O(n*d).
func Normalise(x []float64, d int, toRange [2]float64, lower, upper []float64, maximise []bool) error {
	if d <= 0 || len(x)%d != 0 {
		return ErrDimensionMismatch
	}
	n := len(x) / d
	if n == 0 {
		return ErrEmptySet
	}
	lo := make([]float64, d)
	hi := make([]float64, d)
	for j := 0; j < d; j++ {
		if lower != nil && upper != nil {
			lo[j], hi[j] = lower[j], upper[j]
			continue
		}
		lo[j] = x[j]
		hi[j] = x[j]
		for i := 1; i < n; i++ {
			v := x[i*d+j]
			lo[j] = math.Min(lo[j], v)
			hi[j] = math.Max(hi[j], v)
		}
	}
	target := toRange
	for j := 0; j < d; j++ {
		lowJ, highJ := target[0], target[1]
		if maximise != nil && j < len(maximise) && maximise[j] {
			lowJ, highJ = target[1], target[0]
		}
		span := hi[j] - lo[j]
		for i := 0; i < n; i++ {
			idx := i*d + j
			if span == 0 {
				x[idx] = lowJ
				continue
			}
			t := (x[idx] - lo[j]) / span
			x[idx] = lowJ + t*(highJ-lowJ)
		}
	}
	return nil
}
