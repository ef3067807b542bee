package indicators

import "math"

// AvgHausdorffDist computes
// max(meanP(d(x,R): x in X), meanP(d(r,X): r in R)), meanP(v) = mean(|v|^p)^(1/p).
//
// Complexity: O(|X|*|R|*d).
func AvgHausdorffDist(x []float64, r []float64, d int, p float64) (float64, error) {
	if d <= 0 || len(x)%d != 0 || len(r)%d != 0 {
		return 0, ErrDimensionMismatch
	}
	xs, rs := rows(x, d), rows(r, d)
	if err := validateSets(xs, rs, d); err != nil {
		return 0, err
	}
	fwd := make([]float64, len(xs))
	for i, xx := range xs {
		fwd[i] = minDistTo(xx, rs, euclidean)
	}
	bwd := make([]float64, len(rs))
	for i, rr := range rs {
		bwd[i] = minDistTo(rr, xs, euclidean)
	}
	return math.Max(meanP(fwd, p), meanP(bwd, p)), nil
}

func meanP(v []float64, p float64) float64 {
	var sum float64
	for _, vi := range v {
		sum += math.Pow(math.Abs(vi), p)
	}
	return math.Pow(sum/float64(len(v)), 1/p)
}
