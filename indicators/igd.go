package indicators

import "gonum.org/v1/gonum/stat"

func validateSets(x, r [][]float64, d int) error {
	if len(x) == 0 || len(r) == 0 {
		return ErrEmptySet
	}
	for _, row := range x {
		if len(row) != d {
			return ErrDimensionMismatch
		}
	}
	for _, row := range r {
		if len(row) != d {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// IGD computes mean_{r in R} min_{x in X} ||x - r||_2.
//
// Complexity: O(|X|*|R|*d).
func IGD(x []float64, r []float64, d int) (float64, error) {
	if d <= 0 || len(x)%d != 0 || len(r)%d != 0 {
		return 0, ErrDimensionMismatch
	}
	xs, rs := rows(x, d), rows(r, d)
	if err := validateSets(xs, rs, d); err != nil {
		return 0, err
	}
	dists := make([]float64, len(rs))
	for i, rr := range rs {
		dists[i] = minDistTo(rr, xs, euclidean)
	}
	return stat.Mean(dists, nil), nil
}

// IGDPlus computes mean_{r in R} min_{x in X} d+(x, r), the Pareto-compliant
// variant of IGD.
//
// Complexity: O(|X|*|R|*d).
func IGDPlus(x []float64, r []float64, d int) (float64, error) {
	if d <= 0 || len(x)%d != 0 || len(r)%d != 0 {
		return 0, ErrDimensionMismatch
	}
	xs, rs := rows(x, d), rows(r, d)
	if err := validateSets(xs, rs, d); err != nil {
		return 0, err
	}
	dists := make([]float64, len(rs))
	for i, rr := range rs {
		best := dPlus(xs[0], rr)
		for _, xx := range xs[1:] {
			if v := dPlus(xx, rr); v < best {
				best = v
			}
		}
		dists[i] = best
	}
	return stat.Mean(dists, nil), nil
}
