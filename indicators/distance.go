package indicators

import "gonum.org/v1/gonum/floats"

// rows returns a view over the n=len(flat)/d rows of flat, each a d-length
// sub-slice sharing flat's backing array.
func rows(flat []float64, d int) [][]float64 {
	n := len(flat) / d
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = flat[i*d : i*d+d]
	}
	return out
}

// euclidean returns the L2 distance between a and b.
func euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// dPlus returns the IGD+ dominated-direction distance from x to r under
// minimisation: sqrt(sum_i max(x_i-r_i, 0)^2).
func dPlus(x, r []float64) float64 {
	diff := make([]float64, len(x))
	for i := range x {
		if d := x[i] - r[i]; d > 0 {
			diff[i] = d
		}
	}
	return floats.Norm(diff, 2)
}

// minDistTo returns min_{p in set} metric(a, p).
func minDistTo(a []float64, set [][]float64, metric func(a, b []float64) float64) float64 {
	best := metric(a, set[0])
	for _, p := range set[1:] {
		if v := metric(a, p); v < best {
			best = v
		}
	}
	return best
}
