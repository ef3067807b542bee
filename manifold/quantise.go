package manifold

import "math"

// maxQuantised is 2^31-1, the upper bound spec.md fixes for integer
// quantisation.
const maxQuantised = 1<<31 - 1

// QuantiseInt maps each coordinate of a [0,1]^d point p onto the integer
// lattice {0, ..., 2^31-1}, rounding to nearest and clamping to the
// range. The mapping is non-decreasing, so it never reverses the order of
// two coordinates, but values closer than one lattice step can round to
// the same integer. Returned as float64 values holding exact integers, to
// match the module's row-major f64 array interchange convention.
func QuantiseInt(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		q := math.Round(v * maxQuantised)
		if q < 0 {
			q = 0
		}
		if q > maxQuantised {
			q = maxQuantised
		}
		out[i] = q
	}
	return out
}
