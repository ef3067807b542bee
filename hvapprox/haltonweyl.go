package hvapprox

import (
	"math"

	"github.com/mooctools/moocore/rng"
)

// HVHaltonWeyl estimates hypervolume (DZ2019-HW) by drawing nsamples
// weight vectors from a deterministic Halton-Weyl low-discrepancy
// sequence, mapped through the inverse normal CDF before the same
// abs-and-normalise step HVMonteCarlo uses. Deterministic given (d,
// nsamples) alone: no seed parameter.
//
// Complexity: O(nsamples * n * d).
func HVHaltonWeyl(points []float64, d int, ref []float64, nsamples int) (float64, error) {
	if err := validateInputs(points, d, ref, nsamples); err != nil {
		return 0, err
	}
	if d > rng.MaxHaltonDim() {
		return 0, ErrInvalidDimension
	}
	samples := make([]float64, nsamples)
	for k := 0; k < nsamples; k++ {
		u := rng.HaltonWeyl(d, uint64(k))
		w := make([]float64, d)
		for j := 0; j < d; j++ {
			w[j] = probit(u[j])
		}
		normalisePositiveOrthant(w)
		samples[k] = sK(points, d, ref, w)
	}
	return cD(d) * meanPow(samples, d), nil
}

// probit is the standard normal inverse CDF, via math.Erfinv.
func probit(p float64) float64 {
	if p <= 0 {
		p = 1e-12
	}
	if p >= 1 {
		p = 1 - 1e-12
	}
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
