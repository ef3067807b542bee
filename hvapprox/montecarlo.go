package hvapprox

import "github.com/mooctools/moocore/rng"

// HVMonteCarlo estimates hypervolume (DZ2019-MC) by drawing nsamples
// weight vectors from the positive orthant of the unit sphere via
// rng.Normal, seeded by seed.
//
// Complexity: O(nsamples * n * d).
func HVMonteCarlo(points []float64, d int, ref []float64, nsamples int, seed uint32) (float64, error) {
	if err := validateInputs(points, d, ref, nsamples); err != nil {
		return 0, err
	}
	mt := rng.NewMT19937(seed)
	normal := rng.NewNormal(mt)
	samples := make([]float64, nsamples)
	w := make([]float64, d)
	for k := 0; k < nsamples; k++ {
		for j := 0; j < d; j++ {
			w[j] = normal.Next()
		}
		normalisePositiveOrthant(w)
		samples[k] = sK(points, d, ref, w)
	}
	return cD(d) * meanPow(samples, d), nil
}
