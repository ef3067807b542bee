package rng

import "math"

// haltonPrimes lists the first primes used as Halton sequence bases, one per
// supported dimension. Hardcoded (not computed) so that HaltonWeyl is
// reproducible independent of any primality-test implementation detail.
var haltonPrimes = [...]uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
}

// weylShifts are fixed per-dimension additive shifts (the fractional parts
// of sqrt of the k-th prime) mixed into the Halton sequence to decorrelate
// low-order digits across dimensions, a standard Halton-Weyl scrambling.
var weylShifts = [...]float64{
	0.4142135623730951, 0.7320508075688772, 0.2360679774997896, 0.6457513110645907,
	0.3166247903553998, 0.6055512754639891, 0.1231056256176605, 0.3588989435406740,
	0.7958315233127195, 0.3851648071345040, 0.5677643628300215, 0.0827625302982193,
	0.4031242374328485, 0.5574385243020004, 0.8556546004010439, 0.2801098892805181,
	0.6811457478686078, 0.8102496759066540, 0.1853527718724504, 0.4261497731763591,
}

// maxHaltonDim is the number of supported dimensions: len(haltonPrimes).
const maxHaltonDim = len(haltonPrimes)

// MaxHaltonDim reports the largest d accepted by HaltonWeyl.
func MaxHaltonDim() int { return maxHaltonDim }

// haltonRadicalInverse computes the radical-inverse of i in the given prime
// base, i.e. the base-b digits of i reversed after the "decimal" point.
func haltonRadicalInverse(i uint64, base uint32) float64 {
	f := 1.0
	r := 0.0
	b := float64(base)
	for i > 0 {
		f /= b
		r += f * float64(i%uint64(base))
		i /= uint64(base)
	}
	return r
}

// HaltonWeyl returns the i-th point (0-indexed) of a d-dimensional
// Halton-Weyl low-discrepancy sequence in [0,1)^d. d must be in
// [1, MaxHaltonDim()]. The sequence is fully deterministic: the same (d, i)
// always yields the same vector, on any platform.
//
// Complexity: O(d log i).
func HaltonWeyl(d int, i uint64) []float64 {
	if d < 1 || d > maxHaltonDim {
		panic("rng: HaltonWeyl dimension out of range")
	}
	out := make([]float64, d)
	for k := 0; k < d; k++ {
		v := haltonRadicalInverse(i, haltonPrimes[k]) + weylShifts[k]
		_, frac := math.Modf(v)
		if frac < 0 {
			frac += 1
		}
		out[k] = frac
	}
	return out
}
