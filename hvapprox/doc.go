// Package hvapprox computes randomised estimates of hypervolume for
// dimensions where the exact hypervolume package's recursive slicing
// becomes intractable.
//
// Both variants share one estimator (DZ2019): for a set of sample weight
// vectors w_k, each a unit vector in the non-negative orthant, compute
//
//	s_k = max_{x in X} min_i max(0, (ref_i - x_i) / w_i)
//
// (with w_i = 0 meaning the i-th axis imposes no constraint: the term is
// +Inf if ref_i > x_i, else 0), then
//
//	hv ~= c_d * mean_k(s_k^d),  c_d = pi^(d/2) / (2^d * Gamma(d/2 + 1))
//
// HVMonteCarlo draws w_k by normalising the component-wise absolute value
// of a standard-Gaussian draw (rng.Normal); HVHaltonWeyl draws w_k by
// mapping a Halton-Weyl low-discrepancy point through the inverse normal
// CDF before the same abs-and-normalise step, making it deterministic
// given (d, nsamples) alone.
//
// Errors:
//
//	ErrInvalidDimension    - d <= 0.
//	ErrDimensionMismatch   - points/ref length inconsistent with d.
//	ErrInvalidSampleCount  - nsamples <= 0.
package hvapprox
