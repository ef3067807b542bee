package moocore

import "github.com/mooctools/moocore/hvapprox"

// HVMonteCarlo approximates HV by direction-sampling with the
// Monte-Carlo (DZ2019-MC) estimator: WithNSamples (default 10000) and
// WithSeed (default 1) control the sampling; WithMaximise folds
// orientation as in HV.
//
// Complexity: O(n*nsamples).
func HVMonteCarlo(points []float64, d int, ref []float64, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(points, d); err != nil {
		return 0, err
	}
	if err := validateVector(ref, d); err != nil {
		return 0, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return 0, err
	}
	p := foldMatrix(points, d, o.maximise)
	r := foldVector(ref, o.maximise)
	v, err := hvapprox.HVMonteCarlo(p, d, r, o.nsamples, o.seed)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// HVHaltonWeyl approximates HV by direction-sampling with the
// quasi-Monte-Carlo (DZ2019-HW) estimator: deterministic given (d,
// nsamples), no seed needed. WithNSamples controls the sample count
// (default 10000).
//
// Complexity: O(n*nsamples).
func HVHaltonWeyl(points []float64, d int, ref []float64, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(points, d); err != nil {
		return 0, err
	}
	if err := validateVector(ref, d); err != nil {
		return 0, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return 0, err
	}
	p := foldMatrix(points, d, o.maximise)
	r := foldVector(ref, o.maximise)
	v, err := hvapprox.HVHaltonWeyl(p, d, r, o.nsamples)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}
