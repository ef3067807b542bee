package moocore

import "github.com/mooctools/moocore/hypervolume"

// HV computes the exact d-dimensional hypervolume of points against ref.
// WithMaximise folds the given mask into a local copy before dispatch;
// points and ref are never mutated.
//
// Complexity: see hypervolume.HV (O(n log n) for d<=2, O(n^2) for d=3,
// recursive slicing for d>=4).
func HV(points []float64, d int, ref []float64, opts ...Option) (float64, error) {
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
	v, err := hypervolume.HV(p, d, r)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// HVContributions computes, for each row of points, the marginal
// hypervolume it contributes to HV(points, ref); dominated or duplicate
// rows contribute exactly 0.
//
// Complexity: O(n * HV(n-1)).
func HVContributions(points []float64, d int, ref []float64, opts ...Option) ([]float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(points, d); err != nil {
		return nil, err
	}
	if err := validateVector(ref, d); err != nil {
		return nil, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return nil, err
	}
	p := foldMatrix(points, d, o.maximise)
	r := foldVector(ref, o.maximise)
	c, err := hypervolume.HVContributions(p, d, r)
	if err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}
