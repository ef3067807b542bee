package moocore

import (
	"fmt"

	"github.com/mooctools/moocore/whv"
)

// WHVRect computes the rectangle-weighted hypervolume of points against
// ref. whv_rect does not support a maximise mask (an Unsupported error
// is returned if one is given), per this module's documented open
// question.
func WHVRect(points []float64, rectangles []whv.Rectangle, ref []float64, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if o.maximise != nil {
		return 0, fmt.Errorf("moocore: whv_rect does not support maximise masks: %w", ErrUnsupported)
	}
	if err := validateMatrix(points, 2); err != nil {
		return 0, err
	}
	if err := validateVector(ref, 2); err != nil {
		return 0, err
	}
	v, err := whv.WHVRect(points, rectangles, ref)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// TotalWHVRect returns hv(points, ref) + scalefactor *
// |prod(ref-ideal)| * whv_rect(points, rectangles, ref). Like WHVRect, it
// does not support a maximise mask.
func TotalWHVRect(points []float64, rectangles []whv.Rectangle, ref, ideal []float64, scalefactor float64, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if o.maximise != nil {
		return 0, fmt.Errorf("moocore: total_whv_rect does not support maximise masks: %w", ErrUnsupported)
	}
	if err := validateMatrix(points, 2); err != nil {
		return 0, err
	}
	if err := validateVector(ref, 2); err != nil {
		return 0, err
	}
	if err := validateVector(ideal, 2); err != nil {
		return 0, err
	}
	v, err := whv.TotalWHVRect(points, rectangles, ref, ideal, scalefactor)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// WHVHype estimates the 2D HypE-style weighted hypervolume of points
// against ref over the box [ideal, ref], sampled under dist (uniform,
// exponential, or Gaussian, the last two centred at WithWeightMu).
// WithNSamples (default 10000) and WithSeed (default 1) control the
// sampling. Does not support a maximise mask.
func WHVHype(points []float64, ref, ideal []float64, dist whv.WeightDistribution, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if o.maximise != nil {
		return 0, fmt.Errorf("moocore: whv_hype does not support maximise masks: %w", ErrUnsupported)
	}
	if err := validateMatrix(points, 2); err != nil {
		return 0, err
	}
	if err := validateVector(ref, 2); err != nil {
		return 0, err
	}
	if err := validateVector(ideal, 2); err != nil {
		return 0, err
	}
	v, err := whv.WHVHype(points, ref, ideal, o.nsamples, o.seed, dist, o.mu)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// LargestEAFDiff finds, among all unordered pairs of families, the pair
// whose EAF difference carries the largest weighted hypervolume.
// WithIntervals scales the colour difference as in EAFDiff.
func LargestEAFDiff(families [][][]float64, ref []float64, ideal []float64, opts ...Option) (i, j int, score float64, err error) {
	o := resolveOptions(opts)
	if err := validateVector(ref, 2); err != nil {
		return 0, 0, 0, err
	}
	if err := validateVector(ideal, 2); err != nil {
		return 0, 0, 0, err
	}
	i, j, score, err = whv.LargestEAFDiff(families, ref, o.intervals, ideal)
	if err != nil {
		return 0, 0, 0, translateErr(err)
	}
	return i, j, score, nil
}
