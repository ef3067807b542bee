package moocore

import (
	"fmt"

	"github.com/mooctools/moocore/eaf"
)

// EAF2D computes the requested (or, if percentiles is nil, default)
// attainment-surface levels of a family of 2D point sets.
func EAF2D(sets [][]float64, percentiles []float64) ([]eaf.Level, error) {
	for i, s := range sets {
		if err := validateMatrix(s, 2); err != nil {
			return nil, fmt.Errorf("moocore: set %d: %w", i, err)
		}
	}
	levels, err := eaf.EAF2D(sets, percentiles)
	if err != nil {
		return nil, translateErr(err)
	}
	return levels, nil
}

// EAF3D computes the requested attainment-surface levels of a family of
// 3D point sets.
func EAF3D(sets [][]float64, percentiles []float64) ([]eaf.Level3D, error) {
	for i, s := range sets {
		if err := validateMatrix(s, 3); err != nil {
			return nil, fmt.Errorf("moocore: set %d: %w", i, err)
		}
	}
	levels, err := eaf.EAF3D(sets, percentiles)
	if err != nil {
		return nil, translateErr(err)
	}
	return levels, nil
}

// EAFDiff computes the rectangle decomposition of the signed attainment
// difference between families a and b. WithIntervals scales the integer
// colour difference (default 0: raw, unscaled).
func EAFDiff(a, b [][]float64, opts ...Option) ([]eaf.Rectangle, error) {
	o := resolveOptions(opts)
	for i, s := range a {
		if err := validateMatrix(s, 2); err != nil {
			return nil, fmt.Errorf("moocore: a[%d]: %w", i, err)
		}
	}
	for i, s := range b {
		if err := validateMatrix(s, 2); err != nil {
			return nil, fmt.Errorf("moocore: b[%d]: %w", i, err)
		}
	}
	rects, err := eaf.EAFDiff(a, b, o.intervals)
	if err != nil {
		return nil, translateErr(err)
	}
	return rects, nil
}
