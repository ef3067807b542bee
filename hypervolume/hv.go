package hypervolume

import "math"

// HV computes the exact hypervolume of points (n*d row-major,
// minimisation-oriented) against ref (length d).
//
// Per spec.md's numerical overflow policy, an HV that exceeds the range
// representable in a finite float64 is reported as +Inf rather than an
// error.
//
// Complexity: see package doc.
func HV(points []float64, d int, ref []float64) (float64, error) {
	if d <= 0 {
		return 0, ErrInvalidDimension
	}
	if len(points)%d != 0 || len(ref) != d {
		return 0, ErrDimensionMismatch
	}
	filtered := filterStrictlyDominating(points, d, ref)
	v := computeHV(filtered, d, ref)
	if math.IsInf(v, 0) {
		return math.Inf(1), nil
	}
	return v, nil
}
