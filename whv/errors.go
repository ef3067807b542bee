package whv

import "errors"

var (
	// ErrUnsupportedDimension is returned when d != 2 for the rectangle-based
	// operations.
	ErrUnsupportedDimension = errors.New("whv: only 2D is supported")
	// ErrInvalidRectangle is returned for a malformed rectangle row.
	ErrInvalidRectangle = errors.New("whv: rectangle requires lox<hix, loy<hiy, w>0")
	// ErrInvalidScaleFactor is returned when scalefactor is outside (0, 1].
	ErrInvalidScaleFactor = errors.New("whv: scalefactor must be in (0, 1]")
	// ErrTooFewFamilies is returned when LargestEAFDiff is given fewer than
	// two families to compare.
	ErrTooFewFamilies = errors.New("whv: at least two families are required")
	// ErrInvalidSampleCount is returned when WHVHype's nsamples is not positive.
	ErrInvalidSampleCount = errors.New("whv: sample count must be positive")
)
