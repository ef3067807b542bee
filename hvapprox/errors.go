package hvapprox

import "errors"

var (
	// ErrInvalidDimension is returned when d <= 0.
	ErrInvalidDimension = errors.New("hvapprox: dimension must be positive")
	// ErrDimensionMismatch is returned when points or ref do not agree with d.
	ErrDimensionMismatch = errors.New("hvapprox: points/ref length inconsistent with dimension")
	// ErrInvalidSampleCount is returned when nsamples <= 0.
	ErrInvalidSampleCount = errors.New("hvapprox: sample count must be positive")
)
