package manifold

import "errors"

var (
	// ErrInvalidN is returned when n <= 0.
	ErrInvalidN = errors.New("manifold: n must be positive")
	// ErrInvalidDimension is returned when d < 2.
	ErrInvalidDimension = errors.New("manifold: d must be at least 2")
	// ErrUnsupportedMethod is returned for an unrecognised Method value.
	ErrUnsupportedMethod = errors.New("manifold: unsupported method")
	// ErrResampleExhausted is returned when a point could not be drawn
	// distinct from its predecessors within the retry budget.
	ErrResampleExhausted = errors.New("manifold: could not draw a distinct point within the retry budget")
)
