package hypervolume

import "errors"

// ErrDimensionMismatch indicates points is not a multiple of d, or ref's
// length does not equal d.
var ErrDimensionMismatch = errors.New("hypervolume: dimension mismatch")

// ErrInvalidDimension indicates d <= 0.
var ErrInvalidDimension = errors.New("hypervolume: dimension must be positive")
