package moocore

import "errors"

var (
	// ErrInvalidShape is returned when input arrays have inconsistent
	// dimensions (length not a multiple of d, ref/ideal length != d, ...).
	ErrInvalidShape = errors.New("moocore: invalid shape")
	// ErrInvalidValue is returned for non-finite numbers where finite is
	// expected, a negative sample count, an out-of-range scalefactor, or
	// epsilon_mult on non-positive inputs.
	ErrInvalidValue = errors.New("moocore: invalid value")
	// ErrUnsupported is returned when an algorithm is requested for a
	// dimension it does not support (e.g. whv_rect with d != 2, EAF with
	// d >= 4).
	ErrUnsupported = errors.New("moocore: unsupported dimension")
)
