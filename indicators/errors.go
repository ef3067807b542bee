package indicators

import "errors"

var (
	// ErrDimensionMismatch is returned when X and R disagree on column count.
	ErrDimensionMismatch = errors.New("indicators: X and R must share a column count")
	// ErrEmptySet is returned when X or R has zero rows.
	ErrEmptySet = errors.New("indicators: point sets must be non-empty")
	// ErrNonPositiveInput is returned by epsilon_mult when a coordinate is not
	// strictly positive.
	ErrNonPositiveInput = errors.New("indicators: epsilon_mult requires strictly positive inputs")
)
