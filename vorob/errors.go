package vorob

import "errors"

var (
	// ErrEmptyFamily is returned when zero sets are supplied.
	ErrEmptyFamily = errors.New("vorob: at least one set is required")
	// ErrUnsupportedDimension is returned when ref is not 2-dimensional;
	// the bisection rests on eaf.EAF2D, which is 2D only.
	ErrUnsupportedDimension = errors.New("vorob: only 2D is supported")
)
