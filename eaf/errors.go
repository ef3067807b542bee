package eaf

import "errors"

var (
	// ErrEmptyFamily is returned when zero sets are supplied.
	ErrEmptyFamily = errors.New("eaf: at least one set is required")
	// ErrInvalidPercentile is returned for a requested percentile outside (0, 100].
	ErrInvalidPercentile = errors.New("eaf: percentile must be in (0, 100]")
	// ErrUnsupportedDimension is returned for EAF requested at d not in {2, 3}.
	ErrUnsupportedDimension = errors.New("eaf: only 2D and 3D are supported")
)
