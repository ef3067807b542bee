package moocore

import (
	"errors"
	"fmt"

	"github.com/mooctools/moocore/dominance"
	"github.com/mooctools/moocore/eaf"
	"github.com/mooctools/moocore/hvapprox"
	"github.com/mooctools/moocore/hypervolume"
	"github.com/mooctools/moocore/indicators"
	"github.com/mooctools/moocore/manifold"
	"github.com/mooctools/moocore/vorob"
	"github.com/mooctools/moocore/whv"
)

// translateErr maps every sibling package's own sentinel errors onto this
// package's taxonomy (ErrInvalidShape / ErrInvalidValue / ErrUnsupported),
// wrapping with %w so errors.Is against either the moocore sentinel or
// the original engine sentinel both succeed.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, hypervolume.ErrInvalidDimension),
		errors.Is(err, hypervolume.ErrDimensionMismatch),
		errors.Is(err, hvapprox.ErrInvalidDimension),
		errors.Is(err, hvapprox.ErrDimensionMismatch),
		errors.Is(err, dominance.ErrDimensionMismatch),
		errors.Is(err, dominance.ErrSetsLengthMismatch),
		errors.Is(err, indicators.ErrDimensionMismatch),
		errors.Is(err, indicators.ErrEmptySet),
		errors.Is(err, eaf.ErrEmptyFamily),
		errors.Is(err, whv.ErrInvalidRectangle),
		errors.Is(err, whv.ErrTooFewFamilies),
		errors.Is(err, vorob.ErrEmptyFamily),
		errors.Is(err, manifold.ErrInvalidN),
		errors.Is(err, manifold.ErrInvalidDimension):
		return fmt.Errorf("moocore: %w: %s", ErrInvalidShape, err)

	case errors.Is(err, hvapprox.ErrInvalidSampleCount),
		errors.Is(err, indicators.ErrNonPositiveInput),
		errors.Is(err, whv.ErrInvalidScaleFactor),
		errors.Is(err, whv.ErrInvalidSampleCount),
		errors.Is(err, eaf.ErrInvalidPercentile),
		errors.Is(err, manifold.ErrResampleExhausted):
		return fmt.Errorf("moocore: %w: %s", ErrInvalidValue, err)

	case errors.Is(err, eaf.ErrUnsupportedDimension),
		errors.Is(err, whv.ErrUnsupportedDimension),
		errors.Is(err, vorob.ErrUnsupportedDimension),
		errors.Is(err, manifold.ErrUnsupportedMethod):
		return fmt.Errorf("moocore: %w: %s", ErrUnsupported, err)

	default:
		return err
	}
}
