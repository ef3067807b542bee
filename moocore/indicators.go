package moocore

import "github.com/mooctools/moocore/indicators"

// IGD computes the average nearest-point Euclidean distance from the
// reference set r to the approximation set x.
func IGD(x, r []float64, d int, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(x, d); err != nil {
		return 0, err
	}
	if err := validateMatrix(r, d); err != nil {
		return 0, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return 0, err
	}
	v, err := indicators.IGD(foldMatrix(x, d, o.maximise), foldMatrix(r, d, o.maximise), d)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// IGDPlus computes the Pareto-compliant variant of IGD using the
// dominated-direction distance.
func IGDPlus(x, r []float64, d int, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(x, d); err != nil {
		return 0, err
	}
	if err := validateMatrix(r, d); err != nil {
		return 0, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return 0, err
	}
	v, err := indicators.IGDPlus(foldMatrix(x, d, o.maximise), foldMatrix(r, d, o.maximise), d)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// AvgHausdorffDist computes the average Hausdorff distance of order p
// between x and r.
func AvgHausdorffDist(x, r []float64, d int, p float64, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(x, d); err != nil {
		return 0, err
	}
	if err := validateMatrix(r, d); err != nil {
		return 0, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return 0, err
	}
	v, err := indicators.AvgHausdorffDist(foldMatrix(x, d, o.maximise), foldMatrix(r, d, o.maximise), d, p)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// EpsilonAdditive computes min{eps : every row of r is weakly dominated
// by some row of x shifted by -eps}.
func EpsilonAdditive(x, r []float64, d int, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(x, d); err != nil {
		return 0, err
	}
	if err := validateMatrix(r, d); err != nil {
		return 0, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return 0, err
	}
	v, err := indicators.EpsilonAdditive(foldMatrix(x, d, o.maximise), foldMatrix(r, d, o.maximise), d)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// EpsilonMult computes the multiplicative analogue of EpsilonAdditive;
// it requires strictly positive inputs.
func EpsilonMult(x, r []float64, d int, opts ...Option) (float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(x, d); err != nil {
		return 0, err
	}
	if err := validateMatrix(r, d); err != nil {
		return 0, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return 0, err
	}
	v, err := indicators.EpsilonMult(foldMatrix(x, d, o.maximise), foldMatrix(r, d, o.maximise), d)
	if err != nil {
		return 0, translateErr(err)
	}
	return v, nil
}

// Normalise maps each of x's d columns affinely onto toRange. With
// WithDest(dest), the result is written into dest (which must have the
// same length as x) and dest is returned; otherwise a fresh copy of x is
// allocated, normalised, and returned, leaving x untouched. lower/upper
// supply explicit per-column source bounds (nil means "use x's own
// per-column min/max").
func Normalise(x []float64, d int, toRange [2]float64, lower, upper []float64, opts ...Option) ([]float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(x, d); err != nil {
		return nil, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return nil, err
	}
	var out []float64
	if o.dest != nil {
		if len(o.dest) != len(x) {
			return nil, ErrInvalidShape
		}
		copy(o.dest, x)
		out = o.dest
	} else {
		out = make([]float64, len(x))
		copy(out, x)
	}
	if err := indicators.Normalise(out, d, toRange, lower, upper, o.maximise); err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}
