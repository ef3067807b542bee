package moocore

import "github.com/mooctools/moocore/dominance"

// IsNondominated reports, for each row of points, whether it is part of
// the maximal antichain under componentwise dominance. WithKeepWeakly(true)
// keeps every copy of a duplicated nondominated point; the default (false)
// keeps only the first row of each group of identical points. WithMaximise folds
// orientation as in HV.
func IsNondominated(points []float64, d int, opts ...Option) ([]bool, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(points, d); err != nil {
		return nil, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return nil, err
	}
	p := foldMatrix(points, d, o.maximise)
	mask, err := dominance.IsNondominated(p, d, o.keepWeakly)
	if err != nil {
		return nil, translateErr(err)
	}
	return mask, nil
}

// FilterDominated returns the rows of points selected by IsNondominated,
// in their original orientation.
func FilterDominated(points []float64, d int, opts ...Option) ([]float64, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(points, d); err != nil {
		return nil, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return nil, err
	}
	p := foldMatrix(points, d, o.maximise)
	filtered, err := dominance.FilterDominated(p, d, o.keepWeakly)
	if err != nil {
		return nil, translateErr(err)
	}
	// Undo the orientation fold (negation is its own inverse) so the
	// caller sees rows in the original, unfolded coordinates.
	return foldMatrix(filtered, d, o.maximise), nil
}

// ParetoRank assigns rank 0 to the first (nondominated) front, peeling
// successive fronts off the remainder; duplicates share a rank.
func ParetoRank(points []float64, d int, opts ...Option) ([]int32, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(points, d); err != nil {
		return nil, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return nil, err
	}
	p := foldMatrix(points, d, o.maximise)
	ranks, err := dominance.ParetoRank(p, d)
	if err != nil {
		return nil, translateErr(err)
	}
	return ranks, nil
}

// IsNondominatedWithinSets groups rows of points by sets (in first-
// occurrence order of distinct values) and runs IsNondominated within
// each group independently, returning a flat mask aligned with input
// row order.
func IsNondominatedWithinSets(points []float64, d int, sets []int, opts ...Option) ([]bool, error) {
	o := resolveOptions(opts)
	if err := validateMatrix(points, d); err != nil {
		return nil, err
	}
	if err := validateMaximise(o.maximise, d); err != nil {
		return nil, err
	}
	p := foldMatrix(points, d, o.maximise)
	mask, err := dominance.IsNondominatedWithinSets(p, d, sets)
	if err != nil {
		return nil, translateErr(err)
	}
	return mask, nil
}
