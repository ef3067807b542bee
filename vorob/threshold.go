package vorob

import (
	"math"

	"github.com/mooctools/moocore/eaf"
	"github.com/mooctools/moocore/hypervolume"
)

// minPercentile is the smallest percentile EAF2D accepts; bisection's
// lower bound is clamped to it rather than 0 since the percentile
// argument is defined on (0, 100].
const minPercentile = 1e-6

// Result is the outcome of Threshold: the bisected percentile, the
// attainment surface at that percentile (the Vorob'ev expectation set),
// and the family's mean hypervolume the bisection targeted.
type Result struct {
	Threshold float64
	VE        []float64
	AvgHyp    float64
}

// Threshold computes the Vorob'ev threshold of sets against ref: the
// percentile c in [0, 100] such that hv(EAF2D(sets, c), ref) is as close
// as bisection search can get it to the mean hypervolume of the
// individual sets. Bisection halts when two successive midpoints produce
// the same hypervolume value.
//
// Complexity: O(I * (N log k)), I the number of bisection iterations
// (bounded, at most 64), N the total point count, k = len(sets).
func Threshold(sets [][]float64, ref []float64) (Result, error) {
	if len(ref) != 2 {
		return Result{}, ErrUnsupportedDimension
	}
	if len(sets) == 0 {
		return Result{}, ErrEmptyFamily
	}

	var sumHV float64
	for _, s := range sets {
		hv, err := hypervolume.HV(s, 2, ref)
		if err != nil {
			return Result{}, err
		}
		sumHV += hv
	}
	avgHyp := sumHV / float64(len(sets))

	lo, hi := minPercentile, 100.0
	lastHV := math.NaN()
	var ve []float64
	c := hi
	for iter := 0; iter < 64; iter++ {
		c = (lo + hi) / 2
		levels, err := eaf.EAF2D(sets, []float64{c})
		if err != nil {
			return Result{}, err
		}
		ve = levels[0].Points
		hv, err := hypervolume.HV(ve, 2, ref)
		if err != nil {
			return Result{}, err
		}
		if !math.IsNaN(lastHV) && hv == lastHV {
			break
		}
		lastHV = hv
		// hv(EAF(c)) decreases as c grows (a higher percentile demands
		// more sets attain the region): push c up when the current
		// surface still dominates too much volume, down otherwise.
		if hv > avgHyp {
			lo = c
		} else {
			hi = c
		}
	}
	return Result{Threshold: c, VE: ve, AvgHyp: avgHyp}, nil
}
