package moocore

import "github.com/mooctools/moocore/vorob"

// VorobevThreshold computes the Vorob'ev threshold of a family of 2D
// point sets against ref: the percentile whose attainment surface's
// hypervolume matches the family's mean hypervolume.
func VorobevThreshold(sets [][]float64, ref []float64) (vorob.Result, error) {
	if err := validateVector(ref, 2); err != nil {
		return vorob.Result{}, err
	}
	res, err := vorob.Threshold(sets, ref)
	if err != nil {
		return vorob.Result{}, translateErr(err)
	}
	return res, nil
}

// VorobevDeviation computes the Vorob'ev deviation of sets around ve
// (the Vorob'ev expectation set); if ve is nil it is computed via
// VorobevThreshold first.
func VorobevDeviation(sets [][]float64, ref []float64, ve []float64) (float64, error) {
	if err := validateVector(ref, 2); err != nil {
		return 0, err
	}
	dev, err := vorob.Deviation(sets, ref, ve)
	if err != nil {
		return 0, translateErr(err)
	}
	return dev, nil
}
