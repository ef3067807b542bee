package vorob

import "github.com/mooctools/moocore/hypervolume"

// Deviation computes the Vorob'ev deviation of sets around ve: the
// hypervolume of the symmetric difference between the family and ve,
// approximated as 2*mean_s(hv(ve union X_s, ref)) - mean_s(hv(X_s, ref))
// - hv(ve, ref). If ve is nil, it is computed via Threshold first.
//
// Complexity: O(k * HV(n)), k = len(sets).
func Deviation(sets [][]float64, ref []float64, ve []float64) (float64, error) {
	if len(ref) != 2 {
		return 0, ErrUnsupportedDimension
	}
	if len(sets) == 0 {
		return 0, ErrEmptyFamily
	}
	if ve == nil {
		res, err := Threshold(sets, ref)
		if err != nil {
			return 0, err
		}
		ve = res.VE
	}

	veHV, err := hypervolume.HV(ve, 2, ref)
	if err != nil {
		return 0, err
	}

	var sumUnion, sumSet float64
	for _, s := range sets {
		union := make([]float64, 0, len(ve)+len(s))
		union = append(union, ve...)
		union = append(union, s...)
		uHV, err := hypervolume.HV(union, 2, ref)
		if err != nil {
			return 0, err
		}
		sumUnion += uHV

		sHV, err := hypervolume.HV(s, 2, ref)
		if err != nil {
			return 0, err
		}
		sumSet += sHV
	}
	n := float64(len(sets))
	return 2*sumUnion/n - sumSet/n - veHV, nil
}
