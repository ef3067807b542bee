package hypervolume

import "github.com/mooctools/moocore/dominance"

// HVContributions returns, for each of the n=len(points)/d rows, its
// marginal hypervolume contribution hv(X)-hv(X\{x_i}). Dominated points
// and all but one representative of a group of duplicate points receive
// exactly 0, per spec.md's invariant that contributions sum to hv(X) iff
// X is mutually nondominated and duplicate-free.
//
// Complexity: O(n) calls to HV, i.e. O(n) times the cost of a single HV
// call — acceptable for the moderate n this library targets (spec.md
// explicitly allows this naive approach).
func HVContributions(points []float64, d int, ref []float64) ([]float64, error) {
	total, err := HV(points, d, ref)
	if err != nil {
		return nil, err
	}
	n := len(points) / d
	mask, err := dominance.IsNondominated(points, d, false)
	if err != nil {
		return nil, err
	}
	contrib := make([]float64, n)
	rest := make([]float64, 0, len(points))
	for i := 0; i < n; i++ {
		if !mask[i] {
			continue
		}
		rest = rest[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			rest = append(rest, points[j*d:j*d+d]...)
		}
		withoutI, err := HV(rest, d, ref)
		if err != nil {
			return nil, err
		}
		contrib[i] = total - withoutI
	}
	return contrib, nil
}
