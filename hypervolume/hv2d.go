package hypervolume

import "sort"

type point2D struct{ x0, x1 float64 }

// hv2D computes the 2D hypervolume of points (already ref-filtered) against
// ref0, ref1 by sorting ascending on x0 and sweeping with a running minimum
// of x1: the union area covered up to the i-th sorted point's x0 is bounded
// above by ref1 minus the smallest x1 seen among the first i points, which
// makes the algorithm correct even when points contains dominated or
// duplicate rows (they contribute a zero-width or zero-height band).
//
// Complexity: O(n log n).
func hv2D(pts []point2D, ref0, ref1 float64) float64 {
	n := len(pts)
	if n == 0 {
		return 0
	}
	sorted := make([]point2D, n)
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].x0 != sorted[j].x0 {
			return sorted[i].x0 < sorted[j].x0
		}
		return sorted[i].x1 < sorted[j].x1
	})

	var area float64
	runningMin := sorted[0].x1
	for i := 0; i < n; i++ {
		if sorted[i].x1 < runningMin {
			runningMin = sorted[i].x1
		}
		var nextX0 float64
		if i+1 < n {
			nextX0 = sorted[i+1].x0
		} else {
			nextX0 = ref0
		}
		width := nextX0 - sorted[i].x0
		if width <= 0 {
			continue
		}
		area += width * (ref1 - runningMin)
	}
	return area
}
