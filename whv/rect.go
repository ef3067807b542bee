package whv

import (
	"math"
	"sort"

	"github.com/mooctools/moocore/hypervolume"
)

// Rectangle is one weighted rectangle (lox, loy, hix, hiy, w) with w>0;
// hix or hiy may be +Inf for an open top/right side.
type Rectangle struct {
	LoX, LoY, HiX, HiY, W float64
}

func validateRectangles(rects []Rectangle) error {
	for _, r := range rects {
		if r.LoX >= r.HiX || r.LoY >= r.HiY || r.W <= 0 {
			return ErrInvalidRectangle
		}
	}
	return nil
}

type stripFront struct {
	x0 []float64 // ascending, strip left edges
	y  []float64 // running-min y per strip
}

// buildFront reduces points (n*2 row-major) to the strip decomposition of
// the region it weakly dominates within [-Inf, ref]: ascending x breaks
// and, for each break, the y floor of the dominated region from that x
// onward.
func buildFront(points []float64) stripFront {
	n := len(points) / 2
	type pt struct{ x, y float64 }
	pts := make([]pt, n)
	for i := 0; i < n; i++ {
		pts[i] = pt{points[i*2], points[i*2+1]}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].x != pts[j].x {
			return pts[i].x < pts[j].x
		}
		return pts[i].y < pts[j].y
	})
	var f stripFront
	runningMin := math.Inf(1)
	for _, p := range pts {
		if p.y < runningMin {
			runningMin = p.y
			f.x0 = append(f.x0, p.x)
			f.y = append(f.y, runningMin)
		}
	}
	return f
}

// WHVRect computes whv_rect(X, rectangles, ref): for each rectangle, the
// weight times the area of that rectangle intersected with the region
// dominated by X within [-Inf, ref], summed over rectangles.
//
// Complexity: O(n log n + n*m), n=len(points)/2, m=len(rectangles).
func WHVRect(points []float64, rectangles []Rectangle, ref []float64) (float64, error) {
	if len(ref) != 2 {
		return 0, ErrUnsupportedDimension
	}
	if len(points)%2 != 0 {
		return 0, ErrUnsupportedDimension
	}
	if err := validateRectangles(rectangles); err != nil {
		return 0, err
	}
	if len(points) == 0 {
		return 0, nil
	}
	front := buildFront(points)
	n := len(front.x0)

	var total float64
	for _, r := range rectangles {
		var sub float64
		for i := 0; i < n; i++ {
			stripLo := front.x0[i]
			stripHi := ref[0]
			if i+1 < n {
				stripHi = front.x0[i+1]
			}
			xLo := math.Max(stripLo, r.LoX)
			xHi := math.Min(stripHi, r.HiX)
			xOverlap := xHi - xLo
			if xOverlap <= 0 {
				continue
			}
			yLo := math.Max(front.y[i], r.LoY)
			yHi := math.Min(ref[1], r.HiY)
			yOverlap := yHi - yLo
			if yOverlap <= 0 {
				continue
			}
			sub += xOverlap * yOverlap
		}
		total += r.W * sub
	}
	return total, nil
}

// TotalWHVRect returns hv(X, ref) + scalefactor*|prod(ref-ideal)|*whv_rect(X, rectangles, ref).
//
// Complexity: O(n log n + n*m).
func TotalWHVRect(points []float64, rectangles []Rectangle, ref, ideal []float64, scalefactor float64) (float64, error) {
	if scalefactor <= 0 || scalefactor > 1 {
		return 0, ErrInvalidScaleFactor
	}
	if len(ideal) != 2 || len(ref) != 2 {
		return 0, ErrUnsupportedDimension
	}
	hv, err := hypervolume.HV(points, 2, ref)
	if err != nil {
		return 0, err
	}
	whv, err := WHVRect(points, rectangles, ref)
	if err != nil {
		return 0, err
	}
	prod := math.Abs((ref[0] - ideal[0]) * (ref[1] - ideal[1]))
	return hv + scalefactor*prod*whv, nil
}
