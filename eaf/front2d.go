package eaf

import "sort"

type point2D struct{ x, y float64 }

// front2D reduces flat (n*2 row-major) to its nondominated front under
// minimisation, sorted ascending by x with strictly decreasing y — the
// staircase representation every sweep in this package consumes.
func front2D(flat []float64) []point2D {
	n := len(flat) / 2
	pts := make([]point2D, n)
	for i := 0; i < n; i++ {
		pts[i] = point2D{flat[i*2], flat[i*2+1]}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].x != pts[j].x {
			return pts[i].x < pts[j].x
		}
		return pts[i].y < pts[j].y
	})
	front := pts[:0:0]
	runningMin := float64(0)
	first := true
	for _, p := range pts {
		if !first && p.y >= runningMin {
			continue // dominated by an earlier, more advanced point
		}
		front = append(front, p)
		runningMin = p.y
		first = false
	}
	return front
}
