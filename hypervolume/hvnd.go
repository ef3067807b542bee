package hypervolume

import "sort"

// computeHV dispatches on dimension, recursing for d>=4 by slicing on the
// last coordinate and bottoming out at the d=1/2/3 base cases. points must
// already be filtered to rows that strictly dominate ref (see
// filterStrictlyDominating); ref has length d.
//
// Complexity: O(n log n) for d<=2, O(n^2) for d=3 (see hv3D), and
// recursively O(n * cost(d-1)) for d>=4 — exponential in d in the worst
// case, as is inherent to exact hypervolume computation (spec.md §4.5
// documents d>=10 as intractable; callers should use hvapprox there).
func computeHV(points []float64, d int, ref []float64) float64 {
	n := len(points) / d
	if n == 0 {
		return 0
	}
	switch d {
	case 1:
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = points[i*d]
		}
		return hv1D(col, ref[0])
	case 2:
		pts := make([]point2D, n)
		for i := 0; i < n; i++ {
			pts[i] = point2D{points[i*2], points[i*2+1]}
		}
		return hv2D(pts, ref[0], ref[1])
	case 3:
		pts := make([]point3D, n)
		for i := 0; i < n; i++ {
			pts[i] = point3D{points[i*3], points[i*3+1], points[i*3+2]}
		}
		return hv3D(pts, ref[0], ref[1], ref[2])
	default:
		return hvSliceLastCoord(points, d, ref)
	}
}

// hvSliceLastCoord implements the recursive slicing (HSO-style) algorithm
// for d>=4: sort rows ascending on the last coordinate, and for each run
// of equal last-coordinate values, accumulate the slab volume
// (nextValue-thisValue) * HV_{d-1}(activeRows, ref[:d-1]), where
// activeRows grows monotonically as the sweep advances.
func hvSliceLastCoord(points []float64, d int, ref []float64) float64 {
	n := len(points) / d
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = points[i*d : i*d+d]
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][d-1] < rows[j][d-1] })

	var volume float64
	var active []float64 // row-major, (d-1)-dim
	prevVal := rows[0][d-1]
	i := 0
	first := true
	for i < n {
		j := i
		for j < n && rows[j][d-1] == rows[i][d-1] {
			j++
		}
		if !first {
			volume += (rows[i][d-1] - prevVal) * computeHV(active, d-1, ref[:d-1])
		}
		for k := i; k < j; k++ {
			active = append(active, rows[k][:d-1]...)
		}
		prevVal = rows[i][d-1]
		i = j
		first = false
	}
	volume += (ref[d-1] - prevVal) * computeHV(active, d-1, ref[:d-1])
	return volume
}
