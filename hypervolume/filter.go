package hypervolume

// filterStrictlyDominating returns the subset of points (n*d row-major)
// whose every coordinate is strictly less than the matching ref coordinate.
// Points that touch or exceed ref on any axis contribute zero volume and
// are safe to discard before any HV algorithm runs.
func filterStrictlyDominating(points []float64, d int, ref []float64) []float64 {
	n := len(points) / d
	out := make([]float64, 0, len(points))
	for i := 0; i < n; i++ {
		row := points[i*d : i*d+d]
		ok := true
		for j := 0; j < d; j++ {
			if row[j] >= ref[j] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, row...)
		}
	}
	return out
}
