package hypervolume

// hv1D returns max(0, ref0 - min(x)) for the (already ref-filtered) 1D
// points, or 0 when points is empty.
func hv1D(points []float64, ref0 float64) float64 {
	if len(points) == 0 {
		return 0
	}
	min := points[0]
	for _, v := range points[1:] {
		if v < min {
			min = v
		}
	}
	if ref0-min < 0 {
		return 0
	}
	return ref0 - min
}
