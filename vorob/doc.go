// Package vorob computes Vorob'ev statistics over a family of 2D point
// sets, derived from the empirical attainment function: the threshold
// percentile whose attainment surface has a hypervolume matching the
// family's average, the expectation set at that threshold, and the
// deviation of the family around it.
//
// Threshold bisects over the percentile argument of eaf.EAF2D until the
// hypervolume of the resulting level curve matches the mean hypervolume
// of the input sets, stopping once two successive bisection steps yield
// the same hypervolume (the percentile granularity bottoms out before
// float64 precision does).
//
// Deviation measures the hypervolume of the symmetric difference between
// the family and the Vorob'ev expectation set, approximated as
// 2*mean(hv(ve union X_s)) - mean(hv(X_s)) - hv(ve).
//
// Errors:
//
//	ErrEmptyFamily - zero sets supplied.
//	ErrUnsupportedDimension - ref is not 2-dimensional.
package vorob
