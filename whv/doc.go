// Package whv computes weighted-hypervolume indicators: whv_rect and
// total_whv_rect (both 2D only, weighted by an explicit rectangle set),
// whv_hype (2D only, weighted by a sampled distribution), and
// largest_eafdiff (the pair of sets whose attainment difference carries
// the largest weighted hypervolume).
//
// whv_rect sums, over each input rectangle, the weight times the area of
// that rectangle intersected with the region dominated by at least one
// point of X within [-Inf, ref] — i.e. the same staircase union region
// used by the exact 2D hypervolume, clipped per rectangle. Rectangles
// open on the top/right use +Inf for hix/hiy.
//
// total_whv_rect returns hv(X, ref) + scalefactor * |prod(ref-ideal)| *
// whv_rect(X, rectangles, ref).
//
// whv_hype estimates the same kind of weighted measure without an
// explicit rectangle set: it importance-samples the box [ideal, ref]
// under a uniform, exponential, or Gaussian density and scores the
// fraction of sampled mass dominated by X.
//
// largest_eafdiff searches all pairs of families for the one whose
// EAFDiff rectangle decomposition carries the largest weighted
// hypervolume on both sides of the sign split, using whv_rect against
// the degenerate point set {ideal}.
//
// Errors:
//
//	ErrUnsupportedDimension - d != 2.
//	ErrInvalidRectangle     - a rectangle with lox>=hix, loy>=hiy, or w<=0.
//	ErrInvalidScaleFactor   - scalefactor outside (0, 1].
//	ErrInvalidSampleCount   - whv_hype given nsamples <= 0.
//	ErrTooFewFamilies       - largest_eafdiff given fewer than two families.
package whv
