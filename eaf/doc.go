// Package eaf computes the Empirical Attainment Function (EAF) of a
// family of 2D or 3D point sets, and differences between two families.
//
// Given k sets, the level-p attainment surface is the boundary of the
// region attained (weakly dominated) by at least ceil(p*k/100) sets. The
// 2D engine sweeps ascending on x while maintaining, per input set, the
// lowest y attained so far; the order statistics of those k running
// thresholds are the requested levels' y-coordinates at the current x,
// maintained in an avlset.Tree multiset via Select/FindFirst. The 3D
// engine layers the 2D sweep per distinct z-slab.
//
// EAFDiff computes the signed difference in attaining-set counts between two
// families across the same sweep, optionally decomposed into disjoint
// same-colour rectangles with an open (+Inf) top/right side.
//
// Errors:
//
//	ErrEmptyFamily     - zero sets supplied.
//	ErrInvalidPercentile - a requested percentile outside (0, 100].
//	ErrUnsupportedDimension - EAF requested for d not in {2, 3}.
package eaf
