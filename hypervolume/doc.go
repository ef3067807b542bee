// Package hypervolume computes the exact Lebesgue measure dominated by a
// point set and bounded above by a reference point (minimisation-oriented;
// orientation folding happens one layer up, in package moocore).
//
// HV(X, ref) = volume of { y : exists x in X, x <= y <= ref, x != ref }.
//
// Algorithm selection by dimension d:
//
//	d=1: trivial max(0, ref[0]-min(x)).
//	d=2: ascending sort + running-minimum sweep, O(n log n).
//	d=3: sweep along the third coordinate, maintaining the 2D
//	     nondominated staircase of already-seen points in an
//	     avlset.Tree keyed by the first coordinate (HV3D+ in spec.md).
//	d>=4: recursive slicing on the last coordinate, bottoming out at the
//	     d=3 (AVL-backed) base case.
//
// Points that do not strictly dominate ref in every coordinate are
// discarded before any of the above runs; they contribute exactly zero
// volume. Floating-point contributions are summed in the order produced
// by each sweep and never reordered for associativity, per spec.md §5.
//
// Errors:
//
//	ErrDimensionMismatch - points/ref length inconsistent with d.
//	ErrInvalidDimension  - d <= 0.
package hypervolume
