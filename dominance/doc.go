// Package dominance implements Pareto dominance testing, filtering and
// non-dominated sorting over minimisation-oriented point sets. All
// functions assume orientation has already been folded by the caller
// (maximised columns negated); this package only ever compares for
// minimisation.
//
// Dominance (a ≺ b): a[i] <= b[i] for every coordinate i, and a[i] < b[i]
// for at least one i.
//
// Errors:
//
//	ErrDimensionMismatch - points length is not a multiple of d, or d<=0.
//	ErrSetsLengthMismatch - sets slice length does not match point count.
package dominance

import "errors"

// ErrDimensionMismatch indicates the input slice length is not a multiple
// of d, or d <= 0.
var ErrDimensionMismatch = errors.New("dominance: dimension mismatch")

// ErrSetsLengthMismatch indicates the sets slice does not have one entry
// per point.
var ErrSetsLengthMismatch = errors.New("dominance: sets length mismatch")
