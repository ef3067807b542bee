// Package moocore is the public front-end of the module: it validates
// shapes and finiteness, folds a caller-supplied maximise mask into a
// locally negated copy before handing off to the minimisation-only
// engines in the sibling packages, and translates each engine's own
// error variety into the taxonomy documented below.
//
// Every function here is a pure dispatcher: it never mutates a caller's
// slice (Normalise is the one documented exception, and only when the
// caller opts into an in-place destination via WithDest) and holds no
// state between calls. Optional parameters (maximise, keep-weakly,
// sample counts, seeds, percentile intervals, ...) are expressed as
// functional Options, following the WithXxx(...) closure-over-struct
// convention used elsewhere in this module's ancestry.
//
// Errors:
//
//	ErrInvalidShape    - input arrays have inconsistent dimensions.
//	ErrInvalidValue    - non-finite numbers, negative sample counts, an
//	                     out-of-range scalefactor, or epsilon_mult on
//	                     non-positive inputs.
//	ErrUnsupported     - the requested d is not supported by the engine
//	                     (e.g. whv_rect/whv_hype/EAF beyond their bound).
//
// Hypervolume overflow is not an error: it surfaces as an indicator
// value of +Inf, per the engines' own documented contract.
package moocore
