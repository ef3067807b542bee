// Package indicators computes unary quality indicators comparing an
// approximation set X against a reference set R, both n*d row-major
// under minimisation.
//
// igd(X, R) = mean_{r in R} min_{x in X} ||x - r||_2.
//
// igd_plus(X, R) = mean_{r in R} min_{x in X} d+(x, r), where d+ restricts
// the Euclidean distance to the dominated-direction components:
// d+(x, r) = sqrt(sum_i max(x_i - r_i, 0)^2).
//
// avg_hausdorff_dist(X, R, p) = max(mean_p(d(x,R): x in X), mean_p(d(r,X): r in R))
// where mean_p(v) = (mean(|v|^p))^(1/p) and d(a, S) = min_{s in S} ||a - s||_2.
//
// epsilon_additive(X, R) = max_{r in R} min_{x in X} max_i(x_i - r_i).
//
// epsilon_mult(X, R) = max_{r in R} min_{x in X} max_i(x_i / r_i); X and R
// must be strictly positive.
//
// Normalise maps X's columns onto toRange affinely, using caller-supplied
// or computed per-column bounds; maximised columns have their mapped
// range swapped. It is the one documented operation in this package
// allowed to mutate its input in place.
//
// Errors:
//
//	ErrDimensionMismatch - X/R column count disagreement.
//	ErrEmptySet          - X or R has zero rows.
//	ErrNonPositiveInput  - epsilon_mult called with a non-positive value.
package indicators
