// Package manifold draws uniformly distributed, mutually nondominated
// point sets on standard manifolds in [0,1]^d: the simplex (and a convex
// variant of it) and the positive-orthant unit sphere (concave, and its
// convex mirror).
//
// Each method starts from a uniform draw on the manifold's natural
// parameterisation (sorted uniforms for the simplex, normalised absolute
// normals for the sphere) and, where the spec calls for a convex variant,
// applies a fixed strictly monotone elementwise transform. Because the
// same strictly monotone function is applied to every point's matching
// coordinate, componentwise dominance between any two points is either
// preserved or reversed by the transform, so nondominance survives it.
//
// QuantiseInt maps a [0,1] front to an integer lattice {0, ..., 2^31-1}
// by rounding; it does not resample, so close inputs can collide. It is
// used by GenerateNDSet when integer output is requested, which redraws
// points on collision so its result stays duplicate-free, and is exposed
// standalone for externally generated fronts.
//
// Errors:
//
//	ErrInvalidN - n <= 0.
//	ErrInvalidDimension - d < 2.
//	ErrUnsupportedMethod - an unrecognised Method value.
package manifold
