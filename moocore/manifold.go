package moocore

import "github.com/mooctools/moocore/manifold"

// GenerateNDSet draws n distinct, mutually nondominated points in
// [0,1]^d (or the integer lattice if integer is true) using method,
// seeded by WithSeed (default 1).
func GenerateNDSet(n, d int, method manifold.Method, integer bool, opts ...Option) ([]float64, error) {
	o := resolveOptions(opts)
	out, err := manifold.GenerateNDSet(n, d, method, o.seed, integer)
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

// QuantiseInt maps each coordinate of a [0,1]^d point set onto the
// integer lattice {0, ..., 2^31-1}.
func QuantiseInt(points []float64) []float64 {
	return manifold.QuantiseInt(points)
}
