package manifold

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mooctools/moocore/rng"
)

// maxResampleAttempts bounds the retries GenerateNDSet spends redrawing a
// point that collides with one already chosen, before giving up.
const maxResampleAttempts = 10000

// GenerateNDSet draws n distinct, mutually nondominated points in
// [0,1]^d (or the integer lattice, if integer is true) using method,
// seeded deterministically by seed.
//
// Complexity: O(n*d) expected; collisions in continuous [0,1]^d are rare
// and bounded by maxResampleAttempts, which only matters in integer mode
// at small lattice sizes.
func GenerateNDSet(n, d int, method Method, seed uint32, integer bool) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidN
	}
	if d < 2 {
		return nil, ErrInvalidDimension
	}
	switch method {
	case Simplex, ConcaveSphere, ConvexSphere, ConvexSimplex:
	default:
		return nil, ErrUnsupportedMethod
	}

	mt := rng.NewMT19937(seed)
	normal := rng.NewNormal(mt)

	seen := make(map[string]struct{}, n)
	out := make([]float64, 0, n*d)

	for i := 0; i < n; i++ {
		point, err := drawDistinct(mt, normal, d, method, integer, seen)
		if err != nil {
			return nil, err
		}
		out = append(out, point...)
	}
	return out, nil
}

func drawDistinct(mt *rng.MT19937, normal *rng.Normal, d int, method Method, integer bool, seen map[string]struct{}) ([]float64, error) {
	for attempt := 0; attempt < maxResampleAttempts; attempt++ {
		raw := drawOne(mt, normal, d, method)
		candidate := raw
		if integer {
			candidate = QuantiseInt(raw)
		}
		k := encodeKey(candidate)
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			return candidate, nil
		}
	}
	return nil, ErrResampleExhausted
}

func drawOne(mt *rng.MT19937, normal *rng.Normal, d int, method Method) []float64 {
	switch method {
	case ConvexSimplex:
		p := sampleSimplex(mt, d)
		for i := range p {
			p[i] = p[i] * p[i]
		}
		return p
	case ConcaveSphere:
		return sampleSphereOrthant(normal, d)
	case ConvexSphere:
		p := sampleSphereOrthant(normal, d)
		for i := range p {
			p[i] = 1 - p[i]
		}
		return p
	default: // Simplex
		return sampleSimplex(mt, d)
	}
}

// sampleSimplex draws one point uniformly on the standard d-1 simplex by
// sorting d-1 uniform cuts of [0,1] and taking consecutive differences.
func sampleSimplex(mt *rng.MT19937, d int) []float64 {
	cuts := make([]float64, d+1)
	cuts[d] = 1
	for i := 1; i < d; i++ {
		cuts[i] = mt.Float64()
	}
	sort.Float64s(cuts[1:d])
	out := make([]float64, d)
	for i := 0; i < d; i++ {
		out[i] = cuts[i+1] - cuts[i]
	}
	return out
}

// sampleSphereOrthant draws one point uniformly on the positive-orthant
// unit sphere by normalising d independent absolute-normal draws.
func sampleSphereOrthant(normal *rng.Normal, d int) []float64 {
	v := make([]float64, d)
	var sumSq float64
	for i := 0; i < d; i++ {
		x := math.Abs(normal.Next())
		v[i] = x
		sumSq += x * x
	}
	norm := math.Sqrt(sumSq)
	for i := range v {
		v[i] /= norm
	}
	return v
}

func encodeKey(p []float64) string {
	var b strings.Builder
	for _, v := range p {
		b.WriteString(strconv.FormatFloat(v, 'g', 15, 64))
		b.WriteByte(',')
	}
	return b.String()
}
