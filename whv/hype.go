package whv

import (
	"math"

	"github.com/mooctools/moocore/rng"
)

// WeightDistribution selects the sampling density WHVHype integrates
// against: Uniform samples the box [ideal, ref] directly; Exponential and
// Gaussian concentrate the sampling mass around mu and are importance-
// weighted back to an unbiased estimate of the plain box integral.
type WeightDistribution int

const (
	WeightUniform WeightDistribution = iota
	WeightExponential
	WeightGaussian
)

// WHVHype estimates the 2D HypE-style weighted hypervolume of points
// against ref, integrated over the box [ideal, ref]: nsamples draws from
// dist, each counted if dominated by at least one row of points and
// importance-weighted by the inverse of its sampling density, giving an
// unbiased Monte-Carlo estimate of the measure of the dominated region
// scaled by box volume.
//
// mu (length 2) is required for WeightExponential and WeightGaussian and
// ignored for WeightUniform.
//
// Complexity: O(n*nsamples), n=len(points)/2.
func WHVHype(points []float64, ref, ideal []float64, nsamples int, seed uint32, dist WeightDistribution, mu []float64) (float64, error) {
	if len(ref) != 2 || len(ideal) != 2 {
		return 0, ErrUnsupportedDimension
	}
	if ref[0] <= ideal[0] || ref[1] <= ideal[1] {
		return 0, ErrInvalidRectangle
	}
	if len(points)%2 != 0 {
		return 0, ErrUnsupportedDimension
	}
	if nsamples <= 0 {
		return 0, ErrInvalidSampleCount
	}
	if (dist == WeightExponential || dist == WeightGaussian) && len(mu) != 2 {
		return 0, ErrUnsupportedDimension
	}

	n := len(points) / 2
	volume := (ref[0] - ideal[0]) * (ref[1] - ideal[1])

	mt := rng.NewMT19937(seed)
	normal := rng.NewNormal(mt)

	var weightedDominated, weightedTotal float64
	for s := 0; s < nsamples; s++ {
		x, y, density := sampleHype(mt, normal, dist, ideal, ref, mu)
		w := 1.0 / density
		weightedTotal += w
		if pointDominated(points, n, x, y) {
			weightedDominated += w
		}
	}
	if weightedTotal == 0 {
		return 0, nil
	}
	return volume * weightedDominated / weightedTotal, nil
}

func pointDominated(points []float64, n int, x, y float64) bool {
	for i := 0; i < n; i++ {
		if points[i*2] <= x && points[i*2+1] <= y {
			return true
		}
	}
	return false
}

// sampleHype draws one (x, y) in [ideal, ref] under dist (rejecting and
// redrawing raw tail samples that fall outside the box) and returns the
// density of dist at that point, so the caller can importance-weight the
// draw back to a uniform integral over the box.
func sampleHype(mt *rng.MT19937, normal *rng.Normal, dist WeightDistribution, ideal, ref, mu []float64) (x, y, density float64) {
	switch dist {
	case WeightExponential:
		rate0, rate1 := 1/mu[0], 1/mu[1]
		for {
			x = ideal[0] + rng.Exponential(mt, rate0)
			y = ideal[1] + rng.Exponential(mt, rate1)
			if x <= ref[0] && y <= ref[1] {
				break
			}
		}
		density = rate0 * math.Exp(-rate0*(x-ideal[0])) * rate1 * math.Exp(-rate1*(y-ideal[1]))
	case WeightGaussian:
		sigma0 := (ref[0] - ideal[0]) / 4
		sigma1 := (ref[1] - ideal[1]) / 4
		for {
			x = mu[0] + normal.Next()*sigma0
			y = mu[1] + normal.Next()*sigma1
			if x >= ideal[0] && x <= ref[0] && y >= ideal[1] && y <= ref[1] {
				break
			}
		}
		density = gaussDensity(x, mu[0], sigma0) * gaussDensity(y, mu[1], sigma1)
	default:
		x = ideal[0] + mt.Float64()*(ref[0]-ideal[0])
		y = ideal[1] + mt.Float64()*(ref[1]-ideal[1])
		density = 1.0 / ((ref[0] - ideal[0]) * (ref[1] - ideal[1]))
	}
	return x, y, density
}

func gaussDensity(v, mean, sigma float64) float64 {
	z := (v - mean) / sigma
	return math.Exp(-0.5*z*z) / (sigma * math.Sqrt(2*math.Pi))
}
