package moocore

// Option customises a single moocore call. resolveOptions starts from
// nsamples 10000 and seed 1 with every other field at its zero value, and
// each Option overrides one field.
type Option func(*options)

type options struct {
	maximise   []bool
	keepWeakly bool
	nsamples   int
	seed       uint32
	intervals  int
	dist       int // weight distribution selector for WHVHype, see whv.WeightDistribution
	mu         []float64
	dest       []float64
}

func resolveOptions(opts []Option) options {
	o := options{nsamples: 10000, seed: 1}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithMaximise folds the given per-column maximise mask into the call:
// selected columns are negated on a local copy before dispatch, and
// negated back on any returned point-valued result.
func WithMaximise(mask []bool) Option {
	return func(o *options) { o.maximise = mask }
}

// WithKeepWeakly controls whether IsNondominated/FilterDominated keep every
// copy of a duplicated point (true) or only the first row of each group of
// identical points (false, the default).
func WithKeepWeakly(v bool) Option {
	return func(o *options) { o.keepWeakly = v }
}

// WithNSamples sets the number of Monte-Carlo/quasi-Monte-Carlo samples
// for HVMonteCarlo, HVHaltonWeyl, and WHVHype. Default 10000.
func WithNSamples(n int) Option {
	return func(o *options) { o.nsamples = n }
}

// WithSeed sets the deterministic PRNG seed for HVMonteCarlo and
// WHVHype. Default 1.
func WithSeed(seed uint32) Option {
	return func(o *options) { o.seed = seed }
}

// WithIntervals sets the colour scaling for EAFDiff/LargestEAFDiff.
// Default 0 (raw, unscaled integer colour difference).
func WithIntervals(n int) Option {
	return func(o *options) { o.intervals = n }
}

// WithWeightMu sets the centre parameter for WHVHype's exponential and
// Gaussian weight distributions.
func WithWeightMu(mu []float64) Option {
	return func(o *options) { o.mu = mu }
}

// WithDest supplies a caller-owned destination slice for Normalise to
// write into, instead of allocating a new one.
func WithDest(dest []float64) Option {
	return func(o *options) { o.dest = dest }
}
