// Package rng provides the deterministic pseudo-random and low-discrepancy
// sequence generators shared by the hypervolume approximation (hvapprox),
// weighted hypervolume (whv), and manifold sampling (manifold) packages.
//
// Two independent generators are provided:
//
//   - MT19937: a 32-bit Mersenne Twister, seeded by an explicit uint32, with
//     uniform, Gaussian (polar method) and exponential (inverse-CDF) samplers
//     layered on top.
//   - HaltonWeyl: a deterministic low-discrepancy sequence in [0,1)^d built
//     from the first d primes (Halton) with a fixed per-dimension Weyl shift,
//     used for quasi-Monte-Carlo estimators.
//
// Contract: given the same seed (or the same (d, i) pair for Halton-Weyl)
// and the same sequence of calls, outputs are bit-identical across
// platforms and Go versions; no generator here calls into crypto/rand,
// time.Now, or any other non-reproducible entropy source.
package rng
