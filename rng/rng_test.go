package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMT19937Determinism(t *testing.T) {
	a := NewMT19937(42)
	b := NewMT19937(42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Uint32(), b.Uint32())
	}
}

func TestMT19937FloatRange(t *testing.T) {
	m := NewMT19937(1)
	for i := 0; i < 10000; i++ {
		v := m.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestUintBelowRange(t *testing.T) {
	m := NewMT19937(7)
	for i := 0; i < 5000; i++ {
		v := m.UintBelow(17)
		assert.Less(t, v, uint32(17))
	}
}

func TestNormalMeanAndVariance(t *testing.T) {
	m := NewMT19937(99)
	g := NewNormal(m)
	const n = 200000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		x := g.Next()
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	assert.InDelta(t, 0.0, mean, 0.05)
	assert.InDelta(t, 1.0, variance, 0.05)
}

func TestExponentialMean(t *testing.T) {
	m := NewMT19937(5)
	const rate = 2.5
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += Exponential(m, rate)
	}
	assert.InDelta(t, 1/rate, sum/n, 0.02)
}

func TestHaltonWeylDeterministicAndBounded(t *testing.T) {
	for i := uint64(0); i < 500; i++ {
		v1 := HaltonWeyl(4, i)
		v2 := HaltonWeyl(4, i)
		assert.Equal(t, v1, v2)
		for _, x := range v1 {
			assert.GreaterOrEqual(t, x, 0.0)
			assert.Less(t, x, 1.0)
			assert.False(t, math.IsNaN(x))
		}
	}
}

func TestHaltonWeylDimensionPanics(t *testing.T) {
	assert.Panics(t, func() { HaltonWeyl(0, 0) })
	assert.Panics(t, func() { HaltonWeyl(MaxHaltonDim()+1, 0) })
}
