package hvapprox_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooctools/moocore/hvapprox"
)

// These points form a simple staircase front whose exact 2D hypervolume
// (computed independently in the hypervolume package's tests) is 38.
var points2D = []float64{5, 5, 4, 6, 2, 7, 7, 4}
var ref2D = []float64{10, 10}

func TestHVMonteCarlo_ApproximatesExact(t *testing.T) {
	got, err := hvapprox.HVMonteCarlo(points2D, 2, ref2D, 20000, 42)
	require.NoError(t, err)
	assert.InDelta(t, 38.0, got, 3.0)
}

func TestHVMonteCarlo_Deterministic(t *testing.T) {
	a, err := hvapprox.HVMonteCarlo(points2D, 2, ref2D, 500, 7)
	require.NoError(t, err)
	b, err := hvapprox.HVMonteCarlo(points2D, 2, ref2D, 500, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHVHaltonWeyl_ApproximatesExact(t *testing.T) {
	got, err := hvapprox.HVHaltonWeyl(points2D, 2, ref2D, 20000)
	require.NoError(t, err)
	assert.InDelta(t, 38.0, got, 3.0)
}

func TestHVHaltonWeyl_Deterministic(t *testing.T) {
	a, err := hvapprox.HVHaltonWeyl(points2D, 2, ref2D, 500)
	require.NoError(t, err)
	b, err := hvapprox.HVHaltonWeyl(points2D, 2, ref2D, 500)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHVMonteCarlo_InvalidDimension(t *testing.T) {
	_, err := hvapprox.HVMonteCarlo(points2D, 0, ref2D, 10, 1)
	assert.ErrorIs(t, err, hvapprox.ErrInvalidDimension)
}

func TestHVMonteCarlo_DimensionMismatch(t *testing.T) {
	_, err := hvapprox.HVMonteCarlo([]float64{1, 2, 3}, 2, ref2D, 10, 1)
	assert.ErrorIs(t, err, hvapprox.ErrDimensionMismatch)
}

func TestHVMonteCarlo_InvalidSampleCount(t *testing.T) {
	_, err := hvapprox.HVMonteCarlo(points2D, 2, ref2D, 0, 1)
	assert.ErrorIs(t, err, hvapprox.ErrInvalidSampleCount)
}

func TestHVHaltonWeyl_DimensionTooLarge(t *testing.T) {
	_, err := hvapprox.HVHaltonWeyl(make([]float64, 100), 100, make([]float64, 100), 10)
	assert.ErrorIs(t, err, hvapprox.ErrInvalidDimension)
}

func TestHVMonteCarlo_NonNegative(t *testing.T) {
	got, err := hvapprox.HVMonteCarlo(points2D, 2, ref2D, 1000, 3)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(got))
	assert.GreaterOrEqual(t, got, 0.0)
}
