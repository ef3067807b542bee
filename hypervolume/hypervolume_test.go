package hypervolume_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooctools/moocore/hypervolume"
)

func TestHV_2D(t *testing.T) {
	points := []float64{5, 5, 4, 6, 2, 7, 7, 4}
	ref := []float64{10, 10}
	got, err := hypervolume.HV(points, 2, ref)
	require.NoError(t, err)
	assert.InDelta(t, 38.0, got, 1e-9)
}

func TestHV_PermutationInvariant(t *testing.T) {
	ref := []float64{10, 10}
	orig := []float64{5, 5, 4, 6, 2, 7, 7, 4}
	perm := []float64{7, 4, 5, 5, 2, 7, 4, 6}
	v1, err := hypervolume.HV(orig, 2, ref)
	require.NoError(t, err)
	v2, err := hypervolume.HV(perm, 2, ref)
	require.NoError(t, err)
	assert.InDelta(t, v1, v2, 1e-9)
}

func TestHV_MonotoneInSetSize(t *testing.T) {
	ref := []float64{10, 10}
	small := []float64{5, 5}
	big := []float64{5, 5, 4, 6, 2, 7, 7, 4}
	vSmall, err := hypervolume.HV(small, 2, ref)
	require.NoError(t, err)
	vBig, err := hypervolume.HV(big, 2, ref)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, vBig, vSmall)
}

func TestHV_1D(t *testing.T) {
	got, err := hypervolume.HV([]float64{3, 7, 1}, 1, []float64{10})
	require.NoError(t, err)
	assert.InDelta(t, 9.0, got, 1e-9)
}

func TestHV_3D(t *testing.T) {
	points := []float64{
		5, 5, 5,
		4, 6, 5,
		2, 7, 5,
		7, 4, 5,
	}
	ref := []float64{10, 10, 10}
	got, err := hypervolume.HV(points, 3, ref)
	require.NoError(t, err)
	// Collapsing the third coordinate to a single ref-adjacent slab
	// recovers the 2D answer times the slab thickness.
	assert.InDelta(t, 38.0*5, got, 1e-9)
}

func TestHV_DiscardsNonDominatingPoints(t *testing.T) {
	points := []float64{5, 5, 10, 10, 11, 2}
	ref := []float64{10, 10}
	got, err := hypervolume.HV(points, 2, ref)
	require.NoError(t, err)
	want, err := hypervolume.HV([]float64{5, 5}, 2, ref)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
}

func TestHV_InvalidDimension(t *testing.T) {
	_, err := hypervolume.HV([]float64{1, 2}, 0, []float64{})
	assert.ErrorIs(t, err, hypervolume.ErrInvalidDimension)
}

func TestHV_DimensionMismatch(t *testing.T) {
	_, err := hypervolume.HV([]float64{1, 2, 3}, 2, []float64{10, 10})
	assert.ErrorIs(t, err, hypervolume.ErrDimensionMismatch)

	_, err = hypervolume.HV([]float64{1, 2}, 2, []float64{10})
	assert.ErrorIs(t, err, hypervolume.ErrDimensionMismatch)
}

func TestHVContributions(t *testing.T) {
	points := []float64{5, 5, 4, 6, 2, 7, 7, 4}
	ref := []float64{10, 10}
	got, err := hypervolume.HVContributions(points, 2, ref)
	require.NoError(t, err)
	require.Len(t, got, 4)
	want := []float64{2, 1, 6, 3}
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], 1e-9, "contribution %d", i)
	}
}

func TestHVContributions_SumEqualsHV(t *testing.T) {
	points := []float64{5, 5, 4, 6, 2, 7, 7, 4}
	ref := []float64{10, 10}
	total, err := hypervolume.HV(points, 2, ref)
	require.NoError(t, err)
	contribs, err := hypervolume.HVContributions(points, 2, ref)
	require.NoError(t, err)
	var sum float64
	for _, c := range contribs {
		sum += c
	}
	assert.InDelta(t, total, sum, 1e-9)
}

func TestHVContributions_DuplicateGetsZero(t *testing.T) {
	points := []float64{5, 5, 5, 5, 2, 7}
	ref := []float64{10, 10}
	contribs, err := hypervolume.HVContributions(points, 2, ref)
	require.NoError(t, err)
	require.Len(t, contribs, 3)
	assert.InDelta(t, 0.0, contribs[1], 1e-9)
}

func TestHVContributions_DominatedGetsZero(t *testing.T) {
	points := []float64{5, 5, 6, 6, 2, 7}
	ref := []float64{10, 10}
	contribs, err := hypervolume.HVContributions(points, 2, ref)
	require.NoError(t, err)
	require.Len(t, contribs, 3)
	assert.InDelta(t, 0.0, contribs[1], 1e-9)
}

func TestHV_NumericOverflowIsInf(t *testing.T) {
	huge := math.MaxFloat64 / 2
	points := []float64{0, 0}
	ref := []float64{huge, huge}
	got, err := hypervolume.HV(points, 2, ref)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}
