package eaf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooctools/moocore/eaf"
)

func TestEAF2D_TwoSingletonSets(t *testing.T) {
	sets := [][]float64{
		{1, 5},
		{3, 2},
	}
	levels, err := eaf.EAF2D(sets, nil)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	level50 := levels[0]
	assert.InDelta(t, 50.0, level50.Percentile, 1e-9)
	assert.Equal(t, 1, level50.Threshold)
	assert.Equal(t, []float64{1, 5, 3, 2}, level50.Points)

	level100 := levels[1]
	assert.InDelta(t, 100.0, level100.Percentile, 1e-9)
	assert.Equal(t, 2, level100.Threshold)
	assert.Equal(t, []float64{3, 5}, level100.Points)
}

func TestEAF2D_RejectsEmptyFamily(t *testing.T) {
	_, err := eaf.EAF2D(nil, nil)
	assert.ErrorIs(t, err, eaf.ErrEmptyFamily)
}

func TestEAF2D_RejectsInvalidPercentile(t *testing.T) {
	_, err := eaf.EAF2D([][]float64{{1, 1}}, []float64{0})
	assert.ErrorIs(t, err, eaf.ErrInvalidPercentile)

	_, err = eaf.EAF2D([][]float64{{1, 1}}, []float64{150})
	assert.ErrorIs(t, err, eaf.ErrInvalidPercentile)
}

func TestEAF3D_ProducesLevelsPerSlab(t *testing.T) {
	sets := [][]float64{
		{1, 5, 1},
		{3, 2, 2},
	}
	levels, err := eaf.EAF3D(sets, nil)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.NotEmpty(t, levels[0].Points)
}

func TestEAFDiff_AntiSymmetric(t *testing.T) {
	a := [][]float64{
		{1, 5},
		{2, 4},
	}
	b := [][]float64{
		{3, 2},
		{4, 1},
	}
	diffAB, err := eaf.EAFDiff(a, b, 0)
	require.NoError(t, err)
	diffBA, err := eaf.EAFDiff(b, a, 0)
	require.NoError(t, err)

	require.Equal(t, len(diffAB), len(diffBA))
	sumAB := 0.0
	sumBA := 0.0
	for _, r := range diffAB {
		sumAB += r.Colour
	}
	for _, r := range diffBA {
		sumBA += r.Colour
	}
	assert.InDelta(t, -sumAB, sumBA, 1e-9)
}

func TestEAFDiff_RejectsEmptyFamily(t *testing.T) {
	_, err := eaf.EAFDiff(nil, [][]float64{{1, 1}}, 0)
	assert.ErrorIs(t, err, eaf.ErrEmptyFamily)
}

func TestEAFDiffVertices_MatchesRectangleCorners(t *testing.T) {
	a := [][]float64{{1, 5}, {2, 4}}
	b := [][]float64{{3, 2}, {4, 1}}
	rects, err := eaf.EAFDiff(a, b, 0)
	require.NoError(t, err)
	verts, err := eaf.EAFDiffVertices(a, b, 0)
	require.NoError(t, err)
	require.Len(t, verts, len(rects)*3)
}
