package vorob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooctools/moocore/vorob"
)

func identicalSets() [][]float64 {
	s := []float64{2, 7, 4, 4, 7, 2}
	return [][]float64{append([]float64{}, s...), append([]float64{}, s...), append([]float64{}, s...)}
}

func TestThreshold_IdenticalSetsMatchOwnHypervolume(t *testing.T) {
	sets := identicalSets()
	ref := []float64{10, 10}
	res, err := vorob.Threshold(sets, ref)
	require.NoError(t, err)
	assert.Greater(t, res.Threshold, 0.0)
	assert.LessOrEqual(t, res.Threshold, 100.0)
	assert.Greater(t, res.AvgHyp, 0.0)
	assert.NotEmpty(t, res.VE)
}

func TestThreshold_RejectsEmptyFamily(t *testing.T) {
	_, err := vorob.Threshold(nil, []float64{10, 10})
	assert.ErrorIs(t, err, vorob.ErrEmptyFamily)
}

func TestThreshold_RejectsWrongDimension(t *testing.T) {
	_, err := vorob.Threshold(identicalSets(), []float64{10, 10, 10})
	assert.ErrorIs(t, err, vorob.ErrUnsupportedDimension)
}

func TestDeviation_IdenticalSetsIsSmall(t *testing.T) {
	sets := identicalSets()
	ref := []float64{10, 10}
	dev, err := vorob.Deviation(sets, ref, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, dev, -1e-6)
}

func TestDeviation_RejectsEmptyFamily(t *testing.T) {
	_, err := vorob.Deviation(nil, []float64{10, 10}, nil)
	assert.ErrorIs(t, err, vorob.ErrEmptyFamily)
}
