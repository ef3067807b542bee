package indicators_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooctools/moocore/indicators"
)

func TestEpsilonAdditiveAndMult(t *testing.T) {
	x := []float64{4, 2, 3, 3, 2, 4}
	r := []float64{10, 1, 6, 1, 2, 2, 1, 6, 1, 10}
	add, err := indicators.EpsilonAdditive(x, r, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, add, 1e-9)

	mult, err := indicators.EpsilonMult(x, r, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mult, 1e-9)
}

func TestIGDAndIGDPlus(t *testing.T) {
	a := []float64{4, 2, 3, 3, 2, 4}
	r := []float64{10, 0, 6, 1, 2, 2, 1, 6, 0, 10}

	igd, err := indicators.IGD(a, r, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.707092031609239, igd, 1e-9)

	igdPlus, err := indicators.IGDPlus(a, r, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.482842712474619, igdPlus, 1e-9)

	b := []float64{8, 2, 4, 4, 2, 8}
	igdB, err := indicators.IGD(b, r, 2)
	require.NoError(t, err)
	igdPlusB, err := indicators.IGDPlus(b, r, 2)
	require.NoError(t, err)

	assert.Less(t, igdB, igd)
	assert.Greater(t, igdPlusB, igdPlus)
}

func TestIGD_SelfIsZero(t *testing.T) {
	x := []float64{4, 2, 3, 3, 2, 4}
	igd, err := indicators.IGD(x, x, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, igd, 1e-9)

	igdPlus, err := indicators.IGDPlus(x, x, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, igdPlus, 1e-9)
}

func TestEpsilonAdditiveMultIdentity(t *testing.T) {
	x := []float64{4, 2, 3, 3, 2, 4}
	r := []float64{10, 1, 6, 1, 2, 2, 1, 6, 1, 10}

	add, err := indicators.EpsilonAdditive(x, r, 2)
	require.NoError(t, err)

	logX := make([]float64, len(x))
	logR := make([]float64, len(r))
	for i, v := range x {
		logX[i] = math.Log(v)
	}
	for i, v := range r {
		logR[i] = math.Log(v)
	}
	addLog, err := indicators.EpsilonAdditive(logX, logR, 2)
	require.NoError(t, err)

	mult, err := indicators.EpsilonMult(x, r, 2)
	require.NoError(t, err)

	assert.InDelta(t, math.Log(mult), addLog, 1e-9)
	_ = add
}

func TestEpsilonMult_RejectsNonPositive(t *testing.T) {
	x := []float64{4, -2, 3, 3}
	r := []float64{1, 1, 2, 2}
	_, err := indicators.EpsilonMult(x, r, 2)
	assert.ErrorIs(t, err, indicators.ErrNonPositiveInput)
}

func TestAvgHausdorffDist(t *testing.T) {
	x := []float64{0, 0}
	r := []float64{0, 0}
	got, err := indicators.AvgHausdorffDist(x, r, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-9)
}

func TestNormalise_BasicRange(t *testing.T) {
	x := []float64{0, 10, 5, 20, 10, 30}
	err := indicators.Normalise(x, 2, [2]float64{0, 1}, nil, nil, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, x[0], 1e-9)
	assert.InDelta(t, 1.0, x[4], 1e-9)
	assert.InDelta(t, 0.5, x[2], 1e-9)
}

func TestNormalise_MaximiseSwapsRange(t *testing.T) {
	x := []float64{0, 10}
	err := indicators.Normalise(x, 1, [2]float64{0, 1}, nil, nil, []bool{true})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-9)
}

func TestDimensionMismatch(t *testing.T) {
	_, err := indicators.IGD([]float64{1, 2, 3}, []float64{1, 2}, 2)
	assert.ErrorIs(t, err, indicators.ErrDimensionMismatch)
}
