package moocore_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mooctools/moocore/manifold"
	"github.com/mooctools/moocore/moocore"
	"github.com/mooctools/moocore/whv"
)

func TestHV_S1(t *testing.T) {
	points := []float64{5, 5, 4, 6, 2, 7, 7, 4}
	ref := []float64{10, 10}
	got, err := moocore.HV(points, 2, ref)
	require.NoError(t, err)
	assert.InDelta(t, 38.0, got, 1e-9)
}

func TestHVContributions_S2(t *testing.T) {
	points := []float64{5, 5, 4, 6, 2, 7, 7, 4}
	ref := []float64{10, 10}
	got, err := moocore.HVContributions(points, 2, ref)
	require.NoError(t, err)
	want := []float64{2, 1, 6, 3}
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], 1e-9, "contribution %d", i)
	}
}

func TestIsNondominated_S3(t *testing.T) {
	points := []float64{1, 1, 0, 1, 1, 0, 1, 0}
	got, err := moocore.IsNondominated(points, 2)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, got)

	got, err = moocore.IsNondominated(points, 2, moocore.WithKeepWeakly(true))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, true}, got)
}

func TestParetoRank_S4(t *testing.T) {
	points := []float64{0.2, 0.1, 0.2, 0.5, 0.3}
	got, err := moocore.ParetoRank(points, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 0, 1, 3, 2}, got)
}

func TestEpsilon_S5(t *testing.T) {
	x := []float64{4, 2, 3, 3, 2, 4}
	r := []float64{10, 1, 6, 1, 2, 2, 1, 6, 1, 10}
	add, err := moocore.EpsilonAdditive(x, r, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, add, 1e-9)

	mult, err := moocore.EpsilonMult(x, r, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mult, 1e-9)
}

func TestIGD_S6(t *testing.T) {
	a := []float64{4, 2, 3, 3, 2, 4}
	b := []float64{8, 2, 4, 4, 2, 8}
	r := []float64{10, 0, 6, 1, 2, 2, 1, 6, 0, 10}

	igdA, err := moocore.IGD(a, r, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.707092031609239, igdA, 1e-9)

	igdPlusA, err := moocore.IGDPlus(a, r, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.482842712474619, igdPlusA, 1e-9)

	igdB, err := moocore.IGD(b, r, 2)
	require.NoError(t, err)
	assert.Less(t, igdB, igdA)

	igdPlusB, err := moocore.IGDPlus(b, r, 2)
	require.NoError(t, err)
	assert.Greater(t, igdPlusB, igdPlusA)
}

func TestWHVRectAndTotal_S8(t *testing.T) {
	points := []float64{2, 2}
	rects := []whv.Rectangle{
		{LoX: 1, LoY: 3, HiX: 2, HiY: math.Inf(1), W: 1},
		{LoX: 2, LoY: 3.5, HiX: 2.5, HiY: math.Inf(1), W: 2},
		{LoX: 2, LoY: 3, HiX: 3, HiY: 3.5, W: 3},
	}
	ref := []float64{6, 6}
	got, err := moocore.WHVRect(points, rects, ref)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-9)

	ideal := []float64{1, 1}
	total, err := moocore.TotalWHVRect(points, rects, ref, ideal, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 26.0, total, 1e-9)
}

func TestWHVRect_RejectsMaximiseMask(t *testing.T) {
	_, err := moocore.WHVRect([]float64{2, 2}, nil, []float64{6, 6}, moocore.WithMaximise([]bool{true, false}))
	assert.ErrorIs(t, err, moocore.ErrUnsupported)
}

func TestIsNondominated_MaximiseNegationInvariant(t *testing.T) {
	points := []float64{1, 1, 0, 1, 1, 0, 1, 0}
	neg := make([]float64, len(points))
	for i, v := range points {
		neg[i] = -v
	}
	base, err := moocore.IsNondominated(points, 2)
	require.NoError(t, err)
	folded, err := moocore.IsNondominated(neg, 2, moocore.WithMaximise([]bool{true, true}))
	require.NoError(t, err)
	assert.Equal(t, base, folded)
}

func TestHV_RejectsNonFiniteInput(t *testing.T) {
	_, err := moocore.HV([]float64{1, math.NaN()}, 2, []float64{10, 10})
	assert.ErrorIs(t, err, moocore.ErrInvalidValue)
}

func TestHV_RejectsShapeMismatch(t *testing.T) {
	_, err := moocore.HV([]float64{1, 2, 3}, 2, []float64{10, 10})
	assert.ErrorIs(t, err, moocore.ErrInvalidShape)
}

func TestGenerateNDSet_Wraps(t *testing.T) {
	out, err := moocore.GenerateNDSet(10, 3, manifold.Simplex, false, moocore.WithSeed(3))
	require.NoError(t, err)
	assert.Len(t, out, 30)
}

func TestNormalise_DoesNotMutateInputWithoutDest(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	orig := append([]float64{}, x...)
	out, err := moocore.Normalise(x, 2, [2]float64{0, 1}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, orig, x)
	assert.NotEqual(t, orig, out)
}

func TestNormalise_WritesIntoDest(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	dest := make([]float64, 4)
	out, err := moocore.Normalise(x, 2, [2]float64{0, 1}, nil, nil, moocore.WithDest(dest))
	require.NoError(t, err)
	assert.Same(t, &dest[0], &out[0])
}
