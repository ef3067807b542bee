package avlset

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestInsertOrderStatistics(t *testing.T) {
	tr := New[float64, int](cmpFloat)
	keys := []float64{5, 2, 8, 1, 9, 3, 7, 4, 6, 0}
	for i, k := range keys {
		tr.Insert(k, i)
	}
	require.Equal(t, len(keys), tr.Len())

	sorted := append([]float64(nil), keys...)
	sort.Float64s(sorted)
	for i, want := range sorted {
		h, err := tr.Select(i)
		require.NoError(t, err)
		assert.Equal(t, want, tr.Key(h))
		assert.Equal(t, i, tr.Rank(h))
	}
}

func TestNextPrevTraversal(t *testing.T) {
	tr := New[float64, int](cmpFloat)
	for _, k := range []float64{3, 1, 4, 1, 5, 9, 2, 6} {
		tr.Insert(k, 0)
	}
	min, err := tr.Min()
	require.NoError(t, err)

	var got []float64
	h, ok := min, true
	for ok {
		got = append(got, tr.Key(h))
		h, ok = tr.Next(h)
	}
	assert.Len(t, got, tr.Len())
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i])
	}

	max, err := tr.Max()
	require.NoError(t, err)
	prev, ok := tr.Prev(max)
	require.True(t, ok)
	assert.LessOrEqual(t, tr.Key(prev), tr.Key(max))
}

func TestDeleteShrinksAndRebalances(t *testing.T) {
	tr := New[float64, int](cmpFloat)
	handles := make([]Handle, 0, 100)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		handles = append(handles, tr.Insert(rng.Float64()*100, i))
	}
	for i := 0; i < 50; i++ {
		require.NoError(t, tr.Delete(handles[i]))
	}
	assert.Equal(t, 50, tr.Len())

	var prevKey float64
	first := true
	tr.InOrder(func(h Handle) {
		k := tr.Key(h)
		if !first {
			assert.LessOrEqual(t, prevKey, k)
		}
		prevKey = k
		first = false
	})
}

func TestFindFirstAndFloor(t *testing.T) {
	tr := New[float64, int](cmpFloat)
	tr.Insert(1, 0)
	tr.Insert(3, 0)
	tr.Insert(3, 1)
	tr.Insert(5, 0)

	h, ok := tr.FindFirst(3)
	require.True(t, ok)
	assert.Equal(t, 0, tr.Value(h))

	h, ok = tr.FloorByKey(4)
	require.True(t, ok)
	assert.Equal(t, 3.0, tr.Key(h))

	_, ok = tr.FloorByKey(0)
	assert.False(t, ok)
}

func TestEmptyTree(t *testing.T) {
	tr := New[float64, int](cmpFloat)
	_, err := tr.Min()
	assert.ErrorIs(t, err, ErrEmptyTree)
	_, err = tr.Select(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
