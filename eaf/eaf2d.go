package eaf

import (
	"math"
	"sort"

	"github.com/mooctools/moocore/avlset"
)

// Level is one requested attainment surface: the boundary of the region
// attained by at least Threshold of the input sets.
type Level struct {
	Percentile float64
	Threshold  int
	// Points is the staircase vertex list, row-major (x, y) pairs in
	// ascending x order.
	Points []float64
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// DefaultPercentiles returns {i*100/k : i=1..k}, the list EAF2D/EAF3D use
// when the caller requests no specific percentiles.
func DefaultPercentiles(k int) []float64 {
	out := make([]float64, k)
	for i := 1; i <= k; i++ {
		out[i-1] = float64(i) * 100 / float64(k)
	}
	return out
}

func thresholdsFromPercentiles(percentiles []float64, k int) ([]int, error) {
	ths := make([]int, len(percentiles))
	for i, p := range percentiles {
		if p <= 0 || p > 100 {
			return nil, ErrInvalidPercentile
		}
		ths[i] = int(math.Ceil(p * float64(k) / 100))
	}
	return ths, nil
}

// EAF2D computes the requested (or, if nil, default) percentile levels'
// attainment surfaces for sets, each a flattened n_s*2 row-major point
// set.
//
// Complexity: O(N log k) where N is the total number of points across all
// fronts and k = len(sets).
func EAF2D(sets [][]float64, percentiles []float64) ([]Level, error) {
	k := len(sets)
	if k == 0 {
		return nil, ErrEmptyFamily
	}
	if percentiles == nil {
		percentiles = DefaultPercentiles(k)
	}
	thresholds, err := thresholdsFromPercentiles(percentiles, k)
	if err != nil {
		return nil, err
	}

	fronts := make([][]point2D, k)
	for i, s := range sets {
		fronts[i] = front2D(s)
	}

	type event struct {
		x    float64
		set  int
		y    float64
	}
	var events []event
	for s, f := range fronts {
		for _, p := range f {
			events = append(events, event{p.x, s, p.y})
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].x < events[j].x })

	threshold := make([]float64, k)
	for i := range threshold {
		threshold[i] = math.Inf(1)
	}
	multiset := avlset.New[float64, int](cmpFloat64)
	for i := range threshold {
		multiset.Insert(math.Inf(1), i)
	}

	levels := make([]Level, len(thresholds))
	for i, p := range percentiles {
		levels[i] = Level{Percentile: p, Threshold: thresholds[i]}
	}
	lastY := make([]float64, len(thresholds))
	haveY := make([]bool, len(thresholds))

	finiteCount := 0
	i := 0
	for i < len(events) {
		x := events[i].x
		j := i
		for j < len(events) && events[j].x == x {
			old := threshold[events[j].set]
			if math.IsInf(old, 1) {
				finiteCount++
			}
			if h, ok := multiset.FindFirst(old); ok {
				multiset.Delete(h)
			}
			threshold[events[j].set] = events[j].y
			multiset.Insert(events[j].y, events[j].set)
			j++
		}
		for li, t := range thresholds {
			if t > finiteCount {
				continue // not enough sets have attained anything yet
			}
			h, err := multiset.Select(t - 1)
			if err != nil {
				continue
			}
			y := multiset.Key(h)
			if math.IsInf(y, 1) {
				continue
			}
			if !haveY[li] || y != lastY[li] {
				levels[li].Points = append(levels[li].Points, x, y)
				lastY[li] = y
				haveY[li] = true
			}
		}
		i = j
	}
	return levels, nil
}
