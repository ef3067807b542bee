package eaf

import (
	"math"
	"sort"
)

// Rectangle is one disjoint, single-colour cell of an eafdiff
// decomposition. HiX/HiY is math.Inf(1) for a cell open on the top or
// right side.
type Rectangle struct {
	LoX, LoY, HiX, HiY float64
	Colour             float64
}

// EAFDiff computes the rectangle decomposition of the signed attainment
// difference between a and b: for each disjoint cell, Colour is
// (#sets of a attaining the cell) - (#sets of b attaining the cell),
// scaled by intervals/max(len(a), len(b)) when intervals > 0 (intervals
// <= 0 returns the raw integer difference). Cells with zero colour are
// omitted. Disjointness and the open-sided +Inf convention follow the
// same staircase sweep EAF2D uses.
//
// Complexity: O(N log N), N the total number of points in a and b.
func EAFDiff(a, b [][]float64, intervals int) ([]Rectangle, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyFamily
	}
	kA, kB := len(a), len(b)
	scale := 1.0
	if intervals > 0 {
		maxK := kA
		if kB > maxK {
			maxK = kB
		}
		scale = float64(intervals) / float64(maxK)
	}

	xBreaks, thresholdsAtX := sweepThresholds(a, b)

	var rects []Rectangle
	for i, x := range xBreaks {
		hiX := math.Inf(1)
		if i+1 < len(xBreaks) {
			hiX = xBreaks[i+1]
		}
		thA, thB := thresholdsAtX[i].a, thresholdsAtX[i].b
		yBreaks := mergeSortedUnique(thA, thB)
		for j, y := range yBreaks {
			hiY := math.Inf(1)
			if j+1 < len(yBreaks) {
				hiY = yBreaks[j+1]
			}
			countA := countAtMost(thA, y)
			countB := countAtMost(thB, y)
			colour := float64(countA-countB) * scale
			if colour == 0 {
				continue
			}
			rects = append(rects, Rectangle{LoX: x, LoY: y, HiX: hiX, HiY: hiY, Colour: colour})
		}
	}
	return rects, nil
}

// EAFDiffVertices returns the same information as EAFDiff flattened into
// row-major (x, y, colour) triples, one per non-zero cell's lower-left
// corner, for callers that only need the colour-change vertices rather
// than full rectangles.
func EAFDiffVertices(a, b [][]float64, intervals int) ([]float64, error) {
	rects, err := EAFDiff(a, b, intervals)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(rects)*3)
	for _, r := range rects {
		out = append(out, r.LoX, r.LoY, r.Colour)
	}
	return out, nil
}

type thresholdPair struct{ a, b []float64 }

// sweepThresholds returns the distinct x breakpoints (ascending) at which
// either side's per-set attainment threshold changes, and, for each
// breakpoint, the finite current threshold values of both sides as of
// (and including) that x.
func sweepThresholds(a, b [][]float64) ([]float64, []thresholdPair) {
	kA, kB := len(a), len(b)
	frontsA := make([][]point2D, kA)
	for i, s := range a {
		frontsA[i] = front2D(s)
	}
	frontsB := make([][]point2D, kB)
	for i, s := range b {
		frontsB[i] = front2D(s)
	}

	type event struct {
		x    float64
		side int // 0=a, 1=b
		set  int
		y    float64
	}
	var events []event
	for s, f := range frontsA {
		for _, p := range f {
			events = append(events, event{p.x, 0, s, p.y})
		}
	}
	for s, f := range frontsB {
		for _, p := range f {
			events = append(events, event{p.x, 1, s, p.y})
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].x < events[j].x })

	thresholdA := make([]float64, kA)
	thresholdB := make([]float64, kB)
	for i := range thresholdA {
		thresholdA[i] = math.Inf(1)
	}
	for i := range thresholdB {
		thresholdB[i] = math.Inf(1)
	}

	var xBreaks []float64
	var snapshots []thresholdPair
	i := 0
	for i < len(events) {
		x := events[i].x
		j := i
		for j < len(events) && events[j].x == x {
			e := events[j]
			if e.side == 0 {
				thresholdA[e.set] = e.y
			} else {
				thresholdB[e.set] = e.y
			}
			j++
		}
		xBreaks = append(xBreaks, x)
		snapshots = append(snapshots, thresholdPair{
			a: finiteSorted(thresholdA),
			b: finiteSorted(thresholdB),
		})
		i = j
	}
	return xBreaks, snapshots
}

func finiteSorted(th []float64) []float64 {
	out := make([]float64, 0, len(th))
	for _, v := range th {
		if !math.IsInf(v, 1) {
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

func mergeSortedUnique(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.Float64s(out)
	dedup := out[:0]
	for i, v := range out {
		if i == 0 || v != out[i-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup
}

// countAtMost returns the number of entries in sorted (ascending) <= y.
func countAtMost(sorted []float64, y float64) int {
	return sort.SearchFloat64s(sorted, math.Nextafter(y, math.Inf(1)))
}
