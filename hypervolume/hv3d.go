package hypervolume

import (
	"sort"

	"github.com/mooctools/moocore/avlset"
)

type point3D struct{ x0, x1, x2 float64 }

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

// staircase2D maintains the 2D nondominated front of points inserted so
// far, keyed by x0 with strictly decreasing x1 as x0 increases (the
// classic "staircase" invariant). It backs the HV3D+ sweep: as the sweep
// advances along x2, points are inserted here one slab at a time.
type staircase2D struct {
	tree *avlset.Tree[float64, float64]
}

func newStaircase2D() *staircase2D {
	return &staircase2D{tree: avlset.New[float64, float64](cmpFloat64)}
}

// insert adds (x0, x1) to the staircase, discarding it if an existing
// entry already weakly dominates it, and removing any existing entries
// the new point weakly dominates.
//
// Complexity: O(log n) amortised (each point is removed at most once over
// the lifetime of the staircase).
func (s *staircase2D) insert(x0, x1 float64) {
	if floor, ok := s.tree.FloorByKey(x0); ok && s.tree.Value(floor) <= x1 {
		return // dominated by an existing, more-advanced entry
	}
	for {
		ceil, ok := s.tree.CeilingByKey(x0)
		if !ok || s.tree.Value(ceil) < x1 {
			break
		}
		s.tree.Delete(ceil)
	}
	s.tree.Insert(x0, x1)
}

// area returns the 2D hypervolume of the current staircase against
// (ref0, ref1).
//
// Complexity: O(k) where k is the current staircase size.
func (s *staircase2D) area(ref0, ref1 float64) float64 {
	if s.tree.Len() == 0 {
		return 0
	}
	var total float64
	var prevX0 float64
	var prevX1 float64
	first := true
	s.tree.InOrder(func(h avlset.Handle) {
		if !first {
			total += (s.tree.Key(h) - prevX0) * (ref1 - prevX1)
		}
		prevX0 = s.tree.Key(h)
		prevX1 = s.tree.Value(h)
		first = false
	})
	total += (ref0 - prevX0) * (ref1 - prevX1)
	return total
}

// hv3D computes the 3D hypervolume of pts (already ref-filtered) against
// (ref0, ref1, ref2), sweeping ascending on x2 and maintaining the
// (x0, x1) staircase in an avlset.Tree.
//
// Complexity: O(n^2) (each of the n slabs recomputes the O(k) staircase
// area; a fully incremental O(log n)-per-slab variant, as in the
// reference HV3D+ algorithm, would track the area delta inside the AVL
// payload during insert/delete instead of recomputing it — see DESIGN.md).
func hv3D(pts []point3D, ref0, ref1, ref2 float64) float64 {
	n := len(pts)
	if n == 0 {
		return 0
	}
	sorted := make([]point3D, n)
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].x2 < sorted[j].x2 })

	sc := newStaircase2D()
	var volume float64
	prevX2 := sorted[0].x2
	for i := 0; i < n; i++ {
		if sorted[i].x2 > prevX2 {
			volume += (sorted[i].x2 - prevX2) * sc.area(ref0, ref1)
			prevX2 = sorted[i].x2
		}
		sc.insert(sorted[i].x0, sorted[i].x1)
	}
	volume += (ref2 - prevX2) * sc.area(ref0, ref1)
	return volume
}
