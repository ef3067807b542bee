package dominance

import (
	"strconv"
	"strings"
)

// Dominates reports whether a dominates b under minimisation: a[i] <= b[i]
// for every coordinate, with strict inequality on at least one.
func Dominates(a, b []float64) bool {
	strict := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strict = true
		}
	}
	return strict
}

// IsNondominated returns, for each of the n=len(points)/d rows, whether it
// is not strictly dominated by any other row.
//
// When keepWeakly is false, duplicate points (identical coordinates) are
// collapsed: only the lowest-index representative of each group of
// mutually-equal nondominated points is kept true; later duplicates are
// reported as false even though no row strictly dominates them. This
// matches the documented "deterministic representative" contract: the
// survivor is always the earliest row in input order.
//
// Complexity: O(d n^2) (pairwise comparison; used uniformly across all d,
// see DESIGN.md for the deviation from the sweep-based 2D/3D fast paths).
func IsNondominated(points []float64, d int, keepWeakly bool) ([]bool, error) {
	if d <= 0 || len(points)%d != 0 {
		return nil, ErrDimensionMismatch
	}
	n := len(points) / d
	mask := make([]bool, n)
	for i := 0; i < n; i++ {
		pi := points[i*d : i*d+d]
		dominated := false
		for j := 0; j < n && !dominated; j++ {
			if i == j {
				continue
			}
			pj := points[j*d : j*d+d]
			if Dominates(pj, pi) {
				dominated = true
			}
		}
		mask[i] = !dominated
	}
	if !keepWeakly {
		collapseDuplicates(points, d, mask)
	}
	return mask, nil
}

// collapseDuplicates keeps only the first occurrence true among rows
// sharing identical coordinates where mask[i] is currently true.
func collapseDuplicates(points []float64, d int, mask []bool) {
	seen := make(map[string]bool)
	n := len(mask)
	for i := 0; i < n; i++ {
		if !mask[i] {
			continue
		}
		key := rowKey(points[i*d : i*d+d])
		if seen[key] {
			mask[i] = false
			continue
		}
		seen[key] = true
	}
}

func rowKey(row []float64) string {
	var b strings.Builder
	for i, v := range row {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

// FilterDominated returns the rows of points for which IsNondominated is
// true, preserving input order.
func FilterDominated(points []float64, d int, keepWeakly bool) ([]float64, error) {
	mask, err := IsNondominated(points, d, keepWeakly)
	if err != nil {
		return nil, err
	}
	n := len(mask)
	out := make([]float64, 0, len(points))
	for i := 0; i < n; i++ {
		if mask[i] {
			out = append(out, points[i*d:i*d+d]...)
		}
	}
	return out, nil
}
