package eaf

import "sort"

// Level3D is one requested level's staircase surface in 3D, row-major
// (x, y, z) triples.
type Level3D struct {
	Percentile float64
	Threshold  int
	Points     []float64
}

type point3D struct{ x, y, z float64 }

// EAF3D extends EAF2D by sweeping ascending on z: at each distinct
// z-slab it recomputes the 2D EAF of every set's points seen so far
// (projected onto x, y), tagging each resulting vertex with the current
// z. This is a direct rather than fully incremental extension of the 2D
// sweep: each slab's cost is a fresh EAF2D call over the points active
// so far, rather than amortised O(log n) per-slab maintenance.
//
// Complexity: O(Z * EAF2D(active)), Z the number of distinct z values.
func EAF3D(sets [][]float64, percentiles []float64) ([]Level3D, error) {
	k := len(sets)
	if k == 0 {
		return nil, ErrEmptyFamily
	}
	if percentiles == nil {
		percentiles = DefaultPercentiles(k)
	}
	if _, err := thresholdsFromPercentiles(percentiles, k); err != nil {
		return nil, err
	}

	type setPoint struct {
		set int
		p   point3D
	}
	var all []setPoint
	for s, flat := range sets {
		n := len(flat) / 3
		for i := 0; i < n; i++ {
			all = append(all, setPoint{s, point3D{flat[i*3], flat[i*3+1], flat[i*3+2]}})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].p.z < all[j].p.z })

	active := make([][]float64, k)
	out := make([]Level3D, len(percentiles))
	for i, p := range percentiles {
		out[i] = Level3D{Percentile: p}
	}

	idx := 0
	for idx < len(all) {
		z := all[idx].p.z
		end := idx
		for end < len(all) && all[end].p.z == z {
			sp := all[end]
			active[sp.set] = append(active[sp.set], sp.p.x, sp.p.y)
			end++
		}
		levels2D, err := EAF2D(active, percentiles)
		if err != nil {
			return nil, err
		}
		for li, lvl := range levels2D {
			out[li].Threshold = lvl.Threshold
			for v := 0; v+1 < len(lvl.Points); v += 2 {
				out[li].Points = append(out[li].Points, lvl.Points[v], lvl.Points[v+1], z)
			}
		}
		idx = end
	}
	return out, nil
}
