package whv

import (
	"math"

	"github.com/mooctools/moocore/eaf"
)

// LargestEAFDiff finds, among all unordered pairs of families in
// families, the pair whose EAF difference carries the largest weighted
// hypervolume: for each pair (a, b), EAFDiff(a, b, intervals) is split
// into its positive-colour and negative-colour rectangles, each side is
// scored by WHVRect of the degenerate point set {ideal} against that
// side's rectangles (weight = |colour|), and the pair's score is the
// minimum of the two sides (so a pair only scores high if both sides of
// the difference are substantial). The returned pair maximises that
// score.
//
// Complexity: O(P*(N log N + n*m)) for P pairs, each costing an EAFDiff
// sweep plus two WHVRect evaluations.
func LargestEAFDiff(families [][][]float64, ref []float64, intervals int, ideal []float64) (i, j int, score float64, err error) {
	if len(ref) != 2 || len(ideal) != 2 {
		return 0, 0, 0, ErrUnsupportedDimension
	}
	if len(families) < 2 {
		return 0, 0, 0, ErrTooFewFamilies
	}

	bestI, bestJ := -1, -1
	var best float64
	for a := 0; a < len(families); a++ {
		for b := a + 1; b < len(families); b++ {
			rects, derr := eaf.EAFDiff(families[a], families[b], intervals)
			if derr != nil {
				return 0, 0, 0, derr
			}
			pos, neg := splitBySign(rects)
			posScore, werr := WHVRect(ideal, pos, ref)
			if werr != nil {
				return 0, 0, 0, werr
			}
			negScore, werr := WHVRect(ideal, neg, ref)
			if werr != nil {
				return 0, 0, 0, werr
			}
			pairScore := math.Min(posScore, negScore)
			if bestI == -1 || pairScore > best {
				best = pairScore
				bestI, bestJ = a, b
			}
		}
	}
	return bestI, bestJ, best, nil
}

// splitBySign partitions an EAFDiff rectangle decomposition into the
// side favouring the first input (positive colour) and the side
// favouring the second (negative colour), converting each to a
// whv.Rectangle weighted by the absolute colour value.
func splitBySign(rects []eaf.Rectangle) (pos, neg []Rectangle) {
	for _, r := range rects {
		w := Rectangle{LoX: r.LoX, LoY: r.LoY, HiX: r.HiX, HiY: r.HiY, W: math.Abs(r.Colour)}
		if r.Colour > 0 {
			pos = append(pos, w)
		} else if r.Colour < 0 {
			neg = append(neg, w)
		}
	}
	return pos, neg
}
