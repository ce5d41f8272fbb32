package bc1

import (
	"github.com/deepteams/bcn/internal/colorspace"
	"github.com/deepteams/bcn/internal/interp"
)

// SearchResult is the best (endpoints, selectors, error) a search stage has
// found so far.
type SearchResult struct {
	Low, High colorspace.Color
	Selectors [16]int
	Error     int
}

func clampComponent(v, max int) uint8 {
	if v < 0 {
		return 0
	}
	if v > max {
		return uint8(max)
	}
	return uint8(v)
}

// voxel is one of the 16 directions NeighborhoodSearch steps an endpoint
// through: a (dR, dG, dB) delta in native 5:6:5 units, plus the index of
// the voxel that exactly undoes it.
type voxel struct {
	d   [3]int
	inv int
}

// voxels is the fixed 16-entry neighborhood spec.md §4.9 requires: the 6
// axis-aligned single-component moves (0-5), the 6 two-component "edge"
// moves (6-11), and the 4 two-component "diagonal" moves (12-15) —
// same-sign pairs (6-11) and opposite-sign pairs (12-15) over the
// (R,G)/(R,B)/(G,B) planes. Each entry's inv is the index of its exact
// inverse, used to forbid undoing a move that just improved the result.
var voxels = [16]voxel{
	{[3]int{1, 0, 0}, 3}, {[3]int{0, 1, 0}, 4}, {[3]int{0, 0, 1}, 5},
	{[3]int{-1, 0, 0}, 0}, {[3]int{0, -1, 0}, 1}, {[3]int{0, 0, -1}, 2},
	{[3]int{1, 1, 0}, 9}, {[3]int{1, 0, 1}, 10}, {[3]int{0, 1, 1}, 11},
	{[3]int{-1, -1, 0}, 6}, {[3]int{-1, 0, -1}, 7}, {[3]int{0, -1, -1}, 8},
	{[3]int{-1, 1, 0}, 13}, {[3]int{1, -1, 0}, 12}, {[3]int{0, -1, 1}, 15}, {[3]int{0, 1, -1}, 14},
}

// applyVoxel nudges c's three 5:6:5 components by d, clamped to each
// component's bit width (5 for R/B, 6 for G).
func applyVoxel(c colorspace.Color, d [3]int) colorspace.Color {
	r, g, b := colorspace.Components565(c)
	return colorspace.FromComponents565(
		clampComponent(int(r)+d[0], 31),
		clampComponent(int(g)+d[1], 63),
		clampComponent(int(b)+d[2], 31),
	)
}

// NeighborhoodSearch hill-climbs from (low, high) through the 16-voxel
// neighborhood of spec.md §4.9: voxel (i&15) is applied to high when
// i&16 is clear and to low when it's set, so all 16 directions are tried
// on high for 16 iterations, then on low for the next 16. A move that
// improves the result forbids its own inverse (the move that would exactly
// undo it) on the same endpoint until the next improving move replaces it,
// so the climb can't immediately backtrack; search stops after maxIters or
// once 32 consecutive iterations pass with no improvement.
func NeighborhoodSearch(pixels [16]colorspace.Color, seed SearchResult, n int, mode SelectorMode, ip *interp.Interpolator, maxIters int) SearchResult {
	best := seed
	forbidden := -1
	lastImprovement := 0
	for iter := 0; iter < maxIters; iter++ {
		voxelIdx := iter & 15
		if iter&31 == forbidden {
			continue
		}
		v := voxels[voxelIdx]
		cl, ch := best.Low, best.High
		if iter&16 != 0 {
			cl = applyVoxel(cl, v.d)
		} else {
			ch = applyVoxel(ch, v.d)
		}
		if cl == best.Low && ch == best.High {
			continue
		}
		pal := ip.BuildPalette(cl, ch)
		sel, e, aborted := FindSelectors(pixels, pal.Entries, n, mode, best.Error)
		if !aborted && e < best.Error {
			best = SearchResult{Low: cl, High: ch, Selectors: sel, Error: e}
			forbidden = v.inv | (iter & 16)
			lastImprovement = iter
		}
		if iter-lastImprovement > 32 {
			break
		}
	}
	return best
}
