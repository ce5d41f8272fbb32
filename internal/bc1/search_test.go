package bc1

import (
	"testing"

	"github.com/deepteams/bcn/internal/colorspace"
	"github.com/deepteams/bcn/internal/interp"
)

func TestNeighborhoodSearchNeverWorsens(t *testing.T) {
	ip := interp.New(interp.Ideal)
	block := rampBlock()
	m := ComputeMetrics(block, false)
	low, high := FindEndpoints(block, m, EndpointBBoxFloat, 0)
	pal := ip.BuildPalette(low, high)
	sel, errTotal, _ := FindSelectors(block.Pixels, pal.Entries, 4, SelectorFull, noBound)

	seed := SearchResult{Low: low, High: high, Selectors: sel, Error: errTotal}
	best := NeighborhoodSearch(block.Pixels, seed, 4, SelectorFull, &ip, 64)
	if best.Error > errTotal {
		t.Errorf("search regressed: seed=%d result=%d", errTotal, best.Error)
	}
}

func TestApplyVoxelClampsToRange(t *testing.T) {
	c := colorspace.FromComponents565(0, 0, 0)
	down := applyVoxel(c, [3]int{-1, 0, 0})
	r5, _, _ := colorspace.Components565(down)
	if r5 != 0 {
		t.Errorf("applyVoxel should clamp at 0, got %d", r5)
	}
	top := colorspace.FromComponents565(31, 63, 31)
	up := applyVoxel(top, [3]int{0, 1, 0})
	_, g6, _ := colorspace.Components565(up)
	if g6 != 63 {
		t.Errorf("applyVoxel should clamp at 63 for G, got %d", g6)
	}
}

func TestVoxelsAreSymmetric(t *testing.T) {
	for i, v := range voxels {
		inv := voxels[v.inv]
		if inv.inv != i {
			t.Errorf("voxel %d's inverse %d does not point back: got %d", i, v.inv, inv.inv)
		}
		for c := 0; c < 3; c++ {
			if v.d[c] != -inv.d[c] {
				t.Errorf("voxel %d and its inverse %d are not opposite deltas: %v vs %v", i, v.inv, v.d, inv.d)
			}
		}
	}
}
