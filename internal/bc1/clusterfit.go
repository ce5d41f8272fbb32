package bc1

import (
	"sort"

	"github.com/deepteams/bcn/internal/colorspace"
	"github.com/deepteams/bcn/internal/interp"
)

// axisOrder4 and axisOrder3 map a bucket position along the low->high
// projection axis to the selector index that palette entry occupies
// (interp.BuildPalette places selector 2 at 1/3 and selector 3 at 2/3 for
// N=4, and selector 2 at the midpoint for N=3 — see interp.go).
var axisOrder4 = [4]int{0, 2, 3, 1}
var axisOrder3 = [3]int{0, 2, 1}

func axisOrder(n int) []int {
	if n == 3 {
		return axisOrder3[:]
	}
	return axisOrder4[:]
}

// PrefixSums holds the 16 block pixels re-ordered by their projection onto
// a fixed low->high axis, plus 17-entry cumulative sums over that order.
// Any contiguous run [i,j) of the sorted pixels has its per-channel sum
// available in O(1) as Cum[j]-Cum[i] — the building block cluster fit uses
// to cost every candidate histogram without re-walking all 16 pixels
// (spec.md §4.8).
type PrefixSums struct {
	sortedIdx [16]int
	Cum       [17][3]float32
}

// BuildPrefixSums sorts the block's pixels by projection onto (high-low)
// and accumulates the running per-channel sum.
func BuildPrefixSums(pixels [16]colorspace.Color, low, high colorspace.Color) PrefixSums {
	axis := [3]float32{
		float32(high.R) - float32(low.R),
		float32(high.G) - float32(low.G),
		float32(high.B) - float32(low.B),
	}
	var ps PrefixSums
	for i := range ps.sortedIdx {
		ps.sortedIdx[i] = i
	}
	proj := func(i int) float32 {
		p := pixels[i]
		return float32(p.R)*axis[0] + float32(p.G)*axis[1] + float32(p.B)*axis[2]
	}
	sort.SliceStable(ps.sortedIdx[:], func(a, b int) bool { return proj(ps.sortedIdx[a]) < proj(ps.sortedIdx[b]) })
	for k, idx := range ps.sortedIdx {
		p := pixels[idx]
		ps.Cum[k+1] = [3]float32{
			ps.Cum[k][0] + float32(p.R),
			ps.Cum[k][1] + float32(p.G),
			ps.Cum[k][2] + float32(p.B),
		}
	}
	return ps
}

func (ps PrefixSums) groupSum(start, end int) [3]float32 {
	return [3]float32{
		ps.Cum[end][0] - ps.Cum[start][0],
		ps.Cum[end][1] - ps.Cum[start][1],
		ps.Cum[end][2] - ps.Cum[start][2],
	}
}

// groupSelectors expands an axis-ordered histogram into a 16-long selector
// array in original pixel order, by walking the sorted runs left to right.
func (ps PrefixSums) groupSelectors(h Histogram, order []int) (selectors [16]int) {
	pos := 0
	for bucket, sel := range order {
		count := h[sel]
		for c := 0; c < count; c++ {
			selectors[ps.sortedIdx[pos]] = sel
			pos++
		}
		_ = bucket
	}
	return
}

// evalCandidate computes the (low, high) a histogram's Factor yields and
// the resulting total squared error against the actual pixels.
func evalCandidate(pixels [16]colorspace.Color, ps PrefixSums, h Histogram, order []int, n int, factor Matrix2, ip *interp.Interpolator) (low, high colorspace.Color, selectors [16]int, errTotal int) {
	var q0, q1 [3]float32
	start := 0
	for _, sel := range order {
		count := h[sel]
		end := start + count
		if count > 0 {
			gs := ps.groupSum(start, end)
			wLow := float32(n - 1 - sel)
			wHigh := float32(sel)
			for c := 0; c < 3; c++ {
				q0[c] += gs[c] * wLow
				q1[c] += gs[c] * wHigh
			}
		}
		start = end
	}
	scale := float32(n - 1)
	for c := 0; c < 3; c++ {
		q0[c] *= scale
		q1[c] *= scale
	}
	lr, hr := factor.solve(q0[0], q1[0])
	lg, hg := factor.solve(q0[1], q1[1])
	lb, hb := factor.solve(q0[2], q1[2])
	low = colorspace.Round565(lr, lg, lb)
	high = colorspace.Round565(hr, hg, hb)

	pal := ip.BuildPalette(low, high)
	selectors = ps.groupSelectors(h, order)
	for i, p := range pixels {
		errTotal += sqDist(p, pal.Entries[selectors[i]])
	}
	return
}

// ClusterFit refines (low, high) by exploring the histograms nearest
// seedIdx in table.BestOrders, re-solving the normal equations for each
// against axis-sorted prefix sums, and keeping whichever produces the
// lowest actual reconstruction error (spec.md §4.8). orderings caps the
// total number of candidates tried: the seed itself, then up to
// orderings-1 of table.BestOrders[seedIdx], mirroring BC1Encoder::RefineBlockCF's orderings parameter
// (quicktex/s3tc/bc1/BC1Encoder.cpp, _examples/original_source) — a cap of
// 1 degenerates to just re-evaluating seedIdx. bestErr is the error of the
// winning candidate, comparable against the caller's running best.
func ClusterFit(pixels [16]colorspace.Color, low, high colorspace.Color, n int, seedIdx int, orderings int, table *OrderTable, ip *interp.Interpolator) (bestLow, bestHigh colorspace.Color, bestSelectors [16]int, bestErr int, ok bool) {
	order := axisOrder(n)
	ps := BuildPrefixSums(pixels, low, high)

	extra := table.BestOrders[seedIdx]
	if orderings-1 < len(extra) {
		if orderings < 1 {
			orderings = 1
		}
		extra = extra[:orderings-1]
	}
	candidates := append([]int{seedIdx}, extra...)
	first := true
	for _, idx := range candidates {
		factor := table.Factors[idx]
		if factor == (Matrix2{}) {
			continue
		}
		h := table.Histograms[idx]
		if h.sum(n) != BlockSize {
			continue
		}
		cl, ch, sel, e := evalCandidate(pixels, ps, h, order, n, factor, ip)
		if first || e < bestErr {
			bestLow, bestHigh, bestSelectors, bestErr = cl, ch, sel, e
			first = false
			ok = true
		}
	}
	return
}
