package bc1

import "github.com/deepteams/bcn/internal/colorspace"

// histogramOf tallies the selector counts for a 16-selector assignment.
func histogramOf(selectors [16]int, n int) Histogram {
	var h Histogram
	for _, s := range selectors {
		h[s]++
	}
	_ = n
	return h
}

// meanColor averages the block's pixels (rounding to nearest), the input
// to the single-color match tables when a histogram turns out uniform.
func meanColor(pixels [16]colorspace.Color) colorspace.Color {
	var r, g, b int
	for _, p := range pixels {
		r += int(p.R)
		g += int(p.G)
		b += int(p.B)
	}
	return colorspace.Opaque(round255(r), round255(g), round255(b))
}

func round255(sum int) uint8 {
	v := (sum + 8) / 16
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// singleColorEndpoints looks the block average up in the bit-width-
// appropriate match tables and returns the resulting endpoints in 5:6:5
// scale. Callers pick the mode by passing the 3-color or the 4-color pair
// of tables as sc5/sc6.
func singleColorEndpoints(mean colorspace.Color, sc5, sc6 *SingleColorTable) (low, high colorspace.Color) {
	er := sc5.Entries[mean.R]
	eg := sc6.Entries[mean.G]
	eb := sc5.Entries[mean.B]
	low = colorspace.FromComponents565(er.Low, eg.Low, eb.Low)
	high = colorspace.FromComponents565(er.High, eg.High, eb.High)
	return
}

// weightedSums computes the two normal-equation right-hand-side sums,
// scaled to match Factors' unnormalized matrix (spec.md §4.7): with
// wLow=(n-1-s), wHigh=s, q0 = (n-1)*Σ pixel*wLow, q1 = (n-1)*Σ pixel*wHigh.
// The (n-1) factor keeps units consistent with Factors, which is built
// from the same unnormalized weights squared; dropping it would scale the
// solved endpoints down by (n-1).
func weightedSums(pixels [16]colorspace.Color, selectors [16]int, n int) (q0, q1 [3]float32) {
	for i, p := range pixels {
		s := selectors[i]
		wLow := float32(n - 1 - s)
		wHigh := float32(s)
		q0[0] += wLow * float32(p.R)
		q0[1] += wLow * float32(p.G)
		q0[2] += wLow * float32(p.B)
		q1[0] += wHigh * float32(p.R)
		q1[1] += wHigh * float32(p.G)
		q1[2] += wHigh * float32(p.B)
	}
	scale := float32(n - 1)
	for i := 0; i < 3; i++ {
		q0[i] *= scale
		q1[i] *= scale
	}
	return
}

// RefineEndpoints is the least-squares endpoint refinement of spec.md
// §4.7: build the selector histogram, look up its cached inverse matrix by
// hash, and solve for improved (low, high). A uniform histogram (every
// pixel the same selector) fails the hash lookup by construction and
// falls through to the single-color match tables for the block average.
func RefineEndpoints(pixels [16]colorspace.Color, selectors [16]int, n int, table *OrderTable, sc5, sc6 *SingleColorTable) (low, high colorspace.Color) {
	hist := histogramOf(selectors, n)
	if hist.IsUniform(n) {
		return singleColorEndpoints(meanColor(pixels), sc5, sc6)
	}
	idx, ok := table.HashIndex(hist)
	if !ok {
		return singleColorEndpoints(meanColor(pixels), sc5, sc6)
	}
	factor := table.Factors[idx]
	if factor == (Matrix2{}) {
		return singleColorEndpoints(meanColor(pixels), sc5, sc6)
	}
	q0, q1 := weightedSums(pixels, selectors, n)
	lr, hr := factor.solve(q0[0], q1[0])
	lg, hg := factor.solve(q0[1], q1[1])
	lb, hb := factor.solve(q0[2], q1[2])
	low = colorspace.Round565(lr, lg, lb)
	high = colorspace.Round565(hr, hg, hb)
	return
}
