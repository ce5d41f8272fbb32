package bc1

import (
	"github.com/deepteams/bcn/internal/colorspace"
)

// Options configures one BC1Block encode attempt. LevelOptions builds one
// of these per effort level by porting BC1Encoder::SetLevel's literal 0-19
// preset table (quicktex/s3tc/bc1/BC1Encoder.cpp, _examples/original_source)
// field for field.
type Options struct {
	EndpointMode    EndpointMode
	SelectorMode    SelectorMode
	PowerIterations int

	// LSPasses is how many times the least-squares endpoint refinement
	// loop (re-solve endpoints, re-find selectors) runs; SetLevel's
	// two_ls_passes doubles it from 1 to 2.
	LSPasses int
	// TwoEPPasses mirrors two_ep_passes: when set, endpoint finding also
	// tries EndpointBBoxFloat as a second trial and keeps whichever trial
	// reaches the lower error.
	TwoEPPasses bool

	// Orderings4 and Orderings3 cap how many candidate histograms
	// ClusterFit tries, the seed histogram counted as the first, for
	// 4-color and 3-color blocks respectively (SetLevel's _orderings4/_orderings3, clamped to at
	// least 1). TwoCFPasses mirrors two_cf_passes, running ClusterFit
	// twice per block.
	Orderings4  int
	Orderings3  int
	TwoCFPasses bool
	// Exhaustive mirrors the hidden level 19's exhaustive flag: every
	// candidate in BestOrders is tried instead of just Orderings4/3 of
	// them.
	Exhaustive bool

	UseThreeColor      bool
	UseThreeColorBlack bool

	// SearchRounds is NeighborhoodSearch's iteration budget; 0 disables
	// the endpoint search pass entirely (SetLevel's _search_rounds).
	SearchRounds int
}

// LevelOptions returns the preset Options for effort level 0 (fastest) to
// 19 (slowest/highest quality — level 19 is quicktex's hidden, "extremely
// slow" training mode), per spec.md §6. This is a direct port of
// BC1Encoder::SetLevel (quicktex/s3tc/bc1/BC1Encoder.cpp,
// _examples/original_source): each case sets only the fields it names,
// everything else keeps the defaults set before the switch.
func LevelOptions(level int) Options {
	if level < 0 {
		level = 0
	}
	if level > 19 {
		level = 19
	}

	o := Options{
		EndpointMode:    EndpointPCA,
		SelectorMode:    SelectorCheck2,
		PowerIterations: 4,
		LSPasses:        1,
	}

	switch {
	case level == 0:
		// Faster/higher quality than stb_dxt default.
		o.EndpointMode = EndpointBBoxInt
	case level == 1:
		// Faster/higher quality than stb_dxt default; a bit higher
		// average quality vs. level 0.
		o.EndpointMode = EndpointLS
	case level == 2:
		// Weaker than levels 0/1 on average, stronger on outliers.
		// Uses the defaults above (PCA endpoints, Check2 error).
	case level == 3:
		// Slightly stronger than stb_dxt HIGHQUAL.
		o.LSPasses = 2
	case level == 4:
		o.LSPasses = 2
		o.SelectorMode = SelectorFull
		o.PowerIterations = 6
	case level == 5:
		// stb_dxt HIGHQUAL, plus 3-color if the caller enables it.
		o.LSPasses = 2
		o.SelectorMode = SelectorFaster
	case level == 6:
		o.LSPasses = 2
		o.SelectorMode = SelectorFaster
		o.Orderings4, o.Orderings3 = 1, 1
	case level == 7:
		o.LSPasses = 2
		o.SelectorMode = SelectorFaster
		o.Orderings4, o.Orderings3 = 4, 1
	case level == 8:
		o.LSPasses = 2
		o.SelectorMode = SelectorFaster
		o.Orderings4, o.Orderings3 = 8, 1
	case level == 9:
		o.LSPasses = 2
		o.Orderings4, o.Orderings3 = 11, 3
	case level == 10:
		o.LSPasses = 2
		o.Orderings4, o.Orderings3 = 20, 8
	case level == 11:
		o.LSPasses = 2
		o.Orderings4, o.Orderings3 = 28, 16
	case level == 12:
		o.LSPasses = 2
		o.Orderings4, o.Orderings3 = 32, 32
	case level == 13:
		o.LSPasses = 2
		o.TwoEPPasses = true
		o.SelectorMode = SelectorFull
		o.Orderings4, o.Orderings3 = 32, 32
		o.SearchRounds = 20
		o.PowerIterations = 6
	case level == 14:
		o.LSPasses = 2
		o.TwoEPPasses = true
		o.SelectorMode = SelectorFull
		o.Orderings4, o.Orderings3 = 32, 32
		o.SearchRounds = 32
		o.PowerIterations = 6
	case level == 15:
		o.LSPasses = 2
		o.TwoEPPasses = true
		o.SelectorMode = SelectorFull
		o.Orderings4, o.Orderings3 = 56, 32
		o.SearchRounds = 32
		o.PowerIterations = 6
	case level == 16:
		o.LSPasses = 2
		o.TwoEPPasses = true
		o.SelectorMode = SelectorFull
		o.Orderings4, o.Orderings3 = 80, 32
		o.SearchRounds = 256
		o.PowerIterations = 6
	case level == 17:
		o.LSPasses = 2
		o.TwoEPPasses = true
		o.SelectorMode = SelectorFull
		o.Orderings4, o.Orderings3 = 128, 32
		o.SearchRounds = 256
	case level == 18:
		o.LSPasses = 2
		o.TwoEPPasses = true
		o.TwoCFPasses = true
		o.SelectorMode = SelectorFull
		o.Orderings4, o.Orderings3 = 128, 32
		o.SearchRounds = 256
		o.PowerIterations = 6
	case level == 19:
		// Quicktex's hidden training-only mode.
		o.LSPasses = 2
		o.TwoEPPasses = true
		o.TwoCFPasses = true
		o.Exhaustive = true
		o.SelectorMode = SelectorFull
		o.Orderings4, o.Orderings3 = 128, 32
		o.SearchRounds = 256
		o.PowerIterations = 6
	}

	if o.Orderings4 < 1 {
		o.Orderings4 = 1
	}
	if o.Orderings3 < 1 {
		o.Orderings3 = 1
	}

	if level >= 14 {
		o.UseThreeColor = true
	}
	if level >= 16 {
		o.UseThreeColorBlack = true
	}
	return o
}

// Result is one encoded 4x4 block: its wire bytes plus the squared error
// (sum over R,G,B) against the source pixels, so callers comparing BC1
// against a BC3/BC5 composition can reason about fit quality.
type Result struct {
	Block Block
	Error int
}

// EncodeBlock runs the encode cascade of spec.md §4: solid-color fast path,
// metrics, endpoint finding, selector finding, least-squares refinement
// (one or two passes per Options.LSPasses), cluster-fit refinement,
// optional 3-color and 3-color-black branches (each scored independently
// and kept only if better), and an optional neighborhood search, before
// packing the winning (low, high, selectors) into wire form.
func EncodeBlock(block *ColorBlock, t *Tables, opts Options) Result {
	m := ComputeMetrics(block, false)

	if block.AllEqual() {
		low, high := singleColorEndpoints(block.Pixels[0], t.SC5Four, t.SC6Four)
		pal := t.Interp.BuildPalette(low, high)
		sel, errTotal, _ := FindSelectors(block.Pixels, pal.Entries, 4, SelectorFull, noBound)
		color0, color1, sel := EnforceOrdering(low, high, sel, false)
		return Result{Block: Pack(color0, color1, sel, 4, false), Error: errTotal}
	}

	best := encodeFourColor(block, m, t, opts)

	if opts.UseThreeColor {
		if cand, ok := encodeThreeColor(block, m, t, opts, false); ok && cand.Error < best.Error {
			best = cand
		}
	}
	if opts.UseThreeColorBlack && m.HasBlack {
		if cand, ok := encodeThreeColor(block, m, t, opts, true); ok && cand.Error < best.Error {
			best = cand
		}
	}
	return best
}

// orderings4Cap returns how many ClusterFit candidates opts permits for
// 4-color blocks: unbounded under Exhaustive, otherwise Orderings4.
func orderings4Cap(opts Options, table *OrderTable, seedIdx int) int {
	if opts.Exhaustive {
		return len(table.BestOrders[seedIdx]) + 1
	}
	return opts.Orderings4
}

func orderings3Cap(opts Options, table *OrderTable, seedIdx int) int {
	if opts.Exhaustive {
		return len(table.BestOrders[seedIdx]) + 1
	}
	return opts.Orderings3
}

func encodeFourColorTrial(block *ColorBlock, m Metrics, t *Tables, opts Options, endpointMode EndpointMode) (colorspace.Color, colorspace.Color, [16]int, int) {
	low, high := FindEndpoints(block, m, endpointMode, opts.PowerIterations)
	pal := t.Interp.BuildPalette(low, high)
	sel, errTotal, _ := FindSelectors(block.Pixels, pal.Entries, 4, opts.SelectorMode, noBound)

	for pass := 0; pass < opts.LSPasses; pass++ {
		rl, rh := RefineEndpoints(block.Pixels, sel, 4, t.Order4, t.SC5Four, t.SC6Four)
		rpal := t.Interp.BuildPalette(rl, rh)
		rsel, rerr, _ := FindSelectors(block.Pixels, rpal.Entries, 4, SelectorFull, errTotal)
		if rerr >= errTotal {
			break
		}
		low, high, sel, errTotal = rl, rh, rsel, rerr
	}
	return low, high, sel, errTotal
}

func encodeFourColor(block *ColorBlock, m Metrics, t *Tables, opts Options) Result {
	low, high, sel, errTotal := encodeFourColorTrial(block, m, t, opts, opts.EndpointMode)

	if opts.TwoEPPasses && opts.EndpointMode != EndpointBBoxFloat {
		tl, th, tsel, terr := encodeFourColorTrial(block, m, t, opts, EndpointBBoxFloat)
		if terr < errTotal {
			low, high, sel, errTotal = tl, th, tsel, terr
		}
	}

	if errTotal > 0 {
		hist := histogramOf(sel, 4)
		if !hist.IsUniform(4) {
			if idx, ok := t.Order4.HashIndex(hist); ok {
				passes := 1
				if opts.TwoCFPasses {
					passes = 2
				}
				cap4 := orderings4Cap(opts, t.Order4, idx)
				for p := 0; p < passes; p++ {
					cl, ch, csel, cerr, ok := ClusterFit(block.Pixels, low, high, 4, idx, cap4, t.Order4, &t.Interp)
					if !ok || cerr >= errTotal {
						break
					}
					low, high, sel, errTotal = cl, ch, csel, cerr
				}
			}
		}
	}

	if errTotal > 0 && opts.SearchRounds > 0 {
		seed := SearchResult{Low: low, High: high, Selectors: sel, Error: errTotal}
		best := NeighborhoodSearch(block.Pixels, seed, 4, SelectorFull, &t.Interp, opts.SearchRounds)
		low, high, sel, errTotal = best.Low, best.High, best.Selectors, best.Error
	}

	color0, color1, sel := EnforceOrdering(low, high, sel, false)
	return Result{Block: Pack(color0, color1, sel, 4, false), Error: errTotal}
}

// assign3ColorSelectors nearest-matches every pixel to pal's three opaque
// entries (selectors 0-2). With ignoreBlack set, near-black pixels take
// selector 3 without being matched and add nothing to errTotal.
func assign3ColorSelectors(pixels [16]colorspace.Color, pal [4]colorspace.Color, ignoreBlack bool) (sel [16]int, errTotal int) {
	for i, p := range pixels {
		if ignoreBlack && nearBlack(p) {
			sel[i] = 3
			continue
		}
		best := 0
		bestErr := sqDist(p, pal[0])
		for s := 1; s < 3; s++ {
			if e := sqDist(p, pal[s]); e < bestErr {
				bestErr, best = e, s
			}
		}
		sel[i] = best
		errTotal += bestErr
	}
	return
}

// encodeThreeColor fits endpoints to the non-black pixels (if
// ignoreBlack), builds a forced 3-color palette, and assigns every
// near-black pixel selector 3 when ignoreBlack requests the
// 3-color-black variant.
func encodeThreeColor(block *ColorBlock, m Metrics, t *Tables, opts Options, ignoreBlack bool) (Result, bool) {
	m3 := m
	if ignoreBlack {
		m3 = ComputeMetrics(block, true)
		if m3.Count == 0 {
			return Result{}, false
		}
	}
	low, high := FindEndpoints(block, m3, opts.EndpointMode, opts.PowerIterations)
	color0, color1 := forceThreeColorOrder(low, high)
	pal := t.Interp.BuildPalette(color0, color1)
	sel, errTotal := assign3ColorSelectors(block.Pixels, pal.Entries, ignoreBlack)

	if !ignoreBlack {
		for pass := 0; pass < opts.LSPasses; pass++ {
			rl, rh := RefineEndpoints(block.Pixels, sel, 3, t.Order3, t.SC5Three, t.SC6Three)
			rc0, rc1 := forceThreeColorOrder(rl, rh)
			rpal := t.Interp.BuildPalette(rc0, rc1)
			rsel, rerr := assign3ColorSelectors(block.Pixels, rpal.Entries, false)
			if rerr >= errTotal {
				break
			}
			color0, color1, sel, errTotal = rc0, rc1, rsel, rerr
		}

		if errTotal > 0 {
			hist := histogramOf(sel, 3)
			if !hist.IsUniform(3) {
				if idx, ok := t.Order3.HashIndex(hist); ok {
					passes := 1
					if opts.TwoCFPasses {
						passes = 2
					}
					cap3 := orderings3Cap(opts, t.Order3, idx)
					for p := 0; p < passes; p++ {
						cl, ch, csel, cerr, ok := ClusterFit(block.Pixels, color0, color1, 3, idx, cap3, t.Order3, &t.Interp)
						if !ok || cerr >= errTotal {
							break
						}
						color0, color1, sel, errTotal = cl, ch, csel, cerr
					}
				}
			}
		}
	}

	color0, color1, sel = EnforceOrdering(color0, color1, sel, true)
	return Result{Block: Pack(color0, color1, sel, 3, ignoreBlack), Error: errTotal}, true
}

// forceThreeColorOrder returns (low, high) reordered so Pack565(color1) >=
// Pack565(color0), the wire condition that selects 3-color mode.
func forceThreeColorOrder(low, high colorspace.Color) (color0, color1 colorspace.Color) {
	if high.Pack565() >= low.Pack565() {
		return low, high
	}
	return high, low
}
