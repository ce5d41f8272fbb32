package bc1

import "github.com/deepteams/bcn/internal/colorspace"

// SelectorMode is one of the four error-accounting strategies spec.md
// §4.6 describes for assigning a per-pixel palette index. None, Faster and
// Check2 are 4-color-only geometric shortcuts; Full is exhaustive and is
// the only mode used for the 3-color and 3-color-black branches.
type SelectorMode int

const (
	SelectorNone SelectorMode = iota
	SelectorFaster
	SelectorCheck2
	SelectorFull
)

// noBound disables the error short-circuit.
const noBound = int(^uint(0) >> 1)

func sqDist(a, b colorspace.Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// geometricOrder sorts the four palette entries by their projection onto
// the palette[0]->palette[3] axis and returns the three midpoint
// thresholds used by None/Faster/Check2 to classify a pixel's own
// projection without touching per-entry squared error.
type geometricOrder struct {
	axis       [3]float32
	p0         colorspace.Color
	order      [4]int
	thresholds [3]float32
}

func buildGeometricOrder(palette [4]colorspace.Color) geometricOrder {
	p0 := palette[0]
	axis := [3]float32{
		float32(palette[3].R) - float32(p0.R),
		float32(palette[3].G) - float32(p0.G),
		float32(palette[3].B) - float32(p0.B),
	}
	dot := func(c colorspace.Color) float32 {
		return (float32(c.R)-float32(p0.R))*axis[0] +
			(float32(c.G)-float32(p0.G))*axis[1] +
			(float32(c.B)-float32(p0.B))*axis[2]
	}
	dots := [4]float32{dot(palette[0]), dot(palette[1]), dot(palette[2]), dot(palette[3])}
	order := [4]int{0, 1, 2, 3}
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && dots[order[j-1]] > dots[order[j]]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
	var th [3]float32
	for k := 0; k < 3; k++ {
		th[k] = (dots[order[k]] + dots[order[k+1]]) / 2
	}
	return geometricOrder{axis: axis, p0: p0, order: order, thresholds: th}
}

func (g geometricOrder) classify(p colorspace.Color) int {
	proj := (float32(p.R)-float32(g.p0.R))*g.axis[0] +
		(float32(p.G)-float32(g.p0.G))*g.axis[1] +
		(float32(p.B)-float32(g.p0.B))*g.axis[2]
	bucket := 3
	for k := 0; k < 3; k++ {
		if proj <= g.thresholds[k] {
			bucket = k
			break
		}
	}
	return g.order[bucket]
}

// FindSelectors assigns each of the 16 pixels a palette index in [0,n),
// per the chosen error-accounting mode (spec.md §4.6). bound disables the
// short-circuit when passed noBound. aborted reports that the running
// error met or exceeded bound at one of the once-per-row checks (after
// pixels 3, 7, 11 and 15, so possibly with all 16 pixels scored) — the
// caller should treat this candidate as no better than whatever produced
// bound and move on without trusting the partial error/selectors.
func FindSelectors(pixels [16]colorspace.Color, palette [4]colorspace.Color, n int, mode SelectorMode, bound int) (selectors [16]int, totalError int, aborted bool) {
	if n == 3 {
		mode = SelectorFull
	}
	switch mode {
	case SelectorNone:
		g := buildGeometricOrder(palette)
		for i, p := range pixels {
			selectors[i] = g.classify(p)
		}
		return selectors, 0, false
	case SelectorFaster:
		g := buildGeometricOrder(palette)
		for i, p := range pixels {
			s := g.classify(p)
			selectors[i] = s
			totalError += sqDist(p, palette[s])
			if i%4 == 3 && totalError >= bound {
				return selectors, totalError, true
			}
		}
		return selectors, totalError, false
	case SelectorCheck2:
		g := buildGeometricOrder(palette)
		for i, p := range pixels {
			est := g.classify(p)
			bucket := bucketOf(g, est)
			neighborBucket := bucket + 1
			if neighborBucket > 3 {
				neighborBucket = bucket - 1
			}
			neighbor := g.order[clampBucket(neighborBucket)]

			eEst := sqDist(p, palette[est])
			eNb := sqDist(p, palette[neighbor])
			chosen := est
			switch {
			case eNb < eEst:
				chosen = neighbor
			case eNb == eEst:
				if preferOverTie(neighbor, est) {
					chosen = neighbor
				}
			}
			selectors[i] = chosen
			totalError += sqDist(p, palette[chosen])
			if i%4 == 3 && totalError >= bound {
				return selectors, totalError, true
			}
		}
		return selectors, totalError, false
	default: // SelectorFull
		for i, p := range pixels {
			best := 0
			bestErr := sqDist(p, palette[0])
			for s := 1; s < n; s++ {
				e := sqDist(p, palette[s])
				if e < bestErr || (e == bestErr && s == 3) {
					bestErr, best = e, s
				}
			}
			selectors[i] = best
			totalError += bestErr
			if i%4 == 3 && totalError >= bound {
				return selectors, totalError, true
			}
		}
		return selectors, totalError, false
	}
}

func bucketOf(g geometricOrder, selector int) int {
	for b, s := range g.order {
		if s == selector {
			return b
		}
	}
	return 0
}

func clampBucket(b int) int {
	if b < 0 {
		return 0
	}
	if b > 3 {
		return 3
	}
	return b
}

// preferOverTie implements Check2's tie-break: prefer the endpoint
// (non-interpolated) palette entries 0/1 over the interpolated 2/3.
func preferOverTie(candidate, current int) bool {
	candEndpoint := candidate == 0 || candidate == 1
	curEndpoint := current == 0 || current == 1
	return candEndpoint && !curEndpoint
}
