package bc1

import "github.com/deepteams/bcn/internal/colorspace"

// EndpointMode selects one of the four initial-endpoint algorithms
// spec.md §4.5 describes.
type EndpointMode int

const (
	EndpointLS EndpointMode = iota
	EndpointBBoxFloat
	EndpointBBoxInt
	EndpointPCA
)

// FindEndpoints produces an initial (low, high) endpoint pair in 5:6:5
// scale from a 4x4 block. The grayscale specialization (spec.md §4.5) is
// applied uniformly ahead of the four mode-specific algorithms: when every
// pixel has R=G=B and the R span is under 2, the block collapses to a
// single-color endpoint pair; otherwise, if the block is grayscale at all,
// both endpoints are derived from the R channel's min/max alone,
// replicated across channels.
func FindEndpoints(block *ColorBlock, m Metrics, mode EndpointMode, powerIterations int) (low, high colorspace.Color) {
	if m.IsGrayscale {
		span := int(m.Max.R) - int(m.Min.R)
		if span < 2 {
			v := float32(m.Mean.R)
			c := colorspace.Round565(v, v, v)
			return c, c
		}
		lo, hi := float32(m.Min.R), float32(m.Max.R)
		return colorspace.Round565(lo, lo, lo), colorspace.Round565(hi, hi, hi)
	}

	switch mode {
	case EndpointLS:
		return findEndpointsLS(block)
	case EndpointBBoxFloat:
		return findEndpointsBBoxFloat(block, m)
	case EndpointBBoxInt:
		return findEndpointsBBoxInt(block, m)
	case EndpointPCA:
		return findEndpointsPCA(block, m, powerIterations)
	default:
		panic("bc1: unknown endpoint mode")
	}
}

// widestChannel returns the index (0=R,1=G,2=B) of the channel with the
// largest min/max span.
func widestChannel(m Metrics) int {
	spans := [3]int{
		int(m.Max.R) - int(m.Min.R),
		int(m.Max.G) - int(m.Min.G),
		int(m.Max.B) - int(m.Min.B),
	}
	best := 0
	for i := 1; i < 3; i++ {
		if spans[i] > spans[best] {
			best = i
		}
	}
	return best
}

func channelOf(c colorspace.Color, ch int) float32 {
	switch ch {
	case 0:
		return float32(c.R)
	case 1:
		return float32(c.G)
	default:
		return float32(c.B)
	}
}

// findEndpointsLS fits a line y=ax+b per channel against the channel with
// the widest span, evaluates it at x=min and x=max, and insets both ends
// toward the center by 1/16 of the resulting span (spec.md §4.5).
func findEndpointsLS(block *ColorBlock) (low, high colorspace.Color) {
	m := ComputeMetrics(block, false)
	xch := widestChannel(m)

	var sumX, sumXX float32
	var sumY, sumXY [3]float32
	n := float32(BlockSize)
	for _, p := range block.Pixels {
		x := channelOf(p, xch)
		sumX += x
		sumXX += x * x
		for ch := 0; ch < 3; ch++ {
			y := channelOf(p, ch)
			sumY[ch] += y
			sumXY[ch] += x * y
		}
	}

	minX, maxX := channelOf(m.Min, xch), channelOf(m.Max, xch)
	denom := n*sumXX - sumX*sumX

	var loVals, hiVals [3]float32
	for ch := 0; ch < 3; ch++ {
		var a, b float32
		if denom == 0 {
			a, b = 0, sumY[ch]/n
		} else {
			a = (n*sumXY[ch] - sumX*sumY[ch]) / denom
			b = (sumY[ch] - a*sumX) / n
		}
		yLo := a*minX + b
		yHi := a*maxX + b
		inset := (yHi - yLo) / 16
		loVals[ch] = yLo + inset
		hiVals[ch] = yHi - inset
	}
	low = colorspace.Round565(loVals[0], loVals[1], loVals[2])
	high = colorspace.Round565(hiVals[0], hiVals[1], hiVals[2])
	return
}

// diagonalSwap applies spec.md §4.5's covariance-sign correction: if
// (channel-mean) covaries negatively with (B-mean), the channel's low and
// high are swapped.
func diagonalSwap(lo, hi *float32, covWithB float32) {
	if covWithB < 0 {
		*lo, *hi = *hi, *lo
	}
}

func covariance(block *ColorBlock, ch int, meanCh float32, meanB float32) float32 {
	var c float32
	for _, p := range block.Pixels {
		c += (channelOf(p, ch) - meanCh) * (channelOf(p, 2) - meanB)
	}
	return c
}

// findEndpointsBBoxFloat insets the per-channel min/max toward the center
// by (span - 8/255)/16 in normalized [0,1] scale, clamps, and applies the
// diagonal covariance-sign correction before rounding. The inset/clamp
// step is plain Vec4f arithmetic (spec.md §4.5 has no per-channel special
// case here, so the whole RGB triple moves together).
func findEndpointsBBoxFloat(block *ColorBlock, m Metrics) (low, high colorspace.Color) {
	lo := colorspace.NewVec4f(m.Min)
	hi := colorspace.NewVec4f(m.Max)
	span := hi.Sub(lo)
	inset := span.Sub(colorspace.Vec4f{8.0 / 255, 8.0 / 255, 8.0 / 255, 0}).Scale(1.0 / 16)
	lo = lo.Add(inset).Clamp(0, 1)
	hi = hi.Sub(inset).Clamp(0, 1)
	loF, hiF := [3]float32{lo[0], lo[1], lo[2]}, [3]float32{hi[0], hi[1], hi[2]}

	covRB := covariance(block, 0, float32(m.Mean.R), float32(m.Mean.B))
	covGB := covariance(block, 1, float32(m.Mean.G), float32(m.Mean.B))
	diagonalSwap(&loF[0], &hiF[0], covRB)
	diagonalSwap(&loF[1], &hiF[1], covGB)

	low = colorspace.Round565(loF[0]*255, loF[1]*255, loF[2]*255)
	high = colorspace.Round565(hiF[0]*255, hiF[1]*255, hiF[2]*255)
	return
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// findEndpointsBBoxInt is findEndpointsBBoxFloat's all-integer twin: inset
// by (span-8)>>4 in 0..255 scale, clamp, diagonal swap, then quantize to
// 5:6:5 with a plain shift (no precise-rounding table) — the integer path
// is intentionally the cheap, non-table variant.
func findEndpointsBBoxInt(block *ColorBlock, m Metrics) (low, high colorspace.Color) {
	var loI, hiI [3]int
	for ch := 0; ch < 3; ch++ {
		lo := int(channelOf(m.Min, ch))
		hi := int(channelOf(m.Max, ch))
		span := hi - lo
		inset := (span - 8) >> 4
		lo += inset
		hi -= inset
		loI[ch] = clampByte(lo)
		hiI[ch] = clampByte(hi)
	}
	covRB := covariance(block, 0, float32(m.Mean.R), float32(m.Mean.B))
	covGB := covariance(block, 1, float32(m.Mean.G), float32(m.Mean.B))
	if covRB < 0 {
		loI[0], hiI[0] = hiI[0], loI[0]
	}
	if covGB < 0 {
		loI[1], hiI[1] = hiI[1], loI[1]
	}

	low = colorspace.FromComponents565(uint8(loI[0])>>3, uint8(loI[1])>>2, uint8(loI[2])>>3)
	high = colorspace.FromComponents565(uint8(hiI[0])>>3, uint8(hiI[1])>>2, uint8(hiI[2])>>3)
	return
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// findEndpointsPCA computes the dominant color axis by power iteration on
// the 3x3 covariance matrix of non-black pixels, then picks the two
// pixels with the most extreme projection onto that axis as the endpoints
// (spec.md §4.5).
func findEndpointsPCA(block *ColorBlock, m Metrics, powerIterations int) (low, high colorspace.Color) {
	var sum [3]float32
	count := 0
	for _, p := range block.Pixels {
		if nearBlack(p) {
			continue
		}
		sum[0] += float32(p.R)
		sum[1] += float32(p.G)
		sum[2] += float32(p.B)
		count++
	}
	if count == 0 {
		for _, p := range block.Pixels {
			sum[0] += float32(p.R)
			sum[1] += float32(p.G)
			sum[2] += float32(p.B)
			count++
		}
	}
	mean := [3]float32{sum[0] / float32(count), sum[1] / float32(count), sum[2] / float32(count)}

	var cov [3][3]float32
	for _, p := range block.Pixels {
		if nearBlack(p) && count != BlockSize {
			continue
		}
		d := [3]float32{float32(p.R) - mean[0], float32(p.G) - mean[1], float32(p.B) - mean[2]}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				cov[i][j] += d[i] * d[j]
			}
		}
	}

	axis := [3]float32{
		float32(m.Max.R) - float32(m.Min.R),
		float32(m.Max.G) - float32(m.Min.G),
		float32(m.Max.B) - float32(m.Min.B),
	}
	if cov[0][2] < 0 {
		axis[0] = -axis[0]
	}
	if cov[1][2] < 0 {
		axis[1] = -axis[1]
	}

	for iter := 0; iter < powerIterations; iter++ {
		var next [3]float32
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				next[i] += cov[i][j] * axis[j]
			}
		}
		maxAbs := float32(0)
		for _, v := range next {
			a := v
			if a < 0 {
				a = -a
			}
			if a > maxAbs {
				maxAbs = a
			}
		}
		if maxAbs == 0 {
			break
		}
		for i := range next {
			next[i] /= maxAbs
		}
		axis = next
	}

	var minProj, maxProj float32
	var minPixel, maxPixel colorspace.Color
	first := true
	for _, p := range block.Pixels {
		proj := (float32(p.R)-mean[0])*axis[0] + (float32(p.G)-mean[1])*axis[1] + (float32(p.B)-mean[2])*axis[2]
		if first || proj < minProj {
			minProj = proj
			minPixel = p
		}
		if first || proj > maxProj {
			maxProj = proj
			maxPixel = p
		}
		first = false
	}

	low = colorspace.Round565(float32(minPixel.R), float32(minPixel.G), float32(minPixel.B))
	high = colorspace.Round565(float32(maxPixel.R), float32(maxPixel.G), float32(maxPixel.B))
	return
}
