package bc1

import "github.com/deepteams/bcn/internal/colorspace"

// BlockSize is the fixed 4x4 pixel footprint of a BC1 (and BC3 color)
// block.
const BlockSize = 16

// ColorBlock holds the 16 pixels of one 4x4 block in row-major order:
// Pixels[y*4+x].
type ColorBlock struct {
	Pixels [BlockSize]colorspace.Color
}

// Metrics summarizes a ColorBlock: per-channel min/max/mean, the grand sum
// (as a Vec4i, useful to the least-squares endpoint finder), and two flags
// used by the grayscale specialization and the 3-color-black branch.
type Metrics struct {
	Min, Max, Mean colorspace.Color
	Sum            colorspace.Vec4i
	IsGrayscale    bool // every pixel has R=G=B
	HasBlack       bool // at least one pixel has max(R,G,B) < 4
	Count          int  // number of pixels actually accumulated
}

// nearBlack reports whether c's R, G and B are all below 4 — the
// "near-black" test spec.md §4.4 defines.
func nearBlack(c colorspace.Color) bool {
	return c.R < 4 && c.G < 4 && c.B < 4
}

// ComputeMetrics accumulates per-channel min/max/sum/mean over the block.
// When ignoreBlack is set, near-black pixels are omitted from every
// accumulator (used by the 3-color-black branch, which fits endpoints
// only to the non-black pixels); Count then reflects the pixels actually
// used, and Mean/Min/Max fall back to zero values if every pixel was
// near-black.
func ComputeMetrics(b *ColorBlock, ignoreBlack bool) Metrics {
	var m Metrics
	m.Min = colorspace.Opaque(255, 255, 255)
	m.Max = colorspace.Opaque(0, 0, 0)
	m.IsGrayscale = true
	m.HasBlack = false

	var sum [4]int32
	count := 0
	for _, p := range b.Pixels {
		if nearBlack(p) {
			m.HasBlack = true
			if ignoreBlack {
				continue
			}
		}
		if p.R != p.G || p.G != p.B {
			m.IsGrayscale = false
		}
		if p.R < m.Min.R {
			m.Min.R = p.R
		}
		if p.G < m.Min.G {
			m.Min.G = p.G
		}
		if p.B < m.Min.B {
			m.Min.B = p.B
		}
		if p.R > m.Max.R {
			m.Max.R = p.R
		}
		if p.G > m.Max.G {
			m.Max.G = p.G
		}
		if p.B > m.Max.B {
			m.Max.B = p.B
		}
		sum[0] += int32(p.R)
		sum[1] += int32(p.G)
		sum[2] += int32(p.B)
		sum[3] += int32(p.A)
		count++
	}
	m.Count = count
	m.Sum = colorspace.Vec4i{sum[0], sum[1], sum[2], sum[3]}
	if count > 0 {
		m.Mean = colorspace.Opaque(
			round8(sum[0], count), round8(sum[1], count), round8(sum[2], count),
		)
	} else {
		m.Min = colorspace.Color{}
		m.Max = colorspace.Color{}
	}
	return m
}

func round8(sum int32, count int) uint8 {
	v := (int(sum) + count/2) / count
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// AllEqual reports whether every pixel in the block is identical (ignoring
// alpha), the trigger for the solid-color fast path.
func (b *ColorBlock) AllEqual() bool {
	first := b.Pixels[0]
	for _, p := range b.Pixels[1:] {
		if !p.Equal(first) {
			return false
		}
	}
	return true
}
