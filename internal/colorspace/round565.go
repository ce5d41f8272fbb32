package colorspace

import "math"

// expand upscales a bits-wide quantized component to 8 bits by bit
// replication, matching Unpack565's per-channel expansion.
func expand(bits int, v uint8) uint8 {
	switch bits {
	case 5:
		return (v << 3) | (v >> 2)
	case 6:
		return (v << 2) | (v >> 4)
	default:
		panic("colorspace: expand: unsupported bit width")
	}
}

// midpointTable holds, for each quantized value i of a given bit width, the
// upper bound of the 8-bit input range that should round to i. The final
// entry is a sentinel (math.MaxFloat32) so every value rounds to the last bucket
// without a separate bounds check, per spec.md §9's "last entry is
// sentinel 1e37f, never matches, to simplify the boundary" design note.
func buildMidpointTable(bits int) []float32 {
	n := 1 << bits
	t := make([]float32, n)
	for i := 0; i < n-1; i++ {
		lo := float32(expand(bits, uint8(i)))
		hi := float32(expand(bits, uint8(i+1)))
		t[i] = (lo + hi) / 2
	}
	t[n-1] = float32(math.MaxFloat32)
	return t
}

var (
	midpoint5 = buildMidpointTable(5)
	midpoint6 = buildMidpointTable(6)
)

// PreciseRound quantizes an 8-bit-scale value (0..255, may be fractional)
// to the given bit width using the midpoint table, rather than a naive
// (v*((1<<bits)-1)+127)/255 round, so ties match the source's boundary
// behavior exactly.
func PreciseRound(bits int, value float32) uint8 {
	var t []float32
	switch bits {
	case 5:
		t = midpoint5
	case 6:
		t = midpoint6
	default:
		panic("colorspace: PreciseRound: unsupported bit width")
	}
	for i, m := range t {
		if value <= m {
			return uint8(i)
		}
	}
	return uint8(len(t) - 1)
}

// Round565 quantizes an (R,G,B) triple in 8-bit float scale to 5:6:5 and
// returns the result in FromComponents565's scale (top bits, lower bits
// zero).
func Round565(r, g, b float32) Color {
	r5 := PreciseRound(5, r)
	g6 := PreciseRound(6, g)
	b5 := PreciseRound(5, b)
	return FromComponents565(r5, g6, b5)
}
