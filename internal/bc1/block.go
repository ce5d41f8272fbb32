package bc1

import (
	"encoding/binary"

	"github.com/deepteams/bcn/internal/colorspace"
)

// Block is the 8-byte on-wire BC1 block: color0 and color1 as little-endian
// 5:6:5 values, followed by 16 2-bit selectors packed 4 per byte, row-major,
// least-significant pair first (spec.md §3).
type Block [8]byte

// Pack encodes (color0, color1, selectors) into the wire format. n is 3 or
// 4; for n==3, any selector==3 is rejected unless allowBlack is set, since
// 3 denotes transparent black only in the 3-color-black mode.
func Pack(color0, color1 colorspace.Color, selectors [16]int, n int, allowBlack bool) Block {
	var b Block
	binary.LittleEndian.PutUint16(b[0:2], color0.Pack565())
	binary.LittleEndian.PutUint16(b[2:4], color1.Pack565())
	for i, s := range selectors {
		if n == 3 && s == 3 && !allowBlack {
			s = 2
		}
		byteIdx := 4 + i/4
		shift := uint((i % 4) * 2)
		b[byteIdx] |= byte(s&0x3) << shift
	}
	return b
}

// Unpack splits a wire Block back into its raw color0/color1 (still 5:6:5
// packed, not expanded) and 16 selectors.
func Unpack(b Block) (color0, color1 uint16, selectors [16]int) {
	color0 = binary.LittleEndian.Uint16(b[0:2])
	color1 = binary.LittleEndian.Uint16(b[2:4])
	for i := range selectors {
		byteIdx := 4 + i/4
		shift := uint((i % 4) * 2)
		selectors[i] = int((b[byteIdx] >> shift) & 0x3)
	}
	return
}

// Mode reports whether the wire colors select 3-color (color1 >= color0) or
// 4-color (color0 > color1) interpretation, per spec.md §3.
func Mode(color0, color1 uint16) (threeColor bool) {
	return color1 >= color0
}

// EnforceOrdering applies spec.md §3's mode-vs-endpoint-ordering invariant:
// a 4-color block must encode color0 > color1 on the wire. If the caller's
// chosen (low, high) would pack as color0 <= color1 — which the decoder
// would read back as 3-color — the endpoints are swapped and every
// selector's bit 0 is flipped (selector 0<->1, 2<->3) to preserve the
// decoded colors. 3-color-mode callers pass wantThreeColor=true and get the
// opposite correction.
func EnforceOrdering(low, high colorspace.Color, selectors [16]int, wantThreeColor bool) (color0, color1 colorspace.Color, out [16]int) {
	threeColor := high.Pack565() >= low.Pack565()
	if threeColor == wantThreeColor {
		return low, high, selectors
	}
	color0, color1 = high, low
	for i, s := range selectors {
		out[i] = s ^ 1
	}
	return
}
