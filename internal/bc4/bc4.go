// Package bc4 implements the single-channel 8-byte block format BC3's
// alpha plane and BC5's two channels are both built from: two 8-bit
// endpoints plus 16 3-bit selectors, packed with internal/bcbits.
package bc4

import "github.com/deepteams/bcn/internal/bcbits"

// Block is the 8-byte wire format: endpoint0, endpoint1, then 16 packed
// 3-bit selectors (48 bits, LSB-first via bcbits).
type Block [8]byte

// Palette returns the 8 reconstructed values for (e0, e1): 8-level mode
// (e0>e1) linearly interpolates 6 intermediate values between the two
// endpoints; 6-level mode (e0<=e1) interpolates 4 intermediate values and
// fixes slots 6 and 7 at 0 and 255.
func Palette(e0, e1 uint8) [8]uint8 {
	var p [8]uint8
	p[0], p[1] = e0, e1
	if e0 > e1 {
		for k := 1; k <= 6; k++ {
			p[k+1] = uint8(((7-k)*int(e0) + k*int(e1) + 3) / 7)
		}
		return p
	}
	for k := 1; k <= 4; k++ {
		p[k+1] = uint8(((5-k)*int(e0) + k*int(e1) + 2) / 5)
	}
	p[6], p[7] = 0, 255
	return p
}

// Pack assembles a Block from its two endpoints and 16 selectors (0..7).
func Pack(e0, e1 uint8, selectors [16]int) Block {
	w := bcbits.NewWriter(8)
	w.PutBits(uint32(e0), 8)
	w.PutBits(uint32(e1), 8)
	for _, s := range selectors {
		w.PutBits(uint32(s), 3)
	}
	var b Block
	copy(b[:], w.Bytes())
	return b
}

// Unpack splits a Block back into its endpoints and selectors.
func Unpack(b Block) (e0, e1 uint8, selectors [16]int) {
	r := bcbits.NewReader(b[:])
	e0 = uint8(r.GetBits(8))
	e1 = uint8(r.GetBits(8))
	for i := range selectors {
		selectors[i] = int(r.GetBits(3))
	}
	return
}

func nearest(pal [8]uint8, n int, v uint8) (sel int, errAbs int) {
	best, bestErr := 0, absInt(int(pal[0])-int(v))
	for i := 1; i < n; i++ {
		if e := absInt(int(pal[i]) - int(v)); e < bestErr {
			best, bestErr = i, e
		}
	}
	return best, bestErr
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func assign(pal [8]uint8, n int, values [16]uint8) (selectors [16]int, sqErr int) {
	for i, v := range values {
		sel, e := nearest(pal, n, v)
		selectors[i] = sel
		sqErr += e * e
	}
	return
}

// EncodeBlock fits a Block to 16 single-channel values: candidate
// (e0, e1) pairs are built from the data's own min/max (8-level, e0>e1)
// and from its min/max with any true 0/255 extremes excluded (6-level,
// e0<=e1, letting the format's built-in 0/255 slots absorb those without
// spending an endpoint on them), each scored by nearest-selector squared
// error, keeping the cheaper of the two.
func EncodeBlock(values [16]uint8) Block {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		sel := [16]int{}
		return Pack(lo, hi, sel)
	}

	pal8 := Palette(hi, lo)
	sel8, err8 := assign(pal8, 8, values)

	innerLo, innerHi := hi, lo
	haveInner := false
	for _, v := range values {
		if v == 0 || v == 255 {
			continue
		}
		if !haveInner {
			innerLo, innerHi, haveInner = v, v, true
			continue
		}
		if v < innerLo {
			innerLo = v
		}
		if v > innerHi {
			innerHi = v
		}
	}
	if !haveInner {
		return Pack(hi, lo, sel8)
	}
	pal6 := Palette(innerLo, innerHi)
	sel6, err6 := assign(pal6, 8, values)

	if err6 < err8 {
		return Pack(innerLo, innerHi, sel6)
	}
	return Pack(hi, lo, sel8)
}

// DecodeBlock expands a Block into its 16 single-channel values.
func DecodeBlock(b Block) [16]uint8 {
	e0, e1, selectors := Unpack(b)
	pal := Palette(e0, e1)
	var out [16]uint8
	for i, s := range selectors {
		out[i] = pal[s]
	}
	return out
}
