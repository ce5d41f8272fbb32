// Package colorspace provides the pixel and vector primitives shared by the
// BC1/BC3/BC4/BC5 encoders and decoders: an 8-bit RGBA color, 5:6:5 packing,
// and the small float/int vector types used by the BC1 endpoint search.
package colorspace

// Color is an ordered quadruple of 8-bit channels. A defaults to 255 and is
// ignored by BC1 color math except where the transparent-black selector is
// produced (see the bc1 package).
type Color struct {
	R, G, B, A uint8
}

// Opaque returns c with A forced to 255.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// At returns channel i (0=R, 1=G, 2=B, 3=A).
func (c Color) At(i int) uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	default:
		return c.A
	}
}

// Equal reports whether c and o have identical R, G and B channels. A is not
// compared: BC1 color encoding is alpha-agnostic except for the dedicated
// transparent-black selector.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// Gray reports the luma-weighted grayscale value of c, using the same
// integer BT.601 weights as the standard library's image/color.Gray model
// (299*R + 587*G + 114*B)/1000, rounded to nearest.
func (c Color) Gray() uint8 {
	y := 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
	return uint8((y + 500) / 1000)
}

// Pack565 packs c into the 16-bit 5:6:5 format used on the wire: R in bits
// 11..15, G in bits 5..10, B in bits 0..4.
func (c Color) Pack565() uint16 {
	r5 := uint16(c.R) >> 3
	g6 := uint16(c.G) >> 2
	b5 := uint16(c.B) >> 3
	return (r5 << 11) | (g6 << 5) | b5
}

// Unpack565 expands a 16-bit 5:6:5 value into an 8-bit opaque Color using
// bit replication: v5->v8 = (v5<<3)|(v5>>2), v6->v8 = (v6<<2)|(v6>>4).
func Unpack565(v uint16) Color {
	r5 := uint8(v>>11) & 0x1f
	g6 := uint8(v>>5) & 0x3f
	b5 := uint8(v) & 0x1f
	return Opaque(
		(r5<<3)|(r5>>2),
		(g6<<2)|(g6>>4),
		(b5<<3)|(b5>>2),
	)
}

// FromComponents565 builds a Color in "5:6:5 scale": each channel holds its
// quantized component shifted into the top bits (lower bits zero), which is
// the representation the endpoint finders and match tables operate on
// directly, without the bit-replication Unpack565 performs for display.
func FromComponents565(r5, g6, b5 uint8) Color {
	return Opaque(r5<<3, g6<<2, b5<<3)
}

// Components565 extracts the quantized 5/6/5 components back out of a Color
// produced by FromComponents565 (or Pack565/Unpack565's input scale).
func Components565(c Color) (r5, g6, b5 uint8) {
	return c.R >> 3, c.G >> 2, c.B >> 3
}
