package bcn

import (
	"github.com/deepteams/bcn/internal/bc1"
	"github.com/deepteams/bcn/internal/bc4"
)

// EncodeBC3Block encodes one 4x4 block as BC3: an alpha bc4.Block followed
// by a color bc1.Block, which spec.md §5 requires to stay in 4-color mode
// regardless of what the color-only encoder would have chosen, since BC3's
// decoder never checks the 3-color/4-color bit — it always reads 4 color
// codes.
func EncodeBC3Block(pixels [16]Color, opts Options) [16]byte {
	var alpha [16]uint8
	for i, p := range pixels {
		alpha[i] = p.A
	}
	alphaBlock := bc4.EncodeBlock(alpha)

	t := tablesFor(opts.Variant)
	colorOpts := bc1.LevelOptions(opts.Level)
	colorOpts.UseThreeColor = false
	colorOpts.UseThreeColorBlack = false
	res := bc1.EncodeBlock(toColorBlock(pixels), t, colorOpts)

	var out [16]byte
	copy(out[0:8], alphaBlock[:])
	copy(out[8:16], res.Block[:])
	return out
}

// DecodeBC3Block expands a 16-byte BC3 block into 16 RGBA pixels.
func DecodeBC3Block(block [16]byte, variant GPUVariant) [16]Color {
	var alphaBlock bc4.Block
	copy(alphaBlock[:], block[0:8])
	var colorBlock bc1.Block
	copy(colorBlock[:], block[8:16])

	alpha := bc4.DecodeBlock(alphaBlock)
	ip := interpFor(variant)
	cb := bc1.DecodeBlock(colorBlock, ip)

	var out [16]Color
	for i, p := range cb.Pixels {
		out[i] = Color{R: p.R, G: p.G, B: p.B, A: alpha[i]}
	}
	return out
}
