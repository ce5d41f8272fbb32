package bcn

import (
	"github.com/deepteams/bcn/internal/bc1"
)

func toColorBlock(pixels [16]Color) *bc1.ColorBlock {
	b := &bc1.ColorBlock{}
	for i, p := range pixels {
		b.Pixels[i] = p.internal()
	}
	return b
}

// EncodeBC1Block encodes one 4x4 pixel block at the given Options, returning
// the 8 wire bytes.
func EncodeBC1Block(pixels [16]Color, opts Options) [8]byte {
	t := tablesFor(opts.Variant)
	res := bc1.EncodeBlock(toColorBlock(pixels), t, bc1.LevelOptions(opts.Level))
	return res.Block
}

// DecodeBC1Block expands 8 wire bytes into 16 pixels.
func DecodeBC1Block(block [8]byte, variant GPUVariant) [16]Color {
	ip := interpFor(variant)
	cb := bc1.DecodeBlock(bc1.Block(block), ip)
	var out [16]Color
	for i, p := range cb.Pixels {
		out[i] = fromInternal(p)
	}
	return out
}

func blockPixels(src PixelSource, bx, by int) [16]Color {
	var out [16]Color
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = src.At(bx*4+col, by*4+row)
		}
	}
	return out
}
