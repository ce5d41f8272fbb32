package bc1

import (
	"github.com/deepteams/bcn/internal/colorspace"
	"github.com/deepteams/bcn/internal/interp"
)

// DecodeBlock expands a wire Block back into 16 pixels using ip's palette
// construction, mirroring interp.BuildPalette's own mode dispatch so
// decode always agrees with whatever encoder variant produced the block.
func DecodeBlock(b Block, ip *interp.Interpolator) *ColorBlock {
	color0Raw, color1Raw, selectors := Unpack(b)
	color0 := colorspace.Unpack565(color0Raw)
	color1 := colorspace.Unpack565(color1Raw)
	pal := ip.BuildPalette(color0, color1)

	out := &ColorBlock{}
	for i, s := range selectors {
		out.Pixels[i] = pal.Entries[s]
	}
	return out
}
