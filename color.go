package bcn

import "github.com/deepteams/bcn/internal/colorspace"

// Color is an 8-bit RGBA pixel, the public counterpart of the internal
// colorspace package's type of the same shape.
type Color struct {
	R, G, B, A uint8
}

func (c Color) internal() colorspace.Color {
	return colorspace.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fromInternal(c colorspace.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
