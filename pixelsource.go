package bcn

// PixelSource is the read side of the texture-level encode drivers:
// anything that can report its extent and answer per-pixel queries,
// clamped at the edges by the caller as it prefers. EncodeTexture walks
// it in 4x4 blocks; out-of-range coordinates are the caller's concern —
// RGBASource below clamps to the last row/column.
type PixelSource interface {
	Bounds() (width, height int)
	At(x, y int) Color
}

// RGBASource is a PixelSource backed by a packed RGBA byte slice in
// row-major order (stride 4*width), the shape image.RGBA and most decoded
// image formats already use.
type RGBASource struct {
	Pix           []byte
	Width, Height int
}

// Bounds implements PixelSource.
func (s *RGBASource) Bounds() (width, height int) {
	return s.Width, s.Height
}

// At implements PixelSource, clamping out-of-range coordinates to the
// nearest edge pixel — the convention the texture driver relies on when a
// dimension isn't a multiple of 4.
func (s *RGBASource) At(x, y int) Color {
	if x < 0 {
		x = 0
	}
	if x >= s.Width {
		x = s.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= s.Height {
		y = s.Height - 1
	}
	i := (y*s.Width + x) * 4
	return Color{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: s.Pix[i+3]}
}

// GraySource is a PixelSource backed by a single 8-bit channel, used to
// feed BC4's single-channel encoder from e.g. a height map or mask.
type GraySource struct {
	Pix           []byte
	Width, Height int
}

// Bounds implements PixelSource.
func (s *GraySource) Bounds() (width, height int) { return s.Width, s.Height }

// At implements PixelSource, replicating the single channel into R/G/B
// and forcing A to 255.
func (s *GraySource) At(x, y int) Color {
	if x < 0 {
		x = 0
	}
	if x >= s.Width {
		x = s.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= s.Height {
		y = s.Height - 1
	}
	v := s.Pix[y*s.Width+x]
	return Color{R: v, G: v, B: v, A: 255}
}
