package bcn

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func solidPixels(c Color) [16]Color {
	var p [16]Color
	for i := range p {
		p[i] = c
	}
	return p
}

func perceptualDistance(a, b Color) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceLab(cb)
}

func TestEncodeDecodeBC1SolidColor(t *testing.T) {
	opts := DefaultOptions()
	pixels := solidPixels(Color{R: 40, G: 90, B: 200, A: 255})
	block := EncodeBC1Block(pixels, opts)
	decoded := DecodeBC1Block(block, opts.Variant)
	for _, p := range decoded {
		if d := perceptualDistance(p, pixels[0]); d > 0.05 {
			t.Errorf("decoded %v perceptually far from source %v: distance %v", p, pixels[0], d)
		}
	}
}

func TestEncodeDecodeBC3PreservesAlpha(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatBC3
	var pixels [16]Color
	for i := range pixels {
		pixels[i] = Color{R: 10, G: 200, B: 50, A: uint8(i * 17)}
	}
	block := EncodeBC3Block(pixels, opts)
	decoded := DecodeBC3Block(block, opts.Variant)
	for i, p := range decoded {
		d := int(p.A) - int(pixels[i].A)
		if d < -20 || d > 20 {
			t.Errorf("pixel %d alpha = %d, want near %d", i, p.A, pixels[i].A)
		}
	}
}

func TestTextureRoundTripSmall(t *testing.T) {
	width, height := 6, 6
	pix := make([]byte, width*height*4)
	for i := range pix {
		pix[i] = byte(i % 256)
	}
	src := &RGBASource{Pix: pix, Width: width, Height: height}
	opts := DefaultOptions()
	data, bw, bh, err := EncodeTexture(src, opts)
	if err != nil {
		t.Fatalf("EncodeTexture: %v", err)
	}
	if bw != 2 || bh != 2 {
		t.Fatalf("blocksWide/High = %d/%d, want 2/2 for a 6x6 texture", bw, bh)
	}
	if len(data) != bw*bh*8 {
		t.Fatalf("data len = %d, want %d", len(data), bw*bh*8)
	}
	out, w, h, err := DecodeTexture(data, bw, bh, opts)
	if err != nil {
		t.Fatalf("DecodeTexture: %v", err)
	}
	if w != 8 || h != 8 {
		t.Fatalf("decoded dims = %d/%d, want 8/8 (rounded up to block size)", w, h)
	}
	if len(out) != w*h*4 {
		t.Fatalf("out len = %d, want %d", len(out), w*h*4)
	}
}

func TestTextureRoundTripLargeParallel(t *testing.T) {
	width, height := 64, 64
	pix := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = byte(x*4), byte(y*4), byte((x+y)*2), 255
		}
	}
	src := &RGBASource{Pix: pix, Width: width, Height: height}

	for _, level := range []int{0, 19} {
		opts := Options{Format: FormatBC1, Level: level, Variant: VariantIdeal}
		data, bw, bh, err := EncodeTexture(src, opts)
		if err != nil {
			t.Fatalf("level %d: EncodeTexture: %v", level, err)
		}
		out, w, h, err := DecodeTexture(data, bw, bh, opts)
		if err != nil {
			t.Fatalf("level %d: DecodeTexture: %v", level, err)
		}
		if w != width || h != height {
			t.Fatalf("level %d: decoded dims %d/%d, want %d/%d", level, w, h, width, height)
		}
		var maxDiff int
		for i := range out {
			d := int(out[i]) - int(pix[i])
			if d < 0 {
				d = -d
			}
			if d > maxDiff {
				maxDiff = d
			}
		}
		if maxDiff > 40 {
			t.Errorf("level %d: max channel diff %d too large for a smooth gradient", level, maxDiff)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	o := DefaultOptions()
	o.Level = 25
	if _, _, _, err := EncodeTexture(&RGBASource{Pix: make([]byte, 64), Width: 4, Height: 4}, o); err != ErrInvalidLevel {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestBC4SingleChannel(t *testing.T) {
	var pixels [16]Color
	for i := range pixels {
		pixels[i] = Color{A: uint8(i * 17)}
	}
	block := EncodeBC4Block(pixels, 3)
	decoded := DecodeBC4Block(block)
	for i, v := range decoded {
		d := int(v) - int(pixels[i].A)
		if d < -20 || d > 20 {
			t.Errorf("channel %d = %d, want near %d", i, v, pixels[i].A)
		}
	}
}
