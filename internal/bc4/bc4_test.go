package bc4

import "testing"

func TestPalette8Level(t *testing.T) {
	p := Palette(255, 0)
	if p[0] != 255 || p[1] != 0 {
		t.Fatalf("Palette(255,0)[0:2] = %d,%d", p[0], p[1])
	}
	// Slots in value order: e0, the six blends from e0 toward e1, then e1.
	order := []int{0, 2, 3, 4, 5, 6, 7, 1}
	for k := 1; k < len(order); k++ {
		i, prev := order[k], order[k-1]
		if p[i] > p[prev] {
			t.Errorf("8-level palette should be non-increasing from e0 to e1, p[%d]=%d > p[%d]=%d", i, p[i], prev, p[prev])
		}
	}
}

func TestPalette6LevelFixesExtremes(t *testing.T) {
	p := Palette(50, 200)
	if p[6] != 0 || p[7] != 255 {
		t.Errorf("6-level palette should fix slots 6,7 at 0,255, got %d,%d", p[6], p[7])
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	var sel [16]int
	for i := range sel {
		sel[i] = i % 8
	}
	b := Pack(200, 40, sel)
	e0, e1, gotSel := Unpack(b)
	if e0 != 200 || e1 != 40 {
		t.Errorf("Unpack endpoints = (%d,%d), want (200,40)", e0, e1)
	}
	if gotSel != sel {
		t.Errorf("Unpack selectors = %v, want %v", gotSel, sel)
	}
}

func TestEncodeDecodeSolidValue(t *testing.T) {
	var values [16]uint8
	for i := range values {
		values[i] = 77
	}
	b := EncodeBlock(values)
	decoded := DecodeBlock(b)
	for i, v := range decoded {
		if v != 77 {
			t.Errorf("decoded[%d] = %d, want 77", i, v)
		}
	}
}

func TestEncodeDecodeRampLowError(t *testing.T) {
	var values [16]uint8
	for i := range values {
		values[i] = uint8(i * 17)
	}
	b := EncodeBlock(values)
	decoded := DecodeBlock(b)
	for i, v := range decoded {
		d := int(v) - int(values[i])
		if d < 0 {
			d = -d
		}
		if d > 20 {
			t.Errorf("decoded[%d] = %d, source %d, diff too large", i, v, values[i])
		}
	}
}

func TestEncodeUsesZeroTwoFiftyFiveSlots(t *testing.T) {
	values := [16]uint8{
		0, 50, 60, 70, 80, 90, 100, 110,
		120, 130, 140, 150, 160, 255, 0, 255,
	}
	b := EncodeBlock(values)
	e0, e1, _ := Unpack(b)
	if e0 > e1 {
		t.Skip("encoder chose 8-level mode for this input, not a bug")
	}
	pal := Palette(e0, e1)
	if pal[6] != 0 || pal[7] != 255 {
		t.Errorf("6-level palette should expose 0/255 endpoints, got %d/%d", pal[6], pal[7])
	}
}
