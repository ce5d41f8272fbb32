package colorspace

import "testing"

func TestPackUnpack565RoundTrip(t *testing.T) {
	tests := []Color{
		Opaque(0, 0, 0),
		Opaque(255, 255, 255),
		Opaque(128, 64, 200),
		Opaque(8, 4, 8),
	}
	for _, c := range tests {
		packed := c.Pack565()
		back := Unpack565(packed)
		r5, g6, b5 := Components565(c)
		gotR5, gotG6, gotB5 := Components565(back)
		if gotR5 != r5 || gotG6 != g6 || gotB5 != b5 {
			t.Errorf("Unpack565(Pack565(%v)) components = (%d,%d,%d), want (%d,%d,%d)",
				c, gotR5, gotG6, gotB5, r5, g6, b5)
		}
	}
}

func TestFromComponentsComponentsRoundTrip(t *testing.T) {
	for r := uint8(0); r < 32; r++ {
		c := FromComponents565(r, 0, 0)
		gotR, _, _ := Components565(c)
		if gotR != r {
			t.Fatalf("Components565(FromComponents565(%d,0,0)).r = %d", r, gotR)
		}
	}
	for g := uint8(0); g < 64; g++ {
		c := FromComponents565(0, g, 0)
		_, gotG, _ := Components565(c)
		if gotG != g {
			t.Fatalf("Components565(FromComponents565(0,%d,0)).g = %d", g, gotG)
		}
	}
}

func TestEqualIgnoresAlpha(t *testing.T) {
	a := Color{R: 1, G: 2, B: 3, A: 10}
	b := Color{R: 1, G: 2, B: 3, A: 200}
	if !a.Equal(b) {
		t.Error("Equal should ignore alpha")
	}
	c := Color{R: 1, G: 2, B: 4, A: 10}
	if a.Equal(c) {
		t.Error("Equal should compare B")
	}
}

func TestGray(t *testing.T) {
	if g := Opaque(255, 255, 255).Gray(); g != 255 {
		t.Errorf("Gray(white) = %d, want 255", g)
	}
	if g := Opaque(0, 0, 0).Gray(); g != 0 {
		t.Errorf("Gray(black) = %d, want 0", g)
	}
}
