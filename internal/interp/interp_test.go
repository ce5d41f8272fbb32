package interp

import (
	"testing"

	"github.com/deepteams/bcn/internal/colorspace"
)

func TestNewAllVariants(t *testing.T) {
	for _, v := range []Variant{Ideal, IdealRound, Nvidia, AMD} {
		ip := New(v)
		if ip.Variant != v {
			t.Errorf("New(%v).Variant = %v", v, ip.Variant)
		}
		if ip.Interp5 == nil || ip.Interp6 == nil || ip.Half5 == nil || ip.Half6 == nil {
			t.Errorf("New(%v) left a nil function field", v)
		}
	}
}

func TestIdealInterpOneThird(t *testing.T) {
	ip := New(Ideal)
	got := ip.Interp5(0, 31)
	if got < 80 || got > 90 {
		t.Errorf("Interp5(0,31) = %d, want roughly 1/3 of 255", got)
	}
}

func TestBuildPaletteModeDispatch(t *testing.T) {
	ip := New(Ideal)

	low := colorspace.FromComponents565(5, 10, 5)
	high := colorspace.FromComponents565(20, 40, 20)
	pal := ip.BuildPalette(high, low)
	if pal.ThreeColor {
		t.Error("color0 > color1 should select 4-color mode")
	}
	if pal.Entries[3] == (colorspace.Color{}) {
		t.Error("4-color mode should not produce transparent black at slot 3")
	}

	palSwapped := ip.BuildPalette(low, high)
	if !palSwapped.ThreeColor {
		t.Error("color1 >= color0 should select 3-color mode")
	}
	if palSwapped.Entries[3] != (colorspace.Color{}) {
		t.Errorf("3-color mode's slot 3 should be transparent black, got %v", palSwapped.Entries[3])
	}
}

func TestBuildPaletteEqualEndpointsIsThreeColor(t *testing.T) {
	ip := New(Ideal)
	c := colorspace.FromComponents565(10, 20, 10)
	pal := ip.BuildPalette(c, c)
	if !pal.ThreeColor {
		t.Error("equal endpoints should tie into 3-color mode")
	}
}

func TestNvidiaInterp6FixedPointBlend(t *testing.T) {
	got := nvidiaInterp6(0, 63)
	if got != 20 {
		t.Errorf("nvidiaInterp6(0,63) = %d, want 20 (per quicktex's InterpolatorNvidia::Interpolate6)", got)
	}
	got = nvidiaInterp6(63, 0)
	if got != 43 {
		t.Errorf("nvidiaInterp6(63,0) = %d, want 43", got)
	}
}
