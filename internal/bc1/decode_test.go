package bc1

import (
	"testing"

	"github.com/deepteams/bcn/internal/colorspace"
	"github.com/deepteams/bcn/internal/interp"
)

func TestDecodeBlockThreeColorTransparentSlot(t *testing.T) {
	ip := interp.New(interp.Ideal)
	color0 := colorspace.FromComponents565(5, 10, 5)
	color1 := colorspace.FromComponents565(20, 40, 20) // color1 >= color0 -> 3-color
	sel := [16]int{3, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1}
	b := Pack(color0, color1, sel, 3, true)
	decoded := DecodeBlock(b, &ip)
	if decoded.Pixels[0] != (colorspace.Color{}) {
		t.Errorf("selector 3 in 3-color mode should decode to transparent black, got %v", decoded.Pixels[0])
	}
}
