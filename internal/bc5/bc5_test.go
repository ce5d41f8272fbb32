package bc5

import (
	"testing"

	"github.com/deepteams/bcn/internal/bc4"
)

func TestPackUnpackSplitsChannels(t *testing.T) {
	var a, b [16]uint8
	for i := range a {
		a[i] = uint8(i)
		b[i] = uint8(255 - i)
	}
	block := EncodeBlock(a, b)
	gotA, gotB := DecodeBlock(block)
	for i := range a {
		da := int(gotA[i]) - int(a[i])
		db := int(gotB[i]) - int(b[i])
		if da < -20 || da > 20 || db < -20 || db > 20 {
			t.Errorf("channel mismatch at %d: a=%d(%d) b=%d(%d)", i, gotA[i], a[i], gotB[i], b[i])
		}
	}
}

func TestUnpackByteLayout(t *testing.T) {
	var a, b [16]uint8
	for i := range a {
		a[i], b[i] = 10, 200
	}
	block := EncodeBlock(a, b)
	ch0, ch1 := Unpack(block)
	var want0, want1 bc4.Block
	copy(want0[:], block[0:8])
	copy(want1[:], block[8:16])
	if ch0 != want0 || ch1 != want1 {
		t.Error("Unpack halves do not match the packed block's byte layout")
	}
}
