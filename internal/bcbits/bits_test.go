package bcbits

import "testing"

func TestPutGetBitsRoundTrip(t *testing.T) {
	w := NewWriter(8)
	w.PutBits(0xAB, 8)
	w.PutBits(0x3, 2)
	for i := 0; i < 16; i++ {
		w.PutBits(uint32(i%7), 3)
	}

	r := NewReader(w.Bytes())
	if got := r.GetBits(8); got != 0xAB {
		t.Errorf("GetBits(8) = %x, want ab", got)
	}
	if got := r.GetBits(2); got != 0x3 {
		t.Errorf("GetBits(2) = %x, want 3", got)
	}
	for i := 0; i < 16; i++ {
		want := uint32(i % 7)
		if got := r.GetBits(3); got != want {
			t.Errorf("selector %d = %d, want %d", i, got, want)
		}
	}
}

func TestPutBitsDoesNotOverflowAdjacentFields(t *testing.T) {
	w := NewWriter(1)
	w.PutBits(7, 3)
	w.PutBits(0, 3)
	r := NewReader(w.Bytes())
	if got := r.GetBits(3); got != 7 {
		t.Errorf("first field = %d, want 7", got)
	}
	if got := r.GetBits(3); got != 0 {
		t.Errorf("second field = %d, want 0", got)
	}
}
