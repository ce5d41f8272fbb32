package bc1

import "testing"

func TestEnumerateCounts(t *testing.T) {
	h4 := enumerate(4)
	if len(h4) != 969 {
		t.Errorf("enumerate(4) len = %d, want 969", len(h4))
	}
	h3 := enumerate(3)
	if len(h3) != 153 {
		t.Errorf("enumerate(3) len = %d, want 153", len(h3))
	}
	for _, h := range h4 {
		if h.sum(4) != BlockSize {
			t.Fatalf("histogram %v sums to %d, want 16", h, h.sum(4))
		}
	}
}

func TestOrderTable4Singleton(t *testing.T) {
	a := OrderTable4()
	b := OrderTable4()
	if a != b {
		t.Error("OrderTable4 should return the same process-lifetime instance")
	}
	if len(a.Histograms) != 969 {
		t.Errorf("OrderTable4 Histograms len = %d, want 969", len(a.Histograms))
	}
	for _, h := range a.Histograms {
		if h.IsUniform(4) {
			if _, ok := a.HashIndex(h); ok {
				t.Errorf("uniform histogram %v should not be present in the hash", h)
			}
		}
	}
}

func TestOrderTable3Singleton(t *testing.T) {
	a := OrderTable3()
	if len(a.Histograms) != 153 {
		t.Errorf("OrderTable3 Histograms len = %d, want 153", len(a.Histograms))
	}
}

func TestHashIndexRoundTrip(t *testing.T) {
	table := OrderTable4()
	for i, h := range table.Histograms {
		if h.IsUniform(4) {
			continue
		}
		idx, ok := table.HashIndex(h)
		if !ok {
			t.Fatalf("histogram %v (index %d) missing from hash", h, i)
		}
		if table.Histograms[idx] != h {
			t.Fatalf("HashIndex(%v) = %d, histogram there is %v", h, idx, table.Histograms[idx])
		}
	}
}

func TestMatrix2Solve(t *testing.T) {
	m := Matrix2{M00: 1, M01: 0, M10: 0, M11: 1}
	lo, hi := m.solve(3, 5)
	if lo != 3 || hi != 5 {
		t.Errorf("identity solve = (%v,%v), want (3,5)", lo, hi)
	}
}

func TestBestOrdersBounded(t *testing.T) {
	table := OrderTable4()
	for _, orders := range table.BestOrders {
		if len(orders) > 128 {
			t.Fatalf("BestOrders entry len %d exceeds K=128", len(orders))
		}
	}
}
