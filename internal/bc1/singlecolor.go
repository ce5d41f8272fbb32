package bc1

import "github.com/deepteams/bcn/internal/interp"

// SingleColorEntry is the best (low, high) endpoint pair — in native
// bits-wide scale — for reproducing an 8-bit target value through a
// specific interpolator's "interpolated" palette slot, plus the resulting
// absolute error.
type SingleColorEntry struct {
	Low, High uint8
	Error     float32
}

// SingleColorTable is a 256-entry lookup, one entry per possible 8-bit
// channel value, for a given (bit width, color mode, interpolator)
// combination. Grounded on spec.md §3/§4.2: nested brute-force search over
// every endpoint pair, built once per interpolator (see NewTables in
// tables.go; the root package caches one Tables per GPU variant behind a
// mutex in variants.go, since the table depends on the caller-chosen
// interpolator).
type SingleColorTable struct {
	Bits    int
	Entries [256]SingleColorEntry
}

// BuildSingleColorTable performs the brute-force search spec.md §4.2
// describes: for every target 8-bit value, try every (low, high) pair at
// the given bit width and keep whichever reproduces it most accurately
// through the interpolator's slot-2 formula (4-color mode) or half formula
// (3-color mode). Ties prefer equal endpoints, and ideal interpolators
// additionally penalize the error by 3% of the endpoint span to discourage
// wide endpoint pairs that would otherwise tie with narrow ones.
func BuildSingleColorTable(bits int, fourColor bool, ip interp.Interpolator) *SingleColorTable {
	t := &SingleColorTable{Bits: bits}
	n := 1 << bits

	blend := ip.Half5
	if bits == 6 {
		blend = ip.Half6
	}
	if fourColor {
		blend = ip.Interp5
		if bits == 6 {
			blend = ip.Interp6
		}
	}

	for target := 0; target < 256; target++ {
		best := SingleColorEntry{Error: 1e37}
		for low := 0; low < n; low++ {
			for high := 0; high < n; high++ {
				val := int(blend(uint8(low), uint8(high)))
				errF := float32(abs(val - target))
				if ip.IsIdeal {
					span := abs(int(expand(bits, uint8(high))) - int(expand(bits, uint8(low))))
					errF += 0.03 * float32(span)
				}
				better := errF < best.Error
				tie := errF == best.Error && low == high && best.Low != best.High
				if better || tie {
					best = SingleColorEntry{Low: uint8(low), High: uint8(high), Error: errF}
				}
			}
		}
		t.Entries[target] = best
	}
	return t
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func expand(bits int, v uint8) uint8 {
	if bits == 5 {
		return (v << 3) | (v >> 2)
	}
	return (v << 2) | (v >> 4)
}
