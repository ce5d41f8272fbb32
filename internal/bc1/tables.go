package bc1

import "github.com/deepteams/bcn/internal/interp"

// Tables bundles the four SingleColorTables (bits 5/6 x {3-color, 4-color})
// an encoder needs, plus the shared N=3/N=4 OrderTables. One Tables is
// built per interpolator variant at encoder construction and reused for
// every block it encodes.
type Tables struct {
	Interp interp.Interpolator

	SC5Four, SC6Four  *SingleColorTable
	SC5Three, SC6Three *SingleColorTable

	Order4 *OrderTable
	Order3 *OrderTable
}

// NewTables builds the interpolator-scoped single-color tables and wires in
// the process-lifetime order tables (spec.md §3/§4.2).
func NewTables(variant interp.Variant) *Tables {
	ip := interp.New(variant)
	return &Tables{
		Interp:     ip,
		SC5Four:    BuildSingleColorTable(5, true, ip),
		SC6Four:    BuildSingleColorTable(6, true, ip),
		SC5Three:   BuildSingleColorTable(5, false, ip),
		SC6Three:   BuildSingleColorTable(6, false, ip),
		Order4:     OrderTable4(),
		Order3:     OrderTable3(),
	}
}
