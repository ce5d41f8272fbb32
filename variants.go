package bcn

import (
	"sync"

	"github.com/deepteams/bcn/internal/bc1"
	"github.com/deepteams/bcn/internal/interp"
)

// Each GPUVariant's Tables (and bare Interpolator, for decode) is built at
// most once per process and shared by every subsequent encode/decode —
// the single-color and order tables are read-only once constructed, so
// concurrent callers needing the same variant share the build.
var (
	tablesMu    sync.Mutex
	tablesCache = map[GPUVariant]*bc1.Tables{}
	interpCache = map[GPUVariant]*interp.Interpolator{}
)

func tablesFor(v GPUVariant) *bc1.Tables {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	if t, ok := tablesCache[v]; ok {
		return t
	}
	t := bc1.NewTables(v.internal())
	tablesCache[v] = t
	return t
}

func interpFor(v GPUVariant) *interp.Interpolator {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	if ip, ok := interpCache[v]; ok {
		return ip
	}
	ip := interp.New(v.internal())
	interpCache[v] = &ip
	return interpCache[v]
}
