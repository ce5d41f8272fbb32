package bc1

import (
	"testing"

	"github.com/deepteams/bcn/internal/colorspace"
	"github.com/deepteams/bcn/internal/interp"
)

func TestLevelOptionsMonotonicFeatures(t *testing.T) {
	prev := LevelOptions(0)
	for level := 1; level <= 19; level++ {
		o := LevelOptions(level)
		if prev.LSPasses > o.LSPasses {
			t.Errorf("level %d dropped LSPasses below level %d's", level, level-1)
		}
		if prev.SearchRounds > 0 && o.SearchRounds == 0 {
			t.Errorf("level %d disabled neighborhood search that level %d had enabled", level, level-1)
		}
		if prev.TwoEPPasses && !o.TwoEPPasses {
			t.Errorf("level %d disabled two endpoint-mode passes that level %d had enabled", level, level-1)
		}
		prev = o
	}
}

func TestLevelOptionsClampsRange(t *testing.T) {
	if LevelOptions(-5) != LevelOptions(0) {
		t.Error("negative level should clamp to 0")
	}
	if LevelOptions(100) != LevelOptions(19) {
		t.Error("level above 19 should clamp to 19")
	}
}

func TestEncodeBlockSolidColorFastPath(t *testing.T) {
	t4 := NewTables(interp.Ideal)
	block := solidBlock(colorspace.Opaque(120, 130, 140))
	res := EncodeBlock(block, t4, LevelOptions(5))
	ip := interp.New(interp.Ideal)
	decoded := DecodeBlock(res.Block, &ip)
	for _, p := range decoded.Pixels {
		if absInt(int(p.R)-120) > 4 || absInt(int(p.G)-130) > 4 || absInt(int(p.B)-140) > 4 {
			t.Errorf("solid block decoded to %v, want near (120,130,140)", p)
		}
	}
}

func TestEncodeDecodeRoundTripLowError(t *testing.T) {
	t4 := NewTables(interp.Ideal)
	block := rampBlock()
	ip := interp.New(interp.Ideal)
	for _, level := range []int{0, 9, 19} {
		res := EncodeBlock(block, t4, LevelOptions(level))
		decoded := DecodeBlock(res.Block, &ip)
		errTotal := 0
		for i, p := range decoded.Pixels {
			errTotal += sqDist(p, block.Pixels[i])
		}
		if errTotal > 16*3*64*64 {
			t.Errorf("level %d: round-trip error implausibly large: %d", level, errTotal)
		}
	}
}

func TestEncodeBlockHigherLevelsDoNotRegress(t *testing.T) {
	t4 := NewTables(interp.Ideal)
	block := rampBlock()
	fast := EncodeBlock(block, t4, LevelOptions(0))
	slow := EncodeBlock(block, t4, LevelOptions(19))
	if slow.Error > fast.Error+fast.Error/4 {
		t.Errorf("level 19 error %d should not be much worse than level 0's %d", slow.Error, fast.Error)
	}
}
