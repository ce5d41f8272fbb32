package bcn

import "github.com/deepteams/bcn/internal/interp"

// Format selects which of the four block formats EncodeTexture produces.
type Format int

const (
	FormatBC1 Format = iota
	FormatBC3
	FormatBC4
	FormatBC5
)

// BlockBytes returns the wire size of one block in the format.
func (f Format) BlockBytes() int {
	switch f {
	case FormatBC1, FormatBC4:
		return 8
	case FormatBC3, FormatBC5:
		return 16
	default:
		return 0
	}
}

// GPUVariant selects which vendor's interpolation quirks the color
// endpoints are optimized against (spec.md §4.1). Encoding for the wrong
// variant doesn't corrupt anything — every GPU decodes the same wire
// bytes — it just leaves a little accuracy on the table.
type GPUVariant int

const (
	VariantIdeal GPUVariant = iota
	VariantIdealRound
	VariantNvidia
	VariantAMD
)

func (v GPUVariant) internal() interp.Variant {
	switch v {
	case VariantIdealRound:
		return interp.IdealRound
	case VariantNvidia:
		return interp.Nvidia
	case VariantAMD:
		return interp.AMD
	default:
		return interp.Ideal
	}
}

// Options configures a texture encode. Level selects one of the 20 BC1
// effort presets (spec.md §6); Variant tunes endpoint search for a
// specific GPU's decode quirks; Channel selects which source channel(s)
// BC4 reads when Format is FormatBC4.
type Options struct {
	Format  Format
	Level   int
	Variant GPUVariant
	Channel int // 0=R,1=G,2=B,3=A; used only by FormatBC4
}

// DefaultOptions returns Options for BC1 at level 9 (the midpoint of the
// quality/speed range) against the Ideal interpolator.
func DefaultOptions() Options {
	return Options{Format: FormatBC1, Level: 9, Variant: VariantIdeal, Channel: 0}
}

func (o Options) validate() error {
	if o.Level < 0 || o.Level > 19 {
		return ErrInvalidLevel
	}
	if o.Format == FormatBC4 && (o.Channel < 0 || o.Channel > 3) {
		return ErrChannelIndex
	}
	switch o.Format {
	case FormatBC1, FormatBC3, FormatBC4, FormatBC5:
	default:
		return ErrUnsupportedFormat
	}
	return nil
}
