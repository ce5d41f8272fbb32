// Package interp implements the four BC1 interpolator variants: the
// behavior of "blend two quantized endpoints into an intermediate palette
// entry" differs subtly across GPU vendors, and the single-color match
// tables and endpoint search both need to target a specific variant.
//
// The dispatch shape — a struct of function fields, set once at
// construction — is grounded on internal/dsp/dsp.go (deepteams/webp),
// which swaps pure-Go transform/prediction functions for SIMD ones behind
// package-level func vars set once at Init(); the same shape here selects
// one of four interpolation behaviors for the lifetime of a BC1 encoder,
// per spec.md §9's suggestion to prefer a tagged variant over a virtual
// hierarchy. The per-variant formulas themselves are a direct port of
// quicktex/s3tc/interpolator/Interpolator.cpp's Interpolator/
// InterpolatorRound/InterpolatorNvidia/InterpolatorAMD classes
// (_examples/original_source) — Nvidia and AMD's fixed-point constants
// are hardware-observed approximations with no derivable closed form, so
// they're reproduced literally rather than re-derived.
package interp

import "github.com/deepteams/bcn/internal/colorspace"

// Variant names one of the four interpolator implementations.
type Variant int

const (
	Ideal Variant = iota
	IdealRound
	Nvidia
	AMD
)

func (v Variant) String() string {
	switch v {
	case Ideal:
		return "ideal"
	case IdealRound:
		return "ideal-round"
	case Nvidia:
		return "nvidia"
	case AMD:
		return "amd"
	default:
		return "unknown"
	}
}

// Interpolator blends two quantized endpoint components into the
// intermediate palette values BC1 needs. All Interp5/Interp6/Half5/Half6
// take native-scale inputs (0..31 for 5 bits, 0..63 for 6 bits) and return
// an 8-bit value in [0,255].
type Interpolator struct {
	Variant Variant

	// IsIdeal is true for the Ideal and IdealRound variants. The single-
	// color match table builder adds a 3% endpoint-span penalty to the
	// error for ideal interpolators, to discourage wide endpoint pairs
	// that would otherwise tie with narrow ones (spec.md §3).
	IsIdeal bool

	Interp5 func(a, b uint8) uint8
	Interp6 func(a, b uint8) uint8
	Half5   func(a, b uint8) uint8
	Half6   func(a, b uint8) uint8
}

// New builds the Interpolator for the given variant.
func New(v Variant) Interpolator {
	switch v {
	case Ideal:
		return Interpolator{
			Variant: Ideal, IsIdeal: true,
			Interp5: idealInterp(5), Interp6: idealInterp(6),
			Half5: idealHalf(5), Half6: idealHalf(6),
		}
	case IdealRound:
		return Interpolator{
			Variant: IdealRound, IsIdeal: true,
			Interp5: idealRoundInterp(5), Interp6: idealRoundInterp(6),
			Half5: idealHalf(5), Half6: idealHalf(6),
		}
	case Nvidia:
		return Interpolator{
			Variant: Nvidia, IsIdeal: false,
			Interp5: nvidiaInterp5, Interp6: nvidiaInterp6,
			Half5: nvidiaHalf5, Half6: nvidiaHalf6,
		}
	case AMD:
		return Interpolator{
			Variant: AMD, IsIdeal: false,
			Interp5: amdInterp(5), Interp6: amdInterp(6),
			Half5: amdHalf(5), Half6: amdHalf(6),
		}
	default:
		panic("interp: unknown variant")
	}
}

func expand(bits int, v uint8) uint8 {
	if bits == 5 {
		return (v << 3) | (v >> 2)
	}
	return (v << 2) | (v >> 4)
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// idealInterp converts both inputs to 8 bits first, then computes
// (2a+b)/3 — the textbook "ideal" GPU interpolation.
func idealInterp(bits int) func(a, b uint8) uint8 {
	return func(a, b uint8) uint8 {
		a8, b8 := int(expand(bits, a)), int(expand(bits, b))
		return clampU8((2*a8 + b8) / 3)
	}
}

// idealRoundInterp is idealInterp with round-to-nearest instead of
// truncation: (2a+b+1)/3.
func idealRoundInterp(bits int) func(a, b uint8) uint8 {
	return func(a, b uint8) uint8 {
		a8, b8 := int(expand(bits, a)), int(expand(bits, b))
		return clampU8((2*a8 + b8 + 1) / 3)
	}
}

// idealHalf expands native-scale inputs to 8 bits, then truncating-averages:
// (a+b)/2 for the 3-color mode's interpolated slot — shared by Ideal and
// IdealRound, which does not override InterpolateHalf8.
func idealHalf(bits int) func(a, b uint8) uint8 {
	return func(a, b uint8) uint8 {
		a8, b8 := int(expand(bits, a)), int(expand(bits, b))
		return clampU8((a8 + b8) / 2)
	}
}

// nvidiaInterp5 takes native 5-bit inputs (a, b < 32) and produces an
// 8-bit result directly: (2a+b)*22/8, Nvidia's fixed-point approximation
// of (2a+b)/3 with the 5-to-8-bit expansion folded into the constant.
func nvidiaInterp5(a, b uint8) uint8 {
	v := (2*int(a) + int(b)) * 22 / 8
	return uint8(v)
}

// nvidiaInterp6 takes native 6-bit inputs (a, b < 64); the fixed-point
// blend (with its own baked-in scaling) does not reduce to a clean
// native-precision or 8-bit-precision value at either extreme — it is a
// literal port of hardware-observed Nvidia decode behavior, not a
// derivable formula, so no expand/clamp step is inserted around it.
func nvidiaInterp6(a, b uint8) uint8 {
	d := int(b) - int(a)
	v := (256*int(a) + d/4 + 128 + 80*d) >> 8
	return uint8(v)
}

// nvidiaHalf5 is Interpolate5's 3-color-mode counterpart: (a+b)*33/8 on
// native 5-bit inputs.
func nvidiaHalf5(a, b uint8) uint8 {
	v := (int(a) + int(b)) * 33 / 8
	return uint8(v)
}

// nvidiaHalf6 is Interpolate6's 3-color-mode counterpart, same fixed-point
// shape with half-weighting (80 -> 128) baked in.
func nvidiaHalf6(a, b uint8) uint8 {
	d := int(b) - int(a)
	v := (256*int(a) + d/4 + 128 + 128*d) >> 8
	return uint8(v)
}

// amdInterp expands to 8 bits first (like Ideal), then applies AMD's
// fixed-point weights (43, 21)/64 in place of (2,1)/3.
func amdInterp(bits int) func(a, b uint8) uint8 {
	return func(a, b uint8) uint8 {
		a8, b8 := int(expand(bits, a)), int(expand(bits, b))
		return clampU8((43*a8 + 21*b8 + 32) >> 6)
	}
}

func amdHalf(bits int) func(a, b uint8) uint8 {
	return func(a, b uint8) uint8 {
		a8, b8 := int(expand(bits, a)), int(expand(bits, b))
		return clampU8((a8 + b8 + 1) >> 1)
	}
}

// Palette is the 4-entry BC1 palette built from two 5:6:5 endpoints.
// Palette[0]/[1] are always low/high; [2]/[3] depend on mode. ThreeColor
// reports whether high>=low selected the 3-color branch (palette[3] is
// then transparent black).
type Palette struct {
	Entries    [4]colorspace.Color
	ThreeColor bool
}

// BuildPalette constructs the full palette from the two endpoints exactly
// as they will be stored on the wire (color0, color1, both already in
// 5:6:5 scale — colorspace.FromComponents565's representation). Mode is
// decided the same way the decoder decides it: color1>=color0 selects
// 3-color mode, per spec.md §3.
func (ip Interpolator) BuildPalette(color0, color1 colorspace.Color) Palette {
	lr5, lg6, lb5 := colorspace.Components565(color0)
	hr5, hg6, hb5 := colorspace.Components565(color1)

	lo8 := colorspace.Unpack565(color0.Pack565())
	hi8 := colorspace.Unpack565(color1.Pack565())

	p := Palette{Entries: [4]colorspace.Color{lo8, hi8, {}, {}}}

	threeColor := color1.Pack565() >= color0.Pack565()
	p.ThreeColor = threeColor

	if threeColor {
		p.Entries[2] = colorspace.Opaque(
			ip.Half5(lr5, hr5),
			ip.Half6(lg6, hg6),
			ip.Half5(lb5, hb5),
		)
		p.Entries[3] = colorspace.Color{} // transparent black
	} else {
		p.Entries[2] = colorspace.Opaque(
			ip.Interp5(lr5, hr5),
			ip.Interp6(lg6, hg6),
			ip.Interp5(lb5, hb5),
		)
		p.Entries[3] = colorspace.Opaque(
			ip.Interp5(hr5, lr5),
			ip.Interp6(hg6, lg6),
			ip.Interp5(hb5, lb5),
		)
	}
	return p
}
