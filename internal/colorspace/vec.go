package colorspace

import "golang.org/x/image/math/f32"

// Vec4f is a 4-component float vector (R, G, B, weight/A slot), built on top
// of golang.org/x/image/math/f32.Vec4 so the bounding-box float endpoint
// finder shares its storage layout with the rest of the x/image-using
// corpus rather than rolling a bespoke vector type.
type Vec4f f32.Vec4

// NewVec4f builds a Vec4f from a Color, channels in [0,1].
func NewVec4f(c Color) Vec4f {
	return Vec4f{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// F32 returns v as the underlying x/image/math/f32.Vec4.
func (v Vec4f) F32() f32.Vec4 { return f32.Vec4(v) }

func (v Vec4f) Add(o Vec4f) Vec4f {
	return Vec4f{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4f) Sub(o Vec4f) Vec4f {
	return Vec4f{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4f) Scale(s float32) Vec4f {
	return Vec4f{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (v Vec4f) Dot(o Vec4f) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

// Clamp clamps every component to [lo, hi].
func (v Vec4f) Clamp(lo, hi float32) Vec4f {
	c := v
	for i := range c {
		if c[i] < lo {
			c[i] = lo
		} else if c[i] > hi {
			c[i] = hi
		}
	}
	return c
}

// MaxAbs returns the largest absolute component value.
func (v Vec4f) MaxAbs() float32 {
	m := float32(0)
	for _, x := range v {
		if a := abs32(x); a > m {
			m = a
		}
	}
	return m
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Vec4i is the integer counterpart of Vec4f; it backs bc1's Metrics.Sum.
type Vec4i [4]int32

func NewVec4i(c Color) Vec4i {
	return Vec4i{int32(c.R), int32(c.G), int32(c.B), int32(c.A)}
}

func (v Vec4i) Add(o Vec4i) Vec4i {
	return Vec4i{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4i) Sub(o Vec4i) Vec4i {
	return Vec4i{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4i) Dot(o Vec4i) int32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

// Clamp clamps every component to [lo, hi].
func (v Vec4i) Clamp(lo, hi int32) Vec4i {
	c := v
	for i := range c {
		if c[i] < lo {
			c[i] = lo
		} else if c[i] > hi {
			c[i] = hi
		}
	}
	return c
}

func (v Vec4i) MaxAbs() int32 {
	m := int32(0)
	for _, x := range v {
		a := x
		if a < 0 {
			a = -a
		}
		if a > m {
			m = a
		}
	}
	return m
}
