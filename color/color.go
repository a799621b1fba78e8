package color

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)
var Transparent = RGBA(0, 0, 0, 0)

// Color is a non alpha pre-multiplied color value in the sRGB color space.
// A value of 1 indicates full color.
type Color struct {
	R, G, B, A float32
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

// RGB255 builds a color from 8 bit channel values.
func RGB255(r, g, b uint8) Color {
	return RGB(float32(r)/255, float32(g)/255, float32(b)/255)
}

func Gray(g float32) Color {
	return RGB(g, g, g)
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp mixes c and other, t=0 yields c, t=1 yields other.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	const MAX = 0xffff

	r = uint32(clamp(c.R*c.A*MAX, 0, MAX))
	g = uint32(clamp(c.G*c.A*MAX, 0, MAX))
	b = uint32(clamp(c.B*c.A*MAX, 0, MAX))
	a = uint32(clamp(c.A*MAX, 0, MAX))

	return
}

func (c Color) PremultipliedValues() (float32, float32, float32, float32) {
	r := c.R * c.A
	g := c.G * c.A
	b := c.B * c.A
	return r, g, b, c.A
}

func (c Color) IsTransparent() bool {
	return c.A <= 0
}

func clamp[T float32 | float64](value, min, max T) T {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
