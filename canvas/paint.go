package canvas

import (
	"math"

	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
)

// Paint is either a solid color or a gradient.
type Paint struct {
	Color    color.Color
	Gradient *RadialGradient
}

func Solid(c color.Color) Paint {
	return Paint{Color: c}
}

// ParsePaint parses a css color into a solid paint. Values that can not be
// parsed yield ok=false and callers do not paint anything.
func ParsePaint(value string) (Paint, bool) {
	c, ok := color.Parse(value)
	if !ok {
		return Paint{}, false
	}

	return Solid(c), true
}

func (p Paint) IsZero() bool {
	return p.Gradient == nil && p.Color.IsTransparent()
}

// Transformed returns the paint in the coordinate system produced by tr.
func (p Paint) Transformed(tr gm.Affine) Paint {
	if p.Gradient == nil {
		return p
	}

	g := *p.Gradient
	g.Start = tr.Transform(g.Start)
	g.End = tr.Transform(g.End)
	g.StartRadius *= tr.ScaleFactor()
	g.EndRadius *= tr.ScaleFactor()

	return Paint{Gradient: &g}
}

type ColorStop struct {
	Offset float64
	Color  color.Color
}

// RadialGradient interpolates between the circle at Start with StartRadius and the
// circle at End with EndRadius.
type RadialGradient struct {
	Start       gm.Vec
	StartRadius float64
	End         gm.Vec
	EndRadius   float64

	// Stops must be sorted by offset.
	Stops []ColorStop
}

// NewRadialGradient builds a gradient between two circles. Add stops using AddStop.
func NewRadialGradient(start gm.Vec, startRadius float64, end gm.Vec, endRadius float64) *RadialGradient {
	return &RadialGradient{
		Start:       start,
		StartRadius: startRadius,
		End:         end,
		EndRadius:   endRadius,
	}
}

func (g *RadialGradient) AddStop(offset float64, c color.Color) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt returns the color for the gradient parameter t.
func (g *RadialGradient) ColorAt(t float64) color.Color {
	if len(g.Stops) == 0 {
		return color.Transparent
	}

	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}

	for idx := 1; idx < len(g.Stops); idx++ {
		prev, next := g.Stops[idx-1], g.Stops[idx]
		if t > next.Offset {
			continue
		}

		span := next.Offset - prev.Offset
		if span <= 0 {
			return next.Color
		}

		return prev.Color.Lerp(next.Color, float32((t-prev.Offset)/span))
	}

	return g.Stops[len(g.Stops)-1].Color
}

// Param returns the gradient parameter for the given point, that is the largest
// t for which the point lies on the interpolated circle.
func (g *RadialGradient) Param(p gm.Vec) float64 {
	cd := g.End.Sub(g.Start)
	pd := p.Sub(g.Start)
	dr := g.EndRadius - g.StartRadius

	a := cd.Dot(cd) - dr*dr
	b := pd.Dot(cd) + g.StartRadius*dr
	c := pd.Dot(pd) - g.StartRadius*g.StartRadius

	if math.Abs(a) < 1e-9 {
		if b == 0 {
			return 0
		}

		return c / (2 * b)
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0
	}

	sq := math.Sqrt(disc)
	t := (b + sq) / a
	if g.StartRadius+t*dr < 0 {
		t = (b - sq) / a
	}

	return t
}

// ColorOf returns the gradient color at the given point.
func (g *RadialGradient) ColorOf(p gm.Vec) color.Color {
	return g.ColorAt(g.Param(p))
}
