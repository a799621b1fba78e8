// Package canvas defines the drawing surface shape renderers paint on.
//
// A Context follows the model of an html canvas: a transform stack, a current
// path that is filled, stroked or used as a clip, and text drawn at a point.
// Angles are measured in screen space, with the y axis pointing down, so
// positive angles turn clockwise.
package canvas

import (
	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
)

type Context interface {
	// Save pushes the current transform, blend mode, shadow and clip region.
	Save()

	// Restore pops the state pushed by the last call to Save. Calling Restore
	// without a matching Save does nothing.
	Restore()

	Translate(offset gm.Vec)
	Rotate(angle gm.Rad)
	Scale(scale gm.Vec)

	// BeginPath discards the current path.
	BeginPath()

	MoveTo(p gm.Vec)
	LineTo(p gm.Vec)
	QuadTo(control, p gm.Vec)
	CubicTo(firstControl, secondControl, p gm.Vec)

	// Arc adds a circular arc around center. A line is added from the current
	// point to the start of the arc, if the path already has a current point.
	Arc(center gm.Vec, radius float64, start, end gm.Rad, direction Direction)

	// Ellipse adds an elliptical arc around center. The ellipse is rotated by rotation.
	Ellipse(center gm.Vec, radii gm.Vec, rotation, start, end gm.Rad, direction Direction)

	// Rect adds a closed rectangle as a new sub path.
	Rect(rect gm.Rect)

	ClosePath()

	Fill(paint Paint, rule FillRule)
	Stroke(paint Paint, style StrokeStyle)

	// Clip intersects the clip region with the current path.
	Clip()

	FillText(text string, pos gm.Vec, style TextStyle)

	// MeasureText returns the advance width of the text in local units.
	MeasureText(text string, font Font) float64

	SetBlend(blend Blend)
	SetShadow(shadow Shadow)
}

type Direction uint8

const (
	// Clockwise sweeps with increasing angles.
	Clockwise Direction = iota

	// CounterClockwise sweeps with decreasing angles.
	CounterClockwise
)

type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinBevel
	LineJoinRound
)

type StrokeStyle struct {
	// Width is the stroke width in local units.
	Width float64

	// LineCap shapes both ends of an open subpath. Closed subpaths have no caps.
	LineCap LineCap

	// LineJoin shapes the corner between two consecutive segments.
	LineJoin LineJoin

	// MiterLimit bounds the length of a miter join relative to the width,
	// longer corners are beveled. Zero selects a limit of 10.
	MiterLimit float64
}

type Blend uint8

const (
	BlendSourceOver Blend = iota

	// BlendLighter adds source and destination colors.
	BlendLighter
)

// Shadow is painted below everything filled while it is active.
// The zero value disables shadows.
type Shadow struct {
	Color  color.Color
	Blur   float64
	Offset gm.Vec
}

func (s Shadow) Enabled() bool {
	return !s.Color.IsTransparent() && (s.Blur > 0 || s.Offset != gm.VecZero)
}
