// Package arctext distributes the glyphs of a string along an elliptical arc.
//
// Glyph advances are converted into angular steps using the average of both radii,
// so placement on strongly eccentric ellipses is approximate.
package arctext

import (
	"math"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
)

// Side selects how glyphs are turned relative to the tangent of the arc.
// CounterClockwise text is already turned by half a turn so it reads left to
// right along the bottom of the arc. Combining it with Inner cancels that turn.
type Side uint8

const (
	// Outer orients glyphs so they read upright when looking at the arc from outside.
	Outer Side = iota

	// Inner flips every glyph by half a turn.
	Inner
)

// Window limits the angles glyphs can be placed at. Text that does not fit is truncated.
type Window struct {
	Start, End gm.Rad
}

type Layout struct {
	// Radii of the ellipse the glyph centers are placed on.
	Radii gm.Vec

	// Anchor is the angle the string is centered on.
	Anchor gm.Rad

	// Direction in which the glyphs follow each other.
	Direction canvas.Direction

	Side Side

	// Spacing is added between two glyphs, in pixels along the arc.
	Spacing float64

	// Window is optional.
	Window *Window
}

// Glyph is a single placed character, relative to the center of the ellipse.
type Glyph struct {
	Text     string
	Angle    gm.Rad
	Position gm.Vec
	Rotation gm.Rad
	Width    float64
}

// MeasureFunc returns the advance width of a piece of text.
type MeasureFunc func(text string) float64

// Place lays out the text. The result contains at most one glyph per rune.
func (l Layout) Place(text string, measure MeasureFunc) []Glyph {
	chars := []rune(text)
	if len(chars) == 0 {
		return nil
	}

	radius := (l.Radii.X + l.Radii.Y) / 2
	if radius <= 0 {
		return nil
	}

	var dir gm.Rad = 1
	if l.Direction == canvas.CounterClockwise {
		dir = -1
	}

	widths := make([]float64, len(chars))

	var total float64
	for idx, ch := range chars {
		widths[idx] = measure(string(ch))
		if idx < len(chars)-1 {
			widths[idx] += l.Spacing
		}

		total += widths[idx]
	}

	span := gm.Rad(total / radius)
	theta := l.Anchor - dir*span/2

	if l.Window != nil {
		theta = l.clampStart(theta, span, dir)
	}

	glyphs := make([]Glyph, 0, len(chars))

	for idx, ch := range chars {
		step := gm.Rad(widths[idx]/radius) * dir

		theta += step / 2

		if l.Window != nil && (theta < l.Window.Start || theta > l.Window.End) {
			break
		}

		glyphs = append(glyphs, Glyph{
			Text:     string(ch),
			Angle:    theta,
			Position: gm.Polar(theta, l.Radii.X, l.Radii.Y),
			Rotation: l.rotationAt(theta),
			Width:    widths[idx],
		})

		theta += step / 2
	}

	return glyphs
}

// clampStart moves the start angle so that the text stays inside the window. If the
// text is longer than the window, it starts at the edge of the window in the
// direction of travel.
func (l Layout) clampStart(theta, span, dir gm.Rad) gm.Rad {
	w := *l.Window

	if span >= w.End-w.Start {
		if dir > 0 {
			return w.Start
		}

		return w.End
	}

	if dir > 0 {
		return gm.Clamp(theta, w.Start, w.End-span)
	}

	return gm.Clamp(theta, w.Start+span, w.End)
}

func (l Layout) rotationAt(theta gm.Rad) gm.Rad {
	sin, cos := theta.SinCos()

	// tangent of the ellipse in direction of increasing angles
	rotation := gm.Rad(math.Atan2(l.Radii.Y*cos, -l.Radii.X*sin))

	if l.Direction == canvas.CounterClockwise {
		rotation += math.Pi
	}

	if l.Side == Inner {
		rotation += math.Pi
	}

	return rotation.Normalized()
}

// Draw places the text and draws every glyph centered on its position.
func (l Layout) Draw(ctx canvas.Context, text string, style canvas.TextStyle) {
	style.Align = canvas.AlignCenter
	style.Baseline = canvas.BaselineMiddle

	measure := func(text string) float64 {
		return ctx.MeasureText(text, style.Font)
	}

	for _, glyph := range l.Place(text, measure) {
		ctx.Save()
		ctx.Translate(glyph.Position)
		ctx.Rotate(glyph.Rotation)
		ctx.FillText(glyph.Text, gm.VecZero, style)
		ctx.Restore()
	}
}
