package shapes

import (
	"math"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

// inLocalFrame runs draw with the context moved into the frame of the body.
func inLocalFrame(ctx canvas.Context, body *physics.Body, rotation gm.Rad, draw func()) {
	ctx.Save()
	defer ctx.Restore()

	ctx.Translate(body.Position())
	ctx.Rotate(body.Angle() + rotation)

	draw()
}

func fillWith(ctx canvas.Context, value string, rule canvas.FillRule) {
	paint, ok := canvas.ParsePaint(value)
	if !ok {
		return
	}

	ctx.Fill(paint, rule)
}

func strokeWith(ctx canvas.Context, value string, width float64) {
	if value == "" || width <= 0 {
		return
	}

	paint, ok := canvas.ParsePaint(value)
	if !ok {
		return
	}

	ctx.Stroke(paint, canvas.StrokeStyle{Width: width})
}

func circlePath(ctx canvas.Context, center gm.Vec, radius float64) {
	ctx.MoveTo(center.Add(gm.Vec{X: radius}))
	ctx.Arc(center, radius, 0, gm.FullCircle, canvas.Clockwise)
	ctx.ClosePath()
}

func polygonPath(ctx canvas.Context, points []gm.Vec) {
	for idx, point := range points {
		if idx == 0 {
			ctx.MoveTo(point)
		} else {
			ctx.LineTo(point)
		}
	}

	ctx.ClosePath()
}

// roundedRect adds a rectangle with quadratic corners. The radius is limited
// to half of the shorter side.
func roundedRect(ctx canvas.Context, rect gm.Rect, radius float64) {
	size := rect.Size()
	r := math.Max(0, math.Min(radius, math.Min(size.X, size.Y)/2))

	x0, y0 := rect.Min.XY()
	x1, y1 := rect.Max.XY()

	ctx.MoveTo(gm.Vec{X: x0 + r, Y: y0})
	ctx.LineTo(gm.Vec{X: x1 - r, Y: y0})
	ctx.QuadTo(gm.Vec{X: x1, Y: y0}, gm.Vec{X: x1, Y: y0 + r})
	ctx.LineTo(gm.Vec{X: x1, Y: y1 - r})
	ctx.QuadTo(gm.Vec{X: x1, Y: y1}, gm.Vec{X: x1 - r, Y: y1})
	ctx.LineTo(gm.Vec{X: x0 + r, Y: y1})
	ctx.QuadTo(gm.Vec{X: x0, Y: y1}, gm.Vec{X: x0, Y: y1 - r})
	ctx.LineTo(gm.Vec{X: x0, Y: y0 + r})
	ctx.QuadTo(gm.Vec{X: x0, Y: y0}, gm.Vec{X: x0 + r, Y: y0})
	ctx.ClosePath()
}

// centeredRect returns the rectangle of the given size around center.
func centeredRect(center gm.Vec, width, height float64) gm.Rect {
	return gm.RectWithCenterAndSize(center, gm.Vec{X: width, Y: height})
}

// ringPath adds a ring segment between two radii. The inner arc runs backwards
// so the segment fills with either fill rule.
func ringPath(ctx canvas.Context, outer, inner float64, start, end gm.Rad) {
	ctx.Arc(gm.VecZero, outer, start, end, canvas.Clockwise)
	ctx.Arc(gm.VecZero, inner, end, start, canvas.CounterClockwise)
	ctx.ClosePath()
}
