package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
)

// DrawDebug paints the collision shapes and constraints of the world on top of ctx.
func DrawDebug(world *World, ctx canvas.Context) {
	ctx.Save()
	defer ctx.Restore()

	cp.DrawSpace(world.space, debugCanvas{ctx: ctx})
}

type debugCanvas struct {
	ctx canvas.Context
}

func (d debugCanvas) draw(outline cp.FColor, fill cp.FColor) {
	if fill.A > 0 {
		d.ctx.Fill(paintOf(fill), canvas.NonZero)
	}

	if outline.A > 0 {
		d.ctx.Stroke(paintOf(outline), canvas.StrokeStyle{Width: 1})
	}
}

func (d debugCanvas) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	center := vecOf(pos)

	d.ctx.BeginPath()
	d.ctx.Arc(center, radius, 0, gm.FullCircle, canvas.Clockwise)
	d.ctx.ClosePath()
	d.draw(cp.FColor{}, fill)

	// a line shows the rotation of the body
	d.ctx.BeginPath()
	d.ctx.Arc(center, radius, 0, gm.FullCircle, canvas.Clockwise)
	d.ctx.ClosePath()
	d.ctx.MoveTo(center)
	d.ctx.LineTo(center.Add(gm.Vec{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}))
	d.draw(outline, cp.FColor{})
}

func (d debugCanvas) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.ctx.BeginPath()
	d.ctx.MoveTo(vecOf(a))
	d.ctx.LineTo(vecOf(b))
	d.draw(fill, cp.FColor{})
}

func (d debugCanvas) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.ctx.BeginPath()
	d.ctx.MoveTo(vecOf(a))
	d.ctx.LineTo(vecOf(b))
	d.ctx.Stroke(paintOf(fill), canvas.StrokeStyle{Width: max(1, 2*radius), LineCap: canvas.LineCapRound})
}

func (d debugCanvas) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count < 2 {
		return
	}

	d.ctx.BeginPath()
	d.ctx.MoveTo(vecOf(verts[0]))
	for _, vert := range verts[1:count] {
		d.ctx.LineTo(vecOf(vert))
	}

	d.ctx.ClosePath()
	d.draw(outline, fill)
}

func (d debugCanvas) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.ctx.BeginPath()
	d.ctx.Arc(vecOf(pos), size/2, 0, gm.FullCircle, canvas.Clockwise)
	d.draw(cp.FColor{}, fill)
}

func (d debugCanvas) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS
}

func (d debugCanvas) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d debugCanvas) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if body := shape.Body(); body != nil && body.GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.5, G: 0.5, B: 0.5, A: 0.35}
	}

	return cp.FColor{G: 1, A: 0.35}
}

func (d debugCanvas) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d debugCanvas) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d debugCanvas) Data() interface{} {
	return nil
}

func paintOf(c cp.FColor) canvas.Paint {
	return canvas.Solid(color.RGBA(c.R, c.G, c.B, c.A))
}
