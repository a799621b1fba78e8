package shapes

import (
	"math"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

// MartiniGlassRecord paints a glass made of a triangular bowl, a stem and a base,
// stacked from top to bottom and centered on the body.
type MartiniGlassRecord struct {
	Bowl, Stem, Base string

	Outline      string
	OutlineWidth float64

	BowlWidth, BowlHeight float64
	StemWidth, StemHeight float64
	BaseWidth, BaseHeight float64
}

func (MartiniGlassRecord) Kind() Kind { return KindMartiniGlass }

func (rec MartiniGlassRecord) totalHeight() float64 {
	return rec.BowlHeight + rec.StemHeight + rec.BaseHeight
}

type MartiniGlassOptions struct {
	physics.BodyOptions

	// Stem and Base default to the color of the bowl.
	Bowl, Stem, Base string

	Outline      string
	OutlineWidth float64
}

// MartiniGlass creates a glass of the given total height. The collision shape
// is a compound of the bowl triangle, the stem and the base.
func (f *Factory) MartiniGlass(pos gm.Vec, size float64, opts MartiniGlassOptions) *physics.Body {
	size = clampSize(size)

	bowl := stringOr(opts.Bowl, "#6366F1")

	rec := MartiniGlassRecord{
		Bowl:         bowl,
		Stem:         stringOr(opts.Stem, bowl),
		Base:         stringOr(opts.Base, bowl),
		Outline:      opts.Outline,
		OutlineWidth: positiveOr(opts.OutlineWidth, 2),
		BowlWidth:    size * 0.92,
		BowlHeight:   size * 0.46,
		StemHeight:   size * 0.40,
		BaseHeight:   size * 0.08,
	}

	rec.StemWidth = math.Max(4, rec.BowlWidth*0.08)
	rec.BaseWidth = rec.BowlWidth * 0.48

	top := -rec.totalHeight() / 2

	// the triangle is given relative to its centroid, a third below the rim
	triangle := []gm.Vec{
		{X: -rec.BowlWidth / 2, Y: -rec.BowlHeight / 3},
		{X: rec.BowlWidth / 2, Y: -rec.BowlHeight / 3},
		{Y: rec.BowlHeight * 2 / 3},
	}

	parts := []*physics.Body{
		f.bodies.FromVertices(gm.Vec{Y: top + rec.BowlHeight/3}, [][]gm.Vec{triangle}, opts.BodyOptions, true),
		f.bodies.Rectangle(gm.Vec{Y: top + rec.BowlHeight + rec.StemHeight/2}, rec.StemWidth, rec.StemHeight, opts.BodyOptions),
		f.bodies.Rectangle(gm.Vec{Y: top + rec.BowlHeight + rec.StemHeight + rec.BaseHeight/2}, rec.BaseWidth, rec.BaseHeight, opts.BodyOptions),
	}

	body := f.compound(pos, 0, opts.BodyOptions, size/2, parts...)
	return f.record(body, rec)
}

func RenderMartiniGlass(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[MartiniGlassRecord](store, body)
	if !ok {
		return
	}

	top := -rec.totalHeight() / 2

	inLocalFrame(ctx, body, 0, func() {
		ctx.BeginPath()
		polygonPath(ctx, []gm.Vec{
			{X: -rec.BowlWidth / 2, Y: top},
			{X: rec.BowlWidth / 2, Y: top},
			{Y: top + rec.BowlHeight},
		})

		fillWith(ctx, rec.Bowl, canvas.NonZero)
		strokeWith(ctx, rec.Outline, rec.OutlineWidth)

		stem := gm.Rect{
			Min: gm.Vec{X: -rec.StemWidth / 2, Y: top + rec.BowlHeight},
			Max: gm.Vec{X: rec.StemWidth / 2, Y: top + rec.BowlHeight + rec.StemHeight},
		}

		ctx.BeginPath()
		ctx.Rect(stem)
		fillWith(ctx, rec.Stem, canvas.NonZero)
		strokeWith(ctx, rec.Outline, rec.OutlineWidth)

		base := gm.Rect{
			Min: gm.Vec{X: -rec.BaseWidth / 2, Y: stem.Max.Y},
			Max: gm.Vec{X: rec.BaseWidth / 2, Y: stem.Max.Y + rec.BaseHeight},
		}

		ctx.BeginPath()
		ctx.Rect(base)
		fillWith(ctx, rec.Base, canvas.NonZero)
		strokeWith(ctx, rec.Outline, rec.OutlineWidth)
	})
}

type PimentoSide uint8

const (
	PimentoRight PimentoSide = iota
	PimentoLeft
)

// OliveStickRecord paints a skewer along the local x axis, with a pointed tip on
// the left, a ball on the right and olives in between.
type OliveStickRecord struct {
	// Olives holds the x coordinate of every olive.
	Olives []float64

	RodLength      float64
	StickThickness float64
	BallRadius     float64
	OliveRadius    float64
	TipLength      float64
	TipWidth       float64

	Olive, Pimento, Rod, Ball string

	Outline      string
	OutlineWidth float64

	PimentoSide PimentoSide
}

func (OliveStickRecord) Kind() Kind { return KindOliveStick }

type OliveStickOptions struct {
	physics.BodyOptions

	Count       int
	OliveRadius float64

	// Spacing is the distance between two olives, 1.35 olive radii by default.
	Spacing        float64
	StickThickness float64
	StickMargin    float64
	TipLength      float64
	TipWidth       float64
	BallRadius     float64
	Angle          gm.Rad

	Olive, Pimento, Rod, Ball string

	Outline      string
	OutlineWidth float64

	PimentoSide PimentoSide
}

// OliveStick creates a skewer with olives. The collision shape is a compound
// of the rod, the ball and one circle per olive.
func (f *Factory) OliveStick(pos gm.Vec, opts OliveStickOptions) *physics.Body {
	count := opts.Count
	if count <= 0 {
		count = 3
	}

	oliveR := positiveOr(opts.OliveRadius, 20)
	thickness := positiveOr(opts.StickThickness, math.Max(4, math.Round(oliveR*0.28)))
	spacing := positiveOr(opts.Spacing, oliveR*1.35)
	margin := positiveOr(opts.StickMargin, math.Round(oliveR*0.9))

	span := float64(count-1) * spacing

	rec := OliveStickRecord{
		RodLength:      span + 2*margin,
		StickThickness: thickness,
		BallRadius:     positiveOr(opts.BallRadius, math.Round(oliveR*0.35)),
		OliveRadius:    oliveR,
		TipLength:      positiveOr(opts.TipLength, math.Round(oliveR*0.9)),
		TipWidth:       positiveOr(opts.TipWidth, math.Max(thickness*1.6, 6)),
		Olive:          stringOr(opts.Olive, "#10B981"),
		Pimento:        stringOr(opts.Pimento, "#EF4444"),
		Rod:            stringOr(opts.Rod, "#6B7280"),
		Ball:           stringOr(opts.Ball, "#6B7280"),
		Outline:        opts.Outline,
		OutlineWidth:   positiveOr(opts.OutlineWidth, 1.5),
		PimentoSide:    opts.PimentoSide,
	}

	parts := []*physics.Body{
		f.bodies.Rectangle(gm.VecZero, rec.RodLength, thickness, opts.BodyOptions),
		f.bodies.Circle(gm.Vec{X: rec.RodLength/2 + rec.BallRadius}, rec.BallRadius, opts.BodyOptions),
	}

	for idx := 0; idx < count; idx++ {
		x := -span/2 + float64(idx)*spacing
		rec.Olives = append(rec.Olives, x)
		parts = append(parts, f.bodies.Circle(gm.Vec{X: x}, oliveR, opts.BodyOptions))
	}

	body := f.compound(pos, opts.Angle, opts.BodyOptions, rec.RodLength/2, parts...)
	return f.record(body, rec)
}

func RenderOliveStick(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[OliveStickRecord](store, body)
	if !ok {
		return
	}

	half := rec.RodLength / 2
	rod := centeredRect(gm.VecZero, rec.RodLength, rec.StickThickness)
	ball := gm.Vec{X: half + rec.BallRadius}

	tip := []gm.Vec{
		{X: -half - rec.TipLength},
		{X: -half, Y: -rec.TipWidth / 2},
		{X: -half, Y: rec.TipWidth / 2},
	}

	inLocalFrame(ctx, body, 0, func() {
		ctx.BeginPath()
		ctx.Rect(rod)
		fillWith(ctx, rec.Rod, canvas.NonZero)

		ctx.BeginPath()
		polygonPath(ctx, tip)
		fillWith(ctx, rec.Rod, canvas.NonZero)

		ctx.BeginPath()
		circlePath(ctx, ball, rec.BallRadius)
		fillWith(ctx, rec.Ball, canvas.NonZero)

		if rec.Outline != "" {
			ctx.BeginPath()
			ctx.Rect(rod)
			polygonPath(ctx, tip)
			circlePath(ctx, ball, rec.BallRadius)
			strokeWith(ctx, rec.Outline, rec.OutlineWidth)
		}

		dotR := math.Max(2, rec.OliveRadius*0.22)

		dotDX := rec.OliveRadius * 0.55
		if rec.PimentoSide == PimentoLeft {
			dotDX = -dotDX
		}

		for _, x := range rec.Olives {
			ctx.BeginPath()
			circlePath(ctx, gm.Vec{X: x}, rec.OliveRadius)
			fillWith(ctx, rec.Olive, canvas.NonZero)

			shine := gm.Vec{X: x - rec.OliveRadius*0.35, Y: -rec.OliveRadius * 0.25}

			ctx.BeginPath()
			circlePath(ctx, shine, math.Max(1, rec.OliveRadius*0.18))
			fillWith(ctx, "rgba(255,255,255,0.55)", canvas.NonZero)

			ctx.BeginPath()
			circlePath(ctx, gm.Vec{X: x + dotDX}, dotR)
			fillWith(ctx, rec.Pimento, canvas.NonZero)
		}
	})
}
