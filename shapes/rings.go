package shapes

import (
	"math"
	"strings"

	"github.com/oliverbestmann/tumble/arctext"
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

type ThickRingRecord struct {
	Style

	OuterRadius float64
	InnerRadius float64
	Start, End  gm.Rad
}

func (ThickRingRecord) Kind() Kind { return KindThickRing }

type ThickRingOptions struct {
	physics.BodyOptions
	StyleOptions

	OuterRadius float64
	InnerRadius float64
	Start, End  Opt[gm.Rad]
}

// ThickRing creates a thick segment of a ring, open on the right by default.
func (f *Factory) ThickRing(pos gm.Vec, opts ThickRingOptions) *physics.Body {
	outer := positiveOr(opts.OuterRadius, 170)

	body := f.bodies.Circle(pos, outer, labelMaterial(opts.BodyOptions))

	style := opts.StyleOptions.apply(labelStyle("#22D3EE", "", ""))

	return f.record(body, ThickRingRecord{
		Style:       style,
		OuterRadius: outer,
		InnerRadius: gm.Clamp(positiveOr(opts.InnerRadius, outer-70), 0, outer),
		Start:       opts.Start.OrValue(-gm.Pi * 0.28),
		End:         opts.End.OrValue(gm.Pi * 1.28),
	})
}

func RenderThickRing(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[ThickRingRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		ringPath(ctx, rec.OuterRadius, rec.InnerRadius, rec.Start, rec.End)

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)
	})
}

type BagelRecord struct {
	Style

	// Radii of the outer ellipse.
	Radii     gm.Vec
	Thickness float64

	TextSide      arctext.Side
	TextDirection canvas.Direction

	// TextAnchor is the angle the text is centered on.
	TextAnchor    gm.Rad
	LetterSpacing float64
}

func (BagelRecord) Kind() Kind { return KindBagel }

type BagelOptions struct {
	physics.BodyOptions
	StyleOptions

	Thickness     float64
	TextSide      arctext.Side
	TextDirection canvas.Direction
	TextAnchor    gm.Rad
	LetterSpacing float64
}

// Bagel creates an elliptical donut with text running along the ring.
func (f *Factory) Bagel(pos gm.Vec, radiusX, radiusY float64, opts BagelOptions) *physics.Body {
	radiusX, radiusY = clampSize(radiusX), clampSize(radiusY)

	body := f.bodies.Circle(pos, math.Max(radiusX, radiusY), opts.BodyOptions)

	style := Style{Fill: "#FECACA", OutlineWidth: 2, Font: "700 40px Inter"}

	return f.record(body, BagelRecord{
		Style:         opts.StyleOptions.apply(style),
		Radii:         gm.Vec{X: radiusX, Y: radiusY},
		Thickness:     positiveOr(opts.Thickness, 80),
		TextSide:      opts.TextSide,
		TextDirection: opts.TextDirection,
		TextAnchor:    opts.TextAnchor,
		LetterSpacing: opts.LetterSpacing,
	})
}

// InnerRadii returns the radii of the hole, at least two pixels each.
func (rec BagelRecord) InnerRadii() gm.Vec {
	return gm.Vec{
		X: math.Max(rec.Radii.X-rec.Thickness, 2),
		Y: math.Max(rec.Radii.Y-rec.Thickness, 2),
	}
}

// TextLayout places the text in the middle of the ring.
func (rec BagelRecord) TextLayout() arctext.Layout {
	return arctext.Layout{
		Radii:     rec.Radii.Add(rec.InnerRadii()).Mul(0.5),
		Anchor:    rec.TextAnchor,
		Direction: rec.TextDirection,
		Side:      rec.TextSide,
		Spacing:   rec.LetterSpacing,
	}
}

func RenderBagel(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[BagelRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		inner := rec.InnerRadii()

		ctx.BeginPath()
		ctx.Ellipse(gm.VecZero, rec.Radii, 0, 0, gm.FullCircle, canvas.Clockwise)
		ctx.ClosePath()
		ctx.MoveTo(gm.Vec{X: inner.X})
		ctx.Ellipse(gm.VecZero, inner, 0, gm.FullCircle, 0, canvas.CounterClockwise)
		ctx.ClosePath()

		rec.fill(ctx, canvas.EvenOdd)
		rec.stroke(ctx)

		if rec.Text == "" {
			return
		}

		if style, ok := rec.textStyle(); ok {
			rec.TextLayout().Draw(ctx, rec.Text, style)
		}
	})
}

type CShapeRecord struct {
	Style

	OuterRadius float64
	InnerRadius float64

	// The ring runs clockwise from Start to End.
	Start, End gm.Rad

	TextSide      arctext.Side
	TextDirection canvas.Direction
	TextPadding   gm.Rad
	LetterSpacing float64
}

func (CShapeRecord) Kind() Kind { return KindCShape }

type CShapeOptions struct {
	physics.BodyOptions
	StyleOptions

	// Thickness of the ring relative to the outer radius.
	Thickness float64

	// Gap is the angle of the opening, centered on Rotation.
	Gap Opt[gm.Rad]

	TextSide      arctext.Side
	TextDirection Opt[canvas.Direction]

	// TextPadding keeps the text away from both ends of the ring.
	TextPadding   Opt[gm.Rad]
	LetterSpacing float64
}

// CShape creates a thick ring with an opening and text following the ring.
// The collision shape follows the outline of the ring.
func (f *Factory) CShape(pos gm.Vec, outerRadius float64, opts CShapeOptions) *physics.Body {
	style := Style{Fill: "#3BA3E5", Font: "bold 26px sans-serif"}
	style = opts.StyleOptions.apply(style)

	outer := math.Max(12, clampSize(outerRadius))
	thickness := gm.Clamp(positiveOr(opts.Thickness, 0.33), 0.05, 0.9)
	inner := math.Max(4, outer*(1-thickness))

	gap := gm.Clamp(opts.Gap.OrValue(1.2), 0.2, 1.9*gm.Pi)
	sweep := max(0.2, gm.FullCircle-gap)

	// the ring geometry carries the rotation, the painted frame does not
	start := style.Rotation + gap/2
	end := start + sweep
	style.Rotation = 0

	steps := max(24, int(math.Floor(float64(sweep)*24)))

	outline := make([]gm.Vec, 0, 2*(steps+1))
	for idx := 0; idx <= steps; idx++ {
		angle := start + sweep*gm.Rad(idx)/gm.Rad(steps)
		outline = append(outline, gm.Polar(angle, outer, outer))
	}

	for idx := steps; idx >= 0; idx-- {
		angle := start + sweep*gm.Rad(idx)/gm.Rad(steps)
		outline = append(outline, gm.Polar(angle, inner, inner))
	}

	body := f.fromVerticesOr(pos, outline, opts.BodyOptions, outer, KindCShape)

	return f.record(body, CShapeRecord{
		Style:         style,
		OuterRadius:   outer,
		InnerRadius:   inner,
		Start:         start,
		End:           end,
		TextSide:      opts.TextSide,
		TextDirection: opts.TextDirection.OrValue(canvas.CounterClockwise),
		TextPadding:   opts.TextPadding.OrValue(0.22),
		LetterSpacing: opts.LetterSpacing,
	})
}

// TextLayout places the text between both ends of the ring. The text starts at
// the end it is heading away from.
func (rec CShapeRecord) TextLayout() arctext.Layout {
	mid := (rec.OuterRadius + rec.InnerRadius) / 2

	offset := (rec.OuterRadius - rec.InnerRadius) * 0.12
	if rec.TextSide == arctext.Inner {
		offset = -offset
	}

	window := arctext.Window{
		Start: rec.Start + rec.TextPadding,
		End:   rec.End - rec.TextPadding,
	}

	if window.End-window.Start < 0.05 {
		center := (rec.Start + rec.End) / 2
		window = arctext.Window{Start: center - 0.025, End: center + 0.025}
	}

	anchor := window.Start
	if rec.TextDirection == canvas.CounterClockwise {
		anchor = window.End
	}

	return arctext.Layout{
		Radii:     gm.VecSplat(mid + offset),
		Anchor:    anchor,
		Direction: rec.TextDirection,
		Side:      rec.TextSide,
		Spacing:   rec.LetterSpacing,
		Window:    &window,
	}
}

func RenderCShape(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[CShapeRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		ringPath(ctx, rec.OuterRadius, rec.InnerRadius, rec.Start, rec.End)

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)

		if strings.TrimSpace(rec.Text) == "" {
			return
		}

		if style, ok := rec.textStyle(); ok {
			rec.TextLayout().Draw(ctx, rec.Text, style)
		}
	})
}
