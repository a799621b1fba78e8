package shapes

import (
	"math"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

// ExclamationMarkRecord paints a rounded bar above a dot, both centered on the
// local y axis.
type ExclamationMarkRecord struct {
	Height float64

	BarWidth, BarHeight float64
	BarCenterY          float64

	DotRadius  float64
	DotCenterY float64

	CornerRadius float64

	Color    string
	DotColor string

	Outline      string
	OutlineWidth float64
}

func (ExclamationMarkRecord) Kind() Kind { return KindExclamationMark }

type ExclamationMarkOptions struct {
	physics.BodyOptions

	Color string

	// DotColor defaults to Color.
	DotColor string

	Outline      string
	OutlineWidth float64

	// The ratios are relative to the total height.
	BarWidthRatio  float64
	DotRadiusRatio float64
	GapRatio       float64

	// CornerRadiusRatio is relative to the width of the bar.
	CornerRadiusRatio float64

	Angle gm.Rad
}

// ExclamationMark creates a mark of the given total height, at least 12 pixels.
// The collision shape is a compound of the bar and the dot.
func (f *Factory) ExclamationMark(pos gm.Vec, height float64, opts ExclamationMarkOptions) *physics.Body {
	h := math.Max(12, clampSize(height))

	barW := math.Max(2, h*positiveOr(opts.BarWidthRatio, 0.18))
	dotR := math.Max(2, h*positiveOr(opts.DotRadiusRatio, 0.12))
	gap := math.Max(1, h*positiveOr(opts.GapRatio, 0.08))
	barH := math.Max(4, h-(gap+2*dotR))

	fill := stringOr(opts.Color, "#FF3B2F")

	rec := ExclamationMarkRecord{
		Height:       h,
		BarWidth:     barW,
		BarHeight:    barH,
		BarCenterY:   -h/2 + barH/2,
		DotRadius:    dotR,
		DotCenterY:   h/2 - dotR,
		CornerRadius: math.Min(barW*positiveOr(opts.CornerRadiusRatio, 0.35), math.Min(barW, barH)/2),
		Color:        fill,
		DotColor:     stringOr(opts.DotColor, fill),
		Outline:      opts.Outline,
		OutlineWidth: positiveOr(opts.OutlineWidth, 2),
	}

	parts := []*physics.Body{
		f.bodies.Rectangle(gm.Vec{Y: rec.BarCenterY}, barW, barH, opts.BodyOptions),
		f.bodies.Circle(gm.Vec{Y: rec.DotCenterY}, dotR, opts.BodyOptions),
	}

	body := f.compound(pos, opts.Angle, opts.BodyOptions, h/2, parts...)
	return f.record(body, rec)
}

func RenderExclamationMark(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[ExclamationMarkRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, 0, func() {
		ctx.BeginPath()
		roundedRect(ctx, centeredRect(gm.Vec{Y: rec.BarCenterY}, rec.BarWidth, rec.BarHeight), rec.CornerRadius)
		fillWith(ctx, rec.Color, canvas.NonZero)
		strokeWith(ctx, rec.Outline, rec.OutlineWidth)

		ctx.BeginPath()
		circlePath(ctx, gm.Vec{Y: rec.DotCenterY}, rec.DotRadius)
		fillWith(ctx, rec.DotColor, canvas.NonZero)
		strokeWith(ctx, rec.Outline, rec.OutlineWidth)
	})
}
