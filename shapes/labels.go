package shapes

import (
	"math"
	"strings"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

func labelStyle(fill, text, font string) Style {
	return Style{
		Fill:         fill,
		OutlineWidth: 2,
		Text:         text,
		Font:         font,
		TextColor:    defaultTextColor,
	}
}

type BannerRecord struct {
	Style
	Width, Height float64

	// Notch is the depth of the chevrons on both ends.
	Notch float64
}

func (BannerRecord) Kind() Kind { return KindBanner }

type BannerOptions struct {
	physics.BodyOptions
	StyleOptions

	Notch Opt[float64]
}

// Banner creates a horizontal band with chevron shaped ends.
func (f *Factory) Banner(pos gm.Vec, width, height float64, opts BannerOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	body := f.bodies.Rectangle(pos, width, height, labelMaterial(opts.BodyOptions))

	return f.record(body, BannerRecord{
		Style:  opts.StyleOptions.apply(labelStyle("#F59E0B", "EXPERIENCES", "800 32px Inter")),
		Width:  width,
		Height: height,
		Notch:  gm.Clamp(opts.Notch.OrValue(math.Min(28, height/2-4)), 0, height*0.49),
	})
}

func RenderBanner(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[BannerRecord](store, body)
	if !ok {
		return
	}

	w, h := rec.Width/2, rec.Height/2
	nx := gm.Clamp(rec.Notch, 0, rec.Height*0.49)

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		polygonPath(ctx, []gm.Vec{
			{X: -w},
			{X: -w + nx, Y: -h},
			{X: w - nx, Y: -h},
			{X: w},
			{X: w - nx, Y: h},
			{X: -w + nx, Y: h},
		})

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)
		rec.label(ctx, gm.VecZero)
	})
}

type BurstRecord struct {
	Style

	Spikes      int
	InnerRadius float64
	OuterRadius float64
}

func (BurstRecord) Kind() Kind { return KindBurst }

type BurstOptions struct {
	physics.BodyOptions
	StyleOptions

	Spikes      int
	InnerRadius float64
	OuterRadius float64
}

// Burst creates a star with many short spikes and multi line text.
func (f *Factory) Burst(pos gm.Vec, opts BurstOptions) *physics.Body {
	outer := positiveOr(opts.OuterRadius, 80)

	body := f.bodies.Circle(pos, outer, labelMaterial(opts.BodyOptions))

	spikes := opts.Spikes
	if spikes <= 0 {
		spikes = 12
	}

	return f.record(body, BurstRecord{
		Style:       opts.StyleOptions.apply(labelStyle("#22C55E", "GOOD\nFOOD", "900 24px Inter")),
		Spikes:      max(2, spikes),
		InnerRadius: positiveOr(opts.InnerRadius, 50),
		OuterRadius: outer,
	})
}

// Vertices returns the outline of the burst, starting with a spike at angle zero.
func (rec BurstRecord) Vertices() []gm.Vec {
	count := rec.Spikes * 2

	points := make([]gm.Vec, count)
	for idx := range points {
		radius := rec.OuterRadius
		if idx%2 == 1 {
			radius = rec.InnerRadius
		}

		angle := gm.Rad(idx) / gm.Rad(count) * gm.FullCircle
		points[idx] = gm.Polar(angle, radius, radius)
	}

	return points
}

func RenderBurst(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[BurstRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		polygonPath(ctx, rec.Vertices())

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)

		if rec.Text == "" {
			return
		}

		style, ok := rec.textStyle()
		if !ok {
			return
		}

		lines := strings.Split(rec.Text, "\n")
		lineHeight := style.Font.LineHeight()

		for idx, line := range lines {
			y := (float64(idx) - float64(len(lines)-1)/2) * lineHeight
			ctx.FillText(line, gm.Vec{Y: y}, style)
		}
	})
}

type PillRecord struct {
	Style
	Width, Height float64
	Radius        float64
}

func (PillRecord) Kind() Kind { return KindPill }

type PillOptions struct {
	physics.BodyOptions
	StyleOptions

	Radius float64
}

// Pill creates a rectangle with circular corners.
func (f *Factory) Pill(pos gm.Vec, width, height float64, opts PillOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	body := f.bodies.Rectangle(pos, width, height, labelMaterial(opts.BodyOptions))

	radius := positiveOr(opts.Radius, math.Min(height/2, 56))

	return f.record(body, PillRecord{
		Style:  opts.StyleOptions.apply(labelStyle("#F9A8D4", "MARKETING", "900 28px Inter")),
		Width:  width,
		Height: height,
		Radius: math.Min(radius, math.Min(width, height)/2),
	})
}

func RenderPill(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[PillRecord](store, body)
	if !ok {
		return
	}

	w, h := rec.Width/2, rec.Height/2
	r := math.Min(rec.Radius, math.Min(w, h))

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		ctx.MoveTo(gm.Vec{X: -w + r, Y: -h})
		ctx.Arc(gm.Vec{X: w - r, Y: -h + r}, r, -gm.Pi/2, 0, canvas.Clockwise)
		ctx.Arc(gm.Vec{X: w - r, Y: h - r}, r, 0, gm.Pi/2, canvas.Clockwise)
		ctx.Arc(gm.Vec{X: -w + r, Y: h - r}, r, gm.Pi/2, gm.Pi, canvas.Clockwise)
		ctx.Arc(gm.Vec{X: -w + r, Y: -h + r}, r, gm.Pi, 1.5*gm.Pi, canvas.Clockwise)
		ctx.ClosePath()

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)
		rec.label(ctx, gm.VecZero)
	})
}

type ParallelogramRecord struct {
	Style
	Width, Height float64

	// Skew is the angle the sides lean to the right.
	Skew gm.Rad
}

func (ParallelogramRecord) Kind() Kind { return KindParallelogram }

type ParallelogramOptions struct {
	physics.BodyOptions
	StyleOptions

	Skew Opt[gm.Rad]
}

func (f *Factory) Parallelogram(pos gm.Vec, width, height float64, opts ParallelogramOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	body := f.bodies.Rectangle(pos, width, height, labelMaterial(opts.BodyOptions))

	return f.record(body, ParallelogramRecord{
		Style:  opts.StyleOptions.apply(labelStyle("#A7F3D0", "DETAILS", "900 28px Inter")),
		Width:  width,
		Height: height,
		Skew:   gm.Clamp(opts.Skew.OrValue(0.35), -1.5, 1.5),
	})
}

func RenderParallelogram(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[ParallelogramRecord](store, body)
	if !ok {
		return
	}

	w, h := rec.Width/2, rec.Height/2
	dx := rec.Skew.Tan() * h

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		polygonPath(ctx, []gm.Vec{
			{X: -w + dx, Y: -h},
			{X: w + dx, Y: -h},
			{X: w - dx, Y: h},
			{X: -w - dx, Y: h},
		})

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)
		rec.label(ctx, gm.VecZero)
	})
}

type VLabelRecord struct {
	Style
	Width, Height float64
	Radius        float64
}

func (VLabelRecord) Kind() Kind { return KindVLabel }

type VLabelOptions struct {
	physics.BodyOptions
	StyleOptions

	Radius float64
}

// VLabel creates a rounded rectangle with vertical text reading upwards.
func (f *Factory) VLabel(pos gm.Vec, width, height float64, opts VLabelOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	body := f.bodies.Rectangle(pos, width, height, labelMaterial(opts.BodyOptions))

	radius := positiveOr(opts.Radius, 18)

	return f.record(body, VLabelRecord{
		Style:  opts.StyleOptions.apply(labelStyle("#93C5FD", "ATMOSPHERE", "900 22px Inter")),
		Width:  width,
		Height: height,
		Radius: math.Min(radius, math.Min(width, height)/4),
	})
}

func RenderVLabel(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[VLabelRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		roundedRect(ctx, centeredRect(gm.VecZero, rec.Width, rec.Height), rec.Radius)

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)

		ctx.Rotate(-gm.Pi / 2)
		rec.label(ctx, gm.VecZero)
	})
}

type QuarterPieRecord struct {
	Style
	Radius float64
}

func (QuarterPieRecord) Kind() Kind { return KindQuarterPie }

type QuarterPieOptions struct {
	physics.BodyOptions
	StyleOptions
}

// QuarterPie creates a quarter of a disc. The collision shape is a square
// slightly larger than the radius, centered on the tip of the slice.
func (f *Factory) QuarterPie(pos gm.Vec, radius float64, opts QuarterPieOptions) *physics.Body {
	radius = clampSize(radius)

	body := f.bodies.Rectangle(pos, radius*1.2, radius*1.2, labelMaterial(opts.BodyOptions))

	return f.record(body, QuarterPieRecord{
		Style:  opts.StyleOptions.apply(labelStyle("#FACC15", "PRODUCTION", "900 26px Inter")),
		Radius: radius,
	})
}

func RenderQuarterPie(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[QuarterPieRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		ctx.MoveTo(gm.VecZero)
		ctx.Arc(gm.VecZero, rec.Radius, 0, gm.Pi/2, canvas.Clockwise)
		ctx.ClosePath()

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)

		if rec.Text == "" {
			return
		}

		style, ok := rec.textStyle()
		if !ok {
			return
		}

		style.Align = canvas.AlignStart
		style.Baseline = canvas.BaselineAlphabetic

		ctx.Rotate(gm.Pi / 6)
		ctx.FillText(rec.Text, gm.Vec{X: rec.Radius * 0.25, Y: -rec.Radius * 0.12}, style)
	})
}

type TextBadgeRecord struct {
	Style
	Width, Height float64
	Radius        float64
}

func (TextBadgeRecord) Kind() Kind { return KindTextBadge }

type TextBadgeOptions struct {
	physics.BodyOptions
	StyleOptions

	Radius float64
}

// TextBadge creates a rounded rectangle carrying a single word.
func (f *Factory) TextBadge(pos gm.Vec, width, height float64, opts TextBadgeOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	body := f.bodies.Rectangle(pos, width, height, opts.BodyOptions)

	style := Style{Fill: "#F59E0B", OutlineWidth: 2, Font: "700 28px Inter"}
	radius := positiveOr(opts.Radius, 12)

	return f.record(body, TextBadgeRecord{
		Style:  opts.StyleOptions.apply(style),
		Width:  width,
		Height: height,
		Radius: math.Min(radius, math.Min(width, height)/2),
	})
}

func RenderTextBadge(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[TextBadgeRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		roundedRect(ctx, centeredRect(gm.VecZero, rec.Width, rec.Height), rec.Radius)

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)
		rec.label(ctx, gm.VecZero)
	})
}

type RibbonRecord struct {
	Style
	Width, Height float64
	Radius        float64
}

func (RibbonRecord) Kind() Kind { return KindRibbon }

type RibbonOptions struct {
	physics.BodyOptions
	StyleOptions

	Radius float64
}

func (f *Factory) Ribbon(pos gm.Vec, width, height float64, opts RibbonOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	body := f.bodies.Rectangle(pos, width, height, opts.BodyOptions)

	style := Style{Fill: "#F9A8D4", OutlineWidth: 2, Font: "700 34px Inter"}
	radius := positiveOr(opts.Radius, 16)

	return f.record(body, RibbonRecord{
		Style:  opts.StyleOptions.apply(style),
		Width:  width,
		Height: height,
		Radius: math.Min(radius, math.Min(width, height)/2),
	})
}

func RenderRibbon(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[RibbonRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		roundedRect(ctx, centeredRect(gm.VecZero, rec.Width, rec.Height), rec.Radius)

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)
		rec.label(ctx, gm.VecZero)
	})
}
