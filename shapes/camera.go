package shapes

import (
	"math"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

// CameraFrontRecord paints the front view of a reflex camera.
type CameraFrontRecord struct {
	Width, Height float64
	LensRadius    float64

	Body, Secondary, Top, Trim string

	Outline      string
	OutlineWidth float64

	// LensRings are the colors of the rings from outer to inner.
	LensRings  []string
	GlassOuter string
	GlassInner string

	Label string
}

func (CameraFrontRecord) Kind() Kind { return KindCameraFront }

type CameraFrontOptions struct {
	physics.BodyOptions

	Body, Secondary, Top, Trim string

	// Outline is set to an empty string to remove the outline.
	Outline      Opt[string]
	OutlineWidth float64

	LensRings  []string
	GlassOuter string
	GlassInner string

	Label Opt[string]
}

// CameraFront creates a camera. The collision shape is a compound of the
// body and a circle at the lens.
func (f *Factory) CameraFront(pos gm.Vec, width, height float64, opts CameraFrontOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	rings := opts.LensRings
	if len(rings) == 0 {
		rings = []string{"#F3F4F6", "#6B7280", "#1F2937", "#1F2937"}
	}

	rec := CameraFrontRecord{
		Width:        width,
		Height:       height,
		LensRadius:   math.Min(height*0.42, width*0.33),
		Body:         stringOr(opts.Body, "#EF4444"),
		Secondary:    stringOr(opts.Secondary, "#06B6D4"),
		Top:          stringOr(opts.Top, "#06B6D4"),
		Trim:         stringOr(opts.Trim, "red"),
		Outline:      opts.Outline.OrValue("white"),
		OutlineWidth: positiveOr(opts.OutlineWidth, 2),
		LensRings:    rings,
		GlassOuter:   stringOr(opts.GlassOuter, "#06B6D4"),
		GlassInner:   stringOr(opts.GlassInner, "#1F2937"),
		Label:        opts.Label.OrValue("FT"),
	}

	parts := []*physics.Body{
		f.bodies.Rectangle(gm.VecZero, width, height, opts.BodyOptions),
		f.bodies.Circle(gm.Vec{X: width * 0.18}, rec.LensRadius*0.85, opts.BodyOptions),
	}

	body := f.compound(pos, 0, opts.BodyOptions, math.Max(width, height)/2, parts...)
	return f.record(body, rec)
}

// topLeft returns the rectangle with the given top left corner and size.
func topLeft(x, y, width, height float64) gm.Rect {
	return gm.Rect{
		Min: gm.Vec{X: x, Y: y},
		Max: gm.Vec{X: x + width, Y: y + height},
	}
}

func RenderCameraFront(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[CameraFrontRecord](store, body)
	if !ok {
		return
	}

	w, h := rec.Width, rec.Height
	lensR := rec.LensRadius

	sideW := w * 0.18
	topH := h * 0.28
	topW := w * 0.58

	prism := []gm.Vec{
		{X: -topW / 2, Y: -h / 2},
		{X: topW / 2, Y: -h / 2},
		{X: topW * 0.38, Y: -h/2 - topH},
		{X: -topW * 0.38, Y: -h/2 - topH},
	}

	lens := gm.Vec{X: w * 0.18}

	inLocalFrame(ctx, body, 0, func() {
		ctx.BeginPath()
		roundedRect(ctx, topLeft(-w/2, -h/2, w, h), math.Min(w, h)*0.06)
		fillWith(ctx, rec.Body, canvas.NonZero)

		ctx.BeginPath()
		roundedRect(ctx, topLeft(-w/2, -h/2, sideW, h), 10)
		fillWith(ctx, rec.Secondary, canvas.NonZero)

		ctx.BeginPath()
		roundedRect(ctx, topLeft(w/2-sideW, -h/2, sideW, h), 10)
		fillWith(ctx, rec.Secondary, canvas.NonZero)

		trim := math.Max(2, h*0.02)

		ctx.BeginPath()
		ctx.Rect(topLeft(-w/2, -h/2+h*0.14, w, trim))
		ctx.Rect(topLeft(-w/2, h/2-h*0.12, w, trim))
		fillWith(ctx, rec.Trim, canvas.NonZero)

		ctx.BeginPath()
		polygonPath(ctx, prism)
		fillWith(ctx, rec.Top, canvas.NonZero)

		// hot shoe
		ctx.BeginPath()
		roundedRect(ctx, topLeft(-topW*0.12, -h/2-topH, topW*0.24, topH*0.22), 4)
		fillWith(ctx, rec.Trim, canvas.NonZero)

		ringCount := max(3, len(rec.LensRings))
		ringStep := lensR / float64(ringCount+1)

		for idx := 0; idx < ringCount; idx++ {
			outer := lensR - float64(idx)*ringStep
			inner := outer - math.Max(4, ringStep*0.55)

			ctx.BeginPath()
			ctx.Arc(lens, outer, 0, gm.FullCircle, canvas.Clockwise)
			ctx.Arc(lens, math.Max(0, inner), gm.FullCircle, 0, canvas.CounterClockwise)
			ctx.ClosePath()
			fillWith(ctx, rec.LensRings[idx%len(rec.LensRings)], canvas.NonZero)
		}

		if glass, ok := rec.glass(lens); ok {
			ctx.BeginPath()
			circlePath(ctx, lens, lensR*0.72)
			ctx.Fill(glass, canvas.NonZero)
		}

		ctx.BeginPath()
		circlePath(ctx, lens.Sub(gm.VecSplat(lensR*0.22)), lensR*0.12)
		fillWith(ctx, "rgba(255,255,255,0.65)", canvas.NonZero)

		// shutter button
		ctx.BeginPath()
		roundedRect(ctx, topLeft(w*0.31, -h/2-topH*0.28, w*0.06, h*0.08), 4)
		fillWith(ctx, rec.Secondary, canvas.NonZero)

		// strap lugs
		ctx.BeginPath()
		circlePath(ctx, gm.Vec{X: -w/2 + 8, Y: -h * 0.06}, 6)
		circlePath(ctx, gm.Vec{X: w/2 - 8, Y: -h * 0.06}, 6)
		fillWith(ctx, rec.Trim, canvas.NonZero)

		if rec.Label != "" {
			font := canvas.Font{Family: "sans-serif", Size: math.Max(10, h*0.16), Weight: canvas.WeightNormal}

			ctx.FillText(rec.Label, gm.Vec{X: -w * 0.33, Y: -h * 0.05}, canvas.TextStyle{
				Font:     font,
				Color:    color.MustParse("#F6E9D5"),
				Align:    canvas.AlignStart,
				Baseline: canvas.BaselineMiddle,
			})
		}

		if rec.Outline != "" {
			ctx.BeginPath()
			roundedRect(ctx, topLeft(-w/2, -h/2, w, h), math.Min(w, h)*0.06)
			polygonPath(ctx, prism)
			circlePath(ctx, lens, lensR)
			strokeWith(ctx, rec.Outline, rec.OutlineWidth)
		}
	})
}

func (rec CameraFrontRecord) glass(lens gm.Vec) (canvas.Paint, bool) {
	inner, ok := color.Parse(rec.GlassInner)
	if !ok {
		return canvas.Paint{}, false
	}

	outer, ok := color.Parse(rec.GlassOuter)
	if !ok {
		return canvas.Paint{}, false
	}

	start := lens.Sub(gm.VecSplat(rec.LensRadius * 0.25))

	gradient := canvas.NewRadialGradient(start, rec.LensRadius*0.1, lens, rec.LensRadius*0.7).
		AddStop(0, inner).
		AddStop(1, outer)

	return canvas.Paint{Gradient: gradient}, true
}
