package shapes

import (
	"math"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

type StarRecord struct {
	Style

	Edges       int
	OuterRadius float64
	InnerRadius float64
}

func (StarRecord) Kind() Kind { return KindStar }

type StarOptions struct {
	physics.BodyOptions
	StyleOptions

	// InnerRadius defaults to 45% of the outer radius.
	InnerRadius float64
}

// Star creates a concave star with the given number of points.
func (f *Factory) Star(pos gm.Vec, edges int, outerRadius float64, opts StarOptions) *physics.Body {
	outerRadius = clampSize(outerRadius)

	rec := StarRecord{
		Style:       opts.StyleOptions.apply(Style{Fill: "#FACC15", OutlineWidth: 2}),
		Edges:       max(3, edges),
		OuterRadius: outerRadius,
		InnerRadius: positiveOr(opts.InnerRadius, outerRadius*0.45),
	}

	// the collider carries the same rotation offset as the painted star
	rotation := gm.RotationMat(rec.Rotation)

	outline := rec.Vertices()
	for idx, vertex := range outline {
		outline[idx] = rotation.Transform(vertex)
	}

	body := f.fromVerticesOr(pos, outline, opts.BodyOptions, outerRadius*0.9, KindStar)
	return f.record(body, rec)
}

// Vertices alternates between outer and inner points, starting with a point at angle zero.
func (rec StarRecord) Vertices() []gm.Vec {
	count := rec.Edges * 2
	step := gm.Pi / gm.Rad(rec.Edges)

	points := make([]gm.Vec, count)
	for idx := range points {
		radius := rec.OuterRadius
		if idx%2 == 1 {
			radius = rec.InnerRadius
		}

		points[idx] = gm.Polar(gm.Rad(idx)*step, radius, radius)
	}

	return points
}

func RenderStar(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[StarRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		polygonPath(ctx, rec.Vertices())

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)
	})
}

type SparkStarRecord struct {
	Style
	Width, Height float64

	// InnerRatio is the radius of the valleys relative to the tips.
	InnerRatio float64

	// CurveMix moves the control points from the tips towards the valleys.
	CurveMix float64

	// CurveAngle is the angular offset of the control points from their anchors.
	CurveAngle gm.Rad
}

func (SparkStarRecord) Kind() Kind { return KindSparkStar }

type SparkStarOptions struct {
	physics.BodyOptions
	StyleOptions

	InnerRatio        float64
	CurveMix          float64
	CurveAngle        gm.Rad
	SamplesPerQuarter int
}

// SparkStar creates a four pointed twinkle with curved flanks.
func (f *Factory) SparkStar(pos gm.Vec, width, height float64, opts SparkStarOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	rec := SparkStarRecord{
		Style:      opts.StyleOptions.apply(Style{Fill: "#FF5A1F", OutlineWidth: 2}),
		Width:      width,
		Height:     height,
		InnerRatio: gm.Clamp(positiveOr(opts.InnerRatio, 0.22), 0.02, 1),
		CurveMix:   gm.Clamp(positiveOr(opts.CurveMix, 0.55), 0, 1),
		CurveAngle: gm.Rad(positiveOr(float64(opts.CurveAngle), math.Pi/9)),
	}

	samples := opts.SamplesPerQuarter
	if samples <= 0 {
		samples = 12
	}

	outline := rec.outline(max(4*samples, 16))
	fallback := math.Max(width, height) / 2 * 0.75

	body := f.fromVerticesOr(pos, outline, opts.BodyOptions, fallback, KindSparkStar)
	return f.record(body, rec)
}

// outline samples r(t) = 1 - (1 - inner) * |sin 2t|^1.6 on the ellipse of the star.
func (rec SparkStarRecord) outline(steps int) []gm.Vec {
	rx, ry := rec.Width/2, rec.Height/2
	rotation := gm.RotationMat(rec.Rotation)

	points := make([]gm.Vec, steps)
	for idx := range points {
		t := gm.Rad(idx) / gm.Rad(steps) * gm.FullCircle
		unit := 1 - (1-rec.InnerRatio)*math.Pow(math.Abs((2*t).Sin()), 1.6)
		points[idx] = rotation.Transform(gm.Polar(t, rx*unit, ry*unit))
	}

	return points
}

func RenderSparkStar(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[SparkStarRecord](store, body)
	if !ok {
		return
	}

	rx, ry := rec.Width/2, rec.Height/2

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.Scale(gm.Vec{X: rx, Y: ry})

		unit := func(angle gm.Rad, radius float64) gm.Vec {
			return gm.Polar(angle, radius, radius)
		}

		valley := math.Max(0.02, rec.InnerRatio)
		control := gm.Lerp(1, rec.InnerRatio, rec.CurveMix)

		ctx.BeginPath()
		ctx.MoveTo(unit(0, 1))

		for idx := 0; idx < 4; idx++ {
			tip := gm.Rad(idx) * gm.Pi / 2
			val := tip + gm.Pi/4
			next := tip + gm.Pi/2

			ctx.CubicTo(
				unit(tip+rec.CurveAngle, control),
				unit(val-rec.CurveAngle, control),
				unit(val, valley),
			)

			ctx.CubicTo(
				unit(val+rec.CurveAngle, control),
				unit(next-rec.CurveAngle, control),
				unit(next, 1),
			)
		}

		ctx.ClosePath()

		rec.fill(ctx, canvas.NonZero)
		strokeWith(ctx, rec.Outline, rec.OutlineWidth/math.Max(rx, ry))
	})
}
