package shapes

import (
	"cmp"
	"math"
	"slices"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

// Lobe is one puff of a cloud, relative to the center of the cloud.
type Lobe struct {
	Center gm.Vec
	Radius float64
}

type CloudRecord struct {
	Width, Height float64
	Lobes         []Lobe

	Fill string

	Outline      string
	OutlineWidth float64

	Shadow     string
	ShadowBlur float64
}

func (CloudRecord) Kind() Kind { return KindCloud }

type CloudOptions struct {
	physics.BodyOptions

	// Lobes is the number of puffs, clamped to [3, 9]. Defaults to 5.
	Lobes int

	// Puffiness scales the radius of every lobe. Defaults to 0.9.
	Puffiness float64

	// SkewX drifts the outer lobes horizontally.
	SkewX float64

	Fill         string
	Outline      string
	OutlineWidth float64

	// Shadow is the color of a soft drop shadow below the lobes.
	Shadow     string
	ShadowBlur float64

	// Seed makes the jitter of the layout reproducible. Defaults to 42.
	Seed Opt[int64]
}

// cloudRand is the linear congruential generator used to jitter the lobes.
// The same seed always yields the same cloud.
type cloudRand struct {
	state int64
}

func (r *cloudRand) next() float64 {
	r.state = (r.state*9301 + 49297) % 233280
	return float64(r.state) / 233280
}

// Cloud creates a cloud from overlapping circles. The collision shape is
// a compound with one circle per lobe.
func (f *Factory) Cloud(pos gm.Vec, width, height float64, opts CloudOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	count := opts.Lobes
	if count == 0 {
		count = 5
	}

	count = min(max(count, 3), 9)

	rec := CloudRecord{
		Width:        width,
		Height:       height,
		Lobes:        cloudLobes(width, height, count, positiveOr(opts.Puffiness, 0.9), opts.SkewX, opts.Seed.OrValue(42)),
		Fill:         stringOr(opts.Fill, "#F1FAEE"),
		Outline:      opts.Outline,
		OutlineWidth: positiveOr(opts.OutlineWidth, 2),
		Shadow:       opts.Shadow,
		ShadowBlur:   positiveOr(opts.ShadowBlur, 14),
	}

	parts := make([]*physics.Body, 0, len(rec.Lobes))
	for _, lobe := range rec.Lobes {
		parts = append(parts, f.bodies.Circle(lobe.Center, math.Max(6, lobe.Radius), opts.BodyOptions))
	}

	body := f.compound(pos, 0, opts.BodyOptions, height/2, parts...)
	return f.record(body, rec)
}

// cloudLobes lays out the lobes along the width. Lobes near the center sit
// higher and are bigger than those at the sides.
func cloudLobes(width, height float64, count int, puffiness, skewX float64, seed int64) []Lobe {
	rnd := cloudRand{state: seed}

	lobes := make([]Lobe, count)

	for idx := range lobes {
		t := float64(idx) / float64(max(1, count-1))
		up := 1 - math.Abs(2*t-1)

		x := (t-0.5)*width + (rnd.next()-0.5)*width*0.06 + (t-0.5)*skewX
		y := (0.18-up*0.22)*height + (rnd.next()-0.5)*height*0.04

		base := height * 0.42 * (0.65 + up*0.5)

		lobes[idx] = Lobe{
			Center: gm.Vec{X: x, Y: y},
			Radius: base * puffiness * (0.9 + rnd.next()*0.2),
		}
	}

	return lobes
}

// silhouette approximates the outside of the cloud by the convex hull of
// points sampled on every lobe.
func (rec CloudRecord) silhouette() []gm.Vec {
	const perLobe = 10

	var samples []gm.Vec
	for _, lobe := range rec.Lobes {
		for idx := 0; idx < perLobe; idx++ {
			angle := gm.Rad(idx) / perLobe * gm.FullCircle
			samples = append(samples, lobe.Center.Add(gm.Polar(angle, lobe.Radius, lobe.Radius)))
		}
	}

	return convexHull(samples)
}

// convexHull computes the hull using the monotone chain algorithm.
// Collinear points are dropped.
func convexHull(points []gm.Vec) []gm.Vec {
	if len(points) < 3 {
		return nil
	}

	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b gm.Vec) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}

		return cmp.Compare(a.Y, b.Y)
	})

	cross := func(o, a, b gm.Vec) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	chain := func(points []gm.Vec, next func(idx int) gm.Vec) []gm.Vec {
		var hull []gm.Vec
		for idx := range points {
			p := next(idx)
			for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}

			hull = append(hull, p)
		}

		return hull[:len(hull)-1]
	}

	lower := chain(sorted, func(idx int) gm.Vec { return sorted[idx] })
	upper := chain(sorted, func(idx int) gm.Vec { return sorted[len(sorted)-1-idx] })

	return append(lower, upper...)
}

func RenderCloud(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[CloudRecord](store, body)
	if !ok || len(rec.Lobes) == 0 {
		return
	}

	inLocalFrame(ctx, body, 0, func() {
		if shadow, ok := color.Parse(rec.Shadow); ok {
			ctx.SetShadow(canvas.Shadow{Color: shadow, Blur: rec.ShadowBlur})
		}

		for _, lobe := range rec.Lobes {
			ctx.BeginPath()
			circlePath(ctx, lobe.Center, lobe.Radius)
			fillWith(ctx, rec.Fill, canvas.NonZero)
		}

		ctx.SetShadow(canvas.Shadow{})

		if rec.Outline != "" && rec.OutlineWidth > 0 {
			if hull := rec.silhouette(); len(hull) >= 3 {
				if paint, ok := canvas.ParsePaint(rec.Outline); ok {
					ctx.BeginPath()
					polygonPath(ctx, hull)
					ctx.Stroke(paint, canvas.StrokeStyle{Width: rec.OutlineWidth, LineJoin: canvas.LineJoinRound})
				}
			}
		}

		maxR := 0.0
		for _, lobe := range rec.Lobes {
			maxR = math.Max(maxR, lobe.Radius)
		}

		highlight := canvas.NewRadialGradient(gm.Vec{X: -maxR * 0.4, Y: -maxR * 0.8}, maxR*0.2, gm.VecZero, maxR*1.6).
			AddStop(0, color.MustParse("rgba(255,255,255,0.35)")).
			AddStop(1, color.MustParse("rgba(255,255,255,0)"))

		ctx.SetBlend(canvas.BlendLighter)

		for _, lobe := range rec.Lobes {
			ctx.BeginPath()
			circlePath(ctx, lobe.Center.Add(gm.Vec{X: -lobe.Radius * 0.35, Y: -lobe.Radius * 0.45}), lobe.Radius*0.45)
			ctx.Fill(canvas.Paint{Gradient: highlight}, canvas.NonZero)
		}

		ctx.SetBlend(canvas.BlendSourceOver)
	})
}
