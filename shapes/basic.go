package shapes

import (
	"math"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

type CircleRecord struct {
	Radius float64
	Fill   string

	// Gradient lists css colors of a radial gradient from 20% of the radius
	// to the rim. It replaces Fill if it has at least two entries.
	Gradient []string

	// HalfCircle draws only the upper half of the circle.
	HalfCircle bool
}

func (CircleRecord) Kind() Kind { return KindCircle }

type CircleOptions struct {
	physics.BodyOptions

	Fill       string
	Gradient   []string
	HalfCircle bool
}

func (f *Factory) Circle(pos gm.Vec, radius float64, opts CircleOptions) *physics.Body {
	radius = clampSize(radius)

	body := f.bodies.Circle(pos, radius, opts.BodyOptions)

	return f.record(body, CircleRecord{
		Radius:     radius,
		Fill:       stringOr(opts.Fill, "#FF8A00"),
		Gradient:   opts.Gradient,
		HalfCircle: opts.HalfCircle,
	})
}

func RenderCircle(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[CircleRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, 0, func() {
		ctx.BeginPath()

		if rec.HalfCircle {
			ctx.Arc(gm.VecZero, rec.Radius, gm.Pi, gm.FullCircle, canvas.Clockwise)
		} else {
			ctx.Arc(gm.VecZero, rec.Radius, 0, gm.FullCircle, canvas.Clockwise)
		}

		ctx.ClosePath()

		if gradient, ok := rec.gradient(); ok {
			ctx.Fill(gradient, canvas.NonZero)
			return
		}

		fillWith(ctx, rec.Fill, canvas.NonZero)
	})
}

func (rec CircleRecord) gradient() (canvas.Paint, bool) {
	if len(rec.Gradient) < 2 {
		return canvas.Paint{}, false
	}

	gradient := canvas.NewRadialGradient(gm.VecZero, rec.Radius*0.2, gm.VecZero, rec.Radius)

	for idx, value := range rec.Gradient {
		c, ok := color.Parse(value)
		if !ok {
			return canvas.Paint{}, false
		}

		gradient.AddStop(float64(idx)/float64(len(rec.Gradient)-1), c)
	}

	return canvas.Paint{Gradient: gradient}, true
}

type DotRecord struct {
	Style
	Radius float64
}

func (DotRecord) Kind() Kind { return KindDot }

type DotOptions struct {
	physics.BodyOptions
	StyleOptions
}

var dotStyle = Style{
	Fill:         "#E11D1D",
	OutlineWidth: 2,
	Font:         "900 44px Inter",
	TextColor:    defaultTextColor,
}

func (f *Factory) Dot(pos gm.Vec, radius float64, opts DotOptions) *physics.Body {
	radius = clampSize(radius)

	body := f.bodies.Circle(pos, radius, labelMaterial(opts.BodyOptions))

	return f.record(body, DotRecord{
		Style:  opts.StyleOptions.apply(dotStyle),
		Radius: radius,
	})
}

func RenderDot(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[DotRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		circlePath(ctx, gm.VecZero, rec.Radius)
		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)
		rec.label(ctx, gm.VecZero)
	})
}

// ArchSide is the edge of the square the arch opens to.
type ArchSide uint8

const (
	ArchBottom ArchSide = iota
	ArchTop
	ArchLeft
	ArchRight
)

// inward returns the direction pointing from the edge into the square.
func (s ArchSide) inward() gm.Rad {
	switch s {
	case ArchTop:
		return gm.Pi / 2
	case ArchLeft:
		return 0
	case ArchRight:
		return gm.Pi
	default:
		return -gm.Pi / 2
	}
}

func (s ArchSide) edgeCenter(size float64) gm.Vec {
	switch s {
	case ArchTop:
		return gm.Vec{Y: -size / 2}
	case ArchLeft:
		return gm.Vec{X: -size / 2}
	case ArchRight:
		return gm.Vec{X: size / 2}
	default:
		return gm.Vec{Y: size / 2}
	}
}

type ArchRecord struct {
	Fill string
	Size float64
	Side ArchSide
}

func (ArchRecord) Kind() Kind { return KindArch }

type ArchOptions struct {
	physics.BodyOptions

	Fill string
	Side ArchSide
}

// Arch creates a square with a half circle cut out of one edge.
func (f *Factory) Arch(pos gm.Vec, size float64, opts ArchOptions) *physics.Body {
	size = clampSize(size)

	body := f.bodies.Rectangle(pos, size, size, opts.BodyOptions)

	return f.record(body, ArchRecord{
		Fill: stringOr(opts.Fill, "#FF69B4"),
		Size: size,
		Side: opts.Side,
	})
}

func RenderArch(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[ArchRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, 0, func() {
		ctx.BeginPath()
		ctx.Rect(centeredRect(gm.VecZero, rec.Size, rec.Size))

		inward := rec.Side.inward()
		ctx.MoveTo(rec.Side.edgeCenter(rec.Size).Add(gm.Polar(inward-gm.Pi/2, rec.Size/3, rec.Size/3)))
		ctx.Arc(rec.Side.edgeCenter(rec.Size), rec.Size/3, inward-gm.Pi/2, inward+gm.Pi/2, canvas.Clockwise)
		ctx.ClosePath()

		fillWith(ctx, rec.Fill, canvas.EvenOdd)
	})
}

type CircleAlign uint8

const (
	CirclesCenter CircleAlign = iota
	CirclesTop
	CirclesBottom
)

type RectWithCirclesRecord struct {
	Width, Height float64
	Count         int
	Padding       float64
	RectColor     string

	// CircleColors are used in turn for the circles.
	CircleColors []string
	Align        CircleAlign
}

func (RectWithCirclesRecord) Kind() Kind { return KindRectWithCircles }

type RectWithCirclesOptions struct {
	physics.BodyOptions

	Count        Opt[int]
	Padding      Opt[float64]
	RectColor    string
	CircleColors []string
	Align        CircleAlign
}

// RectWithCircles creates a rectangle with a row of circles inside.
func (f *Factory) RectWithCircles(pos gm.Vec, width, height float64, opts RectWithCirclesOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	body := f.bodies.Rectangle(pos, width, height, opts.BodyOptions)

	colors := opts.CircleColors
	if len(colors) == 0 {
		colors = []string{defaultTextColor}
	}

	return f.record(body, RectWithCirclesRecord{
		Width:        width,
		Height:       height,
		Count:        max(0, opts.Count.OrValue(1)),
		Padding:      math.Max(0, opts.Padding.OrValue(8)),
		RectColor:    stringOr(opts.RectColor, "#FDE68A"),
		CircleColors: colors,
		Align:        opts.Align,
	})
}

// CircleRadius is the radius of the circles so that they fit with the padding.
func (rec RectWithCirclesRecord) CircleRadius() float64 {
	n := float64(rec.Count)

	availableWidth := math.Max(0, rec.Width-2*rec.Padding-(n-1)*rec.Padding)
	fromWidth := availableWidth / (2 * n)
	fromHeight := math.Max(0, (rec.Height-2*rec.Padding)/2)

	return math.Max(0.5, math.Min(fromWidth, fromHeight))
}

func RenderRectWithCircles(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[RectWithCirclesRecord](store, body)
	if !ok {
		return
	}

	inLocalFrame(ctx, body, 0, func() {
		ctx.BeginPath()
		ctx.Rect(centeredRect(gm.VecZero, rec.Width, rec.Height))
		fillWith(ctx, rec.RectColor, canvas.NonZero)

		if rec.Count == 0 {
			return
		}

		r := rec.CircleRadius()

		var cy float64
		switch rec.Align {
		case CirclesTop:
			cy = -rec.Height/2 + rec.Padding + r
		case CirclesBottom:
			cy = rec.Height/2 - rec.Padding - r
		}

		startX := -rec.Width/2 + rec.Padding + r

		for idx := 0; idx < rec.Count; idx++ {
			var cx float64
			if rec.Count > 1 {
				cx = startX + float64(idx)*(2*r+rec.Padding)
			}

			ctx.BeginPath()
			circlePath(ctx, gm.Vec{X: cx, Y: cy}, r)
			fillWith(ctx, rec.CircleColors[idx%len(rec.CircleColors)], canvas.NonZero)
		}
	})
}
