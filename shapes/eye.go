package shapes

import (
	"math"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
)

// EyeRecord paints an almond shaped eye. Fill is the color of the sclera.
type EyeRecord struct {
	Style
	Width, Height float64

	Iris  string
	Pupil string

	// Open is 1 for a fully open eye and 0 for a closed one.
	Open float64

	// Gaze moves the iris, both components lie in [-1, 1].
	Gaze gm.Vec

	// IrisRatio is the iris radius relative to the smaller side of the eye.
	IrisRatio float64

	// PupilRatio is the pupil radius relative to the iris.
	PupilRatio float64
}

func (EyeRecord) Kind() Kind { return KindEye }

type EyeOptions struct {
	physics.BodyOptions
	StyleOptions

	Iris  string
	Pupil string

	Open       Opt[float64]
	Gaze       gm.Vec
	IrisRatio  float64
	PupilRatio float64
}

func (f *Factory) Eye(pos gm.Vec, width, height float64, opts EyeOptions) *physics.Body {
	width, height = clampSize(width), clampSize(height)

	body := f.bodies.Rectangle(pos, width, height, opts.BodyOptions)

	return f.record(body, EyeRecord{
		Style:  opts.StyleOptions.apply(Style{Fill: "#FFFFFF", OutlineWidth: 2}),
		Width:  width,
		Height: height,
		Iris:   stringOr(opts.Iris, "#3B82F6"),
		Pupil:  stringOr(opts.Pupil, defaultTextColor),
		Open:   gm.Clamp(opts.Open.OrValue(1), 0, 1),
		Gaze: gm.Vec{
			X: gm.Clamp(opts.Gaze.X, -1, 1),
			Y: gm.Clamp(opts.Gaze.Y, -1, 1),
		},
		IrisRatio:  positiveOr(opts.IrisRatio, 0.36),
		PupilRatio: positiveOr(opts.PupilRatio, 0.45),
	})
}

func RenderEye(ctx canvas.Context, body *physics.Body, store *Store) {
	rec, ok := lookup[EyeRecord](store, body)
	if !ok {
		return
	}

	w := rec.Width

	// a closed eye keeps a hairline
	h := math.Max(1, rec.Height*math.Max(0.02, rec.Open))

	irisR := math.Min(w, h) * math.Max(0.05, rec.IrisRatio)
	pupilR := irisR * gm.Clamp(rec.PupilRatio, 0.1, 0.95)

	xLimit := math.Max(0, w/2-(irisR+4))
	yLimit := math.Max(0, h/2-(irisR+4))

	iris := gm.Vec{
		X: gm.Clamp(rec.Gaze.X*xLimit*0.8, -xLimit, xLimit),
		Y: gm.Clamp(rec.Gaze.Y*yLimit*0.8, -yLimit, yLimit),
	}

	inLocalFrame(ctx, body, rec.Rotation, func() {
		ctx.BeginPath()
		ctx.MoveTo(gm.Vec{X: -w / 2})
		ctx.QuadTo(gm.Vec{Y: -h / 2}, gm.Vec{X: w / 2})
		ctx.QuadTo(gm.Vec{Y: h / 2}, gm.Vec{X: -w / 2})
		ctx.ClosePath()

		rec.fill(ctx, canvas.NonZero)
		rec.stroke(ctx)

		ctx.Save()
		defer ctx.Restore()

		ctx.Clip()

		ctx.BeginPath()
		circlePath(ctx, iris, irisR)
		fillWith(ctx, rec.Iris, canvas.NonZero)

		ctx.BeginPath()
		circlePath(ctx, iris, pupilR)
		fillWith(ctx, rec.Pupil, canvas.NonZero)

		highlight := iris.Sub(gm.VecSplat(pupilR * 0.4))

		ctx.BeginPath()
		circlePath(ctx, highlight, math.Max(1, pupilR*0.25))
		fillWith(ctx, "rgba(255,255,255,0.85)", canvas.NonZero)
	})
}
