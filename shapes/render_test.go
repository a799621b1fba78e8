package shapes

import (
	"math"
	"testing"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
	"github.com/stretchr/testify/require"
)

func TestRender_EveryKindPaints(t *testing.T) {
	registry := DefaultRegistry()

	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			f := newTestFactory()
			body := constructors[kind](f)

			rec := canvas.NewRecorder()
			registry.Render(rec, body, f.Store())

			require.NotEmpty(t, rec.OfKind(canvas.OpFill))
			require.Equal(t, 0, rec.Depth(), "unbalanced save and restore")
		})
	}
}

func TestRender_Skip(t *testing.T) {
	f := newTestFactory()
	registry := DefaultRegistry()

	unknown := physics.NewBody([]physics.ToShape{physics.CircleShape{Radius: 10}}, physics.BodyOptions{})

	rec := canvas.NewRecorder()
	registry.Render(rec, unknown, f.Store())
	registry.Render(rec, unknown, nil)
	require.Empty(t, rec.Ops)

	// a renderer never paints a record of another kind
	dot := f.Dot(gm.VecZero, 20, DotOptions{})

	for _, kind := range Kinds() {
		if kind == KindDot {
			continue
		}

		rendererOf(kind)(rec, dot, f.Store())
	}

	require.Empty(t, rec.Ops)
}

func TestRegistry_Register(t *testing.T) {
	f := newTestFactory()
	body := f.Circle(gm.VecZero, 10, CircleOptions{})

	var called []*physics.Body

	registry := NewRegistry()
	registry.Register(KindCircle, func(ctx canvas.Context, body *physics.Body, store *Store) {
		called = append(called, body)
	})

	star := f.Star(gm.VecZero, 5, 20, StarOptions{})

	registry.RenderAll(canvas.NewRecorder(), []*physics.Body{body, star, body}, f.Store())
	require.Equal(t, []*physics.Body{body, body}, called)
}

func TestRenderCircle_HalfCircle(t *testing.T) {
	f := newTestFactory()

	full := f.Circle(gm.Vec{X: 50, Y: 50}, 30, CircleOptions{})
	half := f.Circle(gm.Vec{X: 50, Y: 50}, 30, CircleOptions{HalfCircle: true})

	rec := canvas.NewRecorder()
	RenderCircle(rec, full, f.Store())

	arcs := rec.OfKind(canvas.OpArc)
	require.Len(t, arcs, 1)
	require.InDelta(t, 2*math.Pi, float64(arcs[0].End-arcs[0].Start), 1e-9)

	rec.Reset()
	RenderCircle(rec, half, f.Store())

	arcs = rec.OfKind(canvas.OpArc)
	require.Len(t, arcs, 1)
	require.InDelta(t, math.Pi, float64(arcs[0].Start), 1e-9)
	require.InDelta(t, math.Pi, float64(arcs[0].End-arcs[0].Start), 1e-9)

	// the half circle lies above the center
	bounds := rec.OfKind(canvas.OpFill)[0].Path.Bounds()
	require.InDelta(t, 50, bounds.Max.Y, 1e-6)
	require.InDelta(t, 20, bounds.Min.Y, 1e-6)
}

func TestRenderBurst(t *testing.T) {
	f := newTestFactory()
	body := f.Burst(gm.Vec{X: 100, Y: 100}, BurstOptions{})

	rec := canvas.NewRecorder()
	RenderBurst(rec, body, f.Store())

	fills := rec.OfKind(canvas.OpFill)
	require.Len(t, fills, 1)

	vertices := fills[0].Path.Vertices()
	require.Len(t, vertices, 24)

	center := gm.Vec{X: 100, Y: 100}
	for idx, vertex := range vertices {
		expected := 80.0
		if idx%2 == 1 {
			expected = 50
		}

		require.InDelta(t, expected, vertex.DistanceTo(center), 1e-6, "vertex %d", idx)
	}

	require.InDelta(t, 180, vertices[0].X, 1e-6)
	require.InDelta(t, 100, vertices[0].Y, 1e-6)

	require.Equal(t, []string{"GOOD", "FOOD"}, rec.Texts())

	texts := rec.OfKind(canvas.OpText)
	lineHeight := 24 * 1.1
	require.InDelta(t, -lineHeight/2, texts[0].Position.Y, 1e-9)
	require.InDelta(t, lineHeight/2, texts[1].Position.Y, 1e-9)
}

func TestRender_TextPlacement(t *testing.T) {
	f := newTestFactory()

	t.Run("vlabel", func(t *testing.T) {
		body := f.VLabel(gm.VecZero, 60, 200, VLabelOptions{})

		rec := canvas.NewRecorder()
		RenderVLabel(rec, body, f.Store())

		texts := rec.OfKind(canvas.OpText)
		require.Len(t, texts, 1)
		require.Equal(t, "ATMOSPHERE", texts[0].Text)

		// the text runs from bottom to top
		dir := texts[0].Transform.Transform(gm.Vec{X: 1}).Sub(texts[0].Transform.Transform(gm.VecZero))
		require.InDelta(t, 0, dir.X, 1e-9)
		require.InDelta(t, -1, dir.Y, 1e-9)
	})

	t.Run("quarterPie", func(t *testing.T) {
		body := f.QuarterPie(gm.VecZero, 100, QuarterPieOptions{})

		rec := canvas.NewRecorder()
		RenderQuarterPie(rec, body, f.Store())

		texts := rec.OfKind(canvas.OpText)
		require.Len(t, texts, 1)
		require.Equal(t, canvas.AlignStart, texts[0].TextStyle.Align)
		require.Equal(t, canvas.BaselineAlphabetic, texts[0].TextStyle.Baseline)
		require.InDelta(t, 25, texts[0].Position.X, 1e-9)
		require.InDelta(t, -12, texts[0].Position.Y, 1e-9)
	})

	t.Run("no text", func(t *testing.T) {
		body := f.Pill(gm.VecZero, 200, 60, PillOptions{StyleOptions: StyleOptions{Text: Some("")}})

		rec := canvas.NewRecorder()
		RenderPill(rec, body, f.Store())
		require.Empty(t, rec.Texts())
		require.Len(t, rec.OfKind(canvas.OpFill), 1)
	})

	t.Run("unparseable text color", func(t *testing.T) {
		body := f.Pill(gm.VecZero, 200, 60, PillOptions{StyleOptions: StyleOptions{TextColor: "nope"}})

		rec := canvas.NewRecorder()
		RenderPill(rec, body, f.Store())
		require.Empty(t, rec.Texts())
	})
}

func TestRender_FollowsBody(t *testing.T) {
	f := newTestFactory()
	body := f.TextBadge(gm.Vec{X: 10, Y: 20}, 100, 40, TextBadgeOptions{})

	body.SetPosition(gm.Vec{X: 300, Y: 200})
	body.SetAngle(gm.Pi / 2)

	rec := canvas.NewRecorder()
	RenderTextBadge(rec, body, f.Store())

	bounds := rec.OfKind(canvas.OpFill)[0].Path.Bounds()
	require.InDelta(t, 300, bounds.Center().X, 1e-6)
	require.InDelta(t, 200, bounds.Center().Y, 1e-6)

	// rotated by a quarter turn, the badge is taller than wide
	require.InDelta(t, 40, bounds.Size().X, 1e-6)
	require.InDelta(t, 100, bounds.Size().Y, 1e-6)
}

func TestRenderEye_Closed(t *testing.T) {
	f := newTestFactory()
	body := f.Eye(gm.VecZero, 100, 60, EyeOptions{Open: Some(0.0)})

	rec := canvas.NewRecorder()
	RenderEye(rec, body, f.Store())

	require.Len(t, rec.OfKind(canvas.OpClip), 1)

	// the almond collapses to a hairline
	bounds := rec.OfKind(canvas.OpFill)[0].Path.Bounds()
	require.InDelta(t, 100, bounds.Size().X, 1e-6)
	require.LessOrEqual(t, bounds.Size().Y, 1.3)
}

func TestRenderCShape_TextInsideWindow(t *testing.T) {
	f := newTestFactory()
	body := f.CShape(gm.VecZero, 120, CShapeOptions{StyleOptions: StyleOptions{Text: Some("THAT'S A")}})

	rec, _ := lookup[CShapeRecord](f.Store(), body)
	layout := rec.TextLayout()

	glyphs := layout.Place(rec.Text, func(text string) float64 {
		return canvas.NewRecorder().MeasureText(text, canvas.ParseFont(rec.Font))
	})

	require.NotEmpty(t, glyphs)

	for _, glyph := range glyphs {
		require.GreaterOrEqual(t, float64(glyph.Angle), float64(layout.Window.Start)-1e-9)
		require.LessOrEqual(t, float64(glyph.Angle), float64(layout.Window.End)+1e-9)
	}

	recorder := canvas.NewRecorder()
	RenderCShape(recorder, body, f.Store())
	require.Equal(t, len(glyphs), len(recorder.Texts()))
}
