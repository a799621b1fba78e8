package shapes

import (
	"math"
	"testing"

	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
	"github.com/stretchr/testify/require"
)

// noPolygons is a builder that can not create polygon bodies.
type noPolygons struct {
	*physics.World
}

func (noPolygons) FromVertices(gm.Vec, [][]gm.Vec, physics.BodyOptions, bool) *physics.Body {
	return nil
}

func singleCircle(t *testing.T, body *physics.Body) physics.CircleShape {
	t.Helper()

	parts := body.Parts()
	require.Len(t, parts, 1)

	circle, ok := parts[0].(physics.CircleShape)
	require.True(t, ok, "expected a circle, got %T", parts[0])

	return circle
}

func TestFactory_PolygonFallback(t *testing.T) {
	f := NewFactory(noPolygons{World: physics.NewWorld(physics.DefaultWorldOptions())}, nil)

	t.Run("star", func(t *testing.T) {
		body := f.Star(gm.Vec{X: 50, Y: 50}, 5, 100, StarOptions{})
		require.InDelta(t, 90, singleCircle(t, body).Radius, 1e-9)
		require.Equal(t, gm.Vec{X: 50, Y: 50}, body.Position())

		record, ok := f.Store().Get(body)
		require.True(t, ok)
		require.Equal(t, KindStar, record.Kind())
	})

	t.Run("sparkStar", func(t *testing.T) {
		body := f.SparkStar(gm.VecZero, 120, 200, SparkStarOptions{})
		require.InDelta(t, 75, singleCircle(t, body).Radius, 1e-9)
	})

	t.Run("cShape", func(t *testing.T) {
		body := f.CShape(gm.VecZero, 80, CShapeOptions{})
		require.InDelta(t, 80, singleCircle(t, body).Radius, 1e-9)
	})

	t.Run("martini glass keeps stem and base", func(t *testing.T) {
		body := f.MartiniGlass(gm.VecZero, 100, MartiniGlassOptions{})
		require.Len(t, body.Parts(), 2)
	})
}

func TestFactory_ConcaveOutlines(t *testing.T) {
	f := newTestFactory()

	star := f.Star(gm.VecZero, 5, 100, StarOptions{})
	require.Greater(t, len(star.Parts()), 1)

	for _, part := range star.Parts() {
		_, ok := part.(physics.PolygonShape)
		require.True(t, ok)
	}
}

func TestFactory_CompoundParts(t *testing.T) {
	f := newTestFactory()

	tests := []struct {
		name  string
		body  *physics.Body
		parts int
	}{
		{"martini glass", f.MartiniGlass(gm.VecZero, 160, MartiniGlassOptions{}), 3},
		{"olive stick", f.OliveStick(gm.VecZero, OliveStickOptions{Count: 4}), 6},
		{"camera", f.CameraFront(gm.VecZero, 220, 140, CameraFrontOptions{}), 2},
		{"exclamation mark", f.ExclamationMark(gm.VecZero, 100, ExclamationMarkOptions{}), 2},
		{"cloud", f.Cloud(gm.VecZero, 240, 120, CloudOptions{Lobes: 7}), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.body.Parts(), tt.parts)
		})
	}
}

func TestFactory_Clamping(t *testing.T) {
	f := newTestFactory()

	t.Run("eye", func(t *testing.T) {
		body := f.Eye(gm.VecZero, 100, 50, EyeOptions{Open: Some(1.5), Gaze: gm.Vec{X: -3, Y: 0.5}})

		rec, ok := lookup[EyeRecord](f.Store(), body)
		require.True(t, ok)
		require.Equal(t, 1.0, rec.Open)
		require.Equal(t, gm.Vec{X: -1, Y: 0.5}, rec.Gaze)

		body = f.Eye(gm.VecZero, 100, 50, EyeOptions{Open: Some(-2.0)})
		rec, _ = lookup[EyeRecord](f.Store(), body)
		require.Equal(t, 0.0, rec.Open)

		body = f.Eye(gm.VecZero, 100, 50, EyeOptions{})
		rec, _ = lookup[EyeRecord](f.Store(), body)
		require.Equal(t, 1.0, rec.Open)
	})

	t.Run("star edges", func(t *testing.T) {
		body := f.Star(gm.VecZero, 1, 50, StarOptions{})
		rec, _ := lookup[StarRecord](f.Store(), body)
		require.Equal(t, 3, rec.Edges)
		require.Len(t, rec.Vertices(), 6)
	})

	t.Run("cloud lobes", func(t *testing.T) {
		body := f.Cloud(gm.VecZero, 200, 100, CloudOptions{Lobes: 20})
		rec, _ := lookup[CloudRecord](f.Store(), body)
		require.Len(t, rec.Lobes, 9)

		body = f.Cloud(gm.VecZero, 200, 100, CloudOptions{Lobes: 1})
		rec, _ = lookup[CloudRecord](f.Store(), body)
		require.Len(t, rec.Lobes, 3)
	})

	t.Run("exclamation height", func(t *testing.T) {
		body := f.ExclamationMark(gm.VecZero, 2, ExclamationMarkOptions{})
		rec, _ := lookup[ExclamationMarkRecord](f.Store(), body)
		require.Equal(t, 12.0, rec.Height)
	})

	t.Run("rect with circles", func(t *testing.T) {
		body := f.RectWithCircles(gm.VecZero, 200, 80, RectWithCirclesOptions{Count: Some(-4), Padding: Some(-1.0)})
		rec, _ := lookup[RectWithCirclesRecord](f.Store(), body)
		require.Equal(t, 0, rec.Count)
		require.Equal(t, 0.0, rec.Padding)
	})

	t.Run("cShape", func(t *testing.T) {
		body := f.CShape(gm.VecZero, 4, CShapeOptions{Thickness: 5, Gap: Some[gm.Rad](0)})
		rec, _ := lookup[CShapeRecord](f.Store(), body)
		require.Equal(t, 12.0, rec.OuterRadius)
		require.InDelta(t, 4, rec.InnerRadius, 1e-9)
		require.InDelta(t, float64(gm.FullCircle-0.2), float64(rec.End-rec.Start), 1e-9)
	})

	t.Run("pill radius", func(t *testing.T) {
		body := f.Pill(gm.VecZero, 60, 100, PillOptions{Radius: 500})
		rec, _ := lookup[PillRecord](f.Store(), body)
		require.Equal(t, 30.0, rec.Radius)
	})

	t.Run("sizes", func(t *testing.T) {
		world := physics.NewWorld(physics.DefaultWorldOptions())
		f := NewFactory(world, nil)

		pill := f.Pill(gm.VecZero, -200, -60, PillOptions{})
		rec, _ := lookup[PillRecord](f.Store(), pill)
		require.Equal(t, minSize, rec.Width)
		require.Equal(t, minSize, rec.Height)
		require.Greater(t, rec.Radius, 0.0)

		bodies := []*physics.Body{
			pill,
			f.Circle(gm.Vec{X: 100}, 0, CircleOptions{}),
			f.Dot(gm.Vec{X: 200}, -5, DotOptions{}),
			f.Pill(gm.Vec{X: 300}, -50, 0, PillOptions{}),
			f.Eye(gm.Vec{X: 400}, 0, -10, EyeOptions{}),
			f.TextBadge(gm.Vec{X: 500}, 0, 40, TextBadgeOptions{}),
			f.Bagel(gm.Vec{X: 600}, 0, math.NaN(), BagelOptions{}),
			f.QuarterPie(gm.Vec{X: 700}, 0, QuarterPieOptions{}),
			f.Star(gm.Vec{X: 800}, 5, -10, StarOptions{}),
			f.ExclamationMark(gm.Vec{X: 900}, math.NaN(), ExclamationMarkOptions{}),
		}

		world.Add(bodies...)

		for range 120 {
			world.Step(1.0 / 60)
		}

		for idx, body := range bodies {
			pos := body.Position()
			require.False(t, math.IsNaN(pos.X) || math.IsNaN(pos.Y), "body %d at %s", idx, pos)
			require.False(t, math.IsInf(pos.X, 0) || math.IsInf(pos.Y, 0), "body %d at %s", idx, pos)
			require.Greater(t, body.Mass(), 0.0, "body %d", idx)
		}
	})
}

func TestFactory_StarRotation(t *testing.T) {
	f := newTestFactory()

	plain := f.Star(gm.VecZero, 5, 100, StarOptions{})
	rotated := f.Star(gm.VecZero, 5, 100, StarOptions{
		StyleOptions: StyleOptions{Rotation: gm.Pi / 5},
	})

	// the collider follows the rotation offset of the painted star
	require.InDelta(t, 100, plain.Bounds().Max.X, 1e-6)
	require.Less(t, rotated.Bounds().Max.X, 90.0)
}

func TestFactory_Defaults(t *testing.T) {
	f := newTestFactory()

	body := f.Burst(gm.VecZero, BurstOptions{})
	burst, ok := lookup[BurstRecord](f.Store(), body)
	require.True(t, ok)
	require.Equal(t, "#22C55E", burst.Fill)
	require.Equal(t, 12, burst.Spikes)
	require.Equal(t, 50.0, burst.InnerRadius)
	require.Equal(t, 80.0, burst.OuterRadius)
	require.Equal(t, "GOOD\nFOOD", burst.Text)
	require.Equal(t, "900 24px Inter", burst.Font)
	require.Equal(t, "#0B1220", burst.TextColor)

	// an explicitly empty text removes the label
	body = f.Banner(gm.VecZero, 200, 60, BannerOptions{StyleOptions: StyleOptions{Text: Some("")}})
	banner, _ := lookup[BannerRecord](f.Store(), body)
	require.Equal(t, "", banner.Text)

	// caller values are kept
	body = f.Pill(gm.VecZero, 200, 60, PillOptions{StyleOptions: StyleOptions{Fill: "#123456", Text: Some("HELLO")}})
	pill, _ := lookup[PillRecord](f.Store(), body)
	require.Equal(t, "#123456", pill.Fill)
	require.Equal(t, "HELLO", pill.Text)
}

func TestFactory_DerivedTextColor(t *testing.T) {
	f := newTestFactory()

	body := f.TextBadge(gm.VecZero, 200, 60, TextBadgeOptions{StyleOptions: StyleOptions{Fill: "#ffffff"}})
	badge, _ := lookup[TextBadgeRecord](f.Store(), body)
	require.Equal(t, color.DarkerText("#ffffff", color.DefaultDarken), badge.TextColor)
	require.Equal(t, "#4c4c4c", badge.TextColor)

	body = f.TextBadge(gm.VecZero, 200, 60, TextBadgeOptions{StyleOptions: StyleOptions{Fill: "hsl(0, 0%, 50%)"}})
	badge, _ = lookup[TextBadgeRecord](f.Store(), body)
	require.Equal(t, color.FallbackText, badge.TextColor)

	body = f.TextBadge(gm.VecZero, 200, 60, TextBadgeOptions{StyleOptions: StyleOptions{TextColor: "#abcdef"}})
	badge, _ = lookup[TextBadgeRecord](f.Store(), body)
	require.Equal(t, "#abcdef", badge.TextColor)
}

func TestFactory_StaticPassThrough(t *testing.T) {
	f := newTestFactory()

	body := f.Arch(gm.VecZero, 100, ArchOptions{BodyOptions: physics.BodyOptions{Static: true}})
	require.True(t, body.IsStatic())

	body = f.Cloud(gm.VecZero, 200, 100, CloudOptions{BodyOptions: physics.BodyOptions{Static: true}})
	require.True(t, body.IsStatic())
}

func TestCloud_Deterministic(t *testing.T) {
	first := cloudLobes(200, 100, 5, 0.9, 0, 42)
	second := cloudLobes(200, 100, 5, 0.9, 0, 42)
	require.Equal(t, first, second)

	other := cloudLobes(200, 100, 5, 0.9, 0, 7)
	require.NotEqual(t, first, other)

	// the center lobe is the biggest one
	for idx, lobe := range first {
		if idx != 2 {
			require.Less(t, lobe.Radius, first[2].Radius)
		}
	}
}

func TestConvexHull(t *testing.T) {
	hull := convexHull([]gm.Vec{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 5},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
		{X: 5, Y: 0},
	})

	require.ElementsMatch(t, []gm.Vec{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}, hull)

	require.Nil(t, convexHull([]gm.Vec{{X: 1}, {X: 2}}))
}
