package tumblebiten

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/stretchr/testify/require"
)

func TestGeoMOf(t *testing.T) {
	tr := gm.IdentityAffine().
		Translate(gm.Vec{X: 10, Y: 20}).
		Rotate(gm.Pi / 2).
		Scale(gm.Vec{X: 2, Y: 3})

	g := geoMOf(tr)

	for _, p := range []gm.Vec{{}, {X: 1}, {X: 4, Y: -2}} {
		x, y := g.Apply(p.X, p.Y)
		expected := tr.Transform(p)

		require.InDelta(t, expected.X, x, 1e-9)
		require.InDelta(t, expected.Y, y, 1e-9)
	}
}

func TestEnumMapping(t *testing.T) {
	require.Equal(t, vector.FillRuleNonZero, fillRuleOf(canvas.NonZero))
	require.Equal(t, vector.FillRuleEvenOdd, fillRuleOf(canvas.EvenOdd))

	require.Equal(t, vector.LineCapButt, lineCapOf(canvas.LineCapButt))
	require.Equal(t, vector.LineCapRound, lineCapOf(canvas.LineCapRound))
	require.Equal(t, vector.LineCapSquare, lineCapOf(canvas.LineCapSquare))

	require.Equal(t, vector.LineJoinMiter, lineJoinOf(canvas.LineJoinMiter))
	require.Equal(t, vector.LineJoinBevel, lineJoinOf(canvas.LineJoinBevel))
	require.Equal(t, vector.LineJoinRound, lineJoinOf(canvas.LineJoinRound))

	require.Equal(t, ebiten.BlendSourceOver, blendOf(canvas.BlendSourceOver))
	require.Equal(t, ebiten.BlendLighter, blendOf(canvas.BlendLighter))
}

func TestStrokeOptionsOf(t *testing.T) {
	options := strokeOptionsOf(canvas.StrokeStyle{Width: 3, LineJoin: canvas.LineJoinRound}, 6)
	require.Equal(t, float32(6), options.Width)
	require.Equal(t, vector.LineJoinRound, options.LineJoin)
	require.Equal(t, float32(10), options.MiterLimit)

	options = strokeOptionsOf(canvas.StrokeStyle{Width: 1, MiterLimit: 2}, 1)
	require.Equal(t, float32(2), options.MiterLimit)
}

func TestShadowOffsets(t *testing.T) {
	offset := gm.Vec{X: 3, Y: 4}

	// no blur, a single copy at the offset
	require.Equal(t, []gm.Vec{offset}, shadowOffsets(canvas.Shadow{Color: color.Black, Offset: offset}))

	offsets := shadowOffsets(canvas.Shadow{Color: color.Black, Blur: 14, Offset: offset})
	require.Len(t, offsets, 17)

	for _, p := range offsets {
		require.LessOrEqual(t, p.DistanceTo(offset), 7+1e-9)
	}
}

func TestGradientPixels(t *testing.T) {
	gradient := canvas.NewRadialGradient(gm.Vec{X: 5, Y: 5}, 0, gm.Vec{X: 5, Y: 5}, 5).
		AddStop(0, color.White).
		AddStop(1, color.RGBA(0, 0, 0, 0))

	rect := image.Rect(0, 0, 10, 10)
	pixels := gradientPixels(gradient, rect)
	require.Len(t, pixels, 4*10*10)

	at := func(x, y int) []byte {
		idx := 4 * (y*10 + x)
		return pixels[idx : idx+4]
	}

	// bright and opaque in the center, transparent at the corner
	require.Greater(t, at(5, 5)[3], uint8(0xc0))
	require.Zero(t, at(0, 0)[3])

	// alpha pre-multiplied
	for idx := 0; idx < len(pixels); idx += 4 {
		require.LessOrEqual(t, pixels[idx], pixels[idx+3])
	}
}

func TestAppendPath(t *testing.T) {
	pen := canvas.NewPen()
	pen.Rect(gm.Rect{Max: gm.Vec{X: 10, Y: 5}})
	pen.MoveTo(gm.Vec{X: 20, Y: 20})
	pen.QuadTo(gm.Vec{X: 25, Y: 15}, gm.Vec{X: 30, Y: 20})
	pen.CubicTo(gm.Vec{X: 30, Y: 30}, gm.Vec{X: 20, Y: 30}, gm.Vec{X: 20, Y: 20})

	var path vector.Path
	appendPath(&path, pen.Path())

	var stroke vector.StrokeOptions
	stroke.Width = 1

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, &stroke)
	require.NotEmpty(t, vertices)
	require.NotEmpty(t, indices)
}

func TestDeviceRect(t *testing.T) {
	require.True(t, deviceRect(gm.EmptyRect).Empty())

	rect := deviceRect(gm.Rect{Min: gm.Vec{X: 1.5, Y: 2}, Max: gm.Vec{X: 4.2, Y: 6}})
	require.Equal(t, image.Rect(0, 1, 6, 7), rect)
}
