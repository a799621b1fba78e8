package raster

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/oliverbestmann/tumble/physics"
	"github.com/oliverbestmann/tumble/shapes"
	"github.com/stretchr/testify/require"
)

func alphaAt(c *Canvas, x, y int) uint8 {
	return c.Image().RGBAAt(x, y).A
}

// coveredBounds returns the bounds of all pixels that are at least half covered.
func coveredBounds(c *Canvas) image.Rectangle {
	var bounds image.Rectangle

	img := c.Image()
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if img.RGBAAt(x, y).A >= 0x80 {
				bounds = bounds.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}

	return bounds
}

func fillRect(c *Canvas, rect gm.Rect, col color.Color, rule canvas.FillRule) {
	c.BeginPath()
	c.Rect(rect)
	c.Fill(canvas.Solid(col), rule)
}

func TestCanvas_HalfCircle(t *testing.T) {
	world := physics.NewWorld(physics.DefaultWorldOptions())
	factory := shapes.NewFactory(world, nil)

	body := factory.Circle(gm.Vec{X: 50, Y: 50}, 30, shapes.CircleOptions{
		Fill:       "#ff0000",
		HalfCircle: true,
	})

	c := New(100, 100)
	shapes.DefaultRegistry().Render(c, body, factory.Store())

	require.Equal(t, image.Rect(20, 20, 80, 50), coveredBounds(c))

	require.Equal(t, uint8(0xff), alphaAt(c, 50, 30))
	require.Equal(t, uint8(0xff), c.Image().RGBAAt(50, 30).R)
	require.Equal(t, uint8(0), c.Image().RGBAAt(50, 30).G)
	require.Equal(t, uint8(0), alphaAt(c, 50, 60))
}

func TestCanvas_FillRules(t *testing.T) {
	path := func(c *Canvas) {
		c.BeginPath()
		c.Rect(gm.Rect{Max: gm.Vec{X: 100, Y: 100}})
		c.Rect(gm.Rect{Min: gm.Vec{X: 25, Y: 25}, Max: gm.Vec{X: 75, Y: 75}})
	}

	nonZero := New(100, 100)
	path(nonZero)
	nonZero.Fill(canvas.Solid(color.Black), canvas.NonZero)
	require.Equal(t, uint8(0xff), alphaAt(nonZero, 50, 50))

	evenOdd := New(100, 100)
	path(evenOdd)
	evenOdd.Fill(canvas.Solid(color.Black), canvas.EvenOdd)
	require.Equal(t, uint8(0), alphaAt(evenOdd, 50, 50))
	require.Equal(t, uint8(0xff), alphaAt(evenOdd, 10, 10))
}

func TestCanvas_ClipIsRestored(t *testing.T) {
	c := New(100, 100)

	c.Save()
	c.BeginPath()
	c.Rect(gm.Rect{Max: gm.Vec{X: 50, Y: 100}})
	c.Clip()

	fillRect(c, gm.Rect{Max: gm.Vec{X: 100, Y: 100}}, color.Black, canvas.NonZero)
	require.Equal(t, uint8(0xff), alphaAt(c, 25, 50))
	require.Equal(t, uint8(0), alphaAt(c, 75, 50))

	c.Restore()

	fillRect(c, gm.Rect{Max: gm.Vec{X: 100, Y: 100}}, color.Black, canvas.NonZero)
	require.Equal(t, uint8(0xff), alphaAt(c, 75, 50))
}

func TestCanvas_Stroke(t *testing.T) {
	tests := []struct {
		name    string
		cap     canvas.LineCap
		covered bool
	}{
		{"butt", canvas.LineCapButt, false},
		{"round", canvas.LineCapRound, true},
		{"square", canvas.LineCapSquare, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(100, 100)

			c.BeginPath()
			c.MoveTo(gm.Vec{X: 20, Y: 50})
			c.LineTo(gm.Vec{X: 80, Y: 50})
			c.Stroke(canvas.Solid(color.Black), canvas.StrokeStyle{Width: 10, LineCap: tt.cap})

			require.Equal(t, uint8(0xff), alphaAt(c, 50, 47))
			require.Equal(t, uint8(0), alphaAt(c, 50, 40))
			require.Equal(t, tt.covered, alphaAt(c, 17, 50) > 0x80)
		})
	}
}

func TestCanvas_StrokeScalesWithTransform(t *testing.T) {
	c := New(100, 100)

	c.Scale(gm.VecSplat(2.0))
	c.BeginPath()
	c.MoveTo(gm.Vec{X: 10, Y: 25})
	c.LineTo(gm.Vec{X: 40, Y: 25})
	c.Stroke(canvas.Solid(color.Black), canvas.StrokeStyle{Width: 5})

	// five local units are ten pixels
	require.Equal(t, uint8(0xff), alphaAt(c, 50, 46))
	require.Equal(t, uint8(0), alphaAt(c, 50, 43))
}

func TestCanvas_Text(t *testing.T) {
	c := New(200, 100)

	font := canvas.ParseFont("900 32px Inter")
	require.Less(t, c.MeasureText("ii", font), c.MeasureText("WW", font))
	require.Zero(t, c.MeasureText("", font))

	c.FillText("HELLO", gm.Vec{X: 100, Y: 50}, canvas.CenteredText(font, color.Black))

	bounds := coveredBounds(c)
	require.False(t, bounds.Empty())

	// centered on the drawing position
	center := bounds.Min.Add(bounds.Max).Div(2)
	require.InDelta(t, 100, center.X, 3)
	require.InDelta(t, 50, center.Y, 4)

	// text does not modify the current path
	c.BeginPath()
	c.Rect(gm.Rect{Max: gm.Vec{X: 10, Y: 10}})
	c.FillText("A", gm.Vec{X: 150, Y: 50}, canvas.CenteredText(font, color.Black))
	require.Len(t, c.Path().Segments, 5)
}

func TestCanvas_Lighter(t *testing.T) {
	c := New(10, 10)

	fillRect(c, gm.Rect{Max: gm.Vec{X: 10, Y: 10}}, color.RGB(1, 0, 0), canvas.NonZero)

	c.SetBlend(canvas.BlendLighter)
	fillRect(c, gm.Rect{Max: gm.Vec{X: 10, Y: 10}}, color.RGB(0, 1, 0), canvas.NonZero)

	px := c.Image().RGBAAt(5, 5)
	require.Equal(t, uint8(0xff), px.R)
	require.Equal(t, uint8(0xff), px.G)
	require.Equal(t, uint8(0), px.B)
}

func TestCanvas_Shadow(t *testing.T) {
	c := New(100, 100)

	c.SetShadow(canvas.Shadow{Color: color.Black, Blur: 14})
	fillRect(c, gm.Rect{Min: gm.Vec{X: 40, Y: 40}, Max: gm.Vec{X: 60, Y: 60}}, color.White, canvas.NonZero)

	require.Greater(t, alphaAt(c, 36, 50), uint8(0))
	require.Equal(t, uint8(0), alphaAt(c, 5, 5))

	c.SetShadow(canvas.Shadow{})
	fillRect(c, gm.Rect{Min: gm.Vec{X: 0, Y: 0}, Max: gm.Vec{X: 10, Y: 10}}, color.White, canvas.NonZero)
	require.Equal(t, uint8(0), alphaAt(c, 12, 5))
}

func TestCanvas_Gradient(t *testing.T) {
	c := New(100, 100)

	gradient := canvas.NewRadialGradient(gm.Vec{X: 50, Y: 50}, 0, gm.Vec{X: 50, Y: 50}, 40).
		AddStop(0, color.White).
		AddStop(1, color.Black)

	c.BeginPath()
	c.Arc(gm.Vec{X: 50, Y: 50}, 40, 0, gm.FullCircle, canvas.Clockwise)
	c.Fill(canvas.Paint{Gradient: gradient}, canvas.NonZero)

	require.Greater(t, c.Image().RGBAAt(50, 50).R, uint8(0xf0))
	require.Less(t, c.Image().RGBAAt(50, 88).R, uint8(0x20))
}

func TestCanvas_WritePNG(t *testing.T) {
	c := New(32, 16)
	c.Clear(color.White)

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 32, 16), decoded.Bounds())
}

func TestCanvas_InvalidSize(t *testing.T) {
	require.Panics(t, func() { New(-1, 10) })
}
