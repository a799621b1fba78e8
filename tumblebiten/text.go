package tumblebiten

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces maps font descriptions to text faces. Every font family is drawn
// with the Go fonts, the weight and style select one of four sources.
type Faces struct {
	Regular    *text.GoTextFaceSource
	Bold       *text.GoTextFaceSource
	Italic     *text.GoTextFaceSource
	BoldItalic *text.GoTextFaceSource

	cache map[canvas.Font]*text.GoTextFace
}

var DefaultFaces = sync.OnceValue(func() *Faces {
	faces, err := LoadGoFaces()
	if err != nil {
		panic(err)
	}

	return faces
})

func LoadGoFaces() (*Faces, error) {
	var faces Faces

	sources := []struct {
		target **text.GoTextFaceSource
		name   string
		ttf    []byte
	}{
		{&faces.Regular, "regular", goregular.TTF},
		{&faces.Bold, "bold", gobold.TTF},
		{&faces.Italic, "italic", goitalic.TTF},
		{&faces.BoldItalic, "bold italic", gobolditalic.TTF},
	}

	for _, source := range sources {
		parsed, err := text.NewGoTextFaceSource(bytes.NewReader(source.ttf))
		if err != nil {
			return nil, fmt.Errorf("load %s go font: %w", source.name, err)
		}

		*source.target = parsed
	}

	return &faces, nil
}

func (f *Faces) source(desc canvas.Font) *text.GoTextFaceSource {
	switch {
	case desc.Bold() && desc.Italic:
		return f.BoldItalic
	case desc.Bold():
		return f.Bold
	case desc.Italic:
		return f.Italic
	default:
		return f.Regular
	}
}

// Face returns the text face for a font description.
func (f *Faces) Face(desc canvas.Font) *text.GoTextFace {
	if face, ok := f.cache[desc]; ok {
		return face
	}

	if f.cache == nil {
		f.cache = map[canvas.Font]*text.GoTextFace{}
	}

	face := &text.GoTextFace{
		Source: f.source(desc),
		Size:   desc.Size,
	}

	f.cache[desc] = face

	return face
}

func (c *Canvas) MeasureText(str string, desc canvas.Font) float64 {
	if str == "" {
		return 0
	}

	return text.Advance(str, c.faces.Face(desc))
}

// FillText draws the text in the current transform. The current path is not changed.
func (c *Canvas) FillText(str string, pos gm.Vec, style canvas.TextStyle) {
	if str == "" || style.Color.IsTransparent() {
		return
	}

	face := c.faces.Face(style.Font)
	metrics := face.Metrics()

	width := text.Advance(str, face)

	// text/v2 places the top of the line box at the origin
	origin := gm.Vec{
		X: pos.X + style.AlignOffset(width),
		Y: pos.Y + style.BaselineOffset(metrics.HAscent, metrics.HDescent) - metrics.HAscent,
	}

	tr := c.Transform().Translate(origin)

	height := metrics.HAscent + metrics.HDescent

	corners := []gm.Vec{{}, {X: width}, {Y: height}, {X: width, Y: height}}
	for idx, corner := range corners {
		corners[idx] = tr.Transform(corner)
	}

	bounds := gm.BoundsOf(corners)

	c.draw(canvas.Solid(style.Color), bounds, func(dst *ebiten.Image, colorScale ebiten.ColorScale, blend ebiten.Blend) {
		var op text.DrawOptions
		op.GeoM = geoMOf(tr)
		op.ColorScale = colorScale
		op.Blend = blend
		op.Filter = ebiten.FilterLinear

		text.Draw(dst, str, face, &op)
	})
}
