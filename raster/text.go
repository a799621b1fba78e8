package raster

import (
	"fmt"
	"sync"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Fonts holds the faces used to draw text. Every font family maps to the
// Go fonts, the weight and style select one of the four faces.
type Fonts struct {
	Regular    *sfnt.Font
	Bold       *sfnt.Font
	Italic     *sfnt.Font
	BoldItalic *sfnt.Font
}

// DefaultFonts returns the parsed Go fonts. They are parsed once and shared.
var DefaultFonts = sync.OnceValue(func() *Fonts {
	fonts, err := LoadGoFonts()
	if err != nil {
		panic(err)
	}

	return fonts
})

func LoadGoFonts() (*Fonts, error) {
	var fonts Fonts

	sources := []struct {
		target **sfnt.Font
		name   string
		ttf    []byte
	}{
		{&fonts.Regular, "regular", goregular.TTF},
		{&fonts.Bold, "bold", gobold.TTF},
		{&fonts.Italic, "italic", goitalic.TTF},
		{&fonts.BoldItalic, "bold italic", gobolditalic.TTF},
	}

	for _, source := range sources {
		parsed, err := sfnt.Parse(source.ttf)
		if err != nil {
			return nil, fmt.Errorf("parse %s go font: %w", source.name, err)
		}

		*source.target = parsed
	}

	return &fonts, nil
}

func (f *Fonts) face(desc canvas.Font) *sfnt.Font {
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

func ppem(desc canvas.Font) fixed.Int26_6 {
	return fixed.Int26_6(desc.Size * 64)
}

func toFloat(value fixed.Int26_6) float64 {
	return float64(value) / 64
}

func (c *Canvas) MeasureText(text string, desc canvas.Font) float64 {
	face := c.fonts.face(desc)
	size := ppem(desc)

	var width fixed.Int26_6

	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, ch := range text {
		idx, err := face.GlyphIndex(&c.buf, ch)
		if err != nil {
			continue
		}

		if hasPrev {
			if kern, err := face.Kern(&c.buf, prev, idx, size, font.HintingNone); err == nil {
				width += kern
			}
		}

		advance, err := face.GlyphAdvance(&c.buf, idx, size, font.HintingNone)
		if err != nil {
			continue
		}

		width += advance
		prev, hasPrev = idx, true
	}

	return toFloat(width)
}

// FillText fills the glyph outlines of the text. The current path is not changed.
func (c *Canvas) FillText(text string, pos gm.Vec, style canvas.TextStyle) {
	if text == "" || style.Color.IsTransparent() {
		return
	}

	face := c.fonts.face(style.Font)
	size := ppem(style.Font)

	metrics, err := face.Metrics(&c.buf, size, font.HintingNone)
	if err != nil {
		return
	}

	origin := gm.Vec{
		X: pos.X + style.AlignOffset(c.MeasureText(text, style.Font)),
		Y: pos.Y + style.BaselineOffset(toFloat(metrics.Ascent), toFloat(metrics.Descent)),
	}

	// glyphs are collected with a pen of their own, in the current transform
	pen := canvas.NewPen()
	pen.SetTransform(c.Transform())

	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, ch := range text {
		idx, err := face.GlyphIndex(&c.buf, ch)
		if err != nil {
			continue
		}

		if hasPrev {
			if kern, err := face.Kern(&c.buf, prev, idx, size, font.HintingNone); err == nil {
				origin.X += toFloat(kern)
			}
		}

		segments, err := face.LoadGlyph(&c.buf, idx, size, nil)
		if err == nil {
			appendGlyph(&pen, segments, origin)
		}

		advance, err := face.GlyphAdvance(&c.buf, idx, size, font.HintingNone)
		if err != nil {
			continue
		}

		origin.X += toFloat(advance)
		prev, hasPrev = idx, true
	}

	if pen.Path().IsEmpty() {
		return
	}

	c.paintMask(c.mask(pen.Path(), canvas.NonZero), canvas.Solid(style.Color))
}

// appendGlyph adds the outline of a glyph at origin. Glyph coordinates grow downwards.
func appendGlyph(pen *canvas.Pen, segments sfnt.Segments, origin gm.Vec) {
	point := func(p fixed.Point26_6) gm.Vec {
		return gm.Vec{X: origin.X + toFloat(p.X), Y: origin.Y + toFloat(p.Y)}
	}

	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			pen.ClosePath()
			pen.MoveTo(point(segment.Args[0]))

		case sfnt.SegmentOpLineTo:
			pen.LineTo(point(segment.Args[0]))

		case sfnt.SegmentOpQuadTo:
			pen.QuadTo(point(segment.Args[0]), point(segment.Args[1]))

		case sfnt.SegmentOpCubeTo:
			pen.CubicTo(point(segment.Args[0]), point(segment.Args[1]), point(segment.Args[2]))
		}
	}

	pen.ClosePath()
}
