// Package raster implements a canvas.Context that paints into an in memory image.
//
// Paths are rasterized with golang.org/x/image/vector, text is drawn from the
// outlines of the Go fonts. The canvas needs no window or GPU and is used for
// snapshots and pixel level tests.
package raster

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/color"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"
)

type Canvas struct {
	canvas.Pen

	img *image.RGBA

	// clip is nil if nothing is clipped
	clip      *image.Alpha
	clipStack []*image.Alpha

	rasterizer *vector.Rasterizer

	fonts *Fonts
	buf   sfnt.Buffer
}

var _ canvas.Context = (*Canvas)(nil)

// New creates a transparent canvas using the Go fonts for text.
func New(width, height int) *Canvas {
	return NewWithFonts(width, height, DefaultFonts())
}

func NewWithFonts(width, height int, fonts *Fonts) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("invalid canvas size %dx%d", width, height))
	}

	return &Canvas{
		Pen:        canvas.NewPen(),
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		rasterizer: vector.NewRasterizer(width, height),
		fonts:      fonts,
	}
}

// Image returns the image painted into. The pixels are alpha pre-multiplied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Clear replaces every pixel with the given color. The clip region is ignored.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) Save() {
	c.Pen.Save()
	c.clipStack = append(c.clipStack, c.clip)
}

func (c *Canvas) Restore() {
	if len(c.clipStack) == 0 {
		return
	}

	c.clip = c.clipStack[len(c.clipStack)-1]
	c.clipStack = c.clipStack[:len(c.clipStack)-1]

	c.Pen.Restore()
}

func (c *Canvas) Fill(paint canvas.Paint, rule canvas.FillRule) {
	if c.Path().IsEmpty() || paint.IsZero() {
		return
	}

	c.paintMask(c.mask(c.Path(), rule), paint)
}

func (c *Canvas) Stroke(paint canvas.Paint, style canvas.StrokeStyle) {
	if c.Path().IsEmpty() || paint.IsZero() || style.Width <= 0 {
		return
	}

	width := style.Width * c.Transform().ScaleFactor()

	outline := strokeOutline(c.Path().Flatten(0.25), width, style)
	if outline.IsEmpty() {
		return
	}

	c.paintMask(c.mask(&outline, canvas.NonZero), paint)
}

// Clip intersects the clip region with the current path using the non zero rule.
func (c *Canvas) Clip() {
	mask := c.mask(c.Path(), canvas.NonZero)

	if c.clip == nil {
		c.clip = mask
		return
	}

	// the current clip may be shared with saved states and is never modified
	c.clip = intersectMasks(c.clip, mask)
}

// paintMask composites the paint through the mask, honoring the shadow,
// the blend mode and the clip region of the current state.
func (c *Canvas) paintMask(mask *image.Alpha, paint canvas.Paint) {
	state := c.State()

	if state.Shadow.Enabled() {
		shadow := blurMask(offsetMask(mask, state.Shadow.Offset), state.Shadow.Blur/2)
		c.composite(shadow, canvas.Solid(state.Shadow.Color), state.Blend)
	}

	c.composite(mask, paint.Transformed(state.Transform), state.Blend)
}

// mask rasterizes a device space path into a coverage mask covering the
// bounding box of the path.
func (c *Canvas) mask(path *canvas.Path, rule canvas.FillRule) *image.Alpha {
	rect := deviceRect(path.Bounds()).Intersect(c.img.Bounds())
	if rect.Empty() {
		return image.NewAlpha(image.Rectangle{})
	}

	if rule == canvas.EvenOdd {
		return c.evenOddMask(path, rect)
	}

	return c.rasterize(path.Segments, rect)
}

func (c *Canvas) rasterize(segments []canvas.Segment, rect image.Rectangle) *image.Alpha {
	size := rect.Size()

	z := c.rasterizer
	z.Reset(size.X, size.Y)
	z.DrawOp = draw.Src

	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)

	for _, segment := range segments {
		p := segment.Points

		switch segment.Kind {
		case canvas.SegmentMoveTo:
			z.MoveTo(float32(p[0].X)-ox, float32(p[0].Y)-oy)

		case canvas.SegmentLineTo:
			z.LineTo(float32(p[0].X)-ox, float32(p[0].Y)-oy)

		case canvas.SegmentQuadTo:
			z.QuadTo(
				float32(p[0].X)-ox, float32(p[0].Y)-oy,
				float32(p[1].X)-ox, float32(p[1].Y)-oy,
			)

		case canvas.SegmentCubicTo:
			z.CubeTo(
				float32(p[0].X)-ox, float32(p[0].Y)-oy,
				float32(p[1].X)-ox, float32(p[1].Y)-oy,
				float32(p[2].X)-ox, float32(p[2].Y)-oy,
			)

		case canvas.SegmentClose:
			z.ClosePath()
		}
	}

	local := image.Rectangle{Max: size}

	mask := image.NewAlpha(local)
	z.Draw(mask, local, image.Opaque, image.Point{})

	// move the mask to device space, the pixel layout stays the same
	mask.Rect = rect
	return mask
}

// evenOddMask rasterizes every sub path on its own and combines their
// coverage so that overlapping areas cancel out in pairs.
func (c *Canvas) evenOddMask(path *canvas.Path, rect image.Rectangle) *image.Alpha {
	var result *image.Alpha

	for _, sub := range subPaths(path.Segments) {
		mask := c.rasterize(sub, rect)
		if result == nil {
			result = mask
			continue
		}

		for idx, value := range mask.Pix {
			a := float64(result.Pix[idx]) / 0xff
			b := float64(value) / 0xff
			result.Pix[idx] = uint8((a+b-2*a*b)*0xff + 0.5)
		}
	}

	if result == nil {
		return image.NewAlpha(rect)
	}

	return result
}

func subPaths(segments []canvas.Segment) [][]canvas.Segment {
	var result [][]canvas.Segment

	start := 0
	for idx, segment := range segments {
		if segment.Kind == canvas.SegmentMoveTo && idx > start {
			result = append(result, segments[start:idx])
			start = idx
		}
	}

	if start < len(segments) {
		result = append(result, segments[start:])
	}

	return result
}

// composite blends the paint into the image, weighted by the mask coverage.
func (c *Canvas) composite(mask *image.Alpha, paint canvas.Paint, blend canvas.Blend) {
	rect := mask.Rect.Intersect(c.img.Bounds())

	r, g, b, a := paint.Color.PremultipliedValues()

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			coverage := float32(mask.Pix[mask.PixOffset(x, y)]) / 0xff
			if c.clip != nil {
				coverage *= float32(c.clip.AlphaAt(x, y).A) / 0xff
			}

			if coverage <= 0 {
				continue
			}

			if paint.Gradient != nil {
				r, g, b, a = paint.Gradient.ColorOf(pixelCenter(x, y)).PremultipliedValues()
			}

			c.blendPixel(x, y, [4]float32{r * coverage, g * coverage, b * coverage, a * coverage}, blend)
		}
	}
}

// blendPixel mixes a pre-multiplied source color into the pixel at x, y.
func (c *Canvas) blendPixel(x, y int, src [4]float32, blend canvas.Blend) {
	pix := c.img.Pix[c.img.PixOffset(x, y):]

	alpha := src[3]

	for idx, value := range src {
		dst := float32(pix[idx]) / 0xff

		switch blend {
		case canvas.BlendLighter:
			value = value + dst
		default:
			value = value + dst*(1-alpha)
		}

		pix[idx] = uint8(min(1, max(0, value))*0xff + 0.5)
	}
}
