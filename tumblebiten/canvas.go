// Package tumblebiten hosts tumble scenes in an ebiten window.
//
// Canvas implements canvas.Context on top of ebiten/v2/vector and text/v2.
// Game drives a Stage from the ebiten game loop and forwards mouse input.
package tumblebiten

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
)

type Canvas struct {
	canvas.Pen

	target *ebiten.Image

	// offscreen images for clipped, shadowed and gradient paints
	layer  *ebiten.Image
	shadow *ebiten.Image

	// clip is nil if nothing is clipped
	clip      *ebiten.Image
	clipStack []*ebiten.Image

	faces *Faces
	path  vector.Path
}

var _ canvas.Context = (*Canvas)(nil)

func NewCanvas(faces *Faces) *Canvas {
	return &Canvas{
		Pen:   canvas.NewPen(),
		faces: faces,
	}
}

// Begin resets the state of the canvas and directs all drawing to target.
func (c *Canvas) Begin(target *ebiten.Image) {
	if c.layer != nil && c.layer.Bounds() != target.Bounds() {
		c.Dispose()
	}

	for len(c.clipStack) > 0 {
		c.Restore()
	}

	c.dropOwnedClip()
	c.clip = nil

	c.Pen = canvas.NewPen()
	c.target = target
}

// Dispose deallocates the offscreen images and clip masks of the canvas.
func (c *Canvas) Dispose() {
	for len(c.clipStack) > 0 {
		c.Restore()
	}

	c.dropOwnedClip()
	c.clip = nil

	if c.layer != nil {
		c.layer.Deallocate()
		c.shadow.Deallocate()
		c.layer, c.shadow = nil, nil
	}

	c.target = nil
}

func (c *Canvas) Save() {
	c.Pen.Save()
	c.clipStack = append(c.clipStack, c.clip)
}

func (c *Canvas) Restore() {
	if len(c.clipStack) == 0 {
		return
	}

	c.dropOwnedClip()

	c.clip = c.clipStack[len(c.clipStack)-1]
	c.clipStack = c.clipStack[:len(c.clipStack)-1]

	c.Pen.Restore()
}

func (c *Canvas) Fill(paint canvas.Paint, rule canvas.FillRule) {
	path := c.Path()
	if path.IsEmpty() || paint.IsZero() {
		return
	}

	c.loadPath(path)

	options := &vector.FillOptions{FillRule: fillRuleOf(rule)}

	c.draw(paint, path.Bounds(), func(dst *ebiten.Image, colorScale ebiten.ColorScale, blend ebiten.Blend) {
		vector.FillPath(dst, &c.path, options, &vector.DrawPathOptions{
			AntiAlias:  true,
			ColorScale: colorScale,
			Blend:      blend,
		})
	})
}

func (c *Canvas) Stroke(paint canvas.Paint, style canvas.StrokeStyle) {
	path := c.Path()
	if path.IsEmpty() || paint.IsZero() || style.Width <= 0 {
		return
	}

	c.loadPath(path)

	width := style.Width * c.Transform().ScaleFactor()
	options := strokeOptionsOf(style, width)

	bounds := path.Bounds()
	bounds.Min = bounds.Min.Sub(gm.VecSplat(width))
	bounds.Max = bounds.Max.Add(gm.VecSplat(width))

	c.draw(paint, bounds, func(dst *ebiten.Image, colorScale ebiten.ColorScale, blend ebiten.Blend) {
		vector.StrokePath(dst, &c.path, options, &vector.DrawPathOptions{
			AntiAlias:  true,
			ColorScale: colorScale,
			Blend:      blend,
		})
	})
}

// Clip intersects the clip region with the current path using the non zero rule.
func (c *Canvas) Clip() {
	if c.target == nil {
		return
	}

	bounds := c.target.Bounds()
	mask := ebiten.NewImage(bounds.Dx(), bounds.Dy())

	c.loadPath(c.Path())
	vector.FillPath(mask, &c.path, &vector.FillOptions{}, &vector.DrawPathOptions{AntiAlias: true})

	if c.clip != nil {
		mask.DrawImage(c.clip, &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn})
	}

	c.dropOwnedClip()
	c.clip = mask
}

// dropOwnedClip deallocates the current clip mask, unless a saved state still
// refers to it.
func (c *Canvas) dropOwnedClip() {
	if c.clip == nil {
		return
	}

	if len(c.clipStack) > 0 && c.clipStack[len(c.clipStack)-1] == c.clip {
		return
	}

	c.clip.Deallocate()
}

type drawFunc func(dst *ebiten.Image, colorScale ebiten.ColorScale, blend ebiten.Blend)

// draw paints a shape with the current shadow, blend and clip. bounds is the
// device space area the shape may touch.
func (c *Canvas) draw(paint canvas.Paint, bounds gm.Rect, shape drawFunc) {
	if c.target == nil {
		return
	}

	state := c.State()
	blend := blendOf(state.Blend)

	if state.Shadow.Enabled() {
		c.drawShadow(state.Shadow, blend, shape)
	}

	if paint.Gradient == nil && c.clip == nil {
		shape(c.target, colorScaleOf(paint), blend)
		return
	}

	layer := c.offscreen()
	layer.Clear()

	if paint.Gradient != nil {
		shape(layer, ebiten.ColorScale{}, ebiten.BlendSourceOver)
		c.applyGradient(layer, paint.Transformed(state.Transform).Gradient, bounds)
	} else {
		shape(layer, colorScaleOf(paint), ebiten.BlendSourceOver)
	}

	c.composite(layer, blend)
}

// drawShadow approximates a blurred shadow with a few translucent copies of
// the shape, spread around the shadow offset.
func (c *Canvas) drawShadow(shadow canvas.Shadow, blend ebiten.Blend, shape drawFunc) {
	c.offscreen()

	var colorScale ebiten.ColorScale
	colorScale.ScaleWithColor(shadow.Color)

	c.shadow.Clear()
	shape(c.shadow, colorScale, ebiten.BlendSourceOver)

	layer := c.layer
	layer.Clear()

	offsets := shadowOffsets(shadow)

	for _, offset := range offsets {
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(offset.X, offset.Y)
		op.ColorScale.ScaleAlpha(1 / float32(len(offsets)))
		op.Blend = ebiten.BlendLighter

		layer.DrawImage(c.shadow, &op)
	}

	c.composite(layer, blend)
}

// shadowOffsets samples a disc with the radius of the blur, centered on the shadow offset.
func shadowOffsets(shadow canvas.Shadow) []gm.Vec {
	offsets := []gm.Vec{shadow.Offset}

	radius := shadow.Blur / 2
	if radius < 1 {
		return offsets
	}

	for ring := 1; ring <= 2; ring++ {
		r := radius * float64(ring) / 2

		for idx := range 8 {
			angle := gm.Rad(idx) / 8 * gm.FullCircle
			offsets = append(offsets, shadow.Offset.Add(gm.Polar(angle, r, r)))
		}
	}

	return offsets
}

// composite draws the layer onto the target, masked by the current clip.
func (c *Canvas) composite(layer *ebiten.Image, blend ebiten.Blend) {
	if c.clip != nil {
		layer.DrawImage(c.clip, &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn})
	}

	c.target.DrawImage(layer, &ebiten.DrawImageOptions{Blend: blend})
}

// applyGradient replaces the color of everything drawn into layer within
// bounds by the gradient, keeping the coverage.
func (c *Canvas) applyGradient(layer *ebiten.Image, gradient *canvas.RadialGradient, bounds gm.Rect) {
	rect := deviceRect(bounds).Intersect(layer.Bounds())
	if rect.Empty() {
		return
	}

	pixels := ebiten.NewImage(rect.Dx(), rect.Dy())
	defer pixels.Deallocate()

	pixels.WritePixels(gradientPixels(gradient, rect))

	var geoM ebiten.GeoM
	geoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))

	layer.DrawImage(pixels, &ebiten.DrawImageOptions{GeoM: geoM, Blend: ebiten.BlendSourceIn})
}

// gradientPixels samples the gradient at the pixel centers of rect. The result
// holds alpha pre-multiplied RGBA values.
func gradientPixels(gradient *canvas.RadialGradient, rect image.Rectangle) []byte {
	pixels := make([]byte, 0, 4*rect.Dx()*rect.Dy())

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			p := gm.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}

			r, g, b, a := gradient.ColorOf(p).RGBA()
			pixels = append(pixels, uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
		}
	}

	return pixels
}

func (c *Canvas) offscreen() *ebiten.Image {
	if c.layer == nil {
		bounds := c.target.Bounds()
		c.layer = ebiten.NewImage(bounds.Dx(), bounds.Dy())
		c.shadow = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}

	return c.layer
}

// deviceRect returns the pixel rectangle covering r.
func deviceRect(r gm.Rect) image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}

	return image.Rect(
		int(math.Floor(r.Min.X))-1,
		int(math.Floor(r.Min.Y))-1,
		int(math.Ceil(r.Max.X))+1,
		int(math.Ceil(r.Max.Y))+1,
	)
}

// loadPath copies the device space path into the reusable vector path.
func (c *Canvas) loadPath(path *canvas.Path) {
	c.path.Reset()
	appendPath(&c.path, path)
}

func appendPath(dst *vector.Path, path *canvas.Path) {
	pt := func(v gm.Vec) (float32, float32) {
		return float32(v.X), float32(v.Y)
	}

	for _, segment := range path.Segments {
		p := segment.Points

		switch segment.Kind {
		case canvas.SegmentMoveTo:
			x, y := pt(p[0])
			dst.MoveTo(x, y)

		case canvas.SegmentLineTo:
			x, y := pt(p[0])
			dst.LineTo(x, y)

		case canvas.SegmentQuadTo:
			cx, cy := pt(p[0])
			x, y := pt(p[1])
			dst.QuadTo(cx, cy, x, y)

		case canvas.SegmentCubicTo:
			c1x, c1y := pt(p[0])
			c2x, c2y := pt(p[1])
			x, y := pt(p[2])
			dst.CubicTo(c1x, c1y, c2x, c2y, x, y)

		case canvas.SegmentClose:
			dst.Close()
		}
	}
}

func colorScaleOf(paint canvas.Paint) ebiten.ColorScale {
	var colorScale ebiten.ColorScale
	colorScale.Scale(paint.Color.PremultipliedValues())
	return colorScale
}

func blendOf(blend canvas.Blend) ebiten.Blend {
	if blend == canvas.BlendLighter {
		return ebiten.BlendLighter
	}

	return ebiten.BlendSourceOver
}

func fillRuleOf(rule canvas.FillRule) vector.FillRule {
	if rule == canvas.EvenOdd {
		return vector.FillRuleEvenOdd
	}

	return vector.FillRuleNonZero
}

func lineCapOf(lineCap canvas.LineCap) vector.LineCap {
	switch lineCap {
	case canvas.LineCapRound:
		return vector.LineCapRound
	case canvas.LineCapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}

func lineJoinOf(lineJoin canvas.LineJoin) vector.LineJoin {
	switch lineJoin {
	case canvas.LineJoinBevel:
		return vector.LineJoinBevel
	case canvas.LineJoinRound:
		return vector.LineJoinRound
	default:
		return vector.LineJoinMiter
	}
}

// geoMOf converts an affine transform into an ebiten.GeoM.
func geoMOf(tr gm.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, tr.Matrix.XAxis.X)
	g.SetElement(0, 1, tr.Matrix.XAxis.Y)
	g.SetElement(0, 2, tr.Translation.X)
	g.SetElement(1, 0, tr.Matrix.YAxis.X)
	g.SetElement(1, 1, tr.Matrix.YAxis.Y)
	g.SetElement(1, 2, tr.Translation.Y)
	return g
}

func strokeOptionsOf(style canvas.StrokeStyle, width float64) *vector.StrokeOptions {
	options := &vector.StrokeOptions{
		Width:      float32(width),
		LineCap:    lineCapOf(style.LineCap),
		LineJoin:   lineJoinOf(style.LineJoin),
		MiterLimit: float32(style.MiterLimit),
	}

	if options.MiterLimit <= 0 {
		options.MiterLimit = 10
	}

	return options
}
