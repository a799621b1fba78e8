package raster

import (
	"image"
	"math"

	"github.com/oliverbestmann/tumble/gm"
)

// deviceRect returns the pixel rectangle covering r, with a pixel of margin
// for anti aliasing.
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

func pixelCenter(x, y int) gm.Vec {
	return gm.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

func intersectMasks(a, b *image.Alpha) *image.Alpha {
	rect := a.Rect.Intersect(b.Rect)

	result := image.NewAlpha(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			value := uint16(a.AlphaAt(x, y).A) * uint16(b.AlphaAt(x, y).A) / 0xff
			result.Pix[result.PixOffset(x, y)] = uint8(value)
		}
	}

	return result
}

// offsetMask moves the mask by whole pixels without copying it.
func offsetMask(mask *image.Alpha, offset gm.Vec) *image.Alpha {
	shift := image.Point{X: int(math.Round(offset.X)), Y: int(math.Round(offset.Y))}
	if shift == (image.Point{}) {
		return mask
	}

	moved := *mask
	moved.Rect = mask.Rect.Add(shift)
	return &moved
}

// blurMask approximates a gaussian blur with three box blur passes. Three
// passes of radius sigma come close to a gaussian of the same sigma.
func blurMask(mask *image.Alpha, sigma float64) *image.Alpha {
	radius := int(math.Round(sigma))
	if radius <= 0 {
		return mask
	}

	rect := mask.Rect.Inset(-3 * radius)

	values := make([]float32, rect.Dx()*rect.Dy())
	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
			idx := (y-rect.Min.Y)*rect.Dx() + (x - rect.Min.X)
			values[idx] = float32(mask.Pix[mask.PixOffset(x, y)])
		}
	}

	scratch := make([]float32, len(values))

	for range 3 {
		boxBlur(scratch, values, rect.Dx(), rect.Dy(), 1, rect.Dx(), radius)
		boxBlur(values, scratch, rect.Dy(), rect.Dx(), rect.Dx(), 1, radius)
	}

	result := image.NewAlpha(rect)
	for idx, value := range values {
		result.Pix[idx] = uint8(min(0xff, max(0, value)) + 0.5)
	}

	return result
}

// boxBlur blurs lines of src into dst. Elements of a line are step apart,
// the lines themselves are stride apart.
func boxBlur(dst, src []float32, length, lines, step, stride, radius int) {
	window := float32(2*radius + 1)

	for line := range lines {
		base := line * stride

		var sum float32
		for idx := -radius; idx <= radius; idx++ {
			if idx >= 0 && idx < length {
				sum += src[base+idx*step]
			}
		}

		for idx := range length {
			dst[base+idx*step] = sum / window

			if out := idx - radius; out >= 0 {
				sum -= src[base+out*step]
			}

			if in := idx + radius + 1; in < length {
				sum += src[base+in*step]
			}
		}
	}
}
