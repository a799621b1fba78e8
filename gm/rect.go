package gm

import (
	"fmt"
	"image"
	"math"
)

type Rect struct {
	Min, Max Vec
}

// EmptyRect is the neutral element for Union.
var EmptyRect = Rect{
	Min: VecSplat(math.Inf(1)),
	Max: VecSplat(math.Inf(-1)),
}

func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: Vec{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

// BoundsOf returns the smallest rectangle containing all points.
func BoundsOf(points []Vec) Rect {
	r := EmptyRect
	for _, p := range points {
		r = r.Extend(p)
	}

	return r
}

func RectWithCenterAndSize(center, size Vec) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

func (r Rect) Extend(p Vec) Rect {
	return Rect{
		Min: Vec{X: min(r.Min.X, p.X), Y: min(r.Min.Y, p.Y)},
		Max: Vec{X: max(r.Max.X, p.X), Y: max(r.Max.Y, p.Y)},
	}
}

func (r Rect) Union(other Rect) Rect {
	if other.IsEmpty() {
		return r
	}

	return r.Extend(other.Min).Extend(other.Max)
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) Translate(offset Vec) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ToImageRectangle returns the integer rectangle covering r.
func (r Rect) ToImageRectangle() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
