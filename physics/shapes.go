package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/tumble/gm"
)

// ToShape describes a collider in the local space of its body.
type ToShape interface {
	MakeShape(body *cp.Body) *cp.Shape

	Area() float64
	Centroid() gm.Vec

	// Translate returns a copy moved by offset.
	Translate(offset gm.Vec) ToShape
}

type CircleShape struct {
	Radius float64
	Offset gm.Vec
}

func (s CircleShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, s.Radius, cpVecOf(s.Offset))
}

func (s CircleShape) Area() float64 {
	return math.Pi * s.Radius * s.Radius
}

func (s CircleShape) Centroid() gm.Vec {
	return s.Offset
}

func (s CircleShape) Translate(offset gm.Vec) ToShape {
	s.Offset = s.Offset.Add(offset)
	return s
}

// PolygonShape is a convex polygon. The points are wrapped in their convex hull
// when the shape is created.
type PolygonShape struct {
	Points []gm.Vec
	Radius float64
}

func BoxShape(size gm.Vec) PolygonShape {
	hw, hh := size.X/2, size.Y/2

	return PolygonShape{
		Points: []gm.Vec{
			{X: -hw, Y: -hh},
			{X: hw, Y: -hh},
			{X: hw, Y: hh},
			{X: -hw, Y: hh},
		},
	}
}

func (s PolygonShape) MakeShape(body *cp.Body) *cp.Shape {
	points := make([]cp.Vector, len(s.Points))
	for idx := range s.Points {
		points[idx] = cpVecOf(s.Points[idx])
	}

	return cp.NewPolyShape(body, len(points), points, cp.NewTransformIdentity(), s.Radius)
}

func (s PolygonShape) Area() float64 {
	return math.Abs(signedArea(s.Points))
}

func (s PolygonShape) Centroid() gm.Vec {
	return polygonCentroid(s.Points)
}

func (s PolygonShape) Translate(offset gm.Vec) ToShape {
	points := make([]gm.Vec, len(s.Points))
	for idx, point := range s.Points {
		points[idx] = point.Add(offset)
	}

	return PolygonShape{Points: points, Radius: s.Radius}
}

// signedArea is positive for loops that turn clockwise on screen.
func signedArea(points []gm.Vec) float64 {
	var sum float64

	for idx := range points {
		a := points[idx]
		b := points[(idx+1)%len(points)]
		sum += a.Cross(b)
	}

	return sum / 2
}

func polygonCentroid(points []gm.Vec) gm.Vec {
	area := signedArea(points)
	if math.Abs(area) < 1e-12 {
		// degenerated polygon, use the average of all points
		var sum gm.Vec
		for _, point := range points {
			sum = sum.Add(point)
		}

		return sum.Mul(1 / float64(max(1, len(points))))
	}

	var c gm.Vec
	for idx := range points {
		a := points[idx]
		b := points[(idx+1)%len(points)]
		c = c.Add(a.Add(b).Mul(a.Cross(b)))
	}

	return c.Mul(1 / (6 * area))
}

func cpVecOf(vec gm.Vec) cp.Vector {
	return cp.Vector{X: vec.X, Y: vec.Y}
}

func vecOf(vec cp.Vector) gm.Vec {
	return gm.Vec{X: vec.X, Y: vec.Y}
}
