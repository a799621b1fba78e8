package canvas

import (
	"math"

	"github.com/oliverbestmann/tumble/gm"
)

type SegmentKind uint8

const (
	SegmentMoveTo SegmentKind = iota
	SegmentLineTo
	SegmentQuadTo
	SegmentCubicTo
	SegmentClose
)

// Segment is a single path command. Only the first PointCount points are used,
// the last point used is the end point of the segment.
type Segment struct {
	Kind   SegmentKind
	Points [3]gm.Vec
}

func (s Segment) PointCount() int {
	switch s.Kind {
	case SegmentQuadTo:
		return 2
	case SegmentCubicTo:
		return 3
	case SegmentClose:
		return 0
	default:
		return 1
	}
}

// End returns the end point of the segment. Close segments have no end point.
func (s Segment) End() (gm.Vec, bool) {
	count := s.PointCount()
	if count == 0 {
		return gm.Vec{}, false
	}

	return s.Points[count-1], true
}

// Path is a sequence of segments in device space.
type Path struct {
	Segments []Segment
}

func (p *Path) Reset() {
	p.Segments = p.Segments[:0]
}

func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

func (p *Path) Clone() Path {
	return Path{Segments: append([]Segment(nil), p.Segments...)}
}

// Vertices returns the end point of every segment.
func (p *Path) Vertices() []gm.Vec {
	var vertices []gm.Vec
	for _, segment := range p.Segments {
		if end, ok := segment.End(); ok {
			vertices = append(vertices, end)
		}
	}

	return vertices
}

// Bounds returns the bounding box of all points of the path, including control points.
func (p *Path) Bounds() gm.Rect {
	r := gm.EmptyRect
	for _, segment := range p.Segments {
		for _, point := range segment.Points[:segment.PointCount()] {
			r = r.Extend(point)
		}
	}

	return r
}

func (p *Path) Transform(tr gm.Affine) Path {
	result := p.Clone()
	for idx := range result.Segments {
		segment := &result.Segments[idx]
		for pIdx := range segment.PointCount() {
			segment.Points[pIdx] = tr.Transform(segment.Points[pIdx])
		}
	}

	return result
}

// Polyline is a flattened sub path.
type Polyline struct {
	Points []gm.Vec
	Closed bool
}

// Flatten approximates all curves with line segments. Tolerance is the maximum
// distance of the flattened curve to the exact curve.
func (p *Path) Flatten(tolerance float64) []Polyline {
	var result []Polyline
	var current Polyline

	flush := func() {
		if len(current.Points) > 1 {
			result = append(result, current)
		}

		current = Polyline{}
	}

	var cursor gm.Vec

	for _, segment := range p.Segments {
		switch segment.Kind {
		case SegmentMoveTo:
			flush()
			cursor = segment.Points[0]
			current.Points = append(current.Points, cursor)

		case SegmentLineTo:
			if len(current.Points) == 0 {
				current.Points = append(current.Points, cursor)
			}

			cursor = segment.Points[0]
			current.Points = append(current.Points, cursor)

		case SegmentQuadTo:
			if len(current.Points) == 0 {
				current.Points = append(current.Points, cursor)
			}

			c, end := segment.Points[0], segment.Points[1]
			steps := curveSteps(cursor.DistanceTo(c)+c.DistanceTo(end), tolerance)
			start := cursor
			for step := 1; step <= steps; step++ {
				t := float64(step) / float64(steps)
				a := start.Lerp(c, t)
				b := c.Lerp(end, t)
				current.Points = append(current.Points, a.Lerp(b, t))
			}

			cursor = end

		case SegmentCubicTo:
			if len(current.Points) == 0 {
				current.Points = append(current.Points, cursor)
			}

			c1, c2, end := segment.Points[0], segment.Points[1], segment.Points[2]
			steps := curveSteps(cursor.DistanceTo(c1)+c1.DistanceTo(c2)+c2.DistanceTo(end), tolerance)
			start := cursor
			for step := 1; step <= steps; step++ {
				t := float64(step) / float64(steps)
				current.Points = append(current.Points, cubicAt(start, c1, c2, end, t))
			}

			cursor = end

		case SegmentClose:
			if len(current.Points) > 0 {
				current.Closed = true
				first := current.Points[0]
				flush()

				// a new sub path implicitly starts at the first point of the closed one
				cursor = first
			}
		}
	}

	flush()

	return result
}

func curveSteps(length, tolerance float64) int {
	if tolerance <= 0 {
		tolerance = 0.25
	}

	return max(2, min(256, int(math.Ceil(math.Sqrt(length/tolerance)))))
}

func cubicAt(p0, p1, p2, p3 gm.Vec, t float64) gm.Vec {
	u := 1 - t
	return p0.Mul(u * u * u).
		Add(p1.Mul(3 * u * u * t)).
		Add(p2.Mul(3 * u * t * t)).
		Add(p3.Mul(t * t * t))
}
