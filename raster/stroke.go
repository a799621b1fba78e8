package raster

import (
	"math"

	"github.com/oliverbestmann/tumble/canvas"
	"github.com/oliverbestmann/tumble/gm"
)

// strokeOutline converts flattened lines into a set of polygons covering the stroke.
// All polygons share the same orientation so that the non zero rule
// fills their union.
func strokeOutline(lines []canvas.Polyline, width float64, style canvas.StrokeStyle) canvas.Path {
	s := stroker{half: width / 2, style: style}

	for _, line := range lines {
		s.line(line)
	}

	return s.path
}

type stroker struct {
	half  float64
	style canvas.StrokeStyle
	path  canvas.Path
}

func (s *stroker) line(line canvas.Polyline) {
	points := dedupe(line.Points, line.Closed)
	if len(points) < 2 {
		if len(points) == 1 && s.style.LineCap == canvas.LineCapRound {
			s.disc(points[0])
		}

		return
	}

	segments := len(points) - 1
	if line.Closed {
		segments = len(points)
	}

	for idx := range segments {
		a := points[idx]
		b := points[(idx+1)%len(points)]

		if !line.Closed && s.style.LineCap == canvas.LineCapSquare {
			dir := a.VecTo(b).Normalized().Mul(s.half)
			if idx == 0 {
				a = a.Sub(dir)
			}

			if idx == segments-1 {
				b = b.Add(dir)
			}
		}

		s.segment(a, b)
	}

	// joins between consecutive segments
	for idx := range len(points) {
		if !line.Closed && (idx == 0 || idx == len(points)-1) {
			continue
		}

		prev := points[(idx+len(points)-1)%len(points)]
		next := points[(idx+1)%len(points)]
		s.join(prev, points[idx], next)
	}

	if !line.Closed && s.style.LineCap == canvas.LineCapRound {
		s.disc(points[0])
		s.disc(points[len(points)-1])
	}
}

func (s *stroker) segment(a, b gm.Vec) {
	n := normal(a, b).Mul(s.half)
	s.polygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

func (s *stroker) join(prev, at, next gm.Vec) {
	if s.style.LineJoin == canvas.LineJoinRound {
		s.disc(at)
		return
	}

	n1 := normal(prev, at).Mul(s.half)
	n2 := normal(at, next).Mul(s.half)

	// the outer side of the corner is opposite to the turn direction
	turn := prev.VecTo(at).Cross(at.VecTo(next))
	if turn > 0 {
		n1, n2 = n1.Mul(-1), n2.Mul(-1)
	}

	a := at.Add(n1)
	b := at.Add(n2)

	if s.style.LineJoin == canvas.LineJoinMiter {
		limit := s.style.MiterLimit
		if limit <= 0 {
			limit = 10
		}

		// the miter tip lies on the bisector of both normals
		bisector := n1.Add(n2).Normalized()
		cos := bisector.Dot(n1.Normalized())

		if cos > 1e-6 && 1/cos <= limit {
			tip := at.Add(bisector.Mul(s.half / cos))
			s.polygon(at, a, tip, b)
			return
		}
	}

	s.polygon(at, a, b)
}

func (s *stroker) disc(center gm.Vec) {
	steps := max(8, int(math.Ceil(s.half*2)))

	points := make([]gm.Vec, steps)
	for idx := range points {
		angle := gm.Rad(idx) / gm.Rad(steps) * gm.FullCircle
		points[idx] = center.Add(gm.Polar(angle, s.half, s.half))
	}

	s.polygon(points...)
}

// polygon adds a closed polygon with negative orientation.
func (s *stroker) polygon(points ...gm.Vec) {
	var area float64
	for idx, p := range points {
		q := points[(idx+1)%len(points)]
		area += p.Cross(q)
	}

	if math.Abs(area) < 1e-12 {
		return
	}

	for idx := range points {
		p := points[idx]
		if area > 0 {
			p = points[len(points)-1-idx]
		}

		kind := canvas.SegmentLineTo
		if idx == 0 {
			kind = canvas.SegmentMoveTo
		}

		s.path.Segments = append(s.path.Segments, canvas.Segment{Kind: kind, Points: [3]gm.Vec{p}})
	}

	s.path.Segments = append(s.path.Segments, canvas.Segment{Kind: canvas.SegmentClose})
}

// normal returns the unit normal to the left of the direction from a to b.
func normal(a, b gm.Vec) gm.Vec {
	d := a.VecTo(b).Normalized()
	return gm.Vec{X: -d.Y, Y: d.X}
}

// dedupe removes consecutive duplicates, and the closing point of a closed line.
func dedupe(points []gm.Vec, closed bool) []gm.Vec {
	var result []gm.Vec
	for _, p := range points {
		if len(result) > 0 && result[len(result)-1].DistanceTo(p) < 1e-9 {
			continue
		}

		result = append(result, p)
	}

	if closed && len(result) > 1 && result[0].DistanceTo(result[len(result)-1]) < 1e-9 {
		result = result[:len(result)-1]
	}

	return result
}
