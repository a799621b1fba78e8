package canvas

import (
	"math"

	"github.com/oliverbestmann/tumble/gm"
)

// ArcSweep returns the signed angle swept by an arc from start to end in the given
// direction. Sweeps of at least a full circle are limited to a full circle.
func ArcSweep(start, end gm.Rad, direction Direction) gm.Rad {
	sweep := end - start

	if direction == Clockwise {
		if sweep >= gm.FullCircle {
			return gm.FullCircle
		}

		sweep = gm.Rad(math.Mod(float64(sweep), float64(gm.FullCircle)))
		if sweep < 0 {
			sweep += gm.FullCircle
		}

		return sweep
	}

	if sweep <= -gm.FullCircle {
		return -gm.FullCircle
	}

	sweep = gm.Rad(math.Mod(float64(sweep), float64(gm.FullCircle)))
	if sweep > 0 {
		sweep -= gm.FullCircle
	}

	return sweep
}

// arcCubics approximates an elliptical arc around the origin with cubic bezier curves
// of at most a quarter turn each. The points returned are grouped in triples of
// (first control, second control, end point). The start point is not included.
func arcCubics(radii gm.Vec, start, sweep gm.Rad) []gm.Vec {
	count := max(1, int(math.Ceil(math.Abs(float64(sweep))/(math.Pi/2)-1e-9)))
	step := sweep / gm.Rad(count)

	// length of the control point handles for a unit circle
	k := 4.0 / 3.0 * math.Tan(float64(step)/4)

	points := make([]gm.Vec, 0, count*3)

	angle := start
	for range count {
		next := angle + step

		sinA, cosA := angle.SinCos()
		sinB, cosB := next.SinCos()

		c1 := gm.Vec{X: cosA - k*sinA, Y: sinA + k*cosA}
		c2 := gm.Vec{X: cosB + k*sinB, Y: sinB - k*cosB}
		end := gm.Vec{X: cosB, Y: sinB}

		points = append(points, c1.MulEach(radii), c2.MulEach(radii), end.MulEach(radii))

		angle = next
	}

	return points
}
