package canvas

import (
	"math"
	"testing"

	"github.com/oliverbestmann/tumble/gm"
	"github.com/stretchr/testify/require"
)

func requireVec(t *testing.T, want, got gm.Vec) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-6, "x of %s", got)
	require.InDelta(t, want.Y, got.Y, 1e-6, "y of %s", got)
}

func TestArcSweep(t *testing.T) {
	cases := []struct {
		name       string
		start, end gm.Rad
		direction  Direction
		want       gm.Rad
	}{
		{"full circle", 0, 2 * math.Pi, Clockwise, gm.FullCircle},
		{"half circle", math.Pi, 2 * math.Pi, Clockwise, math.Pi},
		{"wrap clockwise", math.Pi, 0, Clockwise, math.Pi},
		{"counter clockwise", 0, -math.Pi / 2, CounterClockwise, -math.Pi / 2},
		{"wrap counter clockwise", 0, math.Pi / 2, CounterClockwise, -1.5 * math.Pi},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, float64(tc.want), float64(ArcSweep(tc.start, tc.end, tc.direction)), 1e-9)
		})
	}
}

func TestPen_Transform(t *testing.T) {
	pen := NewPen()
	pen.Translate(gm.Vec{X: 100, Y: 50})
	pen.Rotate(math.Pi / 2)

	pen.MoveTo(gm.Vec{X: 10})
	requireVec(t, gm.Vec{X: 100, Y: 60}, pen.Path().Segments[0].Points[0])

	pen.Save()
	pen.Scale(gm.VecSplat(2.0))
	pen.LineTo(gm.Vec{X: 10})
	requireVec(t, gm.Vec{X: 100, Y: 70}, pen.Path().Segments[1].Points[0])

	pen.Restore()
	pen.LineTo(gm.Vec{X: 10})
	requireVec(t, gm.Vec{X: 100, Y: 60}, pen.Path().Segments[2].Points[0])

	// unbalanced restore is ignored
	pen.Restore()
	require.Equal(t, 0, pen.Depth())
}

func TestPen_Arc(t *testing.T) {
	pen := NewPen()
	pen.Arc(gm.Vec{X: 10, Y: 10}, 5, 0, math.Pi, Clockwise)

	vertices := pen.Path().Vertices()

	// move to the start and two quarter turns
	require.Len(t, vertices, 3)
	requireVec(t, gm.Vec{X: 15, Y: 10}, vertices[0])
	requireVec(t, gm.Vec{X: 10, Y: 15}, vertices[1])
	requireVec(t, gm.Vec{X: 5, Y: 10}, vertices[2])

	// every flattened point lies on the circle
	for _, line := range pen.Path().Flatten(0.1) {
		for _, point := range line.Points {
			require.InDelta(t, 5, point.DistanceTo(gm.Vec{X: 10, Y: 10}), 0.01)
		}
	}
}

func TestPen_ArcConnectsToCurrentPoint(t *testing.T) {
	pen := NewPen()
	pen.MoveTo(gm.VecZero)
	pen.Arc(gm.VecZero, 10, 0, math.Pi/2, Clockwise)
	pen.ClosePath()

	segments := pen.Path().Segments
	require.Equal(t, SegmentMoveTo, segments[0].Kind)
	require.Equal(t, SegmentLineTo, segments[1].Kind)
	require.Equal(t, SegmentCubicTo, segments[2].Kind)
	require.Equal(t, SegmentClose, segments[3].Kind)
}

func TestPath_Flatten(t *testing.T) {
	pen := NewPen()
	pen.Rect(gm.Rect{Max: gm.Vec{X: 10, Y: 20}})
	pen.MoveTo(gm.Vec{X: 50})
	pen.LineTo(gm.Vec{X: 60})

	lines := pen.Path().Flatten(0.25)
	require.Len(t, lines, 2)
	require.True(t, lines[0].Closed)
	require.Len(t, lines[0].Points, 4)
	require.False(t, lines[1].Closed)

	bounds := pen.Path().Bounds()
	require.Equal(t, gm.Vec{}, bounds.Min)
	require.Equal(t, gm.Vec{X: 60, Y: 20}, bounds.Max)
}
