package canvas

import (
	"testing"

	"github.com/oliverbestmann/tumble/color"
	"github.com/oliverbestmann/tumble/gm"
	"github.com/stretchr/testify/require"
)

func TestRadialGradient(t *testing.T) {
	g := NewRadialGradient(gm.VecZero, 0, gm.VecZero, 100).
		AddStop(0, color.White).
		AddStop(1, color.Black)

	require.InDelta(t, 0, g.Param(gm.VecZero), 1e-9)
	require.InDelta(t, 0.5, g.Param(gm.Vec{X: 50}), 1e-9)
	require.InDelta(t, 1, g.Param(gm.Vec{Y: -100}), 1e-9)

	require.Equal(t, color.White, g.ColorAt(-1))
	require.Equal(t, color.Black, g.ColorAt(2))
	require.InDelta(t, 0.5, g.ColorAt(0.5).R, 1e-6)
}

func TestPaint_Transformed(t *testing.T) {
	g := NewRadialGradient(gm.Vec{X: 1}, 2, gm.Vec{X: 1}, 4)
	tr := gm.IdentityAffine().Translate(gm.Vec{X: 10}).Scale(gm.VecSplat(2.0))

	paint := Paint{Gradient: g}.Transformed(tr)
	require.Equal(t, gm.Vec{X: 12}, paint.Gradient.Start)
	require.InDelta(t, 8, paint.Gradient.EndRadius, 1e-9)

	// original gradient is unchanged
	require.Equal(t, 4.0, g.EndRadius)
}

func TestParsePaint(t *testing.T) {
	paint, ok := ParsePaint("#ff0000")
	require.True(t, ok)
	require.Equal(t, color.RGB(1, 0, 0), paint.Color)

	_, ok = ParsePaint("nope")
	require.False(t, ok)

	require.True(t, Paint{}.IsZero())
}
