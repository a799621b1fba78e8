package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireMatInDelta(t *testing.T, expected, actual Mat) {
	t.Helper()

	require.InDelta(t, expected.XAxis.X, actual.XAxis.X, 1e-9)
	require.InDelta(t, expected.XAxis.Y, actual.XAxis.Y, 1e-9)
	require.InDelta(t, expected.YAxis.X, actual.YAxis.X, 1e-9)
	require.InDelta(t, expected.YAxis.Y, actual.YAxis.Y, 1e-9)
}

func TestMat_Determinant(t *testing.T) {
	require.Equal(t, 6.0, ScaleMat(Vec{X: 2, Y: 3}).Determinant())
	require.InDelta(t, 1, RotationMat(0.7).Determinant(), 1e-9)
	require.Equal(t, 0.0, ScaleMat(Vec{X: 2}).Determinant())
}

func TestMat_TryInverse(t *testing.T) {
	t.Run("scale", func(t *testing.T) {
		inverse, ok := ScaleMat(Vec{X: 2, Y: 4}).TryInverse()
		require.True(t, ok)
		require.Equal(t, ScaleMat(Vec{X: 0.5, Y: 0.25}), inverse)
	})

	t.Run("rotation times inverse is identity", func(t *testing.T) {
		m := RotationMat(1.3).Mul(ScaleMat(Vec{X: 3, Y: 0.5}))

		inverse, ok := m.TryInverse()
		require.True(t, ok)
		requireMatInDelta(t, IdentityMat(), m.Mul(inverse))
	})

	t.Run("singular", func(t *testing.T) {
		// both axes point the same way
		m := Mat{XAxis: Vec{X: 1, Y: 2}, YAxis: Vec{X: 2, Y: 4}}

		_, ok := m.TryInverse()
		require.False(t, ok)

		require.Panics(t, func() { m.Inverse() })
	})
}

func TestMat_RotationOnScreen(t *testing.T) {
	// with y pointing down a quarter turn moves the x axis onto the y axis
	r := RotationMat(Pi / 2).Transform(Vec{X: 10})
	require.InDelta(t, 0, r.X, 1e-9)
	require.InDelta(t, 10, r.Y, 1e-9)

	requireMatInDelta(t, RotationMat(Pi*0.75), RotationMat(Pi/4).Mul(RotationMat(Pi/2)))
}
