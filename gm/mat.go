package gm

import "math"

// Mat describes a 2d matrix of float64 values in row major order.
type Mat struct {
	XAxis, YAxis Vec
}

func IdentityMat() Mat {
	return Mat{
		XAxis: Vec{X: 1, Y: 0},
		YAxis: Vec{X: 0, Y: 1},
	}
}

// ScaleMat returns a matrix that scales a Vec.
func ScaleMat(scale Vec) Mat {
	return Mat{
		XAxis: Vec{X: scale.X},
		YAxis: Vec{Y: scale.Y},
	}
}

// RotationMat returns a rotation matrix that rotates a Vec by the given angle.
// With the y axis pointing down, as on screen, positive angles rotate clockwise.
func RotationMat(angle Rad) Mat {
	sin, cos := angle.SinCos()

	return Mat{
		XAxis: Vec{X: cos, Y: -sin},
		YAxis: Vec{X: sin, Y: cos},
	}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.XAxis.X*vec.X + m.XAxis.Y*vec.Y,
		Y: m.YAxis.X*vec.X + m.YAxis.Y*vec.Y,
	}
}

func (m Mat) Mul(n Mat) Mat {
	return Mat{
		XAxis: Vec{
			X: m.XAxis.X*n.XAxis.X + m.XAxis.Y*n.YAxis.X,
			Y: m.XAxis.X*n.XAxis.Y + m.XAxis.Y*n.YAxis.Y,
		},
		YAxis: Vec{
			X: m.YAxis.X*n.XAxis.X + m.YAxis.Y*n.YAxis.X,
			Y: m.YAxis.X*n.XAxis.Y + m.YAxis.Y*n.YAxis.Y,
		},
	}
}

func (m Mat) Determinant() float64 {
	return m.XAxis.X*m.YAxis.Y - m.XAxis.Y*m.YAxis.X
}

func (m Mat) TryInverse() (Mat, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Mat{}, false
	}

	f := 1 / det
	inverse := Mat{
		XAxis: Vec{
			X: f * m.YAxis.Y,
			Y: f * -m.XAxis.Y,
		},
		YAxis: Vec{
			X: f * -m.YAxis.X,
			Y: f * m.XAxis.X,
		},
	}

	return inverse, true
}

func (m Mat) Inverse() Mat {
	inverse, ok := m.TryInverse()
	if !ok {
		panic("matrix is not invertible")
	}

	return inverse
}
