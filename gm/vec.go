package gm

import (
	"fmt"
	"image"
	"math"
)

type Scalar interface {
	~float32 | ~float64 | ~int32
}

type VecType[S Scalar] struct {
	X, Y S
}

type Vec = VecType[float64]
type Vec32 = VecType[float32]
type IVec = VecType[int32]

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

func VecOf[S Scalar](x, y S) VecType[S] {
	return VecType[S]{X: x, Y: y}
}

func VecSplat[S Scalar](v S) VecType[S] {
	return VecType[S]{X: v, Y: v}
}

// Polar returns the point at the given angle on an axis aligned ellipse
// with radii rx and ry around the origin.
func Polar(angle Rad, rx, ry float64) Vec {
	sin, cos := angle.SinCos()
	return Vec{X: cos * rx, Y: sin * ry}
}

func (v VecType[S]) XY() (S, S) {
	return v.X, v.Y
}

func (v VecType[S]) Add(other VecType[S]) VecType[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v VecType[S]) Sub(other VecType[S]) VecType[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v VecType[S]) Mul(scalar S) VecType[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v VecType[S]) MulEach(other VecType[S]) VecType[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v VecType[S]) DivEach(other VecType[S]) VecType[S] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v VecType[S]) Dot(other VecType[S]) S {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product of v and other.
func (v VecType[S]) Cross(other VecType[S]) S {
	return v.X*other.Y - v.Y*other.X
}

func (v VecType[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

func (v VecType[S]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

func (v VecType[S]) Normalized() VecType[S] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v VecType[S]) VecTo(other VecType[S]) VecType[S] {
	return other.Sub(v)
}

func (v VecType[S]) DistanceTo(other VecType[S]) S {
	return v.VecTo(other).Length()
}

// Angle returns the angle of the vector relative to the positive x axis.
func (v VecType[S]) Angle() Rad {
	return Rad(math.Atan2(float64(v.Y), float64(v.X)))
}

func (v VecType[S]) Lerp(other VecType[S], t S) VecType[S] {
	return v.Add(other.Sub(v).Mul(t))
}

func (v VecType[S]) ToImagePoint() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

func (v VecType[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
