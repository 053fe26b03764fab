package math3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a 3x3 linear map. The three vectors it is built from are the
// columns of the matrix, so output component k is the sum over the columns'
// k-th components weighted by the input vector.
type Transform struct {
	m mgl64.Mat3
}

// NewTransform builds a transform from its three columns
func NewTransform(c0, c1, c2 Vec3) Transform {
	return Transform{m: mgl64.Mat3FromCols(c0.Mgl(), c1.Mgl(), c2.Mgl())}
}

// Identity returns the transform that leaves vectors unchanged
func Identity() Transform {
	return Transform{m: mgl64.Ident3()}
}

// Projection zeroes the contribution of z, projecting onto the XY plane
func Projection() Transform {
	return NewTransform(
		V3(1, 0, 0),
		V3(0, 1, 0),
		V3(0, 0, 0),
	)
}

// DotProduct computes the matrix-vector product
func (t Transform) DotProduct(v Vec3) Vec3 {
	return FromMgl(t.m.Mul3x1(v.Mgl()))
}

// Columns returns the construction vectors in order
func (t Transform) Columns() [3]Vec3 {
	c0, c1, c2 := t.m.Cols()
	return [3]Vec3{FromMgl(c0), FromMgl(c1), FromMgl(c2)}
}

// ApproxEqual reports whether every element of t and o is within mathgl's epsilon
func (t Transform) ApproxEqual(o Transform) bool {
	return t.m.ApproxEqual(o.m)
}

// RotationZ rotates around the Z axis
func RotationZ(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return NewTransform(
		V3(cos, -sin, 0),
		V3(sin, cos, 0),
		V3(0, 0, 1),
	)
}

// RotationY rotates around the Y axis
func RotationY(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return NewTransform(
		V3(cos, 0, sin),
		V3(0, 1, 0),
		V3(-sin, 0, cos),
	)
}

// RotationX is built exactly like RotationZ. The cube's animation has always
// used this form, so it stays the default; RotationXAxis is the real X axis.
func RotationX(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return NewTransform(
		V3(cos, -sin, 0),
		V3(sin, cos, 0),
		V3(0, 0, 1),
	)
}

// RotationXAxis rotates around the X axis, with the same sign convention as
// RotationZ and RotationY
func RotationXAxis(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return NewTransform(
		V3(1, 0, 0),
		V3(0, cos, -sin),
		V3(0, sin, cos),
	)
}
