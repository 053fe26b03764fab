package math3d

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a point in screen space
type Vec2 struct {
	X, Y float64
}

// V2 builds a Vec2 from its components
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Mul multiplies every component by s
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// TranslateBy offsets the vector by dx, dy
func (v Vec2) TranslateBy(dx, dy float64) Vec2 {
	return Vec2{X: v.X + dx, Y: v.Y + dy}
}

// ToArray returns the components as X, Y
func (v Vec2) ToArray() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// Vec3 is a point or direction in object space
type Vec3 struct {
	X, Y, Z float64
}

// V3 builds a Vec3 from its components
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromMgl converts a mathgl vector
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Mgl converts the vector to its mathgl form
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Mul multiplies every component by s
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// ToVec2 drops the Z component. There is no perspective division.
func (v Vec3) ToVec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// ToArray returns the components as X, Y, Z
func (v Vec3) ToArray() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// DotProduct applies t to the vector, same as t.DotProduct(v)
func (v Vec3) DotProduct(t Transform) Vec3 {
	return t.DotProduct(v)
}
