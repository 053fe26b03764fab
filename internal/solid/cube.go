// Package solid holds the cube geometry and its cache of projected points.
package solid

import (
	errorsmod "cosmossdk.io/errors"

	"wirecube/internal/math3d"
)

const codespace = "solid"

// ErrIndexOutOfRange is returned when a point index is outside [0, 8)
var ErrIndexOutOfRange = errorsmod.Register(codespace, 2, "point index out of range")

// Corners is the number of vertices (and cached points) of a cube
const Corners = 8

// canonical vertex order; front face 0-3, back face 4-7
var unitCube = [Corners]math3d.Vec3{
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: -1},
}

// Cube is a solid with object-space vertices and the screen-space points
// they were last projected to
type Cube struct {
	vertices [Corners]math3d.Vec3
	points   [Corners]math3d.Vec2
}

// NewCube returns the unit cube centered at the origin, corners at ±1
func NewCube() *Cube {
	return &Cube{vertices: unitCube}
}

// Len returns the number of vertices, which is also the number of points
func (c *Cube) Len() int {
	return Corners
}

// Vertices returns a copy of the object-space vertices
func (c *Cube) Vertices() []math3d.Vec3 {
	out := make([]math3d.Vec3, Corners)
	copy(out, c.vertices[:])
	return out
}

// Scale returns a new cube with every vertex multiplied by k
func (c *Cube) Scale(k float64) *Cube {
	scaled := &Cube{}
	for i, v := range c.vertices {
		scaled.vertices[i] = v.Mul(k)
	}
	return scaled
}

// Points returns the live point cache. It is overwritten by SetPoint, so
// callers outside the frame pipeline should only read it.
func (c *Cube) Points() []math3d.Vec2 {
	return c.points[:]
}

// SetPoint stores the projected position of vertex idx
func (c *Cube) SetPoint(idx int, x, y float64) error {
	if idx < 0 || idx >= Corners {
		return errorsmod.Wrapf(ErrIndexOutOfRange, "index %d, cube has %d points", idx, Corners)
	}
	c.points[idx] = math3d.V2(x, y)
	return nil
}
