package math3d

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// referenceProduct treats the construction vectors as columns of a gonum matrix.
func referenceProduct(c0, c1, c2, v Vec3) Vec3 {
	m := mat.NewDense(3, 3, []float64{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	})
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return V3(out.AtVec(0), out.AtVec(1), out.AtVec(2))
}

func TestTransformColumnConvention(t *testing.T) {
	c0, c1, c2 := V3(1, 2, 3), V3(4, 5, 6), V3(7, 8, 9)
	tr := NewTransform(c0, c1, c2)
	v := V3(1, 10, 100)

	// x = 1*1 + 4*10 + 7*100
	assertVec3(t, "product", tr.DotProduct(v), V3(741, 852, 963))
	assertVec3(t, "gonum", tr.DotProduct(v), referenceProduct(c0, c1, c2, v))
}

func TestTransformMatchesGonum(t *testing.T) {
	for _, angle := range []float64{0, 0.01, 0.5, math.Pi / 3, 2, -7.25} {
		for _, build := range []func(float64) Transform{RotationZ, RotationY, RotationX, RotationXAxis} {
			tr := build(angle)
			cols := tr.Columns()
			v := V3(-1, 1, 1).Mul(100)
			assertVec3(t, "rotated", tr.DotProduct(v), referenceProduct(cols[0], cols[1], cols[2], v))
		}
	}
}

func TestTransformLinear(t *testing.T) {
	tr := RotationY(0.3)
	a := V3(1, -2, 0.5)
	for _, s := range []float64{0, -1, 3.5, 100} {
		assertVec3(t, "linear", tr.DotProduct(a.Mul(s)), tr.DotProduct(a).Mul(s))
	}
}

func TestIdentity(t *testing.T) {
	built := NewTransform(V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1))
	for _, v := range []Vec3{V3(0, 0, 0), V3(1, 2, 3), V3(-100, 0.5, 7)} {
		if got := built.DotProduct(v); got != v {
			t.Errorf("identity(%v) = %v", v, got)
		}
		if got := Identity().DotProduct(v); got != v {
			t.Errorf("Identity()(%v) = %v", v, got)
		}
	}
}

func TestProjectionDropsZ(t *testing.T) {
	got := Projection().DotProduct(V3(3, 4, 5))
	assertVec3(t, "projection", got, V3(3, 4, 0))
}

func TestRotationXDuplicatesRotationZ(t *testing.T) {
	for _, angle := range []float64{0, 0.01, 1, math.Pi, 123.456} {
		if RotationX(angle).Columns() != RotationZ(angle).Columns() {
			t.Errorf("RotationX(%v) differs from RotationZ", angle)
		}
	}
}

func TestRotationXAxis(t *testing.T) {
	angle := math.Pi / 2
	if RotationXAxis(angle).ApproxEqual(RotationZ(angle)) {
		t.Fatal("RotationXAxis equals RotationZ")
	}
	assertVec3(t, "x fixed", RotationXAxis(angle).DotProduct(V3(1, 0, 0)), V3(1, 0, 0))
	// same handedness as RotationZ: rotates by -angle
	assertVec3(t, "y", RotationXAxis(angle).DotProduct(V3(0, 1, 0)), V3(0, 0, -1))
	assertVec3(t, "z about z", RotationZ(angle).DotProduct(V3(1, 0, 0)), V3(0, -1, 0))
}

func TestRotationsAtZeroAreIdentity(t *testing.T) {
	for name, tr := range map[string]Transform{
		"z":      RotationZ(0),
		"y":      RotationY(0),
		"x":      RotationX(0),
		"x-axis": RotationXAxis(0),
	} {
		if !tr.ApproxEqual(Identity()) {
			t.Errorf("%s(0) is not identity: %v", name, tr.Columns())
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := V3(1, 1, 1)
	want := math.Sqrt(3)
	for _, tr := range []Transform{RotationZ(0.4), RotationY(1.1), RotationXAxis(2.2)} {
		assertNear(t, "length", tr.DotProduct(v).Mgl().Len(), want)
	}
}
