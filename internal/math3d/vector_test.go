package math3d

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec3(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	g, w := got.ToArray(), want.ToArray()
	for i := range g {
		if math.Abs(g[i]-w[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, g[i], w[i], got, want)
		}
	}
}

func TestVec3Mul(t *testing.T) {
	vectors := []Vec3{V3(0, 0, 0), V3(1, -2, 3), V3(-0.5, 0.25, 1e6)}
	scalars := []float64{0, 1, -1, 100, 0.01}
	for _, v := range vectors {
		for _, s := range scalars {
			got := v.Mul(s).ToArray()
			want := [3]float64{v.X * s, v.Y * s, v.Z * s}
			if got != want {
				t.Errorf("%v.Mul(%v) = %v, want %v", v, s, got, want)
			}
		}
	}
}

func TestVec3MulLeavesReceiver(t *testing.T) {
	v := V3(1, 2, 3)
	_ = v.Mul(10)
	if v != V3(1, 2, 3) {
		t.Errorf("receiver changed to %v", v)
	}
}

func TestVec3MulPropagatesNaN(t *testing.T) {
	got := V3(math.NaN(), 1, math.Inf(1)).Mul(2)
	if !math.IsNaN(got.X) || got.Y != 2 || !math.IsInf(got.Z, 1) {
		t.Errorf("got %v", got)
	}
}

func TestVec3ToVec2(t *testing.T) {
	got := V3(3, -4, 99).ToVec2()
	if got != V2(3, -4) {
		t.Errorf("ToVec2 = %v, want (3, -4)", got)
	}
}

func TestVec2TranslateBy(t *testing.T) {
	v := V2(1, 2)
	got := v.TranslateBy(400, 300)
	if got.ToArray() != [2]float64{401, 302} {
		t.Errorf("TranslateBy = %v", got)
	}
	if v != V2(1, 2) {
		t.Errorf("receiver changed to %v", v)
	}
}

func TestVec2Mul(t *testing.T) {
	if got := V2(1.5, -2).Mul(2); got != V2(3, -4) {
		t.Errorf("Mul = %v", got)
	}
}

func TestVec3DotProductDelegates(t *testing.T) {
	tr := RotationY(0.7)
	v := V3(1, 2, 3)
	assertVec3(t, "dot", v.DotProduct(tr), tr.DotProduct(v))
}
