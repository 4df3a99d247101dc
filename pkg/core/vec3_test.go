package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"X cross Y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"Y cross Z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"Z cross X", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"Parallel vectors", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if !result.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()
	if !scalar.EqualWithinAbs(v.Length(), 1.0, 1e-12) {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := Vec3{}.Normalize()
	if !zero.IsZero() {
		t.Errorf("Expected zero vector to stay zero, got %v", zero)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	c := NewVec3(0.25, 1, -0.5).GammaCorrect(2.0)
	expected := NewVec3(0.5, 1, 0)
	if !c.ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestVec3_AxisAccess(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, want := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != want {
			t.Errorf("Axis(%d): expected %f, got %f", axis, want, got)
		}
	}

	w := v.WithAxis(1, 7)
	if w.Y != 7 || v.Y != 2 {
		t.Errorf("WithAxis should return a modified copy, got %v from %v", w, v)
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	p := r.At(1.5)
	if !p.Equals(NewVec3(1, 3, 0)) {
		t.Errorf("Expected (1,3,0), got %v", p)
	}
	if r.TMin != RayEpsilon || !math.IsInf(r.TMax, 1) {
		t.Errorf("Expected default interval [%g, +Inf], got [%g, %g]", RayEpsilon, r.TMin, r.TMax)
	}
	if r.InRange(0) {
		t.Error("t=0 should be outside the default interval")
	}
}

func TestAABB_PadDegenerate(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 0))
	padded := box.PadDegenerate(1e-4, 5e-5)

	if !scalar.EqualWithinAbs(padded.Min.Z, -5e-5, 1e-15) || !scalar.EqualWithinAbs(padded.Max.Z, 5e-5, 1e-15) {
		t.Errorf("Expected Z padded to ±5e-5, got [%g, %g]", padded.Min.Z, padded.Max.Z)
	}
	if padded.Min.X != 0 || padded.Max.X != 1 {
		t.Errorf("X axis should be untouched, got [%g, %g]", padded.Min.X, padded.Max.X)
	}
}

func TestAABB_UnionAndCorners(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 2, 0.5), NewVec3(0.5, 3, 4))
	u := a.Union(b)

	if !u.Min.Equals(NewVec3(-1, 0, 0)) || !u.Max.Equals(NewVec3(1, 3, 4)) {
		t.Errorf("Unexpected union %v", u)
	}

	for _, c := range a.Corners() {
		if !a.Contains(c) {
			t.Errorf("Corner %v not contained in box", c)
		}
	}
	if !EmptyAABB().Enclose(NewVec3(1, 2, 3)).Min.Equals(NewVec3(1, 2, 3)) {
		t.Error("Enclosing a point in an empty box should give that point")
	}
}

func TestVec3_Luminance(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected float64
	}{
		{"red", NewVec3(1, 0, 0), 0.2126},
		{"green", NewVec3(0, 1, 0), 0.7152},
		{"blue", NewVec3(0, 0, 1), 0.0722},
		{"grey", Splat(0.5), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Luminance(); !scalar.EqualWithinAbs(got, tt.expected, 1e-12) {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
