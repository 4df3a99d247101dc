package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an affine object-to-world mapping that carries its own inverse
type Transform struct {
	m   mgl64.Mat4
	inv mgl64.Mat4
}

// IdentityTransform returns the identity mapping
func IdentityTransform() Transform {
	return Transform{m: mgl64.Ident4(), inv: mgl64.Ident4()}
}

// NewTransform creates a transform from a matrix, computing the inverse.
// Returns an error if the matrix is singular.
func NewTransform(m mgl64.Mat4) (Transform, error) {
	if m.Det() == 0 {
		return Transform{}, fmt.Errorf("transform matrix is singular")
	}
	return Transform{m: m, inv: m.Inv()}, nil
}

// Translate returns a translation by offset
func Translate(offset Vec3) Transform {
	return Transform{
		m:   mgl64.Translate3D(offset.X, offset.Y, offset.Z),
		inv: mgl64.Translate3D(-offset.X, -offset.Y, -offset.Z),
	}
}

// Scale returns a non-uniform scale. Zero factors make the transform singular.
func Scale(factors Vec3) Transform {
	return Transform{
		m:   mgl64.Scale3D(factors.X, factors.Y, factors.Z),
		inv: mgl64.Scale3D(1/factors.X, 1/factors.Y, 1/factors.Z),
	}
}

// Rotate returns a rotation of degrees around axis
func Rotate(axis Vec3, degrees float64) Transform {
	a := mgl64.Vec3{axis.X, axis.Y, axis.Z}.Normalize()
	rot := mgl64.HomogRotate3D(mgl64.DegToRad(degrees), a)
	return Transform{m: rot, inv: rot.Transpose()}
}

// LookAt returns the camera-to-world transform of a camera at from looking toward at.
// The camera looks down its local -Z axis with +Y up.
func LookAt(from, at, up Vec3) Transform {
	view := mgl64.LookAtV(
		mgl64.Vec3{from.X, from.Y, from.Z},
		mgl64.Vec3{at.X, at.Y, at.Z},
		mgl64.Vec3{up.X, up.Y, up.Z},
	)
	return Transform{m: view.Inv(), inv: view}
}

// FromRowMajor builds a transform from 16 values listed row by row
func FromRowMajor(values [16]float64) (Transform, error) {
	return NewTransform(mgl64.Mat4(values).Transpose())
}

// Then returns the transform that applies t first and next afterwards
func (t Transform) Then(next Transform) Transform {
	return Transform{m: next.m.Mul4(t.m), inv: t.inv.Mul4(next.inv)}
}

// Inverse returns the inverse mapping
func (t Transform) Inverse() Transform {
	return Transform{m: t.inv, inv: t.m}
}

// Point maps a position
func (t Transform) Point(p Vec3) Vec3 {
	r := t.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if r[3] != 1 && r[3] != 0 {
		return NewVec3(r[0]/r[3], r[1]/r[3], r[2]/r[3])
	}
	return NewVec3(r[0], r[1], r[2])
}

// Vector maps a direction, ignoring translation
func (t Transform) Vector(v Vec3) Vec3 {
	r := t.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return NewVec3(r[0], r[1], r[2])
}

// Normal maps a surface normal with the inverse transpose. The result is not normalized.
func (t Transform) Normal(n Vec3) Vec3 {
	r := t.inv.Transpose().Mul4x1(mgl64.Vec4{n.X, n.Y, n.Z, 0})
	return NewVec3(r[0], r[1], r[2])
}

// Ray maps a ray, keeping its parametric interval. The direction is not
// renormalized so that t values agree across spaces.
func (t Transform) Ray(r Ray) Ray {
	return Ray{
		Origin:    t.Point(r.Origin),
		Direction: t.Vector(r.Direction),
		TMin:      r.TMin,
		TMax:      r.TMax,
	}
}

// Box maps a box by transforming its corners
func (t Transform) Box(b AABB) AABB {
	out := EmptyAABB()
	for _, c := range b.Corners() {
		out = out.Enclose(t.Point(c))
	}
	return out
}
