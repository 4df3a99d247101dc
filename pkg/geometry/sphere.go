package geometry

import (
	"math"

	"github.com/df07/go-dirt/pkg/core"
)

// Sphere is a sphere of the given radius centered at the origin of its object space
type Sphere struct {
	Radius    float64
	Material  core.Material
	Transform core.Transform // object to world
}

// NewSphere creates a new sphere
func NewSphere(radius float64, material core.Material, transform core.Transform) *Sphere {
	return &Sphere{
		Radius:    radius,
		Material:  material,
		Transform: transform,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (*core.HitInfo, bool) {
	core.CountIntersectionTest()

	// Work in object space where the sphere sits at the origin
	local := s.Transform.Inverse().Ray(ray)
	o := local.Origin
	d := local.Direction

	// Quadratic equation coefficients: at² + bt + c = 0
	a := d.Dot(d)
	b := 2 * d.Dot(o)
	c := o.Dot(o) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2 * a)
	if !ray.InRange(root) {
		root = (-b + sqrtD) / (2 * a)
		if !ray.InRange(root) {
			return nil, false
		}
	}

	pObj := local.At(root)
	gn := s.Transform.Normal(pObj.Normalize()).Normalize()

	phi := math.Atan2(pObj.Y, pObj.X)
	theta := math.Acos(math.Max(-1, math.Min(1, pObj.Z/s.Radius)))

	return &core.HitInfo{
		T:        root,
		Point:    s.Transform.Point(pObj),
		GN:       gn,
		SN:       gn,
		UV:       core.NewVec2((phi+math.Pi)/(2*math.Pi), theta/math.Pi),
		Material: s.Material,
		Surface:  s,
	}, true
}

// LocalBBox returns the object-space bounds [-r, r]³
func (s *Sphere) LocalBBox() core.AABB {
	r := core.Splat(s.Radius)
	return core.NewAABB(r.Negate(), r)
}

// WorldBBox returns the local bounds mapped to world space
func (s *Sphere) WorldBBox() core.AABB {
	return s.Transform.Box(s.LocalBBox())
}
