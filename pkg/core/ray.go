package core

import "math"

// RayEpsilon is the default lower bound of a ray's parametric interval.
// It keeps secondary rays from re-hitting the surface they start on.
const RayEpsilon = 1e-4

// Ray represents a ray with an origin, a direction and a valid interval [TMin, TMax]
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a new ray valid on [RayEpsilon, +Inf)
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: RayEpsilon, TMax: math.Inf(1)}
}

// NewRaySegment creates a ray restricted to [tMin, tMax]
func NewRaySegment(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// InRange reports whether t lies inside the ray's valid interval
func (r Ray) InRange(t float64) bool {
	return t >= r.TMin && t <= r.TMax
}
