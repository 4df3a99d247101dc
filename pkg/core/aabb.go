package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns an inverted box that any Enclose call will replace
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Splat(inf), Max: Splat(-inf)}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := EmptyAABB()
	for _, point := range points {
		box = box.Enclose(point)
	}
	return box
}

// Enclose returns the box grown to contain point
func (aabb AABB) Enclose(point Vec3) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, point.X),
			Y: math.Min(aabb.Min.Y, point.Y),
			Z: math.Min(aabb.Min.Z, point.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, point.X),
			Y: math.Max(aabb.Max.Y, point.Y),
			Z: math.Max(aabb.Max.Z, point.Z),
		},
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return aabb.Enclose(other.Min).Enclose(other.Max)
}

// Diagonal returns the extent of the AABB along each axis
func (aabb AABB) Diagonal() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := range corners {
		corners[i] = Vec3{
			X: pick(i&1 != 0, aabb.Max.X, aabb.Min.X),
			Y: pick(i&2 != 0, aabb.Max.Y, aabb.Min.Y),
			Z: pick(i&4 != 0, aabb.Max.Z, aabb.Min.Z),
		}
	}
	return corners
}

// PadDegenerate expands every axis whose extent is below threshold by pad on both sides,
// so planar boxes keep a non-zero volume
func (aabb AABB) PadDegenerate(threshold, pad float64) AABB {
	diag := aabb.Diagonal()
	for axis := 0; axis < 3; axis++ {
		if diag.Axis(axis) < threshold {
			aabb.Min = aabb.Min.WithAxis(axis, aabb.Min.Axis(axis)-pad)
			aabb.Max = aabb.Max.WithAxis(axis, aabb.Max.Axis(axis)+pad)
		}
	}
	return aabb
}

// Contains reports whether point lies inside the box (inclusive)
func (aabb AABB) Contains(point Vec3) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Y >= aabb.Min.Y && point.Y <= aabb.Max.Y &&
		point.Z >= aabb.Min.Z && point.Z <= aabb.Max.Z
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
