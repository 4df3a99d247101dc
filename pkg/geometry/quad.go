package geometry

import (
	"github.com/df07/go-dirt/pkg/core"
)

// QuadData returns a width×height rectangle centered at the origin in the XY
// plane, facing +Z, as two triangles
func QuadData(width, height float64) MeshData {
	w, h := width/2, height/2
	n := core.NewVec3(0, 0, 1)
	return MeshData{
		Vertices: []core.Vec3{
			core.NewVec3(-w, -h, 0),
			core.NewVec3(w, -h, 0),
			core.NewVec3(w, h, 0),
			core.NewVec3(-w, h, 0),
		},
		Normals: []core.Vec3{n, n, n, n},
		UVs: []core.Vec2{
			core.NewVec2(0, 0),
			core.NewVec2(1, 0),
			core.NewVec2(1, 1),
			core.NewVec2(0, 1),
		},
		Faces: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

// NewQuad creates a quad mesh placed by transform
func NewQuad(width, height float64, material core.Material, transform core.Transform) *Mesh {
	return NewMesh(QuadData(width, height), material, transform)
}
