package geometry

import (
	"fmt"

	"github.com/df07/go-dirt/pkg/core"
)

// Degenerate triangle boxes get at least this much extent on every axis
const (
	bboxDegenerateThreshold = 1e-4
	bboxPad                 = 5e-5
	determinantEpsilon      = 1e-12
)

// Mesh is an indexed triangle mesh. V and N are stored in world space; the
// transform is kept to recover local-space bounds.
type Mesh struct {
	V         []core.Vec3
	N         []core.Vec3 // optional, one per vertex
	UV        []core.Vec2 // optional, one per vertex
	F         [][3]int
	Material  core.Material
	Transform core.Transform
}

// MeshData is raw mesh content in object space, as produced by loaders
type MeshData struct {
	Vertices []core.Vec3
	Normals  []core.Vec3
	UVs      []core.Vec2
	Faces    [][3]int
}

// NewMesh bakes the object-space data into world space. Panics on index
// buffers that do not match the vertex data.
func NewMesh(data MeshData, material core.Material, transform core.Transform) *Mesh {
	if len(data.Normals) != 0 && len(data.Normals) != len(data.Vertices) {
		panic(fmt.Sprintf("mesh has %d normals for %d vertices", len(data.Normals), len(data.Vertices)))
	}
	if len(data.UVs) != 0 && len(data.UVs) != len(data.Vertices) {
		panic(fmt.Sprintf("mesh has %d uvs for %d vertices", len(data.UVs), len(data.Vertices)))
	}
	for i, f := range data.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(data.Vertices) {
				panic(fmt.Sprintf("face %d index %d out of bounds", i, idx))
			}
		}
	}

	m := &Mesh{
		V:         make([]core.Vec3, len(data.Vertices)),
		F:         data.Faces,
		UV:        data.UVs,
		Material:  material,
		Transform: transform,
	}
	for i, v := range data.Vertices {
		m.V[i] = transform.Point(v)
	}
	if len(data.Normals) > 0 {
		m.N = make([]core.Vec3, len(data.Normals))
		for i, n := range data.Normals {
			m.N[i] = transform.Normal(n).Normalize()
		}
	}
	return m
}

// Triangles returns one surface per face
func (m *Mesh) Triangles() []core.Surface {
	surfaces := make([]core.Surface, len(m.F))
	for i := range m.F {
		surfaces[i] = &Triangle{mesh: m, face: i}
	}
	return surfaces
}

// TriangleCount returns the number of faces
func (m *Mesh) TriangleCount() int {
	return len(m.F)
}

// Triangle is a single face of a Mesh
type Triangle struct {
	mesh *Mesh
	face int
}

// NewTriangle creates a single-triangle mesh from world-space vertices
func NewTriangle(p0, p1, p2 core.Vec3, material core.Material) *Triangle {
	m := NewMesh(MeshData{
		Vertices: []core.Vec3{p0, p1, p2},
		Faces:    [][3]int{{0, 1, 2}},
	}, material, core.IdentityTransform())
	return &Triangle{mesh: m, face: 0}
}

// Vertex returns world-space vertex i (0, 1 or 2) of the triangle
func (t *Triangle) Vertex(i int) core.Vec3 {
	return t.mesh.V[t.mesh.F[t.face][i]]
}

// Intersect tests if a ray intersects with the triangle
func (t *Triangle) Intersect(ray core.Ray) (*core.HitInfo, bool) {
	core.CountIntersectionTest()

	idx := t.mesh.F[t.face]
	p0, p1, p2 := t.mesh.V[idx[0]], t.mesh.V[idx[1]], t.mesh.V[idx[2]]

	e1 := p1.Subtract(p0)
	e2 := p2.Subtract(p0)
	s := ray.Origin.Subtract(p0)
	p := ray.Direction.Cross(e2)
	q := s.Cross(e1)

	det := p.Dot(e1)
	if det > -determinantEpsilon && det < determinantEpsilon {
		return nil, false
	}
	invDet := 1.0 / det

	u := p.Dot(s) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}
	v := q.Dot(ray.Direction) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}
	tHit := q.Dot(e2) * invDet
	if !ray.InRange(tHit) {
		return nil, false
	}

	gn := e1.Cross(e2).Normalize()
	w := 1 - u - v

	sn := gn
	if len(t.mesh.N) > 0 {
		n0, n1, n2 := t.mesh.N[idx[0]], t.mesh.N[idx[1]], t.mesh.N[idx[2]]
		sn = n0.Multiply(w).Add(n1.Multiply(u)).Add(n2.Multiply(v)).Normalize()
	}

	uv := core.NewVec2(u, v)
	if len(t.mesh.UV) > 0 {
		t0, t1, t2 := t.mesh.UV[idx[0]], t.mesh.UV[idx[1]], t.mesh.UV[idx[2]]
		uv = t0.Multiply(w).Add(t1.Multiply(u)).Add(t2.Multiply(v))
	}

	return &core.HitInfo{
		T:        tHit,
		Point:    ray.At(tHit),
		GN:       gn,
		SN:       sn,
		UV:       uv,
		Material: t.mesh.Material,
		Surface:  t,
	}, true
}

// LocalBBox bounds the triangle in the mesh's object space
func (t *Triangle) LocalBBox() core.AABB {
	inv := t.mesh.Transform.Inverse()
	box := core.NewAABBFromPoints(inv.Point(t.Vertex(0)), inv.Point(t.Vertex(1)), inv.Point(t.Vertex(2)))
	return box.PadDegenerate(bboxDegenerateThreshold, bboxPad)
}

// WorldBBox bounds the triangle in world space
func (t *Triangle) WorldBBox() core.AABB {
	box := core.NewAABBFromPoints(t.Vertex(0), t.Vertex(1), t.Vertex(2))
	return box.PadDegenerate(bboxDegenerateThreshold, bboxPad)
}
