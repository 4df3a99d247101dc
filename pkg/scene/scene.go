package scene

import (
	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/geometry"
	"github.com/df07/go-dirt/pkg/integrator"
	"github.com/df07/go-dirt/pkg/renderer"
)

// RecursiveMaxDepth bounds RecursiveColor
const RecursiveMaxDepth = 64

// DefaultBackground is used when a scene does not set one
var DefaultBackground = core.Splat(0.2)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera          *renderer.Camera
	Surfaces        []core.Surface           // Intersected in order; the closest hit wins
	Materials       map[string]core.Material // Named materials, shared by reference
	BackgroundColor core.Vec3                // Radiance of rays that escape
	Integrator      integrator.Integrator    // nil selects RecursiveColor
	SamplingConfig  renderer.SamplingConfig

	baseDir string // Directory relative file names are resolved against
	logger  core.Logger
}

// NewScene creates an empty scene with default camera, background and sampling
func NewScene(logger core.Logger) *Scene {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Scene{
		Camera:          renderer.NewCamera(renderer.DefaultCameraConfig()),
		Materials:       make(map[string]core.Material),
		BackgroundColor: DefaultBackground,
		SamplingConfig:  renderer.DefaultSamplingConfig(),
		logger:          logger,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// Background returns the color of rays that miss all geometry
func (s *Scene) Background() core.Vec3 {
	return s.BackgroundColor
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...core.Surface) {
	s.Surfaces = append(s.Surfaces, surfaces...)
}

// AddMesh appends one surface per mesh triangle
func (s *Scene) AddMesh(mesh *geometry.Mesh) {
	s.Surfaces = append(s.Surfaces, mesh.Triangles()...)
}

// Intersect tests every surface and returns the closest hit
func (s *Scene) Intersect(ray core.Ray) (*core.HitInfo, bool) {
	var closest *core.HitInfo
	for _, surface := range s.Surfaces {
		if hit, ok := surface.Intersect(ray); ok {
			closest = hit
			ray.TMax = hit.T
		}
	}
	return closest, closest != nil
}

// RecursiveColor traces ray using the materials' Scatter protocol only
func (s *Scene) RecursiveColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	hit, ok := s.Intersect(ray)
	if !ok {
		return s.BackgroundColor
	}

	emitted := hit.Material.Emitted(ray, hit)
	if depth < RecursiveMaxDepth {
		if scatter, scattered := hit.Material.Scatter(ray, hit, sampler); scattered {
			return emitted.Add(scatter.Attenuation.MultiplyVec(s.RecursiveColor(scatter.Scattered, depth+1, sampler)))
		}
	}
	return emitted
}

// RayColor estimates the radiance along a primary ray with the configured integrator
func (s *Scene) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	if s.Integrator != nil {
		return s.Integrator.Li(s, ray, 0, sampler)
	}
	return s.RecursiveColor(ray, 0, sampler)
}

// GetPrimitiveCount returns the number of intersectable primitives
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Surfaces)
}

// WorldBounds returns the box enclosing every surface
func (s *Scene) WorldBounds() core.AABB {
	bounds := core.EmptyAABB()
	for _, surface := range s.Surfaces {
		bounds = bounds.Union(surface.WorldBBox())
	}
	return bounds
}
