package integrator

import (
	"github.com/df07/go-dirt/pkg/core"
)

// Scene is the part of a scene an integrator needs. Defined here rather than
// importing the scene package, which itself depends on integrators.
type Scene interface {
	// Intersect returns the closest hit along ray within its interval
	Intersect(ray core.Ray) (*core.HitInfo, bool)
	// Background is the radiance returned for rays that escape
	Background() core.Vec3
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Li estimates the radiance arriving along ray. depth counts bounces from 0.
	Li(scene Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3
}

// NormalIntegrator visualizes geometric normals
type NormalIntegrator struct{}

// NewNormalIntegrator creates a new normal integrator
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{}
}

// Li returns |GN| componentwise on a hit, the background otherwise
func (n *NormalIntegrator) Li(scene Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	hit, ok := scene.Intersect(ray)
	if !ok {
		return scene.Background()
	}
	return hit.GN.Abs()
}

// AmbientOcclusion casts one material-sampled shadow ray per hit
type AmbientOcclusion struct{}

// NewAmbientOcclusion creates a new ambient occlusion integrator
func NewAmbientOcclusion() *AmbientOcclusion {
	return &AmbientOcclusion{}
}

// Li returns black when the sampled shadow ray is blocked, white when it escapes,
// and the background when the camera ray misses
func (a *AmbientOcclusion) Li(scene Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	hit, ok := scene.Intersect(ray)
	if !ok {
		return scene.Background()
	}

	white := core.NewVec3(1, 1, 1)
	// Materials take the incoming direction as it travels, not negated
	rec, sampled := hit.Material.Sample(ray.Direction, hit, sampler)
	if !sampled || rec.Scattered.IsZero() {
		// Nothing to cast
		return white
	}

	if _, blocked := scene.Intersect(core.NewRay(hit.Point, rec.Scattered)); blocked {
		return core.Vec3{}
	}
	return white
}
