package integrator

import (
	"github.com/df07/go-dirt/pkg/core"
)

// PathTracerMaterials implements unidirectional path tracing driven purely by
// material sampling. Recursion stops at MaxDepth; there is no light sampling
// and no Russian roulette.
type PathTracerMaterials struct {
	MaxDepth int
}

// NewPathTracerMaterials creates a new path tracer with the given bounce limit
func NewPathTracerMaterials(maxDepth int) *PathTracerMaterials {
	return &PathTracerMaterials{MaxDepth: maxDepth}
}

// Li computes the radiance along ray
func (pt *PathTracerMaterials) Li(scene Scene, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	hit, ok := scene.Intersect(ray)
	if !ok {
		return scene.Background()
	}

	mat := hit.Material
	emitted := mat.Emitted(ray, hit)
	if depth >= pt.MaxDepth {
		return emitted
	}

	// Importance-sampled bounce. Emission is not added here: the recursive
	// call picks up the emission of whatever it hits next.
	if rec, sampled := mat.Sample(ray.Direction, hit, sampler); sampled {
		pdf := mat.PDF(ray.Direction, rec.Scattered, hit)
		if pdf <= 0 {
			return core.Vec3{}
		}
		eval := mat.Eval(ray.Direction, rec.Scattered, hit)
		incoming := pt.Li(scene, core.NewRay(hit.Point, rec.Scattered), depth+1, sampler)
		return incoming.MultiplyVec(eval).Multiply(1 / pdf)
	}

	// Legacy single-call scatter
	if scatter, scattered := mat.Scatter(ray, hit, sampler); scattered {
		incoming := pt.Li(scene, scatter.Scattered, depth+1, sampler)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	return emitted
}
