package material

import (
	"math"

	"github.com/df07/go-dirt/pkg/core"
)

// Metal represents a metallic material with configurable roughness
type Metal struct {
	base
	Albedo    core.Texture // Reflectance
	Roughness float64      // 0.0 = perfect mirror, 1.0 = very rough
}

// NewMetal creates a new metal material. Roughness is clamped to [0, 1].
func NewMetal(albedo core.Texture, roughness float64) *Metal {
	return &Metal{
		Albedo:    albedo,
		Roughness: math.Max(0.0, math.Min(roughness, 1.0)),
	}
}

// Scatter reflects the ray about the shading normal, perturbed by roughness.
// Fails when the perturbed direction points below the surface.
func (m *Metal) Scatter(ray core.Ray, hit *core.HitInfo, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := core.Reflect(ray.Direction.Normalize(), hit.SN)

	if m.Roughness > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Roughness))
	}
	if reflected.Dot(hit.SN) < 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Attenuation: m.Albedo.Value(hit),
		Scattered:   core.NewRay(hit.Point, reflected.Normalize()),
	}, true
}
