package material

import (
	"github.com/df07/go-dirt/pkg/core"
)

// DefaultIOR is the index of refraction used when none is given (glass)
const DefaultIOR = 1.5

// Dielectric represents a transparent material like glass
type Dielectric struct {
	base
	IOR float64 // Relative index of refraction
}

// NewDielectric creates a new dielectric material
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// Scatter reflects or refracts, choosing reflection with the Schlick
// probability. Total internal reflection always reflects.
func (d *Dielectric) Scatter(ray core.Ray, hit *core.HitInfo, sampler core.Sampler) (core.ScatterResult, bool) {
	var outwardNormal core.Vec3
	var niOverNt, cosine float64

	dn := ray.Direction.Dot(hit.SN)
	length := ray.Direction.Length()
	if dn > 0 {
		// Leaving the material
		outwardNormal = hit.SN.Negate()
		niOverNt = d.IOR
		cosine = d.IOR * dn / length
	} else {
		outwardNormal = hit.SN
		niOverNt = 1.0 / d.IOR
		cosine = -dn / length
	}

	reflected := core.Reflect(ray.Direction, outwardNormal)
	reflectProb := 1.0
	refracted, ok := core.Refract(ray.Direction, outwardNormal, niOverNt)
	if ok {
		reflectProb = core.Schlick(cosine, d.IOR)
	}

	direction := refracted
	if sampler.Get1D() < reflectProb {
		direction = reflected
	}

	return core.ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}
