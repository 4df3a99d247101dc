package material

import (
	"math"

	"github.com/df07/go-dirt/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	base
	Albedo core.Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewSolidLambertian creates a lambertian material with a constant color
func NewSolidLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewConstantTexture(albedo)}
}

// Scatter picks a direction around the shading normal: normal plus a random
// point on the unit sphere
func (l *Lambertian) Scatter(ray core.Ray, hit *core.HitInfo, sampler core.Sampler) (core.ScatterResult, bool) {
	onSphere := core.RandomInUnitSphere(sampler).Normalize()
	direction := hit.SN.Add(onSphere).Normalize()
	// Degenerate when the sample lands exactly opposite the normal
	if direction.IsZero() {
		direction = hit.SN
	}

	return core.ScatterResult{
		Attenuation: l.Albedo.Value(hit),
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}

// Sample draws a cosine-weighted direction about the geometric normal
func (l *Lambertian) Sample(dirIn core.Vec3, hit *core.HitInfo, sampler core.Sampler) (core.ScatterRecord, bool) {
	onb := core.NewONB(hit.GN)
	direction := onb.LocalVec(core.RandomCosineDirection(sampler.Get2D()))

	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(hit),
		Scattered:   direction,
		IsSpecular:  false,
	}, true
}

// Eval returns albedo·cos/π, zero below the surface
func (l *Lambertian) Eval(dirIn, scattered core.Vec3, hit *core.HitInfo) core.Vec3 {
	cosTheta := math.Max(0, scattered.Dot(hit.GN))
	return l.Albedo.Value(hit).Multiply(cosTheta / math.Pi)
}

// PDF returns cos/π for cosine-weighted hemisphere sampling
func (l *Lambertian) PDF(dirIn, scattered core.Vec3, hit *core.HitInfo) float64 {
	return math.Max(0, scattered.Dot(hit.GN)) / math.Pi
}
