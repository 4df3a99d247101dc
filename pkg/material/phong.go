package material

import (
	"math"

	"github.com/df07/go-dirt/pkg/core"
)

// Phong is a glossy lobe around the mirror direction.
// Eval is defined as albedo·PDF, so Eval/PDF is exactly the albedo.
type Phong struct {
	base
	Albedo   core.Texture
	Exponent float64
}

// NewPhong creates a new phong material
func NewPhong(albedo core.Texture, exponent float64) *Phong {
	return &Phong{Albedo: albedo, Exponent: exponent}
}

func (p *Phong) mirror(dirIn core.Vec3, hit *core.HitInfo) core.Vec3 {
	return core.Reflect(dirIn, hit.GN).Normalize()
}

// PDF returns (n+1)/(2π)·cos^n of the angle between scattered and the mirror direction
func (p *Phong) PDF(dirIn, scattered core.Vec3, hit *core.HitInfo) float64 {
	cosine := math.Max(0, scattered.Normalize().Dot(p.mirror(dirIn, hit)))
	return (p.Exponent + 1) / (2 * math.Pi) * math.Pow(cosine, p.Exponent)
}

// Eval returns albedo·PDF
func (p *Phong) Eval(dirIn, scattered core.Vec3, hit *core.HitInfo) core.Vec3 {
	return p.Albedo.Value(hit).Multiply(p.PDF(dirIn, scattered, hit))
}

// Sample draws a cosine-power direction about the mirror direction. Samples
// below the geometric surface are rejected.
func (p *Phong) Sample(dirIn core.Vec3, hit *core.HitInfo, sampler core.Sampler) (core.ScatterRecord, bool) {
	onb := core.NewONB(p.mirror(dirIn, hit))
	direction := onb.LocalVec(core.RandomCosinePowerDirection(p.Exponent, sampler.Get2D()))

	rec := core.ScatterRecord{
		Attenuation: p.Albedo.Value(hit),
		Scattered:   direction,
		IsSpecular:  false,
	}
	if hit.GN.Dot(direction) < 0 {
		return rec, false
	}
	return rec, true
}
