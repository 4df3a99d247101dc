package material

import (
	"github.com/df07/go-dirt/pkg/core"
)

// Blend picks one of two materials at random on every Scatter call
type Blend struct {
	base
	A      core.Material
	B      core.Material
	Amount float64 // weight of B
}

// NewBlend creates a new blend material
func NewBlend(a, b core.Material, amount float64) *Blend {
	return &Blend{A: a, B: b, Amount: amount}
}

// Weight returns the probability of scattering with B: the amount scaled by
// the sum of the sRGB luminance coefficients
func (m *Blend) Weight() float64 {
	return m.Amount*0.212671 + m.Amount*0.715160 + m.Amount*0.072169
}

// Scatter delegates to B with probability Weight, otherwise to A
func (m *Blend) Scatter(ray core.Ray, hit *core.HitInfo, sampler core.Sampler) (core.ScatterResult, bool) {
	if sampler.Get1D() < m.Weight() {
		return m.B.Scatter(ray, hit, sampler)
	}
	return m.A.Scatter(ray, hit, sampler)
}
