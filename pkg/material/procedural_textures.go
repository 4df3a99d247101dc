package material

import (
	"math"

	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/noise"
)

// MarbleTexture blends veins and base colors with sine bands disturbed by turbulence
type MarbleTexture struct {
	Scale float64
	Veins core.Texture
	Base  core.Texture
	Noise *noise.Perlin
}

// NewMarbleTexture creates a marble texture driven by the process-wide noise tables
func NewMarbleTexture(scale float64, veins, base core.Texture) *MarbleTexture {
	return &MarbleTexture{Scale: scale, Veins: veins, Base: base, Noise: noise.Default()}
}

// Value returns veins + (base - veins)·0.5·(1 + sin(s·z) + 19·turb(s·p))
func (m *MarbleTexture) Value(hit *core.HitInfo) core.Vec3 {
	veins := m.Veins.Value(hit)
	b := m.Base.Value(hit)
	p := hit.Point
	turb := m.Noise.Turbulence(p.Multiply(m.Scale), noise.DefaultTurbulenceDepth)
	t := 0.5 * (1 + math.Sin(m.Scale*p.Z) + 19*turb)
	return veins.Add(b.Subtract(veins).Multiply(t))
}
