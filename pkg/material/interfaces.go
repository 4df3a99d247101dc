package material

import (
	"github.com/df07/go-dirt/pkg/core"
)

// base supplies the do-nothing behavior of core.Material. Concrete materials
// embed it and override only the capabilities they have.
type base struct{}

// Emitted returns black
func (base) Emitted(ray core.Ray, hit *core.HitInfo) core.Vec3 {
	return core.Vec3{}
}

// IsEmissive returns false
func (base) IsEmissive() bool {
	return false
}

// Eval returns black
func (base) Eval(dirIn, scattered core.Vec3, hit *core.HitInfo) core.Vec3 {
	return core.Vec3{}
}

// PDF returns zero
func (base) PDF(dirIn, scattered core.Vec3, hit *core.HitInfo) float64 {
	return 0
}

// Sample is not supported
func (base) Sample(dirIn core.Vec3, hit *core.HitInfo, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// Scatter is not supported
func (base) Scatter(ray core.Ray, hit *core.HitInfo, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// DefaultAlbedo is the grey used by DefaultMaterial
const DefaultAlbedo = 0.8

var defaultMaterial = NewLambertian(NewConstantTexture(core.Splat(DefaultAlbedo)))

// DefaultMaterial returns the shared material for surfaces that do not name one
func DefaultMaterial() core.Material {
	return defaultMaterial
}
