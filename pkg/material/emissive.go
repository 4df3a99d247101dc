package material

import (
	"github.com/df07/go-dirt/pkg/core"
)

// DiffuseLight emits a constant color from the side its shading normal faces
type DiffuseLight struct {
	base
	Emit core.Vec3 // Emitted light color/intensity
}

// NewDiffuseLight creates a new light-emitting material
func NewDiffuseLight(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Emitted returns Emit for rays arriving against the shading normal, black otherwise
func (l *DiffuseLight) Emitted(ray core.Ray, hit *core.HitInfo) core.Vec3 {
	if ray.Direction.Dot(hit.SN) > 0 {
		return core.Vec3{}
	}
	return l.Emit
}

// IsEmissive returns true
func (l *DiffuseLight) IsEmissive() bool {
	return true
}
