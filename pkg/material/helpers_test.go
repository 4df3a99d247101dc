package material

import (
	"github.com/df07/go-dirt/pkg/core"
)

// upHit returns a hit at the origin on a surface facing +Y
func upHit(m core.Material) *core.HitInfo {
	n := core.NewVec3(0, 1, 0)
	return &core.HitInfo{
		T:        1,
		Point:    core.NewVec3(0, 0, 0),
		GN:       n,
		SN:       n,
		UV:       core.NewVec2(0.5, 0.5),
		Material: m,
	}
}

// fixedSampler returns the same values on every call
type fixedSampler struct {
	v float64
}

func (f fixedSampler) Get1D() float64 { return f.v }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.v, f.v)
}
func (f fixedSampler) Get3D() core.Vec3 {
	return core.Splat(f.v)
}
