package material

import (
	"math"

	"github.com/df07/go-dirt/pkg/core"
)

// ConstantTexture returns the same color everywhere
type ConstantTexture struct {
	Color core.Vec3
}

// NewConstantTexture creates a solid color texture
func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

// Value returns the constant color
func (c *ConstantTexture) Value(hit *core.HitInfo) core.Vec3 {
	return c.Color
}

// CheckerTexture alternates two textures in a 3D checker pattern over world position
type CheckerTexture struct {
	Scale float64
	Even  core.Texture
	Odd   core.Texture
}

// NewCheckerTexture creates a new checker texture
func NewCheckerTexture(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: even, Odd: odd}
}

// Value picks Odd where sin(s·x)·sin(s·y)·sin(s·z) is negative, Even otherwise
func (c *CheckerTexture) Value(hit *core.HitInfo) core.Vec3 {
	p := hit.Point
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(hit)
	}
	return c.Even.Value(hit)
}
