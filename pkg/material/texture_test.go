package material

import (
	"math"
	"testing"

	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/noise"
)

func hitAt(p core.Vec3, uv core.Vec2) *core.HitInfo {
	return &core.HitInfo{Point: p, UV: uv, GN: core.NewVec3(0, 1, 0), SN: core.NewVec3(0, 1, 0)}
}

func TestConstantTexture(t *testing.T) {
	c := NewConstantTexture(core.NewVec3(0.1, 0.2, 0.3))
	if got := c.Value(hitAt(core.NewVec3(5, 6, 7), core.NewVec2(0.3, 0.9))); !got.Equals(core.NewVec3(0.1, 0.2, 0.3)) {
		t.Errorf("Expected constant color, got %v", got)
	}
}

func TestCheckerTexture(t *testing.T) {
	even := NewConstantTexture(core.NewVec3(1, 1, 1))
	odd := NewConstantTexture(core.NewVec3(0, 0, 0))
	checker := NewCheckerTexture(math.Pi, even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"All positive sines", core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(1, 1, 1)},
		{"One negative sine", core.NewVec3(1.5, 0.5, 0.5), core.NewVec3(0, 0, 0)},
		{"Two negative sines", core.NewVec3(1.5, 1.5, 0.5), core.NewVec3(1, 1, 1)},
		{"Three negative sines", core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Value(hitAt(tt.point, core.Vec2{})); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImageTexture(t *testing.T) {
	// 2x2 image, row 0 is the top
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	}
	tex := NewImageTexture(2, 2, pixels)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"Bottom left", core.NewVec2(0.25, 0.25), core.NewVec3(0, 0, 1)},
		{"Bottom right", core.NewVec2(0.75, 0.25), core.NewVec3(1, 1, 1)},
		{"Top left", core.NewVec2(0.25, 0.75), core.NewVec3(1, 0, 0)},
		{"Top right", core.NewVec2(0.75, 0.75), core.NewVec3(0, 1, 0)},
		{"u=1 clamps to last column", core.NewVec2(1, 0.75), core.NewVec3(0, 1, 0)},
		{"v=0 clamps to last row", core.NewVec2(0.25, 0), core.NewVec3(0, 0, 1)},
		{"Beyond range clamps, no wrap", core.NewVec2(3.25, -2), core.NewVec3(1, 1, 1)},
		{"Negative clamps to first column", core.NewVec2(-1.5, 0.75), core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Value(hitAt(core.Vec3{}, tt.uv)); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMarbleTexture(t *testing.T) {
	veins := NewConstantTexture(core.NewVec3(0.1, 0.1, 0.1))
	base := NewConstantTexture(core.NewVec3(0.9, 0.9, 0.9))
	perlin := noise.NewSeededPerlin(42)
	marble := &MarbleTexture{Scale: 4, Veins: veins, Base: base, Noise: perlin}

	p := core.NewVec3(0.3, 0.7, 1.1)
	turb := perlin.Turbulence(p.Multiply(4), noise.DefaultTurbulenceDepth)
	tt := 0.5 * (1 + math.Sin(4*p.Z) + 19*turb)
	expected := core.Splat(0.1 + 0.8*tt)

	got := marble.Value(hitAt(p, core.Vec2{}))
	if !got.ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// Same seed, same colors
	other := &MarbleTexture{Scale: 4, Veins: veins, Base: base, Noise: noise.NewSeededPerlin(42)}
	if !other.Value(hitAt(p, core.Vec2{})).Equals(got) {
		t.Error("Marble with the same noise seed should be reproducible")
	}
}

func TestNewMarbleTexture_UsesDefaultNoise(t *testing.T) {
	m := NewMarbleTexture(1, NewConstantTexture(core.Vec3{}), NewConstantTexture(core.Splat(1)))
	if m.Noise != noise.Default() {
		t.Error("Expected marble to use the process-wide noise")
	}
}
