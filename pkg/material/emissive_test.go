package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-dirt/pkg/core"
)

func TestDiffuseLight_Emitted(t *testing.T) {
	emit := core.NewVec3(4, 3, 2)
	light := NewDiffuseLight(emit)
	hit := upHit(light)

	tests := []struct {
		name     string
		dir      core.Vec3
		expected core.Vec3
	}{
		{"Front side", core.NewVec3(0, -1, 0), emit},
		{"Front side oblique", core.NewVec3(1, -0.2, 0), emit},
		{"Perpendicular counts as front", core.NewVec3(1, 0, 0), emit},
		{"Back side", core.NewVec3(0, 1, 0), core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := light.Emitted(core.NewRay(core.NewVec3(0, 1, 0), tt.dir), hit)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDiffuseLight_DoesNotScatter(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(1, 1, 1))
	hit := upHit(light)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	if !light.IsEmissive() {
		t.Error("DiffuseLight should be emissive")
	}
	if _, ok := light.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, sampler); ok {
		t.Error("DiffuseLight should not scatter rays")
	}
	if _, ok := light.Sample(core.NewVec3(0, -1, 0), hit, sampler); ok {
		t.Error("DiffuseLight should not sample directions")
	}
}

func TestNonEmissiveMaterialsEmitBlack(t *testing.T) {
	materials := []core.Material{
		NewSolidLambertian(core.Splat(0.5)),
		NewMetal(NewConstantTexture(core.Splat(0.5)), 0),
		NewDielectric(1.5),
		NewPhong(NewConstantTexture(core.Splat(0.5)), 10),
	}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	for _, m := range materials {
		if m.IsEmissive() {
			t.Errorf("%T should not be emissive", m)
		}
		if e := m.Emitted(ray, upHit(m)); !e.IsZero() {
			t.Errorf("%T should emit black, got %v", m, e)
		}
	}
}
