package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/geometry"
	"github.com/df07/go-dirt/pkg/material"
)

// listScene is a brute-force scene over a slice of surfaces
type listScene struct {
	surfaces   []core.Surface
	background core.Vec3
}

func (s *listScene) Intersect(ray core.Ray) (*core.HitInfo, bool) {
	var closest *core.HitInfo
	for _, surface := range s.surfaces {
		if hit, ok := surface.Intersect(ray); ok {
			closest = hit
			ray.TMax = hit.T
		}
	}
	return closest, closest != nil
}

func (s *listScene) Background() core.Vec3 {
	return s.background
}

func sphereAt(center core.Vec3, radius float64, m core.Material) core.Surface {
	return geometry.NewSphere(radius, m, core.Translate(center))
}

func TestNormalIntegrator(t *testing.T) {
	bg := core.NewVec3(0.1, 0.2, 0.3)
	scene := &listScene{
		surfaces:   []core.Surface{sphereAt(core.NewVec3(0, 0, -3), 1, material.DefaultMaterial())},
		background: bg,
	}
	integrator := NewNormalIntegrator()
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name     string
		ray      core.Ray
		expected core.Vec3
	}{
		{"Hit facing camera", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), core.NewVec3(0, 0, 1)},
		{"Miss", core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), bg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := integrator.Li(scene, tt.ray, 0, sampler)
			if !got.ApproxEquals(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNormalIntegrator_AbsoluteValue(t *testing.T) {
	scene := &listScene{surfaces: []core.Surface{sphereAt(core.Vec3{}, 1, material.DefaultMaterial())}}
	// Hit the -X side; normal is (-1,0,0)
	got := NewNormalIntegrator().Li(scene, core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)), 0, core.NewSeededSampler(1))
	if !got.ApproxEquals(core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected |normal| = (1,0,0), got %v", got)
	}
}

func TestAmbientOcclusion(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	lambertian := material.NewSolidLambertian(core.Splat(0.5))
	floor := geometry.NewQuad(100, 100, lambertian, core.Rotate(core.NewVec3(1, 0, 0), -90))

	t.Run("Open floor is unoccluded", func(t *testing.T) {
		scene := &listScene{surfaces: floor.Triangles(), background: core.Splat(0.3)}
		ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
		sampler := core.NewSeededSampler(42)
		for i := 0; i < 50; i++ {
			if got := NewAmbientOcclusion().Li(scene, ray, 0, sampler); !got.Equals(white) {
				t.Fatalf("Expected white, got %v", got)
			}
		}
	})

	t.Run("Enclosed point is occluded", func(t *testing.T) {
		// Camera inside a large sphere looking at a floor: every shadow ray hits the sphere
		shell := sphereAt(core.Vec3{}, 10, lambertian)
		surfaces := append(floor.Triangles(), shell)
		scene := &listScene{surfaces: surfaces, background: core.Splat(0.3)}
		ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
		sampler := core.NewSeededSampler(42)
		for i := 0; i < 50; i++ {
			if got := NewAmbientOcclusion().Li(scene, ray, 0, sampler); !got.IsZero() {
				t.Fatalf("Expected black, got %v", got)
			}
		}
	})

	t.Run("Miss returns background", func(t *testing.T) {
		scene := &listScene{background: core.Splat(0.3)}
		got := NewAmbientOcclusion().Li(scene, core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), 0, core.NewSeededSampler(1))
		if !got.Equals(core.Splat(0.3)) {
			t.Errorf("Expected background, got %v", got)
		}
	})

	t.Run("Material without sampling is unoccluded", func(t *testing.T) {
		metal := material.NewMetal(material.NewConstantTexture(core.Splat(1)), 0)
		scene := &listScene{surfaces: []core.Surface{sphereAt(core.NewVec3(0, 0, -3), 1, metal)}}
		got := NewAmbientOcclusion().Li(scene, core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, core.NewSeededSampler(1))
		if !got.Equals(white) {
			t.Errorf("Expected white, got %v", got)
		}
	})
}

func TestPathTracer_DirectHitReturnsEmission(t *testing.T) {
	emit := core.NewVec3(5, 4, 3)
	light := material.NewDiffuseLight(emit)
	scene := &listScene{
		surfaces:   []core.Surface{sphereAt(core.NewVec3(0, 0, -3), 1, light)},
		background: core.Splat(0.5),
	}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	for _, maxDepth := range []int{0, 1, 8} {
		got := NewPathTracerMaterials(maxDepth).Li(scene, ray, 0, core.NewSeededSampler(42))
		if !got.Equals(emit) {
			t.Errorf("maxDepth=%d: expected emission %v, got %v", maxDepth, emit, got)
		}
	}
}

func TestPathTracer_DepthLimitReturnsEmissionOnly(t *testing.T) {
	// A Lambertian surface that would otherwise pick up background light
	scene := &listScene{
		surfaces:   []core.Surface{sphereAt(core.NewVec3(0, 0, -3), 1, material.NewSolidLambertian(core.Splat(0.5)))},
		background: core.NewVec3(1, 1, 1),
	}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	pt := NewPathTracerMaterials(4)
	if got := pt.Li(scene, ray, 4, core.NewSeededSampler(42)); !got.IsZero() {
		t.Errorf("Expected black (no emission) at depth == MaxDepth, got %v", got)
	}

	// With depth to spare the sphere reflects the white background
	if got := pt.Li(scene, ray, 0, core.NewSeededSampler(42)); got.IsZero() {
		t.Error("Expected non-zero radiance below the depth limit")
	}
}

func TestPathTracer_MissReturnsBackground(t *testing.T) {
	bg := core.NewVec3(0.2, 0.4, 0.8)
	scene := &listScene{background: bg}
	got := NewPathTracerMaterials(5).Li(scene, core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, core.NewSeededSampler(1))
	if !got.Equals(bg) {
		t.Errorf("Expected background %v, got %v", bg, got)
	}
}

func TestPathTracer_LambertianUnderUniformSky(t *testing.T) {
	// An open floor under a uniform white sky: every sampled bounce escapes, and
	// Eval/PDF equals the albedo, so each estimate is exactly the albedo
	albedo := core.NewVec3(0.7, 0.5, 0.3)
	floor := geometry.NewQuad(1000, 1000, material.NewSolidLambertian(albedo), core.Rotate(core.NewVec3(1, 0, 0), -90))
	scene := &listScene{surfaces: floor.Triangles(), background: core.NewVec3(1, 1, 1)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.1, -1, 0.1))
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		got := NewPathTracerMaterials(5).Li(scene, ray, 0, sampler)
		if !got.ApproxEquals(albedo, 1e-9) {
			t.Fatalf("Expected %v, got %v", albedo, got)
		}
	}
}

func TestPathTracer_LegacyScatterAddsEmission(t *testing.T) {
	// Mirror sphere in front of the camera reflecting straight back into the sky
	albedo := core.NewVec3(0.9, 0.8, 0.7)
	mirror := material.NewMetal(material.NewConstantTexture(albedo), 0)
	scene := &listScene{
		surfaces:   []core.Surface{sphereAt(core.NewVec3(0, 0, -3), 1, mirror)},
		background: core.NewVec3(0.5, 0.5, 0.5),
	}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	got := NewPathTracerMaterials(3).Li(scene, ray, 0, core.NewSeededSampler(1))
	expected := albedo.MultiplyVec(core.NewVec3(0.5, 0.5, 0.5))
	if !got.ApproxEquals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

// zeroPDF samples a direction but reports no density for it
type zeroPDF struct {
	material.Lambertian
}

func (z *zeroPDF) PDF(dirIn, scattered core.Vec3, hit *core.HitInfo) float64 {
	return 0
}

func TestPathTracer_ZeroPDFIsBlack(t *testing.T) {
	m := &zeroPDF{Lambertian: *material.NewSolidLambertian(core.Splat(1))}
	scene := &listScene{
		surfaces:   []core.Surface{sphereAt(core.NewVec3(0, 0, -3), 1, m)},
		background: core.NewVec3(1, 1, 1),
	}
	got := NewPathTracerMaterials(3).Li(scene, core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, core.NewSeededSampler(1))
	if !got.IsZero() {
		t.Errorf("Expected black for zero pdf, got %v", got)
	}
	if math.IsNaN(got.X) {
		t.Error("Zero pdf must not produce NaN")
	}
}
