package material

import (
	"math"
	"testing"

	"github.com/df07/go-dirt/pkg/core"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestPhong_EvalEqualsAlbedoTimesPDF(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.5, 0.1)
	phong := NewPhong(NewConstantTexture(albedo), 20)
	hit := upHit(phong)
	dirIn := core.NewVec3(1, -1, 0).Normalize()
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 200; i++ {
		scattered := core.SampleOnUnitSphere(sampler.Get2D())
		pdf := phong.PDF(dirIn, scattered, hit)
		eval := phong.Eval(dirIn, scattered, hit)
		if !eval.ApproxEquals(albedo.Multiply(pdf), 1e-12) {
			t.Fatalf("Eval %v != albedo·PDF %v", eval, albedo.Multiply(pdf))
		}
	}
}

func TestPhong_PDFPeaksAtMirror(t *testing.T) {
	exponent := 10.0
	phong := NewPhong(NewConstantTexture(core.Splat(1)), exponent)
	hit := upHit(phong)
	dirIn := core.NewVec3(1, -1, 0).Normalize()
	mirror := core.NewVec3(1, 1, 0).Normalize()

	peak := phong.PDF(dirIn, mirror, hit)
	if !scalar.EqualWithinAbs(peak, (exponent+1)/(2*math.Pi), 1e-12) {
		t.Errorf("Expected peak PDF %f, got %f", (exponent+1)/(2*math.Pi), peak)
	}
	if off := phong.PDF(dirIn, core.NewVec3(0, 1, 0), hit); off >= peak {
		t.Errorf("PDF off the mirror direction (%f) should be below peak (%f)", off, peak)
	}
	if opposite := phong.PDF(dirIn, mirror.Negate(), hit); opposite != 0 {
		t.Errorf("Expected zero PDF opposite the mirror direction, got %f", opposite)
	}
}

func TestPhong_Sample(t *testing.T) {
	phong := NewPhong(NewConstantTexture(core.Splat(1)), 50)
	hit := upHit(phong)
	dirIn := core.NewVec3(1, -1, 0).Normalize()
	mirror := core.NewVec3(1, 1, 0).Normalize()
	sampler := core.NewSeededSampler(42)

	accepted := 0
	for i := 0; i < 1000; i++ {
		rec, ok := phong.Sample(dirIn, hit, sampler)
		if !ok {
			continue
		}
		accepted++
		if rec.Scattered.Dot(hit.GN) < 0 {
			t.Fatalf("Accepted sample below surface: %v", rec.Scattered)
		}
		if rec.Scattered.Dot(mirror) < 0.5 {
			t.Errorf("High exponent sample %v far from mirror direction", rec.Scattered)
		}
		if phong.PDF(dirIn, rec.Scattered, hit) <= 0 {
			t.Errorf("Sampled direction must have positive PDF")
		}
	}
	if accepted == 0 {
		t.Fatal("Expected accepted samples")
	}
}

func TestPhong_SampleRejectsBelowSurface(t *testing.T) {
	// Grazing incidence puts the lobe half below the surface
	phong := NewPhong(NewConstantTexture(core.Splat(1)), 1)
	hit := upHit(phong)
	dirIn := core.NewVec3(1, -0.01, 0).Normalize()
	sampler := core.NewSeededSampler(3)

	rejected := 0
	for i := 0; i < 500; i++ {
		if _, ok := phong.Sample(dirIn, hit, sampler); !ok {
			rejected++
		}
	}
	if rejected == 0 {
		t.Error("Expected some samples below the geometric normal to be rejected")
	}
}

func TestPhong_NoScatter(t *testing.T) {
	phong := NewPhong(NewConstantTexture(core.Splat(1)), 5)
	if _, ok := phong.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), upHit(phong), fixedSampler{0.5}); ok {
		t.Error("Phong only supports the Sample protocol")
	}
}
