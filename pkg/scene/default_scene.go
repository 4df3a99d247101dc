package scene

import (
	"fmt"

	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/geometry"
	"github.com/df07/go-dirt/pkg/integrator"
	"github.com/df07/go-dirt/pkg/material"
	"github.com/df07/go-dirt/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres of every material on a checkered ground
func NewDefaultScene(logger core.Logger) *Scene {
	s := NewScene(logger)
	s.Camera = renderer.NewCamera(renderer.CameraConfig{
		Transform: core.LookAt(core.NewVec3(0, 0.75, 2), core.NewVec3(0, 0.5, -1), core.NewVec3(0, 1, 0)),
		VFov:      40.0,
		Width:     400,
		Height:    225,
	})
	s.BackgroundColor = core.NewVec3(0.5, 0.7, 1.0) // blue sky
	s.Integrator = integrator.NewPathTracerMaterials(50)
	s.SamplingConfig.SamplesPerPixel = 64

	// Create materials
	checker := material.NewCheckerTexture(10,
		material.NewConstantTexture(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)),
		material.NewConstantTexture(core.NewVec3(0.9, 0.9, 0.9)))
	ground := material.NewLambertian(checker)
	lambertianBlue := material.NewSolidLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewSolidLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(material.NewConstantTexture(core.NewVec3(0.8, 0.8, 0.8)), 0.0)
	metalGold := material.NewMetal(material.NewConstantTexture(core.NewVec3(0.8, 0.6, 0.2)), 0.3)
	glass := material.NewDielectric(1.5)
	marble := material.NewLambertian(material.NewMarbleTexture(8,
		material.NewConstantTexture(core.NewVec3(0.2, 0.2, 0.25)),
		material.NewConstantTexture(core.NewVec3(0.9, 0.9, 0.85))))
	plastic := material.NewPhong(material.NewConstantTexture(core.NewVec3(0.9, 0.4, 0.1)), 40)

	// Glass coating over a red base
	coatedRed := material.NewBlend(lambertianRed, glass, 0.3)

	for name, m := range map[string]core.Material{
		"ground": ground, "blue": lambertianBlue, "silver": metalSilver, "gold": metalGold,
		"glass": glass, "marble": marble, "plastic": plastic, "coated_red": coatedRed,
	} {
		s.Materials[name] = m
	}

	sphere := func(center core.Vec3, radius float64, m core.Material) core.Surface {
		return geometry.NewSphere(radius, m, core.Translate(center))
	}

	// Large ground quad instead of an infinite plane
	s.AddMesh(geometry.NewQuad(10000, 10000, ground, core.Rotate(core.NewVec3(1, 0, 0), -90)))

	s.Add(
		sphere(core.NewVec3(0, 0.5, -1), 0.5, coatedRed),
		sphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		sphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		sphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass),
		sphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, marble),
		sphere(core.NewVec3(0, 0.15, -0.35), 0.15, plastic),
		sphere(core.NewVec3(0, 0.1, -1.75), 0.1, lambertianBlue),
	)

	return s
}

// PresetNames lists the scenes NewPreset can build
var PresetNames = []string{"default", "cornell"}

// NewPreset builds a built-in scene by name
func NewPreset(name string, logger core.Logger) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(logger), nil
	case "cornell":
		return NewCornellScene(logger), nil
	default:
		return nil, fmt.Errorf("unknown scene preset %q", name)
	}
}
