package scene

import (
	"github.com/df07/go-dirt/pkg/core"
	"github.com/df07/go-dirt/pkg/geometry"
	"github.com/df07/go-dirt/pkg/integrator"
	"github.com/df07/go-dirt/pkg/material"
	"github.com/df07/go-dirt/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box scene with quad walls and a ceiling light
func NewCornellScene(logger core.Logger) *Scene {
	s := NewScene(logger)
	s.Camera = renderer.NewCamera(renderer.CameraConfig{
		// Camera outside the box looking in
		Transform: core.LookAt(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), core.NewVec3(0, 1, 0)),
		VFov:      40.0,
		Width:     400,
		Height:    400,
	})
	s.BackgroundColor = core.Vec3{}
	s.Integrator = integrator.NewPathTracerMaterials(40)
	s.SamplingConfig.SamplesPerPixel = 150

	white := material.NewSolidLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewSolidLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewSolidLambertian(core.NewVec3(0.12, 0.45, 0.15))
	s.Materials["white"] = white
	s.Materials["red"] = red
	s.Materials["green"] = green

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0
	half := boxSize / 2
	xAxis := core.NewVec3(1, 0, 0)
	yAxis := core.NewVec3(0, 1, 0)

	// Quads face +Z before placement; every wall is rotated to face into the box
	wall := func(mat core.Material, rotation core.Transform, center core.Vec3) *geometry.Mesh {
		return geometry.NewQuad(boxSize, boxSize, mat, rotation.Then(core.Translate(center)))
	}

	floor := wall(white, core.Rotate(xAxis, -90), core.NewVec3(half, 0, half))
	ceiling := wall(white, core.Rotate(xAxis, 90), core.NewVec3(half, boxSize, half))
	backWall := wall(white, core.Rotate(yAxis, 180), core.NewVec3(half, half, boxSize))
	leftWall := wall(red, core.Rotate(yAxis, 90), core.NewVec3(0, half, half))
	rightWall := wall(green, core.Rotate(yAxis, -90), core.NewVec3(boxSize, half, half))
	for _, m := range []*geometry.Mesh{floor, ceiling, backWall, leftWall, rightWall} {
		s.AddMesh(m)
	}

	// Ceiling light (smaller quad slightly below the ceiling, facing down)
	light := material.NewDiffuseLight(core.NewVec3(15.0, 15.0, 15.0))
	s.Materials["light"] = light
	s.AddMesh(geometry.NewQuad(130, 130, light,
		core.Rotate(xAxis, 90).Then(core.Translate(core.NewVec3(half, boxSize-1, half)))))

	// Left sphere (smaller, metallic)
	metal := material.NewMetal(material.NewConstantTexture(core.NewVec3(0.8, 0.8, 0.9)), 0.0)
	s.Add(geometry.NewSphere(82.5, metal, core.Translate(core.NewVec3(185, 82.5, 169))))

	// Right sphere (larger, glass)
	glass := material.NewDielectric(1.5)
	s.Add(geometry.NewSphere(90, glass, core.Translate(core.NewVec3(370, 90, 351))))

	return s
}
