package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates a small diffuse sphere resting on a large ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("default", cameraOverrides)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, ground)

	return s
}

// NewMaterialsScene shows one sphere of each material kind: a diffuse center,
// a hollow glass sphere on the left and fuzzy gold metal on the right
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("materials", cameraOverrides)

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.50)
	materialBubble := material.NewDielectric(1.00 / 1.50) // air inside glass
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.AddSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, materialGround)
	s.AddSphere(core.NewVec3(0.0, 0.0, -1.2), 0.5, materialCenter)
	s.AddSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, materialLeft)
	s.AddSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.4, materialBubble)
	s.AddSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, materialRight)

	return s
}

// NewMetalsScene pairs a sharp and a rough metal around a diffuse sphere
func NewMetalsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("metals", cameraOverrides)

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	materialLeft := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.AddSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, materialGround)
	s.AddSphere(core.NewVec3(0.0, 0.0, -1.0), 0.5, materialCenter)
	s.AddSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, materialLeft)
	s.AddSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, materialRight)

	return s
}

// NewEmptyScene has no surfaces, so every ray sees the sky gradient
func NewEmptyScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	return newScene("empty", cameraOverrides)
}
