package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.ShapeList // Objects in the scene
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// Constructor builds a scene, applying optional camera overrides
type Constructor func(cameraOverrides ...renderer.CameraConfig) *Scene

var registry = map[string]Constructor{
	"default":    NewDefaultScene,
	"materials":  NewMaterialsScene,
	"metals":     NewMetalsScene,
	"spheregrid": NewSphereGridScene,
	"empty":      NewEmptyScene,
}

// Names returns the names of all built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named scene
func Lookup(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	constructor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return constructor(cameraOverrides...), nil
}

// NewCamera creates the camera described by the scene's camera config
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// newScene creates an empty scene with the standard camera and sampling
// defaults, applying any camera overrides
func newScene(name string, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Name:           name,
		World:          geometry.NewShapeList(),
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}
