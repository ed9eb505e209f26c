package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// constantSampler always returns the same sample
type constantSampler float64

func (c constantSampler) Get1D() float64 {
	return float64(c)
}

func TestNewCamera_ImageHeight(t *testing.T) {
	tests := []struct {
		name           string
		config         CameraConfig
		expectedHeight int
	}{
		{"16:9 at 400 wide", CameraConfig{AspectRatio: 16.0 / 9.0, ImageWidth: 400}, 225},
		{"Square", CameraConfig{AspectRatio: 1, ImageWidth: 64}, 64},
		{"Height is floored", CameraConfig{AspectRatio: 3, ImageWidth: 100}, 33},
		{"Height is at least one", CameraConfig{AspectRatio: 16.0 / 9.0, ImageWidth: 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(tt.config)
			if camera.Height() != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, camera.Height())
			}
			if camera.Width() != tt.config.ImageWidth {
				t.Errorf("Expected width %d, got %d", tt.config.ImageWidth, camera.Width())
			}
		})
	}
}

func TestCamera_PixelCenterRays(t *testing.T) {
	camera := NewCamera(CameraConfig{AspectRatio: 2, ImageWidth: 200})
	// 200x100 image, viewport 4 x 2, each pixel 0.02 on a side

	tests := []struct {
		name     string
		i, j     int
		expected core.Vec3
	}{
		{"Top left", 0, 0, core.NewVec3(-2+0.01, 1-0.01, -1)},
		{"Bottom right", 199, 99, core.NewVec3(2-0.01, -1+0.01, -1)},
		{"Center", 100, 50, core.NewVec3(0.01, -0.01, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.PixelCenterRay(tt.i, tt.j)
			if !ray.Origin.Equals(camera.Center()) {
				t.Errorf("Ray should start at the camera center, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_GetRayJitter(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	// A sample of 0.5 in both axes lands exactly on the pixel center
	centered := camera.GetRay(10, 20, constantSampler(0.5))
	expected := camera.PixelCenterRay(10, 20)
	if centered.Direction.Subtract(expected.Direction).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected.Direction, centered.Direction)
	}

	// Every jittered ray stays inside the pixel square
	sampler := core.NewSeededSampler(42)
	du := camera.pixelDeltaU.Length()
	dv := camera.pixelDeltaV.Length()
	for n := 0; n < 1000; n++ {
		ray := camera.GetRay(10, 20, sampler)
		offset := ray.Direction.Subtract(expected.Direction)
		if math.Abs(offset.X) > du/2+1e-12 || math.Abs(offset.Y) > dv/2+1e-12 || offset.Z != 0 {
			t.Fatalf("Jittered ray offset %v escapes the pixel", offset)
		}
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{ImageWidth: 800})

	if merged.ImageWidth != 800 {
		t.Errorf("Expected width override 800, got %d", merged.ImageWidth)
	}
	if merged.AspectRatio != base.AspectRatio {
		t.Errorf("Expected aspect ratio to be kept, got %f", merged.AspectRatio)
	}
}
