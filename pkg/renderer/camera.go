package renderer

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

const (
	viewportHeight = 2.0
	focalLength    = 1.0
)

// CameraConfig contains the parameters used to build a camera
type CameraConfig struct {
	AspectRatio float64 `json:"aspect_ratio"` // Ratio of image width over height
	ImageWidth  int     `json:"image_width"`  // Rendered image width in pixel count
}

// DefaultCameraConfig returns a 16:9 camera 400 pixels wide
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio: 16.0 / 9.0,
		ImageWidth:  400,
	}
}

// MergeCameraConfig merges override values into a base config, only replacing non-zero values
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ImageWidth != 0 {
		result.ImageWidth = override.ImageWidth
	}
	return result
}

// Camera generates rays for rendering. It sits at the origin looking down -Z.
type Camera struct {
	config      CameraConfig
	imageHeight int
	center      core.Vec3 // Camera center
	pixel00Loc  core.Vec3 // Location of pixel 0, 0
	pixelDeltaU core.Vec3 // Offset to pixel to the right
	pixelDeltaV core.Vec3 // Offset to pixel below
}

// NewCamera creates a camera and derives its viewport geometry
func NewCamera(config CameraConfig) *Camera {
	imageHeight := max(1, int(float64(config.ImageWidth)/config.AspectRatio))

	// Use the real image ratio, not the requested one, for the viewport width
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(imageHeight))
	center := core.NewVec3(0, 0, 0)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	pixelDeltaU := viewportU.Divide(float64(config.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(core.NewVec3(0, 0, focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		imageHeight: imageHeight,
		center:      center,
		pixel00Loc:  pixel00Loc,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.ImageWidth
}

// Height returns the derived image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Center returns the camera's eye point
func (c *Camera) Center() core.Vec3 {
	return c.center
}

// GetRay returns a ray through a random point in the square around pixel i, j
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offsetX := sampler.Get1D() - 0.5
	offsetY := sampler.Get1D() - 0.5
	return c.rayThrough(float64(i)+offsetX, float64(j)+offsetY)
}

// PixelCenterRay returns the un-jittered ray through the center of pixel i, j
func (c *Camera) PixelCenterRay(i, j int) core.Ray {
	return c.rayThrough(float64(i), float64(j))
}

func (c *Camera) rayThrough(x, y float64) core.Ray {
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(x)).
		Add(c.pixelDeltaV.Multiply(y))
	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}
