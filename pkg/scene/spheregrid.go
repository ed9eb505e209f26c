package scene

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB, clamped to the displayable range
	channel := core.NewInterval(0, 1)
	return core.NewVec3(
		channel.Clamp(+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_),
		channel.Clamp(-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_),
		channel.Clamp(-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_),
	)
}

// NewSphereGridScene lays out a grid of small spheres in front of the camera.
// Hue varies across columns; rows cycle through diffuse, metal and glass.
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("spheregrid", cameraOverrides)
	s.SamplingConfig.SamplesPerPixel = 50

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	const (
		columns = 7
		rows    = 3
		spacing = 0.5
		radius  = 0.2
	)
	glass := material.NewDielectric(1.5)

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := (float64(col) - float64(columns-1)/2) * spacing
			z := -1.5 - float64(row)*spacing
			center := core.NewVec3(x, radius-0.5, z)

			hue := float64(col) / float64(columns) * 360.0
			color := oklchToRGB(0.7, 0.15, hue)

			var mat material.Material
			switch row % 3 {
			case 0:
				mat = material.NewLambertian(color)
			case 1:
				mat = material.NewMetal(color, 0.1*float64(col%3))
			default:
				mat = glass
			}
			s.AddSphere(center, radius, mat)
		}
	}

	return s
}
