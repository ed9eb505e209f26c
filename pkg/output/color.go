package output

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// intensity keeps quantized channels below 256
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma converts a linear channel value to gamma 2 space
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// quantize maps a linear channel value to [0, 255]
func quantize(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(LinearToGamma(linear)))
}

// ToRGB8 converts a linear color to gamma corrected, clamped 8-bit channels
func ToRGB8(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}

// ToImage converts a frame of linear colors into an 8-bit image
func ToImage(frame *core.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for j := 0; j < frame.Height; j++ {
		for i := 0; i < frame.Width; i++ {
			img.SetRGBA(i, j, ToRGB8(frame.At(i, j)))
		}
	}
	return img
}
