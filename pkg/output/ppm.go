package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// PPMWriter streams an image in the plain-text P3 format
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a buffered PPM writer. Call Flush when done.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the P3 magic, the image size and the max channel value
func (p *PPMWriter) WriteHeader(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WriteColor writes one pixel as a line of three channel values
func (p *PPMWriter) WriteColor(c core.Vec3) error {
	rgb := ToRGB8(c)
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", rgb.R, rgb.G, rgb.B)
	return err
}

// Flush writes any buffered data to the underlying writer
func (p *PPMWriter) Flush() error {
	return p.w.Flush()
}

// EncodePPM writes the whole frame in raster order, top row first
func EncodePPM(w io.Writer, frame *core.Frame) error {
	p := NewPPMWriter(w)
	if err := p.WriteHeader(frame.Width, frame.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for _, c := range frame.Pixels {
		if err := p.WriteColor(c); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}
	return p.Flush()
}
