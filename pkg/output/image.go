package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Format identifies an output image encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// Formats lists every supported output format
func Formats() []Format {
	return []Format{FormatPPM, FormatPNG, FormatWebP, FormatTGA}
}

// ParseFormat converts a format name to a Format
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("no file extension in %q", path)
	}
	return ParseFormat(ext)
}

// Scale resizes img by factor using Catmull-Rom filtering
func Scale(img image.Image, factor float64) *image.RGBA {
	b := img.Bounds()
	width := max(1, int(float64(b.Dx())*factor))
	height := max(1, int(float64(b.Dy())*factor))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes frame to w in the requested format. scale resizes raster
// formats; it is ignored for PPM, whose stream always matches the render size.
func Encode(w io.Writer, frame *core.Frame, format Format, scale float64) error {
	if format == FormatPPM {
		return EncodePPM(w, frame)
	}

	var img image.Image = ToImage(frame)
	if scale > 0 && scale != 1 {
		img = Scale(img, scale)
	}

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
