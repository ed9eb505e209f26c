package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Config holds all render settings. Zero values are filled from the selected
// scene's defaults when the render is set up.
type Config struct {
	Scene           string  `json:"scene"`
	Width           int     `json:"width"`
	AspectRatio     float64 `json:"aspect_ratio"`
	SamplesPerPixel int     `json:"samples_per_pixel"`
	MaxDepth        int     `json:"max_depth"`
	Workers         int     `json:"workers"`
	Seed            *int64  `json:"seed"` // nil keeps the scene seed

	// Output
	Format string  `json:"format"` // ppm, png, webp or tga; inferred from Output when empty
	Output string  `json:"output"` // File path; empty or "-" writes to stdout
	Scale  float64 `json:"scale"`  // Resize factor for raster formats
}

// Flags holds command-line overrides. Zero values mean "not set"; negative
// values are kept so that Validate can reject them.
type Flags struct {
	Scene           string
	Width           int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Seed            *int64 // nil when -seed was not given
	Format          string
	Output          string
	Scale           float64
}

// Default returns the configuration used when nothing else is given
func Default() Config {
	return Config{
		Scene:   "default",
		Workers: 1,
	}
}

// Load reads a JSON config file on top of the defaults.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyFlags overrides config values with any CLI flags that were set
func (c *Config) ApplyFlags(flags Flags) {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Width != 0 {
		c.Width = flags.Width
	}
	if flags.AspectRatio != 0 {
		c.AspectRatio = flags.AspectRatio
	}
	if flags.SamplesPerPixel != 0 {
		c.SamplesPerPixel = flags.SamplesPerPixel
	}
	if flags.MaxDepth != 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.Workers != 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != nil {
		c.Seed = flags.Seed
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Scale != 0 {
		c.Scale = flags.Scale
	}
}

// ResolveFormat returns the output format, inferring it from the output path
// when no format was given. Stdout defaults to PPM.
func (c *Config) ResolveFormat() (output.Format, error) {
	if c.Format != "" {
		return output.ParseFormat(c.Format)
	}
	if c.WritesToStdout() {
		return output.FormatPPM, nil
	}
	return output.FormatFromPath(c.Output)
}

// WritesToStdout reports whether the image goes to standard output
func (c *Config) WritesToStdout() bool {
	return c.Output == "" || c.Output == "-"
}

// Validate rejects settings no render can use
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("config: width must be positive, got %d", c.Width)
	}
	if c.AspectRatio < 0 {
		return fmt.Errorf("config: aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if c.SamplesPerPixel < 0 {
		return fmt.Errorf("config: samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Scale < 0 {
		return fmt.Errorf("config: scale must be positive, got %g", c.Scale)
	}
	if _, err := c.ResolveFormat(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BuildScene looks up the configured scene and applies the camera and
// sampling overrides to it
func (c *Config) BuildScene() (*scene.Scene, error) {
	s, err := scene.Lookup(c.Scene, renderer.CameraConfig{
		AspectRatio: c.AspectRatio,
		ImageWidth:  c.Width,
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		NumWorkers:      c.Workers,
	})
	if c.Seed != nil {
		s.SamplingConfig.Seed = *c.Seed
	}
	return s, nil
}
