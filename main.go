package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			return
		}
		log.SetFlags(0)
		log.Fatalf("Error: %v", err)
	}
}

// run parses args, renders the selected scene and writes the image.
// The image goes to stdout unless an output path is given; progress goes to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags config.Flags
	configPath := fs.String("config", "", "JSON render configuration file")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	fs.StringVar(&flags.Scene, "scene", "", "Scene to render: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&flags.Width, "width", 0, "Image width in pixels (default from scene)")
	fs.Float64Var(&flags.AspectRatio, "aspect", 0, "Image aspect ratio, width over height (default from scene)")
	fs.IntVar(&flags.SamplesPerPixel, "spp", 0, "Samples per pixel (default from scene)")
	fs.IntVar(&flags.MaxDepth, "depth", 0, "Maximum ray bounce depth (default from scene)")
	fs.IntVar(&flags.Workers, "workers", 0, "Rendering goroutines, -1 for one per CPU (default 1)")
	seed := fs.Int64("seed", 0, "Random seed (default from scene)")
	fs.StringVar(&flags.Format, "format", "", "Output format: ppm, png, webp or tga (default from -output extension, else ppm)")
	fs.StringVar(&flags.Output, "output", "", "Output file path, - for stdout")
	fs.Float64Var(&flags.Scale, "scale", 0, "Resize factor applied to png, webp and tga output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			flags.Seed = seed
		}
	})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyFlags(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var logger core.Logger = core.NewWriterLogger(stderr)
	if *quiet {
		logger = core.NopLogger{}
	}

	selectedScene, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	raytracer := renderer.NewRaytracer(selectedScene.World, selectedScene.NewCamera(), logger)
	raytracer.SetSamplingConfig(selectedScene.SamplingConfig)

	camera, sampling := raytracer.Camera(), raytracer.SamplingConfig()
	logger.Printf("Rendering %s scene at %dx%d, %d samples per pixel, max depth %d, seed %d\n",
		selectedScene.Name, camera.Width(), camera.Height(),
		sampling.SamplesPerPixel, sampling.MaxDepth, sampling.Seed)

	frame, stats := raytracer.RenderPass()
	logger.Printf("Render completed in %v (%d samples)\n", stats.Elapsed, stats.TotalSamples)

	format, err := cfg.ResolveFormat()
	if err != nil {
		return err
	}
	return writeImage(cfg, format, frame, stdout, logger)
}

// writeImage encodes the frame to stdout or to the configured file
func writeImage(cfg config.Config, format output.Format, frame *core.Frame, stdout io.Writer, logger core.Logger) error {
	if cfg.WritesToStdout() {
		return output.Encode(stdout, frame, format, cfg.Scale)
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := output.Encode(file, frame, format, cfg.Scale); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", cfg.Output)
	return file.Close()
}
