package renderer

import (
	"math"
	"runtime"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// shadowAcneEpsilon is the smallest accepted hit distance, so that a
// scattered ray does not re-hit the surface it starts on
const shadowAcneEpsilon = 0.001

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   `json:"samples_per_pixel"` // Number of rays per pixel
	MaxDepth        int   `json:"max_depth"`         // Maximum ray bounce depth
	NumWorkers      int   `json:"workers"`           // Goroutines rendering rows; 1 renders serially, < 0 uses every CPU
	Seed            int64 `json:"seed"`              // Base seed for the per-row samplers
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      1,
		Seed:            42,
	}
}

// MergeSamplingConfig merges override values into a base config, only replacing non-zero values
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Raytracer handles the rendering process
type Raytracer struct {
	world  geometry.Shape
	camera *Camera
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger disables progress output.
func NewRaytracer(world geometry.Shape, camera *Camera, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:  world,
		camera: camera,
		config: DefaultSamplingConfig(),
		logger: logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// MergeSamplingConfig updates only the non-zero fields of the sampling configuration
func (rt *Raytracer) MergeSamplingConfig(override SamplingConfig) {
	rt.config = MergeSamplingConfig(rt.config, override)
}

// SamplingConfig returns the active sampling configuration
func (rt *Raytracer) SamplingConfig() SamplingConfig {
	return rt.config
}

// Camera returns the camera rays are generated from
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// BackgroundColor returns the sky gradient seen by a ray that escapes the scene
func BackgroundColor(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Unit()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)
	return white.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}

// RayColor returns the color carried back along r, following at most depth bounces
func (rt *Raytracer) RayColor(r core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	black := core.Vec3{X: 0, Y: 0, Z: 0}
	attenuation := white
	hitRange := core.NewInterval(shadowAcneEpsilon, math.Inf(1))

	for ; depth > 0; depth-- {
		hit, isHit := rt.world.Hit(r, hitRange)
		if !isHit {
			return attenuation.MultiplyVec(BackgroundColor(r))
		}

		scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
		if !didScatter {
			return black // Material absorbed the ray
		}

		attenuation = attenuation.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
	}

	// Bounce limit exceeded, no more light is gathered
	return black
}

// SamplePixel averages SamplesPerPixel jittered samples of pixel i, j
func (rt *Raytracer) SamplePixel(i, j int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		ps.AddSample(rt.RayColor(ray, rt.config.MaxDepth, sampler))
	}
	return ps
}

// RenderRow renders scanline j into frame using sampler for every random draw
func (rt *Raytracer) RenderRow(j int, frame *core.Frame, sampler core.Sampler) RenderStats {
	stats := RenderStats{TotalPixels: rt.camera.Width()}

	for i := 0; i < rt.camera.Width(); i++ {
		ps := rt.SamplePixel(i, j, sampler)
		stats.TotalSamples += ps.SampleCount
		frame.Set(i, j, ps.GetColor())
	}

	return stats
}

// rowSampler returns the sampler for scanline j. Every row owns its random
// stream so the image does not depend on how rows are scheduled.
func (rt *Raytracer) rowSampler(j int) core.Sampler {
	return core.NewSeededSampler(rt.config.Seed + int64(j))
}

// RenderPass renders every pixel and returns the averaged linear colors
func (rt *Raytracer) RenderPass() (*core.Frame, RenderStats) {
	startTime := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	frame := core.NewFrame(width, height)

	workers := rt.config.NumWorkers
	if workers < 0 {
		workers = runtime.NumCPU()
	}

	var stats RenderStats
	if workers <= 1 {
		for j := 0; j < height; j++ {
			rt.logger.Printf("\rScanlines remaining: %d ", height-j)
			stats.merge(rt.RenderRow(j, frame, rt.rowSampler(j)))
		}
	} else {
		stats = rt.renderParallel(frame, workers)
	}
	rt.logger.Printf("\r Done. \n")

	stats.finalize(time.Since(startTime))
	return frame, stats
}

// renderParallel distributes rows over a worker pool
func (rt *Raytracer) renderParallel(frame *core.Frame, workers int) RenderStats {
	height := frame.Height
	pool := NewWorkerPool(rt, frame, workers)
	pool.Start()

	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}

	var stats RenderStats
	for done := 0; done < height; done++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		rt.logger.Printf("\rScanlines remaining: %d ", height-done)
		stats.merge(result.Stats)
	}

	pool.Stop()
	return stats
}
