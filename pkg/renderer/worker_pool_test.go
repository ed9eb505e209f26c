package renderer

import (
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

func TestWorkerPool_RendersEveryRowOnce(t *testing.T) {
	camera := NewCamera(CameraConfig{AspectRatio: 1, ImageWidth: 16})
	rt := NewRaytracer(geometry.NewShapeList(), camera, nil)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 2, MaxDepth: 5, Seed: 3})
	frame := core.NewFrame(camera.Width(), camera.Height())

	pool := NewWorkerPool(rt, frame, 4)
	if pool.GetNumWorkers() != 4 {
		t.Fatalf("Expected 4 workers, got %d", pool.GetNumWorkers())
	}
	pool.Start()
	for j := 0; j < frame.Height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}

	seen := make(map[int]int)
	for n := 0; n < frame.Height; n++ {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		seen[result.Row]++
		if result.Stats.TotalPixels != frame.Width || result.Stats.TotalSamples != frame.Width*2 {
			t.Errorf("Row %d has unexpected stats %+v", result.Row, result.Stats)
		}
	}
	pool.Stop()

	for j := 0; j < frame.Height; j++ {
		if seen[j] != 1 {
			t.Errorf("Row %d rendered %d times", j, seen[j])
		}
		if frame.At(0, j).Equals(core.Vec3{}) {
			t.Errorf("Row %d was never written", j)
		}
	}

	if _, ok := pool.GetResult(); ok {
		t.Error("Result queue should be closed after Stop")
	}
}

func TestNewWorkerPool_DefaultsToNumCPU(t *testing.T) {
	rt := NewRaytracer(geometry.NewShapeList(), NewCamera(DefaultCameraConfig()), nil)
	pool := NewWorkerPool(rt, core.NewFrame(4, 4), 0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.GetNumWorkers())
	}
}
