package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/scene"
)

// createTestRaytracer renders a small version of the simple scene
func createTestRaytracer(t *testing.T, seed int64, numWorkers int) *Raytracer {
	t.Helper()
	s, err := scene.NewSimpleScene()
	if err != nil {
		t.Fatalf("NewSimpleScene failed: %v", err)
	}
	s.SamplingConfig.Width = 16
	s.SamplingConfig.Height = 12
	s.SamplingConfig.SamplesPerPixel = 4
	s.SamplingConfig.Seed = seed

	rt, err := NewRaytracer(s, integrator.NewPathTracingIntegrator(s.SamplingConfig), numWorkers, core.NopLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	return rt
}

func TestRaytracer_IdenticalAcrossWorkerCounts(t *testing.T) {
	reference, _, err := createTestRaytracer(t, 42, 1).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, workers := range []int{2, 3, 8} {
		fb, _, err := createTestRaytracer(t, 42, workers).Render(context.Background())
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		for i := range fb.Pixels {
			if fb.Pixels[i] != reference.Pixels[i] {
				t.Fatalf("%d workers: pixel %d differs: %v vs %v", workers, i, fb.Pixels[i], reference.Pixels[i])
			}
		}
	}
}

func TestRaytracer_SeedChangesNoise(t *testing.T) {
	a, _, err := createTestRaytracer(t, 1, 2).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	b, _, err := createTestRaytracer(t, 2, 2).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	differ := false
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("Expected different seeds to produce different images")
	}
}

func TestRaytracer_PixelsInRangeAndLit(t *testing.T) {
	fb, stats, err := createTestRaytracer(t, 7, 0).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lit := 0
	for i, p := range fb.Pixels {
		if !p.IsFinite() || p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 || p.Z < 0 || p.Z > 1 {
			t.Fatalf("Pixel %d out of range: %v", i, p)
		}
		if p.MaxComponent() > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Expected some lit pixels")
	}

	if stats.TotalPixels != 16*12 || stats.Rows != 12 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	// 2x2 cells with one sample each
	if stats.TotalSamples != 16*12*4 || stats.AverageSamples() != 4 {
		t.Errorf("Expected 4 samples per pixel, got %d total", stats.TotalSamples)
	}
	if stats.NumWorkers <= 0 {
		t.Errorf("Expected worker count to default to CPU count, got %d", stats.NumWorkers)
	}
}

func TestRaytracer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fb, _, err := createTestRaytracer(t, 1, 2).Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if fb != nil {
		t.Error("Expected no framebuffer from a cancelled render")
	}
}

func TestNewRaytracer_RejectsInvalidScene(t *testing.T) {
	s := scene.NewScene(
		scene.CameraConfig{Origin: core.NewVec3(0, 0, 10), Direction: core.NewVec3(0, 0, -1)},
		scene.SamplingConfig{Width: 4, Height: 4, SamplesPerPixel: 1},
	)

	if _, err := NewRaytracer(s, integrator.NewPathTracingIntegrator(s.SamplingConfig), 1, nil); err == nil {
		t.Error("Expected error for a scene without primitives")
	}
}
