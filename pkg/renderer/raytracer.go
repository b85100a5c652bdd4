package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/scene"
)

// Raytracer renders a scene into a framebuffer, one row per worker task
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	numWorkers int         // 0 = use CPU count
	logger     core.Logger // Logger for rendering output
}

// NewRaytracer validates the scene and prepares its camera
func NewRaytracer(s *scene.Scene, integratorInst integrator.Integrator, numWorkers int, logger core.Logger) (*Raytracer, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	config := s.SamplingConfig
	camera, err := NewCamera(s.CameraConfig, config.Width, config.Height, config.SubPixels)
	if err != nil {
		return nil, fmt.Errorf("invalid camera: %w", err)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      s,
		camera:     camera,
		integrator: integratorInst,
		numWorkers: numWorkers,
		logger:     logger,
	}, nil
}

// Render renders every row and returns the filled framebuffer. Cancelling ctx
// stops the render before the next row starts; rows already running finish.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	config := rt.scene.SamplingConfig
	fb := NewFramebuffer(config.Width, config.Height)
	start := time.Now()

	pool := NewWorkerPool(NewRowRenderer(rt.scene, rt.camera, rt.integrator), config.Height, rt.numWorkers)
	pool.Start(ctx)
	defer pool.Stop()

	rt.logger.Printf("Rendering %dx%d at %d spp (using %d workers)...\n",
		config.Width, config.Height, config.SubPixels*config.SubPixels*config.SamplesPerCell(), pool.GetNumWorkers())

	for y := 0; y < config.Height; y++ {
		pool.SubmitTask(RowTask{
			Row:    y,
			Pixels: fb.Row(y),
			Seed:   config.Seed ^ int64(y),
		})
	}

	stats := RenderStats{NumWorkers: pool.GetNumWorkers()}
	progressStep := max(1, config.Height/10)
	for i := 0; i < config.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, fmt.Errorf("row %d: %w", result.Row, result.Error)
		}
		stats.Add(result.Stats)

		if stats.Rows%progressStep == 0 || stats.Rows == config.Height {
			rt.logger.Printf("Rendered %d/%d rows (%.1f%%)\n",
				stats.Rows, config.Height, 100*float64(stats.Rows)/float64(config.Height))
		}
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("Render completed in %v (%.1f samples/pixel)\n", stats.Duration, stats.AverageSamples())
	return fb, stats, nil
}

// GetCamera returns the camera used for primary rays
func (rt *Raytracer) GetCamera() *Camera {
	return rt.camera
}
