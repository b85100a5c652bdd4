package renderer

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/scene"
)

// RowRenderer renders single image rows using an integrator
type RowRenderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
}

// NewRowRenderer creates a new row renderer with the given scene, camera and integrator
func NewRowRenderer(s *scene.Scene, camera *Camera, integratorInst integrator.Integrator) *RowRenderer {
	return &RowRenderer{
		scene:      s,
		camera:     camera,
		integrator: integratorInst,
	}
}

// RenderRow fills pixels with camera row y. Each sub-pixel cell averages its
// samples and is clamped to [0,1] before contributing to the pixel.
func (rr *RowRenderer) RenderRow(y int, pixels []core.Vec3, sampler core.Sampler) RenderStats {
	config := rr.scene.SamplingConfig
	samplesPerCell := config.SamplesPerCell()
	cellWeight := 1.0 / float64(config.SubPixels*config.SubPixels)
	sampleWeight := 1.0 / float64(samplesPerCell)

	stats := RenderStats{TotalPixels: len(pixels), Rows: 1}

	for x := range pixels {
		var pixel core.Vec3
		for sy := 0; sy < config.SubPixels; sy++ {
			for sx := 0; sx < config.SubPixels; sx++ {
				var cell core.Vec3
				for s := 0; s < samplesPerCell; s++ {
					ray := rr.camera.GetRay(x, y, sx, sy, sampler)
					cell = cell.Add(rr.integrator.Radiance(ray, rr.scene, 0, sampler).Multiply(sampleWeight))
				}
				pixel = pixel.Add(cell.Clamp(0, 1).Multiply(cellWeight))
				stats.TotalSamples += samplesPerCell
			}
		}
		pixels[x] = pixel
	}

	return stats
}
