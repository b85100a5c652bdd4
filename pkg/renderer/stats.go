package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of radiance samples taken
	Rows         int           // Rows completed
	NumWorkers   int           // Workers used
	Duration     time.Duration // Wall time of the render
}

// Add merges the counters of a finished row
func (rs *RenderStats) Add(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.Rows += other.Rows
}

// AverageSamples returns the mean number of radiance samples per pixel
func (rs RenderStats) AverageSamples() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalSamples) / float64(rs.TotalPixels)
}
