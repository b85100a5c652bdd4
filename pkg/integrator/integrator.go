package integrator

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Radiance estimates the radiance arriving along ray.
	// depth is the number of bounces already taken; camera rays start at 0.
	Radiance(ray core.Ray, scene *scene.Scene, depth int, sampler core.Sampler) core.Vec3
}
