package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center  core.Vec3
	Radius  float64
	surface material.Surface
}

// NewSphere creates a new sphere, rejecting degenerate geometry and invalid surfaces
func NewSphere(radius float64, center, emission, albedo core.Vec3, mat material.Material) (*Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("sphere radius must be finite and > 0, got %g", radius)
	}
	if !center.IsFinite() {
		return nil, fmt.Errorf("sphere center must be finite, got %+v", center)
	}
	surface := material.Surface{Emission: emission, Albedo: albedo, Material: mat}
	if err := surface.Validate(); err != nil {
		return nil, fmt.Errorf("sphere at %+v: %w", center, err)
	}
	return &Sphere{Center: center, Radius: radius, surface: surface}, nil
}

// Intersect solves |o + t*d - c|^2 = r^2 for a unit direction d and returns the
// smallest root above HitEpsilon
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	oc := s.Center.Subtract(ray.Origin)
	b := oc.Dot(ray.Direction)
	det := b*b - oc.Dot(oc) + s.Radius*s.Radius
	if det < 0 {
		return 0, false
	}
	det = math.Sqrt(det)

	if t := b - det; t > HitEpsilon {
		return t, true
	}
	if t := b + det; t > HitEpsilon {
		return t, true
	}
	return 0, false
}

// NormalAt returns the outward unit normal at point
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Surface returns the sphere's shading attributes
func (s *Sphere) Surface() *material.Surface {
	return &s.surface
}
