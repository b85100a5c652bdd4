package integrator

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
	"github.com/df07/go-smallpt/pkg/scene"
)

// PathTracingIntegrator implements unidirectional path tracing with implicit
// light hits only: emitters are found by bouncing into them.
type PathTracingIntegrator struct {
	config scene.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config.WithDefaults(),
	}
}

// Radiance computes the radiance for a single ray
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, s *scene.Scene, depth int, sampler core.Sampler) core.Vec3 {
	dist, index, isHit := s.Intersect(ray)
	if !isHit {
		return s.Background
	}

	primitive := s.Primitives[index]
	surface := primitive.Surface()
	point := ray.At(dist)
	normal := primitive.NormalAt(point)
	orientedNormal := normal
	if normal.Dot(ray.Direction) >= 0 {
		orientedNormal = normal.Negate()
	}

	depth++
	attenuation, terminate := pt.applyRussianRoulette(surface.Albedo, depth, sampler)
	if terminate {
		return surface.Emission
	}

	var incoming core.Vec3
	switch surface.Material.Kind {
	case material.KindSpecular:
		incoming = pt.calculateSpecular(ray, point, normal, s, depth, sampler)
	case material.KindRefractive:
		incoming = pt.calculateRefraction(ray, point, normal, orientedNormal, surface.Material.RefractiveIndex, s, depth, sampler)
	default:
		incoming = pt.calculateDiffuse(point, orientedNormal, s, depth, sampler)
	}

	return surface.Emission.Add(attenuation.MultiplyVec(incoming))
}

// applyRussianRoulette decides whether the path stops at this bounce and returns
// the albedo, rescaled by the survival probability when roulette was played
func (pt *PathTracingIntegrator) applyRussianRoulette(albedo core.Vec3, depth int, sampler core.Sampler) (core.Vec3, bool) {
	survival := albedo.MaxComponent()
	if survival <= 0 || depth > pt.config.MaxDepth {
		return albedo, true
	}
	if depth <= pt.config.RussianRouletteDepth {
		return albedo, false
	}
	if sampler.Get1D() >= survival {
		return albedo, true
	}
	return albedo.Multiply(1.0 / survival), false
}

// calculateDiffuse follows one cosine-weighted bounce around the oriented normal
func (pt *PathTracingIntegrator) calculateDiffuse(point, orientedNormal core.Vec3, s *scene.Scene, depth int, sampler core.Sampler) core.Vec3 {
	direction := core.SampleCosineHemisphere(orientedNormal, sampler.Get2D())
	return pt.Radiance(core.NewRay(point, direction), s, depth, sampler)
}

// calculateSpecular follows the mirror reflection
func (pt *PathTracingIntegrator) calculateSpecular(ray core.Ray, point, normal core.Vec3, s *scene.Scene, depth int, sampler core.Sampler) core.Vec3 {
	reflected := core.NewRay(point, material.Reflect(ray.Direction, normal))
	return pt.Radiance(reflected, s, depth, sampler)
}

// calculateRefraction handles dielectric boundaries. Shallow bounces trace both
// branches weighted by Fresnel reflectance; deeper bounces pick one branch with
// probability .25 + .5*Re and reweight it.
func (pt *PathTracingIntegrator) calculateRefraction(ray core.Ray, point, normal, orientedNormal core.Vec3, ior float64,
	s *scene.Scene, depth int, sampler core.Sampler) core.Vec3 {
	reflected := core.NewRay(point, material.Reflect(ray.Direction, normal))

	refraction, ok := material.Refract(ray.Direction, normal, orientedNormal, ior)
	if !ok {
		// Total internal reflection
		return pt.Radiance(reflected, s, depth, sampler)
	}
	transmitted := core.NewRay(point, refraction.Direction)

	if depth > pt.config.SplitDepth {
		reflectProbability := 0.25 + 0.5*refraction.Reflectance
		if sampler.Get1D() < reflectProbability {
			return pt.Radiance(reflected, s, depth, sampler).Multiply(refraction.Reflectance / reflectProbability)
		}
		return pt.Radiance(transmitted, s, depth, sampler).Multiply(refraction.Transmittance / (1 - reflectProbability))
	}

	reflectedColor := pt.Radiance(reflected, s, depth, sampler).Multiply(refraction.Reflectance)
	transmittedColor := pt.Radiance(transmitted, s, depth, sampler).Multiply(refraction.Transmittance)
	return reflectedColor.Add(transmittedColor)
}
