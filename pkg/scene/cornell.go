package scene

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
)

// NewCornellScene creates the classic Cornell box built from spheres: five huge
// spheres approximate the walls, one mirror ball, one glass ball and a large
// spherical light sunk into the ceiling.
func NewCornellScene() (*Scene, error) {
	camera := CameraConfig{
		Origin:       core.NewVec3(50, 52, 295.6),
		Direction:    core.NewVec3(0, -0.042612, -1),
		FieldOfView:  DefaultFieldOfView,
		LensDistance: DefaultLensDistance,
	}

	sampling := DefaultSamplingConfig()
	sampling.SamplesPerPixel = 40

	s := NewScene(camera, sampling)

	black := core.NewVec3(0, 0, 0)
	grey := core.NewVec3(0.75, 0.75, 0.75)
	// Just under 1 so Russian roulette can end paths trapped between mirror and glass
	nearWhite := core.NewVec3(0.999, 0.999, 0.999)

	err := s.AddSpheres([]SphereDescriptor{
		// Left wall (red)
		{Radius: 1e5, Center: core.NewVec3(1e5+1, 40.8, 81.6), Emission: black, Albedo: core.NewVec3(0.75, 0.25, 0.25), Material: material.Diffuse()},
		// Right wall (blue)
		{Radius: 1e5, Center: core.NewVec3(-1e5+99, 40.8, 81.6), Emission: black, Albedo: core.NewVec3(0.25, 0.25, 0.75), Material: material.Diffuse()},
		// Back wall
		{Radius: 1e5, Center: core.NewVec3(50, 40.8, 1e5), Emission: black, Albedo: grey, Material: material.Diffuse()},
		// Front wall behind the camera absorbs everything
		{Radius: 1e5, Center: core.NewVec3(50, 40.8, -1e5+170), Emission: black, Albedo: black, Material: material.Diffuse()},
		// Floor
		{Radius: 1e5, Center: core.NewVec3(50, 1e5, 81.6), Emission: black, Albedo: grey, Material: material.Diffuse()},
		// Ceiling
		{Radius: 1e5, Center: core.NewVec3(50, -1e5+81.6, 81.6), Emission: black, Albedo: grey, Material: material.Diffuse()},
		// Mirror ball
		{Radius: 16.5, Center: core.NewVec3(27, 16.5, 47), Emission: black, Albedo: nearWhite, Material: material.Specular()},
		// Glass ball
		{Radius: 16.5, Center: core.NewVec3(73, 16.5, 78), Emission: black, Albedo: nearWhite, Material: material.Refractive(material.DefaultRefractiveIndex)},
		// Light
		{Radius: 600, Center: core.NewVec3(50, 681.6-0.27, 81.6), Emission: core.NewVec3(12, 12, 12), Albedo: black, Material: material.Diffuse()},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
