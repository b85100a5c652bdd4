package scene

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
)

// NewSimpleScene creates a single diffuse ball lit from above by one spherical light
func NewSimpleScene() (*Scene, error) {
	camera := CameraConfig{
		Origin:    core.NewVec3(50, 52, 295.6),
		Direction: core.NewVec3(0, -0.042612, -1),
	}

	sampling := DefaultSamplingConfig()
	sampling.Width = 320
	sampling.Height = 240
	sampling.SamplesPerPixel = 16

	s := NewScene(camera, sampling)

	err := s.AddSpheres([]SphereDescriptor{
		{Radius: 25, Center: core.NewVec3(50, 40, 81.6), Albedo: core.NewVec3(0.75, 0.6, 0.3), Material: material.Diffuse()},
		{Radius: 15, Center: core.NewVec3(50, 110, 100), Emission: core.NewVec3(20, 20, 20), Material: material.Diffuse()},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
