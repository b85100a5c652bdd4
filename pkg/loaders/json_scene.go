package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
	"github.com/df07/go-smallpt/pkg/scene"
)

// Triple is a JSON [x, y, z] array
type Triple [3]float64

// Vec returns the triple as a vector
func (t Triple) Vec() core.Vec3 {
	return core.NewVec3(t[0], t[1], t[2])
}

// CameraCfg is the camera block of a scene file
type CameraCfg struct {
	Origin       Triple  `json:"origin"`
	Direction    Triple  `json:"direction"`
	FieldOfView  float64 `json:"fieldOfView,omitempty"`
	LensDistance float64 `json:"lensDistance,omitempty"`
}

// SphereCfg is one sphere of a scene file
type SphereCfg struct {
	Radius   float64 `json:"radius"`
	Center   Triple  `json:"center"`
	Emission Triple  `json:"emission,omitempty"`
	Albedo   Triple  `json:"albedo,omitempty"`
	Material string  `json:"material,omitempty"` // diffuse (default), specular or refractive
	IOR      float64 `json:"ior,omitempty"`      // refractive index, refractive only
}

// SceneCfg is the top level of a scene file
type SceneCfg struct {
	Name            string      `json:"name,omitempty"`        // Display name, see scene.ParseJSONMetadata
	Description     string      `json:"description,omitempty"` // Optional description
	Width           int         `json:"width,omitempty"`
	Height          int         `json:"height,omitempty"`
	SamplesPerPixel int         `json:"samplesPerPixel,omitempty"`
	SubPixels       int         `json:"subPixels,omitempty"`
	MaxDepth        int         `json:"maxDepth,omitempty"`
	Seed            *int64      `json:"seed,omitempty"`
	Background      Triple      `json:"background,omitempty"`
	Camera          CameraCfg   `json:"camera"`
	Spheres         []SphereCfg `json:"spheres"`
}

// LoadScene reads a scene description from a JSON file
func LoadScene(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := ParseScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene decodes and validates a JSON scene description.
// Fields left out take the defaults of scene.DefaultSamplingConfig and scene.CameraConfig.
func ParseScene(r io.Reader) (*scene.Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg SceneCfg
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return cfg.Build()
}

// Build converts the decoded configuration into a validated scene
func (cfg *SceneCfg) Build() (*scene.Scene, error) {
	sampling := scene.DefaultSamplingConfig()
	if cfg.Width > 0 {
		sampling.Width = cfg.Width
	}
	if cfg.Height > 0 {
		sampling.Height = cfg.Height
	}
	if cfg.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = cfg.SamplesPerPixel
	}
	if cfg.SubPixels > 0 {
		sampling.SubPixels = cfg.SubPixels
	}
	if cfg.MaxDepth > 0 {
		sampling.MaxDepth = cfg.MaxDepth
	}
	if cfg.Seed != nil {
		sampling.Seed = *cfg.Seed
	}

	camera := scene.CameraConfig{
		Origin:       cfg.Camera.Origin.Vec(),
		Direction:    cfg.Camera.Direction.Vec(),
		FieldOfView:  cfg.Camera.FieldOfView,
		LensDistance: cfg.Camera.LensDistance,
	}

	s := scene.NewScene(camera, sampling)
	s.Background = cfg.Background.Vec()

	for i, sc := range cfg.Spheres {
		mat, err := sc.material()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		err = s.AddSphere(scene.SphereDescriptor{
			Radius:   sc.Radius,
			Center:   sc.Center.Vec(),
			Emission: sc.Emission.Vec(),
			Albedo:   sc.Albedo.Vec(),
			Material: mat,
		})
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (sc SphereCfg) material() (material.Material, error) {
	name := sc.Material
	if name == "" {
		name = material.KindDiffuse.String()
	}
	kind, err := material.ParseKind(name)
	if err != nil {
		return material.Material{}, err
	}

	switch kind {
	case material.KindSpecular:
		return material.Specular(), nil
	case material.KindRefractive:
		ior := sc.IOR
		if ior == 0 {
			ior = material.DefaultRefractiveIndex
		}
		return material.Refractive(ior), nil
	default:
		return material.Diffuse(), nil
	}
}
