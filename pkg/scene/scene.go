package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
)

// Scene contains all the elements needed for rendering.
// A scene is built once and must not be mutated while a render is running.
type Scene struct {
	Primitives     []geometry.Primitive // Objects in the scene, in tie-break order
	Background     core.Vec3            // Radiance of rays that escape the scene
	CameraConfig   CameraConfig
	SamplingConfig SamplingConfig
}

// SphereDescriptor is the configuration of one sphere
type SphereDescriptor struct {
	Radius   float64
	Center   core.Vec3
	Emission core.Vec3
	Albedo   core.Vec3
	Material material.Material
}

// CameraConfig describes the pinhole camera of the scene
type CameraConfig struct {
	Origin       core.Vec3 // Camera position
	Direction    core.Vec3 // Viewing direction, need not be normalized
	FieldOfView  float64   // Half-angle scale of the image plane (0.5135 ~ 54 degrees horizontal)
	LensDistance float64   // Distance the primary ray origin is pushed along the view ray
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width                int   // Image width
	Height               int   // Image height
	SamplesPerPixel      int   // Number of radiance samples per pixel, spread over the sub-pixel grid
	SubPixels            int   // Sub-pixel grid is SubPixels x SubPixels
	RussianRouletteDepth int   // Bounces before Russian roulette can terminate a path
	SplitDepth           int   // Bounces during which refraction traces both branches
	MaxDepth             int   // Hard cap on bounces
	Seed                 int64 // Base seed of the per-row random streams
}

// Defaults used when a config leaves a field at its zero value
const (
	DefaultFieldOfView          = 0.5135
	DefaultLensDistance         = 140.0
	DefaultSubPixels            = 2
	DefaultRussianRouletteDepth = 5
	DefaultSplitDepth           = 2
	DefaultMaxDepth             = 100
)

// DefaultSamplingConfig returns the sampling configuration of the reference renderer
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:                1024,
		Height:               768,
		SamplesPerPixel:      4,
		SubPixels:            DefaultSubPixels,
		RussianRouletteDepth: DefaultRussianRouletteDepth,
		SplitDepth:           DefaultSplitDepth,
		MaxDepth:             DefaultMaxDepth,
		Seed:                 1,
	}
}

// WithDefaults fills zero-valued camera fields
func (c CameraConfig) WithDefaults() CameraConfig {
	if c.FieldOfView == 0 {
		c.FieldOfView = DefaultFieldOfView
	}
	if c.LensDistance == 0 {
		c.LensDistance = DefaultLensDistance
	}
	return c
}

// Validate rejects camera configurations that would produce NaN rays
func (c CameraConfig) Validate() error {
	if !c.Origin.IsFinite() || !c.Direction.IsFinite() {
		return fmt.Errorf("camera origin and direction must be finite, got %+v / %+v", c.Origin, c.Direction)
	}
	if c.Direction.Length() == 0 {
		return errors.New("camera direction must be non-zero")
	}
	if !(c.FieldOfView > 0) || math.IsInf(c.FieldOfView, 0) {
		return fmt.Errorf("camera field of view must be > 0, got %g", c.FieldOfView)
	}
	if c.LensDistance < 0 || math.IsNaN(c.LensDistance) || math.IsInf(c.LensDistance, 0) {
		return fmt.Errorf("camera lens distance must be finite and >= 0, got %g", c.LensDistance)
	}
	// cy is derived from cross(cx, direction) and cx lies along +X
	if c.Direction.Y == 0 && c.Direction.Z == 0 {
		return errors.New("camera direction must not be parallel to the X axis")
	}
	return nil
}

// WithDefaults fills zero-valued sampling fields
func (c SamplingConfig) WithDefaults() SamplingConfig {
	if c.SubPixels == 0 {
		c.SubPixels = DefaultSubPixels
	}
	if c.RussianRouletteDepth == 0 {
		c.RussianRouletteDepth = DefaultRussianRouletteDepth
	}
	if c.SplitDepth == 0 {
		c.SplitDepth = DefaultSplitDepth
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	return c
}

// Validate rejects sampling configurations that cannot be rendered
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.SubPixels <= 0 {
		return fmt.Errorf("sub-pixel grid size must be positive, got %d", c.SubPixels)
	}
	if c.RussianRouletteDepth < 0 || c.SplitDepth < 0 {
		return fmt.Errorf("russian roulette depth and split depth must be >= 0, got %d and %d",
			c.RussianRouletteDepth, c.SplitDepth)
	}
	if c.MaxDepth <= c.RussianRouletteDepth {
		return fmt.Errorf("max depth %d must exceed russian roulette depth %d", c.MaxDepth, c.RussianRouletteDepth)
	}
	return nil
}

// SamplesPerCell returns how many radiance samples each sub-pixel cell takes
func (c SamplingConfig) SamplesPerCell() int {
	cells := c.SubPixels * c.SubPixels
	return max(1, c.SamplesPerPixel/cells)
}

// NewScene creates an empty scene; zero-valued camera and sampling fields take their defaults
func NewScene(camera CameraConfig, sampling SamplingConfig) *Scene {
	return &Scene{
		Primitives:     make([]geometry.Primitive, 0),
		CameraConfig:   camera.WithDefaults(),
		SamplingConfig: sampling.WithDefaults(),
	}
}

// Add appends a primitive; later primitives lose distance ties to earlier ones
func (s *Scene) Add(p geometry.Primitive) {
	s.Primitives = append(s.Primitives, p)
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if len(s.Primitives) == 0 {
		return errors.New("scene has no primitives")
	}
	if !s.Background.IsFinite() || s.Background.X < 0 || s.Background.Y < 0 || s.Background.Z < 0 {
		return fmt.Errorf("background must be finite and non-negative, got %+v", s.Background)
	}
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("sampling: %w", err)
	}
	return nil
}

// Intersect finds the nearest primitive hit by ray.
// Primitives are scanned in order and only a strictly closer hit replaces the
// current one, so equal distances resolve to the lowest index.
func (s *Scene) Intersect(ray core.Ray) (float64, int, bool) {
	nearest := math.Inf(1)
	index := -1
	for i, p := range s.Primitives {
		if d, ok := p.Intersect(ray); ok && d < nearest {
			nearest = d
			index = i
		}
	}
	if index < 0 {
		return 0, -1, false
	}
	return nearest, index, true
}

// AddSphere validates a sphere descriptor and appends the sphere
func (s *Scene) AddSphere(d SphereDescriptor) error {
	sphere, err := geometry.NewSphere(d.Radius, d.Center, d.Emission, d.Albedo, d.Material)
	if err != nil {
		return err
	}
	s.Add(sphere)
	return nil
}

// AddSpheres appends spheres in order, stopping at the first invalid descriptor
func (s *Scene) AddSpheres(descriptors []SphereDescriptor) error {
	for i, d := range descriptors {
		if err := s.AddSphere(d); err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	return nil
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}
