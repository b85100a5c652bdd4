package material

import (
	"fmt"
	"math"

	"github.com/df07/go-smallpt/pkg/core"
)

// Kind identifies how a surface continues a light path
type Kind int

const (
	KindDiffuse    Kind = iota // Lambertian, cosine-weighted bounce
	KindSpecular               // perfect mirror
	KindRefractive             // glass-like, Fresnel-weighted reflection and refraction
)

// String returns the name used in scene files
func (k Kind) String() string {
	switch k {
	case KindDiffuse:
		return "diffuse"
	case KindSpecular:
		return "specular"
	case KindRefractive:
		return "refractive"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a scene file material name into a Kind
func ParseKind(name string) (Kind, error) {
	switch name {
	case "diffuse":
		return KindDiffuse, nil
	case "specular":
		return KindSpecular, nil
	case "refractive":
		return KindRefractive, nil
	}
	return 0, fmt.Errorf("unknown material %q (expected diffuse, specular or refractive)", name)
}

// Material is a closed variant over Kind. RefractiveIndex is only meaningful for KindRefractive.
type Material struct {
	Kind            Kind
	RefractiveIndex float64
}

// DefaultRefractiveIndex is the index of refraction of glass
const DefaultRefractiveIndex = 1.5

// Diffuse returns a diffuse material
func Diffuse() Material {
	return Material{Kind: KindDiffuse}
}

// Specular returns a mirror material
func Specular() Material {
	return Material{Kind: KindSpecular}
}

// Refractive returns a dielectric material with the given index of refraction
func Refractive(ior float64) Material {
	return Material{Kind: KindRefractive, RefractiveIndex: ior}
}

// Validate checks the material variant
func (m Material) Validate() error {
	switch m.Kind {
	case KindDiffuse, KindSpecular:
		return nil
	case KindRefractive:
		if !(m.RefractiveIndex > 0) || math.IsInf(m.RefractiveIndex, 0) {
			return fmt.Errorf("refractive index must be finite and > 0, got %g", m.RefractiveIndex)
		}
		return nil
	}
	return fmt.Errorf("invalid material kind %d", int(m.Kind))
}

// Surface holds the shading attributes of a primitive
type Surface struct {
	Emission core.Vec3 // emitted radiance, components >= 0
	Albedo   core.Vec3 // reflectance, components in [0,1]
	Material Material
}

// Validate rejects surfaces that would produce negative or non-finite light
func (s Surface) Validate() error {
	if !s.Emission.IsFinite() || s.Emission.X < 0 || s.Emission.Y < 0 || s.Emission.Z < 0 {
		return fmt.Errorf("emission must be finite and non-negative, got %+v", s.Emission)
	}
	in01 := func(x float64) bool { return x >= 0 && x <= 1 }
	if !in01(s.Albedo.X) || !in01(s.Albedo.Y) || !in01(s.Albedo.Z) {
		return fmt.Errorf("albedo components must be in [0,1], got %+v", s.Albedo)
	}
	return s.Material.Validate()
}

// IsEmissive reports whether the surface emits any light
func (s Surface) IsEmissive() bool {
	return s.Emission.MaxComponent() > 0
}
