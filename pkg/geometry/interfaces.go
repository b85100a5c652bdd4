package geometry

import (
	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/material"
)

// HitEpsilon is the minimum ray distance accepted as a hit, so bounce rays
// leaving a surface do not intersect it again at their origin.
const HitEpsilon = 1e-4

// Primitive is a shape that can be intersected by rays
type Primitive interface {
	// Intersect returns the distance to the nearest hit beyond HitEpsilon
	Intersect(ray core.Ray) (float64, bool)
	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	// Surface returns the shading attributes of the primitive
	Surface() *material.Surface
}
