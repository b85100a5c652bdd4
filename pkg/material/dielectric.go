package material

import (
	"math"

	"github.com/df07/go-smallpt/pkg/core"
)

// Reflect mirrors direction d about the surface normal n: d - 2(d.n)n
func Reflect(d, n core.Vec3) core.Vec3 {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

// Refraction describes the transmitted part of a ray crossing a dielectric boundary
type Refraction struct {
	Direction     core.Vec3 // transmitted direction (unit length)
	Reflectance   float64   // Fresnel reflectance Re (Schlick)
	Transmittance float64   // 1 - Re
}

// Refract applies Snell's law to a unit direction d hitting a surface with outward normal n
// and oriented normal nl (nl faces against d). The medium outside has index 1.
// It returns false on total internal reflection.
func Refract(d, n, nl core.Vec3, ior float64) (Refraction, bool) {
	into := n.Dot(nl) > 0
	nc, nt := 1.0, ior

	nnt := nt / nc
	if into {
		nnt = nc / nt
	}

	ddn := d.Dot(nl)
	cos2t := 1 - nnt*nnt*(1-ddn*ddn)
	if cos2t < 0 {
		return Refraction{}, false
	}

	sign := -1.0
	if into {
		sign = 1.0
	}
	tdir := d.Multiply(nnt).Subtract(n.Multiply(sign * (ddn*nnt + math.Sqrt(cos2t)))).Normalize()

	// Schlick uses the angle on the less dense side of the boundary
	cosine := tdir.Dot(n)
	if into {
		cosine = -ddn
	}
	re := Schlick(cosine, nc, nt)

	return Refraction{
		Direction:     tdir,
		Reflectance:   re,
		Transmittance: 1 - re,
	}, true
}

// Schlick approximates the Fresnel reflectance between media with indices n1 and n2
func Schlick(cosine, n1, n2 float64) float64 {
	a, b := n2-n1, n2+n1
	r0 := a * a / (b * b)
	c := 1 - cosine
	return r0 + (1-r0)*c*c*c*c*c
}
