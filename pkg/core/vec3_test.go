package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return a.Subtract(b).Length() <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 5, 0.5)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(-3, 7, 3.5)},
		{"subtract", a.Subtract(b), NewVec3(5, -3, 2.5)},
		{"scalar multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"component multiply", a.MultiplyVec(b), NewVec3(-4, 10, 1.5)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross x*y", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"clamp", NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.result, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); math.Abs(got-7.5) > tolerance {
		t.Errorf("Expected dot 7.5, got %f", got)
	}
	if got := NewVec3(3, 4, 0).Length(); math.Abs(got-5) > tolerance {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := NewVec3(0.2, 0.9, 0.4).MaxComponent(); got != 0.9 {
		t.Errorf("Expected max component 0.9, got %f", got)
	}
}

func TestVec3_NormalizeIsUnitLength(t *testing.T) {
	vectors := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(3, 4, 12),
		NewVec3(-1e-3, 2e-3, 5e-4),
		NewVec3(1e5, -4e4, 81.6),
		NewVec3(0, -0.042612, -1),
	}

	for _, v := range vectors {
		n := v.Normalize()
		if math.Abs(n.Length()-1) > 1e-5 {
			t.Errorf("Normalize(%v) has length %f", v, n.Length())
		}
		if n.Dot(v) <= 0 {
			t.Errorf("Normalize(%v) = %v flipped direction", v, n)
		}
	}
}

func TestVec3_NormalizeZeroIsNotFinite(t *testing.T) {
	if NewVec3(0, 0, 0).Normalize().IsFinite() {
		t.Error("Expected normalizing the zero vector to produce non-finite components")
	}
}

func TestVec3_CrossIsOrthogonal(t *testing.T) {
	pairs := [][2]Vec3{
		{NewVec3(1, 2, 3), NewVec3(4, 5, 6)},
		{NewVec3(-0.3, 0.7, 2.2), NewVec3(9, -1, 0.1)},
		{NewVec3(1, 1, 1), NewVec3(1, 1, 1)},
		{NewVec3(0.5135, 0, 0), NewVec3(0, -0.042574, -0.999093)},
	}

	for _, p := range pairs {
		c := p[0].Cross(p[1])
		if d := c.Dot(p[0]); math.Abs(d) > 1e-9 {
			t.Errorf("cross(%v, %v) . a = %g", p[0], p[1], d)
		}
		if d := c.Dot(p[1]); math.Abs(d) > 1e-9 {
			t.Errorf("cross(%v, %v) . b = %g", p[0], p[1], d)
		}
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.Inf(1), 0, 0).IsFinite() {
		t.Error("Expected +Inf to be reported")
	}
	if NewVec3(0, math.NaN(), 0).IsFinite() {
		t.Error("Expected NaN to be reported")
	}
}

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -10))

	if !vecNear(ray.Direction, NewVec3(0, 0, -1), tolerance) {
		t.Errorf("Expected unit direction (0,0,-1), got %v", ray.Direction)
	}
	if !vecNear(ray.At(2), NewVec3(1, 2, 1), tolerance) {
		t.Errorf("Expected At(2) = (1,2,1), got %v", ray.At(2))
	}
}
