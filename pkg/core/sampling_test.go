package core

import (
	"math"
	"testing"
)

func TestSampleCosineHemisphere_StaysInHemisphere(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
		NewVec3(-0.05, 0.2, 0.9).Normalize(),
	}
	sampler := NewSeededSampler(42)

	for _, n := range normals {
		for i := 0; i < 500; i++ {
			d := SampleCosineHemisphere(n, sampler.Get2D())
			if math.Abs(d.Length()-1) > 1e-9 {
				t.Fatalf("Expected unit direction, got length %f", d.Length())
			}
			if d.Dot(n) < -1e-12 {
				t.Fatalf("Direction %v is below the surface with normal %v", d, n)
			}
		}
	}
}

func TestSampleCosineHemisphere_Corners(t *testing.T) {
	n := NewVec3(0, 0, 1)

	// r2 = 0 maps onto the pole
	d := SampleCosineHemisphere(n, NewVec2(0.3, 0))
	if math.Abs(d.Dot(n)-1) > 1e-9 {
		t.Errorf("Expected direction along normal, got %v", d)
	}

	// r2 -> 1 approaches the horizon
	d = SampleCosineHemisphere(n, NewVec2(0.3, 0.999999))
	if d.Dot(n) > 1e-2 {
		t.Errorf("Expected grazing direction, got %v", d)
	}
}

func TestSampleCosineHemisphere_MeanCosine(t *testing.T) {
	// E[cos(theta)] under a cosine-weighted pdf is 2/3
	n := NewVec3(0, 1, 0)
	sampler := NewSeededSampler(7)
	const count = 20000

	sum := 0.0
	for i := 0; i < count; i++ {
		sum += SampleCosineHemisphere(n, sampler.Get2D()).Dot(n)
	}
	mean := sum / count
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine near 2/3, got %f", mean)
	}
}

func TestTentFilter(t *testing.T) {
	tests := []struct {
		name     string
		u        float64
		expected float64
	}{
		{"lower end", 0, -1},
		{"center", 0.5, 0},
		{"quarter", 0.125, math.Sqrt(0.25) - 1},
		{"three quarters", 0.875, 1 - math.Sqrt(0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TentFilter(tt.u); math.Abs(got-tt.expected) > tolerance {
				t.Errorf("TentFilter(%f) = %f, expected %f", tt.u, got, tt.expected)
			}
		})
	}

	prev := TentFilter(0)
	for i := 1; i < 1000; i++ {
		v := TentFilter(float64(i) / 1000)
		if v < prev {
			t.Fatalf("TentFilter is not monotonic at %d", i)
		}
		if v < -1 || v >= 1 {
			t.Fatalf("TentFilter out of range: %f", v)
		}
		prev = v
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(1234)
	b := NewSeededSampler(1234)

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical streams for the same seed")
		}
	}
}
