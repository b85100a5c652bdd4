package output

import "math"

// Gamma is the display gamma applied when quantising radiance
const Gamma = 2.2

// Clamp limits v to [0, 1]
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToInt maps a linear radiance value to an 8-bit display value
func ToInt(v float64) int {
	return int(math.Pow(Clamp(v), 1/Gamma)*255 + 0.5)
}
