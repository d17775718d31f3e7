package linalg

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the difference between 1 and the next representable float64.
const Epsilon = 2.220446049250313e-16

// Clamp limits v to the closed interval [min, max].
func Clamp(v, min, max float64) float64 {
	return mgl64.Clamp(v, min, max)
}

// Lerp interpolates linearly from a to b.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// MapLinear remaps x from the range [a1, a2] to the range [b1, b2].
func MapLinear(x, a1, a2, b1, b2 float64) float64 {
	return b1 + (x-a1)*(b2-b1)/(a2-a1)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return mgl64.DegToRad(deg)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return mgl64.RadToDeg(rad)
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
