package rowan

import (
	"math"
	"math/rand/v2"
)

// FloatPrecision is the tolerance used by FloatEquals and [Pointf.Equals].
const FloatPrecision = 0.000001

// FloatEquals reports whether a and b differ by less than FloatPrecision.
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < FloatPrecision
}

// Magnitude returns the length of the vector (x, y).
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Random returns a random value in [min, max).
// Panics if min >= max.
func Random(min, max float64) float64 {
	if min >= max {
		panic("rowan: random minimum must be less than maximum")
	}
	return rand.Float64()*(max-min) + min
}

// RandomBoolean returns a random boolean value.
func RandomBoolean() bool {
	return rand.IntN(2) == 0
}

// RandomAtEdge randomly returns one of the two edges.
// Panics if leftEdge >= rightEdge.
func RandomAtEdge(leftEdge, rightEdge float64) float64 {
	if leftEdge >= rightEdge {
		panic("rowan: left edge must be less than right edge")
	}
	if RandomBoolean() {
		return leftEdge
	}
	return rightEdge
}

// Snap returns whichever edge num is closest to.
// Equidistant values snap to the right edge.
// Panics if leftEdge >= rightEdge.
func Snap(num, leftEdge, rightEdge float64) float64 {
	if leftEdge >= rightEdge {
		panic("rowan: left edge must be less than right edge")
	}
	if num-leftEdge < rightEdge-num {
		return leftEdge
	}
	return rightEdge
}
