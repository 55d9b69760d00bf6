package glider

import (
	"math"
)

const (
	pi        = math.Pi
	tolerance = 1e-9
	epsilon   = 1e-12
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Mix does a linear interpolation from x to y, a = [0,1]
func Mix(x, y, a float64) float64 {
	return x + (a * (y - x))
}

// Taper is the fuselage taper law. It returns 1 while p <= pos and then
// moves toward target following (t^curve) where t is the normalized
// distance past pos. The result never drops below 0.001 so tapered
// sections keep a non-zero area.
func Taper(p, pos, target, curve float64) float64 {
	if p <= pos {
		return 1
	}
	if curve <= 0 {
		curve = 1
	}
	t := (p - pos) / (1 - pos)
	return math.Max(Mix(1, target, math.Pow(t, curve)), 0.001)
}

// PowCurve returns t^curve, treating non-positive curve as linear.
// Used by planform edges.
func PowCurve(t, curve float64) float64 {
	if curve <= 0 {
		curve = 1
	}
	return math.Pow(t, curve)
}
