package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

func MulElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X * b.X,
		Y: a.Y * b.Y,
	}
}

// Rotate rotates v by angle radians counter-clockwise about pivot.
func Rotate(v r2.Vec, angle float64, pivot r2.Vec) r2.Vec {
	s, c := math.Sincos(angle)
	d := r2.Sub(v, pivot)
	return r2.Vec{
		X: pivot.X + d.X*c - d.Y*s,
		Y: pivot.Y + d.X*s + d.Y*c,
	}
}

// Lerp linearly interpolates between a and b, t = [0,1].
func Lerp(a, b r2.Vec, t float64) r2.Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// SignedArea returns the shoelace area of the closed polygon formed by the set.
// Counter-clockwise polygons have positive area.
func (a Set) SignedArea() float64 {
	var sum float64
	for i := range a {
		j := (i + 1) % len(a)
		sum += r2.Cross(a[i], a[j])
	}
	return sum / 2
}

// Mean returns the average of all points in the set.
func (a Set) Mean() r2.Vec {
	var sum r2.Vec
	for _, v := range a {
		sum = r2.Add(sum, v)
	}
	return r2.Scale(1/float64(len(a)), sum)
}

// Scale scales all points of the set about the origin in place.
func (a Set) Scale(k float64) {
	for i := range a {
		a[i] = r2.Scale(k, a[i])
	}
}

// Dedup returns the set with consecutive points closer than tol removed.
// The wrap-around pair is checked too, so the result is a valid closed polygon.
func (a Set) Dedup(tol float64) Set {
	if len(a) == 0 {
		return a
	}
	out := Set{a[0]}
	for _, v := range a[1:] {
		if !EqualWithin(out[len(out)-1], v, tol) {
			out = append(out, v)
		}
	}
	for len(out) > 1 && EqualWithin(out[0], out[len(out)-1], tol) {
		out = out[:len(out)-1]
	}
	return out
}
