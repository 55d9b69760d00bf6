package must2

import (
	"math"

	"github.com/soypat/glider"
	"github.com/soypat/glider/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultAirfoilResolution is the number of chordwise stations per airfoil surface
// used when a resolution of 0 is requested.
const DefaultAirfoilResolution = 50

// NACA 4-digit thickness polynomial coefficients.
const (
	a0 = 0.2969
	a1 = -0.1260
	a2 = -0.3516
	a3 = 0.2843
	a4 = -0.1015
)

// Airfoil returns a NACA 4-digit style airfoil ribbon of 2*resolution points.
// The upper surface runs from leading to trailing edge and the lower surface
// returns from trailing to leading edge, so the leading edge point is present
// at both ends. Points are scaled by chord and rotated about the pivot.
func Airfoil(p glider.AirfoilParams, resolution int) glider.Polyline2 {
	if resolution == 0 {
		resolution = DefaultAirfoilResolution
	}
	checkAirfoil(p, resolution)
	n := resolution
	upper := make(glider.Polyline2, n)
	lower := make(glider.Polyline2, n)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		yt := thickness(x, p.Thickness)
		yc, dyc := camber(x, p.Camber, p.CamberPos)
		s, c := math.Sincos(math.Atan(dyc))
		upper[i] = r2.Vec{X: (x - yt*s) * p.Chord, Y: (yc + yt*c) * p.Chord}
		lower[n-1-i] = r2.Vec{X: (x + yt*s) * p.Chord, Y: (yc - yt*c) * p.Chord}
	}
	pts := append(upper, lower...)
	return RotateAbout(pts, p.AngleDeg, r2.Vec{X: p.Chord * p.PivotRatio})
}

// RotateAbout returns the points rotated by angleDeg degrees counter-clockwise
// about pivot.
func RotateAbout(pts glider.Polyline2, angleDeg float64, pivot r2.Vec) glider.Polyline2 {
	out := make(glider.Polyline2, len(pts))
	if angleDeg == 0 {
		copy(out, pts)
		return out
	}
	angle := glider.DtoR(angleDeg)
	for i, v := range pts {
		out[i] = d2.Rotate(v, angle, pivot)
	}
	return out
}

// thickness returns the half thickness distribution at chord fraction x.
func thickness(x, t float64) float64 {
	return 5 * t * (a0*math.Sqrt(x) + x*(a1+x*(a2+x*(a3+x*a4))))
}

// camber returns the mean camber line height and slope at chord fraction x
// using the two parabola law joined at pos.
func camber(x, m, pos float64) (yc, dyc float64) {
	if m == 0 {
		return 0, 0
	}
	if x < pos {
		k := m / (pos * pos)
		return k * (2*pos*x - x*x), 2 * k * (pos - x)
	}
	q := 1 - pos
	k := m / (q * q)
	return k * ((1 - 2*pos) + 2*pos*x - x*x), 2 * k * (pos - x)
}

func checkAirfoil(p glider.AirfoilParams, resolution int) {
	// Checks are written so NaN fails them.
	switch {
	case !(p.Chord > 0) || math.IsInf(p.Chord, 1):
		panic(glider.InvalidParam("airfoil chord %g not positive and finite", p.Chord))
	case !(p.Thickness > 0 && p.Thickness < 1):
		panic(glider.InvalidParam("airfoil thickness %g not in (0,1)", p.Thickness))
	case !(p.Camber >= 0) || math.IsInf(p.Camber, 1):
		panic(glider.InvalidParam("airfoil camber %g not positive and finite", p.Camber))
	case !(p.CamberPos > 0 && p.CamberPos < 1):
		panic(glider.InvalidParam("airfoil camber position %g not in (0,1)", p.CamberPos))
	case !(p.PivotRatio >= 0 && p.PivotRatio <= 1):
		panic(glider.InvalidParam("airfoil pivot %g not in [0,1]", p.PivotRatio))
	case math.IsNaN(p.AngleDeg) || math.IsInf(p.AngleDeg, 0):
		panic(glider.InvalidParam("airfoil angle %g is not finite", p.AngleDeg))
	case resolution < 3:
		panic(glider.InvalidParam("airfoil resolution %d < 3", resolution))
	}
}
