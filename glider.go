// Package glider generates triangle meshes for glider and RC aircraft parts from
// small parameter records.
//
// The world frame is right handed: X is spanwise (right wing at +X),
// Y is up and Z is chordwise pointing aft. Fuselage noses sit at Z=0.
//
// Generators live in the form2 (2D profiles) and form3 (3D surfaces) packages.
// The must2 and must3 subpackages hold the panicking builders they wrap.
package glider

import (
	"fmt"
	"math"

	"github.com/soypat/glider/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Polyline2 is an implicitly closed sequence of points in a cross-section's
// local (u,v) frame. The last point connects to the first.
type Polyline2 []r2.Vec

// Validate checks the polyline has at least 3 points, no repeated consecutive
// points (including the wrap-around) and a non-zero enclosed area.
func (p Polyline2) Validate() error {
	if len(p) < 3 {
		return fmt.Errorf("%w: polyline has %d points, need at least 3", ErrDegenerateSection, len(p))
	}
	for i := range p {
		j := (i + 1) % len(p)
		if d2.EqualWithin(p[i], p[j], tolerance) {
			return fmt.Errorf("%w: repeated point %d at %v", ErrDegenerateSection, i, p[i])
		}
	}
	if math.Abs(p.SignedArea()) < tolerance {
		return fmt.Errorf("%w: zero area polyline", ErrDegenerateSection)
	}
	return nil
}

// SignedArea returns the area enclosed by the polyline. It is positive
// for counter-clockwise point order.
func (p Polyline2) SignedArea() float64 {
	return d2.Set(p).SignedArea()
}

// Bounds returns the axis aligned bounding box of the polyline.
func (p Polyline2) Bounds() r2.Box {
	return r2.Box{Min: d2.Set(p).Min(), Max: d2.Set(p).Max()}
}

// Reversed returns a copy of the polyline with point order reversed.
func (p Polyline2) Reversed() Polyline2 {
	r := make(Polyline2, len(p))
	for i, v := range p {
		r[len(p)-1-i] = v
	}
	return r
}

// SectionFrame is one ring of a loft.
type SectionFrame struct {
	Points Polyline2
	// Position along the loft axis.
	AxialPos float64
	// Accumulated vertical offset (dihedral, vertical alignment, tail height).
	VerticalOffset float64
}

// Axis selects how section points are placed in world space by a loft.
type Axis int

const (
	_ Axis = iota
	// AxisX lofts along X. Section point (u,v) is placed at (axial, v, u).
	// Used by wings and fins.
	AxisX
	// AxisZ lofts along Z. Section point (u,v) is placed at (u, v, axial).
	// Used by fuselages and nacelles.
	AxisZ
)

// Place returns the world position of section point p on the ring at axial
// position axial shifted up by voff.
func (ax Axis) Place(axial float64, p r2.Vec, voff float64) r3.Vec {
	switch ax {
	case AxisX:
		return r3.Vec{X: axial, Y: p.Y + voff, Z: p.X}
	case AxisZ:
		return r3.Vec{X: p.X, Y: p.Y + voff, Z: axial}
	}
	panic("invalid axis")
}

// Reflects reports whether the (u, v, axial) to world mapping of the axis
// has a negative determinant. The standard loft winding faces outward on
// reflecting axes, lofts swap it on the others.
func (ax Axis) Reflects() bool {
	switch ax {
	case AxisX:
		return true
	case AxisZ:
		return false
	}
	panic("invalid axis")
}

func (ax Axis) String() (str string) {
	switch ax {
	case AxisX:
		str = "x"
	case AxisZ:
		str = "z"
	default:
		str = "unknown"
	}
	return str
}

// Side is the lateral side of the aircraft a part is mounted on.
type Side int

const (
	Left  Side = -1
	Right Side = 1
)

// Sign returns the side as ±1.
func (s Side) Sign() float64 {
	if s == Left {
		return -1
	}
	return 1
}

// AttachmentFrame locates a child part on a parent surface.
type AttachmentFrame struct {
	Position r3.Vec
	// Local slope of the parent surface in the chordwise-vertical (Z-Y) plane.
	// Positive slopes rise toward the tail. Fuselage frames measure it on the
	// surface. Wing frames carry the airfoil incidence of their section instead.
	SlopeRad float64
	Side     Side
}

// Surface is the output of every surface generator.
type Surface struct {
	Mesh Mesh
	// Mount points for child parts.
	Frames []AttachmentFrame
	// Cross-sections used to build the mesh, in loft order. Useful for debug overlays.
	Sections []SectionFrame
}
