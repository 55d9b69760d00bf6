package matter

import (
	"fmt"
	"strings"

	"github.com/soypat/glider"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG is a glycol modified polyester, tougher than PLA.
	PETG = ViscousMaterial{shrink: 0.4e-2, pullShrink: .3}
	// ABS (acrylonitrile butadiene styrene) shrinks noticeably when cooling.
	ABS = ViscousMaterial{shrink: 0.7e-2, pullShrink: .5}
)

var materials = map[string]ViscousMaterial{
	"pla":  PLA,
	"petg": PETG,
	"abs":  ABS,
}

// Lookup returns the material with the given case insensitive name.
func Lookup(name string) (ViscousMaterial, error) {
	m, ok := materials[strings.ToLower(name)]
	if !ok {
		return ViscousMaterial{}, fmt.Errorf("unknown material %q", name)
	}
	return m, nil
}

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// ScaleFactor is the uniform scale that compensates thermal shrinkage.
func (m ViscousMaterial) ScaleFactor() float64 {
	return 1 / (1 - m.shrink)
}

// Scale returns the mesh scaled about the origin so printed parts cool down
// to their nominal size.
func (m ViscousMaterial) Scale(mesh glider.Mesh) glider.Mesh {
	k := m.ScaleFactor()
	return mesh.Transform(func(v r3.Vec) r3.Vec { return r3.Scale(k, v) })
}

// InternalDimScale returns the dimension to model for a hole or slot of size
// real, e.g. a spar tunnel in a printed wing.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}
