package must3

import (
	"math"

	"github.com/soypat/glider"
	"github.com/soypat/glider/form2/must2"
	"github.com/soypat/glider/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	chordAxis = r3.Vec{Z: 1}
	spanAxis  = r3.Vec{X: 1}
)

// Fin extrudes the fin outline by its thickness along X, centered on X=0.
// The root edge lies on Y=0 and the chord runs along +Z from Offset.
func Fin(p glider.FinParams) glider.Surface {
	if p.Thickness <= 0 {
		panic(glider.InvalidParam("fin thickness %g <= 0", p.Thickness))
	}
	outline := must2.FinOutline(p)
	rings := []glider.SectionFrame{
		{Points: outline, AxialPos: -p.Thickness / 2},
		{Points: outline, AxialPos: p.Thickness / 2},
	}
	mesh := BuildStrip(rings, glider.AxisX, true)
	mesh.Append(FanCloseMean(rings[0], glider.AxisX, true))
	mesh.Append(FanCloseMean(rings[1], glider.AxisX, false))
	return glider.Surface{Mesh: mesh, Sections: rings}
}

// FinTransform returns the transform mounting a fin built by Fin on frame.
// The fin is leaned by frame.Side·leanDeg about its chord, flipped upside down
// when bottom is set, pitched to lie flush on the frame slope and finally moved
// to the frame position. Positive leans tilt the fin tip toward X=0 on the
// right side and away from it on the left side, for top and bottom fins alike.
func FinTransform(frame glider.AttachmentFrame, leanDeg float64, bottom bool) d3.Transform {
	lean := frame.Side.Sign() * glider.DtoR(leanDeg)
	var flip d3.Transform
	if bottom {
		lean = -lean
		flip = d3.Rotate(math.Pi, chordAxis)
	}
	return d3.Translate(frame.Position).
		Mul(d3.Rotate(-frame.SlopeRad, spanAxis)).
		Mul(flip).
		Mul(d3.Rotate(lean, chordAxis))
}

// MountFin returns the fin mesh moved onto frame. See FinTransform.
func MountFin(fin glider.Mesh, frame glider.AttachmentFrame, leanDeg float64, bottom bool) glider.Mesh {
	return fin.Transform(FinTransform(frame, leanDeg, bottom).Transform)
}
