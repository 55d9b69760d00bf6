package must3

import (
	"math"

	"github.com/soypat/glider"
	"github.com/soypat/glider/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Planform holds the spanwise layout of a wing.
type Planform struct {
	// Span position of each section. Starts at 0.
	Stations []float64
	// Accumulated dihedral height at each section.
	Heights    []float64
	Span       float64
	rootChord  float64
	tipChord   float64
	sweep      float64
	leadCurve  float64
	trailCurve float64
}

// NewPlanform validates the sections of p and returns their layout.
func NewPlanform(p glider.WingParams) Planform {
	n := len(p.Sections)
	if n < 2 {
		panic(glider.InvalidParam("wing needs at least 2 sections, got %d", n))
	}
	pf := Planform{
		Stations:   make([]float64, n),
		Heights:    make([]float64, n),
		rootChord:  p.Sections[0].Airfoil.Chord,
		tipChord:   p.Sections[n-1].Airfoil.Chord,
		sweep:      p.Sweep,
		leadCurve:  p.LeadCurve,
		trailCurve: p.TrailCurve,
	}
	for i := 0; i < n-1; i++ {
		s := p.Sections[i]
		if s.SpanLength < 0 {
			panic(glider.InvalidParam("wing section %d span length %g < 0", i, s.SpanLength))
		}
		pf.Stations[i+1] = pf.Stations[i] + s.SpanLength
		pf.Heights[i+1] = pf.Heights[i] + math.Tan(glider.DtoR(s.DihedralDeg))*s.SpanLength
	}
	pf.Span = pf.Stations[n-1]
	if pf.Span == 0 {
		// Zero span wings still get a valid, if flat, layout.
		pf.Span = 1
	}
	return pf
}

// Lead returns the leading edge chordwise position at span fraction t.
func (pf Planform) Lead(t float64) float64 {
	return pf.sweep * glider.PowCurve(t, pf.leadCurve)
}

// Trail returns the trailing edge chordwise position at span fraction t.
func (pf Planform) Trail(t float64) float64 {
	return pf.rootChord + (pf.sweep+pf.tipChord-pf.rootChord)*glider.PowCurve(t, pf.trailCurve)
}

// Wing lofts the wing sections of p along X starting at the root (X=0).
// Airfoil chord fractions are mapped onto the planform's leading and trailing
// edges so sweep and taper are independent of each airfoil. Root and tip are
// fan closed. Attachment frames lie at the mid chord of every section but the root.
// Their SlopeRad is the section's airfoil incidence (AngleDeg), not a slope
// measured on the skin, so nacelles placed on them pitch with the airfoil.
func Wing(p glider.WingParams) glider.Surface {
	pf := NewPlanform(p)
	res := p.Resolution
	if res == 0 {
		res = must2.DefaultAirfoilResolution
	}
	rings := make([]glider.SectionFrame, len(p.Sections))
	var frames []glider.AttachmentFrame
	for i, s := range p.Sections {
		t := pf.Stations[i] / pf.Span
		lead, trail := pf.Lead(t), pf.Trail(t)
		af := must2.Airfoil(s.Airfoil, res)
		pts := make(glider.Polyline2, len(af))
		// Airfoil ribbons run clockwise, reverse them so the skin faces out.
		for j, v := range af {
			r := v.X / s.Airfoil.Chord
			pts[len(af)-1-j] = r2.Vec{X: lead + r*(trail-lead), Y: v.Y}
		}
		rings[i] = glider.SectionFrame{
			Points:         pts,
			AxialPos:       pf.Stations[i],
			VerticalOffset: pf.Heights[i],
		}
		if i > 0 {
			frames = append(frames, glider.AttachmentFrame{
				Position: r3.Vec{X: pf.Stations[i], Y: pf.Heights[i], Z: (lead + trail) / 2},
				SlopeRad: glider.DtoR(s.Airfoil.AngleDeg),
				Side:     glider.Right,
			})
		}
	}
	mesh := BuildStrip(rings, glider.AxisX, false)
	mesh.Append(FanCloseMean(rings[0], glider.AxisX, true))
	mesh.Append(FanCloseMean(rings[len(rings)-1], glider.AxisX, false))
	if p.Mirrored {
		mesh = mesh.Mirror()
		right := len(frames)
		for i := 0; i < right; i++ {
			f := frames[i]
			f.Position.X = -f.Position.X
			f.Side = glider.Left
			frames = append(frames, f)
		}
	}
	return glider.Surface{Mesh: mesh, Frames: frames, Sections: rings}
}
