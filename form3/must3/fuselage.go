package must3

import (
	"math"

	"github.com/soypat/glider"
	"github.com/soypat/glider/form2/must2"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultSegmentCount is the number of fuselage stations used when 0 is requested.
const DefaultSegmentCount = 20

// FuselageProfile evaluates the size and position of a fuselage
// cross-section at any axial position.
type FuselageProfile struct {
	p glider.FuselageParams
	// back section center relative to the front one.
	backCenter float64
}

// Station is the cross-section of a fuselage at one axial position.
type Station struct {
	Width, Height float64
	// Center is the height of the section center above the nose centerline.
	Center float64
	// Corner radius of rounded rectangle sections.
	Radius float64
}

// Profile validates p and returns its fuselage profile.
func Profile(p glider.FuselageParams) FuselageProfile {
	if p.SegmentCount == 0 {
		p.SegmentCount = DefaultSegmentCount
	}
	if p.SectionPoints == 0 {
		p.SectionPoints = must2.DefaultSectionPoints
	}
	switch {
	case p.Length <= 0:
		panic(glider.InvalidParam("fuselage length %g <= 0", p.Length))
	case p.FrontWidth <= 0 || p.FrontHeight <= 0:
		panic(glider.InvalidParam("fuselage front size %gx%g must be positive", p.FrontWidth, p.FrontHeight))
	case p.BackWidth < 0 || p.BackHeight < 0:
		panic(glider.InvalidParam("fuselage back size %gx%g is negative", p.BackWidth, p.BackHeight))
	case p.CornerRadius < 0:
		panic(glider.InvalidParam("fuselage corner radius %g < 0", p.CornerRadius))
	case p.CurveH < 0 || p.CurveV < 0:
		panic(glider.InvalidParam("fuselage taper curve is negative"))
	case p.TaperPosH < 0 || p.TaperPosH >= 1 || p.TaperPosV < 0 || p.TaperPosV >= 1:
		panic(glider.InvalidParam("fuselage taper position not in [0,1)"))
	case p.VerticalAlign < 0 || p.VerticalAlign > 1:
		panic(glider.InvalidParam("fuselage vertical align %g not in [0,1]", p.VerticalAlign))
	case p.SegmentCount < 2:
		panic(glider.InvalidParam("fuselage segment count %d < 2", p.SegmentCount))
	}
	return FuselageProfile{
		p:          p,
		backCenter: (p.FrontHeight - p.BackHeight) * (p.VerticalAlign - 0.5),
	}
}

// Params returns the profile's parameters with defaults filled in.
func (f FuselageProfile) Params() glider.FuselageParams { return f.p }

// At returns the cross-section at station fraction t in [0,1].
func (f FuselageProfile) At(t float64) Station {
	p := f.p
	t = glider.Clamp(t, 0, 1)
	sH := glider.Taper(t, p.TaperPosH, p.BackWidth/p.FrontWidth, p.CurveH)
	sV := glider.Taper(t, p.TaperPosV, p.BackHeight/p.FrontHeight, p.CurveV)
	// The center drifts toward the back center following the vertical taper progress.
	var progress float64
	if t > p.TaperPosV {
		progress = glider.PowCurve((t-p.TaperPosV)/(1-p.TaperPosV), p.CurveV)
	}
	return Station{
		Width:  p.FrontWidth * sH,
		Height: p.FrontHeight * sV,
		Center: progress*f.backCenter + p.TailHeight*t,
		Radius: p.CornerRadius * math.Min(sH, sV),
	}
}

// Section returns the ring at station fraction t.
func (f FuselageProfile) Section(t float64) glider.SectionFrame {
	st := f.At(t)
	cs := f.p.Section
	cs.Width, cs.Height = st.Width, st.Height
	cs.TopRadius, cs.BottomRadius = st.Radius, st.Radius
	return glider.SectionFrame{
		Points:         must2.Section(cs, f.p.SectionPoints),
		AxialPos:       glider.Clamp(t, 0, 1) * f.p.Length,
		VerticalOffset: st.Center,
	}
}

// Mount returns the attachment frame on the top or bottom centerline of the
// fuselage surface at axial position z. The slope is measured along the surface.
func (f FuselageProfile) Mount(z float64, top bool) glider.AttachmentFrame {
	L := f.p.Length
	z = glider.Clamp(z, 0, L)
	h := L * 1e-4
	z0, z1 := math.Max(0, z-h), math.Min(L, z+h)
	slope := (f.surfaceY(z1, top) - f.surfaceY(z0, top)) / (z1 - z0)
	return glider.AttachmentFrame{
		Position: r3.Vec{Y: f.surfaceY(z, top), Z: z},
		SlopeRad: math.Atan(slope),
		Side:     glider.Right,
	}
}

func (f FuselageProfile) surfaceY(z float64, top bool) float64 {
	st := f.At(z / f.p.Length)
	if top {
		return st.Center + st.Height/2
	}
	return st.Center - st.Height/2
}

// Fuselage returns a body lofted along Z from the nose at Z=0 to the tail at
// Z=Length. Ends are closed with dome caps when enabled and by flat fans otherwise.
// The surface carries the tail top and tail bottom mount frames.
func Fuselage(p glider.FuselageParams) glider.Surface {
	prof := Profile(p)
	p = prof.p
	stations := make([]glider.SectionFrame, p.SegmentCount+1)
	for i := range stations {
		stations[i] = prof.Section(float64(i) / float64(p.SegmentCount))
	}
	noseLen, tailLen := 0.0, 0.0
	if p.CloseNose {
		noseLen = p.NosecapLength
	}
	if p.CloseTail {
		tailLen = p.TailcapLength
	}
	nose := Cap(stations[0], noseLen, p.NoseSharpness, p.CapSegments, false)
	tail := Cap(stations[len(stations)-1], tailLen, p.TailSharpness, p.CapSegments, true)

	mesh := BuildStrip(stations, glider.AxisZ, true)
	mesh.Append(nose.Mesh(glider.AxisZ))
	mesh.Append(tail.Mesh(glider.AxisZ))

	sections := nose.Ordered()
	sections = append(sections[:len(sections)-1], stations...)
	sections = append(sections, tail.Rings...)
	return glider.Surface{
		Mesh: mesh,
		Frames: []glider.AttachmentFrame{
			prof.Mount(p.Length, true),
			prof.Mount(p.Length, false),
		},
		Sections: sections,
	}
}
