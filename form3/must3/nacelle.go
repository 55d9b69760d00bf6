package must3

import (
	"github.com/soypat/glider"
	"github.com/soypat/glider/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Nacelle returns a nacelle body with up to two fins in its local frame,
// nose at Z=0. Fins are mounted on the body centerline at the fin offset and
// leaned by Fin.AngleDeg with the sign of side. The returned frames are the
// fin mount frames.
func Nacelle(p glider.NacelleParams, fins glider.FinMount, side glider.Side) glider.Surface {
	body := Fuselage(p.Body)
	prof := Profile(p.Body)
	s := glider.Surface{Mesh: body.Mesh, Sections: body.Sections}
	if fins == glider.FinNone {
		return s
	}
	finP := p.Fin
	finP.Offset = 0
	fin := Fin(finP)
	for _, bottom := range []bool{false, true} {
		if (bottom && !fins.Bottom()) || (!bottom && !fins.Top()) {
			continue
		}
		frame := prof.Mount(p.Fin.Offset, !bottom)
		frame.Side = side
		s.Mesh.Append(MountFin(fin.Mesh, frame, p.Fin.AngleDeg, bottom))
		s.Frames = append(s.Frames, frame)
	}
	return s
}

// PlaceNacelle moves a nacelle of the given body length so its center sits on
// frame, pitched by the frame slope. Frames are moved along with the mesh.
func PlaceNacelle(s glider.Surface, length float64, frame glider.AttachmentFrame) glider.Surface {
	tf := d3.Translate(frame.Position).
		Mul(d3.Rotate(-frame.SlopeRad, spanAxis)).
		Mul(d3.Translate(r3.Vec{Z: -length / 2}))
	out := glider.Surface{
		Mesh:     s.Mesh.Transform(tf.Transform),
		Sections: s.Sections,
	}
	for _, f := range s.Frames {
		f.Position = tf.Transform(f.Position)
		f.SlopeRad += frame.SlopeRad
		out.Frames = append(out.Frames, f)
	}
	return out
}
