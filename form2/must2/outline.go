package must2

import (
	"github.com/soypat/glider"
	"github.com/soypat/glider/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"honnef.co/go/curve"
)

// cornerSteps is the number of segments a rounded fin corner is flattened into.
const cornerSteps = 8

// FinOutline returns the counter-clockwise planform of a fin in its (chord, height)
// plane. The root edge lies on v=0 starting at u=Offset. The top corners are
// rounded with quadratic arcs when the corner radii are non-zero.
func FinOutline(p glider.FinParams) glider.Polyline2 {
	switch {
	case p.Height <= 0:
		panic(glider.InvalidParam("fin height %g <= 0", p.Height))
	case p.RootChord <= 0:
		panic(glider.InvalidParam("fin root chord %g <= 0", p.RootChord))
	case p.TipChord < 0:
		panic(glider.InvalidParam("fin tip chord %g < 0", p.TipChord))
	}
	h := p.Height
	lead := func(t float64) float64 { return p.Offset + p.Sweep*t }
	trail := func(t float64) float64 { return p.Offset + p.RootChord + (p.Sweep+p.TipChord-p.RootChord)*t }

	topWidth := trail(1) - lead(1)
	bcr := max(0, p.BackCornerRadius)
	fcr := max(0, p.FrontCornerRadius)
	if bcr > topWidth {
		bcr = topWidth
	}
	if fcr > topWidth-bcr {
		fcr = topWidth - bcr
	}
	bcr = min(bcr, h)
	fcr = min(fcr, h)
	trailSweep := trail(1) - trail(0)
	leadSweep := lead(1) - lead(0)

	pts := d2.Set{{X: lead(0)}, {X: trail(0)}}
	if bcr > 0 {
		pts = appendQuad(pts,
			r2.Vec{X: trail(1) - bcr*trailSweep/h, Y: h - bcr},
			r2.Vec{X: trail(1), Y: h},
			r2.Vec{X: trail(1) - bcr, Y: h})
	} else {
		pts = append(pts, r2.Vec{X: trail(1), Y: h})
	}
	if fcr > 0 {
		pts = appendQuad(pts,
			r2.Vec{X: lead(1) + fcr, Y: h},
			r2.Vec{X: lead(1), Y: h},
			r2.Vec{X: lead(1) - fcr*leadSweep/h, Y: h - fcr})
	} else {
		pts = append(pts, r2.Vec{X: lead(1), Y: h})
	}
	out := glider.Polyline2(pts.Dedup(tolerance))
	if err := out.Validate(); err != nil {
		panic(err)
	}
	return out
}

// appendQuad appends the flattened quadratic arc from p0 to p2 including both ends.
func appendQuad(dst d2.Set, p0, p1, p2 r2.Vec) d2.Set {
	q := curve.QuadBez{P0: pt(p0), P1: pt(p1), P2: pt(p2)}
	for i := 0; i <= cornerSteps; i++ {
		v := q.Eval(float64(i) / cornerSteps)
		dst = append(dst, r2.Vec{X: v.X, Y: v.Y})
	}
	return dst
}
