package must2

import (
	"github.com/soypat/glider"
	"gonum.org/v1/gonum/spatial/r2"
	"honnef.co/go/curve"
)

// DefaultSectionPoints is the cross-section resolution used when 0 points are requested.
const DefaultSectionPoints = 64

const (
	// kappa places cubic control points so a quarter arc approximates a circle.
	kappa          = 0.5522847498307936
	arclenAccuracy = 1e-7
)

// Section returns the closed cross-section described by cs resampled to n points.
// The first point is the bottom center (0,-height/2) and points run counter-clockwise.
func Section(cs glider.CrossSection, n int) glider.Polyline2 {
	switch cs.Kind {
	case glider.SectionRoundedRect:
		return RoundedRect(cs.Width, cs.Height, cs.TopRadius, cs.BottomRadius, n)
	case glider.SectionEllipse:
		return Ellipse(cs.Width, cs.Height, n)
	case glider.SectionBlend:
		return Blend(cs.Width, cs.Height, cs.TopKind, cs.BottomKind, cs.TopRadius, cs.BottomRadius, n)
	}
	panic(glider.InvalidParam("unknown section kind %d", int(cs.Kind)))
}

// RoundedRect returns a rectangle centered at the origin with quadratic corner
// arcs. Corner radii are clamped to half the width and half the height.
func RoundedRect(width, height, topRadius, bottomRadius float64, n int) glider.Polyline2 {
	return Blend(width, height, glider.SectionRoundedRect, glider.SectionRoundedRect, topRadius, bottomRadius, n)
}

// Ellipse returns an ellipse centered at the origin.
func Ellipse(width, height float64, n int) glider.Polyline2 {
	return Blend(width, height, glider.SectionEllipse, glider.SectionEllipse, 0, 0, n)
}

// Blend returns a section whose bottom half is built with bottomKind and top
// half with topKind. The halves meet at (±width/2, 0).
func Blend(width, height float64, topKind, bottomKind glider.SectionKind, topRadius, bottomRadius float64, n int) glider.Polyline2 {
	if n == 0 {
		n = DefaultSectionPoints
	}
	switch {
	case width <= 0 || height <= 0:
		panic(glider.InvalidParam("section size %gx%g must be positive", width, height))
	case topRadius < 0 || bottomRadius < 0:
		panic(glider.InvalidParam("negative section corner radius"))
	case n < 3:
		panic(glider.InvalidParam("section points %d < 3", n))
	}
	a, b := width/2, height/2
	bottom := r2.Vec{Y: -b}
	right := r2.Vec{X: a}
	top := r2.Vec{Y: b}
	left := r2.Vec{X: -a}
	var segs []curve.PathSegment
	segs = quadrant(segs, bottomKind, bottom, r2.Vec{X: a, Y: -b}, right, bottomRadius)
	segs = quadrant(segs, topKind, right, r2.Vec{X: a, Y: b}, top, topRadius)
	segs = quadrant(segs, topKind, top, r2.Vec{X: -a, Y: b}, left, topRadius)
	segs = quadrant(segs, bottomKind, left, r2.Vec{X: -a, Y: -b}, bottom, bottomRadius)
	return Resample(segs, n)
}

// quadrant appends the segments joining start to end around corner.
func quadrant(dst []curve.PathSegment, kind glider.SectionKind, start, corner, end r2.Vec, radius float64) []curve.PathSegment {
	switch kind {
	case glider.SectionEllipse:
		return append(dst, curve.PathSegment{
			Kind: curve.CubicKind,
			P0:   pt(start),
			P1:   pt(r2.Add(start, r2.Scale(kappa, r2.Sub(corner, start)))),
			P2:   pt(r2.Add(end, r2.Scale(kappa, r2.Sub(corner, end)))),
			P3:   pt(end),
		})
	case glider.SectionRoundedRect:
		in := r2.Sub(corner, start)
		out := r2.Sub(end, corner)
		radius = min(radius, r2.Norm(in), r2.Norm(out))
		c0 := r2.Sub(corner, r2.Scale(radius, r2.Unit(in)))
		c1 := r2.Add(corner, r2.Scale(radius, r2.Unit(out)))
		dst = appendLine(dst, start, c0)
		if radius > 0 {
			dst = append(dst, curve.PathSegment{Kind: curve.QuadKind, P0: pt(c0), P1: pt(corner), P2: pt(c1)})
		}
		return appendLine(dst, c1, end)
	}
	panic(glider.InvalidParam("section half kind must be roundrect or ellipse, got %s", kind))
}

func appendLine(dst []curve.PathSegment, a, b r2.Vec) []curve.PathSegment {
	if r2.Norm(r2.Sub(b, a)) < tolerance {
		return dst
	}
	return append(dst, curve.PathSegment{Kind: curve.LineKind, P0: pt(a), P1: pt(b)})
}

// Resample returns n points evenly spaced by arc length along the closed
// path formed by segs. The first point is the start of the first segment.
func Resample(segs []curve.PathSegment, n int) glider.Polyline2 {
	lengths := make([]float64, len(segs))
	var total float64
	for i, seg := range segs {
		lengths[i] = seg.Arclen(arclenAccuracy)
		total += lengths[i]
	}
	if total < tolerance {
		panic(glider.ErrDegenerateSection)
	}
	out := make(glider.Polyline2, n)
	iseg := 0
	var base float64 // arc length at the start of segs[iseg]
	for j := range out {
		s := total * float64(j) / float64(n)
		for iseg < len(segs)-1 && s > base+lengths[iseg] {
			base += lengths[iseg]
			iseg++
		}
		seg := segs[iseg]
		t := seg.SolveForArclen(s-base, arclenAccuracy)
		p := seg.Eval(t)
		out[j] = r2.Vec{X: p.X, Y: p.Y}
	}
	return out
}

func pt(v r2.Vec) curve.Point { return curve.Pt(v.X, v.Y) }
