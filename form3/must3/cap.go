package must3

import (
	"math"

	"github.com/soypat/glider"
	"github.com/soypat/glider/internal/d2"
)

// DefaultCapSegments is the number of cap subdivisions used when 0 is requested.
const DefaultCapSegments = 5

// CapRings is a dome closing the end of a loft.
type CapRings struct {
	// Edge is the loft end ring the cap grows from.
	Edge glider.SectionFrame
	// Rings shrink away from Edge. Edge itself is not included.
	Rings []glider.SectionFrame
	// TipPos is the axial position of the single tip vertex.
	TipPos float64
	// Reverse is true for caps growing toward increasing axial positions.
	Reverse bool
}

// Cap returns the rings of a dome shaped cap of capLength beyond edge.
// Ring i of segments is scaled by cos(t·π/2)^sharpness about the section
// origin where t=i/segments. The tip sits exactly capLength from edge.
// A zero capLength returns a cap with no rings and the tip on the edge.
func Cap(edge glider.SectionFrame, capLength, sharpness float64, segments int, reverse bool) CapRings {
	if segments == 0 {
		segments = DefaultCapSegments
	}
	if sharpness == 0 {
		sharpness = 1
	}
	switch {
	case capLength < 0:
		panic(glider.InvalidParam("cap length %g < 0", capLength))
	case sharpness < 0:
		panic(glider.InvalidParam("cap sharpness %g < 0", sharpness))
	case segments < 2:
		panic(glider.InvalidParam("cap segments %d < 2", segments))
	}
	dir := -1.0
	if reverse {
		dir = 1
	}
	c := CapRings{Edge: edge, TipPos: edge.AxialPos + dir*capLength, Reverse: reverse}
	if capLength == 0 {
		return c
	}
	for i := 1; i < segments; i++ {
		t := float64(i) / float64(segments)
		scale := math.Pow(math.Cos(t*math.Pi/2), sharpness)
		pts := make(d2.Set, len(edge.Points))
		copy(pts, edge.Points)
		pts.Scale(scale)
		c.Rings = append(c.Rings, glider.SectionFrame{
			Points:         glider.Polyline2(pts),
			AxialPos:       edge.AxialPos + dir*capLength*t,
			VerticalOffset: edge.VerticalOffset,
		})
	}
	return c
}

// Ordered returns the edge and cap rings sorted by increasing axial position.
func (c CapRings) Ordered() []glider.SectionFrame {
	rings := make([]glider.SectionFrame, 0, len(c.Rings)+1)
	if c.Reverse {
		rings = append(rings, c.Edge)
		return append(rings, c.Rings...)
	}
	for i := len(c.Rings) - 1; i >= 0; i-- {
		rings = append(rings, c.Rings[i])
	}
	return append(rings, c.Edge)
}

// Mesh lofts the cap rings and fans the smallest one onto the tip vertex.
// A cap without rings is a flat fan at the edge's mean point.
func (c CapRings) Mesh(axis glider.Axis) glider.Mesh {
	front := !c.Reverse
	if len(c.Rings) == 0 {
		return FanCloseMean(c.Edge, axis, front)
	}
	last := c.Rings[len(c.Rings)-1]
	m := BuildStrip(c.Ordered(), axis, true)
	m.Append(FanClose(last, ringCenter(last, axis, c.TipPos), axis, front))
	return m
}
