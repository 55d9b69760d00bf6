package must3

import (
	"fmt"

	"github.com/soypat/glider"
	"github.com/soypat/glider/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// BuildStrip lofts consecutive section frames into a triangle strip along axis.
// Every adjacent pair of rings of n points emits 2n interleaved vertices and
// 2(n-1) triangles, plus the ring closing pair when closed is true.
// Sections must be counter-clockwise in their (u,v) frame and ordered by
// increasing axial position for the triangles to face outward.
func BuildStrip(sections []glider.SectionFrame, axis glider.Axis, closed bool) glider.Mesh {
	if len(sections) < 2 {
		panic(glider.InvalidParam("loft needs at least 2 sections, got %d", len(sections)))
	}
	n := len(sections[0].Points)
	for i, s := range sections {
		if len(s.Points) != n {
			panic(fmt.Errorf("%w: section %d has %d points, section 0 has %d", glider.ErrMismatchedSectionTopology, i, len(s.Points), n))
		}
	}
	if n < 2 {
		panic(fmt.Errorf("%w: sections have %d points", glider.ErrDegenerateSection, n))
	}
	quads := n - 1
	if closed {
		quads = n
	}
	pairs := len(sections) - 1
	m := glider.Mesh{
		Vertices:  make([]r3.Vec, 0, 2*n*pairs),
		Triangles: make([][3]uint32, 0, 2*quads*pairs),
	}
	flip := !axis.Reflects()
	for s := 0; s < pairs; s++ {
		root, tip := sections[s], sections[s+1]
		off := uint32(len(m.Vertices))
		for i := 0; i < n; i++ {
			m.Vertices = append(m.Vertices,
				axis.Place(root.AxialPos, root.Points[i], root.VerticalOffset),
				axis.Place(tip.AxialPos, tip.Points[i], tip.VerticalOffset),
			)
		}
		for i := 0; i < quads; i++ {
			j := (i + 1) % n
			r1 := off + 2*uint32(i)
			t1 := r1 + 1
			r2 := off + 2*uint32(j)
			t2 := r2 + 1
			if flip {
				m.Triangles = append(m.Triangles, [3]uint32{r1, r2, t1}, [3]uint32{t1, r2, t2})
			} else {
				m.Triangles = append(m.Triangles, [3]uint32{r1, t1, r2}, [3]uint32{t1, t2, r2})
			}
		}
	}
	return m
}

// FanClose closes ring onto the single vertex apex. front selects whether
// the fan faces toward decreasing (true) or increasing axial positions.
func FanClose(ring glider.SectionFrame, apex r3.Vec, axis glider.Axis, front bool) glider.Mesh {
	n := len(ring.Points)
	if n < 3 {
		panic(fmt.Errorf("%w: fan ring has %d points", glider.ErrDegenerateSection, n))
	}
	m := glider.Mesh{
		Vertices:  make([]r3.Vec, 0, n+1),
		Triangles: make([][3]uint32, 0, n),
	}
	for _, p := range ring.Points {
		m.Vertices = append(m.Vertices, axis.Place(ring.AxialPos, p, ring.VerticalOffset))
	}
	c := uint32(n)
	m.Vertices = append(m.Vertices, apex)
	ccw := front == axis.Reflects()
	for i := 0; i < n; i++ {
		a, b := uint32(i), uint32((i+1)%n)
		if ccw {
			m.Triangles = append(m.Triangles, [3]uint32{c, a, b})
		} else {
			m.Triangles = append(m.Triangles, [3]uint32{c, b, a})
		}
	}
	return m
}

// FanCloseMean closes ring onto its mean point in the ring's plane.
func FanCloseMean(ring glider.SectionFrame, axis glider.Axis, front bool) glider.Mesh {
	mean := d2.Set(ring.Points).Mean()
	return FanClose(ring, axis.Place(ring.AxialPos, mean, ring.VerticalOffset), axis, front)
}

// ringCenter returns the world position of the ring's local origin.
func ringCenter(ring glider.SectionFrame, axis glider.Axis, axial float64) r3.Vec {
	return axis.Place(axial, r2.Vec{}, ring.VerticalOffset)
}
