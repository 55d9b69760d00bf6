package must3

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/glider"
	"gonum.org/v1/gonum/spatial/r3"
)

var unitSquare = glider.Polyline2{{X: -.5, Y: -.5}, {X: .5, Y: -.5}, {X: .5, Y: .5}, {X: -.5, Y: .5}}

func signedVolume(m glider.Mesh) float64 {
	var vol float64
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		vol += r3.Dot(a, r3.Cross(b, c)) / 6
	}
	return vol
}

// checkClosed checks every directed edge of m, compared by vertex position,
// is matched by exactly one edge running the opposite way.
func checkClosed(t *testing.T, m glider.Mesh) {
	t.Helper()
	type edge struct{ a, b r3.Vec }
	edges := make(map[edge]int)
	for _, tri := range m.Triangles {
		for i := range tri {
			e := edge{m.Vertices[tri[i]], m.Vertices[tri[(i+1)%3]]}
			edges[e]++
		}
	}
	for e, n := range edges {
		if n != 1 {
			t.Fatalf("edge %v->%v used %d times", e.a, e.b, n)
		}
		if edges[edge{e.b, e.a}] != 1 {
			t.Fatalf("edge %v->%v has no opposite", e.a, e.b)
		}
	}
}

func TestBuildStrip(t *testing.T) {
	rings := []glider.SectionFrame{
		{Points: unitSquare, AxialPos: 0},
		{Points: unitSquare, AxialPos: 1},
		{Points: unitSquare, AxialPos: 3, VerticalOffset: 1},
	}
	m := BuildStrip(rings, glider.AxisZ, true)
	if len(m.Vertices) != 16 || len(m.Triangles) != 16 {
		t.Errorf("closed strip: got %d vertices and %d triangles", len(m.Vertices), len(m.Triangles))
	}
	m = BuildStrip(rings, glider.AxisZ, false)
	if len(m.Vertices) != 16 || len(m.Triangles) != 12 {
		t.Errorf("open strip: got %d vertices and %d triangles", len(m.Vertices), len(m.Triangles))
	}
	if err := m.Validate(); err != nil {
		t.Error(err)
	}
}

func TestBuildStripMismatch(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, glider.ErrMismatchedSectionTopology) {
			t.Errorf("got %v, want mismatched section topology", err)
		}
	}()
	BuildStrip([]glider.SectionFrame{
		{Points: unitSquare},
		{Points: unitSquare[:3], AxialPos: 1},
	}, glider.AxisX, true)
}

// A unit cube lofted along either axis and fan closed at both ends must be
// closed with outward facing triangles.
func TestLoftWinding(t *testing.T) {
	for _, axis := range []glider.Axis{glider.AxisX, glider.AxisZ} {
		rings := []glider.SectionFrame{
			{Points: unitSquare, AxialPos: 2},
			{Points: unitSquare, AxialPos: 3},
		}
		m := BuildStrip(rings, axis, true)
		m.Append(FanCloseMean(rings[0], axis, true))
		m.Append(FanCloseMean(rings[1], axis, false))
		checkClosed(t, m)
		if vol := signedVolume(m); math.Abs(vol-1) > 1e-12 {
			t.Errorf("axis %s: volume %g, want 1", axis, vol)
		}
	}
}

func TestCap(t *testing.T) {
	edge := glider.SectionFrame{Points: unitSquare, AxialPos: 10, VerticalOffset: 2}
	c := Cap(edge, 20, 1, 5, false)
	if len(c.Rings) != 4 {
		t.Fatalf("got %d rings, want 4", len(c.Rings))
	}
	if c.TipPos != -10 {
		t.Errorf("tip at %g, want -10", c.TipPos)
	}
	prev := edge.Points[0].X
	for i, r := range c.Rings {
		if x := r.Points[0].X; x >= 0 || x <= prev {
			t.Errorf("ring %d does not shrink: %g after %g", i, x, prev)
		} else {
			prev = x
		}
		if r.VerticalOffset != 2 {
			t.Errorf("ring %d offset %g", i, r.VerticalOffset)
		}
	}
	ordered := c.Ordered()
	for i := 1; i < len(ordered); i++ {
		if ordered[i].AxialPos <= ordered[i-1].AxialPos {
			t.Fatalf("ordered rings not increasing at %d", i)
		}
	}
	if ordered[len(ordered)-1].AxialPos != edge.AxialPos {
		t.Error("edge is not the last front cap ring")
	}
	m := c.Mesh(glider.AxisZ)
	if b := m.Bounds(); b.Min.Z != -10 {
		t.Errorf("cap tip at z=%g, want -10", b.Min.Z)
	}
	if flat := Cap(edge, 0, 1, 5, true); len(flat.Rings) != 0 || flat.TipPos != edge.AxialPos {
		t.Errorf("zero length cap: %d rings, tip %g", len(flat.Rings), flat.TipPos)
	}
}
