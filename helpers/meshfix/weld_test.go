package meshfix_test

import (
	"testing"

	"github.com/soypat/glider"
	"github.com/soypat/glider/form3"
	"github.com/soypat/glider/helpers/meshfix"
	"gonum.org/v1/gonum/spatial/r3"
)

// faceCube returns a unit cube where every face owns its 4 vertices.
func faceCube() glider.Mesh {
	c := func(i int) r3.Vec {
		return r3.Vec{X: float64(i & 1), Y: float64(i >> 1 & 1), Z: float64(i >> 2 & 1)}
	}
	// Counter-clockwise seen from outside.
	faces := [6][4]int{
		{0, 2, 3, 1}, // -Z
		{4, 5, 7, 6}, // +Z
		{0, 1, 5, 4}, // -Y
		{2, 6, 7, 3}, // +Y
		{0, 4, 6, 2}, // -X
		{1, 3, 7, 5}, // +X
	}
	var m glider.Mesh
	for _, f := range faces {
		off := uint32(len(m.Vertices))
		for _, i := range f {
			m.Vertices = append(m.Vertices, c(i))
		}
		m.Triangles = append(m.Triangles, [3]uint32{off, off + 1, off + 2}, [3]uint32{off, off + 2, off + 3})
	}
	return m
}

func TestWeldCube(t *testing.T) {
	m := faceCube()
	if len(meshfix.OpenEdges(m)) != 24 {
		t.Errorf("unwelded cube: expected 24 open edges, got %d", len(meshfix.OpenEdges(m)))
	}
	w, err := meshfix.Weld(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Vertices) != 8 || len(w.Triangles) != 12 {
		t.Errorf("welded cube: got %d vertices and %d triangles", len(w.Vertices), len(w.Triangles))
	}
	if open := meshfix.OpenEdges(w); len(open) != 0 {
		t.Errorf("welded cube has open edges %v", open)
	}
}

func TestWeldDropsCollapsed(t *testing.T) {
	m := faceCube()
	// Sliver triangle which collapses once welded.
	off := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, r3.Vec{}, r3.Vec{X: 1e-9}, r3.Vec{X: 1})
	m.Triangles = append(m.Triangles, [3]uint32{off, off + 1, off + 2})
	w, err := meshfix.Weld(m, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Triangles) != 12 {
		t.Errorf("expected collapsed triangle to be dropped, got %d triangles", len(w.Triangles))
	}
	if err := w.Validate(); err != nil {
		t.Error(err)
	}
}

func TestWeldErrors(t *testing.T) {
	m := faceCube()
	if _, err := meshfix.Weld(m, -1); err == nil {
		t.Error("expected error for negative tolerance")
	}
	if _, err := meshfix.Weld(m, 10); err == nil {
		t.Error("expected error for tolerance larger than mesh")
	}
	flat := glider.Mesh{Vertices: []r3.Vec{{}, {}, {}}, Triangles: [][3]uint32{{0, 1, 2}}}
	if _, err := meshfix.Weld(flat, 0); err == nil {
		t.Error("expected error for degenerate mesh")
	}
	w, err := meshfix.Weld(glider.Mesh{}, 0)
	if err != nil || len(w.Vertices) != 0 {
		t.Errorf("empty mesh: got %v, %v", w, err)
	}
}

func TestWatertightFuselage(t *testing.T) {
	s, err := form3.Fuselage(glider.FuselageParams{
		Length:        300,
		FrontWidth:    40,
		FrontHeight:   50,
		BackWidth:     10,
		BackHeight:    12,
		CurveH:        1,
		CurveV:        1,
		CloseNose:     true,
		CloseTail:     true,
		NosecapLength: 30,
		TailcapLength: 5,
	})
	if err != nil {
		t.Fatal(err)
	}
	ok, err := meshfix.Watertight(s.Mesh)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("fuselage is not watertight")
	}
	open := glider.Mesh{Vertices: s.Mesh.Vertices, Triangles: s.Mesh.Triangles[1:]}
	if ok, _ = meshfix.Watertight(open); ok {
		t.Error("fuselage missing a triangle reported watertight")
	}
}
