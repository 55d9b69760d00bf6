package glider

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// tetra is a unit tetrahedron with outward facing triangles.
func tetra() Mesh {
	return Mesh{
		Vertices: []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}},
		Triangles: [][3]uint32{
			{0, 2, 1},
			{0, 1, 3},
			{0, 3, 2},
			{1, 2, 3},
		},
	}
}

func signedVolume(m Mesh) float64 {
	var vol float64
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		vol += r3.Dot(a, r3.Cross(b, c)) / 6
	}
	return vol
}

func TestMeshMirror(t *testing.T) {
	m := tetra().Translate(r3.Vec{X: 1})
	mirrored := m.Mirror()
	if len(mirrored.Vertices) != 8 || len(mirrored.Triangles) != 8 {
		t.Fatalf("got %d vertices and %d triangles", len(mirrored.Vertices), len(mirrored.Triangles))
	}
	want := 2 * signedVolume(m)
	if got := signedVolume(mirrored); math.Abs(got-want) > 1e-12 {
		t.Errorf("mirrored volume %g, want %g", got, want)
	}
	// Normals of the copy are the reflected normals of the original.
	normals := mirrored.Normals()
	for i := 0; i < 4; i++ {
		n, c := normals[i], normals[i+4]
		if r3.Norm(r3.Sub(c, r3.Vec{X: -n.X, Y: n.Y, Z: n.Z})) > 1e-12 {
			t.Errorf("vertex %d: mirrored normal %v, original %v", i, c, n)
		}
	}
}

func TestMeshNormals(t *testing.T) {
	m := tetra()
	normals := m.Normals()
	// The vertex at the origin is surrounded by the three axis aligned faces.
	want := r3.Unit(r3.Vec{X: -1, Y: -1, Z: -1})
	if r3.Norm(r3.Sub(normals[0], want)) > 1e-12 {
		t.Errorf("got origin normal %v, want %v", normals[0], want)
	}
	for i, n := range normals {
		if math.Abs(r3.Norm(n)-1) > 1e-12 {
			t.Errorf("normal %d not unit: %v", i, n)
		}
	}
	m.Vertices = append(m.Vertices, r3.Vec{X: 5})
	if n := m.Normals()[4]; n != (r3.Vec{}) {
		t.Errorf("unreferenced vertex normal %v, want zero", n)
	}
}

func TestMeshValidate(t *testing.T) {
	m := tetra()
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	bad := tetra()
	bad.Triangles = append(bad.Triangles, [3]uint32{0, 1, 9})
	if err := bad.Validate(); !errors.Is(err, ErrMismatchedSectionTopology) {
		t.Errorf("got %v for out of range index", err)
	}
	bad = tetra()
	bad.Vertices[2].Y = math.NaN()
	if err := bad.Validate(); !errors.Is(err, ErrDegenerateSection) {
		t.Errorf("got %v for NaN vertex", err)
	}
}

func TestMeshMerge(t *testing.T) {
	a, b := tetra(), tetra().Translate(r3.Vec{Z: 3})
	m := Merge(a, b)
	if len(m.Vertices) != 8 || len(m.Triangles) != 8 {
		t.Fatalf("got %d vertices and %d triangles", len(m.Vertices), len(m.Triangles))
	}
	if m.Triangles[4] != [3]uint32{4, 6, 5} {
		t.Errorf("second mesh indices not offset: %v", m.Triangles[4])
	}
	box := m.Bounds()
	if box.Min != (r3.Vec{}) || box.Max != (r3.Vec{X: 1, Y: 1, Z: 4}) {
		t.Errorf("got bounds %v", box)
	}
}

func TestTaper(t *testing.T) {
	for _, test := range []struct {
		p, pos, target, curve float64
		want                  float64
	}{
		{p: 0.2, pos: 0.3, target: 0.5, curve: 1, want: 1},
		{p: 1, pos: 0.3, target: 0.5, curve: 1, want: 0.5},
		{p: 0.65, pos: 0.3, target: 0.5, curve: 1, want: 0.75},
		{p: 0.65, pos: 0.3, target: 0.5, curve: 0, want: 0.75},
		{p: 1, pos: 0, target: 0, curve: 2, want: 0.001},
	} {
		got := Taper(test.p, test.pos, test.target, test.curve)
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("Taper(%g,%g,%g,%g)=%g, want %g", test.p, test.pos, test.target, test.curve, got, test.want)
		}
	}
	// Tapering to zero floors at 0.001 for every curve.
	for i := 1; i <= 50; i++ {
		curve := float64(i) / 10
		if got := Taper(1, 0, 0, curve); got != 0.001 {
			t.Errorf("curve %g: end scale %g, want 0.001", curve, got)
		}
		for _, p := range []float64{0.25, 0.5, 0.75, 0.999} {
			if got := Taper(p, 0, 0, curve); got < 0.001 || got > 1 {
				t.Errorf("curve %g: scale %g at p=%g out of [0.001,1]", curve, got, p)
			}
		}
	}
}

func TestPolylineValidate(t *testing.T) {
	square := Polyline2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if err := square.Validate(); err != nil {
		t.Fatal(err)
	}
	if a := square.SignedArea(); a != 1 {
		t.Errorf("ccw square area %g, want 1", a)
	}
	if a := square.Reversed().SignedArea(); a != -1 {
		t.Errorf("cw square area %g, want -1", a)
	}
	for name, p := range map[string]Polyline2{
		"short":     {{}, {X: 1}},
		"repeated":  {{}, {X: 1}, {X: 1}, {Y: 1}},
		"wrap":      {{}, {X: 1}, {Y: 1}, {}},
		"collinear": {{}, {X: 1}, {X: 2}},
	} {
		if err := p.Validate(); !errors.Is(err, ErrDegenerateSection) {
			t.Errorf("%s: got %v, want degenerate section", name, err)
		}
	}
}

func TestAxisPlace(t *testing.T) {
	p := r2.Vec{X: 2, Y: 3}
	if got := AxisX.Place(5, p, 1); got != (r3.Vec{X: 5, Y: 4, Z: 2}) {
		t.Errorf("AxisX placed %v", got)
	}
	if got := AxisZ.Place(5, p, 1); got != (r3.Vec{X: 2, Y: 4, Z: 5}) {
		t.Errorf("AxisZ placed %v", got)
	}
}
