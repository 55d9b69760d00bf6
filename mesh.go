package glider

import (
	"fmt"
	"math"

	"github.com/soypat/glider/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed triangle mesh. Triangles are wound counter-clockwise
// when seen from outside the surface.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles [][3]uint32
}

// Append adds the vertices and triangles of b to the mesh.
func (m *Mesh) Append(b Mesh) {
	off := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, b.Vertices...)
	for _, t := range b.Triangles {
		m.Triangles = append(m.Triangles, [3]uint32{t[0] + off, t[1] + off, t[2] + off})
	}
}

// Merge returns a single mesh holding all argument meshes.
func Merge(meshes ...Mesh) Mesh {
	var nv, nt int
	for _, m := range meshes {
		nv += len(m.Vertices)
		nt += len(m.Triangles)
	}
	out := Mesh{
		Vertices:  make([]r3.Vec, 0, nv),
		Triangles: make([][3]uint32, 0, nt),
	}
	for _, m := range meshes {
		out.Append(m)
	}
	return out
}

// Mirror returns the mesh with a copy reflected across the X=0 plane appended.
// Reflection reverses orientation so the copied triangles have two indices
// swapped to keep them facing outward.
func (m Mesh) Mirror() Mesh {
	n := len(m.Vertices)
	out := Mesh{
		Vertices:  make([]r3.Vec, 2*n),
		Triangles: make([][3]uint32, 2*len(m.Triangles)),
	}
	copy(out.Vertices, m.Vertices)
	for i, v := range m.Vertices {
		out.Vertices[n+i] = r3.Vec{X: -v.X, Y: v.Y, Z: v.Z}
	}
	copy(out.Triangles, m.Triangles)
	off := uint32(n)
	for i, t := range m.Triangles {
		out.Triangles[len(m.Triangles)+i] = [3]uint32{t[0] + off, t[2] + off, t[1] + off}
	}
	return out
}

// Transform returns a copy of the mesh with f applied to every vertex.
// f must preserve orientation.
func (m Mesh) Transform(f func(r3.Vec) r3.Vec) Mesh {
	out := Mesh{
		Vertices:  make([]r3.Vec, len(m.Vertices)),
		Triangles: append([][3]uint32(nil), m.Triangles...),
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = f(v)
	}
	return out
}

// Translate returns a copy of the mesh moved by v.
func (m Mesh) Translate(v r3.Vec) Mesh {
	return m.Transform(func(p r3.Vec) r3.Vec { return r3.Add(p, v) })
}

// Normals returns per-vertex normals accumulated from the area weighted
// normals of the triangles sharing each vertex. Unreferenced vertices and
// vertices only touched by degenerate triangles get a zero normal.
func (m Mesh) Normals() []r3.Vec {
	acc := make([]r3.Vec, len(m.Vertices))
	for _, t := range m.Triangles {
		n := d3.TriangleNormal(m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]])
		for _, idx := range t {
			acc[idx] = r3.Add(acc[idx], n)
		}
	}
	for i, n := range acc {
		norm := r3.Norm(n)
		if norm < epsilon {
			acc[i] = r3.Vec{}
			continue
		}
		acc[i] = r3.Scale(1/norm, n)
	}
	return acc
}

// Bounds returns the bounding box of all vertices. The zero Box is returned
// for an empty mesh.
func (m Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	return r3.Box{Min: d3.Set(m.Vertices).Min(), Max: d3.Set(m.Vertices).Max()}
}

// Validate checks every index is in range and every vertex is finite.
func (m Mesh) Validate() error {
	nv := uint32(len(m.Vertices))
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx >= nv {
				return fmt.Errorf("%w: triangle %d index %d out of range [0,%d)", ErrMismatchedSectionTopology, i, idx, nv)
			}
		}
	}
	for i, v := range m.Vertices {
		if math.IsNaN(v.X+v.Y+v.Z) || math.IsInf(v.X+v.Y+v.Z, 0) {
			return fmt.Errorf("%w: vertex %d is not finite: %v", ErrDegenerateSection, i, v)
		}
	}
	return nil
}
