// Package render exports glider meshes as STL files, GPU buffers,
// preview images and cross-section plots.
package render

import (
	"io"

	"github.com/soypat/glider"
	"github.com/soypat/glider/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams triangles. ReadTriangles returns io.EOF once all
// triangles have been read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle with counter-clockwise vertices.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle. It is the zero vector
// for degenerate triangles.
func (t Triangle3) Normal() r3.Vec {
	n := d3.TriangleNormal(t.V[0], t.V[1], t.V[2])
	norm := r3.Norm(n)
	if norm == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/norm, n)
}

// Degenerate reports whether the triangle's area is too small to give it a
// normal. Degenerate triangles are left out of STL files.
func (t Triangle3) Degenerate() bool {
	return d3.TriangleArea(t.V[0], t.V[1], t.V[2]) < minFacetArea
}

// MeshRenderer streams the triangles of an indexed mesh.
type MeshRenderer struct {
	m    glider.Mesh
	next int
}

// NewMeshRenderer returns a Renderer over the triangles of m.
func NewMeshRenderer(m glider.Mesh) *MeshRenderer {
	return &MeshRenderer{m: m}
}

// ReadTriangles fills t with the next triangles of the mesh.
func (r *MeshRenderer) ReadTriangles(t []Triangle3) (n int, err error) {
	for n < len(t) && r.next < len(r.m.Triangles) {
		idx := r.m.Triangles[r.next]
		t[n] = Triangle3{V: [3]r3.Vec{r.m.Vertices[idx[0]], r.m.Vertices[idx[1]], r.m.Vertices[idx[2]]}}
		r.next++
		n++
	}
	if r.next >= len(r.m.Triangles) {
		err = io.EOF
	}
	return n, err
}

// Reset rewinds the renderer to the first triangle.
func (r *MeshRenderer) Reset() { r.next = 0 }
