package render

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glider"
)

// Buffers holds a mesh flattened for GPU upload.
type Buffers struct {
	// Positions holds x,y,z triplets, one per vertex.
	Positions []float32
	// Normals holds unit x,y,z triplets, one per vertex.
	Normals []float32
	Indices []uint32
}

// NewBuffers flattens m into float32 vertex buffers. Normals are computed from
// the triangles sharing each vertex and renormalized after float32 rounding.
func NewBuffers(m glider.Mesh) Buffers {
	normals := m.Normals()
	b := Buffers{
		Positions: make([]float32, 3*len(m.Vertices)),
		Normals:   make([]float32, 3*len(m.Vertices)),
		Indices:   make([]uint32, 0, 3*len(m.Triangles)),
	}
	for i, v := range m.Vertices {
		b.Positions[3*i] = float32(v.X)
		b.Positions[3*i+1] = float32(v.Y)
		b.Positions[3*i+2] = float32(v.Z)
		nx, ny, nz := float32(normals[i].X), float32(normals[i].Y), float32(normals[i].Z)
		if norm := math32.Sqrt(nx*nx + ny*ny + nz*nz); norm > 0 {
			nx, ny, nz = nx/norm, ny/norm, nz/norm
		}
		b.Normals[3*i] = nx
		b.Normals[3*i+1] = ny
		b.Normals[3*i+2] = nz
	}
	for _, t := range m.Triangles {
		b.Indices = append(b.Indices, t[0], t[1], t[2])
	}
	return b
}

// Valid reports whether all buffer values are finite.
func (b Buffers) Valid() bool {
	for _, buf := range [][]float32{b.Positions, b.Normals} {
		for _, f := range buf {
			if math32.IsNaN(f) || math32.IsInf(f, 0) {
				return false
			}
		}
	}
	return true
}
