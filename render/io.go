package render

import (
	"errors"
	"io"

	"github.com/soypat/glider"
	"gonum.org/v1/gonum/spatial/r3"
)

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.RenderAll implementation.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if errors.Is(err, io.EOF) {
		return result, nil
	}
	return result, err
}

// ToMesh converts a triangle soup to an indexed mesh. Vertices are not shared
// between triangles.
func ToMesh(model []Triangle3) glider.Mesh {
	m := glider.Mesh{
		Vertices:  make([]r3.Vec, 0, 3*len(model)),
		Triangles: make([][3]uint32, 0, len(model)),
	}
	for _, t := range model {
		i := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, t.V[:]...)
		m.Triangles = append(m.Triangles, [3]uint32{i, i + 1, i + 2})
	}
	return m
}
