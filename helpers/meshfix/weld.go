// Package meshfix joins the separately generated pieces of glider meshes into
// shared-vertex meshes and checks them for holes before printing.
package meshfix

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/glider"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Weld merges vertices closer than tol to each other and drops the triangles
// that collapse as a result. Triangle winding is kept.
// tol should be much smaller than the shortest edge of the mesh. If set to 0
// then it is inferred from the shortest non degenerate edge.
func Weld(m glider.Mesh, tolOrZero float64) (glider.Mesh, error) {
	if err := m.Validate(); err != nil {
		return glider.Mesh{}, err
	}
	if len(m.Triangles) == 0 {
		return glider.Mesh{}, nil
	}
	minDist2 := math.MaxFloat64
	maxDist2 := 0.0
	for _, t := range m.Triangles {
		for j := range t {
			side2 := r3.Norm2(r3.Sub(m.Vertices[t[(j+1)%3]], m.Vertices[t[j]]))
			if side2 > 0 {
				minDist2 = math.Min(minDist2, side2)
			}
			maxDist2 = math.Max(maxDist2, side2)
		}
	}
	if maxDist2 == 0 {
		return glider.Mesh{}, errors.New("mesh has no non degenerate edges")
	}
	suggested := math.Sqrt(minDist2) / 256
	tol := tolOrZero
	switch {
	case tol < 0:
		return glider.Mesh{}, fmt.Errorf("negative weld tolerance %g", tol)
	case tol == 0:
		tol = suggested
	case tol > math.Sqrt(maxDist2)/2:
		return glider.Mesh{}, fmt.Errorf("weld tolerance is too large for mesh, suggested tolerance: %g", suggested)
	}

	verts := make(vertexList, len(m.Vertices))
	for i, v := range m.Vertices {
		verts[i] = vertex{V: v, idx: i}
	}
	// kdtree.New reorders verts, indices are kept in each vertex.
	tree := kdtree.New(verts, false)
	remap := make([]int, len(m.Vertices))
	for i := range remap {
		remap[i] = -1
	}
	var out glider.Mesh
	for i, v := range m.Vertices {
		if remap[i] >= 0 {
			continue
		}
		idx := len(out.Vertices)
		out.Vertices = append(out.Vertices, v)
		remap[i] = idx
		keep := kdtree.NewDistKeeper(tol * tol)
		tree.NearestSet(keep, &vertex{V: v})
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			j := c.Comparable.(*vertex).idx
			if remap[j] < 0 {
				remap[j] = idx
			}
		}
	}
	out.Triangles = make([][3]uint32, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		a, b, c := uint32(remap[t[0]]), uint32(remap[t[1]]), uint32(remap[t[2]])
		if a == b || b == c || c == a {
			continue
		}
		out.Triangles = append(out.Triangles, [3]uint32{a, b, c})
	}
	return out, nil
}

// OpenEdges returns the directed edges of m which are not matched by as many
// opposite edges in neighbouring triangles. A welded closed surface has none.
// Faces glued back to back, such as the roots of a mirrored wing, still count
// as closed.
func OpenEdges(m glider.Mesh) [][2]uint32 {
	count := make(map[[2]uint32]int, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		for j := range t {
			count[[2]uint32{t[j], t[(j+1)%3]}]++
		}
	}
	var open [][2]uint32
	for e, n := range count {
		if count[[2]uint32{e[1], e[0]}] != n {
			open = append(open, e)
		}
	}
	return open
}

// Watertight welds m with an inferred tolerance and reports whether the
// result is a closed surface.
func Watertight(m glider.Mesh) (bool, error) {
	w, err := Weld(m, 0)
	if err != nil {
		return false, err
	}
	return len(w.Triangles) > 0 && len(OpenEdges(w)) == 0, nil
}
