package meshfix

import (
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

type vertex struct {
	V   r3.Vec
	idx int // index in the source mesh.
}

func (v *vertex) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(*vertex)
	switch d {
	case 0:
		return v.V.X - q.V.X
	case 1:
		return v.V.Y - q.V.Y
	case 2:
		return v.V.Z - q.V.Z
	}
	panic("unreachable")
}

func (v *vertex) Dims() int { return 3 }

// Distance returns the squared distance between vertices.
func (v *vertex) Distance(c kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(v.V, c.(*vertex).V))
}

type vertexList []vertex

// Index returns the ith element of the list of points.
func (l vertexList) Index(i int) kdtree.Comparable { return &l[i] }

// Len returns the length of the list.
func (l vertexList) Len() int { return len(l) }

// Pivot partitions the list based on the dimension specified.
func (l vertexList) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: d, vertices: l}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (l vertexList) Slice(start, end int) kdtree.Interface { return l[start:end] }

type kdPlane struct {
	dim      kdtree.Dim
	vertices vertexList
}

func (p kdPlane) Less(i, j int) bool {
	return p.vertices[i].Compare(&p.vertices[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}
func (p kdPlane) Len() int {
	return len(p.vertices)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]
	return p
}
