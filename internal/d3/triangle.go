package d3

import "gonum.org/v1/gonum/spatial/r3"

// TriangleNormal returns the area weighted normal of the counter-clockwise
// triangle (a,b,c). Its norm is twice the triangle's area.
func TriangleNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}

// TriangleArea returns the area of triangle (a,b,c).
func TriangleArea(a, b, c r3.Vec) float64 {
	return r3.Norm(TriangleNormal(a, b, c)) / 2
}
