package d3

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform represents a rigid 3D transformation: a rotation
// followed by a translation.
// The zero value of Transform is the identity transform.
type Transform struct {
	// rot is the zero quaternion for the identity.
	rot r3.Rotation
	pos r3.Vec
}

// Rotate returns a transform that rotates by angle radians about axis
// following the right hand rule.
func Rotate(angle float64, axis r3.Vec) Transform {
	if angle == 0 {
		return Transform{}
	}
	return Transform{rot: r3.NewRotation(angle, axis)}
}

// Translate returns a transform that moves by v.
func Translate(v r3.Vec) Transform {
	return Transform{pos: v}
}

// Transform applies the Transform to the argument vector
// and returns the result.
func (t Transform) Transform(v r3.Vec) r3.Vec {
	if t.rot != (r3.Rotation{}) {
		v = t.rot.Rotate(v)
	}
	return r3.Add(v, t.pos)
}

// Mul multiplies the Transforms t and b and returns the result.
// The result applies b first and then t.
func (t Transform) Mul(b Transform) Transform {
	if t == (Transform{}) {
		return b
	}
	if b == (Transform{}) {
		return t
	}
	var m Transform
	switch {
	case t.rot == (r3.Rotation{}):
		m.rot = b.rot
	case b.rot == (r3.Rotation{}):
		m.rot = t.rot
	default:
		m.rot = r3.Rotation(quat.Mul(quat.Number(t.rot), quat.Number(b.rot)))
	}
	m.pos = t.Transform(b.pos)
	return m
}
