// Package form3 generates glider surfaces: wings, fuselages, fins and nacelles.
// Functions here return an error instead of panicking on bad parameters.
package form3

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/soypat/glider"
	"github.com/soypat/glider/form3/must3"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the error the builder panicked with, if any.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Stack returns the stack trace captured when a builder panicked.
func Stack(err error) string {
	var s *shapeErr
	if errors.As(err, &s) {
		return s.stack
	}
	return ""
}

// Loft lofts sections into a triangle strip. See must3.BuildStrip.
func Loft(sections []glider.SectionFrame, axis glider.Axis, closed bool) (m glider.Mesh, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.BuildStrip(sections, axis, closed), err
}

// Cap returns the rings of a dome shaped cap. See must3.Cap.
func Cap(edge glider.SectionFrame, capLength, sharpness float64, segments int, reverse bool) (c must3.CapRings, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Cap(edge, capLength, sharpness, segments, reverse), err
}

// Wing returns a lofted, optionally mirrored wing. See must3.Wing.
func Wing(p glider.WingParams) (s glider.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Wing(p), err
}

// Fuselage returns a tapered fuselage body. See must3.Fuselage.
func Fuselage(p glider.FuselageParams) (s glider.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Fuselage(p), err
}

// FuselageProfile returns the cross-section evaluator of a fuselage.
func FuselageProfile(p glider.FuselageParams) (prof must3.FuselageProfile, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Profile(p), err
}

// Fin returns an extruded fin in its local frame. See must3.Fin.
func Fin(p glider.FinParams) (s glider.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Fin(p), err
}

// MountFin builds a fin and mounts it on frame. See must3.FinTransform.
func MountFin(p glider.FinParams, frame glider.AttachmentFrame, bottom bool) (m glider.Mesh, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	fin := must3.Fin(p)
	return must3.MountFin(fin.Mesh, frame, p.AngleDeg, bottom), err
}

// Nacelle returns a nacelle body with fins in its local frame. See must3.Nacelle.
func Nacelle(p glider.NacelleParams, fins glider.FinMount, side glider.Side) (s glider.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Nacelle(p, fins, side), err
}

// PlaceNacelle builds a nacelle and centers it on a wing attachment frame.
func PlaceNacelle(p glider.NacelleParams, fins glider.FinMount, frame glider.AttachmentFrame) (s glider.Surface, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	n := must3.Nacelle(p, fins, frame.Side)
	return must3.PlaceNacelle(n, p.Body.Length, frame), err
}
