// Package form2 generates the 2D profiles glider surfaces are lofted from.
// Functions here return an error instead of panicking on bad parameters.
package form2

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/soypat/glider"
	"github.com/soypat/glider/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
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

// Stack returns the stack trace captured when the builder panicked.
func Stack(err error) string {
	var s *shapeErr
	if errors.As(err, &s) {
		return s.stack
	}
	return ""
}

// Airfoil returns a NACA 4-digit airfoil ribbon. See must2.Airfoil.
func Airfoil(p glider.AirfoilParams, resolution int) (pts glider.Polyline2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Airfoil(p, resolution), err
}

// RotateAbout returns pts rotated by angleDeg degrees about pivot.
func RotateAbout(pts glider.Polyline2, angleDeg float64, pivot r2.Vec) glider.Polyline2 {
	return must2.RotateAbout(pts, angleDeg, pivot)
}

// Section returns a closed cross-section of n points. See must2.Section.
func Section(cs glider.CrossSection, n int) (pts glider.Polyline2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Section(cs, n), err
}

// FinOutline returns the planform of a fin.
func FinOutline(p glider.FinParams) (pts glider.Polyline2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.FinOutline(p), err
}
