package form3_test

import (
	"errors"
	"testing"

	"github.com/soypat/glider"
	"github.com/soypat/glider/form3"
)

func TestErrors(t *testing.T) {
	square := glider.Polyline2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	_, err := form3.Loft([]glider.SectionFrame{
		{Points: square},
		{Points: square[:3], AxialPos: 1},
	}, glider.AxisZ, true)
	if !errors.Is(err, glider.ErrMismatchedSectionTopology) {
		t.Errorf("loft: got %v, want mismatched topology", err)
	}
	if form3.Stack(err) == "" {
		t.Error("no stack recorded for loft panic")
	}

	_, err = form3.Wing(glider.WingParams{Sections: make([]glider.WingSectionParams, 1)})
	if !errors.Is(err, glider.ErrInvalidParameter) {
		t.Errorf("wing: got %v, want invalid parameter", err)
	}
	_, err = form3.Fuselage(glider.FuselageParams{Length: 10, FrontWidth: 1, FrontHeight: 1, VerticalAlign: 2})
	if !errors.Is(err, glider.ErrInvalidParameter) {
		t.Errorf("fuselage: got %v, want invalid parameter", err)
	}
	_, err = form3.Cap(glider.SectionFrame{Points: square}, -1, 1, 4, false)
	if !errors.Is(err, glider.ErrInvalidParameter) {
		t.Errorf("cap: got %v, want invalid parameter", err)
	}
	_, err = form3.Fin(glider.FinParams{Height: 1, RootChord: 1})
	if !errors.Is(err, glider.ErrInvalidParameter) {
		t.Errorf("fin: got %v, want invalid parameter", err)
	}
	_, err = form3.MountFin(glider.FinParams{Height: 1, RootChord: 1}, glider.AttachmentFrame{Side: glider.Right}, false)
	if !errors.Is(err, glider.ErrInvalidParameter) {
		t.Errorf("mount fin: got %v, want invalid parameter", err)
	}
}

func TestPlaceNacelle(t *testing.T) {
	p := glider.NacelleParams{
		Body: glider.FuselageParams{Length: 40, FrontWidth: 10, FrontHeight: 10, BackWidth: 5, BackHeight: 5, VerticalAlign: 0.5},
		Fin:  glider.FinParams{Height: 8, RootChord: 10, TipChord: 5, Thickness: 1, Offset: 20},
	}
	frame := glider.AttachmentFrame{Side: glider.Left}
	frame.Position.X = -80
	s, err := form3.PlaceNacelle(p, glider.FinTop, frame)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Mesh.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(s.Frames) != 1 || s.Frames[0].Side != glider.Left {
		t.Errorf("got frames %+v", s.Frames)
	}
	if f := s.Frames[0].Position; f.X != -80 || f.Z != 0 {
		t.Errorf("fin frame at %v, want x=-80 z=0", f)
	}
}
