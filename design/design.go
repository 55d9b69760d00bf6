// Package design holds a complete aircraft parameter set and composes the
// surfaces it describes into a list of placed parts.
package design

import (
	"github.com/soypat/glider"
)

// Aircraft is the full parameter set of a glider design.
type Aircraft struct {
	Wing glider.WingParams `yaml:"wing"`
	// Position of the wing root leading edge.
	WingMountHeight float64               `yaml:"wingMountHeight"`
	WingMountZ      float64               `yaml:"wingMountZ"`
	Fuselage        glider.FuselageParams `yaml:"fuselage"`
	// Nacelle is built on every wing section flagged with Nacelle.
	Nacelle  glider.NacelleParams `yaml:"nacelle"`
	Elevator Elevator             `yaml:"elevator"`
	Rudder   Rudder               `yaml:"rudder"`
}

// Elevator is a mirrored, straight tailplane.
type Elevator struct {
	Enabled   bool    `yaml:"enabled"`
	RootChord float64 `yaml:"rootChord"`
	TipChord  float64 `yaml:"tipChord"`
	// Span of one side.
	Span        float64 `yaml:"span"`
	Sweep       float64 `yaml:"sweep"`
	DihedralDeg float64 `yaml:"dihedral"`
	Thickness   float64 `yaml:"thickness"`
	Camber      float64 `yaml:"camber"`
	CamberPos   float64 `yaml:"camberPos"`
	AngleDeg    float64 `yaml:"angle"`
	MountHeight float64 `yaml:"mountHeight"`
	MountZ      float64 `yaml:"mountZ"`
}

// WingParams returns the two section mirrored wing of the elevator.
func (e Elevator) WingParams(resolution int) glider.WingParams {
	af := glider.AirfoilParams{
		Chord:      e.RootChord,
		Thickness:  e.Thickness,
		Camber:     e.Camber,
		CamberPos:  e.CamberPos,
		AngleDeg:   e.AngleDeg,
		PivotRatio: 1,
	}
	tip := af
	tip.Chord = e.TipChord
	return glider.WingParams{
		Sections: []glider.WingSectionParams{
			{Airfoil: af, SpanLength: e.Span, DihedralDeg: e.DihedralDeg},
			{Airfoil: tip, DihedralDeg: e.DihedralDeg},
		},
		Sweep:      e.Sweep,
		Mirrored:   true,
		Resolution: resolution,
	}
}

// Rudder is a fin standing on the fuselage tail.
type Rudder struct {
	Enabled bool `yaml:"enabled"`
	// The fin offset moves the rudder aft. With a zero offset the root
	// trailing edge sits on the fuselage tail.
	Fin glider.FinParams `yaml:"fin"`
}

// Default returns a complete sailplane-like design. Dimensions are in millimetres.
func Default() Aircraft {
	section := func(chord, length, dihedral, angle float64) glider.WingSectionParams {
		return glider.WingSectionParams{
			Airfoil: glider.AirfoilParams{
				Chord:      chord,
				Thickness:  0.12,
				Camber:     0.02,
				CamberPos:  0.4,
				AngleDeg:   angle,
				PivotRatio: 1,
			},
			SpanLength:  length,
			DihedralDeg: dihedral,
		}
	}
	wing := glider.WingParams{
		Sections: []glider.WingSectionParams{
			section(200, 500, 3, 0),
			section(170, 400, 6, 0.5),
			section(100, 0, 0, 2),
		},
		Sweep:      30,
		LeadCurve:  1,
		TrailCurve: 1,
		Mirrored:   true,
		Resolution: 50,
	}
	wing.Sections[1].Nacelle = true
	wing.Sections[1].NacelleFin = glider.FinTop
	return Aircraft{
		Wing:            wing,
		WingMountHeight: 30,
		WingMountZ:      200,
		Fuselage: glider.FuselageParams{
			Length:        900,
			FrontWidth:    80,
			FrontHeight:   100,
			BackWidth:     20,
			BackHeight:    25,
			CornerRadius:  30,
			CurveH:        1.5,
			CurveV:        1.5,
			TaperPosH:     0.3,
			TaperPosV:     0.3,
			VerticalAlign: 0.7,
			TailHeight:    20,
			CloseNose:     true,
			CloseTail:     true,
			NosecapLength: 60,
			TailcapLength: 10,
			NoseSharpness: 1,
			TailSharpness: 1,
			CapSegments:   6,
			SegmentCount:  30,
			SectionPoints: 64,
			Section:       glider.CrossSection{Kind: glider.SectionRoundedRect},
		},
		Nacelle: glider.NacelleParams{
			Body: glider.FuselageParams{
				Length:        120,
				FrontWidth:    40,
				FrontHeight:   40,
				BackWidth:     20,
				BackHeight:    20,
				CornerRadius:  20,
				CurveH:        1,
				CurveV:        1,
				VerticalAlign: 0.5,
				CloseNose:     true,
				CloseTail:     true,
				NosecapLength: 20,
				TailcapLength: 5,
				NoseSharpness: 1,
				TailSharpness: 1,
				CapSegments:   5,
				SegmentCount:  12,
				SectionPoints: 48,
				Section:       glider.CrossSection{Kind: glider.SectionEllipse},
			},
			Fin: glider.FinParams{
				Height:    30,
				RootChord: 40,
				TipChord:  20,
				Sweep:     15,
				Thickness: 2,
				Offset:    60,
				AngleDeg:  15,
			},
		},
		Elevator: Elevator{
			Enabled:     true,
			RootChord:   90,
			TipChord:    60,
			Span:        180,
			Sweep:       20,
			Thickness:   0.09,
			Camber:      0,
			CamberPos:   0.4,
			MountHeight: 45,
			MountZ:      790,
		},
		Rudder: Rudder{
			Enabled: true,
			Fin: glider.FinParams{
				Height:           150,
				RootChord:        120,
				TipChord:         70,
				Sweep:            50,
				Thickness:        4,
				BackCornerRadius: 20,
			},
		},
	}
}
