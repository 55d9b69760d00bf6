package design

import (
	"context"
	"fmt"

	"github.com/soypat/glider"
	"github.com/soypat/glider/form3"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Part is one placed component of an assembled aircraft.
type Part struct {
	Name string
	Mesh glider.Mesh
}

// Build generates every part of a in world coordinates. Independent parts are
// generated concurrently. Parts are returned in a fixed order: wing,
// nacelles (right side first), fuselage, elevator and rudder.
func Build(ctx context.Context, a Aircraft) ([]Part, error) {
	var (
		wing, fuselage   glider.Surface
		elevator, rudder glider.Mesh
		nacelles         []Part
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		wing, err = form3.Wing(a.Wing)
		if err != nil {
			return fmt.Errorf("wing: %w", err)
		}
		mount := r3.Vec{Y: a.WingMountHeight, Z: a.WingMountZ}
		wing.Mesh = wing.Mesh.Translate(mount)
		for i := range wing.Frames {
			wing.Frames[i].Position = r3.Add(wing.Frames[i].Position, mount)
		}
		nacelles, err = buildNacelles(ctx, a, wing.Frames)
		return err
	})
	g.Go(func() (err error) {
		fuselage, err = form3.Fuselage(a.Fuselage)
		if err != nil {
			return fmt.Errorf("fuselage: %w", err)
		}
		return nil
	})
	if a.Elevator.Enabled {
		g.Go(func() error {
			s, err := form3.Wing(a.Elevator.WingParams(a.Wing.Resolution))
			if err != nil {
				return fmt.Errorf("elevator: %w", err)
			}
			elevator = s.Mesh.Translate(r3.Vec{Y: a.Elevator.MountHeight, Z: a.Elevator.MountZ})
			return nil
		})
	}
	if a.Rudder.Enabled {
		g.Go(func() error {
			prof, err := form3.FuselageProfile(a.Fuselage)
			if err != nil {
				return fmt.Errorf("rudder: %w", err)
			}
			fin := a.Rudder.Fin
			frame := prof.Mount(a.Fuselage.Length-fin.RootChord, true)
			rudder, err = form3.MountFin(fin, frame, false)
			if err != nil {
				return fmt.Errorf("rudder: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	parts := []Part{{Name: "wing", Mesh: wing.Mesh}}
	parts = append(parts, nacelles...)
	parts = append(parts, Part{Name: "fuselage", Mesh: fuselage.Mesh})
	if a.Elevator.Enabled {
		parts = append(parts, Part{Name: "elevator", Mesh: elevator})
	}
	if a.Rudder.Enabled {
		parts = append(parts, Part{Name: "rudder", Mesh: rudder})
	}
	return parts, nil
}

// buildNacelles places a nacelle on every wing frame whose section is
// flagged. The wing holds one right side frame per section after the root,
// followed by the mirrored left side frames.
func buildNacelles(ctx context.Context, a Aircraft, frames []glider.AttachmentFrame) ([]Part, error) {
	perSide := len(a.Wing.Sections) - 1
	var parts []Part
	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		section := a.Wing.Sections[i%perSide+1]
		if !section.Nacelle {
			continue
		}
		s, err := form3.PlaceNacelle(a.Nacelle, section.NacelleFin, frame)
		if err != nil {
			return nil, fmt.Errorf("nacelle on section %d: %w", i%perSide+1, err)
		}
		side := "R"
		if frame.Side == glider.Left {
			side = "L"
		}
		parts = append(parts, Part{
			Name: fmt.Sprintf("nacelle.%s%d", side, i%perSide+1),
			Mesh: s.Mesh,
		})
	}
	return parts, nil
}

// Assemble merges parts into a single mesh.
func Assemble(parts []Part) glider.Mesh {
	meshes := make([]glider.Mesh, len(parts))
	for i, p := range parts {
		meshes[i] = p.Mesh
	}
	return glider.Merge(meshes...)
}
