package main

import (
	"fmt"
	"log/slog"

	"github.com/soypat/glider"
	"github.com/soypat/glider/form2"
	"github.com/soypat/glider/form3"
	"github.com/soypat/glider/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	plotOutput string
	plotSize   float64
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <wing|fuselage|nacelle|elevator>",
	Short: "Plot the cross-sections a part is lofted from",
	Long: `Plot the lofted cross-sections of a part in their local frame.
The image format is chosen from the output extension (png, svg, pdf).

Examples:
  glider sections fuselage -o fuselage.svg
  glider sections wing -f design.yaml --size 25`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"wing", "fuselage", "nacelle", "elevator"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadDesign()
		if err != nil {
			return err
		}
		var s glider.Surface
		switch args[0] {
		case "wing":
			s, err = form3.Wing(a.Wing)
		case "fuselage":
			s, err = form3.Fuselage(a.Fuselage)
		case "nacelle":
			s, err = form3.Fuselage(a.Nacelle.Body)
		case "elevator":
			s, err = form3.Wing(a.Elevator.WingParams(a.Wing.Resolution))
		default:
			return fmt.Errorf("unknown part %q", args[0])
		}
		if err != nil {
			return err
		}
		err = render.PlotSections(plotOutput, args[0]+" sections", s.Sections, true, vg.Length(plotSize)*vg.Centimeter)
		if err != nil {
			return err
		}
		slog.Info("wrote plot", "path", plotOutput, "sections", len(s.Sections))
		return nil
	},
}

var outlineCmd = &cobra.Command{
	Use:   "outline <wing|elevator|rudder|nacelle-fin>",
	Short: "Plot the airfoils or fin planform of a part",
	Long: `Plot the 2D profiles a part is built from. Wings and the elevator
plot the airfoil of every section, fins plot their planform outline.

Examples:
  glider outline wing -o airfoils.png
  glider outline rudder -o rudder.svg`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"wing", "elevator", "rudder", "nacelle-fin"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadDesign()
		if err != nil {
			return err
		}
		var outlines []render.Outline
		switch args[0] {
		case "wing", "elevator":
			wing := a.Wing
			if args[0] == "elevator" {
				wing = a.Elevator.WingParams(a.Wing.Resolution)
			}
			for i, s := range wing.Sections {
				pts, err := form2.Airfoil(s.Airfoil, wing.Resolution)
				if err != nil {
					return fmt.Errorf("section %d: %w", i, err)
				}
				outlines = append(outlines, render.Outline{Name: fmt.Sprintf("section %d", i), Points: pts, Closed: true})
			}
		case "rudder", "nacelle-fin":
			fin := a.Rudder.Fin
			if args[0] == "nacelle-fin" {
				fin = a.Nacelle.Fin
			}
			pts, err := form2.FinOutline(fin)
			if err != nil {
				return err
			}
			outlines = append(outlines, render.Outline{Name: args[0], Points: pts, Closed: true})
		default:
			return fmt.Errorf("unknown part %q", args[0])
		}
		p, err := render.PlotOutlines(args[0], outlines...)
		if err != nil {
			return err
		}
		size := vg.Length(plotSize) * vg.Centimeter
		if err := p.Save(size, size, plotOutput); err != nil {
			return err
		}
		slog.Info("wrote plot", "path", plotOutput, "outlines", len(outlines))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd, outlineCmd)
	for _, cmd := range []*cobra.Command{sectionsCmd, outlineCmd} {
		cmd.Flags().StringVarP(&plotOutput, "output", "o", "plot.png", "Output image file (png, svg, pdf)")
		cmd.Flags().Float64Var(&plotSize, "size", 15, "Image side length in centimetres")
	}
}
