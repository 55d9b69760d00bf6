package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/soypat/glider"
	"github.com/soypat/glider/design"
	"github.com/soypat/glider/helpers/matter"
	"github.com/soypat/glider/helpers/meshfix"
	"github.com/soypat/glider/render"
	"github.com/spf13/cobra"
)

var (
	meshOutput   string
	meshMaterial string
	meshPart     string
	meshSplit    bool
	meshWeld     bool
)

var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Write the design as a binary STL model",
	Long: `Build every part of the design and write them to a binary STL file.

With --split each part is written to its own file named after the
output file and the part, e.g. glider_wing.stl. With --material the
model is scaled up to compensate the shrinkage of the print material.

Examples:
  glider mesh -o glider.stl
  glider mesh -f design.yaml --split --material pla
  glider mesh --part rudder -o rudder.stl --weld`,
	Args: cobra.NoArgs,
	RunE: runMesh,
}

func init() {
	rootCmd.AddCommand(meshCmd)
	meshCmd.Flags().StringVarP(&meshOutput, "output", "o", "glider.stl", "Output STL file")
	meshCmd.Flags().StringVar(&meshMaterial, "material", "", "Scale for print material shrinkage (pla, petg, abs)")
	meshCmd.Flags().StringVar(&meshPart, "part", "", "Only write the named part, e.g. wing or nacelle.R1")
	meshCmd.Flags().BoolVar(&meshSplit, "split", false, "Write one file per part")
	meshCmd.Flags().BoolVar(&meshWeld, "weld", false, "Join coincident vertices and drop collapsed triangles")
}

func runMesh(cmd *cobra.Command, args []string) error {
	a, err := loadDesign()
	if err != nil {
		return err
	}
	start := time.Now()
	parts, err := design.Build(cmd.Context(), a)
	if err != nil {
		return err
	}
	slog.Info("built design", "parts", len(parts), "elapsed", time.Since(start))
	if meshPart != "" {
		parts, err = selectPart(parts, meshPart)
		if err != nil {
			return err
		}
	}
	if meshMaterial != "" {
		mat, err := matter.Lookup(meshMaterial)
		if err != nil {
			return err
		}
		slog.Info("scaling for material", "material", meshMaterial, "factor", mat.ScaleFactor())
		for i := range parts {
			parts[i].Mesh = mat.Scale(parts[i].Mesh)
		}
	}
	if meshWeld {
		for i := range parts {
			w, err := meshfix.Weld(parts[i].Mesh, 0)
			if err != nil {
				return fmt.Errorf("welding %s: %w", parts[i].Name, err)
			}
			slog.Debug("welded part", "part", parts[i].Name,
				"dropped", len(parts[i].Mesh.Triangles)-len(w.Triangles))
			parts[i].Mesh = w
		}
	}
	if !meshSplit {
		return writeSTL(meshOutput, design.Assemble(parts))
	}
	ext := filepath.Ext(meshOutput)
	base := strings.TrimSuffix(meshOutput, ext)
	for _, p := range parts {
		name := strings.ReplaceAll(p.Name, ".", "_")
		if err := writeSTL(base+"_"+name+ext, p.Mesh); err != nil {
			return err
		}
	}
	return nil
}

func selectPart(parts []design.Part, name string) ([]design.Part, error) {
	names := make([]string, len(parts))
	for i, p := range parts {
		if p.Name == name {
			return parts[i : i+1], nil
		}
		names[i] = p.Name
	}
	return nil, fmt.Errorf("no part %q in design, have %s", name, strings.Join(names, ", "))
}

func writeSTL(path string, m glider.Mesh) error {
	start := time.Now()
	if err := render.CreateSTL(path, render.NewMeshRenderer(m)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Info("wrote model", "path", path, "triangles", len(m.Triangles), "elapsed", time.Since(start))
	return nil
}
