package main

import (
	"fmt"

	"github.com/soypat/glider/design"
	"github.com/soypat/glider/helpers/meshfix"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether every part of the design is a closed surface",
	Long: `Build the design, weld each part and count the edges left open.
Parts with open edges print with holes or not at all. The command
fails if any part is not watertight.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadDesign()
		if err != nil {
			return err
		}
		parts, err := design.Build(cmd.Context(), a)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		var leaky int
		for _, p := range parts {
			welded, err := meshfix.Weld(p.Mesh, 0)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			open := len(meshfix.OpenEdges(welded))
			status := "ok"
			if open > 0 {
				status = "open"
				leaky++
			}
			fmt.Fprintf(w, "%-12s vertices=%-6d triangles=%-6d open_edges=%-4d %s\n",
				p.Name, len(welded.Vertices), len(welded.Triangles), open, status)
		}
		if leaky > 0 {
			return fmt.Errorf("%d of %d parts are not watertight", leaky, len(parts))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
