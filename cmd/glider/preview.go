package main

import (
	"log/slog"

	"github.com/soypat/glider/design"
	"github.com/soypat/glider/render"
	"github.com/spf13/cobra"
)

var (
	previewOutput string
	previewView   = render.DefaultView()
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a shaded PNG preview of the design",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadDesign()
		if err != nil {
			return err
		}
		parts, err := design.Build(cmd.Context(), a)
		if err != nil {
			return err
		}
		fp, err := create(previewOutput)
		if err != nil {
			return err
		}
		defer fp.Close()
		if err := render.PreviewPNG(fp, design.Assemble(parts), previewView); err != nil {
			return err
		}
		slog.Info("wrote preview", "path", previewOutput, "width", previewView.Width, "height", previewView.Height)
		return fp.Close()
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "glider.png", "Output PNG file")
	previewCmd.Flags().IntVar(&previewView.Width, "width", previewView.Width, "Image width in pixels")
	previewCmd.Flags().IntVar(&previewView.Height, "height", previewView.Height, "Image height in pixels")
	previewCmd.Flags().StringVar(&previewView.Color, "color", previewView.Color, "Model color as a hex string")
}
