package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soypat/glider/design"
	"github.com/spf13/cobra"
)

var (
	designFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "glider",
	Short: "Parametric glider model generator",
	Long: `glider builds triangle meshes of a glider from a YAML design file.

The design holds the wing, fuselage, nacelles, elevator and rudder
parameters. Fields missing from the file take their default value,
run 'glider init' to get a complete starting design.

Examples:
  glider init -o sailplane.yaml
  glider mesh -f sailplane.yaml -o sailplane.stl --material petg
  glider preview -f sailplane.yaml -o sailplane.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&designFile, "file", "f", "", "Path to design YAML file, built-in design if empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadDesign reads the design file given by the --file flag.
func loadDesign() (design.Aircraft, error) {
	if designFile == "" {
		slog.Debug("using built-in design")
		return design.Default(), nil
	}
	fp, err := os.Open(designFile)
	if err != nil {
		return design.Aircraft{}, err
	}
	defer fp.Close()
	a, err := design.Load(fp)
	if err != nil {
		return design.Aircraft{}, fmt.Errorf("%s: %w", designFile, err)
	}
	slog.Debug("loaded design", "path", designFile, "key", fmt.Sprintf("%016x", design.Key(a)))
	return a, nil
}

// create creates or truncates the output file at path.
func create(path string) (*os.File, error) {
	fp, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("writing file", "path", path)
	return fp, nil
}
