package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/soypat/glider/design"
	"github.com/spf13/cobra"
)

var (
	keysSet    []string
	keysOutput string
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List or edit the flattened design parameters",
	Long: `Print every numeric design parameter as a dotted key and its value,
followed by the design key identifying the parameter set.

Parameters can be changed with --set. The edited design is written as
YAML to --output, or to stdout when no output is given.

Examples:
  glider keys
  glider keys -f design.yaml --set wing.sweep=40 --set rudder.enabled=0 -o edited.yaml`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().StringArrayVar(&keysSet, "set", nil, "Set a parameter, key=value")
	keysCmd.Flags().StringVarP(&keysOutput, "output", "o", "", "Output YAML file for edited designs")
}

func runKeys(cmd *cobra.Command, args []string) error {
	a, err := loadDesign()
	if err != nil {
		return err
	}
	flat := design.Flatten(a)
	for _, kv := range keysSet {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("bad --set %q, want key=value", kv)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("bad --set %q: %w", kv, err)
		}
		flat[strings.TrimSpace(k)] = f
	}
	if len(keysSet) > 0 {
		a, err = design.Unflatten(flat)
		if err != nil {
			return err
		}
		slog.Debug("edited design", "changes", len(keysSet))
		if keysOutput == "" {
			return design.Save(cmd.OutOrStdout(), a)
		}
		fp, err := create(keysOutput)
		if err != nil {
			return err
		}
		defer fp.Close()
		if err := design.Save(fp, a); err != nil {
			return err
		}
		return fp.Close()
	}
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	w := cmd.OutOrStdout()
	for _, k := range keys {
		fmt.Fprintf(w, "%s=%g\n", k, flat[k])
	}
	fmt.Fprintf(w, "key=%016x\n", design.Key(a))
	return nil
}

var initOutput string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in design as a YAML file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadDesign()
		if err != nil {
			return err
		}
		if initOutput == "" {
			return design.Save(cmd.OutOrStdout(), a)
		}
		if _, err := os.Stat(initOutput); err == nil {
			return fmt.Errorf("%s already exists", initOutput)
		}
		fp, err := create(initOutput)
		if err != nil {
			return err
		}
		defer fp.Close()
		if err := design.Save(fp, a); err != nil {
			return err
		}
		slog.Info("wrote design", "path", initOutput)
		return fp.Close()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Output YAML file, stdout if empty")
}
