package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwy-fallback/hwy"
	"github.com/ajroetker/hwy-fallback/hwy/registry"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "hwykernels",
		Short:         "Inspect and run hwy kernels on this machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				hwy.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				hwy.SetLogger(nil)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log dispatch decisions to stderr")

	root.AddCommand(newTargetsCmd(), newTableCmd(), newEvalCmd())
	return root
}

// targetFlag resolves a --target value, defaulting to the current level.
func targetFlag(name string) (hwy.DispatchLevel, error) {
	if name == "" {
		return hwy.CurrentLevel(), nil
	}
	level, ok := hwy.ParseDispatchLevel(name)
	if !ok {
		return 0, fmt.Errorf("unknown target %q", name)
	}
	return level, nil
}

func elemFlag(name string) (registry.ElemType, error) {
	elem, ok := registry.ParseElemType(name)
	if !ok {
		return 0, fmt.Errorf("unknown lane type %q", name)
	}
	return elem, nil
}
