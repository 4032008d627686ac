package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwy-fallback/hwy/registry"
)

func newTableCmd() *cobra.Command {
	var opName, targetName string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Dump the dispatch table",
		Long: `Without --target, lists every registered implementation.
With --target, shows which implementation each (op, type) resolves to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := registry.Default.Ops()
			if opName != "" {
				op, ok := registry.ParseOp(opName)
				if !ok {
					return fmt.Errorf("unknown op %q", opName)
				}
				ops = []registry.Op{op}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if !cmd.Flags().Changed("target") {
				fmt.Fprintln(w, "OP\tTYPE\tTARGET\tIMPL\tPRIORITY")
				for _, op := range ops {
					for _, e := range registry.Default.EntriesFor(op) {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", e.Op, e.Elem, e.Target, e.Name, e.Priority)
					}
				}
				return w.Flush()
			}

			target, err := targetFlag(targetName)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "OP\tTYPE\tIMPL\tFROM\n")
			for _, op := range ops {
				for _, elem := range registry.AllElemTypes {
					e, err := registry.Default.Lookup(op, elem, target)
					if errors.Is(err, registry.ErrNotFound) {
						continue
					}
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", op, elem, e.Name, e.Target)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&opName, "op", "", "only show this operation")
	cmd.Flags().StringVar(&targetName, "target", "", "resolve for this dispatch level")
	return cmd
}
