package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwy-fallback/hwy"
	"github.com/ajroetker/hwy-fallback/hwy/kernels"
	"github.com/ajroetker/hwy-fallback/hwy/registry"
)

type evalOptions struct {
	typeName   string
	targetName string
	x, y, z    []string
}

func newEvalCmd() *cobra.Command {
	var opts evalOptions

	cmd := &cobra.Command{
		Use:   "eval <op>",
		Short: "Run one kernel on literal lanes",
		Long: `Runs the implementation selected for <op> on the given lanes and prints
the result. Binary and ternary ops take their other operands from --y and
--z; a single value is broadcast to every lane.`,
		Example: `  hwykernels eval nearbyint --lanes=1.5,-1.5,2.5,-2.5
  hwykernels eval nextafter --lanes=1 --y=2
  hwykernels eval isinf --lanes=inf,-inf,1,nan
  hwykernels eval fma --target scalar --lanes=2 --y=3 --z=1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := registry.ParseOp(args[0])
			if !ok {
				return fmt.Errorf("unknown op %q", args[0])
			}
			elem, err := elemFlag(opts.typeName)
			if err != nil {
				return err
			}

			var entry registry.Entry
			if cmd.Flags().Changed("target") {
				target, err := targetFlag(opts.targetName)
				if err != nil {
					return err
				}
				entry, err = registry.Default.Lookup(op, elem, target)
				if err != nil {
					return err
				}
			} else if entry, err = kernels.Selected(op, elem); err != nil {
				return err
			}

			out, err := evalEntry(entry, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s via %s@%s\n", op, elem, entry.Name, entry.Target)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.typeName, "type", "float64", "lane type")
	cmd.Flags().StringVar(&opts.targetName, "target", "", "dispatch level to resolve for (default: current)")
	cmd.Flags().StringSliceVar(&opts.x, "lanes", nil, "first operand lanes, comma separated")
	cmd.Flags().StringSliceVar(&opts.y, "y", nil, "second operand lanes")
	cmd.Flags().StringSliceVar(&opts.z, "z", nil, "third operand lanes")
	_ = cmd.MarkFlagRequired("lanes")
	return cmd
}

func evalEntry(e registry.Entry, opts evalOptions) ([]string, error) {
	switch e.Elem {
	case registry.Float32:
		return evalAs[float32](e, opts)
	case registry.Float64:
		return evalAs[float64](e, opts)
	case registry.Int8:
		return evalAs[int8](e, opts)
	case registry.Int16:
		return evalAs[int16](e, opts)
	case registry.Int32:
		return evalAs[int32](e, opts)
	case registry.Int64:
		return evalAs[int64](e, opts)
	case registry.Uint8:
		return evalAs[uint8](e, opts)
	case registry.Uint16:
		return evalAs[uint16](e, opts)
	case registry.Uint32:
		return evalAs[uint32](e, opts)
	default:
		return evalAs[uint64](e, opts)
	}
}

func evalAs[T hwy.Lanes](e registry.Entry, opts evalOptions) ([]string, error) {
	arity, _ := e.Op.Arity()

	x, err := parseLanes[T]("lanes", opts.x, 0)
	if err != nil {
		return nil, err
	}
	n := len(x)
	vec := func(lanes []T) hwy.Vec[T] { return hwy.LoadN(lanes, n) }

	var y, z []T
	if arity == registry.ArityBinary || arity == registry.ArityTernary {
		if y, err = parseLanes[T]("y", opts.y, n); err != nil {
			return nil, err
		}
	}
	if arity == registry.ArityTernary {
		if z, err = parseLanes[T]("z", opts.z, n); err != nil {
			return nil, err
		}
	}

	switch arity {
	case registry.ArityUnary:
		k, err := registry.Resolve[registry.Unary[T]](registry.Default, e.Op, e.Elem, e.Target)
		if err != nil {
			return nil, err
		}
		return formatLanes(k(vec(x)).Data()), nil
	case registry.ArityBinary:
		k, err := registry.Resolve[registry.Binary[T]](registry.Default, e.Op, e.Elem, e.Target)
		if err != nil {
			return nil, err
		}
		return formatLanes(k(vec(x), vec(y)).Data()), nil
	case registry.ArityTernary:
		k, err := registry.Resolve[registry.Ternary[T]](registry.Default, e.Op, e.Elem, e.Target)
		if err != nil {
			return nil, err
		}
		return formatLanes(k(vec(x), vec(y), vec(z)).Data()), nil
	default:
		k, err := registry.Resolve[registry.Predicate[T]](registry.Default, e.Op, e.Elem, e.Target)
		if err != nil {
			return nil, err
		}
		return lo.Map(k(vec(x)).Bits(), func(b bool, _ int) string {
			return strconv.FormatBool(b)
		}), nil
	}
}

// parseLanes parses a lane list. When n > 0 the list must have n values,
// or one value that is broadcast to n lanes.
func parseLanes[T hwy.Lanes](flag string, values []string, n int) ([]T, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("--%s: no lanes given", flag)
	}
	if n > 0 && len(values) != n && len(values) != 1 {
		return nil, fmt.Errorf("--%s: got %d lanes, want 1 or %d", flag, len(values), n)
	}

	lanes := make([]T, len(values))
	for i, s := range values {
		v, err := parseLane[T](strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("--%s: lane %d: %w", flag, i, err)
		}
		lanes[i] = v
	}
	if n > 0 && len(lanes) == 1 {
		lanes = lo.Times(n, func(int) T { return lanes[0] })
	}
	return lanes, nil
}

func parseLane[T hwy.Lanes](s string) (T, error) {
	bits := hwy.LaneBytes[T]() * 8
	switch {
	case hwy.IsFloatLane[T]():
		f, err := strconv.ParseFloat(s, bits)
		return T(f), err
	case hwy.IsSignedLane[T]():
		i, err := strconv.ParseInt(s, 0, bits)
		return T(i), err
	default:
		u, err := strconv.ParseUint(s, 0, bits)
		return T(u), err
	}
}

func formatLanes[T hwy.Lanes](lanes []T) []string {
	return lo.Map(lanes, func(x T, _ int) string {
		if hwy.IsFloatLane[T]() {
			return strconv.FormatFloat(float64(x), 'g', -1, hwy.LaneBytes[T]()*8)
		}
		return fmt.Sprint(x)
	})
}
