package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/hwy-fallback/hwy"
	"github.com/ajroetker/hwy-fallback/hwy/native"
)

type feature struct {
	name string
	has  bool
}

func cpuFeatures() []feature {
	switch runtime.GOARCH {
	case "amd64":
		return []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
			{"avx512dq", cpu.X86.HasAVX512DQ},
		}
	case "arm64":
		return []feature{
			{"fp", cpu.ARM64.HasFP},
			{"asimd", cpu.ARM64.HasASIMD},
			{"asimdhp", cpu.ARM64.HasASIMDHP},
			{"sve", cpu.ARM64.HasSVE},
		}
	default:
		return nil
	}
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "Print the detected CPU features and dispatch level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "arch\t%s\n", runtime.GOARCH)
			fmt.Fprintf(w, "detected\t%s\n", hwy.DetectedLevel())
			fmt.Fprintf(w, "current\t%s\n", hwy.CurrentLevel())
			fmt.Fprintf(w, "width\t%d bytes\n", hwy.CurrentWidth())
			if hwy.NoSimdEnv() {
				fmt.Fprintf(w, "override\tHWY_NO_SIMD\n")
			} else if level, ok := hwy.TargetEnv(); ok {
				fmt.Fprintf(w, "override\tHWY_TARGET=%s\n", level)
			}

			f := native.Detected()
			fmt.Fprintf(w, "native fma\t%t\n", f.FMA)
			fmt.Fprintf(w, "native round\t%t\n", f.Round)
			for _, feat := range cpuFeatures() {
				fmt.Fprintf(w, "cpu %s\t%t\n", feat.name, feat.has)
			}
			return w.Flush()
		},
	}
}
