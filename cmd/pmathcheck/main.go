// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pmathcheck inspects and measures the packet math kernels.
//
// Usage:
//
//	pmathcheck info                          # dispatch level and features
//	pmathcheck sweep                         # built-in accuracy sweeps
//	pmathcheck sweep --config sweeps.yaml    # sweeps from a file
//	pmathcheck sweep --no-fma --split-shift  # force the split paths
//	pmathcheck eval exp 0 1 88.5             # evaluate a function
//
// sweep exits with a non-zero status when any report is over budget.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/packetmath/hwy"
	pmath "github.com/ajroetker/packetmath/hwy/contrib/math"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "pmathcheck",
		Short: "Inspect and measure the packet math kernels",
		Long: `pmathcheck reports which SIMD paths the packet math kernels take on this
machine and measures their accuracy against float64 references.

Environment:
  HWY_NO_SIMD        take the scalar paths everywhere
  HWY_NO_FMA         use a separate multiply and add
  HWY_NO_WIDE_SHIFT  shift 128-bit halves separately
  HWY_EXACT_MATH     use the correctly rounded Sqrt and RSqrt`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				hwy.SetLogger(slog.New(h))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log dispatch and kernel decisions to stderr")

	root.AddCommand(newInfoCmd(), newSweepCmd(), newEvalCmd())
	return root
}

// kernelFlags are the flags shared by commands that build a Kernel.
type kernelFlags struct {
	noFMA      bool
	splitShift bool
	exact      bool
}

func (f *kernelFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noFMA, "no-fma", false, "Use a separate multiply and add")
	cmd.Flags().BoolVar(&f.splitShift, "split-shift", false, "Shift 128-bit halves separately")
	cmd.Flags().BoolVar(&f.exact, "exact", false, "Use the correctly rounded Sqrt and RSqrt")
}

// options narrows the detected configuration by the flags. Flags can only
// turn capabilities off.
func (f *kernelFlags) options() pmath.Options {
	opts := pmath.DefaultOptions()
	if f.noFMA {
		opts.Features.FMA = false
	}
	if f.splitShift {
		opts.Features.WideShift = false
	}
	if f.exact {
		opts.FastMath = false
	}
	return opts
}

func fprintf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
