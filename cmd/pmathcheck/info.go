package main

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/packetmath/hwy"
	pmath "github.com/ajroetker/packetmath/hwy/contrib/math"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and kernel configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pmath.DefaultOptions()
			fprintf(cmd, "platform:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fprintf(cmd, "dispatch level:  %s\n", hwy.CurrentName())
			fprintf(cmd, "features:        %s\n", opts.Features)
			fprintf(cmd, "fast math:       %t\n", opts.FastMath)
			fprintf(cmd, "vector:          %d bytes, %d x float32, %d x float64\n",
				hwy.VectorBytes, hwy.Lanes32, hwy.Lanes64)

			// vek32 runs its own CPU detection.
			vi := vek32.Info()
			features := strings.Join(vi.CPUFeatures, ",")
			if features == "" {
				features = "none"
			}
			fprintf(cmd, "vek32 features:  %s (accelerated: %t)\n", features, vi.Acceleration)
			return nil
		},
	}
}
