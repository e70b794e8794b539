package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	pmath "github.com/ajroetker/packetmath/hwy/contrib/math"
	"github.com/ajroetker/packetmath/internal/accuracy"
)

// errOverBudget is returned when at least one sweep fails its budget.
var errOverBudget = errors.New("accuracy budget exceeded")

func newSweepCmd() *cobra.Command {
	var (
		kf         kernelFlags
		configPath string
		funcs      []string
		steps      int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Measure kernel accuracy against float64 references",
		Long: `sweep evaluates each kernel over an input range and reports the worst
absolute and ULP errors. Without --config the built-in sweeps are used.

A sweep file looks like:

  sweeps:
    - func: exp
      lo: -87
      hi: 88
      max_ulp: 16
    - func: sqrt
      lo: 1e-30
      hi: 1e30
      log: true
      max_ulp: 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sweeps := accuracy.DefaultSweeps()
			if configPath != "" {
				cfg, err := accuracy.LoadConfig(configPath)
				if err != nil {
					return err
				}
				sweeps = cfg.Sweeps
			}
			sweeps, err := selectSweeps(sweeps, funcs, steps)
			if err != nil {
				return err
			}

			k := pmath.New(kf.options())
			opts := k.Options()
			fprintf(cmd, "features=%s fast_math=%t\n", opts.Features, opts.FastMath)

			reports, err := accuracy.RunAll(k, sweeps)
			if err != nil {
				return err
			}
			failed := 0
			for _, r := range reports {
				fprintf(cmd, "%s\n", r)
				if !r.Passed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d sweeps", errOverBudget, failed, len(reports))
			}
			return nil
		},
	}
	kf.register(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML sweep file")
	cmd.Flags().StringSliceVar(&funcs, "func", nil, "Only run sweeps for these functions")
	cmd.Flags().IntVar(&steps, "steps", 0, "Override the number of points per sweep")
	return cmd
}

// selectSweeps keeps the sweeps for funcs (all when empty) and applies a
// non-zero steps override.
func selectSweeps(sweeps []accuracy.Sweep, funcs []string, steps int) ([]accuracy.Sweep, error) {
	for _, f := range funcs {
		if !slices.Contains(accuracy.Funcs(), f) {
			return nil, fmt.Errorf("--func: %w %q", accuracy.ErrUnknownFunc, f)
		}
	}
	var out []accuracy.Sweep
	for _, s := range sweeps {
		if len(funcs) > 0 && !slices.Contains(funcs, s.Func) {
			continue
		}
		if steps > 0 {
			s.Steps = steps
		}
		out = append(out, s)
	}
	return out, nil
}
