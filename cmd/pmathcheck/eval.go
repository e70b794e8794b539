package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	pmath "github.com/ajroetker/packetmath/hwy/contrib/math"
	"github.com/ajroetker/packetmath/internal/accuracy"
)

func newEvalCmd() *cobra.Command {
	var kf kernelFlags

	cmd := &cobra.Command{
		Use:   "eval FUNC X...",
		Short: "Evaluate a kernel on the given inputs",
		Long: `eval prints FUNC(x) for each x, with the result's bit pattern.
FUNC is one of sin, log, exp, sqrt, rsqrt, sqrt64, rsqrt64. Inputs accept
anything strconv.ParseFloat does, including NaN, Inf and -Inf. Flags go
before FUNC; everything after it is an input, so negative values need no
quoting.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			k := pmath.New(kf.options())

			var fn32 pmath.VecFunc32
			var fn64 pmath.VecFunc64
			switch name {
			case accuracy.FuncSin:
				fn32 = k.Sin
			case accuracy.FuncLog:
				fn32 = k.Log
			case accuracy.FuncExp:
				fn32 = k.Exp
			case accuracy.FuncSqrt:
				fn32 = k.Sqrt
			case accuracy.FuncRSqrt:
				fn32 = k.RSqrt
			case accuracy.FuncSqrt64:
				fn64 = k.Sqrt64
			case accuracy.FuncRSqrt64:
				fn64 = k.RSqrt64
			default:
				return fmt.Errorf("%w %q", accuracy.ErrUnknownFunc, name)
			}

			xs := make([]float64, len(args)-1)
			for i, a := range args[1:] {
				x, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("input %d: %w", i, err)
				}
				xs[i] = x
			}

			if fn64 != nil {
				out := make([]float64, len(xs))
				pmath.Transform64(xs, out, fn64)
				for i, x := range xs {
					fprintf(cmd, "%s(%g) = %g\t[0x%016x]\n", name, x, out[i], math.Float64bits(out[i]))
				}
				return nil
			}

			in := make([]float32, len(xs))
			for i, x := range xs {
				in[i] = float32(x)
			}
			out := make([]float32, len(in))
			pmath.Transform32(in, out, fn32)
			for i, x := range in {
				fprintf(cmd, "%s(%g) = %g\t[0x%08x]\n", name, x, out[i], math.Float32bits(out[i]))
			}
			return nil
		},
	}
	kf.register(cmd)
	cmd.Flags().SetInterspersed(false)
	return cmd
}
