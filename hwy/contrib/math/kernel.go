package math

import (
	"sync/atomic"

	"github.com/ajroetker/packetmath/hwy"
)

// Options configures a Kernel.
type Options struct {
	// Features selects between the fused and split multiply-add and between
	// the wide and split integer shifts. Results differ in the last bits
	// between feature sets but stay within the documented error bounds.
	Features hwy.Features

	// FastMath selects the estimate-plus-Newton-Raphson path for the float32
	// Sqrt and RSqrt. When false they use the correctly rounded square root.
	// Float64 Sqrt64 and RSqrt64 are always exact.
	FastMath bool
}

// DefaultOptions returns the detected CPU features with FastMath enabled,
// unless HWY_EXACT_MATH is set.
func DefaultOptions() Options {
	return Options{
		Features: hwy.CurrentFeatures(),
		FastMath: !hwy.EnvFlag("HWY_EXACT_MATH"),
	}
}

// Kernel evaluates the packet functions for one fixed configuration. A
// Kernel holds no mutable state and is safe for concurrent use.
type Kernel struct {
	opts Options
}

// New returns a Kernel configured by opts.
func New(opts Options) *Kernel {
	hwy.Logger().Debug("math: kernel configured",
		"features", opts.Features.String(),
		"fast_math", opts.FastMath)
	return &Kernel{opts: opts}
}

// Options returns the configuration k was built with.
func (k *Kernel) Options() Options {
	return k.opts
}

var defaultKernel atomic.Pointer[Kernel]

// Default returns the Kernel used by the package-level functions. It is
// built from DefaultOptions on first use.
func Default() *Kernel {
	if k := defaultKernel.Load(); k != nil {
		return k
	}
	defaultKernel.CompareAndSwap(nil, New(DefaultOptions()))
	return defaultKernel.Load()
}

// SetDefault replaces the Kernel used by the package-level functions and
// returns the previous one. Passing nil restores DefaultOptions on next use.
func SetDefault(k *Kernel) *Kernel {
	return defaultKernel.Swap(k)
}

// Sin computes sin(x) for every lane with the default Kernel.
func Sin(x hwy.Float32x8) hwy.Float32x8 { return Default().Sin(x) }

// Log computes ln(x) for every lane with the default Kernel.
func Log(x hwy.Float32x8) hwy.Float32x8 { return Default().Log(x) }

// Exp computes e^x for every lane with the default Kernel.
func Exp(x hwy.Float32x8) hwy.Float32x8 { return Default().Exp(x) }

// Sqrt computes sqrt(x) for every lane with the default Kernel.
func Sqrt(x hwy.Float32x8) hwy.Float32x8 { return Default().Sqrt(x) }

// RSqrt computes 1/sqrt(x) for every lane with the default Kernel.
func RSqrt(x hwy.Float32x8) hwy.Float32x8 { return Default().RSqrt(x) }

// Sqrt64 computes sqrt(x) for every float64 lane.
func Sqrt64(x hwy.Float64x4) hwy.Float64x4 { return Default().Sqrt64(x) }

// RSqrt64 computes 1/sqrt(x) for every float64 lane.
func RSqrt64(x hwy.Float64x4) hwy.Float64x4 { return Default().RSqrt64(x) }
