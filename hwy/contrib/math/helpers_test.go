package math

import (
	stdmath "math"
	"testing"

	"github.com/chewxy/math32"

	"github.com/ajroetker/packetmath/hwy"
)

// testKernel pairs a Kernel with a name for subtests.
type testKernel struct {
	name string
	k    *Kernel
}

// allKernels returns one Kernel per combination of feature set and FastMath,
// so every function is checked on both the fused and the split paths.
func allKernels() []testKernel {
	var out []testKernel
	for _, f := range []hwy.Features{hwy.ScalarFeatures, hwy.FullFeatures} {
		for _, fast := range []bool{true, false} {
			mode := "exact"
			if fast {
				mode = "fast"
			}
			out = append(out, testKernel{
				name: f.String() + "/" + mode,
				k:    New(Options{Features: f, FastMath: fast}),
			})
		}
	}
	return out
}

// benchKernels returns the FastMath kernels for both feature sets.
func benchKernels() []testKernel {
	var out []testKernel
	for _, tk := range allKernels() {
		if tk.k.Options().FastMath {
			out = append(out, tk)
		}
	}
	return out
}

// forEachKernel runs fn as a subtest for every Kernel from allKernels.
func forEachKernel(t *testing.T, fn func(t *testing.T, k *Kernel)) {
	t.Helper()
	for _, tk := range allKernels() {
		t.Run(tk.name, func(t *testing.T) { fn(t, tk.k) })
	}
}

// vec builds a vector from up to eight lanes; missing lanes are 1.
func vec(vals ...float32) hwy.Float32x8 {
	var a [hwy.Lanes32]float32
	for i := range a {
		a[i] = 1
	}
	copy(a[:], vals)
	return hwy.Float32x8FromArray(a)
}

// sweep evaluates fn on count points from lo to hi, eight at a time, and
// calls check with each input and the matching output lane.
func sweep(lo, hi float32, count int, fn VecFunc32, check func(x, got float32)) {
	in := make([]float32, count)
	step := (float64(hi) - float64(lo)) / float64(count-1)
	for i := range in {
		in[i] = float32(float64(lo) + float64(i)*step)
	}
	in[count-1] = hi
	out := make([]float32, count)
	Transform32(in, out, fn)
	for i := range in {
		check(in[i], out[i])
	}
}

// logSweep is sweep with points spaced evenly in log2 between lo and hi,
// both of which must be positive.
func logSweep(lo, hi float32, count int, fn VecFunc32, check func(x, got float32)) {
	in := make([]float32, count)
	l0, l1 := stdmath.Log2(float64(lo)), stdmath.Log2(float64(hi))
	for i := range in {
		in[i] = float32(stdmath.Exp2(l0 + (l1-l0)*float64(i)/float64(count-1)))
	}
	out := make([]float32, count)
	Transform32(in, out, fn)
	for i := range in {
		check(in[i], out[i])
	}
}

func relErr(got float32, want float64) float64 {
	if want == 0 {
		return stdmath.Abs(float64(got))
	}
	return stdmath.Abs(float64(got)-want) / stdmath.Abs(want)
}

// smallestNormal is FLT_MIN.
const smallestNormal float32 = 0x1p-126

var (
	inf32    = math32.Inf(1)
	negInf32 = math32.Inf(-1)
	nan32    = math32.NaN()
	negZero  = math32.Copysign(0, -1)
)
