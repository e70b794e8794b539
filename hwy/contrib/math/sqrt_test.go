package math

import (
	stdmath "math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/packetmath/hwy"
)

func TestSqrtAccuracy(t *testing.T) {
	forEachKernel(t, func(t *testing.T, k *Kernel) {
		logSweep(1e-35, 1e35, 40001, k.Sqrt, func(x, got float32) {
			require.LessOrEqual(t, relErr(got, stdmath.Sqrt(float64(x))), 1e-6, "sqrt(%v) = %v", x, got)
		})
		logSweep(1e-35, 1e35, 40001, func(x hwy.Float32x8) hwy.Float32x8 {
			s := k.Sqrt(x)
			return s.Mul(s)
		}, func(x, got float32) {
			require.InEpsilon(t, x, got, 2e-6, "sqrt(%v)^2", x)
		})
	})
}

func TestRSqrtAccuracy(t *testing.T) {
	forEachKernel(t, func(t *testing.T, k *Kernel) {
		logSweep(1e-35, 1e35, 40001, k.RSqrt, func(x, got float32) {
			require.LessOrEqual(t, relErr(got, 1/stdmath.Sqrt(float64(x))), 1e-6, "rsqrt(%v) = %v", x, got)
		})
	})
}

func TestSqrtExactIsCorrectlyRounded(t *testing.T) {
	k := New(Options{Features: hwy.FullFeatures, FastMath: false})
	logSweep(1e-38, 1e38, 20001, k.Sqrt, func(x, got float32) {
		require.Equal(t, math32.Sqrt(x), got, "sqrt(%v)", x)
	})
}

func TestSqrtSpecialValues(t *testing.T) {
	in := vec(0, negZero, inf32, -1, nan32, 4, negInf32)
	forEachKernel(t, func(t *testing.T, k *Kernel) {
		got := k.Sqrt(in)
		assert.Equal(t, uint32(0), math32.Float32bits(got.Lane(0)), "sqrt(+0)")
		assert.Equal(t, math32.Float32bits(negZero), math32.Float32bits(got.Lane(1)), "sqrt(-0)")
		assert.True(t, math32.IsInf(got.Lane(2), 1), "sqrt(+Inf) = %v", got.Lane(2))
		assert.True(t, math32.IsNaN(got.Lane(3)), "sqrt(-1) = %v", got.Lane(3))
		assert.True(t, math32.IsNaN(got.Lane(4)), "sqrt(NaN) = %v", got.Lane(4))
		assert.InDelta(t, 2, got.Lane(5), 1e-6)
		assert.True(t, math32.IsNaN(got.Lane(6)), "sqrt(-Inf) = %v", got.Lane(6))
	})
}

func TestSqrtFastFlushesBelowNormal(t *testing.T) {
	k := New(Options{Features: hwy.FullFeatures, FastMath: true})
	sub := math32.Float32frombits(0x00000400)
	got := k.Sqrt(vec(sub, smallestNormal))
	assert.Zero(t, got.Lane(0))
	assert.InEpsilon(t, 0x1p-63, got.Lane(1), 1e-6)
}

func TestRSqrtSpecialValues(t *testing.T) {
	in := vec(0, inf32, -1, nan32, 4, negInf32)
	forEachKernel(t, func(t *testing.T, k *Kernel) {
		got := k.RSqrt(in)
		assert.True(t, math32.IsInf(got.Lane(0), 1), "rsqrt(+0) = %v", got.Lane(0))
		assert.Zero(t, got.Lane(1), "rsqrt(+Inf)")
		assert.True(t, math32.IsNaN(got.Lane(2)), "rsqrt(-1) = %v", got.Lane(2))
		assert.True(t, math32.IsNaN(got.Lane(3)), "rsqrt(NaN) = %v", got.Lane(3))
		assert.InDelta(t, 0.5, got.Lane(4), 1e-7)
		assert.True(t, math32.IsNaN(got.Lane(5)), "rsqrt(-Inf) = %v", got.Lane(5))
	})
}

func TestRSqrtNegativeZero(t *testing.T) {
	fast := New(Options{Features: hwy.FullFeatures, FastMath: true})
	exact := New(Options{Features: hwy.FullFeatures, FastMath: false})
	assert.True(t, math32.IsInf(fast.RSqrt(vec(negZero)).Lane(0), 1))
	assert.True(t, math32.IsInf(exact.RSqrt(vec(negZero)).Lane(0), -1))
}

func TestSqrtFeatureEquivalence(t *testing.T) {
	split := New(Options{Features: hwy.ScalarFeatures, FastMath: true})
	fused := New(Options{Features: hwy.FullFeatures, FastMath: true})
	logSweep(1e-30, 1e30, 20001, func(x hwy.Float32x8) hwy.Float32x8 {
		return split.RSqrt(x).Div(fused.RSqrt(x))
	}, func(x, ratio float32) {
		require.InDelta(t, 1, ratio, 1e-6, "rsqrt x=%v", x)
	})
	logSweep(1e-30, 1e30, 20001, func(x hwy.Float32x8) hwy.Float32x8 {
		return split.Sqrt(x).Div(fused.Sqrt(x))
	}, func(x, ratio float32) {
		require.InDelta(t, 1, ratio, 1e-6, "sqrt x=%v", x)
	})
}

func TestSqrt64(t *testing.T) {
	in := hwy.Float64x4FromArray([hwy.Lanes64]float64{2, 0, stdmath.Inf(1), -4})
	forEachKernel(t, func(t *testing.T, k *Kernel) {
		s := k.Sqrt64(in)
		assert.Equal(t, stdmath.Sqrt2, s.Lane(0))
		assert.Equal(t, 0.0, s.Lane(1))
		assert.True(t, stdmath.IsInf(s.Lane(2), 1))
		assert.True(t, stdmath.IsNaN(s.Lane(3)))

		r := k.RSqrt64(in)
		assert.InEpsilon(t, 1/stdmath.Sqrt2, r.Lane(0), 1e-15)
		assert.True(t, stdmath.IsInf(r.Lane(1), 1))
		assert.Equal(t, 0.0, r.Lane(2))
		assert.True(t, stdmath.IsNaN(r.Lane(3)))
	})
}

func BenchmarkSqrt(b *testing.B) {
	for _, tk := range allKernels() {
		b.Run(tk.name, func(b *testing.B) {
			x := vec(0.1, 0.7, 1.3, 2.9, 3.3, 44, 555, 6e6)
			var sink hwy.Float32x8
			for b.Loop() {
				sink = tk.k.Sqrt(x)
			}
			_ = sink
		})
	}
}

func BenchmarkRSqrt(b *testing.B) {
	for _, tk := range allKernels() {
		b.Run(tk.name, func(b *testing.B) {
			x := vec(0.1, 0.7, 1.3, 2.9, 3.3, 44, 555, 6e6)
			var sink hwy.Float32x8
			for b.Loop() {
				sink = tk.k.RSqrt(x)
			}
			_ = sink
		})
	}
}
