package math

import (
	stdmath "math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/packetmath/hwy"
)

func TestLogValues(t *testing.T) {
	tests := []struct {
		x    float32
		want float64
	}{
		{1, 0},
		{2, stdmath.Ln2},
		{0.5, -stdmath.Ln2},
		{stdmath.E, 1},
		{10, stdmath.Ln10},
		{1024, 10 * stdmath.Ln2},
		{1e-30, stdmath.Log(float64(float32(1e-30)))},
		{3e38, stdmath.Log(float64(float32(3e38)))},
	}
	forEachKernel(t, func(t *testing.T, k *Kernel) {
		for _, tt := range tests {
			got := k.Log(hwy.BroadcastFloat32x8(tt.x)).Lane(0)
			assert.InDelta(t, tt.want, float64(got), 1e-6*max(1, stdmath.Abs(tt.want)), "log(%v)", tt.x)
		}
	})
}

func TestLogAccuracy(t *testing.T) {
	forEachKernel(t, func(t *testing.T, k *Kernel) {
		worst := 0.0
		logSweep(1.2e-38, 1e38, 50001, k.Log, func(x, got float32) {
			want := stdmath.Log(float64(x))
			worst = max(worst, stdmath.Abs(float64(got)-want)/max(1, stdmath.Abs(want)))
		})
		assert.LessOrEqual(t, worst, 1e-6)

		worst = 0
		sweep(0.5, 2, 20001, k.Log, func(x, got float32) {
			worst = max(worst, stdmath.Abs(float64(got)-stdmath.Log(float64(x))))
		})
		assert.LessOrEqual(t, worst, 1e-6, "near 1")
	})
}

func TestLogSpecialValues(t *testing.T) {
	in := vec(0, negZero, -1, negInf32, nan32, inf32, 1, -1e-30)
	forEachKernel(t, func(t *testing.T, k *Kernel) {
		got := k.Log(in)
		assert.True(t, math32.IsInf(got.Lane(0), -1), "log(+0) = %v", got.Lane(0))
		assert.True(t, math32.IsInf(got.Lane(1), -1), "log(-0) = %v", got.Lane(1))
		for _, i := range []int{2, 3, 4, 7} {
			assert.True(t, math32.IsNaN(got.Lane(i)), "log(%v) = %v, want NaN", in.Lane(i), got.Lane(i))
		}
		assert.True(t, math32.IsInf(got.Lane(5), 1), "log(+Inf) = %v", got.Lane(5))
		assert.Zero(t, got.Lane(6))
	})
}

func TestLogSubnormalClampsToSmallestNormal(t *testing.T) {
	k := New(Options{Features: hwy.FullFeatures})
	sub := math32.Float32frombits(0x00000400)
	got := k.Log(vec(sub, smallestNormal))
	require.Equal(t, got.Lane(1), got.Lane(0))
	assert.InDelta(t, -87.33654475055310898657, got.Lane(0), 1e-5)
}

func TestLogFeatureEquivalence(t *testing.T) {
	split := New(Options{Features: hwy.ScalarFeatures})
	fused := New(Options{Features: hwy.FullFeatures})
	logSweep(1e-37, 1e37, 30001, func(x hwy.Float32x8) hwy.Float32x8 {
		return split.Log(x).Sub(fused.Log(x))
	}, func(x, diff float32) {
		scale := max(1, math32.Abs(math32.Log(x)))
		require.LessOrEqual(t, math32.Abs(diff)/scale, float32(1e-6), "x=%v", x)
	})
}

func BenchmarkLog(b *testing.B) {
	for _, tk := range benchKernels() {
		b.Run(tk.name, func(b *testing.B) {
			x := vec(0.1, 0.7, 1.3, 2.9, 3.3, 44, 555, 6e6)
			var sink hwy.Float32x8
			for b.Loop() {
				sink = tk.k.Log(x)
			}
			_ = sink
		})
	}
}
