package math

import (
	"github.com/ajroetker/packetmath/hwy"
	"github.com/ajroetker/packetmath/hwy/contrib/workerpool"
)

// MinParallelSize is the element count below which the parallel transforms
// run on the calling goroutine.
const MinParallelSize = 1 << 14

// parallelBlockVectors is how many whole vectors each work chunk is rounded
// to, so chunk boundaries never split a vector.
const parallelBlockVectors = 64

// ParallelTransform32 is Transform32 spread across pool. The kernels keep no
// state, so workers share nothing but the input and disjoint ranges of the
// output. A nil pool or an input shorter than MinParallelSize runs inline.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//	math.ParallelTransform32(pool, input, output, math.Default().Exp)
func ParallelTransform32(pool *workerpool.Pool, input, output []float32, fn VecFunc32) {
	n := min(len(input), len(output))
	if pool == nil || n < MinParallelSize {
		Transform32(input, output, fn)
		return
	}
	pool.ParallelForBlocks(n, parallelBlockVectors*hwy.Lanes32, func(start, end int) {
		Transform32(input[start:end], output[start:end], fn)
	})
}

// ParallelTransform64 is Transform64 spread across pool.
func ParallelTransform64(pool *workerpool.Pool, input, output []float64, fn VecFunc64) {
	n := min(len(input), len(output))
	if pool == nil || n < MinParallelSize {
		Transform64(input, output, fn)
		return
	}
	pool.ParallelForBlocks(n, parallelBlockVectors*hwy.Lanes64, func(start, end int) {
		Transform64(input[start:end], output[start:end], fn)
	})
}
