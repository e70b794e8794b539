//go:build amd64 && goexperiment.simd

package hwy

import (
	"math"
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

// This file routes the fused multiply-add and the square roots through the
// AVX2 instructions when the CPU has them. Both are exactly rounded, so the
// hardware and pure Go versions agree bit for bit.

func init() {
	if NoSimdEnv() || !archsimd.X86.AVX2() {
		return
	}
	sqrtImpl = sqrtAVX2
	sqrt64Impl = sqrt64AVX2
	if cpu.X86.HasFMA {
		mulAddImpl = mulAddAVX2
	}
}

func (v Float32x8) toAVX2() archsimd.Float32x8 {
	var buf [Lanes32]float32
	for i, b := range v.bits {
		buf[i] = math.Float32frombits(b)
	}
	return archsimd.LoadFloat32x8Slice(buf[:])
}

func fromAVX2F32x8(x archsimd.Float32x8) Float32x8 {
	var buf [Lanes32]float32
	x.StoreSlice(buf[:])
	return Float32x8FromArray(buf)
}

// mulAddAVX2 uses VFMADD: v*m + a with one rounding.
func mulAddAVX2(v, m, a Float32x8) Float32x8 {
	return fromAVX2F32x8(v.toAVX2().MulAdd(m.toAVX2(), a.toAVX2()))
}

// sqrtAVX2 uses VSQRTPS, which is correctly rounded.
func sqrtAVX2(v Float32x8) Float32x8 {
	return fromAVX2F32x8(v.toAVX2().Sqrt())
}

// sqrt64AVX2 uses VSQRTPD, which is correctly rounded.
func sqrt64AVX2(v Float64x4) Float64x4 {
	buf := v.Array()
	archsimd.LoadFloat64x4Slice(buf[:]).Sqrt().StoreSlice(buf[:])
	return Float64x4FromArray(buf)
}
