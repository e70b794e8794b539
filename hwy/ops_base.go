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

package hwy

import "math"

// This file provides the pure Go lane arithmetic. Every lane result is rounded
// to the lane precision on its own; products are converted explicitly before
// being added so the compiler cannot contract them into a fused multiply-add.
// The fused operations and the square root are routed through function
// variables that ops_avx2.go replaces with hardware instructions when they are
// available.

var (
	mulAddImpl = mulAddFallback
	sqrtImpl   = sqrtFallback
	sqrt64Impl = sqrt64Fallback
)

func (v Float32x8) binary(o Float32x8, op func(a, b float32) float32) Float32x8 {
	var out Float32x8
	for i := range out.bits {
		a := math.Float32frombits(v.bits[i])
		b := math.Float32frombits(o.bits[i])
		out.bits[i] = math.Float32bits(op(a, b))
	}
	return out
}

// Add returns v + o lane-wise.
func (v Float32x8) Add(o Float32x8) Float32x8 {
	return v.binary(o, func(a, b float32) float32 { return a + b })
}

// Sub returns v - o lane-wise.
func (v Float32x8) Sub(o Float32x8) Float32x8 {
	return v.binary(o, func(a, b float32) float32 { return a - b })
}

// Mul returns v * o lane-wise.
func (v Float32x8) Mul(o Float32x8) Float32x8 {
	return v.binary(o, func(a, b float32) float32 { return float32(a * b) })
}

// Div returns v / o lane-wise.
func (v Float32x8) Div(o Float32x8) Float32x8 {
	return v.binary(o, func(a, b float32) float32 { return a / b })
}

// Min returns the lane-wise minimum with the semantics of x86 MINPS: the
// result is v when v < o and o otherwise. If either lane is NaN the lane of o
// is returned, and Min(-0, +0) is +0.
func (v Float32x8) Min(o Float32x8) Float32x8 {
	return v.binary(o, func(a, b float32) float32 {
		if a < b {
			return a
		}
		return b
	})
}

// Max returns the lane-wise maximum with the semantics of x86 MAXPS: the
// result is v when v > o and o otherwise, so a NaN in either lane selects o.
func (v Float32x8) Max(o Float32x8) Float32x8 {
	return v.binary(o, func(a, b float32) float32 {
		if a > b {
			return a
		}
		return b
	})
}

// Neg flips the sign bit of every lane.
func (v Float32x8) Neg() Float32x8 {
	return v.Xor(Float32x8FromBits(signBit32))
}

// Abs clears the sign bit of every lane.
func (v Float32x8) Abs() Float32x8 {
	return v.AndNot(Float32x8FromBits(signBit32))
}

// Floor rounds every lane toward negative infinity. NaN and infinities pass
// through unchanged and the sign of zero is kept.
func (v Float32x8) Floor() Float32x8 {
	var out Float32x8
	for i, b := range v.bits {
		f := math.Float32frombits(b)
		out.bits[i] = math.Float32bits(float32(math.Floor(float64(f))))
	}
	return out
}

// MulAdd returns v*m + a lane-wise with a single rounding.
func (v Float32x8) MulAdd(m, a Float32x8) Float32x8 {
	return mulAddImpl(v, m, a)
}

// MulAddSplit returns v*m + a lane-wise, rounding the product before the
// addition. This is what hardware without a fused multiply-add computes.
func (v Float32x8) MulAddSplit(m, a Float32x8) Float32x8 {
	var out Float32x8
	for i := range out.bits {
		x := math.Float32frombits(v.bits[i])
		y := math.Float32frombits(m.bits[i])
		z := math.Float32frombits(a.bits[i])
		out.bits[i] = math.Float32bits(float32(x*y) + z)
	}
	return out
}

func mulAddFallback(v, m, a Float32x8) Float32x8 {
	var out Float32x8
	for i := range out.bits {
		x := math.Float32frombits(v.bits[i])
		y := math.Float32frombits(m.bits[i])
		z := math.Float32frombits(a.bits[i])
		out.bits[i] = math.Float32bits(fma32(x, y, z))
	}
	return out
}

// fma32 returns x*y + z rounded once to float32.
//
// The float64 product of two float32 values is exact, so p + z carries a
// single float64 rounding error e. Converting that sum to float32 only goes
// wrong when it lands exactly halfway between two float32 values while e is
// non-zero; the sum is then moved one float64 step toward the exact result.
func fma32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	s := p + float64(z)
	r := float32(s)
	if float64(r) == s || math.IsInf(float64(r), 0) || math.IsNaN(s) {
		return r
	}

	// p + z == s + e exactly (two-sum).
	zz := s - p
	e := (p - (s - zz)) + (float64(z) - zz)
	if e == 0 {
		return r
	}

	gap := s - float64(r)
	other := math.Nextafter32(r, float32(math.Copysign(math.Inf(1), gap)))
	if float64(other)-s != gap {
		return r
	}
	return float32(math.Nextafter(s, math.Copysign(math.Inf(1), e)))
}

func (v Float64x4) binary(o Float64x4, op func(a, b float64) float64) Float64x4 {
	var out Float64x4
	for i := range out.bits {
		a := math.Float64frombits(v.bits[i])
		b := math.Float64frombits(o.bits[i])
		out.bits[i] = math.Float64bits(op(a, b))
	}
	return out
}

// Add returns v + o lane-wise.
func (v Float64x4) Add(o Float64x4) Float64x4 {
	return v.binary(o, func(a, b float64) float64 { return a + b })
}

// Sub returns v - o lane-wise.
func (v Float64x4) Sub(o Float64x4) Float64x4 {
	return v.binary(o, func(a, b float64) float64 { return a - b })
}

// Mul returns v * o lane-wise.
func (v Float64x4) Mul(o Float64x4) Float64x4 {
	return v.binary(o, func(a, b float64) float64 { return float64(a * b) })
}

// Div returns v / o lane-wise.
func (v Float64x4) Div(o Float64x4) Float64x4 {
	return v.binary(o, func(a, b float64) float64 { return a / b })
}

// MulAdd returns v*m + a lane-wise with a single rounding.
func (v Float64x4) MulAdd(m, a Float64x4) Float64x4 {
	var out Float64x4
	for i := range out.bits {
		out.bits[i] = math.Float64bits(math.FMA(
			math.Float64frombits(v.bits[i]),
			math.Float64frombits(m.bits[i]),
			math.Float64frombits(a.bits[i]),
		))
	}
	return out
}
