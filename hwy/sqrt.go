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

// rsqrtDropBits is the number of low mantissa bits RSqrtEstimate discards.
// Truncating a correctly rounded result to 12 significant bits keeps the
// relative error below 2^-12, inside the 1.5*2^-12 bound of RSQRTPS.
const rsqrtDropBits = 11

// Sqrt returns the correctly rounded square root of every lane. Negative
// lanes produce NaN and -0 stays -0.
func (v Float32x8) Sqrt() Float32x8 {
	return sqrtImpl(v)
}

func sqrtFallback(v Float32x8) Float32x8 {
	var out Float32x8
	for i, b := range v.bits {
		f := float64(math.Float32frombits(b))
		out.bits[i] = math.Float32bits(float32(math.Sqrt(f)))
	}
	return out
}

// RSqrtEstimate approximates 1/sqrt(x) for every lane with a relative error
// below 1.5*2^-12, standing in for RSQRTPS. Like the instruction it returns
// an infinity carrying the sign of a zero lane, NaN for negative lanes and
// NaN lanes, and 0 for +Inf.
//
// The estimate is deterministic across platforms, so kernels built on it give
// identical results everywhere.
func (v Float32x8) RSqrtEstimate() Float32x8 {
	var out Float32x8
	for i, b := range v.bits {
		f := float64(math.Float32frombits(b))
		r := math.Float32bits(float32(1 / math.Sqrt(f)))
		if r&0x7f800000 != 0x7f800000 {
			r &^= 1<<rsqrtDropBits - 1
		}
		out.bits[i] = r
	}
	return out
}

// Sqrt returns the correctly rounded square root of every lane.
func (v Float64x4) Sqrt() Float64x4 {
	return sqrt64Impl(v)
}

func sqrt64Fallback(v Float64x4) Float64x4 {
	var out Float64x4
	for i, b := range v.bits {
		out.bits[i] = math.Float64bits(math.Sqrt(math.Float64frombits(b)))
	}
	return out
}
