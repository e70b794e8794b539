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

import "strings"

// Features is the set of optional hardware capabilities a kernel is
// configured for. Each flag selects one of two numerically distinct
// implementations of the same primitive, so a kernel's results depend on the
// Features it was built with and on nothing else.
type Features struct {
	// FMA selects a fused multiply-add (one rounding) instead of a multiply
	// followed by an add (two roundings).
	FMA bool

	// WideShift selects 256-bit integer shifts instead of shifting each
	// 128-bit half separately and reassembling.
	WideShift bool
}

var (
	// ScalarFeatures disables every optional capability.
	ScalarFeatures = Features{}

	// FullFeatures enables every optional capability.
	FullFeatures = Features{FMA: true, WideShift: true}
)

// String returns a compact description such as "fma+wideshift".
func (f Features) String() string {
	var parts []string
	if f.FMA {
		parts = append(parts, "fma")
	}
	if f.WideShift {
		parts = append(parts, "wideshift")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// withEnv clears the flags disabled through HWY_NO_FMA and HWY_NO_WIDE_SHIFT.
func (f Features) withEnv() Features {
	if EnvFlag("HWY_NO_FMA") {
		f.FMA = false
	}
	if EnvFlag("HWY_NO_WIDE_SHIFT") {
		f.WideShift = false
	}
	return f
}

// MulAdd returns a*b + c, fused when f.FMA is set.
func (f Features) MulAdd(a, b, c Float32x8) Float32x8 {
	if f.FMA {
		return a.MulAdd(b, c)
	}
	return a.MulAddSplit(b, c)
}

// ShiftLeft shifts every lane of v left by n bits.
func (f Features) ShiftLeft(v Int32x8, n uint) Int32x8 {
	if f.WideShift {
		return v.ShiftAllLeft(n)
	}
	return v.ShiftLeftSplit(n)
}

// ShiftRightLogical shifts every lane of v right by n bits, filling with
// zeros.
func (f Features) ShiftRightLogical(v Int32x8, n uint) Int32x8 {
	if f.WideShift {
		return v.ShiftAllRightLogical(n)
	}
	return v.ShiftRightLogicalSplit(n)
}
