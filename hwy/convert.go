package hwy

import "math"

// This file provides the bit reinterpretations and numeric conversions
// between float and integer lanes.

// IntegerIndefinite is the value x86 conversions produce for NaN lanes and
// lanes outside the int32 range.
const IntegerIndefinite = math.MinInt32

// AsInt32x8 reinterprets the float lanes as int32 lanes without changing any
// bits.
func (v Float32x8) AsInt32x8() Int32x8 {
	var out Int32x8
	for i, b := range v.bits {
		out.v[i] = int32(b)
	}
	return out
}

// AsFloat32x8 reinterprets the int32 lanes as float lanes without changing any
// bits.
func (v Int32x8) AsFloat32x8() Float32x8 {
	var out Float32x8
	for i, n := range v.v {
		out.bits[i] = uint32(n)
	}
	return out
}

func toInt32(f float64) int32 {
	if math.IsNaN(f) || f >= 1<<31 || f < -(1<<31) {
		return IntegerIndefinite
	}
	return int32(f)
}

// ConvertToInt32 converts every lane to int32, truncating toward zero like
// CVTTPS2DQ. NaN and out-of-range lanes become IntegerIndefinite.
func (v Float32x8) ConvertToInt32() Int32x8 {
	var out Int32x8
	for i, b := range v.bits {
		out.v[i] = toInt32(math.Trunc(float64(math.Float32frombits(b))))
	}
	return out
}

// RoundToInt32 converts every lane to int32 rounding half to even, like
// CVTPS2DQ under the default rounding mode. NaN and out-of-range lanes become
// IntegerIndefinite.
func (v Float32x8) RoundToInt32() Int32x8 {
	var out Int32x8
	for i, b := range v.bits {
		out.v[i] = toInt32(math.RoundToEven(float64(math.Float32frombits(b))))
	}
	return out
}

// ConvertToFloat32 converts every int32 lane to the nearest float32.
func (v Int32x8) ConvertToFloat32() Float32x8 {
	var out Float32x8
	for i, n := range v.v {
		out.bits[i] = math.Float32bits(float32(n))
	}
	return out
}
