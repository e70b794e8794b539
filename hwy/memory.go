package hwy

import "math"

// BroadcastFloat32x8 returns a vector with every lane set to v.
func BroadcastFloat32x8(v float32) Float32x8 {
	return Float32x8FromBits(math.Float32bits(v))
}

// Float32x8FromBits returns a vector with every lane holding the raw bit
// pattern b. It is how bit-level constants such as masks and infinities are
// materialized.
func Float32x8FromBits(b uint32) Float32x8 {
	var out Float32x8
	for i := range out.bits {
		out.bits[i] = b
	}
	return out
}

// BroadcastInt32x8 returns a vector with every lane set to v.
func BroadcastInt32x8(v int32) Int32x8 {
	var out Int32x8
	for i := range out.v {
		out.v[i] = v
	}
	return out
}

// BroadcastFloat64x4 returns a vector with every lane set to v.
func BroadcastFloat64x4(v float64) Float64x4 {
	return Float64x4FromBits(math.Float64bits(v))
}

// Float64x4FromBits returns a vector with every lane holding the raw bit
// pattern b.
func Float64x4FromBits(b uint64) Float64x4 {
	var out Float64x4
	for i := range out.bits {
		out.bits[i] = b
	}
	return out
}

// Float32x8FromArray returns a vector holding a.
func Float32x8FromArray(a [Lanes32]float32) Float32x8 {
	var out Float32x8
	for i, f := range a {
		out.bits[i] = math.Float32bits(f)
	}
	return out
}

// Int32x8FromArray returns a vector holding a.
func Int32x8FromArray(a [Lanes32]int32) Int32x8 {
	return Int32x8{v: a}
}

// Float64x4FromArray returns a vector holding a.
func Float64x4FromArray(a [Lanes64]float64) Float64x4 {
	var out Float64x4
	for i, f := range a {
		out.bits[i] = math.Float64bits(f)
	}
	return out
}

// LoadFloat32x8Slice loads the first Lanes32 elements of src.
// It panics if len(src) < Lanes32.
func LoadFloat32x8Slice(src []float32) Float32x8 {
	_ = src[Lanes32-1]
	var out Float32x8
	for i := range out.bits {
		out.bits[i] = math.Float32bits(src[i])
	}
	return out
}

// LoadFloat32x8Partial loads up to Lanes32 elements of src. Lanes past the
// end of src are filled with fill, so a kernel evaluating them never sees
// uninitialized data.
func LoadFloat32x8Partial(src []float32, fill float32) Float32x8 {
	out := BroadcastFloat32x8(fill)
	n := min(len(src), Lanes32)
	for i := range n {
		out.bits[i] = math.Float32bits(src[i])
	}
	return out
}

// StoreSlice writes all lanes to dst.
// It panics if len(dst) < Lanes32.
func (v Float32x8) StoreSlice(dst []float32) {
	_ = dst[Lanes32-1]
	for i, b := range v.bits {
		dst[i] = math.Float32frombits(b)
	}
}

// StorePartial writes the first min(len(dst), Lanes32) lanes to dst and
// returns the number of lanes written.
func (v Float32x8) StorePartial(dst []float32) int {
	n := min(len(dst), Lanes32)
	for i := range n {
		dst[i] = math.Float32frombits(v.bits[i])
	}
	return n
}

// LoadFloat64x4Slice loads the first Lanes64 elements of src.
// It panics if len(src) < Lanes64.
func LoadFloat64x4Slice(src []float64) Float64x4 {
	_ = src[Lanes64-1]
	var out Float64x4
	for i := range out.bits {
		out.bits[i] = math.Float64bits(src[i])
	}
	return out
}

// LoadFloat64x4Partial loads up to Lanes64 elements of src, filling the
// remaining lanes with fill.
func LoadFloat64x4Partial(src []float64, fill float64) Float64x4 {
	out := BroadcastFloat64x4(fill)
	n := min(len(src), Lanes64)
	for i := range n {
		out.bits[i] = math.Float64bits(src[i])
	}
	return out
}

// StoreSlice writes all lanes to dst.
// It panics if len(dst) < Lanes64.
func (v Float64x4) StoreSlice(dst []float64) {
	_ = dst[Lanes64-1]
	for i, b := range v.bits {
		dst[i] = math.Float64frombits(b)
	}
}

// StorePartial writes the first min(len(dst), Lanes64) lanes to dst and
// returns the number of lanes written.
func (v Float64x4) StorePartial(dst []float64) int {
	n := min(len(dst), Lanes64)
	for i := range n {
		dst[i] = math.Float64frombits(v.bits[i])
	}
	return n
}
