// Package hwy provides fixed-width lane primitives for packet math kernels.
//
// It follows the Highway C++ library's design philosophy: every operation is
// applied to all lanes of a vector through one instruction stream, and
// per-lane conditions are expressed as masks rather than branches. Two vector
// shapes exist, both 256 bits wide:
//
//   - Float32x8: eight IEEE-754 single-precision lanes
//   - Float64x4: four IEEE-754 double-precision lanes
//
// Lanes are stored as raw bit patterns, so NaN payloads and all-ones mask
// patterns survive every copy unchanged.
//
// Basic usage:
//
//	import "github.com/ajroetker/packetmath/hwy"
//
//	a := hwy.LoadFloat32x8Slice(data1)
//	b := hwy.LoadFloat32x8Slice(data2)
//	hwy.CurrentFeatures().MulAdd(a, b, a).StoreSlice(out)
package hwy

import "math"

const (
	// VectorBytes is the width of every vector type in this package.
	VectorBytes = 32

	// Lanes32 is the number of 32-bit lanes in a vector.
	Lanes32 = VectorBytes / 4

	// Lanes64 is the number of 64-bit lanes in a vector.
	Lanes64 = VectorBytes / 8
)

// Floats is a constraint for the lane types of the float vectors.
type Floats interface {
	~float32 | ~float64
}

// LanesFor returns the number of T lanes in a vector.
func LanesFor[T Floats]() int {
	var zero T
	switch any(zero).(type) {
	case float64:
		return Lanes64
	default:
		return Lanes32
	}
}

// Float32x8 is an 8-lane vector of float32 values.
//
// The zero value has +0 in every lane. Float32x8 values are immutable; every
// operation returns a new vector.
type Float32x8 struct {
	bits [Lanes32]uint32
}

// Int32x8 is an 8-lane vector of int32 values. It shares its bit layout with
// Float32x8 and converts to and from it with AsInt32x8 / AsFloat32x8.
type Int32x8 struct {
	v [Lanes32]int32
}

// Int32x4 is one 128-bit half of an Int32x8.
type Int32x4 struct {
	v [Lanes32 / 2]int32
}

// Float64x4 is a 4-lane vector of float64 values.
type Float64x4 struct {
	bits [Lanes64]uint64
}

// Mask32x8 is the result of comparing two Float32x8 vectors. Every lane is
// either all ones (true) or all zeros (false).
//
// Masks are only produced by comparisons and only consumed by bitwise
// operations; there is no arithmetic on masks.
type Mask32x8 struct {
	bits [Lanes32]uint32
}

// Mask64x4 is the result of comparing two Float64x4 vectors.
type Mask64x4 struct {
	bits [Lanes64]uint64
}

const (
	laneTrue32 = ^uint32(0)
	laneTrue64 = ^uint64(0)
)

func maskBit32(b bool) uint32 {
	if b {
		return laneTrue32
	}
	return 0
}

func maskBit64(b bool) uint64 {
	if b {
		return laneTrue64
	}
	return 0
}

// Lane returns the value of lane i. It is meant for tests and tail handling;
// kernels never read individual lanes.
func (v Float32x8) Lane(i int) float32 {
	return math.Float32frombits(v.bits[i])
}

// Array returns the lanes as an array.
func (v Float32x8) Array() [Lanes32]float32 {
	var out [Lanes32]float32
	for i, b := range v.bits {
		out[i] = math.Float32frombits(b)
	}
	return out
}

// Bits returns the raw bit pattern of every lane.
func (v Float32x8) Bits() [Lanes32]uint32 {
	return v.bits
}

// Lane returns the value of lane i.
func (v Int32x8) Lane(i int) int32 {
	return v.v[i]
}

// Array returns the lanes as an array.
func (v Int32x8) Array() [Lanes32]int32 {
	return v.v
}

// Lane returns the value of lane i.
func (v Int32x4) Lane(i int) int32 {
	return v.v[i]
}

// Lane returns the value of lane i.
func (v Float64x4) Lane(i int) float64 {
	return math.Float64frombits(v.bits[i])
}

// Array returns the lanes as an array.
func (v Float64x4) Array() [Lanes64]float64 {
	var out [Lanes64]float64
	for i, b := range v.bits {
		out[i] = math.Float64frombits(b)
	}
	return out
}

// Bits returns the raw bit pattern of every lane.
func (v Float64x4) Bits() [Lanes64]uint64 {
	return v.bits
}

// GetBit returns whether lane i is active.
func (m Mask32x8) GetBit(i int) bool {
	if i < 0 || i >= Lanes32 {
		return false
	}
	return m.bits[i] != 0
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask32x8) AllTrue() bool {
	for _, b := range m.bits {
		if b == 0 {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask32x8) AnyTrue() bool {
	for _, b := range m.bits {
		if b != 0 {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask32x8) CountTrue() int {
	count := 0
	for _, b := range m.bits {
		if b != 0 {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask64x4) GetBit(i int) bool {
	if i < 0 || i >= Lanes64 {
		return false
	}
	return m.bits[i] != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask64x4) CountTrue() int {
	count := 0
	for _, b := range m.bits {
		if b != 0 {
			count++
		}
	}
	return count
}
