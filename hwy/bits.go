package hwy

const (
	signBit32 = uint32(1) << 31
	signBit64 = uint64(1) << 63
)

func (v Float32x8) bitwise(o [Lanes32]uint32, op func(a, b uint32) uint32) Float32x8 {
	var out Float32x8
	for i := range out.bits {
		out.bits[i] = op(v.bits[i], o[i])
	}
	return out
}

// And returns the lane-wise bitwise AND of v and o.
func (v Float32x8) And(o Float32x8) Float32x8 {
	return v.bitwise(o.bits, func(a, b uint32) uint32 { return a & b })
}

// Or returns the lane-wise bitwise OR of v and o.
func (v Float32x8) Or(o Float32x8) Float32x8 {
	return v.bitwise(o.bits, func(a, b uint32) uint32 { return a | b })
}

// Xor returns the lane-wise bitwise XOR of v and o.
func (v Float32x8) Xor(o Float32x8) Float32x8 {
	return v.bitwise(o.bits, func(a, b uint32) uint32 { return a ^ b })
}

// AndNot returns v &^ o, clearing in v every bit that is set in o.
// Note the operand order is the reverse of ANDNPS.
func (v Float32x8) AndNot(o Float32x8) Float32x8 {
	return v.bitwise(o.bits, func(a, b uint32) uint32 { return a &^ b })
}

// AndMask keeps the lanes of v where m is true and zeroes the others.
func (v Float32x8) AndMask(m Mask32x8) Float32x8 {
	return v.bitwise(m.bits, func(a, b uint32) uint32 { return a & b })
}

// AndNotMask keeps the lanes of v where m is false and zeroes the others.
func (v Float32x8) AndNotMask(m Mask32x8) Float32x8 {
	return v.bitwise(m.bits, func(a, b uint32) uint32 { return a &^ b })
}

// OrMask sets every bit of the lanes where m is true. On float lanes this
// turns them into NaN.
func (v Float32x8) OrMask(m Mask32x8) Float32x8 {
	return v.bitwise(m.bits, func(a, b uint32) uint32 { return a | b })
}

// IfThenElse returns yes in lanes where m is true and no elsewhere. It is
// composed from AND, ANDNOT and OR, so both inputs are always evaluated.
func IfThenElse(m Mask32x8, yes, no Float32x8) Float32x8 {
	return yes.AndMask(m).Or(no.AndNotMask(m))
}

// AsFloat32x8 reinterprets the mask as a float vector: true lanes become
// the all-ones NaN pattern and false lanes +0.
func (m Mask32x8) AsFloat32x8() Float32x8 {
	return Float32x8{bits: m.bits}
}

// AsInt32x8 reinterprets the mask as an integer vector of -1 and 0 lanes.
func (m Mask32x8) AsInt32x8() Int32x8 {
	var out Int32x8
	for i, b := range m.bits {
		out.v[i] = int32(b)
	}
	return out
}

// Not inverts every lane of the mask.
func (m Mask32x8) Not() Mask32x8 {
	var out Mask32x8
	for i, b := range m.bits {
		out.bits[i] = ^b
	}
	return out
}

// And returns the lanes true in both m and o.
func (m Mask32x8) And(o Mask32x8) Mask32x8 {
	var out Mask32x8
	for i := range out.bits {
		out.bits[i] = m.bits[i] & o.bits[i]
	}
	return out
}

// Or returns the lanes true in either m or o.
func (m Mask32x8) Or(o Mask32x8) Mask32x8 {
	var out Mask32x8
	for i := range out.bits {
		out.bits[i] = m.bits[i] | o.bits[i]
	}
	return out
}

// AndNot returns the lanes true in m and false in o.
func (m Mask32x8) AndNot(o Mask32x8) Mask32x8 {
	var out Mask32x8
	for i := range out.bits {
		out.bits[i] = m.bits[i] &^ o.bits[i]
	}
	return out
}

// And returns the lane-wise bitwise AND of v and o.
func (v Float64x4) And(o Float64x4) Float64x4 {
	var out Float64x4
	for i := range out.bits {
		out.bits[i] = v.bits[i] & o.bits[i]
	}
	return out
}

// Or returns the lane-wise bitwise OR of v and o.
func (v Float64x4) Or(o Float64x4) Float64x4 {
	var out Float64x4
	for i := range out.bits {
		out.bits[i] = v.bits[i] | o.bits[i]
	}
	return out
}

// AndNot returns v &^ o.
func (v Float64x4) AndNot(o Float64x4) Float64x4 {
	var out Float64x4
	for i := range out.bits {
		out.bits[i] = v.bits[i] &^ o.bits[i]
	}
	return out
}

// AndMask keeps the lanes of v where m is true and zeroes the others.
func (v Float64x4) AndMask(m Mask64x4) Float64x4 {
	return v.And(Float64x4{bits: m.bits})
}

// AndNotMask keeps the lanes of v where m is false and zeroes the others.
func (v Float64x4) AndNotMask(m Mask64x4) Float64x4 {
	return v.AndNot(Float64x4{bits: m.bits})
}

// IfThenElse64 returns yes in lanes where m is true and no elsewhere.
func IfThenElse64(m Mask64x4, yes, no Float64x4) Float64x4 {
	return yes.AndMask(m).Or(no.AndNotMask(m))
}
