package hwy

// Integer lane arithmetic and shifts. The 256-bit shifts correspond to the
// AVX2 VPSLLD/VPSRLD forms; the Int32x4 halves correspond to the SSE2 forms
// that plain AVX hardware is limited to. Features.ShiftLeft and
// Features.ShiftRightLogical pick between the two.

func (v Int32x8) binary(o Int32x8, op func(a, b int32) int32) Int32x8 {
	var out Int32x8
	for i := range out.v {
		out.v[i] = op(v.v[i], o.v[i])
	}
	return out
}

// Add returns v + o lane-wise with wraparound.
func (v Int32x8) Add(o Int32x8) Int32x8 {
	return v.binary(o, func(a, b int32) int32 { return a + b })
}

// Sub returns v - o lane-wise with wraparound.
func (v Int32x8) Sub(o Int32x8) Int32x8 {
	return v.binary(o, func(a, b int32) int32 { return a - b })
}

// And returns the lane-wise bitwise AND of v and o.
func (v Int32x8) And(o Int32x8) Int32x8 {
	return v.binary(o, func(a, b int32) int32 { return a & b })
}

// Or returns the lane-wise bitwise OR of v and o.
func (v Int32x8) Or(o Int32x8) Int32x8 {
	return v.binary(o, func(a, b int32) int32 { return a | b })
}

// ShiftAllLeft shifts every lane left by n bits. Counts of 32 or more
// produce zero.
func (v Int32x8) ShiftAllLeft(n uint) Int32x8 {
	var out Int32x8
	for i, x := range v.v {
		out.v[i] = int32(uint32(x) << n)
	}
	return out
}

// ShiftAllRightLogical shifts every lane right by n bits, filling with zeros.
// Counts of 32 or more produce zero.
func (v Int32x8) ShiftAllRightLogical(n uint) Int32x8 {
	var out Int32x8
	for i, x := range v.v {
		out.v[i] = int32(uint32(x) >> n)
	}
	return out
}

// GetLo returns lanes 0-3.
func (v Int32x8) GetLo() Int32x4 {
	var out Int32x4
	copy(out.v[:], v.v[:Lanes32/2])
	return out
}

// GetHi returns lanes 4-7.
func (v Int32x8) GetHi() Int32x4 {
	var out Int32x4
	copy(out.v[:], v.v[Lanes32/2:])
	return out
}

// CombineInt32x4 reassembles an Int32x8 from its low and high halves.
func CombineInt32x4(lo, hi Int32x4) Int32x8 {
	var out Int32x8
	copy(out.v[:Lanes32/2], lo.v[:])
	copy(out.v[Lanes32/2:], hi.v[:])
	return out
}

// ShiftAllLeft shifts every lane left by n bits.
func (v Int32x4) ShiftAllLeft(n uint) Int32x4 {
	var out Int32x4
	for i, x := range v.v {
		out.v[i] = int32(uint32(x) << n)
	}
	return out
}

// ShiftAllRightLogical shifts every lane right by n bits, filling with zeros.
func (v Int32x4) ShiftAllRightLogical(n uint) Int32x4 {
	var out Int32x4
	for i, x := range v.v {
		out.v[i] = int32(uint32(x) >> n)
	}
	return out
}

// ShiftLeftSplit shifts every lane left by n bits one 128-bit half at a time.
func (v Int32x8) ShiftLeftSplit(n uint) Int32x8 {
	return CombineInt32x4(v.GetLo().ShiftAllLeft(n), v.GetHi().ShiftAllLeft(n))
}

// ShiftRightLogicalSplit shifts every lane right by n bits one 128-bit half
// at a time.
func (v Int32x8) ShiftRightLogicalSplit(n uint) Int32x8 {
	return CombineInt32x4(v.GetLo().ShiftAllRightLogical(n), v.GetHi().ShiftAllRightLogical(n))
}
