package math

import "github.com/ajroetker/packetmath/hwy"

// Log computes the natural logarithm of every lane.
//
// x is split as 2^e * m with m in [sqrt(1/2), sqrt(2)), and
// log(x) = e*ln(2) + log(m), where log(m) comes from a degree 8 polynomial
// centered on m = 1. e*ln(2) is added in two parts to keep the low bits.
//
// Special values follow the scalar library: negative lanes, -Inf and NaN
// give NaN, ±0 gives -Inf and +Inf gives +Inf. Subnormal inputs are treated
// as the smallest normal float.
func (k *Kernel) Log(x hwy.Float32x8) hwy.Float32x8 {
	f := k.opts.Features

	// NGE is unordered, so NaN lanes are caught here too.
	invalid := x.Compare(f32_zero, hwy.CmpNGE_UQ)
	isZero := x.Compare(f32_zero, hwy.CmpEQ_OQ)
	isInf := x.Compare(f32_posInf, hwy.CmpEQ_OQ)

	x = x.Max(f32_minNormal)

	biased := f.ShiftRightLogical(x.AsInt32x8(), mantissaBits).ConvertToFloat32()
	e := biased.Sub(log32_126)

	// Replace the exponent so x lies in [0.5, 1).
	x = x.And(log32_invMantMask).Or(f32_half)

	// if x < sqrt(1/2) { e -= 1; x = x + x - 1 } else { x = x - 1 }
	small := x.Compare(log32_sqrtHalf, hwy.CmpLT_OQ)
	tmp := x.AndMask(small)
	x = x.Sub(f32_one)
	e = e.Sub(f32_one.AndMask(small))
	x = x.Add(tmp)

	x2 := x.Mul(x)
	x3 := x2.Mul(x)

	// Three partial Horner chains, joined through x^3.
	y := f.MulAdd(log32_p0, x, log32_p1)
	y1 := f.MulAdd(log32_p3, x, log32_p4)
	y2 := f.MulAdd(log32_p6, x, log32_p7)
	y = f.MulAdd(y, x, log32_p2)
	y1 = f.MulAdd(y1, x, log32_p5)
	y2 = f.MulAdd(y2, x, log32_p8)
	y = f.MulAdd(y, x3, y1)
	y = f.MulAdd(y, x3, y2)
	y = y.Mul(x3)

	y1 = e.Mul(log32_ln2Lo)
	tmp = x2.Mul(f32_half)
	y = y.Add(y1)
	x = x.Sub(tmp)
	y2 = e.Mul(log32_ln2Hi)
	x = x.Add(y)
	x = x.Add(y2)

	res := x.OrMask(invalid).AndNotMask(isZero).Or(f32_minusInf.AndMask(isZero))
	return hwy.IfThenElse(isInf, f32_posInf, res)
}
