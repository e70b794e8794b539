package math

import "github.com/ajroetker/packetmath/hwy"

// Sin computes sin(x) for every lane.
//
// Algorithm:
//  1. shift = floor(x/Pi + 1/4), so x - shift*Pi lies in [-Pi/4, 3*Pi/4).
//     The product is subtracted in three pieces to limit cancellation.
//  2. z = 4/Pi * x maps the reduced angle onto [-1, 3).
//  3. z <= 1 uses an odd polynomial in z, z > 1 an even polynomial in z-2.
//     Both are evaluated and the mask picks one per lane.
//  4. An odd shift flips the sign: the low bit of shift is moved to bit 31
//     and XORed into the result.
//
// The maximum absolute error is about 3e-7 for |x| <= 100. NaN and ±Inf
// produce NaN.
func (k *Kernel) Sin(x hwy.Float32x8) hwy.Float32x8 {
	f := k.opts.Features

	z := x.Mul(sin32_oneOverPi)
	shift := z.Add(sin32_quarter).Floor()
	x = f.MulAdd(shift, sin32_negPiFirst, x)
	x = f.MulAdd(shift, sin32_negPiSecond, x)
	x = f.MulAdd(shift, sin32_negPiThird, x)
	z = x.Mul(sin32_fourOverPi)

	shiftIsOdd := shift.RoundToInt32().And(i32_one)
	signFlip := f.ShiftLeft(shiftIsOdd, 31).AsFloat32x8()

	useRight := z.Compare(f32_one, hwy.CmpGT_OQ)

	zm2 := z.Sub(f32_two)
	zm2sq := zm2.Mul(zm2)
	right := f.MulAdd(sin32_right6, zm2sq, sin32_right4)
	right = f.MulAdd(right, zm2sq, sin32_right2)
	right = f.MulAdd(right, zm2sq, sin32_right0)

	zsq := z.Mul(z)
	left := f.MulAdd(sin32_left7, zsq, sin32_left5)
	left = f.MulAdd(left, zsq, sin32_left3)
	left = f.MulAdd(left, zsq, sin32_left1)
	left = left.Mul(z)

	res := left.AndNotMask(useRight).Or(right.AndMask(useRight))
	return res.Xor(signFlip)
}
