package math

import "github.com/ajroetker/packetmath/hwy"

// Exp computes e^x for every lane.
//
// Algorithm:
//  1. Clamp x to [ExpClampLo, ExpClampHi].
//  2. m = floor(x/ln(2) + 1/2) and r = x - m*ln(2), so |r| <= ln(2)/2.
//     With FMA r takes one fused step; without it ln(2) is subtracted in a
//     high and a low part.
//  3. exp(r) = 1 + r + r^2 * P(r) with a degree 5 minimax P.
//  4. 2^m is built by shifting m+127 into the exponent field.
//
// The result is max(2^m * exp(r), x): it never overflows, inputs above the
// clamp saturate near 2.4e38, +Inf gives +Inf and NaN gives NaN.
func (k *Kernel) Exp(in hwy.Float32x8) hwy.Float32x8 {
	f := k.opts.Features

	x := in.Min(exp32_hi).Max(exp32_lo)

	m := f.MulAdd(x, exp32_log2e, f32_half).Floor()

	var r hwy.Float32x8
	if f.FMA {
		r = m.MulAdd(exp32_negLn2, x)
	} else {
		r = x.Sub(m.Mul(exp32_c1))
		r = r.Sub(m.Mul(exp32_c2))
	}
	r2 := r.Mul(r)

	y := f.MulAdd(exp32_p0, r, exp32_p1)
	y = f.MulAdd(y, r, exp32_p2)
	y = f.MulAdd(y, r, exp32_p3)
	y = f.MulAdd(y, r, exp32_p4)
	y = f.MulAdd(y, r, exp32_p5)
	y = f.MulAdd(y, r2, r)
	y = y.Add(f32_one)

	// 2^m
	scale := f.ShiftLeft(m.Add(exp32_bias).ConvertToInt32(), mantissaBits).AsFloat32x8()

	return y.Mul(scale).Max(in)
}
