package math

import "github.com/ajroetker/packetmath/hwy"

// Sqrt computes sqrt(x) for every lane.
//
// Without FastMath this is the correctly rounded hardware square root. With
// FastMath it refines an RSqrtEstimate with one Newton-Raphson step,
// r' = r * (1.5 - 0.5*x*r*r), and returns x*r'; the relative error stays
// below 3e-7. Lanes below the smallest normal float give 0 (keeping the
// sign of zero), negative lanes give NaN and +Inf gives +Inf.
func (k *Kernel) Sqrt(x hwy.Float32x8) hwy.Float32x8 {
	if !k.opts.FastMath {
		return x.Sqrt()
	}
	f := k.opts.Features

	negHalf := x.Mul(f32_minusHalf)

	// Only lanes at or above the smallest normal float get an estimate;
	// zeroing the rest makes x*r come out as a zero of the same sign.
	nonZero := x.Compare(f32_minNormal, hwy.CmpGE_OQ)
	r := x.RSqrtEstimate().AndMask(nonZero)

	r = r.Mul(f.MulAdd(negHalf, r.Mul(r), f32_onePointFive))
	res := x.Mul(r)

	isInf := x.Compare(f32_posInf, hwy.CmpEQ_OQ)
	negative := x.Compare(f32_zero, hwy.CmpLT_OQ)
	return hwy.IfThenElse(isInf, x, res).OrMask(negative)
}

// RSqrt computes 1/sqrt(x) for every lane.
//
// Without FastMath this is 1 divided by the correctly rounded square root.
// With FastMath it refines an RSqrtEstimate with one Newton-Raphson step.
// Negative lanes give NaN, zero and subnormal lanes give +Inf and +Inf
// gives 0; the special values are ORed in under masks.
func (k *Kernel) RSqrt(x hwy.Float32x8) hwy.Float32x8 {
	if !k.opts.FastMath {
		return f32_one.Div(x.Sqrt())
	}
	f := k.opts.Features

	negHalf := x.Mul(f32_minusHalf)

	belowNormal := x.Compare(f32_minNormal, hwy.CmpLT_OQ)
	r := x.RSqrtEstimate().AndNotMask(belowNormal)

	negative := x.Compare(f32_zero, hwy.CmpLT_OQ)
	zero := belowNormal.AndNot(negative)
	infsAndNaNs := f32_nan.AndMask(negative).Or(f32_posInf.AndMask(zero))

	r = r.Mul(f.MulAdd(negHalf, r.Mul(r), f32_onePointFive))

	isInf := x.Compare(f32_posInf, hwy.CmpEQ_OQ)
	return r.Or(infsAndNaNs).AndNotMask(isInf)
}

// Sqrt64 computes sqrt(x) for every lane. It is always correctly rounded.
func (k *Kernel) Sqrt64(x hwy.Float64x4) hwy.Float64x4 {
	return x.Sqrt()
}

// RSqrt64 computes 1/sqrt(x) for every lane as 1 divided by the correctly
// rounded square root.
func (k *Kernel) RSqrt64(x hwy.Float64x4) hwy.Float64x4 {
	return f64_one.Div(x.Sqrt())
}
