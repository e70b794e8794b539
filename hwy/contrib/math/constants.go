package math

import "github.com/ajroetker/packetmath/hwy"

// =============================================================================
// Shared constants
// =============================================================================

var (
	f32_zero         = hwy.BroadcastFloat32x8(0)
	f32_half         = hwy.BroadcastFloat32x8(0.5)
	f32_one          = hwy.BroadcastFloat32x8(1)
	f32_two          = hwy.BroadcastFloat32x8(2)
	f32_minusHalf    = hwy.BroadcastFloat32x8(-0.5)
	f32_onePointFive = hwy.BroadcastFloat32x8(1.5)

	// Bit-level constants.
	f32_posInf    = hwy.Float32x8FromBits(0x7f800000)
	f32_minusInf  = hwy.Float32x8FromBits(0xff800000)
	f32_nan       = hwy.Float32x8FromBits(0x7fc00000)
	f32_minNormal = hwy.Float32x8FromBits(0x00800000) // FLT_MIN

	i32_one = hwy.BroadcastInt32x8(1)

	f64_one = hwy.BroadcastFloat64x4(1)
)

// =============================================================================
// Sin
// =============================================================================

// x is wrapped into [-Pi/4, 3*Pi/4] and mapped onto z in [-1, 3]. The
// interpolant on [-1, 1] is odd and the one on [1, 3] is even around 2, so
// each keeps only half of its coefficients.
var (
	sin32_oneOverPi  = hwy.BroadcastFloat32x8(3.183098861837907e-01)
	sin32_quarter    = hwy.BroadcastFloat32x8(0.25)
	sin32_fourOverPi = hwy.BroadcastFloat32x8(1.273239544735163e+00)

	// Pi split in three pieces of decreasing magnitude; the first two are
	// exact in few enough bits that shift*piece is exact.
	sin32_negPiFirst  = hwy.BroadcastFloat32x8(-3.140625000000000e+00)
	sin32_negPiSecond = hwy.BroadcastFloat32x8(-9.670257568359375e-04)
	sin32_negPiThird  = hwy.BroadcastFloat32x8(-6.278329571784980e-07)

	// Even minimax polynomial in (z-2) for z in (1, 3].
	sin32_right0 = hwy.BroadcastFloat32x8(9.999999724233232e-01)
	sin32_right2 = hwy.BroadcastFloat32x8(-3.084242535619928e-01)
	sin32_right4 = hwy.BroadcastFloat32x8(1.584991525700324e-02)
	sin32_right6 = hwy.BroadcastFloat32x8(-3.188805084631342e-04)

	// Odd minimax polynomial in z for z in [-1, 1].
	sin32_left1 = hwy.BroadcastFloat32x8(7.853981525427295e-01)
	sin32_left3 = hwy.BroadcastFloat32x8(-8.074536727092352e-02)
	sin32_left5 = hwy.BroadcastFloat32x8(2.489871967827018e-03)
	sin32_left7 = hwy.BroadcastFloat32x8(-3.587725841214251e-05)
)

// =============================================================================
// Log (Cephes)
// =============================================================================

var (
	log32_126         = hwy.BroadcastFloat32x8(126)
	log32_invMantMask = hwy.Float32x8FromBits(^uint32(0x7f800000))
	log32_sqrtHalf    = hwy.BroadcastFloat32x8(0.707106781186547524)
	log32_ln2Lo       = hwy.BroadcastFloat32x8(-2.12194440e-4)
	log32_ln2Hi       = hwy.BroadcastFloat32x8(0.693359375)
	log32_p0          = hwy.BroadcastFloat32x8(7.0376836292e-2)
	log32_p1          = hwy.BroadcastFloat32x8(-1.1514610310e-1)
	log32_p2          = hwy.BroadcastFloat32x8(1.1676998740e-1)
	log32_p3          = hwy.BroadcastFloat32x8(-1.2420140846e-1)
	log32_p4          = hwy.BroadcastFloat32x8(1.4249322787e-1)
	log32_p5          = hwy.BroadcastFloat32x8(-1.6668057665e-1)
	log32_p6          = hwy.BroadcastFloat32x8(2.0000714765e-1)
	log32_p7          = hwy.BroadcastFloat32x8(-2.4999993993e-1)
	log32_p8          = hwy.BroadcastFloat32x8(3.3333331174e-1)
)

// mantissaBits is the position of the float32 exponent field.
const mantissaBits = 23

// =============================================================================
// Exp (Cephes)
// =============================================================================

const (
	// ExpClampHi is the largest input Exp evaluates; larger inputs saturate
	// to Exp(ExpClampHi). It is the float32 just below 127.5*ln(2) (bits
	// 0x42b0c0a5), the largest value for which floor(x/ln2 + 0.5) is
	// still 127.
	ExpClampHi float32 = 88.37625885009766

	// ExpClampLo is the smallest input Exp evaluates. Results for inputs
	// below about -87.34 are flushed to zero because 2^m is built as a
	// normal float.
	ExpClampLo float32 = -88.3762626647949
)

var (
	exp32_hi     = hwy.BroadcastFloat32x8(ExpClampHi)
	exp32_lo     = hwy.BroadcastFloat32x8(ExpClampLo)
	exp32_log2e  = hwy.BroadcastFloat32x8(1.44269504088896341)
	exp32_bias   = hwy.BroadcastFloat32x8(127)
	exp32_negLn2 = hwy.BroadcastFloat32x8(-0.6931471805599453)

	// ln(2) = C1 + C2 where C1 has few enough bits that m*C1 is exact.
	exp32_c1 = hwy.BroadcastFloat32x8(0.693359375)
	exp32_c2 = hwy.BroadcastFloat32x8(-2.12194440e-4)

	exp32_p0 = hwy.BroadcastFloat32x8(1.9875691500e-4)
	exp32_p1 = hwy.BroadcastFloat32x8(1.3981999507e-3)
	exp32_p2 = hwy.BroadcastFloat32x8(8.3334519073e-3)
	exp32_p3 = hwy.BroadcastFloat32x8(4.1665795894e-2)
	exp32_p4 = hwy.BroadcastFloat32x8(1.6666665459e-1)
	exp32_p5 = hwy.BroadcastFloat32x8(5.0000001201e-1)
)
