package math

import "github.com/ajroetker/packetmath/hwy"

// Function types for whole-vector operations passed to Transform32 and
// Transform64. Kernel methods such as (*Kernel).Exp satisfy them.
type (
	// VecFunc32 maps one float32 vector to another.
	VecFunc32 func(hwy.Float32x8) hwy.Float32x8

	// VecFunc64 maps one float64 vector to another.
	VecFunc64 func(hwy.Float64x4) hwy.Float64x4
)

// tailFill pads the last partial vector. 1 is in the domain of every
// function here, so padding lanes never raise special values.
const tailFill = 1

// Transform32 applies fn to input a vector at a time, storing results in
// output. Only min(len(input), len(output)) elements are processed; the
// final partial vector is padded and only its valid lanes are stored.
//
// Example usage:
//
//	Transform32(input, output, func(x hwy.Float32x8) hwy.Float32x8 {
//	    return math.Exp(x).Mul(x)
//	})
func Transform32(input, output []float32, fn VecFunc32) {
	n := min(len(input), len(output))
	hwy.ProcessWithTail[float32](n,
		func(offset int) {
			fn(hwy.LoadFloat32x8Slice(input[offset:])).StoreSlice(output[offset:])
		},
		func(offset, count int) {
			v := hwy.LoadFloat32x8Partial(input[offset:offset+count], tailFill)
			fn(v).StorePartial(output[offset : offset+count])
		},
	)
}

// Transform64 applies fn to input a vector at a time, storing results in
// output.
func Transform64(input, output []float64, fn VecFunc64) {
	n := min(len(input), len(output))
	hwy.ProcessWithTail[float64](n,
		func(offset int) {
			fn(hwy.LoadFloat64x4Slice(input[offset:])).StoreSlice(output[offset:])
		},
		func(offset, count int) {
			v := hwy.LoadFloat64x4Partial(input[offset:offset+count], tailFill)
			fn(v).StorePartial(output[offset : offset+count])
		},
	)
}

// SinTransform applies sin(x) to each element.
func (k *Kernel) SinTransform(input, output []float32) { Transform32(input, output, k.Sin) }

// LogTransform applies ln(x) to each element.
func (k *Kernel) LogTransform(input, output []float32) { Transform32(input, output, k.Log) }

// ExpTransform applies exp(x) to each element.
func (k *Kernel) ExpTransform(input, output []float32) { Transform32(input, output, k.Exp) }

// SqrtTransform applies sqrt(x) to each element.
func (k *Kernel) SqrtTransform(input, output []float32) { Transform32(input, output, k.Sqrt) }

// RSqrtTransform applies 1/sqrt(x) to each element.
func (k *Kernel) RSqrtTransform(input, output []float32) { Transform32(input, output, k.RSqrt) }

// SqrtTransform64 applies sqrt(x) to each float64 element.
func (k *Kernel) SqrtTransform64(input, output []float64) { Transform64(input, output, k.Sqrt64) }

// RSqrtTransform64 applies 1/sqrt(x) to each float64 element.
func (k *Kernel) RSqrtTransform64(input, output []float64) { Transform64(input, output, k.RSqrt64) }

// SinTransform applies sin(x) to each element with the default Kernel.
func SinTransform(input, output []float32) { Default().SinTransform(input, output) }

// LogTransform applies ln(x) to each element with the default Kernel.
func LogTransform(input, output []float32) { Default().LogTransform(input, output) }

// ExpTransform applies exp(x) to each element with the default Kernel.
func ExpTransform(input, output []float32) { Default().ExpTransform(input, output) }

// SqrtTransform applies sqrt(x) to each element with the default Kernel.
func SqrtTransform(input, output []float32) { Default().SqrtTransform(input, output) }

// RSqrtTransform applies 1/sqrt(x) to each element with the default Kernel.
func RSqrtTransform(input, output []float32) { Default().RSqrtTransform(input, output) }

// SqrtTransform64 applies sqrt(x) to each float64 element.
func SqrtTransform64(input, output []float64) { Default().SqrtTransform64(input, output) }

// RSqrtTransform64 applies 1/sqrt(x) to each float64 element.
func RSqrtTransform64(input, output []float64) { Default().RSqrtTransform64(input, output) }
