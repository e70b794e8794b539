package accuracy

import (
	"math"
	"time"

	"github.com/ajroetker/packetmath/hwy"
	pmath "github.com/ajroetker/packetmath/hwy/contrib/math"
)

// target binds a function name to the kernel method under test and its
// float64 reference. Exactly one of vec32 and vec64 is set.
type target struct {
	vec32 func(*pmath.Kernel) pmath.VecFunc32
	vec64 func(*pmath.Kernel) pmath.VecFunc64
	ref   func(float64) float64
}

func rsqrt(x float64) float64 { return 1 / math.Sqrt(x) }

var targets = map[string]target{
	FuncSin:     {vec32: func(k *pmath.Kernel) pmath.VecFunc32 { return k.Sin }, ref: math.Sin},
	FuncLog:     {vec32: func(k *pmath.Kernel) pmath.VecFunc32 { return k.Log }, ref: math.Log},
	FuncExp:     {vec32: func(k *pmath.Kernel) pmath.VecFunc32 { return k.Exp }, ref: math.Exp},
	FuncSqrt:    {vec32: func(k *pmath.Kernel) pmath.VecFunc32 { return k.Sqrt }, ref: math.Sqrt},
	FuncRSqrt:   {vec32: func(k *pmath.Kernel) pmath.VecFunc32 { return k.RSqrt }, ref: rsqrt},
	FuncSqrt64:  {vec64: func(k *pmath.Kernel) pmath.VecFunc64 { return k.Sqrt64 }, ref: math.Sqrt},
	FuncRSqrt64: {vec64: func(k *pmath.Kernel) pmath.VecFunc64 { return k.RSqrt64 }, ref: rsqrt},
}

func lookup(name string) (target, bool) {
	t, ok := targets[name]
	return t, ok
}

// Funcs returns the function names Run accepts, in a fixed order.
func Funcs() []string {
	return []string{FuncSin, FuncLog, FuncExp, FuncSqrt, FuncRSqrt, FuncSqrt64, FuncRSqrt64}
}

// special is an input whose output is fixed exactly by the IEEE-754 rules
// the kernels follow.
type special struct {
	in, want float64
}

var (
	nan    = math.NaN()
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

var specials = map[string][]special{
	FuncSin:     {{0, 0}, {nan, nan}, {posInf, nan}, {negInf, nan}},
	FuncLog:     {{1, 0}, {0, negInf}, {-1, nan}, {negInf, nan}, {posInf, posInf}, {nan, nan}},
	FuncExp:     {{0, 1}, {negInf, 0}, {posInf, posInf}, {nan, nan}, {-1000, 0}},
	FuncSqrt:    {{0, 0}, {4, 2}, {-1, nan}, {posInf, posInf}, {nan, nan}},
	FuncRSqrt:   {{0, posInf}, {4, 0.5}, {-1, nan}, {posInf, 0}, {nan, nan}},
	FuncSqrt64:  {{0, 0}, {4, 2}, {-1, nan}, {posInf, posInf}, {nan, nan}},
	FuncRSqrt64: {{0, posInf}, {4, 0.5}, {-1, nan}, {posInf, 0}, {nan, nan}},
}

// points returns the sweep inputs. The last point is exactly Hi.
func (s Sweep) points() []float64 {
	xs := make([]float64, s.Steps)
	last := float64(s.Steps - 1)
	if s.Log {
		l0, l1 := math.Log2(s.Lo), math.Log2(s.Hi)
		for i := range xs {
			xs[i] = math.Exp2(l0 + (l1-l0)*float64(i)/last)
		}
	} else {
		for i := range xs {
			xs[i] = s.Lo + (s.Hi-s.Lo)*float64(i)/last
		}
	}
	xs[0], xs[len(xs)-1] = s.Lo, s.Hi
	return xs
}

// Run evaluates k over s and compares every lane with the float64
// reference. The special inputs for s.Func are checked on every run.
func Run(k *pmath.Kernel, s Sweep) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, err
	}
	t, _ := lookup(s.Func)
	opts := k.Options()

	start := time.Now()
	var r Report
	if t.vec32 != nil {
		r = run32(t.vec32(k), t.ref, s)
	} else {
		r = run64(t.vec64(k), t.ref, s)
	}
	r.Sweep = s
	r.Features = opts.Features.String()
	r.FastMath = opts.FastMath
	r.Elapsed = time.Since(start)

	hwy.Logger().Debug("accuracy: sweep done",
		"sweep", s.String(),
		"features", r.Features,
		"fast_math", r.FastMath,
		"max_ulp", r.MaxULP,
		"max_abs", r.MaxAbsErr,
		"specials_failed", r.SpecialMismatches,
		"elapsed", r.Elapsed)
	return r, nil
}

// RunAll runs each sweep in order and stops at the first error.
func RunAll(k *pmath.Kernel, sweeps []Sweep) ([]Report, error) {
	reports := make([]Report, 0, len(sweeps))
	for _, s := range sweeps {
		r, err := Run(k, s)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func run32(fn pmath.VecFunc32, ref func(float64) float64, s Sweep) Report {
	xs := s.points()
	in := make([]float32, len(xs))
	for i, x := range xs {
		in[i] = float32(x)
	}
	out := make([]float32, len(in))
	pmath.Transform32(in, out, fn)

	var acc accumulator32
	for i, x := range in {
		acc.add(float64(x), out[i], ref(float64(x)))
	}

	// Specials go through the same vector path as the sweep.
	cases := specials[s.Func]
	specIn := make([]float32, len(cases))
	for i, c := range cases {
		specIn[i] = float32(c.in)
	}
	specOut := make([]float32, len(cases))
	pmath.Transform32(specIn, specOut, fn)
	for i, c := range cases {
		if !sameValue(float64(specOut[i]), c.want) {
			acc.r.SpecialMismatches++
		}
	}
	return acc.report()
}

func run64(fn pmath.VecFunc64, ref func(float64) float64, s Sweep) Report {
	in := s.points()
	out := make([]float64, len(in))
	pmath.Transform64(in, out, fn)

	var acc accumulator64
	for i, x := range in {
		acc.add(x, out[i], ref(x))
	}

	cases := specials[s.Func]
	specIn := make([]float64, len(cases))
	for i, c := range cases {
		specIn[i] = c.in
	}
	specOut := make([]float64, len(cases))
	pmath.Transform64(specIn, specOut, fn)
	for i, c := range cases {
		if !sameValue(specOut[i], c.want) {
			acc.r.SpecialMismatches++
		}
	}
	return acc.report()
}

// sameValue is equality with NaN equal to NaN and +0 equal to -0.
func sameValue(got, want float64) bool {
	if math.IsNaN(want) {
		return math.IsNaN(got)
	}
	return got == want
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
