package accuracy

import (
	"fmt"
	"math"
	"time"

	"github.com/chewxy/math32"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Report is the outcome of one Sweep.
type Report struct {
	Sweep    Sweep
	Features string
	FastMath bool

	// Points counts the lanes compared against the reference, excluding
	// lanes where either side is NaN or infinite.
	Points int

	// MaxAbsErr is the largest |got - reference| and MaxAbsInput its input.
	MaxAbsErr   float64
	MaxAbsInput float64

	// MaxULP is the largest distance in units in the last place between the
	// result and the reference rounded to the lane type, and MaxULPInput its
	// input.
	MaxULP      uint64
	MaxULPInput float64

	// RMS is the root mean square of (got - reference) / max(1, |reference|)
	// over Points.
	RMS float64

	// SpecialMismatches counts lanes where the result and the reference
	// disagree on NaN or infinity, plus failed special-value checks.
	SpecialMismatches int

	Elapsed time.Duration
}

// Passed reports whether r is within the budgets of its Sweep.
func (r Report) Passed() bool {
	if r.SpecialMismatches > 0 {
		return false
	}
	if r.Sweep.MaxULP > 0 && r.MaxULP > r.Sweep.MaxULP {
		return false
	}
	if r.Sweep.MaxAbs > 0 && r.MaxAbsErr > r.Sweep.MaxAbs {
		return false
	}
	return true
}

func (r Report) String() string {
	status := "ok"
	if !r.Passed() {
		status = "FAIL"
	}
	return fmt.Sprintf("%-4s %-32s max_ulp=%-6d max_abs=%.3g rms=%.3g specials_failed=%d (%s)",
		status, r.Sweep, r.MaxULP, r.MaxAbsErr, r.RMS, r.SpecialMismatches, r.Elapsed.Round(time.Millisecond))
}

// ulpDistance counts the representable values between two IEEE-754 bit
// patterns of the same width. sign is the sign bit of that width.
func ulpDistance(a, b, sign uint64) uint64 {
	ma, mb := a&^sign, b&^sign
	if a&sign != b&sign {
		return ma + mb
	}
	if ma > mb {
		return ma - mb
	}
	return mb - ma
}

func ulp32(a, b float32) uint64 {
	return ulpDistance(uint64(math32.Float32bits(a)), uint64(math32.Float32bits(b)), 1<<31)
}

func ulp64(a, b float64) uint64 {
	return ulpDistance(math.Float64bits(a), math.Float64bits(b), 1<<63)
}

// scaledErr is the error relative to max(1, |ref|), absolute near zero and
// relative elsewhere.
func scaledErr(got, ref float64) float64 {
	return (got - ref) / max(1, math.Abs(ref))
}

// accumulator32 collects float32 results. errs keeps the scaled error of
// each compared lane for the RMS.
type accumulator32 struct {
	r    Report
	errs []float32
}

func (a *accumulator32) add(x float64, got float32, ref float64) {
	want := float32(ref)
	g := float64(got)
	if !finite(g) || !finite(float64(want)) {
		if !sameValue(g, float64(want)) {
			a.r.SpecialMismatches++
		}
		return
	}
	a.r.Points++
	if e := math.Abs(g - ref); e > a.r.MaxAbsErr {
		a.r.MaxAbsErr, a.r.MaxAbsInput = e, x
	}
	if u := ulp32(got, want); u > a.r.MaxULP {
		a.r.MaxULP, a.r.MaxULPInput = u, x
	}
	a.errs = append(a.errs, float32(scaledErr(g, ref)))
}

func (a *accumulator32) report() Report {
	if n := len(a.errs); n > 0 {
		a.r.RMS = float64(vek32.Norm(a.errs)) / math.Sqrt(float64(n))
	}
	return a.r
}

type accumulator64 struct {
	r    Report
	errs []float64
}

func (a *accumulator64) add(x, got, ref float64) {
	if !finite(got) || !finite(ref) {
		if !sameValue(got, ref) {
			a.r.SpecialMismatches++
		}
		return
	}
	a.r.Points++
	if e := math.Abs(got - ref); e > a.r.MaxAbsErr {
		a.r.MaxAbsErr, a.r.MaxAbsInput = e, x
	}
	if u := ulp64(got, ref); u > a.r.MaxULP {
		a.r.MaxULP, a.r.MaxULPInput = u, x
	}
	a.errs = append(a.errs, scaledErr(got, ref))
}

func (a *accumulator64) report() Report {
	if n := len(a.errs); n > 0 {
		a.r.RMS = vek.Norm(a.errs) / math.Sqrt(float64(n))
	}
	return a.r
}
