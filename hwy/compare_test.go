package hwy

import (
	"math"
	"testing"
)

func TestComparePredicates(t *testing.T) {
	nan := float32(math.NaN())
	// Lanes: less, equal, greater, NaN left, NaN right, both NaN, -0 vs +0, -Inf vs +Inf.
	a := f32x8(1, 2, 3, nan, 0, nan, negZero, float32(math.Inf(-1)))
	b := f32x8(2, 2, 2, 0, nan, nan, 0, float32(math.Inf(1)))

	tests := []struct {
		pred Predicate
		want [Lanes32]bool
	}{
		{CmpEQ_OQ, [Lanes32]bool{false, true, false, false, false, false, true, false}},
		{CmpLT_OQ, [Lanes32]bool{true, false, false, false, false, false, false, true}},
		{CmpLE_OQ, [Lanes32]bool{true, true, false, false, false, false, true, true}},
		{CmpGT_OQ, [Lanes32]bool{false, false, true, false, false, false, false, false}},
		{CmpGE_OQ, [Lanes32]bool{false, true, true, false, false, false, true, false}},
		{CmpNEQ_UQ, [Lanes32]bool{true, false, true, true, true, true, false, true}},
		{CmpNLT_UQ, [Lanes32]bool{false, true, true, true, true, true, true, false}},
		{CmpNLE_UQ, [Lanes32]bool{false, false, true, true, true, true, false, false}},
		{CmpNGT_UQ, [Lanes32]bool{true, true, false, true, true, true, true, true}},
		{CmpNGE_UQ, [Lanes32]bool{true, false, false, true, true, true, false, true}},
		{CmpUNORD_Q, [Lanes32]bool{false, false, false, true, true, true, false, false}},
		{CmpORD_Q, [Lanes32]bool{true, true, true, false, false, false, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.pred.String(), func(t *testing.T) {
			m := a.Compare(b, tt.pred)
			for i := range Lanes32 {
				if got := m.GetBit(i); got != tt.want[i] {
					t.Errorf("%v: lane %d: got %v, want %v", tt.pred, i, got, tt.want[i])
				}
				if bits := m.AsInt32x8().Lane(i); bits != 0 && bits != -1 {
					t.Errorf("%v: lane %d: mask bits %#x are not all-ones or all-zeros", tt.pred, i, bits)
				}
			}
		})
	}
}

func TestPredicateUnordered(t *testing.T) {
	// An unordered predicate is exactly one that is true for a NaN operand.
	nan := BroadcastFloat32x8(float32(math.NaN()))
	one := BroadcastFloat32x8(1)
	for p := CmpEQ_OQ; p <= CmpORD_Q; p++ {
		if got := nan.Compare(one, p).AllTrue(); got != p.Unordered() {
			t.Errorf("%v: NaN compare gives %v, Unordered() = %v", p, got, p.Unordered())
		}
	}
}

func TestCompareShortcuts(t *testing.T) {
	a := f32x8(1, 2, 3)
	b := BroadcastFloat32x8(2)
	if got := a.Greater(b).CountTrue(); got != 1 {
		t.Errorf("Greater: got %d lanes, want 1", got)
	}
	if got := a.GreaterEqual(b).CountTrue(); got != 2 {
		t.Errorf("GreaterEqual: got %d lanes, want 2", got)
	}
	// Lanes 3..7 are zero, so five more lanes are below 2.
	if got := a.Less(b).CountTrue(); got != 6 {
		t.Errorf("Less: got %d lanes, want 6", got)
	}
	if got := a.Equal(b).CountTrue(); got != 1 {
		t.Errorf("Equal: got %d lanes, want 1", got)
	}
	if a.IsNaN().AnyTrue() {
		t.Error("IsNaN: finite vector reported NaN lanes")
	}
}

func TestCompare64(t *testing.T) {
	a := Float64x4FromArray([Lanes64]float64{-1, 0, 1, math.NaN()})
	zero := BroadcastFloat64x4(0)

	lt := a.Compare(zero, CmpLT_OQ)
	nge := a.Compare(zero, CmpNGE_UQ)
	wantLT := [Lanes64]bool{true, false, false, false}
	wantNGE := [Lanes64]bool{true, false, false, true}
	for i := range Lanes64 {
		if lt.GetBit(i) != wantLT[i] {
			t.Errorf("LT_OQ: lane %d: got %v, want %v", i, lt.GetBit(i), wantLT[i])
		}
		if nge.GetBit(i) != wantNGE[i] {
			t.Errorf("NGE_UQ: lane %d: got %v, want %v", i, nge.GetBit(i), wantNGE[i])
		}
	}
	if got := nge.CountTrue(); got != 2 {
		t.Errorf("NGE_UQ: CountTrue got %d, want 2", got)
	}
}
