package hwy

import "testing"

func TestShiftWideMatchesSplit(t *testing.T) {
	in := Int32x8FromArray([Lanes32]int32{1, -1, 0x7fffffff, -0x80000000, 127, 254, 0x12345678, 3})

	for _, n := range []uint{0, 1, 23, 31, 32} {
		wideL := in.ShiftAllLeft(n)
		splitL := in.ShiftLeftSplit(n)
		if wideL != splitL {
			t.Errorf("shift left %d: wide %v, split %v", n, wideL.Array(), splitL.Array())
		}
		wideR := in.ShiftAllRightLogical(n)
		splitR := in.ShiftRightLogicalSplit(n)
		if wideR != splitR {
			t.Errorf("shift right %d: wide %v, split %v", n, wideR.Array(), splitR.Array())
		}
	}
}

func TestShiftValues(t *testing.T) {
	in := Int32x8FromArray([Lanes32]int32{1, 127, -1, 0x3f800000})

	if got := in.ShiftAllLeft(31).Lane(0); got != -0x80000000 {
		t.Errorf("1<<31: got %#x, want sign bit", got)
	}
	if got := in.ShiftAllLeft(23).Lane(1); got != 0x3f800000 {
		t.Errorf("127<<23: got %#x, want 0x3f800000", got)
	}
	if got := in.ShiftAllRightLogical(1).Lane(2); got != 0x7fffffff {
		t.Errorf("-1>>>1: got %#x, want 0x7fffffff", got)
	}
	if got := in.ShiftAllRightLogical(23).Lane(3); got != 127 {
		t.Errorf("bits(1.0)>>23: got %d, want 127", got)
	}
	if got := in.ShiftAllLeft(32).Lane(0); got != 0 {
		t.Errorf("shift by 32: got %d, want 0", got)
	}
}

func TestHalves(t *testing.T) {
	in := Int32x8FromArray([Lanes32]int32{0, 1, 2, 3, 4, 5, 6, 7})
	lo, hi := in.GetLo(), in.GetHi()
	for i := range 4 {
		if lo.Lane(i) != int32(i) || hi.Lane(i) != int32(i+4) {
			t.Errorf("lane %d: lo %d hi %d", i, lo.Lane(i), hi.Lane(i))
		}
	}
	if got := CombineInt32x4(lo, hi); got != in {
		t.Errorf("CombineInt32x4: got %v, want %v", got.Array(), in.Array())
	}
}

func TestIntArithmetic(t *testing.T) {
	a := BroadcastInt32x8(0x7fffffff)
	one := BroadcastInt32x8(1)
	if got := a.Add(one).Lane(0); got != -0x80000000 {
		t.Errorf("Add wraps: got %d", got)
	}
	if got := a.Sub(one).Lane(0); got != 0x7ffffffe {
		t.Errorf("Sub: got %d", got)
	}
	if got := a.And(one).Or(BroadcastInt32x8(4)).Lane(0); got != 5 {
		t.Errorf("And/Or: got %d, want 5", got)
	}
}

func TestFeaturesShiftDispatch(t *testing.T) {
	in := Int32x8FromArray([Lanes32]int32{1, 2, 3, 4, 5, 6, 7, 8})
	for _, f := range []Features{ScalarFeatures, FullFeatures} {
		if got, want := f.ShiftLeft(in, 23), in.ShiftAllLeft(23); got != want {
			t.Errorf("%v ShiftLeft: got %v, want %v", f, got.Array(), want.Array())
		}
		if got, want := f.ShiftRightLogical(in, 1), in.ShiftAllRightLogical(1); got != want {
			t.Errorf("%v ShiftRightLogical: got %v, want %v", f, got.Array(), want.Array())
		}
	}
}
