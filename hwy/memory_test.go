package hwy

import (
	"math"
	"testing"
)

func TestLoadStore(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
		v := LoadFloat32x8Slice(src)
		dst := make([]float32, Lanes32)
		v.StoreSlice(dst)
		for i, got := range dst {
			if got != src[i] {
				t.Errorf("lane %d: got %v, want %v", i, got, src[i])
			}
		}
	})

	t.Run("partial", func(t *testing.T) {
		src := []float32{1, 2, 3}
		v := LoadFloat32x8Partial(src, 1)
		want := [Lanes32]float32{1, 2, 3, 1, 1, 1, 1, 1}
		if v.Array() != want {
			t.Errorf("LoadFloat32x8Partial: got %v, want %v", v.Array(), want)
		}
		dst := []float32{10, 20, 30, 40}
		if n := v.StorePartial(dst[:2]); n != 2 {
			t.Errorf("StorePartial: wrote %d lanes, want 2", n)
		}
		if dst[0] != 1 || dst[1] != 2 || dst[2] != 30 {
			t.Errorf("StorePartial: dst = %v", dst)
		}
	})

	t.Run("short slice panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("LoadFloat32x8Slice with 3 elements did not panic")
			}
		}()
		LoadFloat32x8Slice([]float32{1, 2, 3})
	})

	t.Run("float64", func(t *testing.T) {
		src := []float64{1, 2, 3, 4}
		v := LoadFloat64x4Slice(src)
		dst := make([]float64, Lanes64)
		v.StoreSlice(dst)
		for i := range src {
			if dst[i] != src[i] {
				t.Errorf("lane %d: got %v, want %v", i, dst[i], src[i])
			}
		}
		p := LoadFloat64x4Partial(src[:1], 9)
		if p.Array() != [Lanes64]float64{1, 9, 9, 9} {
			t.Errorf("LoadFloat64x4Partial: got %v", p.Array())
		}
		out := make([]float64, 3)
		if n := p.StorePartial(out); n != 3 || out[2] != 9 {
			t.Errorf("StorePartial: n=%d out=%v", n, out)
		}
	})
}

func TestNaNPayloadSurvivesCopies(t *testing.T) {
	const payload = 0x7fa00001 // signaling NaN
	v := Float32x8FromBits(payload)
	dst := make([]float32, Lanes32)
	v.StoreSlice(dst)
	back := LoadFloat32x8Slice(dst)
	for i, b := range back.Bits() {
		if b != payload {
			t.Errorf("lane %d: got %#x, want %#x", i, b, payload)
		}
	}
	if got := math.Float32bits(dst[0]); got != payload {
		t.Errorf("stored slice: got %#x, want %#x", got, payload)
	}
}

func TestBroadcast(t *testing.T) {
	v := BroadcastFloat32x8(42)
	for i := range Lanes32 {
		if v.Lane(i) != 42 {
			t.Errorf("lane %d: got %v, want 42", i, v.Lane(i))
		}
	}
	if got := BroadcastInt32x8(-3).Array(); got != [Lanes32]int32{-3, -3, -3, -3, -3, -3, -3, -3} {
		t.Errorf("BroadcastInt32x8: got %v", got)
	}
	if got := BroadcastFloat64x4(0.25).Lane(3); got != 0.25 {
		t.Errorf("BroadcastFloat64x4: got %v", got)
	}
	var zero Float32x8
	if zero.Bits() != ([Lanes32]uint32{}) {
		t.Error("zero value is not +0 in every lane")
	}
}
