package view

import (
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-houghviz/internal/testutil"
)

func TestFloatViewRoundTrip(t *testing.T) {
	want := append(testutil.SpecialFloat32s(), testutil.DeterministicMagnitudes(3, 1000, 64)...)
	v := NewFloatView(testutil.EncodeFloat32s(want))

	if v.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
	}
	got := make([]float32, v.Len())
	for i := range got {
		got[i] = v.At(i)
	}
	testutil.RequireBitsEqual(t, got, want)
}

func TestFloatViewNaNPayloadPreserved(t *testing.T) {
	bits := []uint32{0x7FC00000, 0x7F800001, 0xFFC00123, 0x7FBFFFFF}
	v := NewFloatView(testutil.EncodeFloat32Bits(bits))
	for i, want := range bits {
		got := math.Float32bits(v.At(i))
		if got != want {
			t.Fatalf("At(%d) bits = %#08x, want %#08x", i, got, want)
		}
	}
}

func TestFloatViewLenTruncates(t *testing.T) {
	tests := []struct {
		bytes, wantLen, wantRem int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{4, 1, 0},
		{11, 2, 3},
		{12, 3, 0},
		{13, 3, 1},
	}
	for _, tt := range tests {
		v := NewFloatView(make([]byte, tt.bytes))
		if v.Len() != tt.wantLen {
			t.Errorf("bytes=%d: Len() = %d, want %d", tt.bytes, v.Len(), tt.wantLen)
		}
		if v.Remainder() != tt.wantRem {
			t.Errorf("bytes=%d: Remainder() = %d, want %d", tt.bytes, v.Remainder(), tt.wantRem)
		}
	}
}

// An 11-byte buffer exposes two elements and never touches the trailing three.
func TestFloatViewIgnoresTrailingBytes(t *testing.T) {
	b := append(testutil.EncodeFloat32s([]float32{1.5, -4}), 0xFF, 0xFF, 0xFF)
	v := NewFloatView(b)
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	if v.At(0) != 1.5 || v.At(1) != -4 {
		t.Fatalf("got [%v %v], want [1.5 -4]", v.At(0), v.At(1))
	}
	assertPanics(t, func() { v.At(2) })
}

func TestFloatViewBoundsPanic(t *testing.T) {
	v := NewFloatView(testutil.EncodeFloat32s([]float32{1, 2}))
	for _, i := range []int{-1, 2, 100} {
		msg := assertPanics(t, func() { v.At(i) })
		if !strings.HasPrefix(msg, "view: index") {
			t.Fatalf("panic message %q lacks view prefix", msg)
		}
	}
}

func TestFloatViewZeroCopy(t *testing.T) {
	b := testutil.EncodeFloat32s([]float32{1})
	v := NewFloatView(b)
	copy(b, testutil.EncodeFloat32s([]float32{7}))
	if v.At(0) != 7 {
		t.Fatalf("At(0) = %v, want 7 after mutating the borrowed buffer", v.At(0))
	}
	if &v.Bytes()[0] != &b[0] {
		t.Fatal("Bytes() should return the borrowed slice")
	}
}

func TestFloatViewDecodeInto(t *testing.T) {
	src := testutil.Ramp(5)
	v := NewFloatView(testutil.EncodeFloat32s(src))

	dst := make([]float32, 3)
	if n := v.DecodeInto(dst); n != 3 {
		t.Fatalf("DecodeInto short dst = %d, want 3", n)
	}
	testutil.RequireBitsEqual(t, dst, src[:3])

	dst = make([]float32, 8)
	if n := v.DecodeInto(dst); n != 5 {
		t.Fatalf("DecodeInto long dst = %d, want 5", n)
	}
	testutil.RequireBitsEqual(t, dst[:5], src)
}

func assertPanics(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if err, ok := r.(error); ok {
			msg = err.Error()
		}
	}()
	fn()
	return ""
}
