package view

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-houghviz/internal/testutil"
)

func TestHalf2ViewDecodesPairs(t *testing.T) {
	theta := []uint16{0x0000, 0x3C00, 0x0001, 0x7C00, 0x8000}
	rho := []uint16{0x3800, 0x0000, 0x03FF, 0xFC00, 0x7E00}
	v := NewHalf2View(testutil.EncodeHalf2Bits(theta, rho))

	if v.Len() != len(theta) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(theta))
	}
	for i := range theta {
		gt, gr := v.At(i)
		if math.Float32bits(gt) != math.Float32bits(HalfToFloat32(theta[i])) {
			t.Fatalf("theta[%d] = %v, want %v", i, gt, HalfToFloat32(theta[i]))
		}
		if math.Float32bits(gr) != math.Float32bits(HalfToFloat32(rho[i])) {
			t.Fatalf("rho[%d] = %v, want %v", i, gr, HalfToFloat32(rho[i]))
		}
		rt, rr := v.RawAt(i)
		if rt != theta[i] || rr != rho[i] {
			t.Fatalf("RawAt(%d) = (%#04x, %#04x), want (%#04x, %#04x)", i, rt, rr, theta[i], rho[i])
		}
	}
}

func TestHalf2ViewNormalizedGrid(t *testing.T) {
	theta, rho := testutil.DeterministicHough(11, 64, 128, 500)
	v := NewHalf2View(testutil.EncodeHalf2s(theta, rho))
	got := make([]float32, 0, 2*v.Len())
	want := make([]float32, 0, 2*v.Len())
	for i := range v.Len() {
		gt, gr := v.At(i)
		got = append(got, gt, gr)
		want = append(want, theta[i], rho[i])
	}
	testutil.RequireBitsEqual(t, got, want)
}

func TestHalf2ViewLenTruncates(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 7, 8, 11, 12} {
		v := NewHalf2View(make([]byte, n))
		if v.Len() != n/4 {
			t.Errorf("bytes=%d: Len() = %d, want %d", n, v.Len(), n/4)
		}
		if v.Remainder() != n%4 {
			t.Errorf("bytes=%d: Remainder() = %d, want %d", n, v.Remainder(), n%4)
		}
	}
}

// A trailing lone half (2 bytes) never forms a pair.
func TestHalf2ViewIgnoresHalfPair(t *testing.T) {
	b := append(testutil.EncodeHalf2Bits([]uint16{0x3C00}, []uint16{0x4000}), 0x00, 0x3C)
	v := NewHalf2View(b)
	if v.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", v.Len())
	}
	if th, r := v.At(0); th != 1 || r != 2 {
		t.Fatalf("At(0) = (%v, %v), want (1, 2)", th, r)
	}
	assertPanics(t, func() { v.At(1) })
}

func TestHalf2ViewBoundsPanic(t *testing.T) {
	v := NewHalf2View(testutil.ZeroHalf2s(2))
	for _, i := range []int{-1, 2} {
		assertPanics(t, func() { v.At(i) })
		assertPanics(t, func() { v.RawAt(i) })
	}
}

func BenchmarkHalf2ViewAt(b *testing.B) {
	theta, rho := testutil.DeterministicHough(1, 64, 128, 4096)
	v := NewHalf2View(testutil.EncodeHalf2s(theta, rho))
	b.SetBytes(int64(len(v.Bytes())))
	b.ResetTimer()
	var sink float32
	for i := 0; i < b.N; i++ {
		for j := range v.Len() {
			th, r := v.At(j)
			sink += th + r
		}
	}
	_ = sink
}
