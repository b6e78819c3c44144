package testutil

import (
	"math"
	"testing"
)

// RequireBitsEqual fails t unless got and want hold identical binary32 bit
// patterns. NaNs compare equal only when their payloads match.
func RequireBitsEqual(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		g, w := math.Float32bits(got[i]), math.Float32bits(want[i])
		if g != w {
			t.Fatalf("index %d: got bits %#08x, want %#08x", i, g, w)
		}
	}
}
