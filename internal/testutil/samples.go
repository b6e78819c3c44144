package testutil

import (
	"math"
	"math/rand"
)

// DeterministicMagnitudes generates non-negative gradient magnitudes in
// [0, peak) with a fixed seed for reproducibility.
func DeterministicMagnitudes(seed int64, peak float32, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float32() * peak
	}
	return out
}

// DeterministicHough generates normalized (theta, rho) coordinates in [0, 1)
// quantized to the given bin grid, so every value is exactly representable
// as binary16.
func DeterministicHough(seed int64, thetaBins, rhoBins, length int) (theta, rho []float32) {
	theta = make([]float32, length)
	rho = make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range theta {
		theta[i] = float32(rng.Intn(thetaBins)) / float32(thetaBins)
		rho[i] = float32(rng.Intn(rhoBins)) / float32(rhoBins)
	}
	return theta, rho
}

// Ramp returns [0, 1, ..., n-1] as float32.
func Ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}

// SpecialFloat32s returns binary32 edge values: signed zeros, the smallest
// subnormal, the largest finite value and both infinities.
func SpecialFloat32s() []float32 {
	return []float32{
		0,
		float32(math.Copysign(0, -1)),
		math.SmallestNonzeroFloat32,
		-math.SmallestNonzeroFloat32,
		math.MaxFloat32,
		-math.MaxFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		1, -1, 0.5, 3.1415927,
	}
}
