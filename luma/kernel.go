package luma

import "math"

// Hough accumulator grid the normalized (theta, rho) coordinates refer to.
const (
	ThetaBins = 64
	RhoBins   = 128
)

// Kernel combines one gradient magnitude and its normalized Hough-space
// coordinates into one luma value. Kernels must be pure: the renderer may
// call them concurrently for disjoint sample ranges.
type Kernel func(magnitude, theta, rho float32) float32

// Magnitude is the baseline kernel. It emits the gradient magnitude and
// ignores the Hough coordinates.
func Magnitude(magnitude, _, _ float32) float32 {
	return magnitude
}

// Theta emits the normalized angle, for inspecting the Hough buffer.
func Theta(_, theta, _ float32) float32 {
	return theta
}

// Rho emits the normalized distance, for inspecting the Hough buffer.
func Rho(_, _, rho float32) float32 {
	return rho
}

// Sample is the decoded input at one index.
type Sample struct {
	Magnitude float32
	Theta     float32
	Rho       float32
}

// Bins maps the normalized coordinates onto the ThetaBins x RhoBins grid.
// Values outside [0, 1) are clamped to the edge bins and NaN maps to bin 0.
func (s Sample) Bins() (theta, rho int) {
	return bin(s.Theta, ThetaBins), bin(s.Rho, RhoBins)
}

func bin(v float32, bins int) int {
	if math.IsNaN(float64(v)) || v <= 0 {
		return 0
	}
	b := float64(v) * float64(bins)
	if b >= float64(bins-1) {
		return bins - 1
	}
	return int(b)
}
