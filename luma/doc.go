// Package luma turns a gradient-magnitude buffer and a Hough-space
// (theta, rho) buffer into a single-channel intensity buffer.
//
// Both inputs are raw little-endian byte buffers read through the zero-copy
// views in package view. Each output sample depends only on the input
// samples at the same index, combined by a Kernel. The baseline kernel,
// Magnitude, passes the gradient magnitude through unchanged; other kernels
// can be supplied with WithKernel or looked up by name in Kernels.
//
// Inputs whose sample counts differ are rejected with ErrLengthMismatch
// before any output is produced.
package luma
