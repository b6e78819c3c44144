package testutil

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// EncodeFloat32s packs values as little-endian binary32.
func EncodeFloat32s(values []float32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}

// EncodeFloat32Bits packs raw binary32 bit patterns little-endian. Use it for
// NaN payloads that must survive bit-exactly.
func EncodeFloat32Bits(bits []uint32) []byte {
	out := make([]byte, 4*len(bits))
	for i, b := range bits {
		binary.LittleEndian.PutUint32(out[4*i:], b)
	}
	return out
}

// EncodeHalf2Bits packs raw binary16 (theta, rho) bit pattern pairs
// little-endian, theta first.
func EncodeHalf2Bits(theta, rho []uint16) []byte {
	if len(theta) != len(rho) {
		panic("testutil: theta/rho length mismatch")
	}
	out := make([]byte, 4*len(theta))
	for i := range theta {
		binary.LittleEndian.PutUint16(out[4*i:], theta[i])
		binary.LittleEndian.PutUint16(out[4*i+2:], rho[i])
	}
	return out
}

// EncodeHalf2s rounds each (theta, rho) pair to binary16 and packs it
// little-endian, theta first.
func EncodeHalf2s(theta, rho []float32) []byte {
	if len(theta) != len(rho) {
		panic("testutil: theta/rho length mismatch")
	}
	tb := make([]uint16, len(theta))
	rb := make([]uint16, len(rho))
	for i := range theta {
		tb[i] = float16.Fromfloat32(theta[i]).Bits()
		rb[i] = float16.Fromfloat32(rho[i]).Bits()
	}
	return EncodeHalf2Bits(tb, rb)
}

// ZeroHalf2s returns n pairs of positive-zero binary16 values.
func ZeroHalf2s(n int) []byte {
	return make([]byte, 4*n)
}
