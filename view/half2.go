package view

import "encoding/binary"

const (
	halfStride  = 2
	half2Stride = 2 * halfStride
)

// Half2View reads a byte buffer as a sequence of packed little-endian
// binary16 pairs. Each 4-byte element holds a normalized Hough-space angle
// followed by a normalized distance. The view does not rescale either value.
type Half2View struct {
	data []byte
}

// NewHalf2View wraps b without copying.
func NewHalf2View(b []byte) Half2View {
	return Half2View{data: b}
}

// Len returns the number of complete pairs in the buffer.
func (v Half2View) Len() int {
	return len(v.data) / half2Stride
}

// Remainder returns the number of trailing bytes that do not form a
// complete pair (0-3).
func (v Half2View) Remainder() int {
	return len(v.data) % half2Stride
}

// Bytes returns the borrowed buffer.
func (v Half2View) Bytes() []byte {
	return v.data
}

// RawAt returns the undecoded binary16 bit patterns of pair i.
// Panics if i is outside [0, Len()).
func (v Half2View) RawAt(i int) (theta, rho uint16) {
	checkIndex(i, v.Len())
	off := i * half2Stride
	theta = binary.LittleEndian.Uint16(v.data[off : off+halfStride])
	rho = binary.LittleEndian.Uint16(v.data[off+halfStride : off+half2Stride])
	return theta, rho
}

// At decodes pair i to (theta, rho). Panics if i is outside [0, Len()).
func (v Half2View) At(i int) (theta, rho float32) {
	t, r := v.RawAt(i)
	return HalfToFloat32(t), HalfToFloat32(r)
}
