package view

import (
	"encoding/binary"
	"math"
)

// floatStride is the size in bytes of one binary32 element.
const floatStride = 4

// FloatView reads a byte buffer as a sequence of little-endian binary32 values.
type FloatView struct {
	data []byte
}

// NewFloatView wraps b without copying.
func NewFloatView(b []byte) FloatView {
	return FloatView{data: b}
}

// Len returns the number of complete elements in the buffer.
func (v FloatView) Len() int {
	return len(v.data) / floatStride
}

// Remainder returns the number of trailing bytes that do not form a
// complete element (0-3).
func (v FloatView) Remainder() int {
	return len(v.data) % floatStride
}

// Bytes returns the borrowed buffer.
func (v FloatView) Bytes() []byte {
	return v.data
}

// At decodes element i. Panics if i is outside [0, Len()).
func (v FloatView) At(i int) float32 {
	checkIndex(i, v.Len())
	off := i * floatStride
	return math.Float32frombits(binary.LittleEndian.Uint32(v.data[off : off+floatStride]))
}

// DecodeInto decodes min(len(dst), Len()) leading elements into dst and
// returns the number written.
func (v FloatView) DecodeInto(dst []float32) int {
	n := min(len(dst), v.Len())
	for i := range n {
		off := i * floatStride
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(v.data[off:]))
	}
	return n
}

// checkIndex panics when i is not a valid element index for a view of length n.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(indexError{index: i, length: n})
	}
}
