package luma

import (
	"encoding/binary"
	"math"
	"sync"
)

// Buffer wraps a float32 luma slice with reuse-friendly semantics.
type Buffer struct {
	samples []float32
}

// NewBuffer returns a zero-filled Buffer of the given length.
func NewBuffer(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float32, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float32 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing capacity when possible.
// Newly exposed elements are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float32, n)
		copy(s, b.samples)
		b.samples = s
	}
	if n > oldLen {
		clear(b.samples[oldLen:n])
	}
}

// AppendBytes appends the samples to dst in the output wire format.
func (b *Buffer) AppendBytes(dst []byte) []byte {
	return EncodeFloat32s(dst, b.samples)
}

// Pool reuses Buffers across frames to reduce GC pressure.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer of the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	clear(b.samples)
	return b
}

// Put returns a Buffer to the pool. The caller must not use it afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// EncodeFloat32s appends src to dst as little-endian binary32, 4 bytes per
// sample, and returns the extended slice.
func EncodeFloat32s(dst []byte, src []float32) []byte {
	for _, v := range src {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}
