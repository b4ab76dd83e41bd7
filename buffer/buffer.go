// Package buffer provides float32 buffers whose backing memory is aligned
// for 128-bit vector loads and stores. Alignment is guaranteed at
// construction; Close releases the memory and is safe to call twice.
package buffer

import "unsafe"

// Alignment is the byte alignment required by the vector kernels.
const Alignment = 16

// Buffer is an owned, aligned float32 buffer.
type Buffer interface {
	// Data returns the aligned slice. Valid until Close.
	Data() []float32
	// Len returns the number of float32 elements.
	Len() int
	// Close releases the backing memory.
	Close() error
}

// HeapBuffer is a Go-allocated Buffer. Alignment is obtained by allocating
// slack and re-slicing to the first 16-byte boundary, so the memory stays
// under GC ownership.
type HeapBuffer struct {
	raw  []float32
	data []float32
}

// NewHeap allocates an aligned heap buffer of n floats. Returns nil if n <= 0.
func NewHeap(n int) *HeapBuffer {
	if n <= 0 {
		return nil
	}
	raw := make([]float32, n+Alignment/4-1)
	off := 0
	if rem := uintptr(unsafe.Pointer(&raw[0])) % Alignment; rem != 0 {
		off = int((Alignment - rem) / 4)
	}
	return &HeapBuffer{raw: raw, data: raw[off : off+n : off+n]}
}

// Data returns the aligned slice.
func (b *HeapBuffer) Data() []float32 {
	return b.data
}

// Len returns the number of float32 elements.
func (b *HeapBuffer) Len() int {
	return len(b.data)
}

// Close drops the references so the memory can be collected.
func (b *HeapBuffer) Close() error {
	b.data = nil
	b.raw = nil
	return nil
}

// Aligned reports whether p is aligned to Alignment. Exposed for tests and
// precondition checks in wrapper layers.
func Aligned(p *float32) bool {
	return uintptr(unsafe.Pointer(p))%Alignment == 0
}
