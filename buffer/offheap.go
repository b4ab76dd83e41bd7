//go:build cgo

package buffer

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// OffheapBuffer is a Buffer allocated with C.aligned_alloc, outside the Go
// heap, reducing GC pressure for large batches.
type OffheapBuffer struct {
	ptr unsafe.Pointer
	n   int
}

// NewOffheap allocates an aligned off-heap buffer of n floats, zeroed.
// Returns nil if n <= 0 or allocation fails.
func NewOffheap(n int) Buffer {
	if n <= 0 {
		return nil
	}
	bytes := n * 4
	// aligned_alloc requires the size to be a multiple of the alignment.
	if rem := bytes % Alignment; rem != 0 {
		bytes += Alignment - rem
	}
	ptr := C.aligned_alloc(C.size_t(Alignment), C.size_t(bytes))
	if ptr == nil {
		return nil
	}
	b := &OffheapBuffer{ptr: unsafe.Pointer(ptr), n: n}
	d := b.Data()
	for i := range d {
		d[i] = 0
	}
	return b
}

// Data returns a slice view of the off-heap memory.
func (b *OffheapBuffer) Data() []float32 {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*float32)(b.ptr), b.n)
}

// Len returns the number of float32 elements.
func (b *OffheapBuffer) Len() int {
	return b.n
}

// Close frees the C-allocated memory.
func (b *OffheapBuffer) Close() error {
	if b.ptr != nil {
		C.free(b.ptr)
		b.ptr = nil
	}
	return nil
}
