//go:build !cgo

package buffer

// NewOffheap falls back to a heap buffer when CGO is disabled.
func NewOffheap(n int) Buffer {
	if n <= 0 {
		return nil
	}
	return NewHeap(n)
}
