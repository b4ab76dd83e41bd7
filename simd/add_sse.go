//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -msse -O3
#include <xmmintrin.h>
#include <stddef.h>

void AddBlocksSSE(float* dst, const float* a, const float* b, size_t n) {
	for (size_t i = 0; i < n; i += 4) {
		_mm_store_ps(dst + i, _mm_add_ps(_mm_load_ps(a + i), _mm_load_ps(b + i)));
	}
}
*/
import "C"

import "unsafe"

func addBlocksSSE(dst, a, b []float32) {
	C.AddBlocksSSE(
		(*C.float)(unsafe.Pointer(&dst[0])),
		(*C.float)(unsafe.Pointer(&a[0])),
		(*C.float)(unsafe.Pointer(&b[0])),
		C.size_t(len(a)),
	)
}
