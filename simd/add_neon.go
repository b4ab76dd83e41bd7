//go:build arm64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <arm_neon.h>
#include <stddef.h>

void AddBlocksNEON(float* dst, const float* a, const float* b, size_t n) {
	for (size_t i = 0; i < n; i += 4) {
		vst1q_f32(dst + i, vaddq_f32(vld1q_f32(a + i), vld1q_f32(b + i)));
	}
}
*/
import "C"

import "unsafe"

func addBlocksNEON(dst, a, b []float32) {
	C.AddBlocksNEON(
		(*C.float)(unsafe.Pointer(&dst[0])),
		(*C.float)(unsafe.Pointer(&a[0])),
		(*C.float)(unsafe.Pointer(&b[0])),
		C.size_t(len(a)),
	)
}
