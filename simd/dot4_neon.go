//go:build arm64 && cgo

package simd

/*
#cgo CFLAGS: -O3
#include <arm_neon.h>
#include <stddef.h>

void DotBatchSoANEON(const float* x, const float* y, const float* z, const float* w, float* out, size_t n) {
	float32x4_t rx = vld1q_dup_f32(x);
	float32x4_t ry = vld1q_dup_f32(y);
	float32x4_t rz = vld1q_dup_f32(z);
	float32x4_t rw = vld1q_dup_f32(w);
	for (size_t i = 0; i < n; i += 4) {
		float32x4_t dx = vmulq_f32(rx, vld1q_f32(x + i));
		float32x4_t dy = vmulq_f32(ry, vld1q_f32(y + i));
		float32x4_t dz = vmulq_f32(rz, vld1q_f32(z + i));
		float32x4_t dw = vmulq_f32(rw, vld1q_f32(w + i));
		dx = vaddq_f32(dx, dy);
		dz = vaddq_f32(dz, dw);
		vst1q_f32(out + i, vaddq_f32(dx, dz));
	}
}
*/
import "C"

import "unsafe"

func dotBatchSoANEON(x, y, z, w, out []float32) {
	C.DotBatchSoANEON(
		(*C.float)(unsafe.Pointer(&x[0])),
		(*C.float)(unsafe.Pointer(&y[0])),
		(*C.float)(unsafe.Pointer(&z[0])),
		(*C.float)(unsafe.Pointer(&w[0])),
		(*C.float)(unsafe.Pointer(&out[0])),
		C.size_t(len(x)),
	)
}
