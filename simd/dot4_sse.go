//go:build amd64 && cgo

package simd

/*
#cgo CFLAGS: -msse -O3
#include <xmmintrin.h>
#include <stddef.h>

void DotBatchSoASSE(const float* x, const float* y, const float* z, const float* w, float* out, size_t n) {
	__m128 rx = _mm_load1_ps(x);
	__m128 ry = _mm_load1_ps(y);
	__m128 rz = _mm_load1_ps(z);
	__m128 rw = _mm_load1_ps(w);
	for (size_t i = 0; i < n; i += 4) {
		__m128 dx = _mm_mul_ps(rx, _mm_load_ps(x + i));
		__m128 dy = _mm_mul_ps(ry, _mm_load_ps(y + i));
		__m128 dz = _mm_mul_ps(rz, _mm_load_ps(z + i));
		__m128 dw = _mm_mul_ps(rw, _mm_load_ps(w + i));
		dx = _mm_add_ps(dx, dy);
		dz = _mm_add_ps(dz, dw);
		_mm_store_ps(out + i, _mm_add_ps(dx, dz));
	}
}
*/
import "C"

import "unsafe"

func dotBatchSoASSE(x, y, z, w, out []float32) {
	C.DotBatchSoASSE(
		(*C.float)(unsafe.Pointer(&x[0])),
		(*C.float)(unsafe.Pointer(&y[0])),
		(*C.float)(unsafe.Pointer(&z[0])),
		(*C.float)(unsafe.Pointer(&w[0])),
		(*C.float)(unsafe.Pointer(&out[0])),
		C.size_t(len(x)),
	)
}
