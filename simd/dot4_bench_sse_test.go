//go:build amd64 && cgo

package simd

import (
	"testing"

	"golang.org/x/sys/cpu"
)

func BenchmarkDotBatchSoA_SSE(b *testing.B) {
	if !cpu.X86.HasSSE2 {
		b.Skip("SSE 不可用，跳过")
	}
	x, y, z, w, out := initBenchSoA(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dotBatchSoASSE(x, y, z, w, out)
	}
}
