//go:build amd64 && cgo

package simd

import "golang.org/x/sys/cpu"

func init() {
	// One fixed 128-bit width; selection is SSE kernel vs pure Go only.
	if cpu.X86.HasSSE2 {
		dotBatchSoAImpl = dotBatchSoASSE
		dotBatchSoAImplDesc = "SSE"
	} else {
		dotBatchSoAImpl = dotBatchSoAGo
		dotBatchSoAImplDesc = "Go"
	}
}
