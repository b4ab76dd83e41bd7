//go:build arm64 && cgo

package simd

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasASIMD {
		dotBatchSoAImpl = dotBatchSoANEON
		dotBatchSoAImplDesc = "NEON"
	} else {
		dotBatchSoAImpl = dotBatchSoAGo
		dotBatchSoAImplDesc = "Go"
	}
}
