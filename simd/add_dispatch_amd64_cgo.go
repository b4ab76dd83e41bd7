//go:build amd64 && cgo

package simd

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasSSE2 {
		addBlocksImpl = addBlocksSSE
	} else {
		addBlocksImpl = addBlocksGo
	}
}
