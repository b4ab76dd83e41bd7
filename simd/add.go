package simd

var addBlocksImpl func(dst, a, b []float32)

func init() {
	if addBlocksImpl == nil {
		addBlocksImpl = addBlocksGo
	}
}

// AddBlocks computes dst[i] = a[i] + b[i], 4 lanes at a time.
// All three slices must have the same length, a positive multiple of Lanes;
// otherwise nothing is computed and false is returned. dst may alias a or b.
func AddBlocks(dst, a, b []float32) bool {
	n := len(a)
	if n == 0 || n%Lanes != 0 || len(b) != n || len(dst) != n {
		return false
	}
	addBlocksImpl(dst, a, b)
	return true
}

func addBlocksGo(dst, a, b []float32) {
	for i := 0; i+Lanes <= len(a); i += Lanes {
		Store4(Add4(Load4(a[i:]), Load4(b[i:])), dst[i:])
	}
}
