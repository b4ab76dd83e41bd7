// Package simd provides SSE and NEON accelerated structure-of-arrays batch
// operations on 4-component float32 vectors. Automatically selects the best
// implementation based on GOARCH and CGO availability.
package simd

// Lanes is the vector lane width. All batch operations process Lanes
// elements per instruction and require lengths to be a multiple of Lanes.
const Lanes = 4

var (
	dotBatchSoAImpl     func(x, y, z, w, out []float32)
	dotBatchSoAImplDesc string
)

func init() {
	// Default; dispatch files override in init() based on GOARCH and CGO.
	if dotBatchSoAImpl == nil {
		dotBatchSoAImpl = dotBatchSoAGo
		dotBatchSoAImplDesc = "Go"
	}
}

// DotBatchSoA computes the dot product of the reference vector
// (x[0], y[0], z[0], w[0]) against every vector i in the batch:
//
//	out[i] = x[0]*x[i] + y[0]*y[i] + z[0]*z[i] + w[0]*w[i]
//
// including i = 0 (the reference's squared magnitude). The coordinate arrays
// hold one component per array (structure-of-arrays layout), so each vector
// lane carries a different dot product's partial sum and one multiply-add
// sequence advances 4 independent dot products at once.
//
// All five slices must have the same length, a positive multiple of Lanes;
// otherwise nothing is computed and false is returned. The backing memory
// must be 16-byte aligned when a cgo kernel is active (see package buffer).
func DotBatchSoA(x, y, z, w, out []float32) bool {
	n := len(x)
	if n == 0 || n%Lanes != 0 || len(y) != n || len(z) != n || len(w) != n || len(out) != n {
		return false
	}
	dotBatchSoAImpl(x, y, z, w, out)
	return true
}

// DotBatchSoADesc returns a description of the current kernel implementation (for logging).
func DotBatchSoADesc() string {
	if dotBatchSoAImplDesc != "" {
		return dotBatchSoAImplDesc
	}
	return "Go"
}

// dotBatchSoAGo is the pure Go implementation, written against Vec4 so the
// reduction tree matches the vector kernels: (dx+dy) + (dz+dw), never a
// left-to-right fold. Results are bit-identical to the SSE and NEON kernels.
func dotBatchSoAGo(x, y, z, w, out []float32) {
	// Reference lanes are loop-invariant; broadcast once.
	rx := Splat4(x[0])
	ry := Splat4(y[0])
	rz := Splat4(z[0])
	rw := Splat4(w[0])
	for i := 0; i+Lanes <= len(x); i += Lanes {
		dx := Mul4(rx, Load4(x[i:]))
		dy := Mul4(ry, Load4(y[i:]))
		dz := Mul4(rz, Load4(z[i:]))
		dw := Mul4(rw, Load4(w[i:]))
		Store4(Add4(Add4(dx, dy), Add4(dz, dw)), out[i:])
	}
}
