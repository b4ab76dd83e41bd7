package simd

// Vec4 is a 4-lane float32 vector value. It is the portable backing for the
// 128-bit kernels: the cgo implementations replace these operations with
// native vector instructions, and the pure-Go kernel is written against Vec4
// so both produce the same lane-for-lane arithmetic.
type Vec4 struct {
	lanes [4]float32
}

// Load4 loads 4 consecutive floats from src into a Vec4.
// PRECONDITION: len(src) >= 4.
func Load4(src []float32) Vec4 {
	return Vec4{lanes: [4]float32{src[0], src[1], src[2], src[3]}}
}

// Splat4 broadcasts a single value into all 4 lanes.
func Splat4(v float32) Vec4 {
	return Vec4{lanes: [4]float32{v, v, v, v}}
}

// Mul4 multiplies lane-wise.
func Mul4(a, b Vec4) Vec4 {
	return Vec4{lanes: [4]float32{
		a.lanes[0] * b.lanes[0],
		a.lanes[1] * b.lanes[1],
		a.lanes[2] * b.lanes[2],
		a.lanes[3] * b.lanes[3],
	}}
}

// Add4 adds lane-wise.
func Add4(a, b Vec4) Vec4 {
	return Vec4{lanes: [4]float32{
		a.lanes[0] + b.lanes[0],
		a.lanes[1] + b.lanes[1],
		a.lanes[2] + b.lanes[2],
		a.lanes[3] + b.lanes[3],
	}}
}

// Store4 writes the 4 lanes to dst.
// PRECONDITION: len(dst) >= 4.
func Store4(v Vec4, dst []float32) {
	dst[0] = v.lanes[0]
	dst[1] = v.lanes[1]
	dst[2] = v.lanes[2]
	dst[3] = v.lanes[3]
}

// Lane returns the value of lane i.
func (v Vec4) Lane(i int) float32 {
	return v.lanes[i]
}
