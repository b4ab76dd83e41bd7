package simd

import "testing"

func TestAddBlocks_WarmupFixture(t *testing.T) {
	// foo[i] = i, bar[i] = i*0.1 → dst[i] = i*1.1.
	const n = 8
	foo := alignedFloats(n)
	bar := alignedFloats(n)
	dst := alignedFloats(n)
	for i := 0; i < n; i++ {
		foo[i] = float32(i)
		bar[i] = float32(i) * 0.1
	}
	if !AddBlocks(dst, foo, bar) {
		t.Fatal("AddBlocks returned false")
	}
	if dst[0] != 0 {
		t.Errorf("dst[0]: got %g want 0", dst[0])
	}
	for i := 1; i < n; i++ {
		want := foo[i] + bar[i]
		if dst[i] != want {
			t.Errorf("dst[%d]: got %g want %g", i, dst[i], want)
		}
		diff := float64(dst[i] - float32(i)*1.1)
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-6 {
			t.Errorf("dst[%d]: got %g want %g", i, dst[i], float32(i)*1.1)
		}
	}
}

func TestAddBlocks_InPlace(t *testing.T) {
	a := alignedFloats(4)
	b := alignedFloats(4)
	for i := range a {
		a[i] = float32(i + 1)
		b[i] = 10
	}
	if !AddBlocks(a, a, b) {
		t.Fatal("AddBlocks returned false")
	}
	for i := range a {
		if a[i] != float32(i+11) {
			t.Errorf("a[%d]: got %g want %d", i, a[i], i+11)
		}
	}
}

func TestAddBlocks_Guards(t *testing.T) {
	a := alignedFloats(8)
	b := alignedFloats(8)
	dst := alignedFloats(8)
	if AddBlocks(dst[:0], a[:0], b[:0]) {
		t.Error("empty: expected false")
	}
	if AddBlocks(dst[:6], a[:6], b[:6]) {
		t.Error("n%4 != 0: expected false")
	}
	if AddBlocks(dst, a, b[:4]) {
		t.Error("mismatched lengths: expected false")
	}
}
