// Package soa stores batches of 4-component vectors in structure-of-arrays
// layout and runs the batched dot-product kernel over them. It is the
// validating wrapper around package simd: construction rejects counts the
// kernel's preconditions exclude, and buffers are owned here so callers
// never manage aligned memory by hand.
//
// Quick start:
//
//	cfg := soa.DefaultConfig()
//	cfg.Count = 256
//	c, err := soa.NewCoords(cfg)
//	c.Set(0, 1, 1, 1, 1) // reference vector
//	c.Dot()
//	results := c.Results()
package soa

import (
	"errors"

	"github.com/ic-timon/soa-dot/buffer"
	"github.com/ic-timon/soa-dot/simd"
)

var (
	// ErrBadCount is returned when the vector count is not a positive multiple of 4.
	ErrBadCount = errors.New("soa: count must be a positive multiple of 4")
	// ErrAlloc is returned when an aligned buffer cannot be allocated.
	ErrAlloc = errors.New("soa: buffer allocation failed")
)

// Coords owns five equal-length aligned buffers: the x, y, z, w component
// arrays and the result array. The reference vector is element 0 of the
// component arrays. Sets opened from a persisted file are read-only.
type Coords struct {
	n          int
	x, y, z, w []float32
	out        []float32
	owned      []buffer.Buffer
	mapped     *buffer.MappedFile
	readonly   bool
}

// NewCoords allocates a zeroed coordinate set per cfg.
func NewCoords(cfg *Config) (*Coords, error) {
	cfg = cfg.OrDefault()
	if cfg.Count <= 0 || cfg.Count%simd.Lanes != 0 {
		return nil, ErrBadCount
	}
	alloc := func(n int) buffer.Buffer {
		if cfg.Offheap {
			return buffer.NewOffheap(n)
		}
		b := buffer.NewHeap(n)
		if b == nil {
			return nil
		}
		return b
	}
	c := &Coords{n: cfg.Count}
	for _, dst := range []*[]float32{&c.x, &c.y, &c.z, &c.w, &c.out} {
		b := alloc(cfg.Count)
		if b == nil {
			c.Close()
			return nil, ErrAlloc
		}
		c.owned = append(c.owned, b)
		*dst = b.Data()
	}
	return c, nil
}

// Len returns the number of vectors in the set.
func (c *Coords) Len() int {
	return c.n
}

// Set writes vector i. Returns false if i is out of range or the set is read-only.
func (c *Coords) Set(i int, x, y, z, w float32) bool {
	if i < 0 || i >= c.n || c.readonly {
		return false
	}
	c.x[i] = x
	c.y[i] = y
	c.z[i] = z
	c.w[i] = w
	return true
}

// At reads vector i. Returns false if i is out of range.
func (c *Coords) At(i int) (x, y, z, w float32, ok bool) {
	if i < 0 || i >= c.n {
		return 0, 0, 0, 0, false
	}
	return c.x[i], c.y[i], c.z[i], c.w[i], true
}

// Reference returns the reference vector (element 0 of each component array).
func (c *Coords) Reference() (x, y, z, w float32) {
	return c.x[0], c.y[0], c.z[0], c.w[0]
}

// Dot computes the dot product of the reference vector against every vector
// in the set, into the result array. Inputs are never mutated.
func (c *Coords) Dot() bool {
	return simd.DotBatchSoA(c.x, c.y, c.z, c.w, c.out)
}

// Results returns the result array. Valid until Close; overwritten by Dot.
func (c *Coords) Results() []float32 {
	return c.out
}

// ReadOnly reports whether the component arrays are write-protected
// (true for sets opened from a persisted file).
func (c *Coords) ReadOnly() bool {
	return c.readonly
}

// Close releases all owned buffers and any mapped file.
func (c *Coords) Close() error {
	var first error
	for _, b := range c.owned {
		if err := b.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.owned = nil
	if c.mapped != nil {
		if err := c.mapped.Close(); err != nil && first == nil {
			first = err
		}
		c.mapped = nil
	}
	c.x, c.y, c.z, c.w, c.out = nil, nil, nil, nil, nil
	return first
}
