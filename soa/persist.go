package soa

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/ic-timon/soa-dot/buffer"
	"github.com/ic-timon/soa-dot/simd"
)

// SaveTo writes the coordinate set to path: 64-byte header, then the x, y,
// z, w arrays back to back, little-endian. Results are not persisted; they
// are recomputed after load.
func (c *Coords) SaveTo(path string) error {
	h := &Header{
		Lanes: uint16(simd.Lanes),
		Count: uint32(c.n),
	}
	hb, err := EncodeHeader(h)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if _, err := w.Write(hb); err != nil {
		return err
	}
	for _, arr := range [][]float32{c.x, c.y, c.z, c.w} {
		if err := binary.Write(w, binary.LittleEndian, arr); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// SaveToAtomic writes to path via a temp file and rename, so a crash never
// leaves a truncated set behind.
func (c *Coords) SaveToAtomic(path string) error {
	tmp := path + ".tmp"
	if err := c.SaveTo(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// OpenCoords maps a persisted coordinate set read-only and serves the
// kernel directly from the mapped memory. Only the result array is
// heap-allocated. The returned set rejects Set; Close unmaps the file.
func OpenCoords(path string) (*Coords, error) {
	m, err := buffer.OpenMapped(path)
	if err != nil {
		return nil, err
	}
	h, err := DecodeHeader(m.Bytes())
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if h.Lanes != uint16(simd.Lanes) {
		m.Close()
		return nil, fmt.Errorf("open %s: lane width %d unsupported", path, h.Lanes)
	}
	n := int(h.Count)
	if n <= 0 || n%simd.Lanes != 0 {
		m.Close()
		return nil, fmt.Errorf("open %s: %w", path, ErrBadCount)
	}
	arrBytes := int64(n) * 4
	c := &Coords{n: n, mapped: m, readonly: true}
	for k, dst := range []*[]float32{&c.x, &c.y, &c.z, &c.w} {
		v := m.View(HeaderSize+int64(k)*arrBytes, n)
		if v == nil {
			m.Close()
			return nil, fmt.Errorf("open %s: file truncated", path)
		}
		*dst = v
	}
	out := buffer.NewHeap(n)
	if out == nil {
		m.Close()
		return nil, ErrAlloc
	}
	c.owned = append(c.owned, out)
	c.out = out.Data()
	return c, nil
}
