package buffer

import (
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// MappedFile is a read-only mmap'd file serving aligned float32 views.
// Pages are page-aligned, so any view at a 16-byte-aligned offset satisfies
// the kernel alignment requirement without copying.
type MappedFile struct {
	f    *os.File
	data mmap.MMap
}

// OpenMapped opens path and maps it read-only.
func OpenMapped(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &MappedFile{f: f, data: m}, nil
}

// Bytes returns the full mapped file.
func (s *MappedFile) Bytes() []byte {
	return s.data
}

// View returns an n-element []float32 view at the given byte offset.
// The slice is valid until Close. Caller must not modify it.
// Returns nil if the range is out of bounds or offset is not 16-byte aligned.
func (s *MappedFile) View(offset int64, n int) []float32 {
	if s.data == nil || n <= 0 {
		return nil
	}
	if offset < 0 || offset%Alignment != 0 || offset+int64(n)*4 > int64(len(s.data)) {
		return nil
	}
	ptr := unsafe.Pointer(&s.data[offset])
	return unsafe.Slice((*float32)(ptr), n)
}

// Close unmaps the file and closes it.
func (s *MappedFile) Close() error {
	if s.data != nil {
		if err := s.data.Unmap(); err != nil {
			return err
		}
		s.data = nil
	}
	if s.f != nil {
		err := s.f.Close()
		s.f = nil
		return err
	}
	return nil
}
