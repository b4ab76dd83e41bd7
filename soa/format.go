package soa

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	// HeaderSize is the fixed header size. A multiple of 16, so the
	// component arrays that follow stay vector-aligned in a mapped file.
	HeaderSize = 64

	// Magic identifies a valid coordinate-set file.
	Magic = "SOA4"

	// FormatVersion is the current file format version.
	FormatVersion uint16 = 1
)

// Header holds the persisted coordinate-set metadata. The four component
// arrays follow back to back: x at HeaderSize, then y, z, w, each
// Count*4 bytes.
type Header struct {
	Magic    [4]byte
	Version  uint16
	Lanes    uint16
	Count    uint32
	Reserved [52]byte // pad to 64 bytes
}

// EncodeHeader writes the header to a byte slice, padded to HeaderSize.
func EncodeHeader(h *Header) ([]byte, error) {
	if h == nil {
		return nil, errors.New("header is nil")
	}
	copy(h.Magic[:], Magic)
	h.Version = FormatVersion
	var w bytes.Buffer
	if err := binary.Write(&w, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	b := w.Bytes()
	if len(b) < HeaderSize {
		padded := make([]byte, HeaderSize)
		copy(padded, b)
		return padded, nil
	}
	return b, nil
}

// DecodeHeader reads the header from src. Returns error if magic/version invalid.
func DecodeHeader(src []byte) (*Header, error) {
	if len(src) < HeaderSize {
		return nil, errors.New("header too short")
	}
	var h Header
	r := bytes.NewReader(src[:HeaderSize])
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if string(h.Magic[:]) != Magic {
		return nil, errors.New("invalid magic")
	}
	if h.Version != FormatVersion {
		return nil, errors.New("unsupported format version")
	}
	return &h, nil
}
