package remote

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/necauqua/noita-memreader/process"
)

// SsoString is the MSVC std::string small-string-optimized layout: a
// 16-byte inline buffer, a length and a capacity. When Len <= 15 the
// bytes live inline; otherwise the first 4 bytes of the buffer are a
// heap pointer and Len bytes are read from there.
type SsoString struct {
	Buf [16]byte
	Len uint32
	Cap uint32
}

// Pod marks SsoString as fixed-layout.
func (SsoString) Pod() {}

const ssoInlineCap = 15

// Decode resolves the string's UTF-8 content, growing to the heap
// buffer when the string exceeds the inline capacity.
func (s SsoString) Decode(ref *process.Ref) (string, error) {
	var raw []byte
	if s.Len <= ssoInlineCap {
		raw = s.Buf[:s.Len]
	} else {
		heapPtr := binary.LittleEndian.Uint32(s.Buf[:4])
		b, err := ref.ReadBytes(heapPtr, int(s.Len))
		if err != nil {
			return "", err
		}
		raw = b
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidData
	}
	return string(raw), nil
}

// SsoStringW is the wide-character (UTF-16) counterpart of SsoString:
// an 8-element inline buffer, inline iff Len <= 7.
type SsoStringW struct {
	Buf [8]uint16
	Len uint32
	Cap uint32
}

// Pod marks SsoStringW as fixed-layout.
func (SsoStringW) Pod() {}

const ssoWideInlineCap = 7

// Decode resolves the string's UTF-8 content, transcoding from UTF-16.
func (s SsoStringW) Decode(ref *process.Ref) (string, error) {
	var units []uint16
	if s.Len <= ssoWideInlineCap {
		units = s.Buf[:s.Len]
	} else {
		var buf [4]byte
		binary.LittleEndian.PutUint16(buf[0:2], s.Buf[0])
		binary.LittleEndian.PutUint16(buf[2:4], s.Buf[1])
		heapPtr := binary.LittleEndian.Uint32(buf[:])
		raw, err := ref.ReadBytes(heapPtr, int(s.Len)*2)
		if err != nil {
			return "", err
		}
		units = make([]uint16, s.Len)
		for i := range units {
			units[i] = binary.LittleEndian.Uint16(raw[i*2 : i*2+2])
		}
	}
	return string(utf16.Decode(units)), nil
}
