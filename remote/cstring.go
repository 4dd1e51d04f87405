package remote

import (
	"bytes"
	"unicode/utf8"

	"github.com/necauqua/noita-memreader/process"
)

// CString is a 32-bit pointer to a NUL-terminated byte string.
type CString uint32

// Pod marks CString as fixed-layout.
func (CString) Pod() {}

// Read grows a local buffer up to maxCStringLen bytes searching for
// the terminating NUL, decoding the result as UTF-8.
func (c CString) Read(ref *process.Ref) (string, error) {
	if c == 0 {
		return "", ErrNullPointer
	}

	const chunk = 64
	var buf []byte
	for len(buf) < maxCStringLen {
		n := chunk
		if len(buf)+n > maxCStringLen {
			n = maxCStringLen - len(buf)
		}
		b, err := ref.ReadBytes(uint32(c)+uint32(len(buf)), n)
		if err != nil {
			return "", err
		}
		if idx := bytes.IndexByte(b, 0); idx >= 0 {
			buf = append(buf, b[:idx]...)
			if !utf8.Valid(buf) {
				return "", ErrInvalidData
			}
			return string(buf), nil
		}
		buf = append(buf, b...)
	}
	return "", ErrInvalidData
}
