package peimage

import (
	"encoding/binary"
	"testing"
)

// fakeReader serves ReadBytes out of an in-memory buffer addressed
// starting at base, mimicking a remote process image.
type fakeReader struct {
	base uint32
	data []byte
}

func (f *fakeReader) ReadBytes(addr uint32, n int) ([]byte, error) {
	off := addr - f.base
	return f.data[off : off+uint32(n)], nil
}

// buildFixtureImage assembles the synthetic image described by the
// specification's "PE parse" end-to-end scenario.
func buildFixtureImage() []byte {
	const elfanew = 0x80
	buf := make([]byte, 0x8000)

	binary.LittleEndian.PutUint16(buf[0:2], ImageDOSSignature)
	binary.LittleEndian.PutUint32(buf[0x3c:0x40], elfanew)

	nt := buf[elfanew:]
	copy(nt[0:4], []byte{'P', 'E', 0, 0})

	coff := nt[4:]
	binary.LittleEndian.PutUint32(coff[4:8], 0x66BA59D6) // TimeDateStamp
	binary.LittleEndian.PutUint16(coff[16:18], OptionalHeaderSize)

	opt := coff[20:]
	binary.LittleEndian.PutUint16(opt[0:2], ImageNtOptionalHeader32Magic)
	binary.LittleEndian.PutUint32(opt[4:8], 0x2000)   // SizeOfCode
	binary.LittleEndian.PutUint32(opt[8:12], 0x1000)  // SizeOfInitializedData
	binary.LittleEndian.PutUint32(opt[20:24], 0x1000) // BaseOfCode
	binary.LittleEndian.PutUint32(opt[24:28], 0x3000) // BaseOfData
	binary.LittleEndian.PutUint32(opt[28:32], 0x400000)
	binary.LittleEndian.PutUint32(opt[56:60], 0x8000) // SizeOfImage

	return buf
}

func TestReadHeader(t *testing.T) {
	buf := buildFixtureImage()
	r := &fakeReader{base: 0x400000, data: buf}

	h, err := ReadHeader(r, 0x400000)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Text != (Range{0x1000, 0x3000}) {
		t.Errorf("text = %+v, want 0x1000..0x3000", h.Text)
	}
	if h.Rdata != (Range{0x3000, 0x4000}) {
		t.Errorf("rdata = %+v, want 0x3000..0x4000", h.Rdata)
	}
	if h.Timestamp != 0x66BA59D6 {
		t.Errorf("timestamp = 0x%x, want 0x66BA59D6", h.Timestamp)
	}
	if h.ImageBase != 0x400000 {
		t.Errorf("image base = 0x%x, want 0x400000", h.ImageBase)
	}
}

func TestReadHeaderBadMagic(t *testing.T) {
	buf := buildFixtureImage()
	buf[0] = 'X'
	r := &fakeReader{base: 0x400000, data: buf}

	if _, err := ReadHeader(r, 0x400000); err != ErrInvalidMzHeader {
		t.Errorf("err = %v, want ErrInvalidMzHeader", err)
	}
}
