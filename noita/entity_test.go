package noita

import (
	"encoding/binary"
	"testing"

	"github.com/necauqua/noita-memreader/internal/peimage"
	"github.com/necauqua/noita-memreader/process"
)

// fakeHandle is an in-memory stand-in for platform.Handle, serving
// bytes out of a sparse address->byte map.
type fakeHandle struct {
	base uint32
	mem  map[uint32]byte
}

func (h *fakeHandle) Pid() uint32  { return 9001 }
func (h *fakeHandle) Base() uint32 { return h.base }
func (h *fakeHandle) Close() error { return nil }

func (h *fakeHandle) ReadMemory(addr uint32, buf []byte) error {
	for i := range buf {
		buf[i] = h.mem[addr+uint32(i)]
	}
	return nil
}

func putU32(mem map[uint32]byte, addr, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	for i, c := range b {
		mem[addr+uint32(i)] = c
	}
}

// newFakeRefWithTimestamp lays out a minimal valid PE header at base
// with the given build timestamp, the same fixture shape used by the
// PE header reader's own tests, so ReadEntity's version check has a
// real *process.Ref to call Header() on.
func newFakeRefWithTimestamp(t *testing.T, mem map[uint32]byte, timestamp uint32) *process.Ref {
	t.Helper()
	const base = 0x400000
	const elfanew = 0x80

	buf := make([]byte, 0x8000)
	binary.LittleEndian.PutUint16(buf[0:2], peimage.ImageDOSSignature)
	binary.LittleEndian.PutUint32(buf[0x3c:0x40], elfanew)

	nt := buf[elfanew:]
	copy(nt[0:4], []byte{'P', 'E', 0, 0})

	coff := nt[4:]
	binary.LittleEndian.PutUint32(coff[4:8], timestamp)
	binary.LittleEndian.PutUint16(coff[16:18], peimage.OptionalHeaderSize)

	opt := coff[20:]
	binary.LittleEndian.PutUint16(opt[0:2], peimage.ImageNtOptionalHeader32Magic)
	binary.LittleEndian.PutUint32(opt[4:8], 0x2000)
	binary.LittleEndian.PutUint32(opt[8:12], 0x1000)
	binary.LittleEndian.PutUint32(opt[20:24], 0x1000)
	binary.LittleEndian.PutUint32(opt[24:28], 0x3000)
	binary.LittleEndian.PutUint32(opt[28:32], base)
	binary.LittleEndian.PutUint32(opt[56:60], 0x8000)

	for i, b := range buf {
		if _, exists := mem[base+uint32(i)]; !exists {
			mem[base+uint32(i)] = b
		}
	}

	ref, err := process.NewRefFromHandle(&fakeHandle{base: base, mem: mem}, nil)
	if err != nil {
		t.Fatalf("NewRefFromHandle: %v", err)
	}
	return ref
}

func TestReadEntityOldLayoutWidensTags(t *testing.T) {
	const addr = 0x500000
	mem := map[uint32]byte{}

	putU32(mem, addr+0, 42)  // ID
	putU32(mem, addr+4, 7)   // CompIdx
	putU32(mem, addr+8, 0)   // FilenameIdx
	mem[addr+12] = 1         // Dead
	// Name (SsoString, 24 bytes) at addr+20, left zeroed (inline empty
	// string); Tags (Bitset256) starts after Name plus one pad word.
	tagsOff := addr + 20 + 24 + 4
	mem[tagsOff] = 0b00000100 // bit 2 set

	ref := newFakeRefWithTimestamp(t, mem, tagWideningTimestamp-1)

	e, err := ReadEntity(ref, addr)
	if err != nil {
		t.Fatalf("ReadEntity: %v", err)
	}
	if e.ID != 42 || e.CompIdx != 7 {
		t.Errorf("e = %+v, want ID=42 CompIdx=7", e)
	}
	if !e.Tags.Get(2) {
		t.Errorf("tag bit 2 should have survived widening")
	}
	if e.Tags.Get(3) {
		t.Errorf("tag bit 3 should be unset")
	}
}

func TestReadEntityNewLayout(t *testing.T) {
	const addr = 0x500000
	mem := map[uint32]byte{}
	putU32(mem, addr+0, 1)

	ref := newFakeRefWithTimestamp(t, mem, tagWideningTimestamp)

	e, err := ReadEntity(ref, addr)
	if err != nil {
		t.Fatalf("ReadEntity: %v", err)
	}
	if e.ID != 1 {
		t.Errorf("e.ID = %d, want 1", e.ID)
	}
}

func TestEntityHasTagNilIndex(t *testing.T) {
	var e Entity
	if e.HasTag(nil) {
		t.Errorf("HasTag(nil) should be false")
	}
}
