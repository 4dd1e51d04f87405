package cellfactory

import (
	"encoding/binary"
	"testing"

	"github.com/necauqua/noita-memreader/process"
	"github.com/necauqua/noita-memreader/remote"
)

type fakeHandle struct {
	mem map[uint32]byte
}

func (h *fakeHandle) Pid() uint32  { return 1 }
func (h *fakeHandle) Base() uint32 { return 0x400000 }
func (h *fakeHandle) Close() error { return nil }

func (h *fakeHandle) ReadMemory(addr uint32, buf []byte) error {
	for i := range buf {
		buf[i] = h.mem[addr+uint32(i)]
	}
	return nil
}

func newFakeRef(mem map[uint32]byte) *process.Ref {
	return process.NewBareRefFromHandle(&fakeHandle{mem: mem})
}

func putU32(mem map[uint32]byte, addr, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	for i, c := range b {
		mem[addr+uint32(i)] = c
	}
}

// TestReactionLookupTableStride builds a 3-wide, 2-row grid of
// cellReactionBuf entries and checks Lookup walks the right stride
// (width * bufSize per row) rather than a hardcoded element size.
func TestReactionLookupTableStride(t *testing.T) {
	mem := map[uint32]byte{}
	const storage = 0x10000
	bufSize := uint32(binary.Size(cellReactionBuf{}))
	if bufSize != 12 {
		t.Fatalf("cellReactionBuf size = %d, want 12 (Ptr[T]=4 + 2*uint32)", bufSize)
	}

	const width, height = 3, 2
	const materialID = 1
	const reactionAddr = 0x20000

	// Row 0, column materialID: one reaction.
	row0Off := storage + (width*0+materialID)*bufSize
	putU32(mem, row0Off, reactionAddr) // Base
	putU32(mem, row0Off+8, 1)          // Len

	// Row 1, column materialID: no reactions (Len 0), should be
	// skipped without misreading into the next row's entry.
	row1Off := storage + (width*1+materialID)*bufSize
	putU32(mem, row1Off, 0)
	putU32(mem, row1Off+8, 0)

	putU32(mem, reactionAddr, 0) // a single zeroed CellReaction is fine

	ref := newFakeRef(mem)
	table := ReactionLookupTable{
		Width:   width,
		Height:  height,
		Storage: remote.Ptr[cellReactionBuf](storage),
	}

	reactions, err := table.Lookup(ref, materialID)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(reactions) != 1 {
		t.Fatalf("len(reactions) = %d, want 1", len(reactions))
	}
}

func TestSafeArraySliceAndRead(t *testing.T) {
	mem := map[uint32]byte{}
	const base = 0x30000
	payload := []byte("hello world")
	for i, b := range payload {
		mem[base+uint32(i)] = b
	}
	ref := newFakeRef(mem)

	arr := remote.SafeArray[remote.Byte]{Data: remote.Ptr[remote.Byte](base), Len: uint32(len(payload))}
	if arr.IsEmpty() {
		t.Fatalf("arr should not be empty")
	}

	sub := arr.Slice(6, 5)
	got, err := sub.Read(ref)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	out := make([]byte, len(got))
	for i, b := range got {
		out[i] = byte(b)
	}
	if string(out) != "world" {
		t.Errorf("got %q, want %q", out, "world")
	}
}
