package remote

import (
	"encoding/binary"
	"testing"

	"github.com/necauqua/noita-memreader/process"
)

// fakeHandle is an in-memory stand-in for platform.Handle.
type fakeHandle struct {
	mem map[uint32]byte
}

func (h *fakeHandle) Pid() uint32  { return 4242 }
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

func TestPtrSizeIsFourBytes(t *testing.T) {
	if n := binary.Size(Ptr[RawPtr](0)); n != 4 {
		t.Fatalf("binary.Size(Ptr[RawPtr]) = %d, want 4", n)
	}
}

func TestPtrNullIsError(t *testing.T) {
	ref := newFakeRef(nil)
	p := Ptr[RawPtr](0)
	if _, err := p.Read(ref); err != ErrNullPointer {
		t.Errorf("err = %v, want ErrNullPointer", err)
	}
}

func TestIboResolvesAgainstImageBase(t *testing.T) {
	mem := map[uint32]byte{}
	putU32(mem, 0x400000, 0xAAAAAAAA)
	ref := newFakeRef(mem)

	p := Ibo[RawPtr](0)
	v, err := p.Read(ref)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if uint32(v) != 0xAAAAAAAA {
		t.Errorf("v = 0x%x, want 0xAAAAAAAA", v)
	}
}

func TestVectorLenAndRoundTrip(t *testing.T) {
	mem := map[uint32]byte{}
	putU32(mem, 0x2000, 10)
	putU32(mem, 0x2004, 20)
	putU32(mem, 0x2008, 30)
	ref := newFakeRef(mem)

	v := Vector[RawPtr]{Begin: 0x2000, End: 0x200C, Cap: 0x200C}
	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
	elems, err := v.Read(ref)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []RawPtr{10, 20, 30}
	for i := range want {
		if elems[i] != want[i] {
			t.Errorf("elems[%d] = %d, want %d", i, elems[i], want[i])
		}
	}
}

// buildOrderedMap3 builds the 3-node tree {5->"a", 3->"b", 7->"c"}
// with 5 as root, 3 as left child, 7 as right child, and the sentinel
// as both header and nil-leaf marker.
func buildOrderedMap3(mem map[uint32]byte) OrderedMap[U32, RawPtr] {
	const sentinel = 0x3000
	const nodeRoot = 0x3010  // key 5
	const nodeLeft = 0x3020  // key 3
	const nodeRight = 0x3030 // key 7

	putNode := func(addr, left, parent, right, key, value uint32) {
		putU32(mem, addr+0, left)
		putU32(mem, addr+4, parent)
		putU32(mem, addr+8, right)
		putU32(mem, addr+12, 0) // color meta, unused
		putU32(mem, addr+16, key)
		putU32(mem, addr+20, value)
	}

	putNode(sentinel, nodeRoot, nodeRoot, nodeRoot, 0, 0)
	putNode(nodeRoot, nodeLeft, sentinel, nodeRight, 5, 'a')
	putNode(nodeLeft, sentinel, nodeRoot, sentinel, 3, 'b')
	putNode(nodeRight, sentinel, nodeRoot, sentinel, 7, 'c')

	return OrderedMap[U32, RawPtr]{Sentinel: sentinel, Size: 3}
}

func TestOrderedMapGet(t *testing.T) {
	mem := map[uint32]byte{}
	m := buildOrderedMap3(mem)
	ref := newFakeRef(mem)

	v, ok, err := m.Get(ref, func(k U32) int { return int(3) - int(k) })
	if err != nil || !ok {
		t.Fatalf("Get(3): ok=%v err=%v", ok, err)
	}
	if v != 'b' {
		t.Errorf("Get(3) = %v, want 'b'", v)
	}

	_, ok, err = m.Get(ref, func(k U32) int { return int(4) - int(k) })
	if err != nil {
		t.Fatalf("Get(4): %v", err)
	}
	if ok {
		t.Errorf("Get(4) found a value, want none")
	}
}

func TestSsoStringInline(t *testing.T) {
	var s SsoString
	copy(s.Buf[:], "hello")
	s.Len = 5
	ref := newFakeRef(nil)

	got, err := s.Decode(ref)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestSsoStringHeap(t *testing.T) {
	mem := map[uint32]byte{}
	payload := "this is a string longer than fifteen bytes"
	for i := 0; i < len(payload); i++ {
		mem[0x12345678+uint32(i)] = payload[i]
	}

	var s SsoString
	binary.LittleEndian.PutUint32(s.Buf[:4], 0x12345678)
	s.Len = uint32(len(payload))
	ref := newFakeRef(mem)

	got, err := s.Decode(ref)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != payload {
		t.Errorf("got %q, want %q", got, payload)
	}
}

func TestBitsetGetOption(t *testing.T) {
	var b Bitset256
	b[0] = 0b00000100 // bit 2 set
	if !b.Get(2) {
		t.Errorf("bit 2 should be set")
	}
	if b.Get(3) {
		t.Errorf("bit 3 should be unset")
	}
	if b.GetOption(nil) {
		t.Errorf("GetOption(nil) should be false")
	}
	two := 2
	if !b.GetOption(&two) {
		t.Errorf("GetOption(&2) should be true")
	}
}

func TestBitsetWiden(t *testing.T) {
	var b Bitset256
	b[31] = 0xFF
	wide := b.Widen()
	for i := 32; i < 64; i++ {
		if wide[i] != 0 {
			t.Fatalf("upper half not zero at byte %d", i)
		}
	}
	if wide[31] != 0xFF {
		t.Errorf("lower half not preserved")
	}
}
