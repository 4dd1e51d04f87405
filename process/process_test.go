package process

import "testing"

// u32 is a trivial Pod so the generic Read/ReadMultiple helpers have
// something fixed-layout to decode in tests without pulling in the
// full remote descriptor set.
type u32 uint32

func (u32) Pod() {}

// fakeHandle is an in-memory stand-in for platform.Handle, letting
// the handle-roundtrip scenario run without a real OS process.
type fakeHandle struct {
	base uint32
	mem  map[uint32]byte
}

func (h *fakeHandle) Pid() uint32  { return 1234 }
func (h *fakeHandle) Base() uint32 { return h.base }
func (h *fakeHandle) Close() error { return nil }

func (h *fakeHandle) ReadMemory(addr uint32, buf []byte) error {
	for i := range buf {
		buf[i] = h.mem[addr+uint32(i)]
	}
	return nil
}

func newTestRef(mem map[uint32]byte) *Ref {
	return &Ref{handle: &fakeHandle{base: 0x400000, mem: mem}}
}

func TestReadRoundTrip(t *testing.T) {
	mem := map[uint32]byte{
		0x1000: 0xef, 0x1001: 0xbe, 0x1002: 0xad, 0x1003: 0xde,
		0x1004: 0x01, 0x1005: 0x00, 0x1006: 0x00, 0x1007: 0x00,
	}
	ref := newTestRef(mem)

	v, err := Read[u32](ref, 0x1000)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != 0xdeadbeef {
		t.Errorf("v = 0x%x, want 0xdeadbeef", v)
	}

	vs, err := ReadMultiple[u32](ref, 0x1000, 2)
	if err != nil {
		t.Fatalf("ReadMultiple: %v", err)
	}
	if vs[0] != 0xdeadbeef || vs[1] != 1 {
		t.Errorf("vs = %#v, want [0xdeadbeef, 1]", vs)
	}
}
