package vfs

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

func putSsoInline(mem map[uint32]byte, addr uint32, s string) {
	for i := 0; i < len(s); i++ {
		mem[addr+uint32(i)] = s[i]
	}
	putU32(mem, addr+16, uint32(len(s)))
}

// putCString writes a NUL-terminated byte string at addr.
func putCString(mem map[uint32]byte, addr uint32, s string) {
	for i := 0; i < len(s); i++ {
		mem[addr+uint32(i)] = s[i]
	}
	mem[addr+uint32(len(s))] = 0
}

// buildRtti writes an object at objAddr whose first field is a vtable
// pointer, itself wired through the "-4" RTTI chain (Complete Object
// Locator -> Type Descriptor -> mangled name) that resolveDevice walks.
func buildRtti(mem map[uint32]byte, objAddr uint32, name string) {
	const vftable = 0x89000
	const col = 0x90000
	const typeDescriptor = 0x91000
	putU32(mem, objAddr, vftable)
	putU32(mem, vftable-4, col)
	putU32(mem, col+12, typeDescriptor)
	putCString(mem, typeDescriptor+8, name)
}

func TestResolveDeviceUnknownRttiIsCleanSkip(t *testing.T) {
	mem := map[uint32]byte{}
	const addr = 0x80000
	buildRtti(mem, addr, ".?AVSomeOtherDevice@@")
	ref := newFakeRef(mem)

	device, err := resolveDevice(ref, remote.RawPtr(addr))
	if err != nil {
		t.Fatalf("resolveDevice: %v", err)
	}
	if device != nil {
		t.Errorf("expected nil device for unrecognized RTTI name")
	}
}

func TestResolveDeviceWizardPak(t *testing.T) {
	mem := map[uint32]byte{}
	const addr = 0x80000
	buildRtti(mem, addr, ".?AVWizardPakFileDevice@@")
	ref := newFakeRef(mem)

	device, err := resolveDevice(ref, remote.RawPtr(addr))
	if err != nil {
		t.Fatalf("resolveDevice: %v", err)
	}
	if _, ok := device.(WizardPakFileDevice); !ok {
		t.Errorf("device = %T, want WizardPakFileDevice", device)
	}
}

// buildEntriesNode writes one modFileEntry OrderedMap node at addr,
// keyed by key, as either a cached-bytes hit or an override-path
// redirect depending on which of cache/override is non-empty.
func buildEntriesNode(mem map[uint32]byte, addr, left, parent, right uint32, key string, filename string, cacheAddr uint32, cacheLen uint32, overridePath string) {
	putU32(mem, addr+0, left)
	putU32(mem, addr+4, parent)
	putU32(mem, addr+8, right)
	putU32(mem, addr+12, 0)
	putSsoInline(mem, addr+16, key) // Key: SsoString, 24 bytes -> addr+16..addr+40

	entry := addr + 40 // modFileEntry starts here
	putSsoInline(mem, entry, filename)
	// Filename (24) + Flag/pad (4) + ModDevice Ptr (4) ends at entry+32
	cacheOff := entry + 32
	putU32(mem, cacheOff, cacheAddr)  // Cache.Data
	putU32(mem, cacheOff+4, cacheLen) // Cache.Len
	// then int32 pad (4), then OverrideWith SsoString
	overrideOff := cacheOff + 8 + 4
	putSsoInline(mem, overrideOff, overridePath)
}

func TestModDiskFileDeviceCachingCacheHit(t *testing.T) {
	mem := map[uint32]byte{}
	const sentinel = 0x70000
	const node = 0x70100
	const payload = 0x71000

	payloadBytes := "cached bytes"
	for i := 0; i < len(payloadBytes); i++ {
		mem[payload+uint32(i)] = payloadBytes[i]
	}

	putU32(mem, sentinel+0, node)
	putU32(mem, sentinel+4, node)
	putU32(mem, sentinel+8, node)
	buildEntriesNode(mem, node, sentinel, sentinel, sentinel, "data/file.txt", "", payload, uint32(len(payloadBytes)), "")

	ref := newFakeRef(mem)
	d := ModDiskFileDeviceCaching{Entries: remote.OrderedMap[remote.SsoString, modFileEntry]{Sentinel: sentinel, Size: 1}}

	got, err := d.getFile(ref, FileSystem{}, "data/file.txt")
	if err != nil {
		t.Fatalf("getFile: %v", err)
	}
	if string(got) != payloadBytes {
		t.Errorf("got %q, want %q", got, payloadBytes)
	}
}

func TestModDiskFileDeviceCachingMiss(t *testing.T) {
	mem := map[uint32]byte{}
	const sentinel = 0x70000
	putU32(mem, sentinel+0, sentinel)
	putU32(mem, sentinel+4, sentinel)
	putU32(mem, sentinel+8, sentinel)

	ref := newFakeRef(mem)
	d := ModDiskFileDeviceCaching{Entries: remote.OrderedMap[remote.SsoString, modFileEntry]{Sentinel: sentinel, Size: 0}}

	got, err := d.getFile(ref, FileSystem{}, "missing.txt")
	if err != nil {
		t.Fatalf("getFile: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil data for a miss, got %q", got)
	}
}

func TestModDiskFileDeviceGetFileWrongPrefixIsCleanSkip(t *testing.T) {
	mem := map[uint32]byte{}
	ref := newFakeRef(mem)

	var dev ModDiskFileDevice
	copy(dev.ModPathPrefixLowercase.Buf[:], "mods/myext/")
	dev.ModPathPrefixLowercase.Len = uint32(len("mods/myext/"))

	data, err := dev.getFile(ref, FileSystem{}, "other/path.txt")
	if err != nil {
		t.Fatalf("getFile: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil data when path doesn't match the mod prefix")
	}
}
