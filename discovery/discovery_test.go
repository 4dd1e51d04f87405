package discovery

import (
	"encoding/binary"
	"testing"

	"github.com/necauqua/noita-memreader/internal/peimage"
)

// fakeImageReader hands back a pre-built flat image snapshot, playing
// the part a live process handle would during a real discovery run.
type fakeImageReader struct {
	base uint32
	data []byte
}

func (f *fakeImageReader) ReadBytes(addr uint32, n int) ([]byte, error) {
	off := addr - f.base
	return f.data[off : off+uint32(n)], nil
}

// buildSeedFixture lays out the world-seed discovery scenario end to
// end: a "SetRandomSeed\0" literal in .rdata, a PUSH
// of its address in .text, a function pointer 7 bytes before that
// PUSH, and a MOV EAX, moffs32 / ADD EAX, r/m32 pair inside the
// pointed-to function.
func buildSeedFixture(timestamp, worldSeedAddr, ngCountAddr uint32) *peimage.ExeImage {
	const imageBase = 0x400000
	const sizeOfImage = 0x5000

	data := make([]byte, sizeOfImage)

	header := &peimage.Header{
		ImageBase:   imageBase,
		SizeOfImage: sizeOfImage,
		Text:        peimage.Range{Start: 0x1000, End: 0x2000},
		Rdata:       peimage.Range{Start: 0x3000, End: 0x4000},
		Timestamp:   timestamp,
	}

	// "SetRandomSeed\0" at rdata offset 0.
	copy(data[0x3000:], "SetRandomSeed\x00")
	strAddr := uint32(imageBase + 0x3000)

	// PUSH &"SetRandomSeed" at text offset 0x100 (addr 0x401100).
	const pushOff = 0x1100
	data[pushOff] = 0x68
	binary.LittleEndian.PutUint32(data[pushOff+1:], strAddr)

	// Function pointer 7 bytes before the PUSH opcode, per the
	// registration idiom FindLuaAPIFn decodes.
	const entryOff = 0x1500
	entryAddr := uint32(imageBase + entryOff)
	fnPtrOff := pushOff - luaApiPushToFnPtrGap
	binary.LittleEndian.PutUint32(data[fnPtrOff:], entryAddr)

	// mov eax, [worldSeedAddr]
	data[entryOff] = 0xA1
	binary.LittleEndian.PutUint32(data[entryOff+1:], worldSeedAddr)
	// add eax, [ngCountAddr]  (modrm 0x05 = reg=eax, rm=disp32-only)
	data[entryOff+5] = 0x03
	data[entryOff+6] = 0x05
	binary.LittleEndian.PutUint32(data[entryOff+7:], ngCountAddr)
	// ret
	data[entryOff+11] = 0xC3

	reader := &fakeImageReader{base: imageBase, data: data}
	image, err := peimage.ReadExeImage(reader, header)
	if err != nil {
		panic(err)
	}
	return image
}

func TestDiscoveryOnFixture(t *testing.T) {
	const worldSeedAddr = 0x01234560
	const ngCountAddr = 0x01234564
	image := buildSeedFixture(0xAAAAAAAA, worldSeedAddr, ngCountAddr)

	worldSeed, ngCount := findSeedPointers(image)
	if worldSeed == nil || *worldSeed != worldSeedAddr {
		t.Fatalf("world_seed = %v, want %#x", worldSeed, worldSeedAddr)
	}
	if ngCount == nil || *ngCount != ngCountAddr {
		t.Fatalf("ng_count = %v, want %#x", ngCount, ngCountAddr)
	}
}

func TestDiscoveryIdempotent(t *testing.T) {
	image := buildSeedFixture(0xAAAAAAAA, 0x01234560, 0x01234564)

	g1 := Run(image)
	g2 := Run(image)
	if !g1.Equal(g2) {
		t.Fatalf("discovery not idempotent: %+v != %+v", g1, g2)
	}
}

func TestKnownBuildAgreement(t *testing.T) {
	for timestamp, want := range knownBuilds {
		image := buildSeedFixture(timestamp, 0x01234560, 0x01234564)
		got := Run(image)
		if !got.Equal(want) {
			t.Fatalf("discover(image_with_timestamp(%#x)) = %+v, want %+v", timestamp, got, want)
		}
	}
}
