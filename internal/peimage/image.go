package peimage

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/arch/x86/x86asm"
)

// ExeImage is a local snapshot of a target's full PE image, sized by
// the PE header's SizeOfImage. It exists only for the duration of a
// discovery run: once the engine globals are found, the snapshot is
// dropped and subsequent reads go straight through the process handle.
type ExeImage struct {
	header *Header
	data   []byte
}

// ReadExeImage copies SizeOfImage bytes from ImageBase in r into a
// local buffer.
func ReadExeImage(r MemReader, header *Header) (*ExeImage, error) {
	data, err := r.ReadBytes(header.ImageBase, int(header.SizeOfImage))
	if err != nil {
		return nil, err
	}
	return &ExeImage{header: header, data: data}, nil
}

// Header returns the PE header this image was read against.
func (e *ExeImage) Header() *Header { return e.header }

// Text returns the .text section bytes.
func (e *ExeImage) Text() []byte { return e.slice(e.header.Text) }

// Rdata returns the .rdata section bytes.
func (e *ExeImage) Rdata() []byte { return e.slice(e.header.Rdata) }

func (e *ExeImage) slice(r Range) []byte { return e.data[r.Start:r.End] }

// AddrToOffset converts a program address into an offset into the
// local image snapshot.
func (e *ExeImage) AddrToOffset(addr uint32) uint32 { return addr - e.header.ImageBase }

// OffsetToAddr converts an offset into the local image snapshot into
// a program address.
func (e *ExeImage) OffsetToAddr(offset uint32) uint32 { return e.header.ImageBase + offset }

// TextOffsetToAddr converts an offset within .text (as returned by
// FindPushStrPos) into a program address.
func (e *ExeImage) TextOffsetToAddr(offset uint32) uint32 {
	return e.OffsetToAddr(e.header.Text.Start + offset)
}

// FindString forward-searches .rdata for needle followed by a NUL
// byte, returning its program address.
func (e *ExeImage) FindString(needle []byte) (uint32, bool) {
	rdata := e.Rdata()
	pat := append(append([]byte{}, needle...), 0)
	idx := bytes.Index(rdata, pat)
	if idx < 0 {
		return 0, false
	}
	return e.OffsetToAddr(e.header.Rdata.Start + uint32(idx)), true
}

// FindPushStrPos finds the 5-byte sequence `0x68 <le32 address>` in
// .text that pushes the address of needle (as found by FindString),
// returning the program address of the PUSH opcode.
func (e *ExeImage) FindPushStrPos(needle []byte) (uint32, bool) {
	strAddr, ok := e.FindString(needle)
	if !ok {
		return 0, false
	}
	pattern := make([]byte, 5)
	pattern[0] = 0x68
	binary.LittleEndian.PutUint32(pattern[1:], strAddr)

	text := e.Text()
	idx := bytes.Index(text, pattern)
	if idx < 0 {
		return 0, false
	}
	return e.TextOffsetToAddr(uint32(idx)), true
}

// ReadAt reads n bytes starting at the program address addr directly
// out of the local snapshot (no remote read).
func (e *ExeImage) ReadAt(addr uint32, n int) []byte {
	off := e.AddrToOffset(addr)
	return e.data[off : off+uint32(n)]
}

// DecodedInst pairs a decoded instruction with its program address, so
// callers can resolve CALL/JMP targets without re-deriving offsets.
type DecodedInst struct {
	Addr uint32
	Inst x86asm.Inst
}

// DecodeFn disassembles x86-32 instructions starting at addr,
// stopping at (and including) the first RET, RET imm16, RETF, or INT3, or
// once the image snapshot runs out.
func (e *ExeImage) DecodeFn(addr uint32) []DecodedInst {
	off := e.AddrToOffset(addr)
	var insts []DecodedInst
	for off < uint32(len(e.data)) {
		inst, err := x86asm.Decode(e.data[off:], 32)
		if err != nil || inst.Len == 0 {
			break
		}
		insts = append(insts, DecodedInst{Addr: e.OffsetToAddr(off), Inst: inst})
		if isTerminator(inst) {
			break
		}
		off += uint32(inst.Len)
	}
	return insts
}

func isTerminator(inst x86asm.Inst) bool {
	switch inst.Op {
	case x86asm.RET, x86asm.RETF, x86asm.INT3:
		return true
	default:
		return false
	}
}
