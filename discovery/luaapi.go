package discovery

import (
	"encoding/binary"

	"github.com/necauqua/noita-memreader/internal/peimage"
)

// luaApiPushToFnPtrGap is the distance, in bytes, from the PUSH of a
// script-API function's registered name back to the 4-byte C function
// pointer that implements it — the engine's binding idiom is
// push_closure(fn_ptr); set_field(globals, "Name"), so the pointer is
// an immediate operand sitting at a fixed offset before the name PUSH
// opcode.
const luaApiPushToFnPtrGap = 7

// FindLuaAPIFn locates the PUSH &"name" site in .text and reads the
// four little-endian bytes 7 bytes before that opcode, yielding the C
// function pointer bound to that script-API name.
func FindLuaAPIFn(image *peimage.ExeImage, name string) (uint32, bool) {
	pushAddr, ok := image.FindPushStrPos([]byte(name))
	if !ok {
		return 0, false
	}
	fnPtrAddr := pushAddr - luaApiPushToFnPtrGap
	raw := image.ReadAt(fnPtrAddr, 4)
	return binary.LittleEndian.Uint32(raw), true
}
