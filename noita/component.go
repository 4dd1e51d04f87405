package noita

import (
	"github.com/necauqua/noita-memreader/process"
	"github.com/necauqua/noita-memreader/remote"
)

// Component is the engine's common header wrapping every concrete
// component payload D: identity, enabled flag, and the tag bitset
// components carry independently of their owning entity.
type Component[D process.Pod] struct {
	Vftable    remote.Vftable
	_          uint32
	TypeName   remote.CString
	TypeID     uint32
	InstanceID uint32
	Enabled    remote.PadBool3
	Tags       remote.Bitset256
	_          remote.Vector[remote.U32]
	_          uint32
	Data       D
}

// Pod marks Component as fixed-layout.
func (Component[D]) Pod() {}

// ComponentName is implemented by every concrete component payload
// type, giving its registered name in ComponentTypeManager.
type ComponentName interface {
	ComponentName() string
}
