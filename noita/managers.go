package noita

import "github.com/necauqua/noita-memreader/remote"

// EntityManager is the engine's single registry of live entities:
// the entity pointer vector (indexed by id), a free-id free-list, a
// vector-of-buckets indexed by tag, and a vector of component-buffer
// pointers indexed by component type id.
type EntityManager struct {
	Vftable          remote.Vftable
	NextEntityID     uint32
	FreeIDs          remote.Vector[remote.U32]
	Entities         remote.Vector[remote.Ptr[Entity]]
	EntityBuckets    remote.Vector[remote.Vector[remote.Ptr[Entity]]]
	ComponentBuffers remote.Vector[remote.Ptr[ComponentBuffer]]
}

// Pod marks EntityManager as fixed-layout.
func (EntityManager) Pod() {}

// TagManager resolves tag names to their small integer index, plus
// the reverse vector for debug display.
type TagManager struct {
	Tags        remote.Vector[remote.SsoString]
	TagIndices  remote.OrderedMap[remote.SsoString, remote.Byte]
	MaxTagCount uint32
	Name        remote.SsoString
}

// Pod marks TagManager as fixed-layout.
func (TagManager) Pod() {}

// ComponentTypeManager resolves a component's registered name to its
// numeric type index.
type ComponentTypeManager struct {
	NextID           uint32
	ComponentIndices remote.OrderedMap[remote.SsoString, remote.U32]
}

// Pod marks ComponentTypeManager as fixed-layout.
func (ComponentTypeManager) Pod() {}

// ComponentBuffer is one component type's storage: entity.CompIdx
// indexes into Indices (falling back to DefaultIndex), which yields
// the slot in Storage holding that entity's component instance.
type ComponentBuffer struct {
	Vftable      remote.Vftable
	DefaultIndex uint32
	_            [8]byte
	Indices      remote.Vector[remote.U32]
	_            [0x24]byte
	Storage      remote.Vector[remote.RawPtr]
}

// Pod marks ComponentBuffer as fixed-layout.
func (ComponentBuffer) Pod() {}

// PersistentFlagManager tracks the set of persistent campaign flags
// (e.g. boss kills) under a save path.
type PersistentFlagManager struct {
	Flags remote.HashMap[remote.SsoString, remote.Byte]
	Path  remote.SsoString
}

// Pod marks PersistentFlagManager as fixed-layout.
func (PersistentFlagManager) Pod() {}

// NoitaMod is one entry in the active mod list.
type NoitaMod struct {
	ID       remote.SsoString
	Enabled1 uint32
	Enabled2 uint32
	_        [16 * 4]byte
}

// Pod marks NoitaMod as fixed-layout.
func (NoitaMod) Pod() {}

// Enabled reports whether the mod is active — either enable flag
// being nonzero counts, matching the original's observed behavior.
func (m NoitaMod) Enabled() bool { return m.Enabled1 != 0 || m.Enabled2 != 0 }

// ModContext is the root of the active mod list.
type ModContext struct {
	Vftable remote.Vftable
	_       [6 * 4]byte
	Mods    remote.Vector[NoitaMod]
}

// Pod marks ModContext as fixed-layout.
func (ModContext) Pod() {}
