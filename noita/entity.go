package noita

import (
	"github.com/necauqua/noita-memreader/process"
	"github.com/necauqua/noita-memreader/remote"
)

// tagWideningTimestamp is the build timestamp at which the tag bitset
// widened from 256 to 512 bits; entities from earlier builds are read
// with the narrow layout and zero-extended.
const tagWideningTimestamp = 0x6794EE3C

// Entity is the engine's per-object record: identity, a dead flag, a
// name, a tag bitset, a spatial transform, and links to its children
// and parent. The tag bitset is always surfaced as 512 bits; entities
// from builds predating tagWideningTimestamp are widened on read.
type Entity struct {
	ID, CompIdx, FilenameIdx uint32
	Dead                     remote.PadBool3
	_                        uint32
	Name                     remote.SsoString
	_                        uint32
	Tags                     remote.Bitset512
	Transform                EntityTransform
	Children                 remote.Ptr[remote.Vector[remote.Ptr[Entity]]]
	Parent                   remote.Ptr[Entity]
}

// Pod marks Entity as fixed-layout.
func (Entity) Pod() {}

// oldEntity is the pre-widening layout: identical but for a 256-bit
// tag bitset.
type oldEntity struct {
	ID, CompIdx, FilenameIdx uint32
	Dead                     remote.PadBool3
	_                        uint32
	Name                     remote.SsoString
	_                        uint32
	Tags                     remote.Bitset256
	Transform                EntityTransform
	Children                 remote.Ptr[remote.Vector[remote.Ptr[Entity]]]
	Parent                   remote.Ptr[Entity]
}

// Pod marks oldEntity as fixed-layout.
func (oldEntity) Pod() {}

// ReadEntity reads an Entity at addr, adapting for the build's tag
// bitset width. This is the one place Entity's memory layout isn't a
// plain process.Read[Entity] — pre-widening builds need the narrow
// struct read and zero-extended, never the other way around.
func ReadEntity(ref *process.Ref, addr uint32) (Entity, error) {
	if ref.Header().Timestamp >= tagWideningTimestamp {
		return process.Read[Entity](ref, addr)
	}
	old, err := process.Read[oldEntity](ref, addr)
	if err != nil {
		return Entity{}, err
	}
	return Entity{
		ID:          old.ID,
		CompIdx:     old.CompIdx,
		FilenameIdx: old.FilenameIdx,
		Dead:        old.Dead,
		Name:        old.Name,
		Tags:        old.Tags.Widen(),
		Transform:   old.Transform,
		Children:    old.Children,
		Parent:      old.Parent,
	}, nil
}

// HasTag reports whether the entity's tag bitset has tagIndex set.
// A nil tagIndex (an unresolved tag name) never matches.
func (e Entity) HasTag(tagIndex *int) bool {
	return e.Tags.GetOption(tagIndex)
}
