package cellfactory

import (
	"encoding/binary"

	"github.com/necauqua/noita-memreader/process"
	"github.com/necauqua/noita-memreader/remote"
)

// ReactionDir is the side of a cell a reaction consumed from; values
// outside the known set pass through unchanged.
type ReactionDir int32

const (
	ReactionDirNone   ReactionDir = -1
	ReactionDirTop    ReactionDir = 0
	ReactionDirBottom ReactionDir = 1
	ReactionDirLeft   ReactionDir = 2
	ReactionDirRight  ReactionDir = 3
)

// Pod marks ReactionDir as fixed-layout.
func (ReactionDir) Pod() {}

// CellReaction is one entry in a reaction lookup table: up to three
// input materials producing up to three output materials plus an
// optional cosmetic particle and explosion.
type CellReaction struct {
	FastReaction                     remote.PadBool3
	ProbabilityTimes100               uint32
	InputCell1, InputCell2             int32
	OutputCell1, OutputCell2           int32
	HasInputCell3                     remote.PadBool3
	InputCell3                        int32
	OutputCell3                       int32
	CosmeticParticle                  int32
	ReqLifetime                       int32
	BlobRadius1, BlobRadius2           byte
	BlobRestrictToInputMaterial1       remote.ByteBool
	BlobRestrictToInputMaterial2       remote.ByteBool
	DestroyHorizontallyLonelyPixels    remote.ByteBool
	ConvertAll                        remote.PadBool2
	EntityFileIdx                     uint32
	Direction                         ReactionDir
	ExplosionConfig                   remote.Ptr[ConfigExplosion]
	AudioFxVolume1                    float32
}

// Pod marks CellReaction as fixed-layout.
func (CellReaction) Pod() {}

// PrettyPrint renders a reaction using materials for name lookup,
// falling back to "unknown" for an out-of-range index.
func (r CellReaction) PrettyPrint(materials []string) string {
	name := func(id int32) string {
		if id < 0 || int(id) >= len(materials) {
			return "unknown"
		}
		return materials[id]
	}
	s := name(r.InputCell1) + " + " + name(r.InputCell2)
	if r.HasInputCell3.Bool() {
		s += " + " + name(r.InputCell3)
	}
	s += " => " + name(r.OutputCell1) + " + " + name(r.OutputCell2)
	if r.OutputCell3 != -1 {
		s += " + " + name(r.OutputCell3)
	}
	if r.CosmeticParticle != -1 {
		s += " ^" + name(r.CosmeticParticle)
	}
	return s
}

// cellReactionBuf is a pointer+length run of CellReaction values; the
// original also carries an unused redundant length field.
type cellReactionBuf struct {
	Base remote.Ptr[CellReaction]
	_    uint32
	Len  uint32
}

// Pod marks cellReactionBuf as fixed-layout.
func (cellReactionBuf) Pod() {}

func (b cellReactionBuf) read(ref *process.Ref) ([]CellReaction, error) {
	if b.Base.IsNull() || b.Len == 0 {
		return nil, nil
	}
	return remote.ReadMultipleAt[CellReaction](ref, remote.RawPtr(b.Base), int(b.Len))
}

// ReactionLookupTable is a 2D grid of reaction buckets, indexed by
// (row, material id) for the lookup path, or scanned row-major for
// AllReactions.
type ReactionLookupTable struct {
	Width, Height, Len uint32
	_                  [5 * 4]byte
	Storage            remote.Ptr[cellReactionBuf]
	_                  uint32
	_                  uint32
}

// Pod marks ReactionLookupTable as fixed-layout.
func (ReactionLookupTable) Pod() {}

// Lookup finds every reaction bucket across all rows whose column is
// materialID.
func (t ReactionLookupTable) Lookup(ref *process.Ref, materialID uint32) ([]CellReaction, error) {
	var result []CellReaction
	bufSize := uint32(binary.Size(cellReactionBuf{}))
	for i := uint32(0); i < t.Height; i++ {
		idx := t.Width*i + materialID
		bufAddr := remote.RawPtr(t.Storage.Addr() + idx*bufSize)
		buf, err := remote.ReadAt[cellReactionBuf](ref, bufAddr)
		if err != nil {
			return nil, err
		}
		reactions, err := buf.read(ref)
		if err != nil {
			return nil, err
		}
		result = append(result, reactions...)
	}
	return result, nil
}

// AllReactions reads every reaction bucket in the table.
func (t ReactionLookupTable) AllReactions(ref *process.Ref) ([]CellReaction, error) {
	if t.Len == 0 {
		return nil, nil
	}
	bufs, err := remote.ReadMultipleAt[cellReactionBuf](ref, remote.RawPtr(t.Storage), int(t.Len))
	if err != nil {
		return nil, err
	}
	var result []CellReaction
	for _, b := range bufs {
		reactions, err := b.read(ref)
		if err != nil {
			return nil, err
		}
		result = append(result, reactions...)
	}
	return result, nil
}

// CellFactory is the engine's material registry: one CellData per
// registered material, indexed by material id, plus the reaction
// tables the simulation consults every tick.
type CellFactory struct {
	_                    uint32
	MaterialIDs           remote.Vector[remote.SsoString]
	MaterialIDIndices     remote.OrderedMap[remote.SsoString, remote.U32]
	CellData              remote.Vector[CellData]
	NumberOfMaterials     uint32
	_                     uint32
	ReactionLookup        ReactionLookupTable
	FastReactionLookup    ReactionLookupTable
	ReqReactions          remote.Vector[cellReactionBuf]
	MaterialsByTag        remote.OrderedMap[remote.SsoString, remote.Vector[remote.Ptr[CellData]]]
	_                     remote.Vector[remote.Ptr[remote.Vector[remote.RawPtr]]]
	FireCellData          remote.Ptr[CellData]
	_                     [4 * 4]byte
	FireMaterialID        uint32
}

// Pod marks CellFactory as fixed-layout.
func (CellFactory) Pod() {}

// AllReactions reads every reaction in the normal, fast, and
// required-entity-file reaction tables. This can be slow — it
// performs one remote read per bucket.
func (f CellFactory) AllReactions(ref *process.Ref) ([]CellReaction, error) {
	res, err := f.ReactionLookup.AllReactions(ref)
	if err != nil {
		return nil, err
	}
	fast, err := f.FastReactionLookup.AllReactions(ref)
	if err != nil {
		return nil, err
	}
	res = append(res, fast...)

	bufs, err := f.ReqReactions.Read(ref)
	if err != nil {
		return nil, err
	}
	for _, b := range bufs {
		reactions, err := b.read(ref)
		if err != nil {
			return nil, err
		}
		res = append(res, reactions...)
	}
	return res, nil
}

// LookupReaction finds every reaction in the normal and fast tables
// whose column is input.
func (f CellFactory) LookupReaction(ref *process.Ref, input uint32) ([]CellReaction, error) {
	res, err := f.ReactionLookup.Lookup(ref, input)
	if err != nil {
		return nil, err
	}
	fast, err := f.FastReactionLookup.Lookup(ref, input)
	if err != nil {
		return nil, err
	}
	return append(res, fast...), nil
}
