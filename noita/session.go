package noita

import (
	"fmt"

	"github.com/necauqua/noita-memreader/discovery"
	"github.com/necauqua/noita-memreader/noita/cellfactory"
	"github.com/necauqua/noita-memreader/noita/components"
	"github.com/necauqua/noita-memreader/process"
	"github.com/necauqua/noita-memreader/remote"
	"github.com/necauqua/noita-memreader/vfs"
)

// Seed is a run's two-part seed: the visible world seed and the
// new-game-plus cycle count, which together determine every
// deterministic outcome in a run.
type Seed struct {
	WorldSeed uint32
	NgCount   uint32
}

// String renders the seed the way the game displays it.
func (s Seed) String() string { return fmt.Sprintf("%d+%d", s.WorldSeed, s.NgCount) }

// Sum combines the two halves into the single integer some randomness
// derivations key off of, wrapping on overflow like the engine does.
func (s Seed) Sum() uint32 { return s.WorldSeed + s.NgCount }

// PlayerState distinguishes which tagged entity get_player actually
// found, since the player can be a polymorphed or cessated form
// instead of the normal player_unit entity.
type PlayerState int

const (
	PlayerNormal PlayerState = iota
	PlayerPolymorphed
	PlayerCessated
)

// Session is a live connection to a running game: the discovered
// global addresses plus every host-side cache built on top of them
// (resolved tag indices, material names, fetched files).
type Session struct {
	ref *process.Ref
	g   discovery.Globals

	tagCache          map[string]*int
	noPlayerNotPolied bool

	materials        []string
	materialUINames  []string
	files            map[string][]byte
}

// NewSession wraps a connected process and its discovered globals.
func NewSession(ref *process.Ref, g discovery.Globals) *Session {
	return &Session{
		ref:      ref,
		g:        g,
		tagCache: make(map[string]*int),
		files:    make(map[string][]byte),
	}
}

// Proc returns the underlying process handle.
func (s *Session) Proc() *process.Ref { return s.ref }

func notFound(format string, args ...any) error {
	return fmt.Errorf("noita: "+format, args...)
}

// readSingle reads a plain value stored at a discovered single-level
// global address.
func readSingle[T process.Pod](ref *process.Ref, addr *uint32, name string) (T, error) {
	var zero T
	if addr == nil {
		return zero, notFound("no %s pointer", name)
	}
	return process.Read[T](ref, *addr)
}

// readDouble reads a value behind a discovered global address that
// itself holds a pointer to the value — the common case for the
// engine's manager singletons, which are reached through one extra
// level of indirection.
func readDouble[T process.Pod](ref *process.Ref, addr *uint32, name string) (T, error) {
	var zero T
	if addr == nil {
		return zero, notFound("no %s pointer", name)
	}
	inner, err := process.Read[remote.Ptr[T]](ref, *addr)
	if err != nil {
		return zero, err
	}
	return inner.Read(ref)
}

// ReadSeed reads the run's seed, or (nil, nil) if no run is active
// (the world seed address reads as zero before a game is loaded).
func (s *Session) ReadSeed() (*Seed, error) {
	worldSeed, err := readSingle[remote.U32](s.ref, s.g.WorldSeed, "world_seed")
	if err != nil {
		return nil, err
	}
	if worldSeed == 0 {
		return nil, nil
	}
	ngCount, err := readSingle[remote.U32](s.ref, s.g.NgCount, "ng_count")
	if err != nil {
		return nil, err
	}
	return &Seed{WorldSeed: uint32(worldSeed), NgCount: uint32(ngCount)}, nil
}

// ReadStats reads the stats-tracking singleton.
func (s *Session) ReadStats() (GlobalStats, error) {
	return readSingle[GlobalStats](s.ref, s.g.StatsMap, "stats_map")
}

// ReadGameGlobal reads the engine's root per-run singleton.
func (s *Session) ReadGameGlobal() (GameGlobal, error) {
	return readDouble[GameGlobal](s.ref, s.g.GameGlobal, "game_global")
}

// ReadCellFactory reads the material registry, or (nil, nil) if the
// current run hasn't loaded one yet.
func (s *Session) ReadCellFactory() (*cellfactory.CellFactory, error) {
	gg, err := s.ReadGameGlobal()
	if err != nil {
		return nil, err
	}
	if gg.CellFactory.IsNull() {
		return nil, nil
	}
	cf, err := gg.CellFactory.Read(s.ref)
	if err != nil {
		return nil, err
	}
	return &cf, nil
}

// ReadTranslationManager reads the localization singleton.
func (s *Session) ReadTranslationManager() (TranslationManager, error) {
	return readSingle[TranslationManager](s.ref, s.g.TranslationManager, "translation_manager")
}

// ReadPlatform reads the OS-abstraction singleton.
func (s *Session) ReadPlatform() (vfs.PlatformWin, error) {
	return readSingle[vfs.PlatformWin](s.ref, s.g.Platform, "platform")
}

// GetFile fetches one file's bytes from the engine's virtual
// filesystem, trying every registered device in turn. Results are
// cached host-side by path.
func (s *Session) GetFile(path string) ([]byte, error) {
	if data, ok := s.files[path]; ok {
		return data, nil
	}
	platform, err := s.ReadPlatform()
	if err != nil {
		return nil, err
	}
	fs, err := platform.FileSystem.Read(s.ref)
	if err != nil {
		return nil, err
	}
	data, err := vfs.GetFile(s.ref, fs, path)
	if err != nil {
		return nil, err
	}
	s.files[path] = data
	return data, nil
}

// CachedTranslations is a host-only post-read snapshot of one
// language's string table and its key index, built once by
// Translations so Translate does no further remote reads.
type CachedTranslations struct {
	keyIndices           map[string]uint32
	currentLangStrings   []string
}

// IsEmpty reports whether the snapshot has no resolvable keys.
func (t CachedTranslations) IsEmpty() bool { return len(t.keyIndices) == 0 }

// Translate resolves key against the snapshot, returning key itself
// unresolved. titleCase title-cases the result the way the in-game UI
// does for e.g. item names.
func (t CachedTranslations) Translate(key string, titleCase bool) string {
	idx, ok := t.keyIndices[key]
	if !ok || int(idx) >= len(t.currentLangStrings) {
		return key
	}
	s := t.currentLangStrings[idx]
	if titleCase {
		return toTitleCase(s)
	}
	return s
}

func toTitleCase(s string) string {
	runes := []rune(s)
	atWordStart := true
	for i, r := range runes {
		switch {
		case r == ' ' || r == '-' || r == '_':
			atWordStart = true
		case atWordStart:
			runes[i] = toUpperRune(r)
			atWordStart = false
		default:
			runes[i] = toLowerRune(r)
		}
	}
	return string(runes)
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Translations builds a host-side snapshot of the current language's
// strings. Building it walks the whole key map and decodes every
// string of the current language through the process once; Translate
// afterwards is pure host-side lookup.
func (s *Session) Translations() (CachedTranslations, error) {
	manager, err := s.ReadTranslationManager()
	if err != nil {
		return CachedTranslations{}, err
	}
	pairs, err := manager.KeyToIndex.ReadAll(s.ref)
	if err != nil {
		return CachedTranslations{}, err
	}
	keyIndices := make(map[string]uint32, len(pairs))
	for _, p := range pairs {
		key, err := p.Key.Decode(s.ref)
		if err != nil {
			return CachedTranslations{}, err
		}
		keyIndices[key] = uint32(p.Value)
	}

	lang, err := manager.Languages.Get(s.ref, int(manager.CurrentLangIdx))
	if err != nil {
		return CachedTranslations{}, notFound("current language not found")
	}
	strings, err := lang.Strings.Read(s.ref)
	if err != nil {
		return CachedTranslations{}, err
	}
	currentLangStrings := make([]string, len(strings))
	for i, ss := range strings {
		decoded, err := ss.Decode(s.ref)
		if err != nil {
			return CachedTranslations{}, err
		}
		currentLangStrings[i] = decoded
	}

	return CachedTranslations{keyIndices: keyIndices, currentLangStrings: currentLangStrings}, nil
}

// GetWorldState fetches the run-wide world state component off its
// single tagged entity, or (nil, nil) if the tag or entity don't
// exist yet.
func (s *Session) GetWorldState() (*components.WorldStateComponent, error) {
	idx, err := s.GetEntityTagIndex("world_state")
	if err != nil {
		return nil, err
	}
	if idx == nil {
		return nil, nil
	}
	entity, err := s.GetFirstTaggedEntity(*idx)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}
	store, err := ComponentStore[components.WorldStateComponent](s)
	if err != nil {
		return nil, err
	}
	return store.Get(*entity)
}

// GetPlayer finds the current player entity and which of the normal,
// polymorphed, or cessated forms it is. It returns (nil, _, nil) if
// there is definitively no player (the player_unit tag doesn't exist
// at all yet) or none of the three tagged entities currently exist.
func (s *Session) GetPlayer() (*Entity, PlayerState, error) {
	playerIdx, err := s.GetEntityTagIndex("player_unit")
	if err != nil {
		return nil, 0, err
	}
	if playerIdx == nil {
		return nil, 0, nil
	}

	if player, err := s.GetFirstTaggedEntity(*playerIdx); err != nil {
		return nil, 0, err
	} else if player != nil {
		s.noPlayerNotPolied = false
		return player, PlayerNormal, nil
	}

	if s.noPlayerNotPolied {
		return nil, 0, nil
	}

	polyIdx, err := s.GetEntityTagIndex("polymorphed_player")
	if err != nil {
		return nil, 0, err
	}
	if polyIdx != nil {
		if e, err := s.GetFirstTaggedEntity(*polyIdx); err != nil {
			return nil, 0, err
		} else if e != nil {
			return e, PlayerPolymorphed, nil
		}
	}

	cessIdx, err := s.GetEntityTagIndex("polymorphed_cessation")
	if err != nil {
		return nil, 0, err
	}
	if cessIdx != nil {
		if e, err := s.GetFirstTaggedEntity(*cessIdx); err != nil {
			return nil, 0, err
		} else if e != nil {
			return e, PlayerCessated, nil
		}
	}

	s.noPlayerNotPolied = true
	return nil, 0, nil
}

// GetFirstTaggedEntity returns the first live entity in the bucket
// for tagIndex, or nil if the bucket is empty or out of range.
func (s *Session) GetFirstTaggedEntity(tagIndex int) (*Entity, error) {
	em, err := s.ReadEntityManager()
	if err != nil {
		return nil, err
	}
	if tagIndex < 0 || tagIndex >= em.EntityBuckets.Len() {
		return nil, nil
	}
	bucket, err := em.EntityBuckets.Get(s.ref, tagIndex)
	if err != nil {
		return nil, err
	}
	ptrs, err := bucket.Read(s.ref)
	if err != nil {
		return nil, err
	}
	for _, p := range ptrs {
		if p.IsNull() {
			continue
		}
		e, err := ReadEntity(s.ref, p.Addr())
		if err != nil {
			return nil, err
		}
		return &e, nil
	}
	return nil, nil
}

// GetEntityTagIndex resolves a tag name to its numeric index, caching
// both hits and misses so a tag that doesn't exist yet in the current
// run isn't looked up again on every call.
func (s *Session) GetEntityTagIndex(tag string) (*int, error) {
	if idx, ok := s.tagCache[tag]; ok {
		return idx, nil
	}

	tagManager, err := s.ReadEntityTagManager()
	if err != nil {
		return nil, err
	}
	value, found, err := remote.GetByStringKey[remote.Byte](tagManager.TagIndices, s.ref, tag)
	if err != nil {
		return nil, err
	}

	var idx *int
	if found {
		v := int(value)
		idx = &v
	}
	s.tagCache[tag] = idx
	return idx, nil
}

// ReadEntityManager reads the entity registry singleton.
func (s *Session) ReadEntityManager() (EntityManager, error) {
	return readDouble[EntityManager](s.ref, s.g.EntityManager, "entity_manager")
}

// ReadEntityTagManager reads the tag registry singleton.
func (s *Session) ReadEntityTagManager() (TagManager, error) {
	return readDouble[TagManager](s.ref, s.g.EntityTagManager, "entity_tag_manager")
}

// HasTag reports whether entity carries tag, resolving tag to an
// index through the same cache GetEntityTagIndex uses.
func (s *Session) HasTag(entity Entity, tag string) (bool, error) {
	idx, err := s.GetEntityTagIndex(tag)
	if err != nil {
		return false, err
	}
	return entity.HasTag(idx), nil
}

// ReadMaterials reads the material id table fresh from the process.
func (s *Session) ReadMaterials() ([]string, error) {
	cf, err := s.ReadCellFactory()
	if err != nil {
		return nil, err
	}
	if cf == nil {
		return nil, nil
	}
	names, err := cf.MaterialIDs.Read(s.ref)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(names))
	for i, n := range names {
		decoded, err := n.Decode(s.ref)
		if err != nil {
			return nil, err
		}
		out[i] = decoded
	}
	return out, nil
}

// ReadCellData reads every registered material's full configuration.
func (s *Session) ReadCellData() ([]cellfactory.CellData, error) {
	cf, err := s.ReadCellFactory()
	if err != nil {
		return nil, err
	}
	if cf == nil {
		return nil, nil
	}
	return cf.CellData.Truncated(s.ref, int(cf.NumberOfMaterials))
}

// Materials returns the material id table, reading and caching it on
// first use.
func (s *Session) Materials() ([]string, error) {
	if len(s.materials) == 0 {
		materials, err := s.ReadMaterials()
		if err != nil {
			return nil, err
		}
		s.materials = materials
	}
	return s.materials, nil
}

// GetMaterialName resolves a material id to its internal name.
func (s *Session) GetMaterialName(index uint32) (string, bool, error) {
	materials, err := s.Materials()
	if err != nil {
		return "", false, err
	}
	if int(index) >= len(materials) {
		return "", false, nil
	}
	return materials[index], true, nil
}

// GetMaterialUIName resolves a material id to its display name,
// reading and caching every material's UI name table on first use.
func (s *Session) GetMaterialUIName(index uint32) (string, bool, error) {
	if len(s.materialUINames) == 0 {
		descs, err := s.ReadCellData()
		if err != nil {
			return "", false, err
		}
		names := make([]string, len(descs))
		for i, d := range descs {
			decoded, err := d.UIName.Decode(s.ref)
			if err != nil {
				return "", false, err
			}
			names[i] = decoded
		}
		s.materialUINames = names
	}
	if int(index) >= len(s.materialUINames) {
		return "", false, nil
	}
	return s.materialUINames[index], true, nil
}

// ReadComponentTypeManager reads the component-type registry
// singleton.
func (s *Session) ReadComponentTypeManager() (ComponentTypeManager, error) {
	return readSingle[ComponentTypeManager](s.ref, s.g.ComponentTypeManager, "component_type_manager")
}

// ComponentStoreHandle binds a component payload type to its buffer
// address, letting repeated Get calls skip the type->buffer lookup.
type ComponentStoreHandle[T interface {
	process.Pod
	ComponentName
}] struct {
	ref    *process.Ref
	buffer remote.Ptr[ComponentBuffer]
}

// ComponentStore resolves T's registered name to its component
// buffer, ready for repeated Get calls.
func ComponentStore[T interface {
	process.Pod
	ComponentName
}](s *Session) (ComponentStoreHandle[T], error) {
	var zero T
	ctm, err := s.ReadComponentTypeManager()
	if err != nil {
		return ComponentStoreHandle[T]{}, err
	}
	index, found, err := remote.GetByStringKey[remote.U32](ctm.ComponentIndices, s.ref, zero.ComponentName())
	if err != nil {
		return ComponentStoreHandle[T]{}, err
	}
	if !found {
		return ComponentStoreHandle[T]{}, notFound("component type index not found for %q", zero.ComponentName())
	}

	em, err := s.ReadEntityManager()
	if err != nil {
		return ComponentStoreHandle[T]{}, err
	}
	buffer, err := em.ComponentBuffers.Get(s.ref, int(index))
	if err != nil {
		return ComponentStoreHandle[T]{}, notFound("component buffer not found for index %d (%s)", index, zero.ComponentName())
	}

	return ComponentStoreHandle[T]{ref: s.ref, buffer: buffer}, nil
}

// GetFull reads entity's full component record, including the shared
// header (enabled flag, tags, instance id). Returns nil if the entity
// doesn't carry this component.
func (h ComponentStoreHandle[T]) GetFull(entity Entity) (*Component[T], error) {
	buffer, err := h.buffer.Read(h.ref)
	if err != nil {
		return nil, err
	}

	idx := buffer.DefaultIndex
	if i, err := buffer.Indices.Get(h.ref, int(entity.CompIdx)); err == nil {
		idx = uint32(i)
	}

	ptr, err := buffer.Storage.Get(h.ref, int(idx))
	if err != nil {
		return nil, nil
	}
	if ptr.IsNull() {
		return nil, nil
	}

	c, err := remote.ReadAt[Component[T]](h.ref, ptr)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get reads just entity's component payload, discarding the shared
// header.
func (h ComponentStoreHandle[T]) Get(entity Entity) (*T, error) {
	full, err := h.GetFull(entity)
	if err != nil || full == nil {
		return nil, err
	}
	return &full.Data, nil
}

// GetCameraPos reads the active camera's world-space center.
func (s *Session) GetCameraPos() (Vec2, error) {
	gg, err := s.ReadGameGlobal()
	if err != nil {
		return Vec2{}, err
	}
	cam, err := gg.Camera.Read(s.ref)
	if err != nil {
		return Vec2{}, err
	}
	return cam.Pos(), nil
}

// GetCameraBounds reads the camera's current clamp rectangle as
// [x, y, w, h].
func (s *Session) GetCameraBounds() ([4]int32, error) {
	gg, err := s.ReadGameGlobal()
	if err != nil {
		return [4]int32{}, err
	}
	cam, err := gg.Camera.Read(s.ref)
	if err != nil {
		return [4]int32{}, err
	}
	bounds, err := cam.Bounds.Read(s.ref)
	if err != nil {
		return [4]int32{}, err
	}
	return [4]int32{bounds.X, bounds.Y, bounds.W, bounds.H}, nil
}
