package components

import "github.com/necauqua/noita-memreader/remote"

// LensValue is a value carried alongside an always-present, unused
// secondary integer the engine stores next to it.
type LensValue[T process16] struct {
	Value   T
	_       uint32
	Unknown int32
}

// process16 documents the constraint LensValue needs: a 4-byte int32
// or float32 payload. A real process.Pod constraint would also work but
// this keeps the components package decoupled from process.
type process16 interface {
	~int32 | ~float32
}

// Pod marks LensValue as fixed-layout.
func (LensValue[T]) Pod() {}

// LensValueBool is the boolean-payload form of LensValue.
type LensValueBool struct {
	Value   remote.PadBool3
	Unknown int32
}

// Pod marks LensValueBool as fixed-layout.
func (LensValueBool) Pod() {}

// ConfigPendingPortal is one portal the world state is tracking
// between its activation and its resolution.
type ConfigPendingPortal struct {
	Vftable        remote.Vftable
	Position       Vec2
	TargetPosition Vec2
	ID             uint32
	TargetID       uint32
	IsAtHome       remote.PadBool3
	TargetBiomeName remote.SsoString
	Entity         remote.RawPtr
}

// Pod marks ConfigPendingPortal as fixed-layout.
func (ConfigPendingPortal) Pod() {}

// ConfigNpcParty is a group of NPC entities traveling together.
type ConfigNpcParty struct {
	Vftable       remote.Vftable
	Position      Vec2
	EntitiesExist remote.PadBool3
	Direction     int32
	Speed         float32
	MemberEntities remote.Vector[remote.U32]
	MemberFiles    remote.Vector[remote.SsoString]
}

// Pod marks ConfigNpcParty as fixed-layout.
func (ConfigNpcParty) Pod() {}

// ConfigCutThroughWorld is a persistent cut carved through the world
// (e.g. by an explosion that punches a permanent hole).
type ConfigCutThroughWorld struct {
	Vftable              remote.Vftable
	X, YMin, YMax         int32
	Radius               int32
	EdgeDarkeningWidth   int32
	GlobalID             uint32
}

// Pod marks ConfigCutThroughWorld as fixed-layout.
func (ConfigCutThroughWorld) Pod() {}

// WorldStateComponent is the engine's single world-wide run state:
// time of day, weather, active perks, and a handful of Lua-editable
// globals.
type WorldStateComponent struct {
	IsInitialized               remote.PadBool3
	Time                        float32
	TimeTotal                   float32
	TimeDt                      float32
	DayCount                    int32
	Rain                        float32
	RainTarget                  float32
	Fog                         float32
	FogTarget                   float32
	IntroWeather                remote.PadBool3
	Wind                        float32
	WindSpeed                   float32
	WindSpeedSinT               float32
	WindSpeedSin                float32
	Clouds01Target              float32
	Clouds02Target              float32
	GradientSkyAlphaTarget      float32
	SkySunsetAlphaTarget        float32
	LightningCount              int32
	PlayerSpawnLocation         Vec2
	LuaGlobals                  remote.OrderedMap[remote.SsoString, remote.SsoString]
	PendingPortals              remote.Vector[ConfigPendingPortal]
	NextPortalID                uint32
	ApparitionsPerLevel         remote.Vector[remote.I32]
	NpcParties                  remote.Vector[ConfigNpcParty]
	SessionStatFile             remote.SsoString
	OrbsFoundThisrun            remote.Vector[remote.I32]
	Flags                       remote.Vector[remote.SsoString]
	ChangedMaterials            remote.Vector[remote.SsoString]
	PlayerPolymorphCount        int32
	PlayerPolymorphRandomCount  int32
	PlayerDidInfiniteSpellCount int32
	PlayerDidDamageOver1Milj    int32
	PlayerLivingWithMinusHP     int32
	GlobalGenomeRelationsModifier float32
	ModsHaveBeenActiveDuringThisRun remote.ByteBool
	TwitchHasBeenActiveDuringThisRun remote.PadBool2
	NextCutThroughWorldID       uint32
	CutsThroughWorld            remote.Vector[ConfigCutThroughWorld]
	GoreMultiplier              LensValue[int32]
	TrickKillGoldMultiplier     LensValue[int32]
	DamageFlashMultiplier       LensValue[float32]
	OpenFogOfWarEverywhere      LensValueBool
	ConsumeActions              LensValueBool
	PerkInfiniteSpells          remote.ByteBool
	PerkTrickKillsBloodMoney    remote.PadBool2
	PerkHPDropChance            int32
	PerkGoldIsForever           remote.ByteBool
	PerkRatsPlayerFriendly      remote.ByteBool
	EverythingToGold            remote.PadBool1
	MaterialEverythingToGold    remote.SsoString
	MaterialEverythingToGoldStatic remote.SsoString
	InfiniteGoldHappening       remote.ByteBool
	EndingHappinessHappening    remote.PadBool2
	EndingHappinessFrames       int32
	EndingHappiness             remote.PadBool3
	MFlashAlpha                 float32
	DebugLoadedFromAutosave     int32
	DebugLoadedFromOldVersion   int32
	RainTargetExtra             float32
	FogTargetExtra              float32
	PerkRatsPlayerFriendlyPrev  remote.PadBool3
}

// Pod marks WorldStateComponent as fixed-layout.
func (WorldStateComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (WorldStateComponent) ComponentName() string { return "WorldStateComponent" }
