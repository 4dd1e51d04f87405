package noita

import "github.com/necauqua/noita-memreader/remote"

// GameStats is one bucket of run statistics (session/highest/global/
// previous-best), matching the in-game stats screen's categories.
type GameStats struct {
	Vftable         remote.Vftable
	Dead            remote.PadBool3
	DeathCount      uint32
	Streaks         uint32
	WorldSeed       uint32
	KilledBy        remote.SsoString
	KilledByExtra   remote.SsoString
	DeathPos        Vec2
	_               uint32
	Playtime        float64
	PlaytimeStr     remote.SsoString
	PlacesVisited   uint32
	EnemiesKilled   uint32
	HeartContainers uint32
	_               uint32
	HP              int64
	Gold            int64
	GoldAll         int64
	GoldInfinite    remote.PadBool3
	Items           uint32
	ProjectilesShot uint32
	Kicks           uint32
	DamageTaken     float64
	Healed          float64
	Teleports       uint32
	WandsEdited     uint32
	BiomesVisited   uint32
	_               uint32
}

// Pod marks GameStats as fixed-layout.
func (GameStats) Pod() {}

// GlobalStats is the engine's single stats-tracking singleton.
type GlobalStats struct {
	Vftable            remote.Vftable
	StatsVersion       uint32
	DebugTracker       uint32
	Debug              remote.PadBool3
	DebugResetCounter  uint32
	FixStatsFlag       remote.ByteBool
	SessionDead        remote.PadBool2
	KeyValueStats      remote.OrderedMap[remote.SsoString, remote.U32]
	Session            GameStats
	Highest            GameStats
	Global             GameStats
	PrevBest           GameStats
}

// Pod marks GlobalStats as fixed-layout.
func (GlobalStats) Pod() {}
