package rng

// Skip advances the generator n steps without returning any of the
// intermediate values, the idiom world-generation code uses to jump
// past rolls it doesn't care about.
func (r *NoitaRng) Skip(n int) {
	for i := 0; i < n; i++ {
		r.Random()
	}
}

// InRange draws an integer in [min, max] inclusive, the generator's
// standard ranged-roll helper.
func (r *NoitaRng) InRange(min, max int32) int32 {
	return min + int32(r.Random()*float64(max-min+1))
}

// PredictChestAt reports whether a chest generated at the given world
// tile would contain a Greater Chest Orb (or, with sampo set, the
// Sampo) under world_seed — the per-tile probability test a room/chunk
// sweep would run at every candidate tile. The sweep itself (walking a
// world in a spiral around the player, one chunk at a time) is a UI
// concern and stays out of scope here.
func PredictChestAt(worldSeed uint32, x, y int32, sampo bool) bool {
	r := FromPos(worldSeed, float64(x), float64(y))
	hitsOrb := uint32(r.Random()*100001.0) == 100000
	hitsSampo := uint32(r.Random()*1001.0) == 999
	return hitsOrb && (sampo == hitsSampo)
}
