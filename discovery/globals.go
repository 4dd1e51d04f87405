// Package discovery locates the addresses of the target's engine
// globals by pattern-matching against the machine code of known
// script-API entry points, reimplementing the original's signature-
// based discovery engine over x86-32 instructions decoded with
// golang.org/x/arch/x86/x86asm — the ecosystem's closest equivalent to
// the disassembler the original reader was built on.
package discovery

// Globals is the record of engine-global addresses discovery (or the
// known-build fast path) produces. Every field is a pointer so a rule
// that fails to match leaves it nil rather than zero — a rule failing
// never aborts the whole discovery run, it just leaves that one
// global unresolved.
type Globals struct {
	WorldSeed            *uint32
	NgCount              *uint32
	GameGlobal           *uint32
	StatsMap             *uint32
	EntityManager        *uint32
	EntityTagManager     *uint32
	ComponentTypeManager *uint32
	TranslationManager   *uint32
	Platform             *uint32
}

// Equal reports whether two Globals agree field-by-field, used by the
// known-build-agreement law: discover(image_with_timestamp(t)) ==
// known_build(t).
func (g Globals) Equal(other Globals) bool {
	return ptrEq(g.WorldSeed, other.WorldSeed) &&
		ptrEq(g.NgCount, other.NgCount) &&
		ptrEq(g.GameGlobal, other.GameGlobal) &&
		ptrEq(g.StatsMap, other.StatsMap) &&
		ptrEq(g.EntityManager, other.EntityManager) &&
		ptrEq(g.EntityTagManager, other.EntityTagManager) &&
		ptrEq(g.ComponentTypeManager, other.ComponentTypeManager) &&
		ptrEq(g.TranslationManager, other.TranslationManager) &&
		ptrEq(g.Platform, other.Platform)
}

func ptrEq(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
