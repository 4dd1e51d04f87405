package rng

import (
	"math"
	"testing"
)

// TestFromPosDeterministic pins the RNG-determinism law: from_pos
// followed by random() must be bit-identical across repeated runs for
// the same inputs, since the float math is fixed at IEEE-754 doubles
// rather than any host-dependent narrowing.
func TestFromPosDeterministic(t *testing.T) {
	const seedPlusNg = 123456789
	const x, y = 100.5, 200.5

	r1 := FromPos(seedPlusNg, x, y)
	r2 := FromPos(seedPlusNg, x, y)

	v1 := r1.Random()
	v2 := r2.Random()
	if v1 != v2 {
		t.Fatalf("from_pos(%d, %v, %v).random() not deterministic: %v != %v", seedPlusNg, x, y, v1, v2)
	}

	// A second draw from the same stream must also match across
	// independently constructed generators.
	if r1.Random() != r2.Random() {
		t.Fatal("second random() draw diverged between identically-seeded generators")
	}
}

func TestFromPosVariesWithInputs(t *testing.T) {
	a := FromPos(1, 0, 0)
	b := FromPos(2, 0, 0)
	if a.Random() == b.Random() {
		t.Fatal("different seed_plus_ng produced identical first draw")
	}
}

func TestToIntKindaZero(t *testing.T) {
	if got := toIntKinda(0); got != 0 {
		t.Fatalf("toIntKinda(0) = %d, want 0", got)
	}
}

func TestToIntKindaNonFinite(t *testing.T) {
	got := toIntKinda(math.Inf(1))
	want := math.Float64bits(math.Copysign(0, -1))
	if got != want {
		t.Fatalf("toIntKinda(+Inf) = %#x, want %#x", got, want)
	}
}

func TestPredictChestAtDeterministic(t *testing.T) {
	a := PredictChestAt(42, 512, 1024, false)
	b := PredictChestAt(42, 512, 1024, false)
	if a != b {
		t.Fatal("PredictChestAt not deterministic for identical inputs")
	}
}
