package noita

import "testing"

func TestSeedStringAndSum(t *testing.T) {
	s := Seed{WorldSeed: 123456, NgCount: 2}
	if got, want := s.String(), "123456+2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := s.Sum(), uint32(123458); got != want {
		t.Errorf("Sum() = %d, want %d", got, want)
	}
}

func TestSeedSumWraps(t *testing.T) {
	s := Seed{WorldSeed: ^uint32(0), NgCount: 1}
	if got, want := s.Sum(), uint32(0); got != want {
		t.Errorf("Sum() = %d, want %d (wraparound)", got, want)
	}
}

func TestCachedTranslationsIsEmpty(t *testing.T) {
	var empty CachedTranslations
	if !empty.IsEmpty() {
		t.Errorf("zero-value CachedTranslations should be empty")
	}

	full := CachedTranslations{
		keyIndices:         map[string]uint32{"$item_name": 0},
		currentLangStrings: []string{"fire sword"},
	}
	if full.IsEmpty() {
		t.Errorf("CachedTranslations with a resolvable key should not be empty")
	}
}

func TestCachedTranslationsTranslate(t *testing.T) {
	ct := CachedTranslations{
		keyIndices:         map[string]uint32{"$item_name": 0, "$unresolved_index": 5},
		currentLangStrings: []string{"fire sword and shield"},
	}

	if got, want := ct.Translate("$item_name", false), "fire sword and shield"; got != want {
		t.Errorf("Translate(no title case) = %q, want %q", got, want)
	}
	if got, want := ct.Translate("$item_name", true), "Fire Sword And Shield"; got != want {
		t.Errorf("Translate(title case) = %q, want %q", got, want)
	}
	if got, want := ct.Translate("$missing_key", true), "$missing_key"; got != want {
		t.Errorf("Translate(missing key) = %q, want %q (key itself)", got, want)
	}
	if got, want := ct.Translate("$unresolved_index", true), "$unresolved_index"; got != want {
		t.Errorf("Translate(out-of-range index) = %q, want %q (key itself)", got, want)
	}
}

func TestToTitleCaseWordBoundaries(t *testing.T) {
	cases := map[string]string{
		"fire sword":      "Fire Sword",
		"UNSTABLE_POTION": "Unstable_Potion",
		"lukki-egg sac":   "Lukki-Egg Sac",
		"":                "",
		"a":               "A",
	}
	for in, want := range cases {
		if got := toTitleCase(in); got != want {
			t.Errorf("toTitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetEntityTagIndexCachesMiss(t *testing.T) {
	s := &Session{tagCache: map[string]*int{"nonexistent_tag": nil}}
	idx, err := s.GetEntityTagIndex("nonexistent_tag")
	if err != nil {
		t.Fatalf("GetEntityTagIndex: %v", err)
	}
	if idx != nil {
		t.Errorf("expected cached miss to return nil index, got %v", *idx)
	}
}

func TestGetEntityTagIndexCachesHit(t *testing.T) {
	cached := 7
	s := &Session{tagCache: map[string]*int{"player_unit": &cached}}
	idx, err := s.GetEntityTagIndex("player_unit")
	if err != nil {
		t.Fatalf("GetEntityTagIndex: %v", err)
	}
	if idx == nil || *idx != 7 {
		t.Errorf("GetEntityTagIndex = %v, want 7", idx)
	}
}
