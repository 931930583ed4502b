package index

import (
	"reflect"
	"testing"

	"github.com/jclec/hikari/internal/core/kanji"
)

// the worked example from the original tool: a mixed list where kana-only and
// latin tokens have already been filtered out upstream
var exampleWords = []string{"今朝", "今晩", "朝食", "食べる", "楽しい"}

func TestSeparate_Example(t *testing.T) {
	comps := Separate(exampleWords)

	want := map[rune][]string{
		'今': {"今晩", "今朝"},
		'朝': {"今朝", "朝食"},
		'晩': {"今晩"},
		'食': {"朝食", "食べる"},
		'楽': {"楽しい"},
	}
	if len(comps) != len(want) {
		t.Fatalf("got %d component keys, want %d", len(comps), len(want))
	}
	for r, ws := range want {
		set, ok := comps[r]
		if !ok {
			t.Fatalf("missing component %q", r)
		}
		if len(set) != len(ws) {
			t.Fatalf("component %q: got %d words, want %d", r, len(set), len(ws))
		}
		for _, w := range ws {
			if _, ok := set[w]; !ok {
				t.Errorf("component %q missing word %q", r, w)
			}
		}
	}
}

func TestSeparate_Invariants(t *testing.T) {
	comps := Separate(exampleWords)

	for r, set := range comps {
		if !kanji.IsKanji(r) {
			t.Errorf("non-kanji key %q", r)
		}
		if len(set) == 0 {
			t.Errorf("empty set under %q", r)
		}
		for w := range set {
			found := false
			for _, c := range w {
				if c == r {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("word %q indexed under %q but does not contain it", w, r)
			}
		}
	}

	// completeness: every kanji of every word is a key holding that word
	for _, w := range exampleWords {
		for _, c := range kanji.Components(w) {
			if _, ok := comps[c][w]; !ok {
				t.Errorf("word %q missing under its component %q", w, c)
			}
		}
	}
}

func TestSeparate_KanjiFreeWordContributesNothing(t *testing.T) {
	// not valid input per the loaders, but the build is total anyway
	comps := Separate([]string{"かな", "abc", ""})
	if len(comps) != 0 {
		t.Fatalf("expected no keys, got %d", len(comps))
	}
}

func TestRelate_Example(t *testing.T) {
	comps := Separate(exampleWords)
	rels := Relate(exampleWords, comps)

	want := map[string][]string{
		"今朝":  {"今晩", "朝食"},
		"今晩":  {"今朝"},
		"朝食":  {"今朝", "食べる"},
		"食べる": {"朝食"},
		"楽しい": {},
	}
	if len(rels) != len(want) {
		t.Fatalf("got %d relation keys, want %d", len(rels), len(want))
	}
	for w, others := range want {
		set, ok := rels[w]
		if !ok {
			t.Fatalf("missing relation key %q", w)
		}
		if len(set) != len(others) {
			t.Fatalf("relations of %q: got %d, want %d", w, len(set), len(others))
		}
		for _, o := range others {
			if _, ok := set[o]; !ok {
				t.Errorf("relations of %q missing %q", w, o)
			}
		}
	}
}

func TestRelate_NoSelfRelation(t *testing.T) {
	comps := Separate(exampleWords)
	rels := Relate(exampleWords, comps)
	for w, set := range rels {
		if _, ok := set[w]; ok {
			t.Errorf("%q relates to itself", w)
		}
	}
}

func TestRelate_Symmetry(t *testing.T) {
	comps := Separate(exampleWords)
	rels := Relate(exampleWords, comps)
	for w, set := range rels {
		for o := range set {
			if _, ok := rels[o][w]; !ok {
				t.Errorf("asymmetry: %q in relations of %q but not vice versa", o, w)
			}
		}
	}
}

func TestRelate_IsolatedWordRetained(t *testing.T) {
	words := []string{"今"}
	rels := Relate(words, Separate(words))
	set, ok := rels["今"]
	if !ok {
		t.Fatal("isolated word dropped from relation index")
	}
	if len(set) != 0 {
		t.Fatalf("isolated word has %d relations, want 0", len(set))
	}
}

func TestRelate_SingleKanjiWordUnions(t *testing.T) {
	// a 1-rune word must be its own component entry and union into others
	words := []string{"今", "今朝"}
	comps := Separate(words)
	if len(comps['今']) != 2 {
		t.Fatalf("component 今 holds %d words, want 2", len(comps['今']))
	}
	rels := Relate(words, comps)
	if _, ok := rels["今朝"]["今"]; !ok {
		t.Error("今朝 should relate to 今")
	}
	if _, ok := rels["今"]["今朝"]; !ok {
		t.Error("今 should relate to 今朝")
	}
}

func TestRelate_DuplicateInputAbsorbed(t *testing.T) {
	words := []string{"今朝", "今朝", "今晩"}
	comps := Separate(words)
	if len(comps['今']) != 2 {
		t.Fatalf("duplicate word leaked into component set: %v", comps['今'])
	}

	rels := Relate(words, comps)
	// one relation key per distinct word
	if len(rels) != 2 {
		t.Fatalf("got %d relation keys, want 2", len(rels))
	}
	// self removal must hold even though the duplicate put 今朝 in its own union
	if _, ok := rels["今朝"]["今朝"]; ok {
		t.Error("duplicate input reintroduced a self-relation")
	}
	if len(rels["今朝"]) != 1 {
		t.Fatalf("relations of 今朝: %v, want only 今晩", rels["今朝"])
	}
}

// relateScan is the reference strategy: scan every component entry and test
// membership in the word. Slower but definitionally what Relate must equal
func relateScan(words []string, comps Components) Relations {
	rels := make(Relations, len(words))
	for _, w := range words {
		set := make(WordSet)
		for r, members := range comps {
			contained := false
			for _, c := range w {
				if c == r {
					contained = true
					break
				}
			}
			if !contained {
				continue
			}
			for o := range members {
				set[o] = struct{}{}
			}
		}
		delete(set, w)
		rels[w] = set
	}
	return rels
}

func TestRelate_EquivalentToFullScan(t *testing.T) {
	lists := [][]string{
		exampleWords,
		{"今"},
		{"今朝", "今朝", "朝"},
		{"日本語", "語学", "学校", "校長", "長い", "日"},
		{},
	}
	for _, words := range lists {
		comps := Separate(words)
		got := Relate(words, comps)
		want := relateScan(words, comps)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("strategies diverge for %v:\n direct: %v\n scan:   %v", words, got, want)
		}
	}
}
