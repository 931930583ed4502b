// Package index derives the component and relation indexes over a word list
//
// Internal containers are unordered sets; a total order is imposed only at
// the serialization boundary (Normalize). Both builds are total functions
// over any slice of strings, including empty and kanji-free entries
package index

import (
	"github.com/jclec/hikari/internal/core/kanji"
)

// WordSet is an unordered set of words
type WordSet map[string]struct{}

// Components maps a kanji to the set of words containing it
// every key is a kanji; every value set is non-empty; a word appears under
// each distinct kanji it contains
type Components map[rune]WordSet

// Relations maps a word to the set of other words sharing any kanji with it
// the domain is the deduped set of input words; empty sets are retained
type Relations map[string]WordSet

// Separate groups words by their component kanji
// duplicate words are absorbed by set semantics; a word with no kanji
// contributes no keys
func Separate(words []string) Components {
	comps := make(Components)
	for _, w := range words {
		for _, r := range w {
			if !kanji.IsKanji(r) {
				continue
			}
			set, ok := comps[r]
			if !ok {
				set = make(WordSet)
				comps[r] = set
			}
			set[w] = struct{}{}
		}
	}
	return comps
}

// Relate links each word to every other word sharing at least one kanji
//
// Each word's set is the union of comps[c] over the word's own distinct
// kanji, looked up directly, then the word itself is removed. Removal of an
// absent element is a no-op, which keeps duplicate input words harmless
func Relate(words []string, comps Components) Relations {
	rels := make(Relations, len(words))
	for _, w := range words {
		rels[w] = RelatedTo(w, comps)
	}
	return rels
}

// RelatedTo computes one word's relation set against a finished Components
// safe for concurrent use: comps is read-only here
func RelatedTo(w string, comps Components) WordSet {
	set := make(WordSet)
	for _, r := range kanji.Components(w) {
		for other := range comps[r] {
			set[other] = struct{}{}
		}
	}
	delete(set, w)
	return set
}
