package index

import (
	"encoding/json"
	"io"
	"sort"
)

// Document is the serialization shape handed to sinks
// inner slices are sorted by code point so output is byte-identical across runs
type Document struct {
	Components   map[string][]string `json:"components"`
	RelatedWords map[string][]string `json:"related_words"`
}

// Normalize converts both indexes into a Document with sorted values
func Normalize(comps Components, rels Relations) *Document {
	doc := &Document{
		Components:   make(map[string][]string, len(comps)),
		RelatedWords: make(map[string][]string, len(rels)),
	}
	for r, set := range comps {
		doc.Components[string(r)] = sorted(set)
	}
	for w, set := range rels {
		doc.RelatedWords[w] = sorted(set)
	}
	return doc
}

// Encode writes the document as UTF-8 JSON with non-ASCII emitted literally
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(d)
}

// WordsFor returns the sorted words containing the given kanji, if indexed
func (d *Document) WordsFor(k string) ([]string, bool) {
	ws, ok := d.Components[k]
	return ws, ok
}

// RelatedTo returns the sorted relations of word, if word was processed
func (d *Document) RelatedTo(word string) ([]string, bool) {
	ws, ok := d.RelatedWords[word]
	return ws, ok
}

// sorted flattens a set into a slice ordered by code point
func sorted(set WordSet) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
