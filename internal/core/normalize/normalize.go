// Package normalize provides a deterministic cleaner for raw input tokens
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization (folds compatibility and fullwidth forms)
// 3 Remove format chars ZWJ ZWNJ FEFF etc
// 4 Trim surrounding whitespace
//
// Already-clean kanji words pass through unchanged, so index semantics are
// unaffected; review exports are where the dirt comes from
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars
		)
	},
}

// Token returns the normalized form of a raw input token
func Token(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return strings.TrimSpace(ns)
}

// Tokens normalizes a slice in place and returns it
func Tokens(ss []string) []string {
	for i, s := range ss {
		ss[i] = Token(s)
	}
	return ss
}
