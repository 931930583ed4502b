// Package service provides the vocab reader implementations
package service

import (
	"github.com/jclec/hikari/internal/core/kanji"
	"github.com/jclec/hikari/internal/core/normalize"
)

// filterKanji normalizes raw tokens and keeps only words containing kanji
// order is preserved; kana-only, latin, and empty tokens are dropped
func filterKanji(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		w := normalize.Token(tok)
		if w == "" {
			continue
		}
		if !kanji.HasKanji(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
