// Package kanji classifies runes and words by kanji content
//
// The kanji predicate is the single filter the whole pipeline hangs off:
// it decides which words are admitted and which characters become index keys.
// Kana, Latin, digits, and punctuation are never kanji
package kanji

// CJK Unified Ideographs, the range the component index is keyed on
const (
	rangeLo = '一'
	rangeHi = '龯'
)

// IsKanji reports whether r is a CJK unified ideograph
func IsKanji(r rune) bool { return r >= rangeLo && r <= rangeHi }

// HasKanji reports whether s is non-empty and contains at least one kanji
func HasKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

// IsJapanese reports whether r is kanji, hiragana, or katakana
// used to reject delimiters that would split inside Japanese text
func IsJapanese(r rune) bool {
	if IsKanji(r) {
		return true
	}
	if r >= 'ぁ' && r <= 'ん' { // hiragana ぁ..ん
		return true
	}
	if r >= 'ァ' && r <= 'ン' { // katakana ァ..ン
		return true
	}
	return false
}

// ContainsJapanese reports whether any rune of s satisfies IsJapanese
func ContainsJapanese(s string) bool {
	for _, r := range s {
		if IsJapanese(r) {
			return true
		}
	}
	return false
}

// Components returns the distinct kanji of word in first-seen order
func Components(word string) []rune {
	var out []rune
	seen := map[rune]struct{}{}
	for _, r := range word {
		if !IsKanji(r) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
