package service

import (
	"context"
	"encoding/json"
	"os"

	perr "github.com/jclec/hikari/internal/platform/errors"
)

// vocabularyKey is the jpdb export key holding the JP to EN deck
const vocabularyKey = "cards_vocabulary_jp_en"

// JPDBReader reads words out of a jpdb review export
// only the spelling field of each card is used
type JPDBReader struct {
	Path string
}

// NewJPDB constructs a JPDBReader
func NewJPDB(path string) *JPDBReader {
	return &JPDBReader{Path: path}
}

type jpdbCard struct {
	Spelling string `json:"spelling"`
}

// Read implements domain.ReaderPort
// a well formed export without the vocabulary deck is a caller error, not an
// empty result, so the missing key fails loudly
func (r *JPDBReader) Read(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "read review export %q", r.Path)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "parse review export %q", r.Path)
	}

	deck, ok := doc[vocabularyKey]
	if !ok {
		return nil, perr.NotFoundf("review export %q has no %q key", r.Path, vocabularyKey)
	}

	var cards []jpdbCard
	if err := json.Unmarshal(deck, &cards); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "parse %q cards", vocabularyKey)
	}

	raw := make([]string, 0, len(cards))
	for _, c := range cards {
		raw = append(raw, c.Spelling)
	}
	return filterKanji(raw), nil
}
