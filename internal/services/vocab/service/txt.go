package service

import (
	"context"
	"os"
	"strings"

	"github.com/jclec/hikari/internal/core/kanji"
	perr "github.com/jclec/hikari/internal/platform/errors"
)

// TxtReader reads a plain text word list
// an empty Delimiter splits on any run of whitespace
type TxtReader struct {
	Path      string
	Delimiter string
}

// NewTxt constructs a TxtReader after validating the delimiter
// a delimiter containing kanji or kana would shred the words it is
// supposed to separate, so it is rejected up front
func NewTxt(path, delimiter string) (*TxtReader, error) {
	if kanji.ContainsJapanese(delimiter) {
		return nil, perr.InvalidArgf("delimiter %q contains Japanese characters", delimiter)
	}
	return &TxtReader{Path: path, Delimiter: delimiter}, nil
}

// Read implements domain.ReaderPort
func (r *TxtReader) Read(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "read word list %q", r.Path)
	}

	var raw []string
	if r.Delimiter == "" {
		raw = strings.Fields(string(b))
	} else {
		raw = strings.Split(string(b), r.Delimiter)
	}
	return filterKanji(raw), nil
}
