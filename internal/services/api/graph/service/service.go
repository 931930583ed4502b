// Package service provides the graph API service implementation
package service

import (
	"context"
	"unicode/utf8"

	"github.com/jclec/hikari/internal/core/index"
	"github.com/jclec/hikari/internal/core/kanji"
	"github.com/jclec/hikari/internal/core/normalize"
	perr "github.com/jclec/hikari/internal/platform/errors"
	"github.com/jclec/hikari/internal/services/api/graph/domain"
)

// Service implements domain.QueryPort over an immutable boot time document
type Service struct {
	doc *index.Document
}

// New constructs a new graph API service
func New(doc *index.Document) *Service {
	if doc == nil {
		doc = index.Normalize(nil, nil)
	}
	return &Service{doc: doc}
}

// Document implements domain.QueryPort
func (s *Service) Document(context.Context) (*index.Document, error) {
	return s.doc, nil
}

// WordsFor implements domain.QueryPort
func (s *Service) WordsFor(_ context.Context, k string) (domain.ComponentOut, error) {
	r, size := utf8.DecodeRuneInString(k)
	if r == utf8.RuneError || size != len(k) || !kanji.IsKanji(r) {
		return domain.ComponentOut{}, perr.InvalidArgf("%q is not a single kanji", k)
	}
	ws, ok := s.doc.WordsFor(k)
	if !ok {
		return domain.ComponentOut{}, perr.NotFoundf("kanji %q not indexed", k)
	}
	return domain.ComponentOut{Kanji: k, Words: ws}, nil
}

// RelatedTo implements domain.QueryPort
func (s *Service) RelatedTo(_ context.Context, word string) (domain.RelatedOut, error) {
	w := normalize.Token(word)
	if w == "" {
		return domain.RelatedOut{}, perr.InvalidArgf("empty word")
	}
	ws, ok := s.doc.RelatedTo(w)
	if !ok {
		return domain.RelatedOut{}, perr.NotFoundf("word %q not indexed", w)
	}
	return domain.RelatedOut{Word: w, Related: ws}, nil
}

// Query implements domain.QueryPort
// the posted list is indexed from scratch and never touches the boot document
func (s *Service) Query(_ context.Context, in domain.QueryInput) (*index.Document, error) {
	words := make([]string, 0, len(in.Words))
	for _, tok := range normalize.Tokens(in.Words) {
		if tok == "" || !kanji.HasKanji(tok) {
			continue
		}
		words = append(words, tok)
	}
	if len(words) == 0 {
		return nil, perr.InvalidArgf("no word with kanji in request")
	}

	comps := index.Separate(words)
	return index.Normalize(comps, index.Relate(words, comps)), nil
}
