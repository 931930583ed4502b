// Package http provides http transport for the graph API
package http

import (
	stdhttp "net/http"

	"github.com/jclec/hikari/internal/modkit/httpkit"
	"github.com/jclec/hikari/internal/services/api/graph/domain"
)

// Register mounts graph endpoints on the given router
func Register(r httpkit.Router, s domain.QueryPort) {
	h := &handlers{svc: s}

	// the whole boot time document
	httpkit.Get(r, "/", h.document)

	// words containing one kanji
	httpkit.Get(r, "/components/{kanji}", h.wordsFor)

	// words sharing a kanji with one word
	httpkit.Get(r, "/related/{word}", h.relatedTo)

	// index an ad hoc word list
	httpkit.PostJSON[domain.QueryInput](r, "/query", h.query)
}

type handlers struct{ svc domain.QueryPort }

func (h *handlers) document(r *stdhttp.Request) (any, error) {
	return h.svc.Document(r.Context())
}

func (h *handlers) wordsFor(r *stdhttp.Request) (any, error) {
	return h.svc.WordsFor(r.Context(), httpkit.Param(r, "kanji"))
}

func (h *handlers) relatedTo(r *stdhttp.Request) (any, error) {
	return h.svc.RelatedTo(r.Context(), httpkit.Param(r, "word"))
}

func (h *handlers) query(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	return h.svc.Query(r.Context(), in)
}
