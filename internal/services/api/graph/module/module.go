// Package module wires the graph API into the router using modkit
package module

import (
	"net/http"

	"github.com/jclec/hikari/internal/core/index"
	"github.com/jclec/hikari/internal/modkit"
	"github.com/jclec/hikari/internal/modkit/httpkit"
	str "github.com/jclec/hikari/internal/platform/strings"
	graphhttp "github.com/jclec/hikari/internal/services/api/graph/http"
	graphsvc "github.com/jclec/hikari/internal/services/api/graph/service"
)

// Module implements the graph API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws []func(http.Handler) http.Handler
	svc *graphsvc.Service
}

// New constructs the graph API module around a built document
func New(deps modkit.Deps, doc *index.Document, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("graph"),
		modkit.WithPrefix("/graph"),
	}, opts...)...)

	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    graphsvc.New(doc),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		graphhttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.svc }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
