// Package module implements the vocab service module
package module

import (
	"github.com/jclec/hikari/internal/modkit"
	"github.com/jclec/hikari/internal/modkit/httpkit"
	perr "github.com/jclec/hikari/internal/platform/errors"
	"github.com/jclec/hikari/internal/services/vocab/domain"
	"github.com/jclec/hikari/internal/services/vocab/service"
)

// Ports exposed by the vocab module
type Ports struct {
	Reader domain.ReaderPort
}

// Module implements the vocab service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new vocab module from options
func New(deps modkit.Deps, opts Options) (*Module, error) {
	reader, err := NewReader(opts)
	if err != nil {
		return nil, err
	}

	m := &Module{deps: deps}
	m.ports = Ports{Reader: reader}
	return m, nil
}

// NewReader builds the reader for the configured source format
// an empty path falls back to the conventional default for that format
func NewReader(opts Options) (domain.ReaderPort, error) {
	switch opts.Format {
	case domain.FormatJPDB:
		if opts.Path == "" {
			opts.Path = "reviews.json"
		}
		return service.NewJPDB(opts.Path), nil
	case domain.FormatTxt, "":
		if opts.Path == "" {
			opts.Path = "words.txt"
		}
		return service.NewTxt(opts.Path, opts.Delimiter)
	default:
		return nil, perr.InvalidArgf("unknown vocab format %q", opts.Format)
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "vocab" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
