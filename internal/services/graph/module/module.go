// Package module implements the graph module
package module

import (
	"github.com/jclec/hikari/internal/modkit"
	"github.com/jclec/hikari/internal/modkit/httpkit"
	"github.com/jclec/hikari/internal/services/graph/domain"
	"github.com/jclec/hikari/internal/services/graph/repo"
	"github.com/jclec/hikari/internal/services/graph/service"
)

// Ports exposed by the graph module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new graph module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("graph"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("graph module: expected WithPorts(graph/domain.Ports)")
	}
	if ports.Words == nil {
		panic("graph module: Ports missing Words")
	}

	cfg := FromConfig(deps.Cfg)
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.OutPath != "" {
		cfg.OutPath = overrides.OutPath
	}
	cfg.Persist = cfg.Persist || overrides.Persist

	sinks := []domain.SinkPort{service.NewFileSink(cfg.OutPath)}
	if cfg.Persist {
		if deps.PG == nil {
			panic("graph module: persist enabled without a database")
		}
		sinks = append(sinks, service.NewPGSink(deps.PG, repo.NewPG()))
	}

	runner := service.New(ports.Words, sinks, service.Config{Workers: cfg.Workers})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: runner}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "graph" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
