// Package api provides the HTTP API for the application
package api

import (
	"github.com/jclec/hikari/internal/core/index"
	"github.com/jclec/hikari/internal/modkit"
	"github.com/jclec/hikari/internal/modkit/httpkit"
	"github.com/jclec/hikari/internal/modkit/module"
	"github.com/jclec/hikari/internal/platform/config"
	"github.com/jclec/hikari/internal/platform/logger"
	phttp "github.com/jclec/hikari/internal/platform/net/http"

	graphmod "github.com/jclec/hikari/internal/services/api/graph/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger

	// Doc is the document built at boot that read endpoints serve
	Doc *index.Document
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}

	mods := []module.Module{
		graphmod.New(deps, opt.Doc),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
