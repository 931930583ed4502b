// Command hikari-api serves the built indexes over HTTP
package main

import (
	"context"

	"github.com/jclec/hikari/internal/modkit"
	"github.com/jclec/hikari/internal/modkit/module"
	"github.com/jclec/hikari/internal/platform/config"
	"github.com/jclec/hikari/internal/platform/logger"
	phttp "github.com/jclec/hikari/internal/platform/net/http"
	"github.com/jclec/hikari/internal/platform/store"

	"github.com/jclec/hikari/internal/services/api"
	graphdom "github.com/jclec/hikari/internal/services/graph/domain"
	graphmod "github.com/jclec/hikari/internal/services/graph/module"
	vocabdom "github.com/jclec/hikari/internal/services/vocab/domain"
	vocabmod "github.com/jclec/hikari/internal/services/vocab/module"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	l := logger.Get()

	deps := modkit.Deps{Cfg: root, Log: *l}

	graphOpts := graphmod.FromConfig(root)
	if graphOpts.Persist {
		pgCfg := root.Prefix("SERVICE_PGSQL_")
		st, err := store.Open(context.Background(), store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		}, store.WithLogger(*l))
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
		deps.PG = st.PG
	}

	vocab, err := vocabmod.New(deps, vocabmod.FromConfig(root))
	if err != nil {
		l.Panic().Err(err).Msg("bad input configuration")
	}
	reader := module.MustPortsOf[vocabdom.ReaderPort](vocab)

	graph := graphmod.New(deps, graphOpts,
		modkit.WithPorts(graphdom.Ports{Words: reader}),
	)
	runner := module.MustPortsOf[graphdom.RunnerPort](graph)

	// build once at boot; read endpoints serve this document
	run, err := runner.Run(context.Background())
	if err != nil {
		l.Panic().Err(err).Msg("index build failed")
	}

	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.Options{
		Config: apiCfg,
		Logger: l,
		Doc:    run.Doc,
	})

	l.Info().Str("addr", srv.Addr()).Str("run_id", run.ID).Msg("serving index")
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
