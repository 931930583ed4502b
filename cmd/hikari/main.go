// Command hikari builds the kanji component and related word indexes
// for a word list and writes them to a JSON document
package main

import (
	"context"
	"flag"

	"github.com/jclec/hikari/internal/modkit"
	"github.com/jclec/hikari/internal/modkit/module"
	"github.com/jclec/hikari/internal/platform/config"
	"github.com/jclec/hikari/internal/platform/logger"
	"github.com/jclec/hikari/internal/platform/store"

	graphdom "github.com/jclec/hikari/internal/services/graph/domain"
	graphmod "github.com/jclec/hikari/internal/services/graph/module"
	vocabdom "github.com/jclec/hikari/internal/services/vocab/domain"
	vocabmod "github.com/jclec/hikari/internal/services/vocab/module"
)

func main() {
	var (
		fJPDB      = flag.Bool("jpdb", false, "input is a jpdb review export instead of a text word list")
		fDelimiter = flag.String("delimiter", "", "word separator for text input (default any whitespace)")
		fOut       = flag.String("out", "", "output path (default output.json)")
		fWorkers   = flag.Int("workers", 0, "relation lookup concurrency")
		fPersist   = flag.Bool("persist", false, "also persist the run to Postgres (SERVICE_PGSQL_DBURL)")
		fDebug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	root := config.New()
	l := logger.Get()
	if *fDebug {
		logger.SetLevel("debug")
	}

	vOpts := vocabmod.FromConfig(root)
	if *fJPDB {
		vOpts.Format = vocabdom.FormatJPDB
	}
	if *fDelimiter != "" {
		vOpts.Delimiter = *fDelimiter
	}
	if flag.NArg() > 0 {
		vOpts.Path = flag.Arg(0)
	}

	deps := modkit.Deps{Cfg: root, Log: *l}

	if *fPersist {
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

	vocab, err := vocabmod.New(deps, vOpts)
	if err != nil {
		l.Panic().Err(err).Msg("bad input configuration")
	}
	reader := module.MustPortsOf[vocabdom.ReaderPort](vocab)

	graph := graphmod.New(deps,
		graphmod.Options{Workers: *fWorkers, OutPath: *fOut, Persist: *fPersist},
		modkit.WithPorts(graphdom.Ports{Words: reader}),
	)
	runner := module.MustPortsOf[graphdom.RunnerPort](graph)

	run, err := runner.Run(context.Background())
	if err != nil {
		l.Panic().Err(err).Msg("index build failed")
	}
	l.Info().Str("run_id", run.ID).Int("words", run.WordCount).Msg("done")
}
