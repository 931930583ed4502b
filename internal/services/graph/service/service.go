// Package service implements the graph service
package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jclec/hikari/internal/core/index"
	"github.com/jclec/hikari/internal/platform/logger"
	ptime "github.com/jclec/hikari/internal/platform/time"
	dom "github.com/jclec/hikari/internal/services/graph/domain"
	vocabdom "github.com/jclec/hikari/internal/services/vocab/domain"
)

// Config for the graph service
type Config struct {
	Workers int
}

// Service implements domain.RunnerPort
type Service struct {
	Words vocabdom.ReaderPort
	Sinks []dom.SinkPort
	Cfg   Config
}

// New constructs a new graph service
func New(words vocabdom.ReaderPort, sinks []dom.SinkPort, cfg Config) *Service {
	w := cfg.Workers
	if w <= 0 {
		w = 1
	}
	return &Service{
		Words: words,
		Sinks: sinks,
		Cfg:   Config{Workers: w},
	}
}

// Run reads the word list, builds both indexes, and feeds every sink
// sinks run in order; the first failure aborts the run
func (s *Service) Run(ctx context.Context) (*dom.Run, error) {
	started := ptime.Now()
	log := logger.C(ctx)

	words, err := s.Words.Read(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(words)
	log.Debug().Int("words", len(words)).Msg("word list loaded")

	comps := index.Separate(words)
	rels := s.relate(words, comps)

	run := &dom.Run{
		ID:        uuid.NewString(),
		StartedAt: started,
		Duration:  time.Since(started),
		WordCount: len(words),
		Doc:       index.Normalize(comps, rels),
	}
	log.Info().
		Str("run_id", run.ID).
		Int("words", run.WordCount).
		Int("components", len(run.Doc.Components)).
		Dur("took", run.Duration).
		Msg("index built")

	for _, sink := range s.Sinks {
		if err := sink.Write(ctx, run); err != nil {
			return nil, err
		}
	}
	return run, nil
}

// relate fans the per word relation lookups across workers
// Components is frozen before any worker starts, so reads need no lock
func (s *Service) relate(words []string, comps index.Components) index.Relations {
	if s.Cfg.Workers <= 1 {
		return index.Relate(words, comps)
	}

	distinct := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		distinct = append(distinct, w)
	}

	out := make([]index.WordSet, len(distinct))
	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}

	for i := range distinct {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			out[i] = index.RelatedTo(distinct[i], comps)
		}(i)
	}
	wg.Wait()

	rels := make(index.Relations, len(distinct))
	for i, w := range distinct {
		rels[w] = out[i]
	}
	return rels
}
