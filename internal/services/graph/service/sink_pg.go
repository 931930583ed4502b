package service

import (
	"context"

	"github.com/jclec/hikari/internal/modkit/repokit"
	"github.com/jclec/hikari/internal/platform/logger"
	dom "github.com/jclec/hikari/internal/services/graph/domain"
	"github.com/jclec/hikari/internal/services/graph/repo"
)

// PGSink persists a run to Postgres in a single transaction
type PGSink struct {
	tx     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
}

// NewPGSink constructs a PGSink
func NewPGSink(tx repokit.TxRunner, binder repokit.Binder[repo.Storage]) *PGSink {
	return &PGSink{tx: tx, binder: binder}
}

// Write implements domain.SinkPort
// a failed run leaves no partial rows behind
func (s *PGSink) Write(ctx context.Context, run *dom.Run) error {
	err := repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		st := repokit.MustBind(s.binder, q)
		if err := st.InsertRun(ctx, run); err != nil {
			return err
		}
		if err := st.InsertComponents(ctx, run.ID, run.Doc.Components); err != nil {
			return err
		}
		return st.InsertRelations(ctx, run.ID, run.Doc.RelatedWords)
	})
	if err != nil {
		return err
	}

	logger.C(ctx).Info().Str("run_id", run.ID).Msg("run persisted")
	return nil
}
