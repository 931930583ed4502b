// Package repo provides the graph repository implementation
package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jclec/hikari/internal/modkit/repokit"
	perr "github.com/jclec/hikari/internal/platform/errors"
	"github.com/jclec/hikari/internal/services/graph/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the graph repository
type Storage interface {
	InsertRun(ctx context.Context, run *domain.Run) error
	InsertComponents(ctx context.Context, runID string, comps map[string][]string) error
	InsertRelations(ctx context.Context, runID string, rels map[string][]string) error
	LatestRunID(ctx context.Context) (string, error)
}

// InsertRun implements Storage
func (s *pg) InsertRun(ctx context.Context, run *domain.Run) error {
	const q = `INSERT INTO index_runs (id, started_at, duration_ms, word_count) VALUES ($1,$2,$3,$4)`
	if _, err := s.q.Exec(ctx, q, run.ID, run.StartedAt, run.Duration.Milliseconds(), run.WordCount); err != nil {
		return perr.FromPostgres(err, "insert run")
	}
	return nil
}

// InsertComponents implements Storage
func (s *pg) InsertComponents(ctx context.Context, runID string, comps map[string][]string) error {
	return s.insertEntries(ctx, "index_components", "kanji", runID, comps)
}

// InsertRelations implements Storage
func (s *pg) InsertRelations(ctx context.Context, runID string, rels map[string][]string) error {
	return s.insertEntries(ctx, "index_relations", "word", runID, rels)
}

// insertEntries writes one table of key to word-array rows in chunks
// both tables share the (run_id, key, words text[]) shape
func (s *pg) insertEntries(ctx context.Context, table, keyCol, runID string, entries map[string][]string) error {
	if len(entries) == 0 {
		return nil
	}

	const chunk = 500
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}

	for lo := 0; lo < len(keys); lo += chunk {
		hi := lo + chunk
		if hi > len(keys) {
			hi = len(keys)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, `INSERT INTO %s (run_id, %s, words) VALUES `, table, keyCol)

		args := make([]any, 0, (hi-lo)*3)
		for i, k := range keys[lo:hi] {
			if i > 0 {
				sb.WriteByte(',')
			}
			base := i*3 + 1
			fmt.Fprintf(&sb, "($%d,$%d,$%d)", base, base+1, base+2)
			args = append(args, runID, k, entries[k])
		}

		if _, err := s.q.Exec(ctx, sb.String(), args...); err != nil {
			return perr.FromPostgres(err, "insert "+table)
		}
	}
	return nil
}

// LatestRunID implements Storage
func (s *pg) LatestRunID(ctx context.Context) (string, error) {
	const q = `SELECT id FROM index_runs ORDER BY started_at DESC LIMIT 1`
	var id string
	if err := s.q.QueryRow(ctx, q).Scan(&id); err != nil {
		return "", perr.FromPostgres(err, "latest run")
	}
	return id, nil
}
