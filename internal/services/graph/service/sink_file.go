package service

import (
	"context"
	"os"

	perr "github.com/jclec/hikari/internal/platform/errors"
	"github.com/jclec/hikari/internal/platform/logger"
	dom "github.com/jclec/hikari/internal/services/graph/domain"
)

// FileSink writes the document to a JSON file, replacing any previous run
type FileSink struct {
	Path string
}

// NewFileSink constructs a FileSink
func NewFileSink(path string) *FileSink {
	return &FileSink{Path: path}
}

// Write implements domain.SinkPort
func (s *FileSink) Write(ctx context.Context, run *dom.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "create output %q", s.Path)
	}

	if err := run.Doc.Encode(f); err != nil {
		_ = f.Close()
		return perr.Wrapf(err, perr.ErrorCodeIO, "write output %q", s.Path)
	}
	if err := f.Close(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeIO, "close output %q", s.Path)
	}

	logger.C(ctx).Info().Str("path", s.Path).Str("run_id", run.ID).Msg("document written")
	return nil
}
