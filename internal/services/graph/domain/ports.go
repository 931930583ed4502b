package domain

import (
	"context"

	vocabdom "github.com/jclec/hikari/internal/services/vocab/domain"
)

// RunnerPort builds both indexes over the configured word source
type RunnerPort interface {
	Run(ctx context.Context) (*Run, error)
}

// SinkPort persists a finished run
type SinkPort interface {
	Write(ctx context.Context, run *Run) error
}

// Ports declares the cross module dependencies the graph module requires
type Ports struct {
	Words vocabdom.ReaderPort
}
