// Package domain defines the types and interfaces for the graph service
package domain

import (
	"time"

	"github.com/jclec/hikari/internal/core/index"
)

// Run is one finished index build
type Run struct {
	ID        string // uuid
	StartedAt time.Time
	Duration  time.Duration
	WordCount int
	Doc       *index.Document
}
