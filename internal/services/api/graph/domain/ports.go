package domain

import (
	"context"

	"github.com/jclec/hikari/internal/core/index"
)

// QueryPort reads the boot time index and answers ad hoc queries
type QueryPort interface {
	Document(ctx context.Context) (*index.Document, error)
	WordsFor(ctx context.Context, kanji string) (ComponentOut, error)
	RelatedTo(ctx context.Context, word string) (RelatedOut, error)
	Query(ctx context.Context, in QueryInput) (*index.Document, error)
}
