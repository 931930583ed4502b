// Package domain defines the types and interfaces for the vocab service
package domain

import "context"

// ReaderPort loads the word list to be indexed
// implementations filter out words with no kanji before returning
type ReaderPort interface {
	Read(ctx context.Context) ([]string, error)
}

// Format names a supported vocabulary source format
type Format string

// Supported source formats
const (
	FormatTxt  Format = "txt"
	FormatJPDB Format = "jpdb"
)
