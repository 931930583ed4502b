// Package domain defines the DTOs and ports for the graph API
package domain

// ComponentOut is one kanji with the words containing it
type ComponentOut struct {
	Kanji string   `json:"kanji"`
	Words []string `json:"words"`
}

// RelatedOut is one word with the words sharing a kanji with it
type RelatedOut struct {
	Word    string   `json:"word"`
	Related []string `json:"related"`
}

// QueryInput is an ad hoc word list to be indexed on the fly
type QueryInput struct {
	Words []string `json:"words" validate:"required,min=1,dive,required"`
}
