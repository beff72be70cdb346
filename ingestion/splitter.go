package ingestion

import (
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"
)

const (
	// DefaultChunkSize is the maximum chunk length in characters.
	DefaultChunkSize = 1200
	// DefaultChunkOverlap is the number of characters shared by consecutive chunks.
	DefaultChunkOverlap = 20
)

// Splitter splits combined documents into bounded, overlapping chunks.
// Splitting falls back through paragraph breaks, line breaks, spaces and
// finally raw characters, so chunks avoid mid-word cuts where possible.
type Splitter struct {
	splitter textsplitter.RecursiveCharacter
}

// NewSplitter creates a Splitter with the default size and overlap.
func NewSplitter() *Splitter {
	return NewSplitterWith(DefaultChunkSize, DefaultChunkOverlap)
}

// NewSplitterWith creates a Splitter with an explicit chunk size and overlap.
func NewSplitterWith(chunkSize, chunkOverlap int) *Splitter {
	return &Splitter{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(chunkOverlap),
		),
	}
}

// Split splits the documents into an ordered chunk sequence. Chunk order
// follows document order, and within a document, text order. Documents
// with empty text contribute no chunks.
func (s *Splitter) Split(docs []schema.Document) ([]schema.Document, error) {
	return textsplitter.SplitDocuments(s.splitter, docs)
}
