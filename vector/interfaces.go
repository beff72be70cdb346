package vector

import (
	"context"

	"github.com/tmc/langchaingo/schema"
)

// Writer embeds text chunks and upserts them into a named collection of a
// vector index.
type Writer interface {
	// Store computes one embedding per chunk and writes (vector, payload)
	// pairs into the collection, creating the collection if absent. Chunk
	// order is preserved in the upsert request. Errors from the embedding
	// provider or the index propagate without retries.
	Store(ctx context.Context, chunks []schema.Document, collection string) error
}
