package storage

import (
	"context"

	"github.com/poiesic/filingest/core"
)

// FilingRepository persists bookkeeping records of completed filing downloads.
// Implementations hold a single process-wide connection; the pipeline is
// strictly sequential so concurrent access is not required.
type FilingRepository interface {
	// SaveFiling inserts a filing record, replacing any existing record for
	// the same (ticker, doc type) pair. The write is durable when the call
	// returns.
	SaveFiling(ctx context.Context, record *core.FilingRecord) error

	// GetFilings returns all records for the ticker. When docType is
	// non-empty the result is narrowed to that (ticker, doc type) pair.
	// A missing match yields an empty slice, not an error.
	GetFilings(ctx context.Context, ticker string, docType core.DocType) ([]core.FilingRecord, error)

	// Close releases the backing connection. Closing an already-closed
	// repository logs a warning and is otherwise a no-op.
	Close() error
}
