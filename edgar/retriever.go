package edgar

import (
	"context"
	"path/filepath"

	"github.com/poiesic/filingest/core"
)

// VendorDir is the directory namespace all downloaded filings live under,
// mirroring the layout used by the common EDGAR download tooling.
const VendorDir = "sec-edgar-filings"

// Retriever fetches SEC filings for a ticker into a deterministic
// directory layout.
type Retriever interface {
	// Download fetches up to limit filings of the given type for the ticker
	// into saveDir and returns the directory that contains them:
	// {saveDir}/sec-edgar-filings/{TICKER}/{DOC_TYPE}/. A limit of zero or
	// less fetches every available filing. Any retrieval failure is wrapped
	// into a single error naming the ticker and document type.
	Download(ctx context.Context, ticker string, docType core.DocType, saveDir string, limit int) (string, error)
}

// FilingDir returns the canonical directory for a (ticker, doc type) pair
// under saveDir, with a trailing separator.
func FilingDir(saveDir, ticker string, docType core.DocType) string {
	return filepath.Join(saveDir, VendorDir, core.NormalizeTicker(ticker), string(docType)) + string(filepath.Separator)
}
