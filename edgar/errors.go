package edgar

import "errors"

var (
	// ErrTickerNotFound indicates the ticker has no CIK mapping at EDGAR.
	ErrTickerNotFound = errors.New("ticker not found in EDGAR company index")

	// ErrUnexpectedStatus indicates a non-success HTTP response from EDGAR.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status from EDGAR")
)
