package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for derived content such as text chunks.
// It is generated deterministically from the content itself.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the identical ID, which keeps vector-index
// writes stable across repeated pipeline runs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DocType identifies the kind of SEC filing handled by the pipeline.
type DocType string

const (
	// DocType10K is the annual report filing.
	DocType10K DocType = "10-K"
	// DocType10Q is the quarterly report filing.
	DocType10Q DocType = "10-Q"
	// DocType8K is the current-event report filing.
	DocType8K DocType = "8-K"
)

// DocTypes lists every filing type the pipeline accepts, in display order.
func DocTypes() []DocType {
	return []DocType{DocType10K, DocType10Q, DocType8K}
}

// ParseDocType normalizes and validates a document-type string.
// Matching is case-insensitive; the canonical uppercase form is returned.
func ParseDocType(s string) (DocType, error) {
	dt := DocType(strings.ToUpper(strings.TrimSpace(s)))
	switch dt {
	case DocType10K, DocType10Q, DocType8K:
		return dt, nil
	}
	return "", ErrInvalidDocType
}

// NormalizeTicker canonicalizes a company ticker symbol to its uppercase form.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// CollectionName derives the vector-index collection name for a
// (ticker, document type) pair: lowercase ticker and type joined by an
// underscore, e.g. "aapl_10-k".
func CollectionName(ticker string, docType DocType) string {
	return strings.ToLower(NormalizeTicker(ticker)) + "_" + strings.ToLower(string(docType))
}

// FilingRecord tracks a completed filing download for a (ticker, doc type)
// pair. At most one live record exists per pair; a newer download replaces
// the older record.
type FilingRecord struct {
	Ticker    string
	DocType   DocType
	DirPath   string
	UpdatedAt time.Time
}
