package ingestion

import "errors"

var (
	// ErrRetrieverRequired is returned when a filing retriever is not provided.
	ErrRetrieverRequired = errors.New("filing retriever required")

	// ErrFilingRepositoryRequired is returned when a filing repository is not provided.
	ErrFilingRepositoryRequired = errors.New("filing repository required")

	// ErrWriterRequired is returned when a vector writer is not provided.
	ErrWriterRequired = errors.New("vector writer required")

	// ErrNoFilingRecord indicates that the metadata store holds no record
	// for a pair that was just downloaded.
	ErrNoFilingRecord = errors.New("no filing record found")
)
