// Package ingestion provides pipeline orchestration for turning SEC
// filings into vector-index records.
//
// The Pipeline type runs the linear ingestion sequence for one
// (ticker, document type) pair:
//   - Retrieve filings from EDGAR into a local directory
//   - Record the download in the metadata store
//   - Combine the filings' narrative text into one document
//   - Split the document into bounded, overlapping chunks
//   - Embed the chunks and upsert them into a Qdrant collection
//
// Stages run synchronously and in order; the first failing stage aborts
// the remainder. Per-file parse failures inside the combination stage are
// logged and skipped rather than failing the run.
package ingestion
