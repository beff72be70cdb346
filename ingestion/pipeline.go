// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/schema"

	"github.com/poiesic/filingest/core"
	"github.com/poiesic/filingest/edgar"
	"github.com/poiesic/filingest/storage"
	"github.com/poiesic/filingest/vector"
)

// Pipeline runs the ingestion sequence for one (ticker, doc type) pair:
// retrieve filings, record the download, combine the filing text, split it
// into chunks, and embed the chunks into the vector index. Stages run
// strictly in order; the first failing stage aborts the rest.
type Pipeline struct {
	retriever edgar.Retriever
	filings   storage.FilingRepository
	writer    vector.Writer
	combiner  *Combiner
	splitter  *Splitter
	limit     int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithLimit caps the number of filings downloaded per run.
// Zero or less downloads every available filing, which is the default.
func WithLimit(limit int) Option {
	return func(p *Pipeline) error {
		p.limit = limit
		return nil
	}
}

// WithCombiner replaces the default document combiner.
func WithCombiner(combiner *Combiner) Option {
	return func(p *Pipeline) error {
		if combiner == nil {
			return fmt.Errorf("combiner cannot be nil")
		}
		p.combiner = combiner
		return nil
	}
}

// WithSplitter replaces the default text splitter.
func WithSplitter(splitter *Splitter) Option {
	return func(p *Pipeline) error {
		if splitter == nil {
			return fmt.Errorf("splitter cannot be nil")
		}
		p.splitter = splitter
		return nil
	}
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(
	retriever edgar.Retriever,
	filings storage.FilingRepository,
	writer vector.Writer,
	opts ...Option,
) (*Pipeline, error) {
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if filings == nil {
		return nil, ErrFilingRepositoryRequired
	}
	if writer == nil {
		return nil, ErrWriterRequired
	}

	p := &Pipeline{
		retriever: retriever,
		filings:   filings,
		writer:    writer,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.combiner == nil {
		p.combiner = NewCombiner(p.logger)
	}
	if p.splitter == nil {
		p.splitter = NewSplitter()
	}

	return p, nil
}

// Run executes the pipeline for one (ticker, doc type) pair. Filings are
// saved under saveDir. Cancelling ctx aborts the current stage; no partial
// rollback is performed, so the index may hold a partial chunk set after
// an interrupt.
func (p *Pipeline) Run(ctx context.Context, ticker string, docType core.DocType, saveDir string) error {
	ticker = core.NormalizeTicker(ticker)
	if ticker == "" {
		return core.ErrEmptyTicker
	}
	if err := docType.Validate(); err != nil {
		return err
	}

	dirPath, err := p.retriever.Download(ctx, ticker, docType, saveDir, p.limit)
	if err != nil {
		return err
	}
	p.logger.Info("downloaded documents", "ticker", ticker, "docType", docType, "dir", dirPath)

	record := &core.FilingRecord{Ticker: ticker, DocType: docType, DirPath: dirPath}
	if err := p.filings.SaveFiling(ctx, record); err != nil {
		return err
	}
	p.logger.Info("saved filing record", "ticker", ticker, "docType", docType)

	// Resolve the on-disk path through the store rather than trusting the
	// retriever's return value; the record is the source of truth for
	// later runs.
	records, err := p.filings.GetFilings(ctx, ticker, docType)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w for %s %s", ErrNoFilingRecord, ticker, docType)
	}

	combined, err := p.combiner.Combine(ctx, []string{records[0].DirPath})
	if err != nil {
		return err
	}
	p.logger.Info("combined documents", "ticker", ticker, "docType", docType, "chars", len(combined.PageContent))

	chunks, err := p.splitter.Split([]schema.Document{combined})
	if err != nil {
		return err
	}
	p.logger.Info("split text into chunks", "ticker", ticker, "docType", docType, "chunks", len(chunks))

	collection := core.CollectionName(ticker, docType)
	p.annotate(chunks, ticker, docType)

	p.logger.Info("embedding and storing chunks", "ticker", ticker, "docType", docType, "collection", collection)
	if err := p.writer.Store(ctx, chunks, collection); err != nil {
		return err
	}
	p.logger.Info("uploaded chunks to vector index", "ticker", ticker, "docType", docType, "collection", collection, "chunks", len(chunks))

	return nil
}

// annotate attaches the payload metadata each chunk carries into the index.
func (p *Pipeline) annotate(chunks []schema.Document, ticker string, docType core.DocType) {
	for i := range chunks {
		chunks[i].Metadata = map[string]any{
			"ticker":     ticker,
			"doc_type":   string(docType),
			"seq":        i,
			"content_id": uint64(core.IDFromContent(chunks[i].PageContent)),
		}
	}
}
