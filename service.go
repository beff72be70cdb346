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


package filingest

import (
	"context"
	"log/slog"

	"github.com/poiesic/filingest/config"
	"github.com/poiesic/filingest/core"
	"github.com/poiesic/filingest/edgar"
	"github.com/poiesic/filingest/ingestion"
	"github.com/poiesic/filingest/storage"
	"github.com/poiesic/filingest/storage/sqlite"
	"github.com/poiesic/filingest/vector"
)

// Service wires the metadata store, the EDGAR retriever, the vector writer
// and the ingestion pipeline from one process configuration. It owns the
// store connection: open it once at process start, Close it once at
// process end.
type Service struct {
	store    *sqlite.FilingStore
	pipeline *ingestion.Pipeline
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	retriever edgar.Retriever
	writer    vector.Writer
	limit     int
}

// WithRetriever replaces the default EDGAR client.
func WithRetriever(retriever edgar.Retriever) ServiceOption {
	return func(o *serviceOptions) {
		o.retriever = retriever
	}
}

// WithWriter replaces the default Qdrant writer.
func WithWriter(writer vector.Writer) ServiceOption {
	return func(o *serviceOptions) {
		o.writer = writer
	}
}

// WithDownloadLimit caps how many filings are downloaded per run.
func WithDownloadLimit(limit int) ServiceOption {
	return func(o *serviceOptions) {
		o.limit = limit
	}
}

// NewService builds a ready-to-run service. A store-open failure is fatal
// and propagates; so does an invalid vector configuration.
func NewService(cfg *config.Config, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	store, err := sqlite.NewFilingStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	retriever := options.retriever
	if retriever == nil {
		retriever = edgar.NewClient(cfg.EdgarCompany, cfg.EdgarEmail)
	}

	writer := options.writer
	if writer == nil {
		writer, err = vector.NewQdrantWriter(vector.NewConfig(
			vector.WithOpenAIKey(cfg.OpenAIAPIKey),
			vector.WithQdrant(cfg.QdrantURL, cfg.QdrantAPIKey),
			vector.WithEmbeddingModel(cfg.EmbeddingModel),
			vector.WithEmbeddingDims(cfg.EmbeddingDims),
		))
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	pipeline, err := ingestion.NewPipeline(retriever, store, writer,
		ingestion.WithLimit(options.limit))
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Service{
		store:    store,
		pipeline: pipeline,
		logger:   slog.Default(),
	}, nil
}

// Run executes the ingestion pipeline for one (ticker, doc type) pair.
func (s *Service) Run(ctx context.Context, ticker string, docType core.DocType, saveDir string) error {
	return s.pipeline.Run(ctx, ticker, docType, saveDir)
}

// FilingRepository exposes the metadata store.
func (s *Service) FilingRepository() storage.FilingRepository {
	return s.store
}

// Close releases the store connection. It is safe to call on every exit
// path; a second Close is a logged no-op.
func (s *Service) Close() error {
	return s.store.Close()
}
