package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores/qdrant"
)

// QdrantWriter implements Writer on top of the OpenAI embeddings API and a
// Qdrant vector index.
type QdrantWriter struct {
	config     *Config
	embedder   embeddings.Embedder
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Writer = (*QdrantWriter)(nil)

// NewQdrantWriter creates a writer from the provided configuration.
func NewQdrantWriter(config *Config) (*QdrantWriter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithToken(config.OpenAIKey),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embeddings client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	return &QdrantWriter{
		config:     config,
		embedder:   embedder,
		httpClient: &http.Client{},
		logger:     slog.Default().With("component", "qdrant-writer"),
	}, nil
}

// Store embeds the chunks and upserts them into the collection, creating
// the collection first when it does not exist. An empty chunk list is a
// no-op.
func (w *QdrantWriter) Store(ctx context.Context, chunks []schema.Document, collection string) error {
	if len(chunks) == 0 {
		w.logger.Warn("no chunks to store", "collection", collection)
		return nil
	}

	if err := w.ensureCollection(ctx, collection); err != nil {
		return err
	}

	qdrantURL, err := url.Parse(w.config.QdrantURL)
	if err != nil {
		return fmt.Errorf("parsing Qdrant URL: %w", err)
	}

	store, err := qdrant.New(
		qdrant.WithURL(*qdrantURL),
		qdrant.WithAPIKey(w.config.QdrantAPIKey),
		qdrant.WithCollectionName(collection),
		qdrant.WithEmbedder(w.embedder),
	)
	if err != nil {
		return fmt.Errorf("connecting to Qdrant collection %s: %w", collection, err)
	}

	if _, err := store.AddDocuments(ctx, chunks); err != nil {
		return fmt.Errorf("upserting %d chunks into collection %s: %w", len(chunks), collection, err)
	}
	return nil
}

// ensureCollection creates the collection when it does not exist yet. The
// langchaingo store only writes into existing collections.
func (w *QdrantWriter) ensureCollection(ctx context.Context, collection string) error {
	endpoint := fmt.Sprintf("%s/collections/%s", w.config.QdrantURL, url.PathEscape(collection))

	status, err := w.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("checking collection %s: %w", collection, err)
	}
	if status == http.StatusOK {
		return nil
	}
	if status != http.StatusNotFound {
		return fmt.Errorf("checking collection %s: unexpected status %d", collection, status)
	}

	body, err := json.Marshal(map[string]any{
		"vectors": map[string]any{
			"size":     w.config.EmbeddingDims,
			"distance": "Cosine",
		},
	})
	if err != nil {
		return err
	}

	status, err = w.do(ctx, http.MethodPut, endpoint, body)
	if err != nil {
		return fmt.Errorf("creating collection %s: %w", collection, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("creating collection %s: unexpected status %d", collection, status)
	}

	w.logger.Info("created collection", "collection", collection, "dims", w.config.EmbeddingDims)
	return nil
}

func (w *QdrantWriter) do(ctx context.Context, method, endpoint string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if w.config.QdrantAPIKey != "" {
		req.Header.Set("api-key", w.config.QdrantAPIKey)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
