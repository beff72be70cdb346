package filingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/schema"

	"github.com/poiesic/filingest/config"
	"github.com/poiesic/filingest/core"
	"github.com/poiesic/filingest/edgar"
)

type stubRetriever struct {
	filing string
}

func (r *stubRetriever) Download(ctx context.Context, ticker string, docType core.DocType, saveDir string, limit int) (string, error) {
	dir := edgar.FilingDir(saveDir, ticker, docType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "filing.txt"), []byte(r.filing), 0o644); err != nil {
		return "", err
	}
	return dir, nil
}

type stubWriter struct {
	collection string
	chunks     []schema.Document
}

func (w *stubWriter) Store(ctx context.Context, chunks []schema.Document, collection string) error {
	w.collection = collection
	w.chunks = chunks
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DBPath:  filepath.Join(dir, "filings.db"),
		LogPath: filepath.Join(dir, "filingest.log"),
	}
}

func TestService_RunEndToEnd(t *testing.T) {
	writer := &stubWriter{}
	svc, err := NewService(testConfig(t),
		WithRetriever(&stubRetriever{filing: `<xbrl><div><span>Operating income grew.</span></div></xbrl>`}),
		WithWriter(writer),
	)
	require.NoError(t, err)
	defer svc.Close()

	require.NoError(t, svc.Run(context.Background(), "msft", core.DocType10Q, t.TempDir()))

	assert.Equal(t, "msft_10-q", writer.collection)
	require.Len(t, writer.chunks, 1)
	assert.Equal(t, "Operating income grew.", writer.chunks[0].PageContent)

	records, err := svc.FilingRepository().GetFilings(context.Background(), "MSFT", core.DocType10Q)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNewService_RequiresVectorConfig(t *testing.T) {
	// Without an injected writer the service builds the Qdrant writer,
	// which rejects an empty configuration.
	_, err := NewService(testConfig(t), WithRetriever(&stubRetriever{}))
	assert.Error(t, err)
}

func TestService_DoubleClose(t *testing.T) {
	svc, err := NewService(testConfig(t),
		WithRetriever(&stubRetriever{}),
		WithWriter(&stubWriter{}),
	)
	require.NoError(t, err)

	require.NoError(t, svc.Close())
	assert.NoError(t, svc.Close())
}
