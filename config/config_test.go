package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "text-embedding-ada-002", cfg.EmbeddingModel)
	assert.Equal(t, 1536, cfg.EmbeddingDims)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.LogPath)
	assert.Equal(t, "Company", cfg.EdgarCompany)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FILINGEST_OPENAI_API_KEY", "sk-env")
	t.Setenv("FILINGEST_QDRANT_URL", "http://qdrant:6333")
	t.Setenv("FILINGEST_QDRANT_API_KEY", "qd-secret")
	t.Setenv("FILINGEST_EMBEDDING_MODEL", "text-embedding-3-small")
	t.Setenv("FILINGEST_EMBEDDING_DIMS", "512")
	t.Setenv("FILINGEST_DB_PATH", "/var/lib/filingest/filings.db")

	cfg := Load()

	assert.Equal(t, "sk-env", cfg.OpenAIAPIKey)
	assert.Equal(t, "http://qdrant:6333", cfg.QdrantURL)
	assert.Equal(t, "qd-secret", cfg.QdrantAPIKey)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, 512, cfg.EmbeddingDims)
	assert.Equal(t, "/var/lib/filingest/filings.db", cfg.DBPath)
}
