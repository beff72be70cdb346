package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "text-embedding-ada-002", cfg.EmbeddingModel)
	assert.Equal(t, 1536, cfg.EmbeddingDims)
	assert.Empty(t, cfg.OpenAIKey)
	assert.Empty(t, cfg.QdrantURL)
}

func TestConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithOpenAIKey("sk-test"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithEmbeddingDims(512),
		WithQdrant("http://localhost:6333", "secret"),
	)

	assert.Equal(t, "sk-test", cfg.OpenAIKey)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, 512, cfg.EmbeddingDims)
	assert.Equal(t, "http://localhost:6333", cfg.QdrantURL)
	assert.Equal(t, "secret", cfg.QdrantAPIKey)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return NewConfig(
			WithOpenAIKey("sk-test"),
			WithQdrant("http://localhost:6333", ""),
		)
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing key", mutate: func(c *Config) { c.OpenAIKey = "" }},
		{name: "missing model", mutate: func(c *Config) { c.EmbeddingModel = "" }},
		{name: "zero dims", mutate: func(c *Config) { c.EmbeddingDims = 0 }},
		{name: "missing qdrant url", mutate: func(c *Config) { c.QdrantURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
