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


package vector

import "errors"

// Config holds configuration for the embedding provider and the vector
// index.
type Config struct {
	// OpenAIKey is the API key for the OpenAI embeddings API.
	OpenAIKey string

	// EmbeddingModel is the embedding model identifier.
	// Example: "text-embedding-ada-002", "text-embedding-3-small"
	EmbeddingModel string

	// EmbeddingDims is the vector length produced by EmbeddingModel. It is
	// used when creating a collection that does not exist yet.
	EmbeddingDims int

	// QdrantURL is the base URL of the Qdrant service.
	// Example: "http://localhost:6333"
	QdrantURL string

	// QdrantAPIKey authenticates against a managed Qdrant deployment.
	// Empty for unauthenticated local instances.
	QdrantAPIKey string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithOpenAIKey sets the OpenAI API key.
func WithOpenAIKey(key string) ConfigOption {
	return func(c *Config) {
		c.OpenAIKey = key
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithEmbeddingDims sets the embedding vector length.
func WithEmbeddingDims(dims int) ConfigOption {
	return func(c *Config) {
		c.EmbeddingDims = dims
	}
}

// WithQdrant sets the Qdrant service URL and API key.
func WithQdrant(url, apiKey string) ConfigOption {
	return func(c *Config) {
		c.QdrantURL = url
		c.QdrantAPIKey = apiKey
	}
}

// DefaultConfig returns a Config with the default embedding model. The
// OpenAI key and Qdrant URL have no defaults and must be supplied.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingModel: "text-embedding-ada-002",
		EmbeddingDims:  1536,
	}
}

// NewConfig creates a Config with defaults and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	if c.OpenAIKey == "" {
		return errors.New("vector config: OpenAIKey is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("vector config: EmbeddingModel is required")
	}
	if c.EmbeddingDims <= 0 {
		return errors.New("vector config: EmbeddingDims must be positive")
	}
	if c.QdrantURL == "" {
		return errors.New("vector config: QdrantURL is required")
	}
	return nil
}
