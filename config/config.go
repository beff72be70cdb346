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


// Package config loads process-wide configuration from the environment.
//
// Every setting is an environment variable with the FILINGEST_ prefix,
// e.g. FILINGEST_OPENAI_API_KEY. Credentials have no defaults; paths and
// identity settings do.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const envPrefix = "FILINGEST"

// Config is the process-wide configuration.
type Config struct {
	// OpenAIAPIKey is the credential for the embedding provider.
	OpenAIAPIKey string

	// QdrantURL and QdrantAPIKey locate and authenticate the vector index.
	QdrantURL    string
	QdrantAPIKey string

	// EmbeddingModel and EmbeddingDims select the embedding model.
	EmbeddingModel string
	EmbeddingDims  int

	// DBPath is where the metadata store lives.
	DBPath string

	// LogPath is the rotating log file.
	LogPath string

	// EdgarCompany and EdgarEmail identify this process to the SEC, which
	// requires a declared User-Agent on archive requests.
	EdgarCompany string
	EdgarEmail   string
}

// Load reads the configuration from the environment, applying defaults for
// everything but credentials. Missing credentials are not an error here;
// the components that need them validate at construction time.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("embedding_model", "text-embedding-ada-002")
	v.SetDefault("embedding_dims", 1536)
	v.SetDefault("db_path", filepath.Join(os.TempDir(), "filingest", "filings.db"))
	v.SetDefault("log_path", filepath.Join(os.TempDir(), "filingest", "filingest.log"))
	v.SetDefault("edgar_company", "Company")
	v.SetDefault("edgar_email", "my.email@domain.com")

	return &Config{
		OpenAIAPIKey:   v.GetString("openai_api_key"),
		QdrantURL:      v.GetString("qdrant_url"),
		QdrantAPIKey:   v.GetString("qdrant_api_key"),
		EmbeddingModel: v.GetString("embedding_model"),
		EmbeddingDims:  v.GetInt("embedding_dims"),
		DBPath:         v.GetString("db_path"),
		LogPath:        v.GetString("log_path"),
		EdgarCompany:   v.GetString("edgar_company"),
		EdgarEmail:     v.GetString("edgar_email"),
	}
}
