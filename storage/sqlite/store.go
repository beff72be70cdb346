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


package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/poiesic/filingest/core"
	"github.com/poiesic/filingest/storage"
)

// schema holds the single bookkeeping table. The UNIQUE clause gives
// last-write-wins semantics per (ticker, doc_type) pair.
const schema = `
CREATE TABLE IF NOT EXISTS downloaded_docs (
	id INTEGER PRIMARY KEY,
	ticker TEXT NOT NULL,
	doc_type TEXT NOT NULL,
	dir_path TEXT NOT NULL,
	updated_at timestamp DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(ticker, doc_type) ON CONFLICT REPLACE
)`

// FilingStore is a SQLite-backed storage.FilingRepository.
type FilingStore struct {
	db     *sql.DB
	path   string
	closed bool
	logger *slog.Logger
}

var _ storage.FilingRepository = (*FilingStore)(nil)

// NewFilingStore opens (or creates) the SQLite database at path and ensures
// the bookkeeping table exists. Opening is idempotent. An open failure is
// fatal to the run and propagates wrapped in storage.ErrOpenFailed.
func NewFilingStore(path string) (*FilingStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("%w: creating directory %s: %w", storage.ErrOpenFailed, dir, err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrOpenFailed, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: creating downloaded_docs table: %w", storage.ErrOpenFailed, err)
	}

	return &FilingStore{
		db:     db,
		path:   path,
		logger: slog.Default().With("component", "filing-store"),
	}, nil
}

// Path returns the database file path.
func (s *FilingStore) Path() string {
	return s.path
}

// SaveFiling inserts a filing record. An existing record for the same
// (ticker, doc_type) pair is replaced by the table's conflict clause. The
// driver commits before Exec returns, so the row is durable on return.
func (s *FilingStore) SaveFiling(ctx context.Context, record *core.FilingRecord) error {
	if s.closed {
		return storage.ErrStorageClosed
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrInvalidRecord, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO downloaded_docs (ticker, doc_type, dir_path) VALUES (?, ?, ?)`,
		core.NormalizeTicker(record.Ticker), string(record.DocType), record.DirPath,
	)
	if err != nil {
		return fmt.Errorf("saving filing record for %s %s: %w", record.Ticker, record.DocType, err)
	}
	return nil
}

// GetFilings returns the records for a ticker, optionally narrowed to one
// document type. No match yields an empty slice.
func (s *FilingStore) GetFilings(ctx context.Context, ticker string, docType core.DocType) ([]core.FilingRecord, error) {
	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	query := `SELECT ticker, doc_type, dir_path, updated_at FROM downloaded_docs WHERE ticker = ?`
	args := []any{core.NormalizeTicker(ticker)}
	if docType != "" {
		query += ` AND doc_type = ?`
		args = append(args, string(docType))
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying filing records for %s: %w", ticker, err)
	}
	defer rows.Close()

	var records []core.FilingRecord
	for rows.Next() {
		var rec core.FilingRecord
		var dt string
		if err := rows.Scan(&rec.Ticker, &dt, &rec.DirPath, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning filing record: %w", err)
		}
		rec.DocType = core.DocType(dt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating filing records: %w", err)
	}
	return records, nil
}

// Close releases the database connection. A second Close logs a warning
// and returns nil.
func (s *FilingStore) Close() error {
	if s.closed {
		s.logger.Warn("store connection already closed")
		return nil
	}
	s.closed = true
	return s.db.Close()
}
