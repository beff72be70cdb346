package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tmc/langchaingo/schema"

	"github.com/poiesic/filingest/xbrl"
)

// filePattern selects the filing text files inside a download directory.
const filePattern = "**/*.txt"

// Combiner turns a set of filing directories into one plain-text document.
//
// Per-file parse failures never fail a combination. Files that are not
// XBRL, or are XBRL with a broken structure, are logged and skipped; the
// remaining files still contribute their text.
type Combiner struct {
	logger *slog.Logger
}

// NewCombiner creates a Combiner. A nil logger falls back to slog.Default.
func NewCombiner(logger *slog.Logger) *Combiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Combiner{logger: logger.With("component", "combiner")}
}

// Combine enumerates the text files under each directory, extracts the
// narrative text of every parseable filing, and joins the per-file texts
// with a blank line, directories first and files in sorted order within
// each directory. When nothing parses the result is a document with empty
// text, not an error.
func (c *Combiner) Combine(ctx context.Context, dirPaths []string) (schema.Document, error) {
	var texts []string
	for _, dirPath := range dirPaths {
		files, err := doublestar.FilepathGlob(filepath.Join(dirPath, filePattern))
		if err != nil {
			c.logger.Warn("skipped directory: cannot enumerate files", "dir", dirPath, "err", err)
			continue
		}
		sort.Strings(files)

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return schema.Document{}, err
			}

			text, err := c.extractFile(file)
			switch {
			case err == nil:
				texts = append(texts, text)
			case errors.Is(err, xbrl.ErrNotXBRL):
				c.logger.Warn("skipped document: is not a XBRL document", "file", file)
			case errors.Is(err, xbrl.ErrMalformed):
				c.logger.Warn("skipped document: is not a valid XBRL document", "file", file, "err", err)
			default:
				c.logger.Error("failed to parse document", "file", file, "err", err)
			}
		}
	}

	return schema.Document{
		PageContent: strings.Join(texts, "\n\n"),
		Metadata:    map[string]any{},
	}, nil
}

// extractFile parses one filing file and returns its narrative text.
func (c *Combiner) extractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	doc, err := xbrl.Parse(f)
	if err != nil {
		return "", err
	}
	return doc.NarrativeText(), nil
}
