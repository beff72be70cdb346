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


package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/filingest/core"
)

const (
	defaultBaseURL = "https://www.sec.gov"
	defaultDataURL = "https://data.sec.gov"

	submissionFile = "full-submission.txt"
)

// Client downloads filings from the SEC EDGAR archive. EDGAR requires a
// declared User-Agent of the form "Company email@domain.com"; requests
// without one are rejected.
type Client struct {
	httpClient *http.Client
	baseURL    string // www.sec.gov: company index and archive files
	dataURL    string // data.sec.gov: submissions API
	userAgent  string
	logger     *slog.Logger
}

var _ Retriever = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for all EDGAR requests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the archive host. Used in tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithDataURL overrides the submissions API host. Used in tests.
func WithDataURL(dataURL string) ClientOption {
	return func(c *Client) {
		c.dataURL = strings.TrimSuffix(dataURL, "/")
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewClient creates an EDGAR client identifying itself as the given
// company and contact email.
func NewClient(company, email string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		dataURL:    defaultDataURL,
		userAgent:  company + " " + email,
		logger:     slog.Default().With("component", "edgar"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Download fetches filings for the ticker into the canonical directory
// under saveDir and returns that directory. Filings already present on
// disk are not fetched again.
func (c *Client) Download(ctx context.Context, ticker string, docType core.DocType, saveDir string, limit int) (string, error) {
	ticker = core.NormalizeTicker(ticker)
	dir := FilingDir(saveDir, ticker, docType)

	if err := c.download(ctx, ticker, docType, dir, limit); err != nil {
		return "", fmt.Errorf("fetching %s filings for %s from EDGAR: %w", docType, ticker, err)
	}
	return dir, nil
}

func (c *Client) download(ctx context.Context, ticker string, docType core.DocType, dir string, limit int) error {
	cik, err := c.lookupCIK(ctx, ticker)
	if err != nil {
		return err
	}

	recent, err := c.recentFilings(ctx, cik)
	if err != nil {
		return err
	}

	fetched := 0
	for i, form := range recent.Form {
		if form != string(docType) {
			continue
		}
		if limit > 0 && fetched >= limit {
			break
		}
		fetched++

		accession := recent.AccessionNumber[i]
		target := filepath.Join(dir, accession, submissionFile)
		if _, statErr := os.Stat(target); statErr == nil {
			c.logger.Debug("filing already downloaded", "ticker", ticker, "accession", accession)
			continue
		}

		if err := c.fetchFiling(ctx, cik, accession, target); err != nil {
			return fmt.Errorf("filing %s: %w", accession, err)
		}
		c.logger.Debug("downloaded filing", "ticker", ticker, "accession", accession)
	}

	return nil
}

// lookupCIK resolves a ticker symbol to its SEC Central Index Key via the
// company ticker index.
func (c *Client) lookupCIK(ctx context.Context, ticker string) (int64, error) {
	body, err := c.get(ctx, c.baseURL+"/files/company_tickers.json")
	if err != nil {
		return 0, err
	}
	defer body.Close()

	var index map[string]struct {
		CIK    int64  `json:"cik_str"`
		Ticker string `json:"ticker"`
	}
	if err := json.NewDecoder(body).Decode(&index); err != nil {
		return 0, fmt.Errorf("decoding company index: %w", err)
	}

	for _, entry := range index {
		if strings.EqualFold(entry.Ticker, ticker) {
			return entry.CIK, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
}

// filingIndex is the column-oriented recent-filings listing from the
// submissions API.
type filingIndex struct {
	AccessionNumber []string `json:"accessionNumber"`
	Form            []string `json:"form"`
}

func (c *Client) recentFilings(ctx context.Context, cik int64) (*filingIndex, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/submissions/CIK%010d.json", c.dataURL, cik))
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var subs struct {
		Filings struct {
			Recent filingIndex `json:"recent"`
		} `json:"filings"`
	}
	if err := json.NewDecoder(body).Decode(&subs); err != nil {
		return nil, fmt.Errorf("decoding submissions: %w", err)
	}

	recent := subs.Filings.Recent
	if len(recent.AccessionNumber) != len(recent.Form) {
		return nil, fmt.Errorf("submissions index column mismatch: %d accessions, %d forms",
			len(recent.AccessionNumber), len(recent.Form))
	}
	return &recent, nil
}

// fetchFiling downloads one complete submission text file to target.
func (c *Client) fetchFiling(ctx context.Context, cik int64, accession, target string) error {
	archivePath := fmt.Sprintf("%s/Archives/edgar/data/%d/%s/%s.txt",
		c.baseURL, cik, strings.ReplaceAll(accession, "-", ""), accession)

	body, err := c.get(ctx, archivePath)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating filing directory: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating filing file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(target) // do not leave a truncated filing behind
		return fmt.Errorf("writing filing file: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: %s", ErrUnexpectedStatus, rawURL, resp.Status)
	}
	return resp.Body, nil
}
