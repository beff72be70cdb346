package edgar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/filingest/core"
)

// fakeEdgar serves the three endpoints the client touches: the company
// ticker index, the submissions API and the filing archive.
type fakeEdgar struct {
	archive *httptest.Server
	data    *httptest.Server

	forms      []string
	accessions []string
	fetched    map[string]int
}

func newFakeEdgar(t *testing.T, accessions, forms []string) *fakeEdgar {
	t.Helper()

	f := &fakeEdgar{forms: forms, accessions: accessions, fetched: map[string]int{}}

	f.archive = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		switch {
		case r.URL.Path == "/files/company_tickers.json":
			fmt.Fprint(w, `{"0":{"cik_str":320193,"ticker":"AAPL","title":"Apple Inc."}}`)
		default:
			f.fetched[r.URL.Path]++
			fmt.Fprint(w, "<xbrl><p><span>Filing body.</span></p></xbrl>")
		}
	}))
	t.Cleanup(f.archive.Close)

	f.data = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/submissions/CIK0000320193.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		resp := `{"filings":{"recent":{"accessionNumber":[`
		for i, a := range f.accessions {
			if i > 0 {
				resp += ","
			}
			resp += fmt.Sprintf("%q", a)
		}
		resp += `],"form":[`
		for i, fm := range f.forms {
			if i > 0 {
				resp += ","
			}
			resp += fmt.Sprintf("%q", fm)
		}
		resp += `]}}}`
		fmt.Fprint(w, resp)
	}))
	t.Cleanup(f.data.Close)

	return f
}

func (f *fakeEdgar) client() *Client {
	return NewClient("Company", "my.email@domain.com",
		WithBaseURL(f.archive.URL),
		WithDataURL(f.data.URL),
	)
}

func TestFilingDir(t *testing.T) {
	dir := FilingDir("/data", "aapl", core.DocType10K)
	assert.Equal(t, "/data/sec-edgar-filings/AAPL/10-K/", dir)
}

func TestClient_Download(t *testing.T) {
	fake := newFakeEdgar(t,
		[]string{"0000320193-23-000106", "0000320193-23-000077"},
		[]string{"10-K", "10-Q"},
	)
	saveDir := t.TempDir()

	dir, err := fake.client().Download(context.Background(), "aapl", core.DocType10K, saveDir, 0)
	require.NoError(t, err)
	assert.Equal(t, FilingDir(saveDir, "AAPL", core.DocType10K), dir)

	// Only the 10-K accession lands on disk.
	body, err := os.ReadFile(filepath.Join(dir, "0000320193-23-000106", "full-submission.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "Filing body.")

	_, err = os.Stat(filepath.Join(dir, "0000320193-23-000077"))
	assert.True(t, os.IsNotExist(err))
}

func TestClient_DownloadRespectsLimit(t *testing.T) {
	fake := newFakeEdgar(t,
		[]string{"acc-1", "acc-2", "acc-3"},
		[]string{"8-K", "8-K", "8-K"},
	)

	dir, err := fake.client().Download(context.Background(), "AAPL", core.DocType8K, t.TempDir(), 2)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestClient_DownloadSkipsExistingFilings(t *testing.T) {
	fake := newFakeEdgar(t, []string{"acc-1"}, []string{"10-K"})
	saveDir := t.TempDir()
	client := fake.client()

	_, err := client.Download(context.Background(), "AAPL", core.DocType10K, saveDir, 0)
	require.NoError(t, err)
	_, err = client.Download(context.Background(), "AAPL", core.DocType10K, saveDir, 0)
	require.NoError(t, err)

	for path, count := range fake.fetched {
		assert.Equal(t, 1, count, "filing %s fetched more than once", path)
	}
}

func TestClient_DownloadUnknownTicker(t *testing.T) {
	fake := newFakeEdgar(t, nil, nil)

	_, err := fake.client().Download(context.Background(), "ZZZZ", core.DocType10K, t.TempDir(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTickerNotFound)
	// The wrapped error names the ticker and document type.
	assert.Contains(t, err.Error(), "ZZZZ")
	assert.Contains(t, err.Error(), "10-K")
}

func TestClient_DownloadArchiveFailure(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)

	client := NewClient("Company", "my.email@domain.com",
		WithBaseURL(broken.URL), WithDataURL(broken.URL))

	_, err := client.Download(context.Background(), "AAPL", core.DocType10K, t.TempDir(), 0)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}
