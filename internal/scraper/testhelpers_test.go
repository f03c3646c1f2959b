package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aziroshin/scraper/internal/fetcher"
)

func testFetcher() fetcher.Fetcher {
	return fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		Timeout:    5 * time.Second,
		MaxRetries: 1,
	})
}

// fixtureServer serves the package fixtures; scrapers under test get
// constructed against its URLs.
func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.FileServer(http.Dir("testdata")))
	t.Cleanup(srv.Close)
	return srv
}

// errorServer always responds with the given status.
func errorServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}
