// Package fetcher downloads raw page and KML bytes. It is the pipeline's only
// suspension point: the scrapers hand it a URL and get bytes or a
// TransportError back, nothing in here parses anything.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Fetcher defines the interface for downloading remote documents.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// DownloadBytes fetches the URL and returns the full body.
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// TransportError reports a fetch that failed at the network/HTTP level
// (DNS, connect, timeout, non-2xx status) after the fetcher's own retry
// budget was exhausted.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether any error in the chain is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
