package scraper

import (
	"bytes"
	"context"

	"golang.org/x/net/html"

	"github.com/Aziroshin/scraper/internal/fetcher"
	"github.com/Aziroshin/scraper/internal/htmltext"
	"github.com/Aziroshin/scraper/internal/kml"
	"github.com/Aziroshin/scraper/internal/record"
)

// fetchHTML downloads and parses one of the narrative pages. Transport errors
// pass through untouched; an undecodable document becomes a ParseError naming
// the scraper.
func fetchHTML(ctx context.Context, f fetcher.Fetcher, url, source string) (*html.Node, error) {
	data, err := f.DownloadBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := htmltext.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return doc, nil
}

// fetchPoints downloads a KML export and walks it into reception points.
func fetchPoints(ctx context.Context, f fetcher.Fetcher, url, source string, opts kml.WalkOptions) ([]record.ReceptionPoint, error) {
	data, err := f.DownloadBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := kml.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return kml.Walk(doc, opts), nil
}
