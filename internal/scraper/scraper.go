// Package scraper turns each national source into a canonical country record.
// One Scraper per source+locale; a Registry selects them and the Engine runs
// the selected pipelines in parallel, each one fetch → extract → assemble →
// write, sharing nothing but the fetcher and the store.
package scraper

import (
	"context"

	"github.com/Aziroshin/scraper/internal/fetcher"
	"github.com/Aziroshin/scraper/internal/record"
)

// Scraper defines the interface each national source must implement.
type Scraper interface {
	// Name returns the storage key, e.g. "hungary-hu". Unique per
	// source+locale combination.
	Name() string

	// Source returns the canonical source URL persisted with the record.
	Source() string

	// Scrape fetches the source documents, extracts general-info lines and
	// reception points, and assembles the country record. It performs no
	// writes and holds no state across runs.
	Scrape(ctx context.Context, f fetcher.Fetcher) (*record.CountryRecord, error)
}

// Store is the persistence sink the engine writes assembled records into.
type Store interface {
	Write(ctx context.Context, rec *record.CountryRecord, testSuffix string) error
}
