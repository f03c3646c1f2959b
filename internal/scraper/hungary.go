package scraper

import (
	"context"

	"github.com/Aziroshin/scraper/internal/fetcher"
	"github.com/Aziroshin/scraper/internal/htmltext"
	"github.com/Aziroshin/scraper/internal/kml"
	"github.com/Aziroshin/scraper/internal/record"
)

const (
	hungaryName       = "hungary-hu"
	hungaryGeneralURL = "https://www.police.hu/hu/hirek-es-informaciok/hatarinfo"
	hungaryKMLURL     = "https://www.google.com/maps/d/kml?forcekml=1&mid=1IuBAPHcq8kMVHPyHvbKZVNFGvrGLUdRU"
)

// Crossings the map marks with these icon styles are closed or cargo-only.
var hungaryStyleBlacklist = []string{
	"#icon-1899-A52714",
	"#icon-1899-E65100",
}

// Only the open-crossings folder of the map is relevant; the export also
// carries aid-station and region-overlay folders.
var hungaryFolderWhitelist = []string{"Működő határátkelőhelyek"}

// Hungary scrapes the police.hu border information page for general info and
// the official crossing map's KML export for reception points.
type Hungary struct {
	generalURL string
	kmlURL     string
}

// NewHungary creates the hungary-hu scraper against the production URLs.
func NewHungary() *Hungary {
	return &Hungary{
		generalURL: hungaryGeneralURL,
		kmlURL:     hungaryKMLURL,
	}
}

func (h *Hungary) Name() string   { return hungaryName }
func (h *Hungary) Source() string { return h.generalURL }

// Scrape pulls the narrative page and the KML export and assembles the record.
func (h *Hungary) Scrape(ctx context.Context, f fetcher.Fetcher) (*record.CountryRecord, error) {
	doc, err := fetchHTML(ctx, f, h.generalURL, hungaryName)
	if err != nil {
		return nil, err
	}

	content := htmltext.FindByClass(doc, "page-content")
	if content == nil {
		return nil, parseErrorf(hungaryName, "general page: no page-content container")
	}
	// Headings, paragraphs, list items, and the contact tables' cells, in
	// document order. Repeats across sections are dropped at assembly.
	general := htmltext.Lines(content, "h1", "h2", "h3", "p", "li", "td")

	points, err := fetchPoints(ctx, f, h.kmlURL, hungaryName, kml.WalkOptions{
		FolderWhitelist: hungaryFolderWhitelist,
		StyleBlacklist:  hungaryStyleBlacklist,
	})
	if err != nil {
		return nil, err
	}

	return record.Assemble(hungaryName, general, points, h.generalURL), nil
}
