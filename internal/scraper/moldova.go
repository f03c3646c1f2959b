package scraper

import (
	"context"

	"github.com/Aziroshin/scraper/internal/fetcher"
	"github.com/Aziroshin/scraper/internal/htmltext"
	"github.com/Aziroshin/scraper/internal/kml"
	"github.com/Aziroshin/scraper/internal/record"
)

const (
	moldovaName       = "moldova-ro"
	moldovaGeneralURL = "https://border.gov.md/traversarea-frontierei-de-stat"
	moldovaKMLURL     = "https://www.google.com/maps/d/kml?forcekml=1&mid=1m0cAhgKYcJt0zp69wEoZxWiBM2m8cDCo"
)

// Moldova scrapes border.gov.md for the Romanian-language crossing rules and
// the border police map's KML export for reception points. The map carries
// everything in one flat folder, so the walk runs unfiltered.
type Moldova struct {
	generalURL string
	kmlURL     string
}

// NewMoldova creates the moldova-ro scraper against the production URLs.
func NewMoldova() *Moldova {
	return &Moldova{
		generalURL: moldovaGeneralURL,
		kmlURL:     moldovaKMLURL,
	}
}

func (m *Moldova) Name() string   { return moldovaName }
func (m *Moldova) Source() string { return m.generalURL }

func (m *Moldova) Scrape(ctx context.Context, f fetcher.Fetcher) (*record.CountryRecord, error) {
	doc, err := fetchHTML(ctx, f, m.generalURL, moldovaName)
	if err != nil {
		return nil, err
	}

	content := htmltext.FindByClass(doc, "region-content")
	if content == nil {
		return nil, parseErrorf(moldovaName, "general page: no region-content container")
	}
	general := htmltext.Lines(content, "h2", "h3", "p", "li")

	points, err := fetchPoints(ctx, f, m.kmlURL, moldovaName, kml.WalkOptions{})
	if err != nil {
		return nil, err
	}

	return record.Assemble(moldovaName, general, points, m.generalURL), nil
}
