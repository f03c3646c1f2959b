package scraper

import (
	"context"

	"github.com/Aziroshin/scraper/internal/fetcher"
	"github.com/Aziroshin/scraper/internal/htmltext"
	"github.com/Aziroshin/scraper/internal/kml"
	"github.com/Aziroshin/scraper/internal/record"
)

const (
	slovakiaName       = "slovakia-sk"
	slovakiaGeneralURL = "https://www.minv.sk/?hranicne-priechody-1"
	// The third revision of the map, made with the online version of Google
	// Earth; earlier exports nested placemark data the bubble renderer choked on.
	slovakiaKMLURL = "https://www.google.com/maps/d/kml?forcekml=1&mid=1umLgEK-j5BHcJAvRBZMFtWztNzhWwgoP"
)

// Slovakia scrapes the ministry of interior page for general info and the
// crossing map's KML export (a single flat folder) for reception points.
type Slovakia struct {
	generalURL string
	kmlURL     string
}

// NewSlovakia creates the slovakia-sk scraper against the production URLs.
func NewSlovakia() *Slovakia {
	return &Slovakia{
		generalURL: slovakiaGeneralURL,
		kmlURL:     slovakiaKMLURL,
	}
}

func (s *Slovakia) Name() string   { return slovakiaName }
func (s *Slovakia) Source() string { return s.generalURL }

func (s *Slovakia) Scrape(ctx context.Context, f fetcher.Fetcher) (*record.CountryRecord, error) {
	doc, err := fetchHTML(ctx, f, s.generalURL, slovakiaName)
	if err != nil {
		return nil, err
	}

	content := htmltext.FindByID(doc, "content")
	if content == nil {
		return nil, parseErrorf(slovakiaName, "general page: no content container")
	}
	general := htmltext.Lines(content, "h2", "h3", "p", "li")

	points, err := fetchPoints(ctx, f, s.kmlURL, slovakiaName, kml.WalkOptions{})
	if err != nil {
		return nil, err
	}

	return record.Assemble(slovakiaName, general, points, s.generalURL), nil
}
