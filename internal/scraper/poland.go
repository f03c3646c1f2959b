package scraper

import (
	"context"

	"golang.org/x/net/html"

	"github.com/Aziroshin/scraper/internal/fetcher"
	"github.com/Aziroshin/scraper/internal/htmltext"
	"github.com/Aziroshin/scraper/internal/record"
)

// The same gov.pl article is published in three locales; each locale is its
// own record so downstream consumers pick by language.
var polandLocales = []struct {
	name string
	url  string
}{
	{"poland-pl", "https://www.gov.pl/web/udsc/ukraina2"},
	{"poland-en", "https://www.gov.pl/web/udsc/ukraina-en"},
	{"poland-ua", "https://www.gov.pl/web/udsc/ukraina-ua"},
}

// Poland scrapes one locale of the gov.pl information page. Unlike the other
// sources there is no map export: the reception points are embedded in the
// page itself as a table of name | address | qr rows, with no coordinates.
type Poland struct {
	name string
	url  string
}

// NewPoland creates the three locale instances against the production URLs.
func NewPoland() []*Poland {
	out := make([]*Poland, len(polandLocales))
	for i, loc := range polandLocales {
		out[i] = &Poland{name: loc.name, url: loc.url}
	}
	return out
}

func (p *Poland) Name() string   { return p.name }
func (p *Poland) Source() string { return p.url }

func (p *Poland) Scrape(ctx context.Context, f fetcher.Fetcher) (*record.CountryRecord, error) {
	doc, err := fetchHTML(ctx, f, p.url, p.name)
	if err != nil {
		return nil, err
	}

	content := htmltext.FindByClass(doc, "editor-content")
	if content == nil {
		return nil, parseErrorf(p.name, "page: no editor-content container")
	}

	// Narrative text only; the table holds the points, not general info.
	general := htmltext.Lines(content, "h2", "h3", "p", "li")

	points, err := p.points(content)
	if err != nil {
		return nil, err
	}

	return record.Assemble(p.name, general, points, p.url), nil
}

// points reads the reception-point table. Header rows are dropped by
// TableRows; every data row carries exactly the three columns
// name | address | qr. Any other width means the page layout changed and the
// run must fail loudly. A page without a table yields no points; some locales
// lag behind the Polish one.
func (p *Poland) points(content *html.Node) ([]record.ReceptionPoint, error) {
	rows := htmltext.TableRows(content)
	if len(rows) == 0 {
		return []record.ReceptionPoint{}, nil
	}

	points := make([]record.ReceptionPoint, 0, len(rows))
	for _, row := range rows {
		if len(row) != 3 {
			return nil, parseErrorf(p.name, "point table: expected 3 columns, got %d", len(row))
		}
		points = append(points, record.ReceptionPoint{
			Name:    row[0],
			Address: row[1],
			QR:      row[2],
		})
	}
	return points, nil
}
