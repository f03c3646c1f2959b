package scraper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aziroshin/scraper/internal/record"
)

func TestMoldova_Scrape(t *testing.T) {
	srv := fixtureServer(t)
	m := &Moldova{
		generalURL: srv.URL + "/moldova.html",
		kmlURL:     srv.URL + "/moldova.kml",
	}

	rec, err := m.Scrape(context.Background(), testFetcher())
	require.NoError(t, err)

	assert.Equal(t, "moldova-ro", rec.Country)
	// The repeated lead-in paragraph survives once, in first-seen position.
	assert.Equal(t, []string{
		"TRAVERSAREA FRONTIEREI DE STAT MOLDO-UCRAINENE",
		"Pentru cetăţenii Republicii Moldova şi Ucrainei:",
		"Este necesar paşaportul sau buletinul de identitate (pentru locuitorii raioanelor de frontieră).",
		"Regiunea Cernăuţi :",
		"Regiunea Odesa:",
		"Mijloacele de transport traversează frontiera de stat a Republicii Moldova pe baza documentelor valabile, care permit trecerea frontierei de stat.",
	}, rec.General)

	require.Len(t, rec.Reception, 4)
	assert.Equal(t, record.ReceptionPoint{
		Name: "Vasilcău-Velikaia Koșnița",
		Lat:  "48.1286973",
		Lon:  "28.4190675",
	}, rec.Reception[0])

	// Two checkpoints legitimately share a name; both are kept.
	assert.Equal(t, "Cosăuți-Iampol", rec.Reception[2].Name)
	assert.Equal(t, "Cosăuți-Iampol", rec.Reception[3].Name)
	assert.NotEqual(t, rec.Reception[2].Lat, rec.Reception[3].Lat)
}
