// Package record holds the canonical per-country snapshot produced by one
// scrape run, and the assembly step that finalizes it before persistence.
package record

import "time"

// ReceptionPoint is a single named geographic location relevant to border
// crossing (checkpoint, aid station, reception center). All five fields are
// plain strings so the persisted item always carries every key, empty or not.
type ReceptionPoint struct {
	Name    string
	Lat     string // decimal degrees, as encoded by the source
	Lon     string
	Address string
	QR      string // opaque reference code, e.g. a QR payload from the source page
}

// CountryRecord is the unit of persistence: the latest snapshot for one
// source+locale combination, keyed by Country. Each write fully replaces the
// previous snapshot.
type CountryRecord struct {
	Country   string // e.g. "poland-pl"
	General   []string
	Reception []ReceptionPoint
	Source    string    // source URL, may be empty
	WrittenAt time.Time // stamped by the store writer
}

// Assemble packages an extractor's output into a CountryRecord. General lines
// are deduplicated keeping the first occurrence of each distinct string and
// the relative order of survivors; points pass through untouched (repeated
// names or coordinates in the source are legitimate).
func Assemble(country string, general []string, points []ReceptionPoint, source string) *CountryRecord {
	seen := make(map[string]struct{}, len(general))
	deduped := make([]string, 0, len(general))
	for _, line := range general {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		deduped = append(deduped, line)
	}

	if points == nil {
		points = []ReceptionPoint{}
	}

	return &CountryRecord{
		Country:   country,
		General:   deduped,
		Reception: points,
		Source:    source,
	}
}
