package kml

import (
	"strings"

	"github.com/Aziroshin/scraper/internal/normalize"
	"github.com/Aziroshin/scraper/internal/record"
)

// WalkOptions filters which folders and placemarks survive a traversal.
type WalkOptions struct {
	// FolderWhitelist, when non-nil, names the only folders the walker enters.
	// The check applies to every folder reached, nested ones included; a miss
	// skips the whole subtree. nil admits every folder (an empty non-nil
	// whitelist admits none).
	FolderWhitelist []string

	// StyleBlacklist names styleUrl values whose placemarks are dropped.
	// The maps mark closed or cargo-only crossings with dedicated icon styles.
	StyleBlacklist []string
}

// Walk flattens the folder/placemark tree into reception points in strict
// depth-first document order. That ordering is load-bearing: operators match
// the output visually against the original map.
//
// Placemarks without a point geometry contribute nothing, and a missing name
// normalizes to "". Coordinates come as "lon,lat[,alt]" — lon first. That is
// the source export's order, not the conventional lat,lon; it must not be
// swapped, downstream consumers expect the mapping as-is.
func Walk(doc *Document, opts WalkOptions) []record.ReceptionPoint {
	w := &walker{
		deny:   toSet(opts.StyleBlacklist),
		points: []record.ReceptionPoint{},
	}
	if opts.FolderWhitelist != nil {
		w.allow = toSet(opts.FolderWhitelist)
	}

	w.placemarks(doc.Placemarks)
	for _, f := range doc.Folders {
		w.folder(f)
	}
	return w.points
}

type walker struct {
	allow  map[string]struct{} // nil means every folder
	deny   map[string]struct{}
	points []record.ReceptionPoint
}

func (w *walker) folder(f Folder) {
	if w.allow != nil {
		if _, ok := w.allow[f.Name]; !ok {
			return
		}
	}
	w.placemarks(f.Placemarks)
	for _, sub := range f.Folders {
		w.folder(sub)
	}
}

func (w *walker) placemarks(pms []Placemark) {
	for _, pm := range pms {
		if _, banned := w.deny[pm.StyleURL]; banned {
			continue
		}
		if pm.Point == nil {
			continue
		}
		coord := strings.SplitN(pm.Point.Coordinates, ",", 3)
		if len(coord) < 2 {
			continue
		}
		w.points = append(w.points, record.ReceptionPoint{
			Name: normalize.String(pm.Name),
			Lon:  strings.TrimSpace(coord[0]),
			Lat:  strings.TrimSpace(coord[1]),
		})
	}
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
