// Package kml parses the Google My Maps KML exports the border-crossing maps
// are published as, and walks the folder/placemark tree into flat reception
// points.
//
// XML-derived trees are inconsistent about whether a folder with one child
// holds a single object or a list; decoding every nesting level into a slice
// normalizes that at the parse boundary, so the walker only ever sees
// sequences (possibly of length one).
package kml

import (
	"encoding/xml"
	"io"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

// KML is the export's root element.
type KML struct {
	XMLName  xml.Name `xml:"kml"`
	Document Document `xml:"Document"`
}

// Document is the top-level container. Some exports nest everything in
// folders, others hang placemarks directly off the document.
type Document struct {
	Name       string      `xml:"name"`
	Folders    []Folder    `xml:"Folder"`
	Placemarks []Placemark `xml:"Placemark"`
}

// Folder is a named grouping node; it may nest sub-folders, placemarks, or both.
type Folder struct {
	Name       string      `xml:"name"`
	Folders    []Folder    `xml:"Folder"`
	Placemarks []Placemark `xml:"Placemark"`
}

// Placemark is a single named entry carrying a style reference and at most
// one geometry. Only point geometries matter here; polygons (border region
// overlays) are carried so the walker can recognize and skip them.
type Placemark struct {
	Name     string   `xml:"name"`
	StyleURL string   `xml:"styleUrl"`
	Point    *Point   `xml:"Point"`
	Polygon  *Polygon `xml:"Polygon"`
}

// Point holds a "lon,lat[,alt]" coordinate string.
type Point struct {
	Coordinates string `xml:"coordinates"`
}

// Polygon is a non-point geometry. Never extracted, only recognized.
type Polygon struct {
	OuterBoundary string `xml:"outerBoundaryIs>LinearRing>coordinates"`
}

// Parse decodes a KML document. Exports are not always UTF-8, so the decoder
// honors the XML declaration's charset.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, eris.Wrapf(err, "kml: unsupported charset %q", charset)
		}
		return enc.NewDecoder().Reader(input), nil
	}

	var k KML
	if err := decoder.Decode(&k); err != nil {
		return nil, eris.Wrap(err, "kml: decode")
	}
	return &k.Document, nil
}
