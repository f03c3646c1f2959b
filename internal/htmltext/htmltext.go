// Package htmltext wraps golang.org/x/net/html with the small set of
// document-order traversal helpers the narrative-HTML extractors share:
// find a container node, pull normalized text lines out of selected elements,
// and read table rows as cell slices.
package htmltext

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Aziroshin/scraper/internal/normalize"
)

// Parse decodes an HTML document into a node tree.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, eris.Wrap(err, "htmltext: parse")
	}
	return doc, nil
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasClass reports whether the node's class attribute contains the given class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first element (depth-first document order) matching the
// predicate, or nil.
func Find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// FindByClass returns the first element carrying the given class, or nil.
func FindByClass(n *html.Node, class string) *html.Node {
	return Find(n, func(e *html.Node) bool { return HasClass(e, class) })
}

// FindByID returns the element with the given id, or nil.
func FindByID(n *html.Node, id string) *html.Node {
	return Find(n, func(e *html.Node) bool { return Attr(e, "id") == id })
}

// Text returns the normalized concatenation of all text nodes under n,
// skipping script and style contents.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return normalize.String(b.String())
}

// Lines collects the normalized text of every element under root whose tag is
// in tags, in depth-first document order, dropping lines that normalize to
// empty. A matched element is emitted as one line; its children are not
// matched again (a <li> inside a matched <li> does not double-report).
func Lines(root *html.Node, tags ...string) []string {
	want := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		want[tag] = struct{}{}
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, ok := want[n.Data]; ok {
				if line := Text(n); line != "" {
					lines = append(lines, line)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return lines
}

// TableRows returns the cell texts of every data <tr> under root, one string
// slice per row, in document order. Cells are <td> or <th>, normalized. Rows
// built entirely of <th> cells are headers and are dropped, so a container
// holding several tables yields only their data rows; a row with no cells is
// dropped too.
func TableRows(root *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			var cells []string
			hasData := false
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
					cells = append(cells, Text(c))
					if c.DataAtom == atom.Td {
						hasData = true
					}
				}
			}
			if len(cells) > 0 && hasData {
				rows = append(rows, cells)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return rows
}
