// Package normalize canonicalizes free text pulled out of the source
// documents. Every extractor runs its strings through here before they reach
// the assembled record.
package normalize

import (
	"strings"
	"unicode"
)

// String collapses every run of Unicode whitespace (newlines, tabs, NBSP —
// the government pages are full of &nbsp;) into a single space and trims the
// ends. Diacritics and punctuation pass through untouched; the sources are
// multilingual and stripping accents would corrupt names. Idempotent, and a
// whitespace-only input yields "".
func String(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// Strings normalizes every element and drops the ones that come out empty,
// preserving order.
func Strings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := String(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
