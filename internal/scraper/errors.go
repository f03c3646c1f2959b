package scraper

import (
	"errors"
	"fmt"
)

// ParseError reports a source document whose expected structure is missing or
// undecodable. It always names the source so a batch log pins the failing
// country. A ParseError must propagate: a silently empty result would be
// indistinguishable from "no data available" and the stale record would be
// replaced with an empty one.
type ParseError struct {
	Source string // scraper name, e.g. "hungary-hu"
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseErrorf builds a ParseError from a format string.
func parseErrorf(source, format string, args ...any) *ParseError {
	return &ParseError{Source: source, Err: fmt.Errorf(format, args...)}
}

// IsParse reports whether any error in the chain is a ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
