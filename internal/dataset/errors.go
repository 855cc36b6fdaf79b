package dataset

import (
	"fmt"
)

// LoadError reports a source table that could not be read at all: the file is
// missing, unreadable, or its header lacks a required column. Fatal for the
// dashboard session.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseError reports a row field that could not be decoded. The loader never
// drops malformed rows silently: a bad date or numeric field means the file
// does not match the expected schema, so the whole load fails.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s line %d column %q: %v", e.Path, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
