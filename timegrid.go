// Package timegrid provides a fluent API for reconstructing university
// timetable sections from rendered timetable documents.
//
// Basic usage:
//
//	sections, skipped, err := timegrid.Open("timetable.pdf").Sections()
//	if err != nil {
//	    // handle error
//	}
//	for _, s := range skipped {
//	    log.Printf("page %d skipped: %s", s.Page, s.Reason)
//	}
//
// With options:
//
//	sections, _, err := timegrid.Open("timetable.pdf").
//	    Pages(1, 2, 3).
//	    LineMode().
//	    Sections()
//
// For advanced use cases, the lower-level reader, extract, and schedule
// packages are also available.
package timegrid

import (
	"github.com/tsawler/timegrid/model"
	"github.com/tsawler/timegrid/reader"
)

// Open opens a PDF timetable and returns an Extractor for fluent
// configuration. The underlying file is opened lazily by the terminal
// operation and closed when it finishes.
//
// Example:
//
//	sections, skipped, err := timegrid.Open("timetable.pdf").Sections()
func Open(filename string) *Extractor {
	return &Extractor{
		source:   sourcePDF,
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-opened reader.Document.
// The caller is responsible for closing the document.
func FromDocument(doc *reader.Document) *Extractor {
	return &Extractor{
		source:  sourcePDF,
		doc:     doc,
		options: defaultOptions(),
	}
}

// FromFragmentPages creates an Extractor over positioned fragments captured
// elsewhere, one slice per page.
func FromFragmentPages(pages [][]model.TextFragment) *Extractor {
	return &Extractor{
		source:    sourceFragments,
		fragments: pages,
		options:   defaultOptions(),
	}
}

// FromFragmentDumps creates an Extractor over JSON-lines fragment dump
// files, one file per page, in the order given.
func FromFragmentDumps(paths ...string) *Extractor {
	return &Extractor{
		source:    sourceDumps,
		dumpPaths: paths,
		options:   defaultOptions(),
	}
}

// FromText creates an Extractor over plain reading-order text. Text sources
// carry no positions, so extraction always runs in line mode.
func FromText(text string) *Extractor {
	return &Extractor{
		source:  sourceText,
		text:    text,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSections wraps a call to Sections() and panics if the error is
// non-nil, discarding the skip reports.
//
// Example:
//
//	sections := timegrid.MustSections(timegrid.Open("timetable.pdf").Sections())
func MustSections(sections []model.Section, _ []model.SkipReport, err error) []model.Section {
	if err != nil {
		panic(err)
	}
	return sections
}
