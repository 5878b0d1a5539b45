package timegrid

import (
	"fmt"
	"strings"

	"github.com/tsawler/timegrid/extract"
	"github.com/tsawler/timegrid/layout"
	"github.com/tsawler/timegrid/model"
	"github.com/tsawler/timegrid/reader"
)

// source identifies what kind of input an Extractor was built over.
type source int

const (
	sourcePDF source = iota
	sourceFragments
	sourceDumps
	sourceText
)

// Extractor provides a fluent interface for reconstructing timetable
// sections. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one is populated, per the source tag)
	source    source
	filename  string
	doc       *reader.Document
	fragments [][]model.TextFragment
	dumpPaths []string
	text      string

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// Each chain method returns a new instance, never mutating its receiver.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		source:    e.source,
		filename:  e.filename,
		doc:       e.doc,
		fragments: e.fragments,
		dumpPaths: e.dumpPaths,
		text:      e.text,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages restricts extraction to the given pages (1-indexed). Multiple calls
// are cumulative. When pages are selected, skip reports number pages by
// their position within the selection.
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange restricts extraction to a page range (1-indexed, inclusive).
func (e *Extractor) PageRange(from, to int) *Extractor {
	newExt := e.clone()
	if from < 1 || to < from {
		newExt.err = fmt.Errorf("invalid page range %d-%d", from, to)
		return newExt
	}
	for p := from; p <= to; p++ {
		newExt.options.pages = append(newExt.options.pages, p)
	}
	return newExt
}

// GeometryMode forces the geometry strategy, which needs positioned input.
func (e *Extractor) GeometryMode() *Extractor {
	newExt := e.clone()
	newExt.options.mode = modeGeometry
	return newExt
}

// LineMode forces the line strategy. Positioned sources are flattened to
// reading-order text first.
func (e *Extractor) LineMode() *Extractor {
	newExt := e.clone()
	newExt.options.mode = modeLine
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Sections runs extraction and returns the emitted sections in document
// order, together with the per-page skip reports. A source that cannot be
// parsed at all returns an error wrapping reader.ErrUnparseable; pages that
// merely fail to yield a section appear in the skip reports instead.
func (e *Extractor) Sections() ([]model.Section, []model.SkipReport, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	switch e.source {
	case sourceText:
		if e.options.mode == modeGeometry {
			return nil, nil, fmt.Errorf("geometry mode requires positioned input")
		}
		result := extract.NewLineExtractor().ExtractText(e.text)
		return result.Sections, result.Skipped, nil

	case sourceFragments:
		return e.extractFragments(selectPages(e.fragments, e.options.pages))

	case sourceDumps:
		pages, err := e.loadDumps()
		if err != nil {
			return nil, nil, err
		}
		return e.extractFragments(pages)

	case sourcePDF:
		return e.extractPDF()
	}

	return nil, nil, fmt.Errorf("no input source specified")
}

// Fragments returns the positioned fragments of each selected page without
// running extraction, for callers doing their own spatial analysis or
// writing dumps via reader.WriteFragmentDump.
func (e *Extractor) Fragments() ([][]model.TextFragment, error) {
	if e.err != nil {
		return nil, e.err
	}

	switch e.source {
	case sourceFragments:
		return selectPages(e.fragments, e.options.pages), nil

	case sourceDumps:
		return e.loadDumps()

	case sourcePDF:
		doc, cleanup, err := e.document()
		if err != nil {
			return nil, err
		}
		defer cleanup()

		return selectPages(doc.AllFragments(), e.options.pages), nil
	}

	return nil, fmt.Errorf("source carries no positioned fragments")
}

// extractFragments runs the configured strategy over fragment pages. Line
// mode flattens each page to reading-order text through row grouping.
func (e *Extractor) extractFragments(pages [][]model.TextFragment) ([]model.Section, []model.SkipReport, error) {
	if e.options.mode == modeLine {
		texts := make([]string, len(pages))
		for i, page := range pages {
			texts[i] = textFromFragments(page)
		}
		result := extract.NewLineExtractor().ExtractPageTexts(texts)
		return result.Sections, result.Skipped, nil
	}

	result := extract.NewGeometryExtractor().ExtractPages(pages)
	return result.Sections, result.Skipped, nil
}

// extractPDF opens the document if needed, reads the selected pages in the
// form the strategy wants, and extracts.
func (e *Extractor) extractPDF() ([]model.Section, []model.SkipReport, error) {
	doc, cleanup, err := e.document()
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()

	selected := selectNumbers(doc.PageCount(), e.options.pages)

	if e.options.mode == modeLine {
		texts := make([]string, len(selected))
		for i, n := range selected {
			// A page that fails to parse extracts as empty and is
			// reported as a skip, not a document failure.
			text, err := doc.PageText(n)
			if err != nil {
				continue
			}
			texts[i] = text
		}
		result := extract.NewLineExtractor().ExtractPageTexts(texts)
		return result.Sections, result.Skipped, nil
	}

	pages := make([][]model.TextFragment, len(selected))
	for i, n := range selected {
		fragments, err := doc.PageFragments(n)
		if err != nil {
			continue
		}
		pages[i] = fragments
	}
	result := extract.NewGeometryExtractor().ExtractPages(pages)
	return result.Sections, result.Skipped, nil
}

// document returns the open document and a cleanup function, opening the
// named file when the Extractor does not hold one already.
func (e *Extractor) document() (*reader.Document, func(), error) {
	if e.doc != nil {
		return e.doc, func() {}, nil
	}
	if e.filename == "" {
		return nil, nil, fmt.Errorf("no filename specified")
	}

	doc, err := reader.Open(e.filename)
	if err != nil {
		return nil, nil, err
	}
	return doc, func() { doc.Close() }, nil
}

// loadDumps reads the selected dump files, one page each.
func (e *Extractor) loadDumps() ([][]model.TextFragment, error) {
	paths := selectPages(e.dumpPaths, e.options.pages)

	pages := make([][]model.TextFragment, len(paths))
	for i, path := range paths {
		fragments, err := reader.OpenFragmentDump(path)
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", path, err)
		}
		pages[i] = fragments
	}
	return pages, nil
}

// selectPages filters a per-page slice by the 1-indexed page selection,
// preserving selection order. An empty selection keeps every page;
// out-of-range pages are dropped.
func selectPages[T any](items []T, pages []int) []T {
	if len(pages) == 0 {
		return items
	}
	out := make([]T, 0, len(pages))
	for _, p := range pages {
		if p >= 1 && p <= len(items) {
			out = append(out, items[p-1])
		}
	}
	return out
}

// selectNumbers resolves the page selection against a page count.
func selectNumbers(count int, pages []int) []int {
	if len(pages) == 0 {
		all := make([]int, count)
		for i := range all {
			all[i] = i + 1
		}
		return all
	}
	out := make([]int, 0, len(pages))
	for _, p := range pages {
		if p >= 1 && p <= count {
			out = append(out, p)
		}
	}
	return out
}

// textFromFragments flattens a positioned page to reading-order text: rows
// by vertical proximity, tokens left to right, rows top to bottom.
func textFromFragments(fragments []model.TextFragment) string {
	grouper := layout.NewRowGrouper(layout.HeaderRowTolerance)
	merger := layout.NewFragmentMerger()

	var lines []string
	for _, row := range grouper.GroupRows(fragments) {
		row = merger.Merge(row)
		parts := make([]string, 0, len(row))
		for _, frag := range row {
			parts = append(parts, frag.Text)
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}
