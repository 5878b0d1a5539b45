// Package reader loads timetable sources into the fragment and text forms
// the extractors consume. PDF pages yield positioned fragments via the pdf
// package; fragment dumps are a JSON-lines interchange form for positioned
// text captured elsewhere. All extracted text is NFKC-normalized so that
// ligatures and width variants never defeat the pattern matchers.
package reader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/timegrid/model"
)

// ErrUnparseable is returned when a source cannot be parsed at all. It is a
// document-level failure: per-page problems are reported as skips by the
// extractors instead.
var ErrUnparseable = errors.New("source could not be parsed")

// Document is an open PDF timetable source.
type Document struct {
	file *os.File
	r    *pdf.Reader
}

// Open opens a PDF file for fragment extraction. A file the parser cannot
// read returns an error wrapping [ErrUnparseable].
func Open(path string) (doc *Document, err error) {
	// The parser panics on some malformed files; surface that as an
	// unparseable-source error like any other.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", ErrUnparseable, r)
		}
	}()

	file, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return &Document{file: file, r: r}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.r.NumPage()
}

// PageFragments returns the positioned text fragments of page n (1-based),
// in the order the page content stream emits them.
func (d *Document) PageFragments(n int) (fragments []model.TextFragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = fmt.Errorf("%w: page %d: %v", ErrUnparseable, n, r)
		}
	}()

	page := d.r.Page(n)
	if page.V.IsNull() {
		return nil, fmt.Errorf("%w: page %d missing", ErrUnparseable, n)
	}

	content := page.Content()
	return fragmentsFromText(content.Text), nil
}

// AllFragments returns every page's fragments. A page that fails to parse
// yields an empty page rather than aborting the document; the extractors
// report it as a skip.
func (d *Document) AllFragments() [][]model.TextFragment {
	pages := make([][]model.TextFragment, d.PageCount())
	for i := range pages {
		fragments, err := d.PageFragments(i + 1)
		if err != nil {
			continue
		}
		pages[i] = fragments
	}
	return pages
}

// PageText returns the plain reading-order text of page n (1-based), for
// line-mode extraction.
func (d *Document) PageText(n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: page %d: %v", ErrUnparseable, n, r)
		}
	}()

	page := d.r.Page(n)
	if page.V.IsNull() {
		return "", fmt.Errorf("%w: page %d missing", ErrUnparseable, n)
	}

	raw, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("%w: page %d: %v", ErrUnparseable, n, err)
	}
	return norm.NFKC.String(raw), nil
}

// Text returns the whole document's plain text, pages joined by newlines.
// Pages that fail to parse are skipped.
func (d *Document) Text() string {
	var b strings.Builder
	for n := 1; n <= d.PageCount(); n++ {
		text, err := d.PageText(n)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(text)
	}
	return b.String()
}

// fragmentsFromText converts the parser's positioned text runs, applying
// NFKC normalization and dropping empty runs.
func fragmentsFromText(runs []pdf.Text) []model.TextFragment {
	fragments := make([]model.TextFragment, 0, len(runs))
	for _, run := range runs {
		text := norm.NFKC.String(run.S)
		if strings.TrimSpace(text) == "" {
			continue
		}
		fragments = append(fragments, model.TextFragment{
			X:     run.X,
			Y:     run.Y,
			Width: run.W,
			Text:  text,
		})
	}
	return fragments
}
