package model

import "strings"

// TextRun represents one visually contiguous piece of text on one page.
// Runs are produced by the extraction layer in visual top-to-bottom order
// within each page.
type TextRun struct {
	// Text is the run's text content, trimmed of surrounding whitespace.
	// A run with empty trimmed text is never emitted by the extractor.
	Text string

	// FontSize is the nominal font size in points
	FontSize float64

	// FontName is the PostScript font name, when known (e.g. "Helvetica-Bold")
	FontName string

	// Bold indicates the run uses a bold face
	Bold bool

	// Italic indicates the run uses an italic or oblique face
	Italic bool

	// Page is the 1-based page number the run appears on
	Page int

	// X is the left edge of the run, in points from the page's left edge
	X float64

	// YTop is the vertical offset of the run's top, in points measured
	// downward from the top of the page
	YTop float64

	// Width is the horizontal extent of the run, when known
	Width float64

	// PageHeight is the height of the page the run appears on, in points
	PageHeight float64
}

// IsEmpty returns true if the run has no text content after trimming
func (r TextRun) IsEmpty() bool {
	return strings.TrimSpace(r.Text) == ""
}

// WordCount returns the number of whitespace-separated words in the run
func (r TextRun) WordCount() int {
	return len(strings.Fields(r.Text))
}

// Document is the core input contract: the ordered TextRun sequence for a
// whole document plus its page count. It is read-only to the pipeline.
type Document struct {
	// Runs are all text runs in the document, ordered by page and then by
	// visual top-to-bottom position within each page
	Runs []TextRun

	// PageCount is the total number of pages in the source document
	PageCount int
}

// RunsOnPage returns the runs on a specific 1-based page, in order
func (d *Document) RunsOnPage(page int) []TextRun {
	var result []TextRun
	for _, r := range d.Runs {
		if r.Page == page {
			result = append(result, r)
		}
	}
	return result
}

// PageHeight returns the height of a 1-based page, derived from the runs on
// that page. Returns 0 if the page has no runs.
func (d *Document) PageHeight(page int) float64 {
	for _, r := range d.Runs {
		if r.Page == page {
			return r.PageHeight
		}
	}
	return 0
}
