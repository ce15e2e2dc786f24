// Package outliner infers a structured document outline (a title plus a
// leveled sequence of H1-H3 headings with page numbers) from a PDF that
// may have no embedded table of contents.
//
// Basic usage:
//
//	outline, err := outliner.Open("report.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// Output helpers render the result directly:
//
//	data, err := outliner.Open("report.pdf").JSON()
//
// Pre-extracted runs can be analyzed without touching the filesystem,
// which is also how the pipeline is exercised in tests:
//
//	outline, err := outliner.FromDocument(doc).Outline()
//
// The analysis combines font-size statistics, positional header/footer
// filtering and pattern/keyword classification; see the layout package for
// the individual stages and their configuration.
package outliner

import (
	"fmt"

	"github.com/tsawler/outliner/extract"
	"github.com/tsawler/outliner/format"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

// Extractor is the fluent handle for one document. Configure it with the
// chained option methods, then call a terminal operation (Outline, JSON,
// MarkdownTOC, HTML). An Extractor is single-use and not safe for
// concurrent use; create one per document.
type Extractor struct {
	filename string
	doc      *model.Document
	options  Options
}

// Open prepares an extractor for a PDF file. The file is not touched until
// a terminal operation runs, so errors surface there.
//
// Example:
//
//	outline, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(filename),
	}
}

// FromDocument prepares an extractor for an already-extracted run
// sequence. The caller keeps responsibility for the document's default
// title; with no override the title may come back empty.
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(""),
	}
}

// Outline runs the inference pipeline and returns the outline. A document
// without detectable structure yields a valid title-only (or entirely
// empty) outline; only extraction problems produce an error.
func (e *Extractor) Outline() (*model.Outline, error) {
	doc := e.doc
	if doc == nil {
		extracted, err := extract.Open(e.filename)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", e.filename, err)
		}
		doc = extracted
	}

	analyzer := layout.NewAnalyzerWithConfig(e.options.analyzer)
	outline := analyzer.Analyze(doc)

	if outline.Title == "" && e.options.defaultTitle != "" {
		outline.Title = e.options.defaultTitle
	}

	return outline, nil
}

// JSON runs the pipeline and renders the outline as compact wire JSON
func (e *Extractor) JSON() ([]byte, error) {
	outline, err := e.Outline()
	if err != nil {
		return nil, err
	}
	return format.JSON(outline, false)
}

// MarkdownTOC runs the pipeline and renders a Markdown table of contents
func (e *Extractor) MarkdownTOC() (string, error) {
	outline, err := e.Outline()
	if err != nil {
		return "", err
	}
	return format.MarkdownTOC(outline), nil
}

// HTML runs the pipeline and renders an HTML table of contents
func (e *Extractor) HTML() ([]byte, error) {
	outline, err := e.Outline()
	if err != nil {
		return nil, err
	}
	return format.HTML(outline)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := outliner.Must(outliner.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
