// Package extract is the text-run extraction collaborator: it opens a PDF
// and produces the ordered [model.TextRun] sequence the inference core
// consumes.
//
// Extraction is built on github.com/ledongthuc/pdf. PDF content streams
// emit text in show-operation fragments (often single characters), so the
// extractor assembles fragments into line-level runs by vertical proximity
// before handing them over, converts the PDF's bottom-origin coordinates
// into top-relative offsets, and applies NFKC normalization so ligatures
// and compatibility forms compare cleanly.
//
// Failures here (unreadable file, malformed document, no extractable text)
// are reported to the caller before the core is ever invoked; the core
// assumes a well-formed, possibly empty, run sequence.
package extract

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
)

// Config holds configuration for run extraction
type Config struct {
	// LineTolerance is the vertical distance, as a fraction of font size,
	// within which fragments belong to the same line
	// Default: 0.5
	LineTolerance float64

	// GapSpacingRatio is the horizontal gap, as a fraction of font size,
	// above which a space is inserted between fragments
	// Default: 0.3
	GapSpacingRatio float64

	// FallbackPageHeight is used when a page carries no resolvable
	// MediaBox
	// Default: 792 (US Letter)
	FallbackPageHeight float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		LineTolerance:      0.5,
		GapSpacingRatio:    0.3,
		FallbackPageHeight: 792.0,
	}
}

// Extractor reads text runs out of a PDF
type Extractor struct {
	config Config
}

// New creates an extractor with default configuration
func New() *Extractor {
	return &Extractor{config: DefaultConfig()}
}

// NewWithConfig creates an extractor with custom configuration
func NewWithConfig(config Config) *Extractor {
	return &Extractor{config: config}
}

// Open extracts a document from a PDF file on disk
func Open(path string) (*model.Document, error) {
	return New().ExtractFile(path)
}

// Read extracts a document from an in-memory or seekable PDF
func Read(r io.ReaderAt, size int64) (*model.Document, error) {
	return New().Extract(r, size)
}

// ExtractFile opens a PDF file and extracts its text runs
func (e *Extractor) ExtractFile(path string) (*model.Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	return e.extract(reader)
}

// Extract reads a PDF from r and extracts its text runs
func (e *Extractor) Extract(r io.ReaderAt, size int64) (*model.Document, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return e.extract(reader)
}

func (e *Extractor) extract(reader *pdf.Reader) (*model.Document, error) {
	doc := &model.Document{PageCount: reader.NumPage()}
	if doc.PageCount == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	for i := 1; i <= doc.PageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		doc.Runs = append(doc.Runs, e.pageRuns(page, i, e.pageHeight(page))...)
	}

	return doc, nil
}

// pageRuns extracts the line-level runs of one page, top to bottom
func (e *Extractor) pageRuns(page pdf.Page, pageNum int, pageHeight float64) []model.TextRun {
	texts := pageContent(page)
	if len(texts) == 0 {
		return nil
	}

	var runs []model.TextRun
	for _, line := range e.groupLines(texts) {
		run := e.assembleRun(line, pageNum, pageHeight)
		if run.IsEmpty() {
			continue
		}
		runs = append(runs, run)
	}

	// Visual top-to-bottom order within the page
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].YTop < runs[j].YTop
	})

	return runs
}

// pageContent reads a page's text fragments. The underlying parser panics
// on some malformed content streams; such pages yield no runs instead of
// aborting the document.
func pageContent(page pdf.Page) (texts []pdf.Text) {
	defer func() {
		if recover() != nil {
			texts = nil
		}
	}()
	return page.Content().Text
}

// groupLines clusters fragments by vertical proximity
func (e *Extractor) groupLines(texts []pdf.Text) [][]pdf.Text {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i], sorted[j]
		if diff := ti.Y - tj.Y; absFloat(diff) > e.tolerance(ti) {
			return diff > 0 // higher Y first: top of page
		}
		return ti.X < tj.X
	})

	var lines [][]pdf.Text
	var current []pdf.Text
	for _, t := range sorted {
		if len(current) > 0 && absFloat(t.Y-current[len(current)-1].Y) > e.tolerance(t) {
			lines = append(lines, current)
			current = nil
		}
		current = append(current, t)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// tolerance returns the same-line Y tolerance for a fragment
func (e *Extractor) tolerance(t pdf.Text) float64 {
	size := t.FontSize
	if size <= 0 {
		size = 12.0
	}
	return size * e.config.LineTolerance
}

// assembleRun joins one line's fragments into a TextRun
func (e *Extractor) assembleRun(line []pdf.Text, pageNum int, pageHeight float64) model.TextRun {
	var sb strings.Builder
	var lastEnd float64
	for i, t := range line {
		if i > 0 {
			gap := t.X - lastEnd
			if gap > t.FontSize*e.config.GapSpacingRatio {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)
		lastEnd = t.X + t.W
	}

	first := line[0]
	last := line[len(line)-1]

	// Topmost baseline of the line decides its vertical position
	maxY := first.Y
	for _, t := range line[1:] {
		if t.Y > maxY {
			maxY = t.Y
		}
	}

	yTop := pageHeight - maxY - first.FontSize
	if yTop < 0 {
		yTop = 0
	}

	text := norm.NFKC.String(sb.String())
	text = strings.Join(strings.Fields(text), " ")

	return model.TextRun{
		Text:       text,
		FontSize:   first.FontSize,
		FontName:   first.Font,
		Bold:       anyBold(line),
		Italic:     anyItalic(line),
		Page:       pageNum,
		X:          first.X,
		YTop:       yTop,
		Width:      (last.X + last.W) - first.X,
		PageHeight: pageHeight,
	}
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// for inherited values
func (e *Extractor) pageHeight(page pdf.Page) float64 {
	v := page.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			if h := mb.Index(3).Float64() - mb.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return e.config.FallbackPageHeight
}

// boldMarkers and italicMarkers are substrings of PostScript font names
// that indicate weight and slant
var (
	boldMarkers   = []string{"bold", "black", "heavy", "semibold", "demibold"}
	italicMarkers = []string{"italic", "oblique"}
)

// anyBold reports whether any fragment uses a bold face
func anyBold(line []pdf.Text) bool {
	for _, t := range line {
		if IsBoldFont(t.Font) {
			return true
		}
	}
	return false
}

// anyItalic reports whether any fragment uses an italic face
func anyItalic(line []pdf.Text) bool {
	for _, t := range line {
		if IsItalicFont(t.Font) {
			return true
		}
	}
	return false
}

// IsBoldFont reports whether a font name indicates a bold face
func IsBoldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range boldMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// IsItalicFont reports whether a font name indicates an italic face
func IsItalicFont(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range italicMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// absFloat returns the absolute value of a float64
func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
